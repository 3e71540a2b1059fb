// Package ast defines the NMScript abstract syntax tree consumed by the
// validator and produced by the parser. Statements and expressions are
// closed sums: each category is an interface with a marker method, and the
// set of implementing structs is fixed.
package ast

import "nmscript/internal/source"

// Node is any AST node with a source position.
type Node interface {
	Pos() source.Location
}

// Program is the root of a parsed script file.
type Program struct {
	Characters []CharacterDecl
	Scenes     []SceneDecl
}

// CharacterDecl declares a character:
//
//	character Hero "Hero" #FFCC00
type CharacterDecl struct {
	ID          string
	DisplayName string
	Color       string
	Loc         source.Location
}

func (d CharacterDecl) Pos() source.Location { return d.Loc }

// SceneDecl declares a named scene with a statement body. Entry marks the
// story's entry point; at most one scene should carry it.
type SceneDecl struct {
	Name  string
	Entry bool
	Body  []Stmt
	Loc   source.Location
}

func (d SceneDecl) Pos() source.Location { return d.Loc }
