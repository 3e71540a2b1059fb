package ast

import "nmscript/internal/source"

// Expr is the closed set of NMScript expressions.
type Expr interface {
	Node
	exprNode()
}

// LitKind tags the literal variants.
type LitKind uint8

const (
	LitString LitKind = iota
	LitNumber
	LitBool
)

// LiteralExpr is a string, number, or boolean constant.
type LiteralExpr struct {
	Kind LitKind
	Str  string
	Num  float64
	Bool bool
	Loc  source.Location
}

// IdentExpr references a variable by name.
type IdentExpr struct {
	Name string
	Loc  source.Location
}

// BinaryExpr applies an infix operator to two operands. Op is the operator
// spelling ("+", "==", "&&", ...).
type BinaryExpr struct {
	Op    string
	Left  Expr
	Right Expr
	Loc   source.Location
}

// UnaryExpr applies a prefix operator ("!", "-").
type UnaryExpr struct {
	Op  string
	X   Expr
	Loc source.Location
}

// CallExpr invokes a built-in function.
type CallExpr struct {
	Name string
	Args []Expr
	Loc  source.Location
}

// PropertyExpr accesses a named property of a base expression, e.g.
// `Hero.visible`.
type PropertyExpr struct {
	Base     Expr
	Property string
	Loc      source.Location
}

func (e LiteralExpr) Pos() source.Location  { return e.Loc }
func (e IdentExpr) Pos() source.Location    { return e.Loc }
func (e BinaryExpr) Pos() source.Location   { return e.Loc }
func (e UnaryExpr) Pos() source.Location    { return e.Loc }
func (e CallExpr) Pos() source.Location     { return e.Loc }
func (e PropertyExpr) Pos() source.Location { return e.Loc }

func (LiteralExpr) exprNode()  {}
func (IdentExpr) exprNode()    {}
func (BinaryExpr) exprNode()   {}
func (UnaryExpr) exprNode()    {}
func (CallExpr) exprNode()     {}
func (PropertyExpr) exprNode() {}

// String constructs a string literal.
func String(s string, loc source.Location) LiteralExpr {
	return LiteralExpr{Kind: LitString, Str: s, Loc: loc}
}

// Number constructs a numeric literal.
func Number(n float64, loc source.Location) LiteralExpr {
	return LiteralExpr{Kind: LitNumber, Num: n, Loc: loc}
}

// Bool constructs a boolean literal.
func Bool(b bool, loc source.Location) LiteralExpr {
	return LiteralExpr{Kind: LitBool, Bool: b, Loc: loc}
}
