package ast

import "nmscript/internal/source"

// Stmt is the closed set of NMScript statements.
type Stmt interface {
	Node
	stmtNode()
}

// ShowTarget distinguishes what a show/hide statement addresses.
type ShowTarget uint8

const (
	ShowCharacter ShowTarget = iota
	ShowBackground
)

// ShowStmt displays a character or background:
//
//	show Hero at left
//	show background "bg_city"
type ShowStmt struct {
	Target   ShowTarget
	ID       string // character id or background asset id
	Position string // optional, characters only ("left", "center", "right")
	Loc      source.Location
}

// HideStmt removes a character or the background from the stage.
type HideStmt struct {
	Target ShowTarget
	ID     string // character id; empty for background
	Loc    source.Location
}

// SayStmt is a dialogue line. An empty Speaker means the narrator.
type SayStmt struct {
	Speaker string
	Text    string
	Loc     source.Location
}

// ChoiceOption is one selectable branch of a choice block.
type ChoiceOption struct {
	Text string
	Body []Stmt
	Loc  source.Location
}

// ChoiceStmt presents options to the player. A choice with zero options is
// a semantic error.
type ChoiceStmt struct {
	Options []ChoiceOption
	Loc     source.Location
}

// IfStmt branches on a condition. Else may be nil.
type IfStmt struct {
	Cond Expr
	Then []Stmt
	Else []Stmt
	Loc  source.Location
}

// GotoStmt unconditionally transfers control to another scene.
type GotoStmt struct {
	Target string
	Loc    source.Location
}

// WaitStmt pauses for the given duration (seconds).
type WaitStmt struct {
	Duration Expr
	Loc      source.Location
}

// PlayStmt starts audio playback on a channel ("music", "sound", "voice").
type PlayStmt struct {
	Channel string
	Asset   Expr
	Loc     source.Location
}

// StopStmt stops playback on a channel.
type StopStmt struct {
	Channel string
	Loc     source.Location
}

// SetStmt assigns a value to a variable, introducing it on first use.
type SetStmt struct {
	Name  string
	Value Expr
	Loc   source.Location
}

// TransitionStmt runs a visual transition, e.g. `transition fade 1.5`.
type TransitionStmt struct {
	Type     string
	Duration Expr // optional
	Loc      source.Location
}

// BlockStmt groups statements; children inherit the enclosing reachability.
type BlockStmt struct {
	Stmts []Stmt
	Loc   source.Location
}

// ExprStmt is an expression evaluated for its side effects.
type ExprStmt struct {
	X   Expr
	Loc source.Location
}

func (s ShowStmt) Pos() source.Location       { return s.Loc }
func (s HideStmt) Pos() source.Location       { return s.Loc }
func (s SayStmt) Pos() source.Location        { return s.Loc }
func (s ChoiceStmt) Pos() source.Location     { return s.Loc }
func (s IfStmt) Pos() source.Location         { return s.Loc }
func (s GotoStmt) Pos() source.Location       { return s.Loc }
func (s WaitStmt) Pos() source.Location       { return s.Loc }
func (s PlayStmt) Pos() source.Location       { return s.Loc }
func (s StopStmt) Pos() source.Location       { return s.Loc }
func (s SetStmt) Pos() source.Location        { return s.Loc }
func (s TransitionStmt) Pos() source.Location { return s.Loc }
func (s BlockStmt) Pos() source.Location      { return s.Loc }
func (s ExprStmt) Pos() source.Location       { return s.Loc }

func (ShowStmt) stmtNode()       {}
func (HideStmt) stmtNode()       {}
func (SayStmt) stmtNode()        {}
func (ChoiceStmt) stmtNode()     {}
func (IfStmt) stmtNode()         {}
func (GotoStmt) stmtNode()       {}
func (WaitStmt) stmtNode()       {}
func (PlayStmt) stmtNode()       {}
func (StopStmt) stmtNode()       {}
func (SetStmt) stmtNode()        {}
func (TransitionStmt) stmtNode() {}
func (BlockStmt) stmtNode()      {}
func (ExprStmt) stmtNode()       {}
