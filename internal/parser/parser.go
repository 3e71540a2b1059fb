// Package parser builds an ast.Program from a token stream. Recovery is
// statement-level: on a syntax error the parser reports, skips to the next
// plausible statement start, and keeps going.
package parser

import (
	"fmt"

	"nmscript/internal/ast"
	"nmscript/internal/diag"
	"nmscript/internal/lexer"
	"nmscript/internal/source"
	"nmscript/internal/token"
)

// Parser consumes tokens and produces the AST.
type Parser struct {
	toks []token.Token
	pos  int
	errs *diag.ErrorList
}

// New creates a parser over a pre-tokenized stream.
func New(toks []token.Token, errs *diag.ErrorList) *Parser {
	return &Parser{toks: toks, errs: errs}
}

// ParseFile tokenizes and parses a source file in one step.
func ParseFile(file *source.File, errs *diag.ErrorList) *ast.Program {
	toks := lexer.Tokenize(file, errs)
	return New(toks, errs).Parse()
}

// Parse consumes the stream and returns the program. The returned AST is
// best-effort: when syntax errors were reported it may be partial.
func (p *Parser) Parse() *ast.Program {
	prog := &ast.Program{}
	for !p.at(token.EOF) {
		switch {
		case p.at(token.KwCharacter):
			if decl, ok := p.parseCharacterDecl(); ok {
				prog.Characters = append(prog.Characters, decl)
			}
		case p.at(token.KwScene) || p.at(token.KwEntry):
			if decl, ok := p.parseSceneDecl(); ok {
				prog.Scenes = append(prog.Scenes, decl)
			}
		default:
			p.errorf(diag.SynUnexpectedToken, p.peek().Loc,
				"expected 'character' or 'scene', found '%s'", p.peek().Kind)
			p.advance()
		}
	}
	return prog
}

// character Hero "Hero" #FFCC00
func (p *Parser) parseCharacterDecl() (ast.CharacterDecl, bool) {
	loc := p.peek().Loc
	p.advance() // character

	id, ok := p.expectIdent("character id")
	if !ok {
		p.syncTopLevel()
		return ast.CharacterDecl{}, false
	}
	decl := ast.CharacterDecl{ID: id.Text, DisplayName: id.Text, Loc: loc}

	if p.at(token.StringLit) {
		decl.DisplayName = p.advance().Text
	}
	if p.at(token.ColorLit) {
		decl.Color = p.advance().Text
	}
	return decl, true
}

// [entry] scene intro { ... }
func (p *Parser) parseSceneDecl() (ast.SceneDecl, bool) {
	loc := p.peek().Loc
	entry := false
	if p.at(token.KwEntry) {
		entry = true
		p.advance()
	}
	if !p.at(token.KwScene) {
		p.errorf(diag.SynUnexpectedToken, p.peek().Loc,
			"expected 'scene' after 'entry', found '%s'", p.peek().Kind)
		p.syncTopLevel()
		return ast.SceneDecl{}, false
	}
	p.advance() // scene

	name, ok := p.expectIdent("scene name")
	if !ok {
		p.syncTopLevel()
		return ast.SceneDecl{}, false
	}
	body, ok := p.parseBlock()
	if !ok {
		p.syncTopLevel()
		return ast.SceneDecl{}, false
	}
	return ast.SceneDecl{Name: name.Text, Entry: entry, Body: body, Loc: loc}, true
}

// parseBlock parses `{ stmt* }` and returns the statements.
func (p *Parser) parseBlock() ([]ast.Stmt, bool) {
	if !p.at(token.LBrace) {
		p.errorf(diag.SynExpectedLBrace, p.peek().Loc,
			"expected '{', found '%s'", p.peek().Kind)
		return nil, false
	}
	p.advance()

	var stmts []ast.Stmt
	for !p.at(token.RBrace) {
		if p.at(token.EOF) {
			p.errorf(diag.SynExpectedRBrace, p.peek().Loc, "expected '}' before end of file")
			return stmts, true
		}
		if stmt, ok := p.parseStatement(); ok {
			stmts = append(stmts, stmt)
		} else {
			p.syncStatement()
		}
	}
	p.advance() // '}'
	return stmts, true
}

// --- token helpers ---

func (p *Parser) peek() token.Token {
	return p.toks[p.pos]
}

func (p *Parser) at(kind token.Kind) bool {
	return p.toks[p.pos].Kind == kind
}

func (p *Parser) advance() token.Token {
	tok := p.toks[p.pos]
	if p.pos < len(p.toks)-1 {
		p.pos++
	}
	return tok
}

func (p *Parser) expect(kind token.Kind, code diag.Code, what string) (token.Token, bool) {
	if p.at(kind) {
		return p.advance(), true
	}
	p.errorf(code, p.peek().Loc, "expected %s, found '%s'", what, p.peek().Kind)
	return token.Token{}, false
}

func (p *Parser) expectIdent(what string) (token.Token, bool) {
	return p.expect(token.Ident, diag.SynExpectedIdentifier, what)
}

func (p *Parser) errorf(code diag.Code, loc source.Location, format string, args ...any) {
	p.errs.Add(diag.NewError(code, loc, fmt.Sprintf(format, args...)))
}

// syncTopLevel skips to the next declaration start.
func (p *Parser) syncTopLevel() {
	for !p.at(token.EOF) && !p.at(token.KwCharacter) && !p.at(token.KwScene) && !p.at(token.KwEntry) {
		p.advance()
	}
}

// syncStatement skips to a plausible statement boundary inside a block.
// Always consumes at least one token so recovery cannot loop.
func (p *Parser) syncStatement() {
	if !p.at(token.EOF) && !p.at(token.RBrace) {
		p.advance()
	}
	for !p.at(token.EOF) && !p.at(token.RBrace) && !p.atStatementStart() {
		p.advance()
	}
}

func (p *Parser) atStatementStart() bool {
	switch p.peek().Kind {
	case token.KwShow, token.KwHide, token.KwSay, token.KwChoice, token.KwIf,
		token.KwGoto, token.KwWait, token.KwPlay, token.KwStop, token.KwSet,
		token.KwTransition, token.LBrace:
		return true
	default:
		return false
	}
}
