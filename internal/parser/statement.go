package parser

import (
	"nmscript/internal/ast"
	"nmscript/internal/diag"
	"nmscript/internal/token"
)

func (p *Parser) parseStatement() (ast.Stmt, bool) {
	switch p.peek().Kind {
	case token.KwShow:
		return p.parseShow()
	case token.KwHide:
		return p.parseHide()
	case token.KwSay:
		return p.parseSay()
	case token.KwChoice:
		return p.parseChoice()
	case token.KwIf:
		return p.parseIf()
	case token.KwGoto:
		return p.parseGoto()
	case token.KwWait:
		return p.parseWait()
	case token.KwPlay:
		return p.parsePlay()
	case token.KwStop:
		return p.parseStop()
	case token.KwSet:
		return p.parseSet()
	case token.KwTransition:
		return p.parseTransition()
	case token.LBrace:
		loc := p.peek().Loc
		body, ok := p.parseBlock()
		if !ok {
			return nil, false
		}
		return ast.BlockStmt{Stmts: body, Loc: loc}, true
	default:
		p.errorf(diag.SynExpectedStatement, p.peek().Loc,
			"expected statement, found '%s'", p.peek().Kind)
		return nil, false
	}
}

// show Hero [at left] | show background "bg_city"
func (p *Parser) parseShow() (ast.Stmt, bool) {
	loc := p.advance().Loc // show

	if p.at(token.KwBackground) {
		p.advance()
		id, ok := p.expect(token.StringLit, diag.SynExpectedString, "background asset id")
		if !ok {
			return nil, false
		}
		return ast.ShowStmt{Target: ast.ShowBackground, ID: id.Text, Loc: loc}, true
	}

	id, ok := p.expectIdent("character id")
	if !ok {
		return nil, false
	}
	stmt := ast.ShowStmt{Target: ast.ShowCharacter, ID: id.Text, Loc: loc}
	if p.at(token.KwAt) {
		p.advance()
		pos, ok := p.expectIdent("position")
		if !ok {
			return nil, false
		}
		stmt.Position = pos.Text
	}
	return stmt, true
}

// hide Hero | hide background
func (p *Parser) parseHide() (ast.Stmt, bool) {
	loc := p.advance().Loc // hide

	if p.at(token.KwBackground) {
		p.advance()
		return ast.HideStmt{Target: ast.ShowBackground, Loc: loc}, true
	}
	id, ok := p.expectIdent("character id")
	if !ok {
		return nil, false
	}
	return ast.HideStmt{Target: ast.ShowCharacter, ID: id.Text, Loc: loc}, true
}

// say Hero "hello" | say "narration"
func (p *Parser) parseSay() (ast.Stmt, bool) {
	loc := p.advance().Loc // say

	stmt := ast.SayStmt{Loc: loc}
	if p.at(token.Ident) {
		stmt.Speaker = p.advance().Text
	}
	text, ok := p.expect(token.StringLit, diag.SynExpectedString, "dialogue text")
	if !ok {
		return nil, false
	}
	stmt.Text = text.Text
	return stmt, true
}

// choice { "Option text" { ... } ... }
func (p *Parser) parseChoice() (ast.Stmt, bool) {
	loc := p.advance().Loc // choice

	if _, ok := p.expect(token.LBrace, diag.SynExpectedLBrace, "'{'"); !ok {
		return nil, false
	}
	stmt := ast.ChoiceStmt{Loc: loc}
	for !p.at(token.RBrace) && !p.at(token.EOF) {
		optLoc := p.peek().Loc
		text, ok := p.expect(token.StringLit, diag.SynExpectedString, "choice option text")
		if !ok {
			return nil, false
		}
		body, ok := p.parseBlock()
		if !ok {
			return nil, false
		}
		stmt.Options = append(stmt.Options, ast.ChoiceOption{Text: text.Text, Body: body, Loc: optLoc})
	}
	if _, ok := p.expect(token.RBrace, diag.SynExpectedRBrace, "'}'"); !ok {
		return nil, false
	}
	return stmt, true
}

// if cond { ... } [else { ... } | else if ...]
func (p *Parser) parseIf() (ast.Stmt, bool) {
	loc := p.advance().Loc // if

	cond, ok := p.parseExpression()
	if !ok {
		return nil, false
	}
	then, ok := p.parseBlock()
	if !ok {
		return nil, false
	}
	stmt := ast.IfStmt{Cond: cond, Then: then, Loc: loc}
	if p.at(token.KwElse) {
		p.advance()
		if p.at(token.KwIf) {
			elseIf, ok := p.parseIf()
			if !ok {
				return nil, false
			}
			stmt.Else = []ast.Stmt{elseIf}
		} else {
			elseBody, ok := p.parseBlock()
			if !ok {
				return nil, false
			}
			stmt.Else = elseBody
		}
	}
	return stmt, true
}

func (p *Parser) parseGoto() (ast.Stmt, bool) {
	loc := p.advance().Loc // goto
	target, ok := p.expectIdent("scene name")
	if !ok {
		return nil, false
	}
	return ast.GotoStmt{Target: target.Text, Loc: loc}, true
}

func (p *Parser) parseWait() (ast.Stmt, bool) {
	loc := p.advance().Loc // wait
	dur, ok := p.parseExpression()
	if !ok {
		return nil, false
	}
	return ast.WaitStmt{Duration: dur, Loc: loc}, true
}

// play music "theme.ogg"
func (p *Parser) parsePlay() (ast.Stmt, bool) {
	loc := p.advance().Loc // play
	if !p.peek().IsMediaChannel() {
		p.errorf(diag.SynUnexpectedToken, p.peek().Loc,
			"expected 'music', 'sound' or 'voice', found '%s'", p.peek().Kind)
		return nil, false
	}
	channel := p.advance().Text
	asset, ok := p.parseExpression()
	if !ok {
		return nil, false
	}
	return ast.PlayStmt{Channel: channel, Asset: asset, Loc: loc}, true
}

func (p *Parser) parseStop() (ast.Stmt, bool) {
	loc := p.advance().Loc // stop
	if !p.peek().IsMediaChannel() {
		p.errorf(diag.SynUnexpectedToken, p.peek().Loc,
			"expected 'music', 'sound' or 'voice', found '%s'", p.peek().Kind)
		return nil, false
	}
	channel := p.advance().Text
	return ast.StopStmt{Channel: channel, Loc: loc}, true
}

// set flag = expr
func (p *Parser) parseSet() (ast.Stmt, bool) {
	loc := p.advance().Loc // set
	name, ok := p.expectIdent("variable name")
	if !ok {
		return nil, false
	}
	if _, ok := p.expect(token.Assign, diag.SynUnexpectedToken, "'='"); !ok {
		return nil, false
	}
	value, ok := p.parseExpression()
	if !ok {
		return nil, false
	}
	return ast.SetStmt{Name: name.Text, Value: value, Loc: loc}, true
}

// transition fade [1.5]
func (p *Parser) parseTransition() (ast.Stmt, bool) {
	loc := p.advance().Loc // transition
	kind, ok := p.expectIdent("transition type")
	if !ok {
		return nil, false
	}
	stmt := ast.TransitionStmt{Type: kind.Text, Loc: loc}
	if p.at(token.NumberLit) {
		dur, ok := p.parsePrimary()
		if !ok {
			return nil, false
		}
		stmt.Duration = dur
	}
	return stmt, true
}
