package parser

import (
	"strconv"

	"nmscript/internal/ast"
	"nmscript/internal/diag"
	"nmscript/internal/token"
)

// Precedence climbing: || < && < == != < < <= > >= < + - < * / %.

func (p *Parser) parseExpression() (ast.Expr, bool) {
	return p.parseOr()
}

func (p *Parser) parseOr() (ast.Expr, bool) {
	return p.parseBinaryLevel(p.parseAnd, token.OrOr)
}

func (p *Parser) parseAnd() (ast.Expr, bool) {
	return p.parseBinaryLevel(p.parseEquality, token.AndAnd)
}

func (p *Parser) parseEquality() (ast.Expr, bool) {
	return p.parseBinaryLevel(p.parseComparison, token.EqEq, token.BangEq)
}

func (p *Parser) parseComparison() (ast.Expr, bool) {
	return p.parseBinaryLevel(p.parseAdditive, token.Lt, token.LtEq, token.Gt, token.GtEq)
}

func (p *Parser) parseAdditive() (ast.Expr, bool) {
	return p.parseBinaryLevel(p.parseMultiplicative, token.Plus, token.Minus)
}

func (p *Parser) parseMultiplicative() (ast.Expr, bool) {
	return p.parseBinaryLevel(p.parseUnary, token.Star, token.Slash, token.Percent)
}

func (p *Parser) parseBinaryLevel(next func() (ast.Expr, bool), ops ...token.Kind) (ast.Expr, bool) {
	left, ok := next()
	if !ok {
		return nil, false
	}
	for {
		matched := false
		for _, op := range ops {
			if p.at(op) {
				opTok := p.advance()
				right, ok := next()
				if !ok {
					return nil, false
				}
				left = ast.BinaryExpr{Op: opTok.Text, Left: left, Right: right, Loc: opTok.Loc}
				matched = true
				break
			}
		}
		if !matched {
			return left, true
		}
	}
}

func (p *Parser) parseUnary() (ast.Expr, bool) {
	if p.at(token.Bang) || p.at(token.Minus) {
		opTok := p.advance()
		x, ok := p.parseUnary()
		if !ok {
			return nil, false
		}
		return ast.UnaryExpr{Op: opTok.Text, X: x, Loc: opTok.Loc}, true
	}
	return p.parsePostfix()
}

// parsePostfix handles property access chains: base.prop.prop2
func (p *Parser) parsePostfix() (ast.Expr, bool) {
	expr, ok := p.parsePrimary()
	if !ok {
		return nil, false
	}
	for p.at(token.Dot) {
		dot := p.advance()
		prop, ok := p.expectIdent("property name")
		if !ok {
			return nil, false
		}
		expr = ast.PropertyExpr{Base: expr, Property: prop.Text, Loc: dot.Loc}
	}
	return expr, true
}

func (p *Parser) parsePrimary() (ast.Expr, bool) {
	tok := p.peek()
	switch tok.Kind {
	case token.StringLit:
		p.advance()
		return ast.String(tok.Text, tok.Loc), true
	case token.NumberLit:
		p.advance()
		n, err := strconv.ParseFloat(tok.Text, 64)
		if err != nil {
			p.errorf(diag.LexBadNumber, tok.Loc, "invalid number '%s'", tok.Text)
			return nil, false
		}
		return ast.Number(n, tok.Loc), true
	case token.KwTrue:
		p.advance()
		return ast.Bool(true, tok.Loc), true
	case token.KwFalse:
		p.advance()
		return ast.Bool(false, tok.Loc), true
	case token.Ident:
		p.advance()
		if p.at(token.LParen) {
			return p.parseCallArgs(tok)
		}
		return ast.IdentExpr{Name: tok.Text, Loc: tok.Loc}, true
	case token.LParen:
		p.advance()
		expr, ok := p.parseExpression()
		if !ok {
			return nil, false
		}
		if _, ok := p.expect(token.RParen, diag.SynUnexpectedToken, "')'"); !ok {
			return nil, false
		}
		return expr, true
	default:
		p.errorf(diag.SynExpectedExpression, tok.Loc,
			"expected expression, found '%s'", tok.Kind)
		return nil, false
	}
}

func (p *Parser) parseCallArgs(name token.Token) (ast.Expr, bool) {
	p.advance() // '('
	call := ast.CallExpr{Name: name.Text, Loc: name.Loc}
	for !p.at(token.RParen) {
		arg, ok := p.parseExpression()
		if !ok {
			return nil, false
		}
		call.Args = append(call.Args, arg)
		if !p.at(token.Comma) {
			break
		}
		p.advance()
	}
	if _, ok := p.expect(token.RParen, diag.SynUnexpectedToken, "')'"); !ok {
		return nil, false
	}
	return call, true
}
