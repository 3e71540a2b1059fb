package lexer

import (
	"fmt"
	"strings"

	"nmscript/internal/diag"
	"nmscript/internal/token"
)

func (lx *Lexer) scanIdentOrKeyword() token.Token {
	loc := lx.cursor.loc()
	var sb strings.Builder
	for !lx.cursor.eof() && isIdentContinue(lx.cursor.peek()) {
		sb.WriteByte(lx.cursor.bump())
	}
	text := sb.String()
	if kind, ok := token.Keywords[text]; ok {
		return token.Token{Kind: kind, Text: text, Loc: loc}
	}
	return token.Token{Kind: token.Ident, Text: text, Loc: loc}
}

func (lx *Lexer) scanNumber() token.Token {
	loc := lx.cursor.loc()
	var sb strings.Builder
	for !lx.cursor.eof() && isDigit(lx.cursor.peek()) {
		sb.WriteByte(lx.cursor.bump())
	}
	if lx.cursor.peek() == '.' && isDigit(lx.cursor.peekAt(1)) {
		sb.WriteByte(lx.cursor.bump())
		for !lx.cursor.eof() && isDigit(lx.cursor.peek()) {
			sb.WriteByte(lx.cursor.bump())
		}
	}
	// A trailing identifier character means a malformed number like 12abc.
	if isIdentStart(lx.cursor.peek()) {
		for !lx.cursor.eof() && isIdentContinue(lx.cursor.peek()) {
			sb.WriteByte(lx.cursor.bump())
		}
		lx.errs.Add(diag.NewError(diag.LexBadNumber, loc,
			fmt.Sprintf("invalid number '%s'", sb.String())))
		return token.Token{Kind: token.Invalid, Text: sb.String(), Loc: loc}
	}
	return token.Token{Kind: token.NumberLit, Text: sb.String(), Loc: loc}
}

func (lx *Lexer) scanString() token.Token {
	loc := lx.cursor.loc()
	lx.cursor.bump() // opening quote
	var sb strings.Builder
	for {
		if lx.cursor.eof() || lx.cursor.peek() == '\n' {
			lx.errs.Add(diag.NewError(diag.LexUnterminatedString, loc, "unterminated string literal"))
			return token.Token{Kind: token.Invalid, Text: sb.String(), Loc: loc}
		}
		ch := lx.cursor.bump()
		if ch == '"' {
			return token.Token{Kind: token.StringLit, Text: sb.String(), Loc: loc}
		}
		if ch == '\\' && !lx.cursor.eof() {
			esc := lx.cursor.bump()
			switch esc {
			case 'n':
				sb.WriteByte('\n')
			case 't':
				sb.WriteByte('\t')
			case '"':
				sb.WriteByte('"')
			case '\\':
				sb.WriteByte('\\')
			default:
				// Unknown escapes pass through verbatim.
				sb.WriteByte('\\')
				sb.WriteByte(esc)
			}
			continue
		}
		sb.WriteByte(ch)
	}
}

// scanColor reads a #RRGGBB literal used in character declarations.
func (lx *Lexer) scanColor() token.Token {
	loc := lx.cursor.loc()
	var sb strings.Builder
	sb.WriteByte(lx.cursor.bump()) // '#'
	for !lx.cursor.eof() && isHexDigit(lx.cursor.peek()) {
		sb.WriteByte(lx.cursor.bump())
	}
	text := sb.String()
	if len(text) != 7 && len(text) != 4 {
		lx.errs.Add(diag.NewError(diag.LexUnexpectedChar, loc,
			fmt.Sprintf("invalid color literal '%s'", text)))
		return token.Token{Kind: token.Invalid, Text: text, Loc: loc}
	}
	return token.Token{Kind: token.ColorLit, Text: text, Loc: loc}
}

func (lx *Lexer) scanOperator() token.Token {
	loc := lx.cursor.loc()
	ch := lx.cursor.bump()

	two := func(next byte, withNext, alone token.Kind) token.Token {
		if lx.cursor.peek() == next {
			lx.cursor.bump()
			return token.Token{Kind: withNext, Text: string([]byte{ch, next}), Loc: loc}
		}
		return token.Token{Kind: alone, Text: string(rune(ch)), Loc: loc}
	}

	switch ch {
	case '{':
		return token.Token{Kind: token.LBrace, Text: "{", Loc: loc}
	case '}':
		return token.Token{Kind: token.RBrace, Text: "}", Loc: loc}
	case '(':
		return token.Token{Kind: token.LParen, Text: "(", Loc: loc}
	case ')':
		return token.Token{Kind: token.RParen, Text: ")", Loc: loc}
	case ',':
		return token.Token{Kind: token.Comma, Text: ",", Loc: loc}
	case '.':
		return token.Token{Kind: token.Dot, Text: ".", Loc: loc}
	case '+':
		return token.Token{Kind: token.Plus, Text: "+", Loc: loc}
	case '-':
		return token.Token{Kind: token.Minus, Text: "-", Loc: loc}
	case '*':
		return token.Token{Kind: token.Star, Text: "*", Loc: loc}
	case '/':
		return token.Token{Kind: token.Slash, Text: "/", Loc: loc}
	case '%':
		return token.Token{Kind: token.Percent, Text: "%", Loc: loc}
	case '=':
		return two('=', token.EqEq, token.Assign)
	case '!':
		return two('=', token.BangEq, token.Bang)
	case '<':
		return two('=', token.LtEq, token.Lt)
	case '>':
		return two('=', token.GtEq, token.Gt)
	case '&':
		if lx.cursor.peek() == '&' {
			lx.cursor.bump()
			return token.Token{Kind: token.AndAnd, Text: "&&", Loc: loc}
		}
	case '|':
		if lx.cursor.peek() == '|' {
			lx.cursor.bump()
			return token.Token{Kind: token.OrOr, Text: "||", Loc: loc}
		}
	}

	lx.errs.Add(diag.NewError(diag.LexUnexpectedChar, loc,
		fmt.Sprintf("unexpected character '%c'", ch)))
	return token.Token{Kind: token.Invalid, Text: string(rune(ch)), Loc: loc}
}
