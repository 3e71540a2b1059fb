// Package lexer tokenizes NMScript source. Lexical problems are reported
// into a diag.ErrorList; the scanner keeps going after an error so one bad
// character does not hide the rest of the file.
package lexer

import (
	"nmscript/internal/diag"
	"nmscript/internal/source"
	"nmscript/internal/token"
)

// Lexer turns a source file into a token stream.
type Lexer struct {
	cursor cursor
	errs   *diag.ErrorList
}

// New creates a lexer over file, reporting into errs.
func New(file *source.File, errs *diag.ErrorList) *Lexer {
	return &Lexer{cursor: newCursor(file), errs: errs}
}

// Tokenize scans the whole file. The returned slice always ends with an
// EOF token.
func Tokenize(file *source.File, errs *diag.ErrorList) []token.Token {
	lx := New(file, errs)
	var toks []token.Token
	for {
		tok := lx.Next()
		toks = append(toks, tok)
		if tok.Kind == token.EOF {
			return toks
		}
	}
}

// Next returns the next significant token, skipping whitespace and
// comments. After EOF it keeps returning EOF.
func (lx *Lexer) Next() token.Token {
	lx.skipTrivia()
	if lx.cursor.eof() {
		return token.Token{Kind: token.EOF, Loc: lx.cursor.loc()}
	}

	ch := lx.cursor.peek()
	switch {
	case isIdentStart(ch):
		return lx.scanIdentOrKeyword()
	case isDigit(ch):
		return lx.scanNumber()
	case ch == '"':
		return lx.scanString()
	case ch == '#':
		return lx.scanColor()
	default:
		return lx.scanOperator()
	}
}

// skipTrivia consumes whitespace, // line comments and /* */ block
// comments.
func (lx *Lexer) skipTrivia() {
	for !lx.cursor.eof() {
		ch := lx.cursor.peek()
		switch {
		case ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n':
			lx.cursor.bump()
		case ch == '/' && lx.cursor.peekAt(1) == '/':
			for !lx.cursor.eof() && lx.cursor.peek() != '\n' {
				lx.cursor.bump()
			}
		case ch == '/' && lx.cursor.peekAt(1) == '*':
			lx.skipBlockComment()
		default:
			return
		}
	}
}

func (lx *Lexer) skipBlockComment() {
	start := lx.cursor.loc()
	lx.cursor.bump() // '/'
	lx.cursor.bump() // '*'
	for !lx.cursor.eof() {
		if lx.cursor.peek() == '*' && lx.cursor.peekAt(1) == '/' {
			lx.cursor.bump()
			lx.cursor.bump()
			return
		}
		lx.cursor.bump()
	}
	lx.errs.Add(diag.NewError(diag.LexUnterminatedBlock, start, "unterminated block comment"))
}

func isIdentStart(ch byte) bool {
	return ch == '_' || (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func isIdentContinue(ch byte) bool {
	return isIdentStart(ch) || isDigit(ch)
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isHexDigit(ch byte) bool {
	return isDigit(ch) || (ch >= 'a' && ch <= 'f') || (ch >= 'A' && ch <= 'F')
}
