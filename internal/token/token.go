package token

import "nmscript/internal/source"

// Token is a single source token with its location.
type Token struct {
	Kind Kind
	Text string
	Loc  source.Location
}

// IsLiteral reports whether the token is a string, number, color, or
// boolean literal.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case StringLit, NumberLit, ColorLit, KwTrue, KwFalse:
		return true
	default:
		return false
	}
}

// IsKeyword reports whether the token is a language keyword.
func (t Token) IsKeyword() bool {
	switch t.Kind {
	case KwCharacter, KwScene, KwEntry, KwShow, KwHide, KwSay, KwChoice,
		KwIf, KwElse, KwGoto, KwWait, KwPlay, KwStop, KwSet, KwTransition,
		KwAt, KwBackground, KwMusic, KwSound, KwVoice, KwTrue, KwFalse:
		return true
	default:
		return false
	}
}

// IsMediaChannel reports whether the token names an audio channel.
func (t Token) IsMediaChannel() bool {
	switch t.Kind {
	case KwMusic, KwSound, KwVoice:
		return true
	default:
		return false
	}
}
