package token

// Kind enumerates NMScript token kinds.
type Kind uint8

const (
	EOF Kind = iota
	Invalid

	Ident
	StringLit
	NumberLit
	ColorLit // #RRGGBB

	// Keywords
	KwCharacter
	KwScene
	KwEntry
	KwShow
	KwHide
	KwSay
	KwChoice
	KwIf
	KwElse
	KwGoto
	KwWait
	KwPlay
	KwStop
	KwSet
	KwTransition
	KwAt
	KwBackground
	KwMusic
	KwSound
	KwVoice
	KwTrue
	KwFalse

	// Punctuation and operators
	LBrace
	RBrace
	LParen
	RParen
	Comma
	Dot
	Assign
	Plus
	Minus
	Star
	Slash
	Percent
	EqEq
	BangEq
	Lt
	LtEq
	Gt
	GtEq
	AndAnd
	OrOr
	Bang
)

var kindNames = map[Kind]string{
	EOF:          "EOF",
	Invalid:      "invalid",
	Ident:        "identifier",
	StringLit:    "string",
	NumberLit:    "number",
	ColorLit:     "color",
	KwCharacter:  "character",
	KwScene:      "scene",
	KwEntry:      "entry",
	KwShow:       "show",
	KwHide:       "hide",
	KwSay:        "say",
	KwChoice:     "choice",
	KwIf:         "if",
	KwElse:       "else",
	KwGoto:       "goto",
	KwWait:       "wait",
	KwPlay:       "play",
	KwStop:       "stop",
	KwSet:        "set",
	KwTransition: "transition",
	KwAt:         "at",
	KwBackground: "background",
	KwMusic:      "music",
	KwSound:      "sound",
	KwVoice:      "voice",
	KwTrue:       "true",
	KwFalse:      "false",
	LBrace:       "{",
	RBrace:       "}",
	LParen:       "(",
	RParen:       ")",
	Comma:        ",",
	Dot:          ".",
	Assign:       "=",
	Plus:         "+",
	Minus:        "-",
	Star:         "*",
	Slash:        "/",
	Percent:      "%",
	EqEq:         "==",
	BangEq:       "!=",
	Lt:           "<",
	LtEq:         "<=",
	Gt:           ">",
	GtEq:         ">=",
	AndAnd:       "&&",
	OrOr:         "||",
	Bang:         "!",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "unknown"
}

// Keywords maps keyword text to its kind.
var Keywords = map[string]Kind{
	"character":  KwCharacter,
	"scene":      KwScene,
	"entry":      KwEntry,
	"show":       KwShow,
	"hide":       KwHide,
	"say":        KwSay,
	"choice":     KwChoice,
	"if":         KwIf,
	"else":       KwElse,
	"goto":       KwGoto,
	"wait":       KwWait,
	"play":       KwPlay,
	"stop":       KwStop,
	"set":        KwSet,
	"transition": KwTransition,
	"at":         KwAt,
	"background": KwBackground,
	"music":      KwMusic,
	"sound":      KwSound,
	"voice":      KwVoice,
	"true":       KwTrue,
	"false":      KwFalse,
}
