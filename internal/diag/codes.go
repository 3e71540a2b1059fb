package diag

import "fmt"

// Code identifies a diagnostic kind. The numbering mirrors the pipeline
// stages: 1xxx lexical, 2xxx syntax, 3xxx semantic. Semantic codes are
// grouped by concern (characters, scenes, variables, control flow,
// expressions, resources, choices).
type Code uint16

const (
	UnknownCode Code = 0

	// Lexical (1xxx)
	LexUnexpectedChar     Code = 1001
	LexUnterminatedString Code = 1002
	LexBadNumber          Code = 1003
	LexUnterminatedBlock  Code = 1005

	// Syntax (2xxx)
	SynUnexpectedToken    Code = 2001
	SynExpectedIdentifier Code = 2002
	SynExpectedExpression Code = 2003
	SynExpectedStatement  Code = 2004
	SynExpectedLBrace     Code = 2005
	SynExpectedRBrace     Code = 2006
	SynExpectedString     Code = 2009

	// Semantic - characters (30xx)
	UndefinedCharacter           Code = 3001
	DuplicateCharacterDefinition Code = 3002
	UnusedCharacter              Code = 3003

	// Semantic - scenes (31xx)
	UndefinedScene           Code = 3101
	DuplicateSceneDefinition Code = 3102
	UnusedScene              Code = 3103
	EmptyScene               Code = 3104
	UnreachableScene         Code = 3105

	// Semantic - variables (32xx)
	UndefinedVariable Code = 3201
	UnusedVariable    Code = 3202

	// Semantic - control flow (33xx)
	DeadCode          Code = 3301
	InvalidGotoTarget Code = 3305

	// Semantic - expressions (34xx)
	UnknownProperty Code = 3401
	UnknownFunction Code = 3402

	// Semantic - resources (35xx)
	MissingAsset Code = 3501

	// Semantic - choices (36xx)
	EmptyChoiceBlock      Code = 3601
	InvalidTransitionType Code = 3602
)

// String renders the stable identifier form, e.g. "E3001".
func (c Code) String() string {
	return fmt.Sprintf("E%04d", uint16(c))
}

// Description returns a short human-readable name for the code.
func (c Code) Description() string {
	switch c {
	case LexUnexpectedChar:
		return "unexpected character"
	case LexUnterminatedString:
		return "unterminated string literal"
	case LexBadNumber:
		return "invalid number format"
	case LexUnterminatedBlock:
		return "unterminated block comment"
	case SynUnexpectedToken:
		return "unexpected token"
	case SynExpectedIdentifier:
		return "expected identifier"
	case SynExpectedExpression:
		return "expected expression"
	case SynExpectedStatement:
		return "expected statement"
	case SynExpectedLBrace:
		return "expected '{'"
	case SynExpectedRBrace:
		return "expected '}'"
	case SynExpectedString:
		return "expected string"
	case UndefinedCharacter:
		return "undefined character"
	case DuplicateCharacterDefinition:
		return "duplicate character definition"
	case UnusedCharacter:
		return "unused character"
	case UndefinedScene:
		return "undefined scene"
	case DuplicateSceneDefinition:
		return "duplicate scene definition"
	case UnusedScene:
		return "unused scene"
	case EmptyScene:
		return "empty scene"
	case UnreachableScene:
		return "unreachable scene"
	case UndefinedVariable:
		return "undefined variable"
	case UnusedVariable:
		return "unused variable"
	case DeadCode:
		return "dead code"
	case InvalidGotoTarget:
		return "invalid goto target"
	case UnknownProperty:
		return "unknown property"
	case UnknownFunction:
		return "unknown function"
	case MissingAsset:
		return "missing asset"
	case EmptyChoiceBlock:
		return "empty choice block"
	case InvalidTransitionType:
		return "invalid transition type"
	}
	return "unknown diagnostic"
}
