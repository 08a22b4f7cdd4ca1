package token

import "galaxy/internal/source"

// Token is a single source token with its location.
type Token struct {
	Kind Kind
	Span source.Span
	Text string
}

// IsLiteral reports whether the token is a numeric, boolean, string, or
// null literal.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case IntLit, FixedLit, StringLit, KwTrue, KwFalse, KwNull:
		return true
	default:
		return false
	}
}

// IsKeyword reports whether the token is a language keyword.
func (t Token) IsKeyword() bool {
	switch t.Kind {
	case KwInclude, KwStruct, KwTypedef, KwConst, KwStatic, KwNative,
		KwIf, KwElse, KwWhile, KwDo, KwFor, KwReturn, KwBreak, KwContinue,
		KwBreakpoint, KwTrue, KwFalse, KwNull:
		return true
	default:
		return false
	}
}

// IsAssignOp reports whether the token is '=' or a compound assignment.
func (t Token) IsAssignOp() bool {
	switch t.Kind {
	case Assign, PlusAssign, MinusAssign, StarAssign, SlashAssign:
		return true
	default:
		return false
	}
}
