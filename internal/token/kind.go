package token

// Kind is the category of a source token.
type Kind uint8

const (
	// Invalid marks an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of input.
	EOF

	Ident

	// Keywords.
	KwInclude    // include
	KwStruct     // struct
	KwTypedef    // typedef
	KwConst      // const
	KwStatic     // static
	KwNative     // native
	KwIf         // if
	KwElse       // else
	KwWhile      // while
	KwDo         // do
	KwFor        // for
	KwReturn     // return
	KwBreak      // break
	KwContinue   // continue
	KwBreakpoint // breakpoint
	KwTrue       // true
	KwFalse      // false
	KwNull       // null

	// Literals.
	IntLit
	FixedLit
	StringLit

	// Operators and punctuation.
	Plus          // +
	Minus         // -
	Star          // *
	Slash         // /
	Percent       // %
	Assign        // =
	PlusAssign    // +=
	MinusAssign   // -=
	StarAssign    // *=
	SlashAssign   // /=
	EqEq          // ==
	BangEq        // !=
	Lt            // <
	LtEq          // <=
	Gt            // >
	GtEq          // >=
	Shl           // <<
	Shr           // >>
	Amp           // &
	Pipe          // |
	Caret         // ^
	Tilde         // ~
	Bang          // !
	AndAnd        // &&
	OrOr          // ||
	Question      // ?
	Colon         // :
	Semicolon     // ;
	Comma         // ,
	Dot           // .
	LParen        // (
	RParen        // )
	LBrace        // {
	RBrace        // }
	LBracket      // [
	RBracket      // ]
)

var kindNames = map[Kind]string{
	Invalid:       "invalid",
	EOF:           "eof",
	Ident:         "identifier",
	KwInclude:     "include",
	KwStruct:      "struct",
	KwTypedef:     "typedef",
	KwConst:       "const",
	KwStatic:      "static",
	KwNative:      "native",
	KwIf:          "if",
	KwElse:        "else",
	KwWhile:       "while",
	KwDo:          "do",
	KwFor:         "for",
	KwReturn:      "return",
	KwBreak:       "break",
	KwContinue:    "continue",
	KwBreakpoint:  "breakpoint",
	KwTrue:        "true",
	KwFalse:       "false",
	KwNull:        "null",
	IntLit:        "integer literal",
	FixedLit:      "fixed literal",
	StringLit:     "string literal",
	Plus:          "+",
	Minus:         "-",
	Star:          "*",
	Slash:         "/",
	Percent:       "%",
	Assign:        "=",
	PlusAssign:    "+=",
	MinusAssign:   "-=",
	StarAssign:    "*=",
	SlashAssign:   "/=",
	EqEq:          "==",
	BangEq:        "!=",
	Lt:            "<",
	LtEq:          "<=",
	Gt:            ">",
	GtEq:          ">=",
	Shl:           "<<",
	Shr:           ">>",
	Amp:           "&",
	Pipe:          "|",
	Caret:         "^",
	Tilde:         "~",
	Bang:          "!",
	AndAnd:        "&&",
	OrOr:          "||",
	Question:      "?",
	Colon:         ":",
	Semicolon:     ";",
	Comma:         ",",
	Dot:           ".",
	LParen:        "(",
	RParen:        ")",
	LBrace:        "{",
	RBrace:        "}",
	LBracket:      "[",
	RBracket:      "]",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "unknown"
}
