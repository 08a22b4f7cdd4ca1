package diag

import "fmt"

type Code uint16

const (
	UnknownCode Code = 0

	// Lexical.
	LexInfo                     Code = 1000
	LexUnknownChar              Code = 1001
	LexUnterminatedString       Code = 1002
	LexUnterminatedBlockComment Code = 1003
	LexBadNumber                Code = 1004

	// Syntax.
	SynInfo             Code = 2000
	SynUnexpectedToken  Code = 2001
	SynExpectSemicolon  Code = 2002
	SynExpectIdentifier Code = 2003
	SynExpectExpression Code = 2004
	SynExpectType       Code = 2005
	SynUnclosedParen    Code = 2006
	SynUnclosedBrace    Code = 2007
	SynUnclosedBracket  Code = 2008
	SynBadIncludePath   Code = 2009
	SynBadDeclaration   Code = 2010
	SynBadStructMember  Code = 2011
	SynBadParameter     Code = 2012
	SynEmptyTypedef     Code = 2013
	SynStrayTopLevel    Code = 2014

	// Semantic.
	SemaInfo                  Code = 3000
	SemaInternal              Code = 3001
	SemaDuplicateSymbol       Code = 3002
	SemaUnresolvedSymbol      Code = 3003
	SemaUnknownType           Code = 3004
	SemaTypeMismatch          Code = 3005
	SemaInvalidBinaryOperands Code = 3006
	SemaInvalidUnaryOperand   Code = 3007
	SemaNotCallable           Code = 3008
	SemaArgCountMismatch      Code = 3009
	SemaArgTypeMismatch       Code = 3010
	SemaNotIndexable          Code = 3011
	SemaBadIndexType          Code = 3012
	SemaNoSuchMember          Code = 3013
	SemaNotAStruct            Code = 3014
	SemaNotAssignable         Code = 3015
	SemaConstNotConstant      Code = 3016
	SemaBadArraySize          Code = 3017
	SemaBreakOutsideLoop      Code = 3018
	SemaContinueOutsideLoop   Code = 3019
	SemaMissingReturnValue    Code = 3020
	SemaUnexpectedReturnValue Code = 3021
	SemaReturnTypeMismatch    Code = 3022
	SemaBadCast               Code = 3023
	SemaBadCondition          Code = 3024
	SemaRedefinedFunction     Code = 3025
	SemaSignatureMismatch     Code = 3026
	SemaVoidVariable          Code = 3027
	SemaMissingInclude        Code = 3028

	// I/O and driver.
	IOLoadFileError Code = 4001
	IOParseFailed   Code = 4002
	IOBadRoot       Code = 4003
)

var codeTitles = map[Code]string{
	UnknownCode:                 "unknown",
	LexInfo:                     "lexer note",
	LexUnknownChar:              "unknown character",
	LexUnterminatedString:       "unterminated string",
	LexUnterminatedBlockComment: "unterminated block comment",
	LexBadNumber:                "malformed number",
	SynInfo:                     "parser note",
	SynUnexpectedToken:          "unexpected token",
	SynExpectSemicolon:          "expected ';'",
	SynExpectIdentifier:         "expected identifier",
	SynExpectExpression:         "expected expression",
	SynExpectType:               "expected type",
	SynUnclosedParen:            "unclosed '('",
	SynUnclosedBrace:            "unclosed '{'",
	SynUnclosedBracket:          "unclosed '['",
	SynBadIncludePath:           "malformed include path",
	SynBadDeclaration:           "malformed declaration",
	SynBadStructMember:          "malformed struct member",
	SynBadParameter:             "malformed parameter",
	SynEmptyTypedef:             "malformed typedef",
	SynStrayTopLevel:            "stray top-level token",
	SemaInfo:                    "semantic note",
	SemaInternal:                "internal analyzer error",
	SemaDuplicateSymbol:         "duplicate symbol",
	SemaUnresolvedSymbol:        "unresolved identifier",
	SemaUnknownType:             "unknown type",
	SemaTypeMismatch:            "type mismatch",
	SemaInvalidBinaryOperands:   "invalid binary operands",
	SemaInvalidUnaryOperand:     "invalid unary operand",
	SemaNotCallable:             "not callable",
	SemaArgCountMismatch:        "wrong argument count",
	SemaArgTypeMismatch:         "wrong argument type",
	SemaNotIndexable:            "not indexable",
	SemaBadIndexType:            "index is not an integer",
	SemaNoSuchMember:            "no such member",
	SemaNotAStruct:              "not a struct",
	SemaNotAssignable:           "expression is not assignable",
	SemaConstNotConstant:        "initializer is not constant",
	SemaBadArraySize:            "array size must be a compile-time constant",
	SemaBreakOutsideLoop:        "break outside loop",
	SemaContinueOutsideLoop:     "continue outside loop",
	SemaMissingReturnValue:      "missing return value",
	SemaUnexpectedReturnValue:   "unexpected return value",
	SemaReturnTypeMismatch:      "return type mismatch",
	SemaBadCast:                 "invalid cast",
	SemaBadCondition:            "condition is not boolean",
	SemaRedefinedFunction:       "function redefined",
	SemaSignatureMismatch:       "conflicting declaration",
	SemaVoidVariable:            "variable of type void",
	SemaMissingInclude:          "include not found",
	IOLoadFileError:             "cannot read file",
	IOParseFailed:               "parse failed",
	IOBadRoot:                   "malformed syntax tree",
}

// ID renders the stable user-facing code, e.g. SEM3005.
func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("SEM%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	if t, ok := codeTitles[c]; ok {
		return t
	}
	return "unknown"
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
