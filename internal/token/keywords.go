package token

var keywords = map[string]Kind{
	"include":    KwInclude,
	"struct":     KwStruct,
	"typedef":    KwTypedef,
	"const":      KwConst,
	"static":     KwStatic,
	"native":     KwNative,
	"if":         KwIf,
	"else":       KwElse,
	"while":      KwWhile,
	"do":         KwDo,
	"for":        KwFor,
	"return":     KwReturn,
	"break":      KwBreak,
	"continue":   KwContinue,
	"breakpoint": KwBreakpoint,
	"true":       KwTrue,
	"false":      KwFalse,
	"null":       KwNull,
}

// LookupKeyword maps identifier text to its keyword kind, if any.
// Keywords are case-sensitive.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}
