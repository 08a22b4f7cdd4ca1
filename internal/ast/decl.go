package ast

import "galaxy/internal/source"

type DeclKind uint8

const (
	DeclInclude DeclKind = iota
	DeclVar
	DeclFunc
	DeclStruct
	DeclTypedef
)

type Decl struct {
	Kind    DeclKind
	Span    source.Span
	Payload PayloadID
}

// Param is a function parameter. Type dimensions come from both the
// type spec and the declarator suffix; the parser merges them.
type Param struct {
	Span  source.Span
	Type  TypeSpecID
	Name  source.StringID
	Const bool
}

// Member is one declared name inside a struct body. A single member
// line with several comma-separated names yields several Members.
type Member struct {
	Span source.Span
	Type TypeSpecID
	Name source.StringID
}

type DeclIncludeData struct {
	// Path is the include string with quotes stripped.
	Path     source.StringID
	PathSpan source.Span
}

type DeclVarData struct {
	Type     TypeSpecID
	Name     source.StringID
	NameSpan source.Span
	Init     ExprID // NoExprID when absent
	Const    bool
	Static   bool
}

type DeclFuncData struct {
	Ret      TypeSpecID
	Name     source.StringID
	NameSpan source.Span
	Params   []Param
	Body     StmtID // NoStmtID for forward and native declarations
	Native   bool
	Static   bool
}

type DeclStructData struct {
	Name     source.StringID
	NameSpan source.Span
	Members  []Member
}

type DeclTypedefData struct {
	Base     TypeSpecID
	Name     source.StringID
	NameSpan source.Span
}
