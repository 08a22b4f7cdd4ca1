package ast

import "galaxy/internal/source"

// TypeSpec is a syntactic type reference: a base type name plus zero or
// more array dimension expressions from declarator suffixes. A missing
// dimension expression (as in a parameter like "int[] a") is NoExprID.
type TypeSpec struct {
	Span source.Span
	Name source.StringID
	Dims []ExprID
}

type TypeSpecs struct {
	Arena *Arena[TypeSpec]
}

func NewTypeSpecs(capHint uint) *TypeSpecs {
	return &TypeSpecs{Arena: NewArena[TypeSpec](capHint)}
}

func (t *TypeSpecs) New(span source.Span, name source.StringID, dims []ExprID) TypeSpecID {
	return TypeSpecID(t.Arena.Allocate(TypeSpec{Span: span, Name: name, Dims: dims}))
}

func (t *TypeSpecs) Get(id TypeSpecID) *TypeSpec {
	return t.Arena.Get(uint32(id))
}
