package ast

import "galaxy/internal/source"

// Unit is a translation unit: the ordered top-level declarations of one
// source file.
type Unit struct {
	Span  source.Span
	File  source.FileID
	Decls []DeclID
}

type Units struct {
	Arena *Arena[Unit]
}

func NewUnits(capHint uint) *Units {
	return &Units{Arena: NewArena[Unit](capHint)}
}

func (u *Units) New(span source.Span, file source.FileID) UnitID {
	return UnitID(u.Arena.Allocate(Unit{Span: span, File: file}))
}

func (u *Units) Get(id UnitID) *Unit {
	return u.Arena.Get(uint32(id))
}
