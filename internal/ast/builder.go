package ast

import "galaxy/internal/source"

type Hints struct{ Units, Decls, Stmts, Exprs uint }

// Builder owns every arena of one syntax tree plus the string interner
// identifiers and literals point into.
type Builder struct {
	Units     *Units
	Decls     *Decls
	Stmts     *Stmts
	Exprs     *Exprs
	TypeSpecs *TypeSpecs
	Strings   *source.Interner
}

func NewBuilder(hints Hints) *Builder {
	if hints.Units == 0 {
		hints.Units = 1 << 3
	}
	if hints.Decls == 0 {
		hints.Decls = 1 << 7
	}
	if hints.Stmts == 0 {
		hints.Stmts = 1 << 8
	}
	if hints.Exprs == 0 {
		hints.Exprs = 1 << 8
	}
	return &Builder{
		Units:     NewUnits(hints.Units),
		Decls:     NewDecls(hints.Decls),
		Stmts:     NewStmts(hints.Stmts),
		Exprs:     NewExprs(hints.Exprs),
		TypeSpecs: NewTypeSpecs(hints.Decls),
		Strings:   source.NewInterner(),
	}
}

// PushDecl appends a declaration to a unit's top level.
func (b *Builder) PushDecl(unit UnitID, decl DeclID) {
	u := b.Units.Get(unit)
	u.Decls = append(u.Decls, decl)
}

// Name resolves an interned identifier back to its text.
func (b *Builder) Name(id source.StringID) string {
	return b.Strings.MustLookup(id)
}
