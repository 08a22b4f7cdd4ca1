package ast

import "galaxy/internal/source"

// Decls manages allocation of top-level and local declarations.
type Decls struct {
	Arena    *Arena[Decl]
	Includes *Arena[DeclIncludeData]
	Vars     *Arena[DeclVarData]
	Funcs    *Arena[DeclFuncData]
	Structs  *Arena[DeclStructData]
	Typedefs *Arena[DeclTypedefData]
}

func NewDecls(capHint uint) *Decls {
	if capHint == 0 {
		capHint = 1 << 7
	}
	return &Decls{
		Arena:    NewArena[Decl](capHint),
		Includes: NewArena[DeclIncludeData](capHint),
		Vars:     NewArena[DeclVarData](capHint),
		Funcs:    NewArena[DeclFuncData](capHint),
		Structs:  NewArena[DeclStructData](capHint),
		Typedefs: NewArena[DeclTypedefData](capHint),
	}
}

func (d *Decls) new(kind DeclKind, span source.Span, payload PayloadID) DeclID {
	return DeclID(d.Arena.Allocate(Decl{Kind: kind, Span: span, Payload: payload}))
}

func (d *Decls) Get(id DeclID) *Decl {
	return d.Arena.Get(uint32(id))
}

func (d *Decls) NewInclude(span source.Span, data DeclIncludeData) DeclID {
	return d.new(DeclInclude, span, PayloadID(d.Includes.Allocate(data)))
}

func (d *Decls) Include(id DeclID) (*DeclIncludeData, bool) {
	decl := d.Get(id)
	if decl == nil || decl.Kind != DeclInclude {
		return nil, false
	}
	return d.Includes.Get(uint32(decl.Payload)), true
}

func (d *Decls) NewVar(span source.Span, data DeclVarData) DeclID {
	return d.new(DeclVar, span, PayloadID(d.Vars.Allocate(data)))
}

func (d *Decls) Var(id DeclID) (*DeclVarData, bool) {
	decl := d.Get(id)
	if decl == nil || decl.Kind != DeclVar {
		return nil, false
	}
	return d.Vars.Get(uint32(decl.Payload)), true
}

func (d *Decls) NewFunc(span source.Span, data DeclFuncData) DeclID {
	return d.new(DeclFunc, span, PayloadID(d.Funcs.Allocate(data)))
}

func (d *Decls) Func(id DeclID) (*DeclFuncData, bool) {
	decl := d.Get(id)
	if decl == nil || decl.Kind != DeclFunc {
		return nil, false
	}
	return d.Funcs.Get(uint32(decl.Payload)), true
}

func (d *Decls) NewStruct(span source.Span, data DeclStructData) DeclID {
	return d.new(DeclStruct, span, PayloadID(d.Structs.Allocate(data)))
}

func (d *Decls) Struct(id DeclID) (*DeclStructData, bool) {
	decl := d.Get(id)
	if decl == nil || decl.Kind != DeclStruct {
		return nil, false
	}
	return d.Structs.Get(uint32(decl.Payload)), true
}

func (d *Decls) NewTypedef(span source.Span, data DeclTypedefData) DeclID {
	return d.new(DeclTypedef, span, PayloadID(d.Typedefs.Allocate(data)))
}

func (d *Decls) Typedef(id DeclID) (*DeclTypedefData, bool) {
	decl := d.Get(id)
	if decl == nil || decl.Kind != DeclTypedef {
		return nil, false
	}
	return d.Typedefs.Get(uint32(decl.Payload)), true
}
