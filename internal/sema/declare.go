package sema

import (
	"galaxy/internal/ast"
	"galaxy/internal/diag"
	"galaxy/internal/source"
	"galaxy/internal/symbols"
	"galaxy/internal/types"
)

// typeFromSpec resolves a syntactic type spec to a type. Array
// dimensions wrap right to left, so int[2][3] is two rows of int[3].
func (c *Checker) typeFromSpec(id ast.TypeSpecID) types.TypeID {
	if id == ast.NoTypeSpecID {
		return c.ti.Builtins().Error
	}
	ts := c.b.TypeSpecs.Get(id)
	sym := c.table.Lookup(ts.Name)
	if sym == nil || sym.Kind != symbols.KindType {
		c.errorf(diag.SemaUnknownType, ts.Span, "unknown type %q", c.name(ts.Name))
		return c.ti.Builtins().Error
	}
	t := sym.Type
	for i := len(ts.Dims) - 1; i >= 0; i-- {
		t = c.arrayOf(t, ts.Dims[i])
	}
	return t
}

func (c *Checker) arrayOf(elem types.TypeID, dim ast.ExprID) types.TypeID {
	if dim == ast.NoExprID {
		return c.ti.Array(elem, 0, false)
	}
	n, ok := c.evalConstInt(dim)
	if !ok || n < 0 {
		sp := c.b.Exprs.Get(dim).Span
		c.error(diag.SemaBadArraySize, sp, "array size must be a compile-time constant integer expression")
		return c.ti.Array(elem, 0, false)
	}
	return c.ti.Array(elem, uint32(n), true)
}

// declareConstGlobals registers global constants first so later array
// dimensions and initializers can refer to them.
func (c *Checker) declareConstGlobals(u *ast.Unit) {
	for _, id := range u.Decls {
		v, ok := c.b.Decls.Var(id)
		if !ok || !v.Const {
			continue
		}
		c.declareVar(id, v)
	}
}

// declareTypeNames forward-registers struct and typedef names so
// members and aliases can reference types declared later in the file.
func (c *Checker) declareTypeNames(u *ast.Unit) {
	for _, id := range u.Decls {
		d := c.b.Decls.Get(id)
		switch d.Kind {
		case ast.DeclStruct:
			st, _ := c.b.Decls.Struct(id)
			c.defineNamedType(st.Name, st.NameSpan, c.ti.NewStruct(st.Name))
		case ast.DeclTypedef:
			td, _ := c.b.Decls.Typedef(id)
			c.defineNamedType(td.Name, td.NameSpan, c.ti.NewTypedef(td.Name))
		}
	}
}

func (c *Checker) defineNamedType(name source.StringID, span source.Span, t types.TypeID) {
	ok := c.table.Define(&symbols.Symbol{
		Name: name,
		Type: t,
		Kind: symbols.KindType,
		Span: span,
	})
	if !ok {
		c.errorf(diag.SemaDuplicateSymbol, span, "redefinition of %q", c.name(name))
	}
}

// fillTypeNames completes the forward-declared structs and typedefs in
// place, so self-referential definitions resolve.
func (c *Checker) fillTypeNames(u *ast.Unit) {
	for _, id := range u.Decls {
		d := c.b.Decls.Get(id)
		switch d.Kind {
		case ast.DeclStruct:
			st, _ := c.b.Decls.Struct(id)
			sym := c.table.LookupGlobal(st.Name)
			if sym == nil || sym.Kind != symbols.KindType {
				continue
			}
			members := make([]types.StructMember, 0, len(st.Members))
			seen := make(map[source.StringID]bool, len(st.Members))
			for _, m := range st.Members {
				if seen[m.Name] {
					c.errorf(diag.SemaDuplicateSymbol, m.Span,
						"duplicate member %q in struct %q", c.name(m.Name), c.name(st.Name))
					continue
				}
				seen[m.Name] = true
				members = append(members, types.StructMember{
					Name: m.Name,
					Type: c.typeFromSpec(m.Type),
				})
			}
			c.ti.DefineStructMembers(sym.Type, members)
		case ast.DeclTypedef:
			td, _ := c.b.Decls.Typedef(id)
			sym := c.table.LookupGlobal(td.Name)
			if sym == nil || sym.Kind != symbols.KindType {
				continue
			}
			c.ti.SetUnderlying(sym.Type, c.typeFromSpec(td.Base))
		}
	}
}

// declareGlobals runs after declareFunctions so global initializers
// can call functions declared anywhere in the unit.
func (c *Checker) declareGlobals(u *ast.Unit) {
	for _, id := range u.Decls {
		v, ok := c.b.Decls.Var(id)
		if !ok || v.Const {
			continue
		}
		c.declareVar(id, v)
	}
}

// declareVar handles both global passes and local declarations: it
// resolves the type, checks the initializer and defines the symbol.
func (c *Checker) declareVar(id ast.DeclID, v *ast.DeclVarData) {
	d := c.b.Decls.Get(id)
	t := c.typeFromSpec(v.Type)
	if c.ti.Resolve(t) == c.ti.Builtins().Void {
		c.errorf(diag.SemaVoidVariable, d.Span, "variable %q declared void", c.name(v.Name))
		t = c.ti.Builtins().Error
	}

	sym := &symbols.Symbol{
		Name:   v.Name,
		Type:   t,
		Kind:   symbols.KindVar,
		Span:   v.NameSpan,
		Static: v.Static,
		Const:  v.Const,
	}
	if v.Const && v.Init != ast.NoExprID {
		sym.Value = c.constValueOf(v.Init)
		// Integer constants fold fully, so chains like
		// "const int kB = kA;" stay usable as array sizes.
		if sym.Value.Kind == symbols.ConstNone && c.ti.Resolve(t) == c.ti.Builtins().Int {
			if n, ok := c.evalConstInt(v.Init); ok {
				sym.Value = symbols.ConstValue{Kind: symbols.ConstInt, Int: n}
			}
		}
	}

	if v.Init != ast.NoExprID {
		it := c.checkExpr(v.Init)
		if !c.ti.Assignable(t, it) {
			c.errorf(diag.SemaTypeMismatch, c.b.Exprs.Get(v.Init).Span,
				"cannot initialize %q (%s) with %s", c.name(v.Name), c.typeName(t), c.typeName(it))
		}
	} else if v.Const {
		c.errorf(diag.SemaConstNotConstant, d.Span,
			"constant %q must have an initializer", c.name(v.Name))
	}

	if !c.table.Define(sym) {
		c.errorf(diag.SemaDuplicateSymbol, v.NameSpan, "redefinition of %q", c.name(v.Name))
	}
}

// declareFunctions registers signatures. A repeated identical forward
// declaration is fine; the single later definition fills it in. A
// conflicting signature or a second body keeps the original symbol.
func (c *Checker) declareFunctions(u *ast.Unit) {
	for _, id := range u.Decls {
		fn, ok := c.b.Decls.Func(id)
		if !ok {
			continue
		}
		params := make([]types.TypeID, len(fn.Params))
		for i, p := range fn.Params {
			params[i] = c.typeFromSpec(p.Type)
		}
		sig := c.ti.Func(c.typeFromSpec(fn.Ret), params)
		hasBody := fn.Body != ast.NoStmtID || fn.Native

		prev := c.table.LookupGlobal(fn.Name)
		if prev == nil {
			c.table.Define(&symbols.Symbol{
				Name:    fn.Name,
				Type:    sig,
				Kind:    symbols.KindFunc,
				Span:    fn.NameSpan,
				Static:  fn.Static,
				Native:  fn.Native,
				Defined: hasBody,
			})
			continue
		}
		if prev.Kind != symbols.KindFunc {
			c.errorf(diag.SemaDuplicateSymbol, fn.NameSpan, "redefinition of %q", c.name(fn.Name))
			continue
		}
		if !c.ti.Same(prev.Type, sig) {
			c.errorf(diag.SemaSignatureMismatch, fn.NameSpan,
				"declaration of %q conflicts with previous signature %s", c.name(fn.Name), c.typeName(prev.Type))
			continue
		}
		if hasBody {
			if prev.Defined {
				c.errorf(diag.SemaRedefinedFunction, fn.NameSpan,
					"function %q is already defined", c.name(fn.Name))
				continue
			}
			prev.Defined = true
		}
	}
}

// checkBodies is pass two: every function body is checked in its own
// function scope with parameters bound.
func (c *Checker) checkBodies(u *ast.Unit) {
	for _, id := range u.Decls {
		fn, ok := c.b.Decls.Func(id)
		if !ok || fn.Body == ast.NoStmtID {
			continue
		}
		sym := c.table.LookupGlobal(fn.Name)
		if sym == nil || sym.Kind != symbols.KindFunc {
			continue
		}
		info, ok := c.ti.FuncOf(sym.Type)
		if !ok {
			continue
		}

		c.fn = &funcCtx{sym: sym, ret: info.Ret}
		c.loopDepth = 0
		c.table.EnterFunction(c.name(fn.Name))
		for i, p := range fn.Params {
			t := c.ti.Builtins().Error
			if i < len(info.Params) {
				t = info.Params[i]
			}
			ok := c.table.Define(&symbols.Symbol{
				Name:  p.Name,
				Type:  t,
				Kind:  symbols.KindParam,
				Span:  p.Span,
				Const: p.Const,
			})
			if !ok {
				c.errorf(diag.SemaDuplicateSymbol, p.Span, "duplicate parameter %q", c.name(p.Name))
			}
		}
		c.checkStmt(fn.Body)
		c.table.LeaveScope()
		c.fn = nil
	}
}
