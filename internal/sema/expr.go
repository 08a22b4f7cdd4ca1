package sema

import (
	"galaxy/internal/ast"
	"galaxy/internal/diag"
	"galaxy/internal/symbols"
	"galaxy/internal/types"
)

var binOpRules = map[ast.BinaryOp]types.BinOp{
	ast.BinAdd:    types.OpAdd,
	ast.BinSub:    types.OpSub,
	ast.BinMul:    types.OpMul,
	ast.BinDiv:    types.OpDiv,
	ast.BinMod:    types.OpMod,
	ast.BinShl:    types.OpShl,
	ast.BinShr:    types.OpShr,
	ast.BinBitAnd: types.OpBitAnd,
	ast.BinBitOr:  types.OpBitOr,
	ast.BinBitXor: types.OpBitXor,
	ast.BinLt:     types.OpLt,
	ast.BinLe:     types.OpLe,
	ast.BinGt:     types.OpGt,
	ast.BinGe:     types.OpGe,
	ast.BinEq:     types.OpEq,
	ast.BinNe:     types.OpNe,
	ast.BinAnd:    types.OpAnd,
	ast.BinOr:     types.OpOr,
}

var binOpNames = map[ast.BinaryOp]string{
	ast.BinAdd: "+", ast.BinSub: "-", ast.BinMul: "*", ast.BinDiv: "/",
	ast.BinMod: "%", ast.BinShl: "<<", ast.BinShr: ">>", ast.BinBitAnd: "&",
	ast.BinBitOr: "|", ast.BinBitXor: "^", ast.BinLt: "<", ast.BinLe: "<=",
	ast.BinGt: ">", ast.BinGe: ">=", ast.BinEq: "==", ast.BinNe: "!=",
	ast.BinAnd: "&&", ast.BinOr: "||",
}

// compoundBase maps a compound assignment onto its underlying operator.
var compoundBase = map[ast.AssignOp]types.BinOp{
	ast.AssignAdd: types.OpAdd,
	ast.AssignSub: types.OpSub,
	ast.AssignMul: types.OpMul,
	ast.AssignDiv: types.OpDiv,
}

// checkExpr computes and records the type of an expression. A missing
// expression types as void so optional positions need no special case.
func (c *Checker) checkExpr(id ast.ExprID) types.TypeID {
	if id == ast.NoExprID {
		return c.ti.Builtins().Void
	}
	t := c.exprType(id)
	c.exprTypes[id] = t
	return t
}

func (c *Checker) exprType(id ast.ExprID) types.TypeID {
	b := c.ti.Builtins()
	e := c.b.Exprs.Get(id)
	switch e.Kind {
	case ast.ExprIdent:
		data, _ := c.b.Exprs.Ident(id)
		sym := c.table.Lookup(data.Name)
		if sym == nil {
			// Unresolved names degrade to a warning: most scripts lean
			// on the huge native library, which is rarely loaded whole.
			c.warning(diag.SemaUnresolvedSymbol, e.Span,
				"unresolved identifier "+quoted(c.name(data.Name)))
			return b.Error
		}
		c.refs[id] = sym
		return sym.Type

	case ast.ExprLit:
		data, _ := c.b.Exprs.Literal(id)
		switch data.Kind {
		case ast.LitInt:
			return b.Int
		case ast.LitFixed:
			return b.Fixed
		case ast.LitString:
			return b.String
		case ast.LitBool:
			return b.Bool
		case ast.LitNull:
			return b.Null
		}
		return b.Error

	case ast.ExprUnary:
		return c.checkUnary(id)

	case ast.ExprBinary:
		return c.checkBinary(id)

	case ast.ExprAssign:
		return c.checkAssign(id)

	case ast.ExprTernary:
		return c.checkTernary(id)

	case ast.ExprCall:
		return c.checkCall(id)

	case ast.ExprIndex:
		return c.checkIndex(id)

	case ast.ExprMember:
		return c.checkMember(id)

	case ast.ExprCast:
		data, _ := c.b.Exprs.Cast(id)
		target := c.typeFromSpec(data.Type)
		vt := c.checkExpr(data.Value)
		if !c.ti.IsError(target) && !c.ti.IsError(vt) && !c.ti.Assignable(target, vt) {
			c.warning(diag.SemaBadCast, e.Span,
				"suspicious cast from "+c.typeName(vt)+" to "+c.typeName(target))
		}
		return target

	case ast.ExprComma:
		data, _ := c.b.Exprs.Comma(id)
		last := b.Void
		for _, item := range data.Items {
			last = c.checkExpr(item)
		}
		return last

	case ast.ExprInitList:
		// Initializer lists have no standalone type. Members are still
		// visited so nested errors surface.
		data, _ := c.b.Exprs.InitList(id)
		for _, item := range data.Items {
			c.checkExpr(item)
		}
		return b.Error

	case ast.ExprGroup:
		data, _ := c.b.Exprs.Group(id)
		return c.checkExpr(data.Inner)
	}
	return b.Error
}

func (c *Checker) checkUnary(id ast.ExprID) types.TypeID {
	b := c.ti.Builtins()
	e := c.b.Exprs.Get(id)
	data, _ := c.b.Exprs.Unary(id)
	t := c.checkExpr(data.Operand)
	if c.ti.IsError(t) {
		return b.Error
	}
	switch data.Op {
	case ast.UnaryNeg, ast.UnaryPlus:
		if c.ti.IsArithmetic(t) {
			return t
		}
		c.errorf(diag.SemaInvalidUnaryOperand, e.Span, "unary +/- needs a numeric operand, got %s", c.typeName(t))
	case ast.UnaryNot:
		if c.ti.Assignable(b.Bool, t) {
			return b.Bool
		}
		c.errorf(diag.SemaInvalidUnaryOperand, e.Span, "operator ! needs a boolean operand, got %s", c.typeName(t))
	case ast.UnaryBitNot:
		if c.ti.Resolve(t) == b.Int {
			return b.Int
		}
		c.errorf(diag.SemaInvalidUnaryOperand, e.Span, "operator ~ needs an int operand, got %s", c.typeName(t))
	}
	return b.Error
}

func (c *Checker) checkBinary(id ast.ExprID) types.TypeID {
	e := c.b.Exprs.Get(id)
	data, _ := c.b.Exprs.Binary(id)
	lt := c.checkExpr(data.Left)
	rt := c.checkExpr(data.Right)
	if t, ok := c.ti.BinaryResult(binOpRules[data.Op], lt, rt); ok {
		return t
	}
	c.errorf(diag.SemaInvalidBinaryOperands, e.Span,
		"operator %s not supported for %s and %s", binOpNames[data.Op], c.typeName(lt), c.typeName(rt))
	return c.ti.Builtins().Error
}

func (c *Checker) checkAssign(id ast.ExprID) types.TypeID {
	e := c.b.Exprs.Get(id)
	data, _ := c.b.Exprs.Assign(id)
	lt := c.checkExpr(data.Target)
	vt := c.checkExpr(data.Value)
	c.checkLValue(data.Target)

	if base, ok := compoundBase[data.Op]; ok {
		rt, supported := c.ti.BinaryResult(base, lt, vt)
		if !supported {
			c.errorf(diag.SemaInvalidBinaryOperands, e.Span,
				"compound assignment not supported for %s and %s", c.typeName(lt), c.typeName(vt))
			return lt
		}
		vt = rt
	}
	if !c.ti.Assignable(lt, vt) {
		c.errorf(diag.SemaTypeMismatch, e.Span,
			"cannot assign %s to %s", c.typeName(vt), c.typeName(lt))
	}
	return lt
}

// checkLValue rejects assignment targets that are not storage:
// constants, functions, type names and arbitrary expressions.
func (c *Checker) checkLValue(target ast.ExprID) {
	for {
		g, ok := c.b.Exprs.Group(target)
		if !ok {
			break
		}
		target = g.Inner
	}
	e := c.b.Exprs.Get(target)
	switch e.Kind {
	case ast.ExprIdent:
		sym := c.refs[target]
		if sym == nil {
			return // already diagnosed as unresolved
		}
		switch {
		case sym.Const:
			c.error(diag.SemaNotAssignable, e.Span, "cannot assign to constant "+quoted(c.name(sym.Name)))
		case sym.Kind == symbols.KindFunc || sym.Kind == symbols.KindType:
			c.error(diag.SemaNotAssignable, e.Span, quoted(c.name(sym.Name))+" is not assignable")
		}
	case ast.ExprIndex, ast.ExprMember:
		// Element and member slots are storage.
	default:
		c.error(diag.SemaNotAssignable, e.Span, "expression is not assignable")
	}
}

func (c *Checker) checkTernary(id ast.ExprID) types.TypeID {
	e := c.b.Exprs.Get(id)
	data, _ := c.b.Exprs.Ternary(id)
	c.checkCondition(data.Cond)
	t1 := c.checkExpr(data.Then)
	t2 := c.checkExpr(data.Else)
	switch {
	case c.ti.Same(t1, t2):
		return t1
	case c.ti.Assignable(t1, t2):
		return t1
	case c.ti.Assignable(t2, t1):
		return t2
	}
	c.errorf(diag.SemaTypeMismatch, e.Span,
		"ternary branches have incompatible types %s and %s", c.typeName(t1), c.typeName(t2))
	return c.ti.Builtins().Error
}

func (c *Checker) checkCall(id ast.ExprID) types.TypeID {
	b := c.ti.Builtins()
	e := c.b.Exprs.Get(id)
	data, _ := c.b.Exprs.Call(id)
	ct := c.checkExpr(data.Callee)

	argTypes := make([]types.TypeID, len(data.Args))
	for i, a := range data.Args {
		argTypes[i] = c.checkExpr(a)
	}

	if c.ti.IsError(ct) {
		return b.Error
	}
	info, ok := c.ti.FuncOf(c.ti.Resolve(ct))
	if !ok {
		c.errorf(diag.SemaNotCallable, e.Span, "called value has type %s, not a function", c.typeName(ct))
		return b.Error
	}
	if len(argTypes) != len(info.Params) {
		c.errorf(diag.SemaArgCountMismatch, e.Span,
			"call takes %d arguments, %d given", len(info.Params), len(argTypes))
		return info.Ret
	}
	for i, at := range argTypes {
		if !c.ti.Assignable(info.Params[i], at) {
			c.errorf(diag.SemaArgTypeMismatch, c.b.Exprs.Get(data.Args[i]).Span,
				"argument %d has type %s, expected %s", i+1, c.typeName(at), c.typeName(info.Params[i]))
		}
	}
	return info.Ret
}

func (c *Checker) checkIndex(id ast.ExprID) types.TypeID {
	b := c.ti.Builtins()
	e := c.b.Exprs.Get(id)
	data, _ := c.b.Exprs.Index(id)
	bt := c.checkExpr(data.Base)
	it := c.checkExpr(data.Index)

	if !c.ti.IsError(it) && c.ti.Resolve(it) != b.Int {
		c.errorf(diag.SemaBadIndexType, c.b.Exprs.Get(data.Index).Span,
			"array index has type %s, not int", c.typeName(it))
	}
	rt := c.ti.Resolve(bt)
	if c.ti.IsError(rt) {
		return b.Error
	}
	if t, ok := c.ti.Lookup(rt); ok && t.Kind == types.KindArray {
		return t.Elem
	}
	c.errorf(diag.SemaNotIndexable, e.Span, "type %s is not indexable", c.typeName(bt))
	return b.Error
}

func (c *Checker) checkMember(id ast.ExprID) types.TypeID {
	b := c.ti.Builtins()
	data, _ := c.b.Exprs.Member(id)
	bt := c.ti.Resolve(c.checkExpr(data.Base))
	if c.ti.IsError(bt) {
		return b.Error
	}
	info, ok := c.ti.StructOf(bt)
	if !ok {
		c.errorf(diag.SemaNotAStruct, data.NameSpan,
			"member access on %s, which is not a struct", c.typeName(bt))
		return b.Error
	}
	if !info.Defined {
		c.errorf(diag.SemaNotAStruct, data.NameSpan,
			"struct %s is not fully defined here", quoted(c.name(info.Name)))
		return b.Error
	}
	for _, m := range info.Members {
		if m.Name == data.Name {
			return m.Type
		}
	}
	c.errorf(diag.SemaNoSuchMember, data.NameSpan,
		"struct %s has no member %s", quoted(c.name(info.Name)), quoted(c.name(data.Name)))
	return b.Error
}

func quoted(s string) string {
	return "'" + s + "'"
}
