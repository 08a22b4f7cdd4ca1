package sema

import (
	"strconv"

	"galaxy/internal/ast"
	"galaxy/internal/symbols"
)

// evalConstInt statically evaluates an integer constant expression:
// integer literals, previously defined integer constants, + - * / %
// and unary minus. Division and modulo floor toward negative infinity.
func (c *Checker) evalConstInt(id ast.ExprID) (int64, bool) {
	if id == ast.NoExprID {
		return 0, false
	}
	e := c.b.Exprs.Get(id)
	switch e.Kind {
	case ast.ExprLit:
		data, _ := c.b.Exprs.Literal(id)
		if data.Kind != ast.LitInt {
			return 0, false
		}
		v, err := strconv.ParseInt(c.name(data.Value), 0, 64)
		if err != nil {
			return 0, false
		}
		return v, true

	case ast.ExprIdent:
		data, _ := c.b.Exprs.Ident(id)
		sym := c.table.Lookup(data.Name)
		if sym == nil || !sym.Const || sym.Value.Kind != symbols.ConstInt {
			return 0, false
		}
		return sym.Value.Int, true

	case ast.ExprGroup:
		data, _ := c.b.Exprs.Group(id)
		return c.evalConstInt(data.Inner)

	case ast.ExprUnary:
		data, _ := c.b.Exprs.Unary(id)
		v, ok := c.evalConstInt(data.Operand)
		if !ok {
			return 0, false
		}
		switch data.Op {
		case ast.UnaryNeg:
			return -v, true
		case ast.UnaryPlus:
			return v, true
		}
		return 0, false

	case ast.ExprBinary:
		data, _ := c.b.Exprs.Binary(id)
		l, ok := c.evalConstInt(data.Left)
		if !ok {
			return 0, false
		}
		r, ok := c.evalConstInt(data.Right)
		if !ok {
			return 0, false
		}
		switch data.Op {
		case ast.BinAdd:
			return l + r, true
		case ast.BinSub:
			return l - r, true
		case ast.BinMul:
			return l * r, true
		case ast.BinDiv:
			if r == 0 {
				return 0, false
			}
			return floorDiv(l, r), true
		case ast.BinMod:
			if r == 0 {
				return 0, false
			}
			return floorMod(l, r), true
		}
		return 0, false
	}
	return 0, false
}

func floorDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

func floorMod(a, b int64) int64 {
	m := a % b
	if m != 0 && (m < 0) != (b < 0) {
		m += b
	}
	return m
}

// constValueOf caches the value of a literal initializer on a constant
// symbol. Non-literal initializers leave the value unset; the caller
// falls back to evalConstInt for integer constants.
func (c *Checker) constValueOf(init ast.ExprID) symbols.ConstValue {
	for {
		g, ok := c.b.Exprs.Group(init)
		if !ok {
			break
		}
		init = g.Inner
	}
	lit, ok := c.b.Exprs.Literal(init)
	if !ok {
		return symbols.ConstValue{}
	}
	switch lit.Kind {
	case ast.LitInt:
		if v, err := strconv.ParseInt(c.name(lit.Value), 0, 64); err == nil {
			return symbols.ConstValue{Kind: symbols.ConstInt, Int: v}
		}
	case ast.LitFixed:
		if v, err := strconv.ParseFloat(c.name(lit.Value), 64); err == nil {
			return symbols.ConstValue{Kind: symbols.ConstFixed, Fixed: v}
		}
	case ast.LitBool:
		return symbols.ConstValue{Kind: symbols.ConstBool, Bool: c.name(lit.Value) == "true"}
	case ast.LitString:
		return symbols.ConstValue{Kind: symbols.ConstString, Str: lit.Value}
	}
	return symbols.ConstValue{}
}
