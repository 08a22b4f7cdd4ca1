package types

// BinOp is a binary operator as seen by the type rules.
type BinOp uint8

const (
	OpAdd BinOp = iota
	OpSub
	OpMul
	OpDiv
	OpMod
	OpShl
	OpShr
	OpBitAnd
	OpBitOr
	OpBitXor
	OpLt
	OpLe
	OpGt
	OpGe
	OpEq
	OpNe
	OpAnd
	OpOr
)

func (in *Interner) kindOf(id TypeID) Kind {
	t, ok := in.Lookup(id)
	if !ok {
		return KindInvalid
	}
	return t.Kind
}

func (in *Interner) IsError(id TypeID) bool {
	return in.kindOf(id) == KindError
}

// IsNumeric reports whether the type (through typedefs) is int or fixed.
func (in *Interner) IsNumeric(id TypeID) bool {
	switch in.kindOf(in.Resolve(id)) {
	case KindInt, KindFixed:
		return true
	}
	return false
}

// IsArithmetic reports whether + - * / % apply.
func (in *Interner) IsArithmetic(id TypeID) bool {
	return in.IsNumeric(id)
}

// IsOrderable reports whether < > <= >= apply.
func (in *Interner) IsOrderable(id TypeID) bool {
	if in.IsNumeric(id) {
		return true
	}
	return in.kindOf(in.Resolve(id)) == KindString
}

// IsComparable reports whether == and != apply. Arrays, functions and
// structs are not comparable.
func (in *Interner) IsComparable(id TypeID) bool {
	switch in.kindOf(in.Resolve(id)) {
	case KindVoid, KindInt, KindFixed, KindBool, KindString, KindText,
		KindHandle, KindNull, KindError:
		return true
	}
	return false
}

// Same is loose type equality: the error type matches everything,
// typedefs compare by their resolved type, arrays by element (the
// declared size does not participate in identity), structs by name.
func (in *Interner) Same(a, b TypeID) bool {
	if in.IsError(a) || in.IsError(b) {
		return true
	}
	a, b = in.Resolve(a), in.Resolve(b)
	if a == b {
		return true
	}
	if in.IsError(a) || in.IsError(b) {
		return true
	}
	ta, tb := in.MustLookup(a), in.MustLookup(b)
	if ta.Kind != tb.Kind {
		return false
	}
	switch ta.Kind {
	case KindArray:
		return in.Same(ta.Elem, tb.Elem)
	case KindFunc:
		fa, fb := in.funcs[ta.Payload], in.funcs[tb.Payload]
		if len(fa.Params) != len(fb.Params) || !in.Same(fa.Ret, fb.Ret) {
			return false
		}
		for i := range fa.Params {
			if !in.Same(fa.Params[i], fb.Params[i]) {
				return false
			}
		}
		return true
	case KindStruct:
		return ta.Name == tb.Name
	}
	// Scalars and handles are interned, so a == b would have matched.
	return false
}

// Assignable reports whether src converts implicitly to dst.
// The rules are stricter than C: int and fixed interconvert, bool
// accepts any numeric, null assigns to handles, string and text.
func (in *Interner) Assignable(dst, src TypeID) bool {
	if in.IsError(dst) || in.IsError(src) {
		return true
	}
	if in.Same(dst, src) {
		return true
	}
	if in.IsNumeric(dst) && in.IsNumeric(src) {
		return true
	}
	rd, rs := in.Resolve(dst), in.Resolve(src)
	if in.kindOf(rd) == KindBool && in.IsNumeric(src) {
		return true
	}
	if in.kindOf(rs) == KindNull {
		switch in.kindOf(rd) {
		case KindHandle, KindString, KindText:
			return true
		}
	}
	return false
}

// BinaryResult returns the result type of a binary operator applied to
// the given operand types, or false when the combination is not
// supported. Error operands short-circuit to Error.
func (in *Interner) BinaryResult(op BinOp, l, r TypeID) (TypeID, bool) {
	b := in.builtins
	if in.IsError(l) || in.IsError(r) {
		return b.Error, true
	}

	switch op {
	case OpAdd, OpSub, OpMul, OpDiv, OpMod:
		if in.IsArithmetic(l) && in.IsArithmetic(r) {
			if in.kindOf(in.Resolve(l)) == KindFixed || in.kindOf(in.Resolve(r)) == KindFixed {
				return b.Fixed, true
			}
			return b.Int, true
		}
		// String concatenation.
		if op == OpAdd && in.kindOf(in.Resolve(l)) == KindString && in.kindOf(in.Resolve(r)) == KindString {
			return b.String, true
		}
		return NoTypeID, false

	case OpShl, OpShr, OpBitAnd, OpBitOr, OpBitXor:
		if in.kindOf(in.Resolve(l)) == KindInt && in.kindOf(in.Resolve(r)) == KindInt {
			return b.Int, true
		}
		return NoTypeID, false

	case OpLt, OpLe, OpGt, OpGe:
		if in.IsOrderable(l) && in.Same(l, r) {
			return b.Bool, true
		}
		if in.IsNumeric(l) && in.IsNumeric(r) {
			return b.Bool, true
		}
		return NoTypeID, false

	case OpEq, OpNe:
		if in.kindOf(in.Resolve(l)) == KindNull || in.kindOf(in.Resolve(r)) == KindNull {
			return b.Bool, true
		}
		if in.IsComparable(l) && in.IsComparable(r) {
			if in.Assignable(l, r) || in.Assignable(r, l) {
				return b.Bool, true
			}
		}
		return NoTypeID, false

	case OpAnd, OpOr:
		if in.Assignable(b.Bool, l) && in.Assignable(b.Bool, r) {
			return b.Bool, true
		}
		return NoTypeID, false
	}

	return NoTypeID, false
}
