package symbols

import (
	"galaxy/internal/source"
	"galaxy/internal/types"
)

type Kind uint8

const (
	KindVar Kind = iota
	KindFunc
	// KindType covers struct names, typedef aliases and built-in type
	// names registered in the global scope.
	KindType
	KindParam
)

func (k Kind) String() string {
	switch k {
	case KindVar:
		return "var"
	case KindFunc:
		return "func"
	case KindType:
		return "type"
	case KindParam:
		return "param"
	}
	return "unknown"
}

// ConstKind tags which literal shape a cached constant value holds.
type ConstKind uint8

const (
	ConstNone ConstKind = iota
	ConstInt
	ConstFixed
	ConstBool
	ConstString
)

// ConstValue is the compile-time value cached on a const symbol when
// its initializer is statically evaluable.
type ConstValue struct {
	Kind  ConstKind
	Int   int64
	Fixed float64
	Bool  bool
	Str   source.StringID
}

// Symbol is one named entity: variable, parameter, function or type.
type Symbol struct {
	Name   source.StringID
	Type   types.TypeID
	Kind   Kind
	Span   source.Span
	Static bool
	Const  bool
	Native bool
	// Defined distinguishes a function forward declaration from its
	// definition; exactly one later definition is accepted.
	Defined bool
	Value   ConstValue
}
