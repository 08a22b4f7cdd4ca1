package ast

import "galaxy/internal/source"

type ExprKind uint8

const (
	ExprIdent ExprKind = iota
	ExprLit
	ExprUnary
	ExprBinary
	ExprAssign
	ExprTernary
	ExprCall
	ExprIndex
	ExprMember
	ExprCast
	ExprComma
	ExprInitList
	ExprGroup
)

type Expr struct {
	Kind    ExprKind
	Span    source.Span
	Payload PayloadID
}

type LitKind uint8

const (
	LitInt LitKind = iota
	LitFixed
	LitString
	LitBool
	LitNull
)

type UnaryOp uint8

const (
	UnaryNeg UnaryOp = iota // -
	UnaryNot                // !
	UnaryBitNot             // ~
	UnaryPlus               // +
)

type BinaryOp uint8

const (
	BinAdd BinaryOp = iota // +
	BinSub                 // -
	BinMul                 // *
	BinDiv                 // /
	BinMod                 // %
	BinShl                 // <<
	BinShr                 // >>
	BinBitAnd              // &
	BinBitOr               // |
	BinBitXor              // ^
	BinLt                  // <
	BinLe                  // <=
	BinGt                  // >
	BinGe                  // >=
	BinEq                  // ==
	BinNe                  // !=
	BinAnd                 // &&
	BinOr                  // ||
)

type AssignOp uint8

const (
	AssignSet AssignOp = iota // =
	AssignAdd                 // +=
	AssignSub                 // -=
	AssignMul                 // *=
	AssignDiv                 // /=
)

type ExprIdentData struct {
	Name source.StringID
}

// ExprLitData keeps the literal's raw text; sema decodes the value.
type ExprLitData struct {
	Kind  LitKind
	Value source.StringID
}

type ExprUnaryData struct {
	Op      UnaryOp
	Operand ExprID
}

type ExprBinaryData struct {
	Op    BinaryOp
	Left  ExprID
	Right ExprID
}

type ExprAssignData struct {
	Op     AssignOp
	Target ExprID
	Value  ExprID
}

type ExprTernaryData struct {
	Cond ExprID
	Then ExprID
	Else ExprID
}

type ExprCallData struct {
	Callee ExprID
	Args   []ExprID
}

type ExprIndexData struct {
	Base  ExprID
	Index ExprID
}

type ExprMemberData struct {
	Base     ExprID
	Name     source.StringID
	NameSpan source.Span
}

type ExprCastData struct {
	Type  TypeSpecID
	Value ExprID
}

type ExprCommaData struct {
	Items []ExprID
}

type ExprInitListData struct {
	Items []ExprID
}

type ExprGroupData struct {
	Inner ExprID
}
