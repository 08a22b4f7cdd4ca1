package ast

import "galaxy/internal/source"

// Exprs manages allocation of expressions.
type Exprs struct {
	Arena     *Arena[Expr]
	Idents    *Arena[ExprIdentData]
	Literals  *Arena[ExprLitData]
	Unaries   *Arena[ExprUnaryData]
	Binaries  *Arena[ExprBinaryData]
	Assigns   *Arena[ExprAssignData]
	Ternaries *Arena[ExprTernaryData]
	Calls     *Arena[ExprCallData]
	Indices   *Arena[ExprIndexData]
	Members   *Arena[ExprMemberData]
	Casts     *Arena[ExprCastData]
	Commas    *Arena[ExprCommaData]
	InitLists *Arena[ExprInitListData]
	Groups    *Arena[ExprGroupData]
}

func NewExprs(capHint uint) *Exprs {
	if capHint == 0 {
		capHint = 1 << 8
	}
	return &Exprs{
		Arena:     NewArena[Expr](capHint),
		Idents:    NewArena[ExprIdentData](capHint),
		Literals:  NewArena[ExprLitData](capHint),
		Unaries:   NewArena[ExprUnaryData](capHint),
		Binaries:  NewArena[ExprBinaryData](capHint),
		Assigns:   NewArena[ExprAssignData](capHint),
		Ternaries: NewArena[ExprTernaryData](capHint),
		Calls:     NewArena[ExprCallData](capHint),
		Indices:   NewArena[ExprIndexData](capHint),
		Members:   NewArena[ExprMemberData](capHint),
		Casts:     NewArena[ExprCastData](capHint),
		Commas:    NewArena[ExprCommaData](capHint),
		InitLists: NewArena[ExprInitListData](capHint),
		Groups:    NewArena[ExprGroupData](capHint),
	}
}

func (e *Exprs) new(kind ExprKind, span source.Span, payload PayloadID) ExprID {
	return ExprID(e.Arena.Allocate(Expr{Kind: kind, Span: span, Payload: payload}))
}

func (e *Exprs) Get(id ExprID) *Expr {
	return e.Arena.Get(uint32(id))
}

func (e *Exprs) NewIdent(span source.Span, name source.StringID) ExprID {
	return e.new(ExprIdent, span, PayloadID(e.Idents.Allocate(ExprIdentData{Name: name})))
}

func (e *Exprs) Ident(id ExprID) (*ExprIdentData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprIdent {
		return nil, false
	}
	return e.Idents.Get(uint32(expr.Payload)), true
}

func (e *Exprs) NewLiteral(span source.Span, kind LitKind, value source.StringID) ExprID {
	return e.new(ExprLit, span, PayloadID(e.Literals.Allocate(ExprLitData{Kind: kind, Value: value})))
}

func (e *Exprs) Literal(id ExprID) (*ExprLitData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprLit {
		return nil, false
	}
	return e.Literals.Get(uint32(expr.Payload)), true
}

func (e *Exprs) NewUnary(span source.Span, op UnaryOp, operand ExprID) ExprID {
	return e.new(ExprUnary, span, PayloadID(e.Unaries.Allocate(ExprUnaryData{Op: op, Operand: operand})))
}

func (e *Exprs) Unary(id ExprID) (*ExprUnaryData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprUnary {
		return nil, false
	}
	return e.Unaries.Get(uint32(expr.Payload)), true
}

func (e *Exprs) NewBinary(span source.Span, op BinaryOp, left, right ExprID) ExprID {
	return e.new(ExprBinary, span, PayloadID(e.Binaries.Allocate(ExprBinaryData{Op: op, Left: left, Right: right})))
}

func (e *Exprs) Binary(id ExprID) (*ExprBinaryData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprBinary {
		return nil, false
	}
	return e.Binaries.Get(uint32(expr.Payload)), true
}

func (e *Exprs) NewAssign(span source.Span, op AssignOp, target, value ExprID) ExprID {
	return e.new(ExprAssign, span, PayloadID(e.Assigns.Allocate(ExprAssignData{Op: op, Target: target, Value: value})))
}

func (e *Exprs) Assign(id ExprID) (*ExprAssignData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprAssign {
		return nil, false
	}
	return e.Assigns.Get(uint32(expr.Payload)), true
}

func (e *Exprs) NewTernary(span source.Span, cond, then, els ExprID) ExprID {
	return e.new(ExprTernary, span, PayloadID(e.Ternaries.Allocate(ExprTernaryData{Cond: cond, Then: then, Else: els})))
}

func (e *Exprs) Ternary(id ExprID) (*ExprTernaryData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprTernary {
		return nil, false
	}
	return e.Ternaries.Get(uint32(expr.Payload)), true
}

func (e *Exprs) NewCall(span source.Span, callee ExprID, args []ExprID) ExprID {
	return e.new(ExprCall, span, PayloadID(e.Calls.Allocate(ExprCallData{Callee: callee, Args: args})))
}

func (e *Exprs) Call(id ExprID) (*ExprCallData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprCall {
		return nil, false
	}
	return e.Calls.Get(uint32(expr.Payload)), true
}

func (e *Exprs) NewIndex(span source.Span, base, index ExprID) ExprID {
	return e.new(ExprIndex, span, PayloadID(e.Indices.Allocate(ExprIndexData{Base: base, Index: index})))
}

func (e *Exprs) Index(id ExprID) (*ExprIndexData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprIndex {
		return nil, false
	}
	return e.Indices.Get(uint32(expr.Payload)), true
}

func (e *Exprs) NewMember(span source.Span, base ExprID, name source.StringID, nameSpan source.Span) ExprID {
	return e.new(ExprMember, span, PayloadID(e.Members.Allocate(ExprMemberData{Base: base, Name: name, NameSpan: nameSpan})))
}

func (e *Exprs) Member(id ExprID) (*ExprMemberData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprMember {
		return nil, false
	}
	return e.Members.Get(uint32(expr.Payload)), true
}

func (e *Exprs) NewCast(span source.Span, typ TypeSpecID, value ExprID) ExprID {
	return e.new(ExprCast, span, PayloadID(e.Casts.Allocate(ExprCastData{Type: typ, Value: value})))
}

func (e *Exprs) Cast(id ExprID) (*ExprCastData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprCast {
		return nil, false
	}
	return e.Casts.Get(uint32(expr.Payload)), true
}

func (e *Exprs) NewComma(span source.Span, items []ExprID) ExprID {
	return e.new(ExprComma, span, PayloadID(e.Commas.Allocate(ExprCommaData{Items: items})))
}

func (e *Exprs) Comma(id ExprID) (*ExprCommaData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprComma {
		return nil, false
	}
	return e.Commas.Get(uint32(expr.Payload)), true
}

func (e *Exprs) NewInitList(span source.Span, items []ExprID) ExprID {
	return e.new(ExprInitList, span, PayloadID(e.InitLists.Allocate(ExprInitListData{Items: items})))
}

func (e *Exprs) InitList(id ExprID) (*ExprInitListData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprInitList {
		return nil, false
	}
	return e.InitLists.Get(uint32(expr.Payload)), true
}

func (e *Exprs) NewGroup(span source.Span, inner ExprID) ExprID {
	return e.new(ExprGroup, span, PayloadID(e.Groups.Allocate(ExprGroupData{Inner: inner})))
}

func (e *Exprs) Group(id ExprID) (*ExprGroupData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprGroup {
		return nil, false
	}
	return e.Groups.Get(uint32(expr.Payload)), true
}
