package ast

import "galaxy/internal/source"

// Stmts manages allocation of statements.
type Stmts struct {
	Arena     *Arena[Stmt]
	Blocks    *Arena[StmtBlockData]
	LocalVars *Arena[StmtLocalVarData]
	Exprs     *Arena[StmtExprData]
	Ifs       *Arena[StmtIfData]
	Whiles    *Arena[StmtWhileData]
	DoWhiles  *Arena[StmtDoWhileData]
	Fors      *Arena[StmtForData]
	Returns   *Arena[StmtReturnData]
}

func NewStmts(capHint uint) *Stmts {
	if capHint == 0 {
		capHint = 1 << 8
	}
	return &Stmts{
		Arena:     NewArena[Stmt](capHint),
		Blocks:    NewArena[StmtBlockData](capHint),
		LocalVars: NewArena[StmtLocalVarData](capHint),
		Exprs:     NewArena[StmtExprData](capHint),
		Ifs:       NewArena[StmtIfData](capHint),
		Whiles:    NewArena[StmtWhileData](capHint),
		DoWhiles:  NewArena[StmtDoWhileData](capHint),
		Fors:      NewArena[StmtForData](capHint),
		Returns:   NewArena[StmtReturnData](capHint),
	}
}

func (s *Stmts) new(kind StmtKind, span source.Span, payload PayloadID) StmtID {
	return StmtID(s.Arena.Allocate(Stmt{Kind: kind, Span: span, Payload: payload}))
}

func (s *Stmts) Get(id StmtID) *Stmt {
	return s.Arena.Get(uint32(id))
}

func (s *Stmts) NewBlock(span source.Span, stmts []StmtID) StmtID {
	return s.new(StmtBlock, span, PayloadID(s.Blocks.Allocate(StmtBlockData{Stmts: stmts})))
}

func (s *Stmts) Block(id StmtID) (*StmtBlockData, bool) {
	st := s.Get(id)
	if st == nil || st.Kind != StmtBlock {
		return nil, false
	}
	return s.Blocks.Get(uint32(st.Payload)), true
}

func (s *Stmts) NewLocalVar(span source.Span, decl DeclID) StmtID {
	return s.new(StmtLocalVar, span, PayloadID(s.LocalVars.Allocate(StmtLocalVarData{Decl: decl})))
}

func (s *Stmts) LocalVar(id StmtID) (*StmtLocalVarData, bool) {
	st := s.Get(id)
	if st == nil || st.Kind != StmtLocalVar {
		return nil, false
	}
	return s.LocalVars.Get(uint32(st.Payload)), true
}

func (s *Stmts) NewExpr(span source.Span, expr ExprID) StmtID {
	return s.new(StmtExpr, span, PayloadID(s.Exprs.Allocate(StmtExprData{Expr: expr})))
}

func (s *Stmts) Expr(id StmtID) (*StmtExprData, bool) {
	st := s.Get(id)
	if st == nil || st.Kind != StmtExpr {
		return nil, false
	}
	return s.Exprs.Get(uint32(st.Payload)), true
}

func (s *Stmts) NewIf(span source.Span, data StmtIfData) StmtID {
	return s.new(StmtIf, span, PayloadID(s.Ifs.Allocate(data)))
}

func (s *Stmts) If(id StmtID) (*StmtIfData, bool) {
	st := s.Get(id)
	if st == nil || st.Kind != StmtIf {
		return nil, false
	}
	return s.Ifs.Get(uint32(st.Payload)), true
}

func (s *Stmts) NewWhile(span source.Span, data StmtWhileData) StmtID {
	return s.new(StmtWhile, span, PayloadID(s.Whiles.Allocate(data)))
}

func (s *Stmts) While(id StmtID) (*StmtWhileData, bool) {
	st := s.Get(id)
	if st == nil || st.Kind != StmtWhile {
		return nil, false
	}
	return s.Whiles.Get(uint32(st.Payload)), true
}

func (s *Stmts) NewDoWhile(span source.Span, data StmtDoWhileData) StmtID {
	return s.new(StmtDoWhile, span, PayloadID(s.DoWhiles.Allocate(data)))
}

func (s *Stmts) DoWhile(id StmtID) (*StmtDoWhileData, bool) {
	st := s.Get(id)
	if st == nil || st.Kind != StmtDoWhile {
		return nil, false
	}
	return s.DoWhiles.Get(uint32(st.Payload)), true
}

func (s *Stmts) NewFor(span source.Span, data StmtForData) StmtID {
	return s.new(StmtFor, span, PayloadID(s.Fors.Allocate(data)))
}

func (s *Stmts) For(id StmtID) (*StmtForData, bool) {
	st := s.Get(id)
	if st == nil || st.Kind != StmtFor {
		return nil, false
	}
	return s.Fors.Get(uint32(st.Payload)), true
}

func (s *Stmts) NewReturn(span source.Span, value ExprID) StmtID {
	return s.new(StmtReturn, span, PayloadID(s.Returns.Allocate(StmtReturnData{Value: value})))
}

func (s *Stmts) Return(id StmtID) (*StmtReturnData, bool) {
	st := s.Get(id)
	if st == nil || st.Kind != StmtReturn {
		return nil, false
	}
	return s.Returns.Get(uint32(st.Payload)), true
}

func (s *Stmts) NewBreak(span source.Span) StmtID {
	return s.new(StmtBreak, span, NoPayloadID)
}

func (s *Stmts) NewContinue(span source.Span) StmtID {
	return s.new(StmtContinue, span, NoPayloadID)
}

func (s *Stmts) NewBreakpoint(span source.Span) StmtID {
	return s.new(StmtBreakpoint, span, NoPayloadID)
}

func (s *Stmts) NewEmpty(span source.Span) StmtID {
	return s.new(StmtEmpty, span, NoPayloadID)
}
