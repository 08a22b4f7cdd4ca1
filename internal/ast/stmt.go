package ast

import "galaxy/internal/source"

type StmtKind uint8

const (
	StmtBlock StmtKind = iota
	StmtLocalVar
	StmtExpr
	StmtIf
	StmtWhile
	StmtDoWhile
	StmtFor
	StmtReturn
	StmtBreak
	StmtContinue
	StmtBreakpoint
	StmtEmpty
)

type Stmt struct {
	Kind    StmtKind
	Span    source.Span
	Payload PayloadID
}

type StmtBlockData struct {
	Stmts []StmtID
}

// StmtLocalVarData wraps a variable declaration used as a statement.
type StmtLocalVarData struct {
	Decl DeclID
}

type StmtExprData struct {
	Expr ExprID
}

type StmtIfData struct {
	Cond ExprID
	Then StmtID
	Else StmtID // NoStmtID when absent
}

type StmtWhileData struct {
	Cond ExprID
	Body StmtID
}

type StmtDoWhileData struct {
	Body StmtID
	Cond ExprID
}

// StmtForData: any of the three header clauses may be absent.
// Init is a statement so "for (int i = 0; ...)" declares into the
// loop's own scope.
type StmtForData struct {
	Init StmtID
	Cond ExprID
	Post ExprID
	Body StmtID
}

type StmtReturnData struct {
	Value ExprID // NoExprID for a bare return
}
