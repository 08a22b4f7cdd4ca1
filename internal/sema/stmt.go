package sema

import (
	"galaxy/internal/ast"
	"galaxy/internal/diag"
)

func (c *Checker) checkStmt(id ast.StmtID) {
	if id == ast.NoStmtID {
		return
	}
	st := c.b.Stmts.Get(id)
	switch st.Kind {
	case ast.StmtBlock:
		data, _ := c.b.Stmts.Block(id)
		c.table.EnterBlock()
		for _, s := range data.Stmts {
			c.checkStmt(s)
		}
		c.table.LeaveScope()

	case ast.StmtLocalVar:
		data, _ := c.b.Stmts.LocalVar(id)
		if v, ok := c.b.Decls.Var(data.Decl); ok {
			c.declareVar(data.Decl, v)
		}

	case ast.StmtExpr:
		data, _ := c.b.Stmts.Expr(id)
		c.checkExpr(data.Expr)

	case ast.StmtIf:
		data, _ := c.b.Stmts.If(id)
		c.checkCondition(data.Cond)
		c.checkStmt(data.Then)
		c.checkStmt(data.Else)

	case ast.StmtWhile:
		data, _ := c.b.Stmts.While(id)
		c.checkCondition(data.Cond)
		c.inLoop(func() { c.checkStmt(data.Body) })

	case ast.StmtDoWhile:
		data, _ := c.b.Stmts.DoWhile(id)
		c.inLoop(func() { c.checkStmt(data.Body) })
		c.checkCondition(data.Cond)

	case ast.StmtFor:
		data, _ := c.b.Stmts.For(id)
		// The header declares into the loop's own scope.
		c.table.EnterBlock()
		c.checkStmt(data.Init)
		if data.Cond != ast.NoExprID {
			c.checkCondition(data.Cond)
		}
		c.checkExpr(data.Post)
		c.inLoop(func() { c.checkStmt(data.Body) })
		c.table.LeaveScope()

	case ast.StmtReturn:
		c.checkReturn(id)

	case ast.StmtBreak:
		if c.loopDepth == 0 {
			c.error(diag.SemaBreakOutsideLoop, st.Span, "break outside of a loop")
		}

	case ast.StmtContinue:
		if c.loopDepth == 0 {
			c.error(diag.SemaContinueOutsideLoop, st.Span, "continue outside of a loop")
		}

	case ast.StmtBreakpoint, ast.StmtEmpty:
		// Nothing to check.
	}
}

func (c *Checker) inLoop(body func()) {
	c.loopDepth++
	body()
	c.loopDepth--
}

// checkCondition requires the expression to be usable as a boolean.
func (c *Checker) checkCondition(e ast.ExprID) {
	t := c.checkExpr(e)
	if c.ti.IsError(t) {
		return
	}
	if !c.ti.Assignable(c.ti.Builtins().Bool, t) {
		c.errorf(diag.SemaBadCondition, c.b.Exprs.Get(e).Span,
			"condition has type %s, not bool", c.typeName(t))
	}
}

func (c *Checker) checkReturn(id ast.StmtID) {
	st := c.b.Stmts.Get(id)
	data, _ := c.b.Stmts.Return(id)
	if c.fn == nil {
		c.error(diag.SemaInfo, st.Span, "return outside of a function")
		return
	}
	void := c.ti.Builtins().Void
	isVoid := c.ti.Resolve(c.fn.ret) == void

	if data.Value == ast.NoExprID {
		if !isVoid {
			c.errorf(diag.SemaMissingReturnValue, st.Span,
				"missing return value in function returning %s", c.typeName(c.fn.ret))
		}
		return
	}

	t := c.checkExpr(data.Value)
	if isVoid {
		c.error(diag.SemaUnexpectedReturnValue, st.Span, "void function returns a value")
		return
	}
	if !c.ti.Assignable(c.fn.ret, t) {
		c.errorf(diag.SemaReturnTypeMismatch, c.b.Exprs.Get(data.Value).Span,
			"cannot return %s from a function returning %s", c.typeName(t), c.typeName(c.fn.ret))
	}
}
