package parser

import (
	"testing"

	"galaxy/internal/ast"
	"galaxy/internal/diag"
	"galaxy/internal/source"
)

type parseResult struct {
	b    *ast.Builder
	unit ast.UnitID
	bag  *diag.Bag
	ok   bool
}

func parseSrc(t *testing.T, src string) parseResult {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.galaxy", []byte(src))
	b := ast.NewBuilder(ast.Hints{})
	bag := diag.NewBag(64)
	p := New(fs.Get(id), b, Options{Reporter: diag.BagReporter{Bag: bag}})
	unit, ok := p.ParseUnit()
	return parseResult{b: b, unit: unit, bag: bag, ok: ok}
}

func (r parseResult) decls(t *testing.T, want int) []ast.DeclID {
	t.Helper()
	u := r.b.Units.Get(r.unit)
	if len(u.Decls) != want {
		t.Fatalf("got %d top-level decls, want %d", len(u.Decls), want)
	}
	return u.Decls
}

func (r parseResult) mustOK(t *testing.T) {
	t.Helper()
	if !r.ok {
		for _, d := range r.bag.Items() {
			t.Logf("diag: %s %s", d.Code.ID(), d.Message)
		}
		t.Fatalf("parse reported errors")
	}
}

func TestParseGlobals(t *testing.T) {
	r := parseSrc(t, `
const int N = 4;
int board[8][8];
string greeting = "hi";
`)
	r.mustOK(t)
	ids := r.decls(t, 3)

	n, ok := r.b.Decls.Var(ids[0])
	if !ok || !n.Const {
		t.Fatalf("first decl is not a const var")
	}
	if r.b.Name(n.Name) != "N" || n.Init == ast.NoExprID {
		t.Fatalf("const decl name/init wrong")
	}

	board, ok := r.b.Decls.Var(ids[1])
	if !ok {
		t.Fatalf("second decl is not a var")
	}
	ts := r.b.TypeSpecs.Get(board.Type)
	if r.b.Name(ts.Name) != "int" || len(ts.Dims) != 2 {
		t.Fatalf("array dims not attached to type spec: %q dims=%d", r.b.Name(ts.Name), len(ts.Dims))
	}
}

func TestParseMultiDeclarator(t *testing.T) {
	r := parseSrc(t, `int a = 1, b, c = 2;`)
	r.mustOK(t)
	ids := r.decls(t, 3)
	names := []string{"a", "b", "c"}
	inits := []bool{true, false, true}
	for i, id := range ids {
		v, ok := r.b.Decls.Var(id)
		if !ok {
			t.Fatalf("decl %d is not a var", i)
		}
		if got := r.b.Name(v.Name); got != names[i] {
			t.Fatalf("decl %d name = %q, want %q", i, got, names[i])
		}
		if (v.Init != ast.NoExprID) != inits[i] {
			t.Fatalf("decl %d init presence wrong", i)
		}
	}
}

func TestParseFunction(t *testing.T) {
	r := parseSrc(t, `
int add(int a, const int b) {
    return a + b;
}
`)
	r.mustOK(t)
	ids := r.decls(t, 1)
	fn, ok := r.b.Decls.Func(ids[0])
	if !ok {
		t.Fatalf("not a function")
	}
	if r.b.Name(fn.Name) != "add" || len(fn.Params) != 2 {
		t.Fatalf("bad signature: %q / %d params", r.b.Name(fn.Name), len(fn.Params))
	}
	if fn.Params[0].Const || !fn.Params[1].Const {
		t.Fatalf("param const flags wrong")
	}
	if fn.Body == ast.NoStmtID {
		t.Fatalf("missing body")
	}
	body, ok := r.b.Stmts.Block(fn.Body)
	if !ok || len(body.Stmts) != 1 {
		t.Fatalf("body is not a one-statement block")
	}
	ret, ok := r.b.Stmts.Return(body.Stmts[0])
	if !ok || ret.Value == ast.NoExprID {
		t.Fatalf("body statement is not return with a value")
	}
}

func TestParseNative(t *testing.T) {
	r := parseSrc(t, `native void UnitKill(unit u);`)
	r.mustOK(t)
	ids := r.decls(t, 1)
	fn, ok := r.b.Decls.Func(ids[0])
	if !ok || !fn.Native {
		t.Fatalf("not a native function")
	}
	if fn.Body != ast.NoStmtID {
		t.Fatalf("native has a body")
	}
}

func TestParseStruct(t *testing.T) {
	r := parseSrc(t, `
struct Pair {
    int first, second;
    fixed weight;
};
`)
	r.mustOK(t)
	ids := r.decls(t, 1)
	st, ok := r.b.Decls.Struct(ids[0])
	if !ok {
		t.Fatalf("not a struct")
	}
	if r.b.Name(st.Name) != "Pair" || len(st.Members) != 3 {
		t.Fatalf("struct shape wrong: %q / %d members", r.b.Name(st.Name), len(st.Members))
	}
	if r.b.Name(st.Members[1].Name) != "second" {
		t.Fatalf("comma-separated member missing")
	}
}

func TestParseTypedefAndInclude(t *testing.T) {
	r := parseSrc(t, `
include "TriggerLibs/NativeLib"
typedef int[8] row;
`)
	r.mustOK(t)
	ids := r.decls(t, 2)
	inc, ok := r.b.Decls.Include(ids[0])
	if !ok || r.b.Name(inc.Path) != "TriggerLibs/NativeLib" {
		t.Fatalf("include path wrong")
	}
	td, ok := r.b.Decls.Typedef(ids[1])
	if !ok || r.b.Name(td.Name) != "row" {
		t.Fatalf("typedef wrong")
	}
	base := r.b.TypeSpecs.Get(td.Base)
	if len(base.Dims) != 1 {
		t.Fatalf("typedef base lost its array dimension")
	}
}

// exprOfLastStmt digs the expression out of the single statement of the
// single function in src.
func exprOfStmt(t *testing.T, src string) (parseResult, ast.ExprID) {
	t.Helper()
	r := parseSrc(t, "void f() { "+src+" }")
	r.mustOK(t)
	fn, _ := r.b.Decls.Func(r.decls(t, 1)[0])
	body, _ := r.b.Stmts.Block(fn.Body)
	if len(body.Stmts) != 1 {
		t.Fatalf("got %d statements, want 1", len(body.Stmts))
	}
	es, ok := r.b.Stmts.Expr(body.Stmts[0])
	if !ok {
		t.Fatalf("statement is not an expression statement")
	}
	return r, es.Expr
}

func TestExprPrecedence(t *testing.T) {
	r, e := exprOfStmt(t, "x = 1 + 2 * 3;")
	asn, ok := r.b.Exprs.Assign(e)
	if !ok || asn.Op != ast.AssignSet {
		t.Fatalf("top is not plain assignment")
	}
	add, ok := r.b.Exprs.Binary(asn.Value)
	if !ok || add.Op != ast.BinAdd {
		t.Fatalf("value is not an addition")
	}
	mul, ok := r.b.Exprs.Binary(add.Right)
	if !ok || mul.Op != ast.BinMul {
		t.Fatalf("multiplication did not bind tighter than addition")
	}
}

func TestAssignRightAssociative(t *testing.T) {
	r, e := exprOfStmt(t, "a = b = 1;")
	outer, ok := r.b.Exprs.Assign(e)
	if !ok {
		t.Fatalf("not an assignment")
	}
	if _, ok := r.b.Exprs.Assign(outer.Value); !ok {
		t.Fatalf("nested assignment not on the right")
	}
}

func TestCompoundAssign(t *testing.T) {
	r, e := exprOfStmt(t, "a += 2;")
	asn, ok := r.b.Exprs.Assign(e)
	if !ok || asn.Op != ast.AssignAdd {
		t.Fatalf("compound assignment op wrong")
	}
}

func TestTernary(t *testing.T) {
	r, e := exprOfStmt(t, "x = a < b ? a : b;")
	asn, _ := r.b.Exprs.Assign(e)
	ter, ok := r.b.Exprs.Ternary(asn.Value)
	if !ok {
		t.Fatalf("value is not a ternary")
	}
	cond, ok := r.b.Exprs.Binary(ter.Cond)
	if !ok || cond.Op != ast.BinLt {
		t.Fatalf("comparison did not become the condition")
	}
}

func TestCastVersusGroup(t *testing.T) {
	r, e := exprOfStmt(t, "x = (fixed) n;")
	asn, _ := r.b.Exprs.Assign(e)
	cast, ok := r.b.Exprs.Cast(asn.Value)
	if !ok {
		t.Fatalf("(fixed) n did not parse as a cast")
	}
	if r.b.Name(r.b.TypeSpecs.Get(cast.Type).Name) != "fixed" {
		t.Fatalf("cast target wrong")
	}

	r, e = exprOfStmt(t, "x = (n) - 1;")
	asn, _ = r.b.Exprs.Assign(e)
	sub, ok := r.b.Exprs.Binary(asn.Value)
	if !ok || sub.Op != ast.BinSub {
		t.Fatalf("(n) - 1 did not parse as grouped subtraction")
	}
	if _, ok := r.b.Exprs.Group(sub.Left); !ok {
		t.Fatalf("left side is not a parenthesized group")
	}
}

func TestPostfixChain(t *testing.T) {
	r, e := exprOfStmt(t, "f(1, 2)[0].x;")
	mem, ok := r.b.Exprs.Member(e)
	if !ok || r.b.Name(mem.Name) != "x" {
		t.Fatalf("outermost is not .x member access")
	}
	idx, ok := r.b.Exprs.Index(mem.Base)
	if !ok {
		t.Fatalf("member base is not an index")
	}
	call, ok := r.b.Exprs.Call(idx.Base)
	if !ok || len(call.Args) != 2 {
		t.Fatalf("index base is not a two-argument call")
	}
}

func TestCommaExpression(t *testing.T) {
	r, e := exprOfStmt(t, "a = 1, b = 2;")
	comma, ok := r.b.Exprs.Comma(e)
	if !ok || len(comma.Items) != 2 {
		t.Fatalf("comma expression not folded: ok=%v", ok)
	}
}

func TestUnaryChain(t *testing.T) {
	r, e := exprOfStmt(t, "x = -~n;")
	asn, _ := r.b.Exprs.Assign(e)
	neg, ok := r.b.Exprs.Unary(asn.Value)
	if !ok || neg.Op != ast.UnaryNeg {
		t.Fatalf("outer unary wrong")
	}
	bnot, ok := r.b.Exprs.Unary(neg.Operand)
	if !ok || bnot.Op != ast.UnaryBitNot {
		t.Fatalf("inner unary wrong")
	}
}

func TestControlFlowStatements(t *testing.T) {
	r := parseSrc(t, `
void f() {
    if (a) { b(); } else { c(); }
    while (x) { x -= 1; }
    do { x += 1; } while (x < 10);
    for (int i = 0; i < 8; i += 1) { use(i); }
    for (;;) { break; }
}
`)
	r.mustOK(t)
	fn, _ := r.b.Decls.Func(r.decls(t, 1)[0])
	body, _ := r.b.Stmts.Block(fn.Body)
	if len(body.Stmts) != 5 {
		t.Fatalf("got %d statements, want 5", len(body.Stmts))
	}
	ifd, ok := r.b.Stmts.If(body.Stmts[0])
	if !ok || ifd.Else == ast.NoStmtID {
		t.Fatalf("if/else shape wrong")
	}
	if _, ok := r.b.Stmts.While(body.Stmts[1]); !ok {
		t.Fatalf("while missing")
	}
	if _, ok := r.b.Stmts.DoWhile(body.Stmts[2]); !ok {
		t.Fatalf("do-while missing")
	}
	ford, ok := r.b.Stmts.For(body.Stmts[3])
	if !ok || ford.Init == ast.NoStmtID || ford.Cond == ast.NoExprID || ford.Post == ast.NoExprID {
		t.Fatalf("for with declaration init has wrong shape")
	}
	if _, ok := r.b.Stmts.LocalVar(ford.Init); !ok {
		t.Fatalf("for init is not a local declaration")
	}
	empty, ok := r.b.Stmts.For(body.Stmts[4])
	if !ok || empty.Init != ast.NoStmtID || empty.Cond != ast.NoExprID || empty.Post != ast.NoExprID {
		t.Fatalf("for(;;) has wrong shape")
	}
}

func TestLocalDeclExpansion(t *testing.T) {
	r := parseSrc(t, `
void f() {
    int a = 1, b = 2;
}
`)
	r.mustOK(t)
	fn, _ := r.b.Decls.Func(r.decls(t, 1)[0])
	body, _ := r.b.Stmts.Block(fn.Body)
	if len(body.Stmts) != 2 {
		t.Fatalf("multi-declarator did not expand: got %d statements", len(body.Stmts))
	}
	for _, s := range body.Stmts {
		if _, ok := r.b.Stmts.LocalVar(s); !ok {
			t.Fatalf("expanded statement is not a local var")
		}
	}
}

func TestInitializerList(t *testing.T) {
	r := parseSrc(t, `int table[2] = {1, 2};`)
	r.mustOK(t)
	v, _ := r.b.Decls.Var(r.decls(t, 1)[0])
	lst, ok := r.b.Exprs.InitList(v.Init)
	if !ok || len(lst.Items) != 2 {
		t.Fatalf("initializer list shape wrong")
	}
}

func TestRecoveryKeepsGoing(t *testing.T) {
	r := parseSrc(t, `
int = 4;
int y;
`)
	if r.ok {
		t.Fatalf("expected a syntax error")
	}
	if !r.bag.HasErrors() {
		t.Fatalf("no diagnostics recorded")
	}
	u := r.b.Units.Get(r.unit)
	found := false
	for _, id := range u.Decls {
		if v, ok := r.b.Decls.Var(id); ok && r.b.Name(v.Name) == "y" {
			found = true
		}
	}
	if !found {
		t.Fatalf("parser did not recover to parse the following declaration")
	}
}

func TestStructMemberRecovery(t *testing.T) {
	r := parseSrc(t, `
struct S {
    int a;
    int 5;
    int b;
};
`)
	if r.ok {
		t.Fatalf("expected a syntax error")
	}
	st, ok := r.b.Decls.Struct(r.decls(t, 1)[0])
	if !ok {
		t.Fatalf("struct lost entirely")
	}
	last := st.Members[len(st.Members)-1]
	if r.b.Name(last.Name) != "b" {
		t.Fatalf("member after the bad line was dropped")
	}
}

func TestDeclaratorArraySuffix(t *testing.T) {
	r := parseSrc(t, `
int a, b[2];
int[2] rows[8];
struct node {
    noderef children[4];
    int tag;
};
void f(int xs[4]) {}
`)
	r.mustOK(t)
	ids := r.decls(t, 5)

	a, _ := r.b.Decls.Var(ids[0])
	if got := len(r.b.TypeSpecs.Get(a.Type).Dims); got != 0 {
		t.Fatalf("a has %d dims, want 0", got)
	}
	bv, _ := r.b.Decls.Var(ids[1])
	if got := len(r.b.TypeSpecs.Get(bv.Type).Dims); got != 1 {
		t.Fatalf("b has %d dims, want 1", got)
	}

	// Declarator dims are outermost: int[2] rows[8] is 8 rows of int[2].
	rows, _ := r.b.Decls.Var(ids[2])
	ts := r.b.TypeSpecs.Get(rows.Type)
	if len(ts.Dims) != 2 {
		t.Fatalf("rows has %d dims, want 2", len(ts.Dims))
	}
	outer, ok := r.b.Exprs.Literal(ts.Dims[0])
	if !ok || r.b.Name(outer.Value) != "8" {
		t.Fatalf("outermost dim is not the declarator's 8")
	}
	inner, ok := r.b.Exprs.Literal(ts.Dims[1])
	if !ok || r.b.Name(inner.Value) != "2" {
		t.Fatalf("innermost dim is not the type's 2")
	}

	st, ok := r.b.Decls.Struct(ids[3])
	if !ok || len(st.Members) != 2 {
		t.Fatalf("struct shape wrong")
	}
	if got := len(r.b.TypeSpecs.Get(st.Members[0].Type).Dims); got != 1 {
		t.Fatalf("children has %d dims, want 1", got)
	}
	if got := len(r.b.TypeSpecs.Get(st.Members[1].Type).Dims); got != 0 {
		t.Fatalf("tag has %d dims, want 0", got)
	}

	fn, ok := r.b.Decls.Func(ids[4])
	if !ok || len(fn.Params) != 1 {
		t.Fatalf("function shape wrong")
	}
	if got := len(r.b.TypeSpecs.Get(fn.Params[0].Type).Dims); got != 1 {
		t.Fatalf("xs has %d dims, want 1", got)
	}
}
