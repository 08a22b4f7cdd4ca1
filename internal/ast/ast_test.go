package ast

import (
	"testing"

	"galaxy/internal/source"
)

func TestArenaIDsAreOneBased(t *testing.T) {
	a := NewArena[int](4)
	if got := a.Get(0); got != nil {
		t.Fatal("index 0 must be nil")
	}
	id := a.Allocate(42)
	if id != 1 {
		t.Fatalf("first id = %d, want 1", id)
	}
	if *a.Get(id) != 42 {
		t.Fatalf("Get(%d) = %d", id, *a.Get(id))
	}
}

func TestBuilderRoundTrip(t *testing.T) {
	b := NewBuilder(Hints{})
	sp := source.Span{File: 1, Start: 0, End: 6}

	name := b.Strings.Intern("x")
	lit := b.Exprs.NewLiteral(sp, LitInt, b.Strings.Intern("3"))
	ts := b.TypeSpecs.New(sp, b.Strings.Intern("int"), nil)
	decl := b.Decls.NewVar(sp, DeclVarData{Type: ts, Name: name, Init: lit})

	unit := b.Units.New(sp, 1)
	b.PushDecl(unit, decl)

	u := b.Units.Get(unit)
	if len(u.Decls) != 1 || u.Decls[0] != decl {
		t.Fatalf("unit decls = %v", u.Decls)
	}
	v, ok := b.Decls.Var(decl)
	if !ok || b.Name(v.Name) != "x" {
		t.Fatalf("var lookup failed: %v %v", v, ok)
	}
	if _, ok := b.Decls.Func(decl); ok {
		t.Fatal("kind-checked accessor must reject mismatched kinds")
	}
	l, ok := b.Exprs.Literal(v.Init)
	if !ok || l.Kind != LitInt || b.Name(l.Value) != "3" {
		t.Fatalf("literal = %+v %v", l, ok)
	}
}

func TestExprAccessorsRejectWrongKind(t *testing.T) {
	b := NewBuilder(Hints{})
	sp := source.Span{File: 1}
	id := b.Exprs.NewIdent(sp, b.Strings.Intern("f"))
	call := b.Exprs.NewCall(sp, id, []ExprID{id})
	if _, ok := b.Exprs.Binary(call); ok {
		t.Fatal("Binary() on a call must fail")
	}
	c, ok := b.Exprs.Call(call)
	if !ok || c.Callee != id || len(c.Args) != 1 {
		t.Fatalf("call data = %+v %v", c, ok)
	}
}
