package sema

import (
	"testing"

	"galaxy/internal/ast"
	"galaxy/internal/diag"
	"galaxy/internal/natives"
	"galaxy/internal/parser"
	"galaxy/internal/source"
	"galaxy/internal/types"
)

func analyzeWithCommonNatives(t *testing.T, src string) analysis {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("main.galaxy", []byte(src))
	b := ast.NewBuilder(ast.Hints{})
	ti := types.NewInterner(b.Strings)

	loader := natives.NewLoader(ti, b.Strings)
	loader.LoadCommon()

	bag := diag.NewBag(64)
	p := parser.New(fs.Get(id), b, parser.Options{Reporter: diag.BagReporter{Bag: bag}})
	unit, ok := p.ParseUnit()
	if !ok {
		t.Fatalf("test source does not parse")
	}

	c := New(b, ti, Options{Natives: loader.Funcs()})
	return analysis{res: c.Check(unit), b: b, ti: ti}
}

func TestNativeCalls(t *testing.T) {
	a := analyzeWithCommonNatives(t, `
void spawn() {
    unit u = UnitCreate(1, "marine", 0, 1, Point(1.0, 2.0), 0.0);
    timer clock = TimerCreate();
    TimerStart(clock, 2.0, true);
    if (UnitIsAlive(u)) {
        UnitKill(u);
    }
}
`)
	a.mustClean(t)
}

func TestNativeArgChecks(t *testing.T) {
	a := analyzeWithCommonNatives(t, `
void f() {
    UnitKill("not a unit");
    TimerStart(TimerCreate(), 1.0);
}
`)
	a.mustErrors(t, diag.SemaArgTypeMismatch, diag.SemaArgCountMismatch)
}

func TestNativeResultTypes(t *testing.T) {
	a := analyzeWithCommonNatives(t, `
fixed d = DistanceBetweenPoints(Point(0.0, 0.0), Point(3.0, 4.0));
int len = StringLength("abc");
string s = IntToString(42);
`)
	a.mustClean(t)
}
