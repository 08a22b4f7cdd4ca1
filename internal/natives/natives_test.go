package natives

import (
	"strings"
	"testing"

	"galaxy/internal/source"
	"galaxy/internal/types"
)

func newLoader() (*Loader, *types.Interner) {
	strs := source.NewInterner()
	ti := types.NewInterner(strs)
	return NewLoader(ti, strs), ti
}

func TestLoadPrototypes(t *testing.T) {
	l, ti := newLoader()
	src := `
// natives.galaxy excerpt
native void TriggerExecute(trigger t, bool immediate, bool wait);
native fixed PointX(point p);
native int UnitGroupCount(unitgroup g, int mode);
const int c_maxPlayers = 16;
native timer TimerCreate();
`
	n, err := l.Load(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if n != 4 {
		t.Fatalf("loaded %d prototypes, want 4", n)
	}

	id, ok := l.Funcs()["TriggerExecute"]
	if !ok {
		t.Fatalf("TriggerExecute missing")
	}
	fn, ok := ti.FuncOf(id)
	if !ok {
		t.Fatalf("not a function type")
	}
	if fn.Ret != ti.Builtins().Void || len(fn.Params) != 3 {
		t.Fatalf("TriggerExecute signature wrong: %s", ti.String(id))
	}
	if fn.Params[1] != ti.Builtins().Bool {
		t.Fatalf("second parameter is not bool")
	}

	empty, _ := ti.FuncOf(l.Funcs()["TimerCreate"])
	if len(empty.Params) != 0 {
		t.Fatalf("TimerCreate should take no parameters")
	}
}

func TestTypeAliases(t *testing.T) {
	l, ti := newLoader()
	if _, err := l.Load(strings.NewReader(
		`native integer Foo(boolean b, byte k);`)); err != nil {
		t.Fatalf("Load: %v", err)
	}
	fn, _ := ti.FuncOf(l.Funcs()["Foo"])
	b := ti.Builtins()
	if fn.Ret != b.Int || fn.Params[0] != b.Bool || fn.Params[1] != b.Int {
		t.Fatalf("aliases not folded to canonical types: %s", ti.String(l.Funcs()["Foo"]))
	}
}

func TestArrayReturn(t *testing.T) {
	l, ti := newLoader()
	if _, err := l.Load(strings.NewReader(
		`native int[] Scores(int player);`)); err != nil {
		t.Fatalf("Load: %v", err)
	}
	fn, _ := ti.FuncOf(l.Funcs()["Scores"])
	rt, _ := ti.Lookup(fn.Ret)
	if rt.Kind != types.KindArray || rt.Elem != ti.Builtins().Int {
		t.Fatalf("array return not built: %s", ti.String(fn.Ret))
	}
}

func TestUnknownTypeReported(t *testing.T) {
	l, ti := newLoader()
	if _, err := l.Load(strings.NewReader(
		`native frobnicator Mystery(int x);`)); err != nil {
		t.Fatalf("Load: %v", err)
	}
	fn, _ := ti.FuncOf(l.Funcs()["Mystery"])
	if fn.Ret != ti.Builtins().Error {
		t.Fatalf("unknown type did not fall back to the error type")
	}
	if len(l.Errors()) == 0 {
		t.Fatalf("no load error recorded")
	}
}

func TestLoadCommon(t *testing.T) {
	l, ti := newLoader()
	l.LoadCommon()
	if len(l.Funcs()) != len(commonNatives) {
		t.Fatalf("got %d common natives, want %d", len(l.Funcs()), len(commonNatives))
	}
	fn, ok := ti.FuncOf(l.Funcs()["UnitCreate"])
	if !ok || len(fn.Params) != 6 {
		t.Fatalf("UnitCreate signature wrong")
	}
	if len(l.Errors()) != 0 {
		t.Fatalf("common table produced load errors: %v", l.Errors())
	}
}
