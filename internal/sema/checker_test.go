package sema

import (
	"testing"

	"galaxy/internal/ast"
	"galaxy/internal/diag"
	"galaxy/internal/parser"
	"galaxy/internal/source"
	"galaxy/internal/symbols"
	"galaxy/internal/types"
)

type analysis struct {
	res *Result
	b   *ast.Builder
	ti  *types.Interner
}

func analyze(t *testing.T, src string) analysis {
	t.Helper()
	return analyzeWith(t, src, Options{})
}

func analyzeWith(t *testing.T, src string, opts Options) analysis {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("main.galaxy", []byte(src))
	b := ast.NewBuilder(ast.Hints{})
	ti := types.NewInterner(b.Strings)

	parseBag := diag.NewBag(64)
	p := parser.New(fs.Get(id), b, parser.Options{Reporter: diag.BagReporter{Bag: parseBag}})
	unit, ok := p.ParseUnit()
	if !ok {
		for _, d := range parseBag.Items() {
			t.Logf("parse diag: %s %s", d.Code.ID(), d.Message)
		}
		t.Fatalf("test source does not parse")
	}

	c := New(b, ti, opts)
	return analysis{res: c.Check(unit), b: b, ti: ti}
}

func (a analysis) errors() []diag.Diagnostic {
	var out []diag.Diagnostic
	for _, d := range a.res.Bag.Items() {
		if d.Severity >= diag.SevError {
			out = append(out, d)
		}
	}
	return out
}

func (a analysis) warnings() []diag.Diagnostic {
	var out []diag.Diagnostic
	for _, d := range a.res.Bag.Items() {
		if d.Severity == diag.SevWarning {
			out = append(out, d)
		}
	}
	return out
}

func (a analysis) mustClean(t *testing.T) {
	t.Helper()
	for _, d := range a.res.Bag.Items() {
		t.Logf("diag: %s %s", d.Code.ID(), d.Message)
	}
	if a.res.Bag.Len() != 0 {
		t.Fatalf("expected no diagnostics, got %d", a.res.Bag.Len())
	}
}

func (a analysis) mustErrors(t *testing.T, codes ...diag.Code) {
	t.Helper()
	errs := a.errors()
	if len(errs) != len(codes) {
		for _, d := range a.res.Bag.Items() {
			t.Logf("diag: %s %s", d.Code.ID(), d.Message)
		}
		t.Fatalf("got %d errors, want %d", len(errs), len(codes))
	}
	for i, code := range codes {
		if errs[i].Code != code {
			t.Fatalf("error %d is %s, want %s", i, errs[i].Code.ID(), code.ID())
		}
	}
}

func (a analysis) global(t *testing.T, name string) *symbols.Symbol {
	t.Helper()
	sym := a.res.Table.LookupGlobal(a.b.Strings.Intern(name))
	if sym == nil {
		t.Fatalf("global %q not defined", name)
	}
	return sym
}

func TestCleanProgram(t *testing.T) {
	a := analyze(t, `
const int kSize = 4;
int total;

int add(int a, int b) {
    return a + b;
}

void run() {
    total = add(1, 2);
}
`)
	a.mustClean(t)
	if !a.res.Success() {
		t.Fatalf("Success() = false on a clean program")
	}
}

func TestConstArraySize(t *testing.T) {
	a := analyze(t, `
const int kRows = 4;
int board[kRows][kRows * 2];
`)
	a.mustClean(t)
	sym := a.global(t, "board")
	if got := a.ti.String(sym.Type); got != "int[4][8]" {
		t.Fatalf("board type = %s, want int[4][8]", got)
	}
}

func TestNonConstArraySize(t *testing.T) {
	a := analyze(t, `
int n;
int bad[n];
`)
	a.mustErrors(t, diag.SemaBadArraySize)
}

func TestRedeclarationKeepsFirst(t *testing.T) {
	a := analyze(t, `
int x;
fixed x;
`)
	a.mustErrors(t, diag.SemaDuplicateSymbol)
	if a.ti.Resolve(a.global(t, "x").Type) != a.ti.Builtins().Int {
		t.Fatalf("first declaration did not win")
	}
}

func TestAssignToConst(t *testing.T) {
	a := analyze(t, `
const int kMax = 8;
void f() {
    kMax = 9;
}
`)
	a.mustErrors(t, diag.SemaNotAssignable)
}

func TestBreakOutsideLoop(t *testing.T) {
	a := analyze(t, `
void f() {
    break;
}
`)
	a.mustErrors(t, diag.SemaBreakOutsideLoop)
}

func TestContinueInNestedLoopOK(t *testing.T) {
	a := analyze(t, `
void f() {
    while (true) {
        for (int i = 0; i < 4; i += 1) {
            continue;
        }
        break;
    }
}
`)
	a.mustClean(t)
}

func TestArityMismatchStillTypes(t *testing.T) {
	a := analyze(t, `
int add(int a, int b) {
    return a + b;
}
int r = add(1);
`)
	// Exactly one error: the wrong return type would be a second one.
	a.mustErrors(t, diag.SemaArgCountMismatch)
}

func TestArgTypeMismatch(t *testing.T) {
	a := analyze(t, `
void take(string s) {}
void f() {
    take(3);
}
`)
	a.mustErrors(t, diag.SemaArgTypeMismatch)
}

func TestNumericMixing(t *testing.T) {
	a := analyze(t, `
fixed half = 1 / 2;
int whole = 2.5;
bool flag = 3;
string bad = 3;
`)
	a.mustErrors(t, diag.SemaTypeMismatch)
}

func TestStringConcat(t *testing.T) {
	a := analyze(t, `
string ab = "a" + "b";
`)
	a.mustClean(t)
}

func TestBitwiseNeedsInt(t *testing.T) {
	a := analyze(t, `
int bad = 1.5 & 2;
`)
	a.mustErrors(t, diag.SemaInvalidBinaryOperands)
}

func TestSelfReferencingStructViaTypedef(t *testing.T) {
	a := analyze(t, `
typedef node noderef;

struct node {
    int value;
    noderef children[4];
};
`)
	a.mustClean(t)
}

func TestTypedefTransparency(t *testing.T) {
	a := analyze(t, `
typedef int cell;
cell c = 3;
int d = c + 1;
`)
	a.mustClean(t)
}

func TestStructMembers(t *testing.T) {
	a := analyze(t, `
struct point2 {
    fixed x;
    fixed y;
};
point2 p;
void f() {
    p.x = 1.5;
    p.z = 2.0;
}
`)
	a.mustErrors(t, diag.SemaNoSuchMember)
}

func TestMemberOnNonStruct(t *testing.T) {
	a := analyze(t, `
int n;
void f() {
    n.x = 1;
}
`)
	a.mustErrors(t, diag.SemaNotAStruct)
}

func TestUnresolvedIdentifierIsWarning(t *testing.T) {
	a := analyze(t, `
void f() {
    DoMissingThing();
}
`)
	if len(a.errors()) != 0 {
		t.Fatalf("unresolved identifier must not be an error")
	}
	warns := a.warnings()
	if len(warns) != 1 || warns[0].Code != diag.SemaUnresolvedSymbol {
		t.Fatalf("expected one unresolved-symbol warning, got %d", len(warns))
	}
}

func TestVoidVariable(t *testing.T) {
	a := analyze(t, `
void v;
`)
	a.mustErrors(t, diag.SemaVoidVariable)
}

func TestUnknownType(t *testing.T) {
	a := analyze(t, `
widget w;
`)
	a.mustErrors(t, diag.SemaUnknownType)
}

func TestReturnChecks(t *testing.T) {
	a := analyze(t, `
void f() {
    return 3;
}
int g() {
    return;
}
int h() {
    return "nope";
}
`)
	a.mustErrors(t,
		diag.SemaUnexpectedReturnValue,
		diag.SemaMissingReturnValue,
		diag.SemaReturnTypeMismatch,
	)
}

func TestForwardDeclaration(t *testing.T) {
	a := analyze(t, `
int twice(int n);
int twice(int n) {
    return n * 2;
}
void f() {
    int u = twice(2);
}
`)
	a.mustClean(t)
}

func TestConflictingSignature(t *testing.T) {
	a := analyze(t, `
int f(int a);
fixed f(int a) {
    return 1.0;
}
`)
	a.mustErrors(t, diag.SemaSignatureMismatch)
}

func TestSecondBody(t *testing.T) {
	a := analyze(t, `
int f() { return 1; }
int f() { return 2; }
`)
	a.mustErrors(t, diag.SemaRedefinedFunction)
}

func TestConditionMustBeBool(t *testing.T) {
	a := analyze(t, `
void f() {
    if ("yes") {}
    while (3) {}
}
`)
	// Numerics coerce to bool, strings do not.
	a.mustErrors(t, diag.SemaBadCondition)
}

func TestTernaryTypes(t *testing.T) {
	a := analyze(t, `
fixed pick = true ? 1 : 2.5;
string bad = true ? "a" : 3;
`)
	a.mustErrors(t, diag.SemaTypeMismatch)
}

func TestCastWarnsOnly(t *testing.T) {
	a := analyze(t, `
unit u;
int n = (int) u;
`)
	if len(a.errors()) != 0 {
		t.Fatalf("suspicious cast must not be an error")
	}
	warns := a.warnings()
	if len(warns) != 1 || warns[0].Code != diag.SemaBadCast {
		t.Fatalf("expected one cast warning")
	}
}

func TestIndexing(t *testing.T) {
	a := analyze(t, `
int grid[4][4];
void f() {
    grid[1][2] = 7;
    grid["x"][0] = 1;
    f[0] = 2;
}
`)
	a.mustErrors(t, diag.SemaBadIndexType, diag.SemaNotIndexable)
}

func TestNullAssignability(t *testing.T) {
	a := analyze(t, `
unit u = null;
string s = null;
int n = null;
`)
	a.mustErrors(t, diag.SemaTypeMismatch)
}

func TestWithoutNativesCallWarns(t *testing.T) {
	a := analyze(t, `
void f() {
    UnitKill(null);
}
`)
	// Without a native table the call is an unresolved-symbol warning.
	if len(a.warnings()) != 1 || len(a.errors()) != 0 {
		t.Fatalf("expected exactly one warning without natives")
	}
}

func TestIncludeResolution(t *testing.T) {
	fs := source.NewFileSet()
	lib := fs.AddVirtual("lib.galaxy", []byte(`
const int kFromLib = 7;
`))
	main := fs.AddVirtual("main.galaxy", []byte(`
include "lib"
int arr[kFromLib];
`))

	b := ast.NewBuilder(ast.Hints{})
	ti := types.NewInterner(b.Strings)

	parse := func(f *source.File, r diag.Reporter) (ast.UnitID, bool) {
		p := parser.New(f, b, parser.Options{Reporter: r})
		return p.ParseUnit()
	}

	c := New(b, ti, Options{
		Resolve: func(path string, r diag.Reporter) (ast.UnitID, bool) {
			if path != "lib" {
				return ast.NoUnitID, false
			}
			return parse(fs.Get(lib), r)
		},
	})

	pbag := diag.NewBag(16)
	unit, ok := parse(fs.Get(main), diag.BagReporter{Bag: pbag})
	if !ok {
		t.Fatalf("main does not parse")
	}
	res := c.Check(unit)
	if res.Bag.Len() != 0 {
		for _, d := range res.Bag.Items() {
			t.Logf("diag: %s %s", d.Code.ID(), d.Message)
		}
		t.Fatalf("include analysis produced diagnostics")
	}
	sym := res.Table.LookupGlobal(b.Strings.Intern("arr"))
	if sym == nil || ti.String(sym.Type) != "int[7]" {
		t.Fatalf("constant from include not visible for array sizing")
	}
}

func TestMissingIncludeIsWarning(t *testing.T) {
	a := analyzeWith(t, `
include "TriggerLibs/NativeLib"
`, Options{
		Resolve: func(string, diag.Reporter) (ast.UnitID, bool) { return ast.NoUnitID, false },
	})
	if len(a.errors()) != 0 {
		t.Fatalf("missing include must not be an error")
	}
	warns := a.warnings()
	if len(warns) != 1 || warns[0].Code != diag.SemaMissingInclude {
		t.Fatalf("expected one missing-include warning")
	}
}

func TestConstFolding(t *testing.T) {
	a := analyze(t, `
const int kA = 10;
const int kB = kA;
int arr[(kB + 2) * 2 / 3];
`)
	a.mustClean(t)
	if got := a.ti.String(a.global(t, "arr").Type); got != "int[8]" {
		t.Fatalf("arr type = %s, want int[8]", got)
	}
}

func TestFloorSemantics(t *testing.T) {
	if floorDiv(-7, 2) != -4 || floorDiv(7, 2) != 3 {
		t.Fatalf("floorDiv wrong")
	}
	if floorMod(-7, 2) != 1 || floorMod(7, -2) != -1 {
		t.Fatalf("floorMod wrong")
	}
}

func TestLocalScopes(t *testing.T) {
	a := analyze(t, `
void f() {
    int x = 1;
    {
        int x = 2;
        x = 3;
    }
    x = 4;
}
void g() {
    int x;
    int x;
}
`)
	a.mustErrors(t, diag.SemaDuplicateSymbol)
}

func TestForScopeIsolated(t *testing.T) {
	a := analyze(t, `
void f() {
    for (int i = 0; i < 3; i += 1) {}
    i = 1;
}
`)
	if len(a.errors()) != 0 {
		t.Fatalf("loop variable leak check produced errors")
	}
	warns := a.warnings()
	if len(warns) != 1 || warns[0].Code != diag.SemaUnresolvedSymbol {
		t.Fatalf("loop variable escaped its scope")
	}
}

func TestGlobalInitSeesFunctions(t *testing.T) {
	a := analyze(t, `
int add(int a, int b) {
    return a + b;
}
int r = add(1, 2);
`)
	a.mustClean(t)
	sym := a.global(t, "r")
	if got := a.ti.String(sym.Type); got != "int" {
		t.Fatalf("r type = %s, want int", got)
	}
}

func TestGlobalInitArityMismatch(t *testing.T) {
	a := analyze(t, `
int add(int a, int b) {
    return a + b;
}
int r = add(1);
`)
	// One arity error; the call still yields int, so no second
	// initializer-type error follows.
	a.mustErrors(t, diag.SemaArgCountMismatch)
}

func TestConstChainAsArraySize(t *testing.T) {
	a := analyze(t, `
const int kA = 10;
const int kB = kA;
int arr[kB];
`)
	a.mustClean(t)
	if got := a.ti.String(a.global(t, "arr").Type); got != "int[10]" {
		t.Fatalf("arr type = %s, want int[10]", got)
	}
}
