package diagfmt

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"galaxy/internal/diag"
	"galaxy/internal/source"
)

func sampleBag(t *testing.T) (*diag.Bag, *source.FileSet, source.Span) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("main.galaxy", []byte("int x;\nstring s = 3;\n"))
	// Span of the literal "3" on line 2.
	sp := source.Span{File: id, Start: 18, End: 19}
	bag := diag.NewBag(8)
	bag.Add(diag.Diagnostic{
		Severity: diag.SevError,
		Code:     diag.SemaTypeMismatch,
		Message:  "cannot assign int to string",
		Primary:  sp,
	})
	bag.Add(diag.Diagnostic{
		Severity: diag.SevWarning,
		Code:     diag.SemaUnresolvedSymbol,
		Message:  "unresolved identifier 'Foo'",
		Primary:  source.Span{File: id, Start: 0, End: 3},
	})
	bag.Sort()
	return bag, fs, sp
}

func TestPretty(t *testing.T) {
	bag, fs, _ := sampleBag(t)
	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{ShowSource: true})
	out := buf.String()

	if !strings.Contains(out, "main.galaxy:2:12: error SEM3005: cannot assign int to string") {
		t.Fatalf("error line missing or malformed:\n%s", out)
	}
	if !strings.Contains(out, "main.galaxy:1:1: warning SEM3003") {
		t.Fatalf("warning line missing:\n%s", out)
	}
	if !strings.Contains(out, "string s = 3;") {
		t.Fatalf("source line missing:\n%s", out)
	}
	// Caret under column 12.
	if !strings.Contains(out, "    "+strings.Repeat(" ", 11)+"^") {
		t.Fatalf("caret misaligned:\n%s", out)
	}
}

func TestPrettyBasename(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("maps/demo/main.galaxy", []byte("x\n"))
	bag := diag.NewBag(1)
	bag.Add(diag.Diagnostic{
		Severity: diag.SevError,
		Code:     diag.SynUnexpectedToken,
		Message:  "unexpected token",
		Primary:  source.Span{File: id, Start: 0, End: 1},
	})
	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{PathMode: PathModeBasename})
	if !strings.HasPrefix(buf.String(), "main.galaxy:1:1:") {
		t.Fatalf("basename mode not applied: %q", buf.String())
	}
}

func TestSummary(t *testing.T) {
	bag, fs, _ := sampleBag(t)
	_ = fs
	var buf bytes.Buffer
	Summary(&buf, bag, false)
	if got := strings.TrimSpace(buf.String()); got != "1 error(s), 1 warning(s)" {
		t.Fatalf("summary = %q", got)
	}
}

func TestJSON(t *testing.T) {
	bag, fs, _ := sampleBag(t)
	var buf bytes.Buffer
	if err := JSON(&buf, bag, fs, JSONOpts{IncludePositions: true}); err != nil {
		t.Fatalf("JSON: %v", err)
	}
	var out OutputJSON
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("output does not round-trip: %v", err)
	}
	if out.Errors != 1 || out.Warnings != 1 || len(out.Diagnostics) != 2 {
		t.Fatalf("counts wrong: %+v", out)
	}
	// Sorted by position: the warning at 1:1 comes first.
	last := out.Diagnostics[1]
	if last.Code != "SEM3005" || last.Location.StartLine != 2 || last.Location.StartCol != 12 {
		t.Fatalf("type-mismatch diagnostic wrong: %+v", last)
	}
}
