package diag

import (
	"testing"

	"galaxy/internal/source"
)

func TestBagLimit(t *testing.T) {
	b := NewBag(2)
	if !b.Add(Diagnostic{Code: SemaTypeMismatch, Severity: SevError}) {
		t.Fatal("first add must succeed")
	}
	if !b.Add(Diagnostic{Code: SemaTypeMismatch, Severity: SevError}) {
		t.Fatal("second add must succeed")
	}
	if b.Add(Diagnostic{Code: SemaTypeMismatch, Severity: SevError}) {
		t.Fatal("third add must be rejected")
	}
	if b.Len() != 2 {
		t.Fatalf("len = %d", b.Len())
	}
}

func TestBagHasErrors(t *testing.T) {
	b := NewBag(10)
	b.Add(Diagnostic{Code: SemaUnresolvedSymbol, Severity: SevWarning})
	if b.HasErrors() {
		t.Fatal("warnings alone are not errors")
	}
	if !b.HasWarnings() {
		t.Fatal("expected HasWarnings")
	}
	b.Add(Diagnostic{Code: SemaTypeMismatch, Severity: SevError})
	if !b.HasErrors() {
		t.Fatal("expected HasErrors")
	}
}

func TestBagSort(t *testing.T) {
	b := NewBag(10)
	span := func(file source.FileID, start uint32) source.Span {
		return source.Span{File: file, Start: start, End: start + 1}
	}
	b.Add(Diagnostic{Code: SemaTypeMismatch, Severity: SevError, Primary: span(2, 5)})
	b.Add(Diagnostic{Code: SemaUnresolvedSymbol, Severity: SevWarning, Primary: span(1, 9)})
	b.Add(Diagnostic{Code: SemaBadCondition, Severity: SevError, Primary: span(1, 3)})
	b.Sort()
	items := b.Items()
	if items[0].Code != SemaBadCondition || items[1].Code != SemaUnresolvedSymbol || items[2].Code != SemaTypeMismatch {
		t.Fatalf("sorted order = %v %v %v", items[0].Code, items[1].Code, items[2].Code)
	}
}

func TestBagMergeGrowsLimit(t *testing.T) {
	a := NewBag(1)
	a.Add(Diagnostic{Code: SemaTypeMismatch, Severity: SevError})
	b := NewBag(2)
	b.Add(Diagnostic{Code: SemaBadCast, Severity: SevError})
	b.Add(Diagnostic{Code: SemaBadCondition, Severity: SevError})
	a.Merge(b)
	if a.Len() != 3 {
		t.Fatalf("merged len = %d", a.Len())
	}
}

func TestCodeID(t *testing.T) {
	tests := []struct {
		code Code
		want string
	}{
		{LexUnterminatedString, "LEX1002"},
		{SynUnexpectedToken, "SYN2001"},
		{SemaTypeMismatch, "SEM3005"},
		{IOLoadFileError, "IO4001"},
	}
	for _, tt := range tests {
		if got := tt.code.ID(); got != tt.want {
			t.Fatalf("ID(%d) = %q, want %q", tt.code, got, tt.want)
		}
	}
}
