package diagfmt

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"galaxy/internal/source"
	"galaxy/internal/token"
)

func sampleTokens(t *testing.T) ([]token.Token, *source.FileSet) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("main.galaxy", []byte("int x;\n"))
	return []token.Token{
		{Kind: token.Ident, Text: "int", Span: source.Span{File: id, Start: 0, End: 3}},
		{Kind: token.Ident, Text: "x", Span: source.Span{File: id, Start: 4, End: 5}},
		{Kind: token.Semicolon, Text: ";", Span: source.Span{File: id, Start: 5, End: 6}},
		{Kind: token.EOF, Span: source.Span{File: id, Start: 7, End: 7}},
	}, fs
}

func TestFormatTokensPretty(t *testing.T) {
	toks, fs := sampleTokens(t)
	var buf bytes.Buffer
	if err := FormatTokensPretty(&buf, toks, fs); err != nil {
		t.Fatalf("FormatTokensPretty: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, `"int" at 1:1-1:4`) {
		t.Fatalf("first token line wrong:\n%s", out)
	}
	if !strings.Contains(out, "eof") {
		t.Fatalf("eof line missing:\n%s", out)
	}
}

func TestFormatTokensJSON(t *testing.T) {
	toks, _ := sampleTokens(t)
	var buf bytes.Buffer
	if err := FormatTokensJSON(&buf, toks); err != nil {
		t.Fatalf("FormatTokensJSON: %v", err)
	}
	var out []TokenJSON
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("output does not round-trip: %v", err)
	}
	if len(out) != 4 || out[0].Kind != "identifier" || out[2].EndByte != 6 {
		t.Fatalf("token stream wrong: %+v", out)
	}
}
