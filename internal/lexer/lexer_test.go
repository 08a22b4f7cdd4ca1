package lexer

import (
	"testing"

	"galaxy/internal/source"
	"galaxy/internal/token"
)

type captureReporter struct {
	kinds []string
}

func (r *captureReporter) Report(kind string, _ source.Span, _ string) {
	r.kinds = append(r.kinds, kind)
}

func lexAll(t *testing.T, src string) []token.Token {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.galaxy", []byte(src))
	lx := New(fs.Get(id), Options{})
	return lx.Tokenize()
}

func kindsOf(toks []token.Token) []token.Kind {
	out := make([]token.Kind, len(toks))
	for i, t := range toks {
		out[i] = t.Kind
	}
	return out
}

func expectKinds(t *testing.T, src string, want []token.Kind) {
	t.Helper()
	got := kindsOf(lexAll(t, src))
	if len(got) != len(want) {
		t.Fatalf("lex %q: got %d tokens %v, want %d %v", src, len(got), got, len(want), want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("lex %q: token %d = %v, want %v", src, i, got[i], want[i])
		}
	}
}

func TestLexDeclarations(t *testing.T) {
	expectKinds(t, "const int MAX = 0x10;", []token.Kind{
		token.KwConst, token.Ident, token.Ident, token.Assign,
		token.IntLit, token.Semicolon, token.EOF,
	})
	expectKinds(t, "fixed f = 1.5;", []token.Kind{
		token.Ident, token.Ident, token.Assign,
		token.FixedLit, token.Semicolon, token.EOF,
	})
}

func TestLexOperators(t *testing.T) {
	expectKinds(t, "a += b << 2; c = a <= b && !d;", []token.Kind{
		token.Ident, token.PlusAssign, token.Ident, token.Shl, token.IntLit, token.Semicolon,
		token.Ident, token.Assign, token.Ident, token.LtEq, token.Ident,
		token.AndAnd, token.Bang, token.Ident, token.Semicolon, token.EOF,
	})
	expectKinds(t, "x != y ? ~z : arr[0].field", []token.Kind{
		token.Ident, token.BangEq, token.Ident, token.Question, token.Tilde, token.Ident,
		token.Colon, token.Ident, token.LBracket, token.IntLit, token.RBracket,
		token.Dot, token.Ident, token.EOF,
	})
}

func TestLexComments(t *testing.T) {
	src := "// line comment\nint a; /* block\ncomment */ int b;"
	expectKinds(t, src, []token.Kind{
		token.Ident, token.Ident, token.Semicolon,
		token.Ident, token.Ident, token.Semicolon, token.EOF,
	})
}

func TestLexStringLiteral(t *testing.T) {
	toks := lexAll(t, `s = "he said \"hi\"";`)
	if toks[2].Kind != token.StringLit {
		t.Fatalf("token 2 = %v, want string literal", toks[2].Kind)
	}
	if toks[2].Text != `"he said \"hi\""` {
		t.Fatalf("string text = %q", toks[2].Text)
	}
}

func TestLexKeywordsVsIdents(t *testing.T) {
	// Type names are plain identifiers; control words are keywords.
	toks := lexAll(t, "while (true) { breakpoint; unit u = null; }")
	want := []token.Kind{
		token.KwWhile, token.LParen, token.KwTrue, token.RParen, token.LBrace,
		token.KwBreakpoint, token.Semicolon,
		token.Ident, token.Ident, token.Assign, token.KwNull, token.Semicolon,
		token.RBrace, token.EOF,
	}
	got := kindsOf(toks)
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("token %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestLexTrailingDot(t *testing.T) {
	// "3." is an integer followed by a dot, not a fixed literal.
	expectKinds(t, "3.", []token.Kind{token.IntLit, token.Dot, token.EOF})
	expectKinds(t, "3.14", []token.Kind{token.FixedLit, token.EOF})
}

func TestLexUnterminatedString(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("bad.galaxy", []byte("s = \"oops\nint x;"))
	rep := &captureReporter{}
	lx := New(fs.Get(id), Options{Reporter: rep})
	toks := lx.Tokenize()
	if len(rep.kinds) != 1 || rep.kinds[0] != "UnterminatedString" {
		t.Fatalf("reports = %v", rep.kinds)
	}
	if toks[2].Kind != token.Invalid {
		t.Fatalf("token 2 = %v, want invalid", toks[2].Kind)
	}
	// Lexing continues on the next line.
	if toks[3].Kind != token.Ident || toks[3].Text != "int" {
		t.Fatalf("token 3 = %v %q", toks[3].Kind, toks[3].Text)
	}
}

func TestLexSpans(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("spans.galaxy", []byte("int abc;"))
	lx := New(fs.Get(id), Options{})
	toks := lx.Tokenize()
	abc := toks[1]
	if abc.Span.Start != 4 || abc.Span.End != 7 {
		t.Fatalf("span of %q = [%d,%d)", abc.Text, abc.Span.Start, abc.Span.End)
	}
	start, _ := fs.Resolve(abc.Span)
	if start.Line != 1 || start.Col != 5 {
		t.Fatalf("resolved start = %+v", start)
	}
}

func TestPeekDoesNotConsume(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("peek.galaxy", []byte("a b"))
	lx := New(fs.Get(id), Options{})
	if lx.Peek().Text != "a" {
		t.Fatal("peek returned wrong token")
	}
	if lx.Next().Text != "a" {
		t.Fatal("next after peek must return the peeked token")
	}
	if lx.Next().Text != "b" {
		t.Fatal("stream advanced incorrectly")
	}
}
