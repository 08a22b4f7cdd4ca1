package parser

import (
	"fmt"

	"galaxy/internal/ast"
	"galaxy/internal/diag"
	"galaxy/internal/lexer"
	"galaxy/internal/source"
	"galaxy/internal/token"
)

type Options struct {
	Reporter  diag.Reporter
	MaxErrors int // 0 means DefaultMaxErrors
}

const DefaultMaxErrors = 100

// Parser is a recursive-descent parser over the token stream of one
// file. It recovers from syntax errors by resynchronizing on ';' and
// '}' and keeps going.
type Parser struct {
	file    *source.File
	toks    []token.Token
	pos     int
	builder *ast.Builder
	opts    Options
	errs    int
	ok      bool
}

// lexReporter maps lexer error kinds onto diagnostic codes.
type lexReporter struct {
	r diag.Reporter
}

func (lr lexReporter) Report(kind string, sp source.Span, msg string) {
	code := diag.LexInfo
	switch kind {
	case "UnexpectedChar":
		code = diag.LexUnknownChar
	case "UnterminatedString":
		code = diag.LexUnterminatedString
	case "UnterminatedComment":
		code = diag.LexUnterminatedBlockComment
	case "BadNumber":
		code = diag.LexBadNumber
	}
	diag.Error(lr.r, code, sp, msg)
}

func New(file *source.File, builder *ast.Builder, opts Options) *Parser {
	if opts.MaxErrors <= 0 {
		opts.MaxErrors = DefaultMaxErrors
	}
	lx := lexer.New(file, lexer.Options{Reporter: lexReporter{r: opts.Reporter}})
	return &Parser{
		file:    file,
		toks:    lx.Tokenize(),
		builder: builder,
		opts:    opts,
		ok:      true,
	}
}

// ParseUnit parses the whole file into a translation unit. ok is false
// when any syntax (or lexical) error was reported.
func (p *Parser) ParseUnit() (ast.UnitID, bool) {
	unit := p.builder.Units.New(p.fileSpan(), p.file.ID)
	for !p.at(token.EOF) {
		before := p.pos
		decls := p.parseTopLevel()
		for _, d := range decls {
			p.builder.PushDecl(unit, d)
		}
		if p.pos == before {
			// Nothing consumed: report and skip so we always make
			// progress.
			p.errorf(diag.SynStrayTopLevel, p.cur().Span, "unexpected %s at top level", p.cur().Kind)
			p.bump()
			p.syncTopLevel()
		}
	}
	return unit, p.ok
}

func (p *Parser) fileSpan() source.Span {
	return source.Span{File: p.file.ID, Start: 0, End: uint32(len(p.file.Content))}
}

// ── token helpers ──

func (p *Parser) cur() token.Token {
	return p.toks[p.pos]
}

// peek looks n tokens ahead, clamped to EOF.
func (p *Parser) peek(n int) token.Token {
	i := p.pos + n
	if i >= len(p.toks) {
		i = len(p.toks) - 1
	}
	return p.toks[i]
}

func (p *Parser) at(k token.Kind) bool {
	return p.cur().Kind == k
}

func (p *Parser) bump() token.Token {
	t := p.toks[p.pos]
	if p.pos < len(p.toks)-1 {
		p.pos++
	}
	return t
}

func (p *Parser) eat(k token.Kind) bool {
	if p.at(k) {
		p.bump()
		return true
	}
	return false
}

// expect consumes a token of kind k or reports code and stays put.
func (p *Parser) expect(k token.Kind, code diag.Code) (token.Token, bool) {
	if p.at(k) {
		return p.bump(), true
	}
	p.errorf(code, p.cur().Span, "expected %s, found %s", k, p.cur().Kind)
	return p.cur(), false
}

func (p *Parser) errorf(code diag.Code, sp source.Span, format string, args ...any) {
	p.ok = false
	p.errs++
	if p.errs > p.opts.MaxErrors {
		return
	}
	diag.Error(p.opts.Reporter, code, sp, fmt.Sprintf(format, args...))
}

func (p *Parser) intern(t token.Token) source.StringID {
	return p.builder.Strings.Intern(t.Text)
}

// spanFrom covers from a remembered start offset to the end of the
// previously consumed token.
func (p *Parser) spanFrom(start uint32) source.Span {
	end := start
	if p.pos > 0 {
		end = p.toks[p.pos-1].Span.End
	}
	return source.Span{File: p.file.ID, Start: start, End: end}
}

// ── recovery ──

// syncTopLevel skips ahead to something that can start a top-level
// declaration.
func (p *Parser) syncTopLevel() {
	depth := 0
	for !p.at(token.EOF) {
		switch p.cur().Kind {
		case token.LBrace:
			depth++
		case token.RBrace:
			if depth > 0 {
				depth--
			} else {
				p.bump()
				return
			}
		case token.Semicolon:
			if depth == 0 {
				p.bump()
				return
			}
		case token.KwInclude, token.KwStruct, token.KwTypedef, token.KwNative:
			if depth == 0 {
				return
			}
		}
		p.bump()
	}
}

// syncStmt skips to the end of the current statement.
func (p *Parser) syncStmt() {
	depth := 0
	for !p.at(token.EOF) {
		switch p.cur().Kind {
		case token.Semicolon:
			if depth == 0 {
				p.bump()
				return
			}
		case token.LBrace:
			depth++
		case token.RBrace:
			if depth == 0 {
				return
			}
			depth--
		}
		p.bump()
	}
}
