package parser

import (
	"strings"

	"galaxy/internal/ast"
	"galaxy/internal/diag"
	"galaxy/internal/source"
	"galaxy/internal/token"
)

func (p *Parser) parseTopLevel() []ast.DeclID {
	switch p.cur().Kind {
	case token.KwInclude:
		return p.parseInclude()
	case token.KwStruct:
		return p.parseStruct()
	case token.KwTypedef:
		return p.parseTypedef()
	case token.KwNative:
		return p.parseNative()
	case token.Semicolon:
		p.bump()
		return nil
	case token.KwConst, token.KwStatic, token.Ident:
		return p.parseVarOrFunc()
	}
	return nil
}

// include "path" with an optional trailing semicolon.
func (p *Parser) parseInclude() []ast.DeclID {
	start := p.cur().Span.Start
	p.bump()
	lit, ok := p.expect(token.StringLit, diag.SynBadIncludePath)
	if !ok {
		p.syncTopLevel()
		return nil
	}
	p.eat(token.Semicolon)
	d := p.builder.Decls.NewInclude(p.spanFrom(start), ast.DeclIncludeData{
		Path:     p.builder.Strings.Intern(unquote(lit.Text)),
		PathSpan: lit.Span,
	})
	return []ast.DeclID{d}
}

func unquote(s string) string {
	s = strings.TrimPrefix(s, `"`)
	s = strings.TrimSuffix(s, `"`)
	s = strings.ReplaceAll(s, `\\`, `\`)
	s = strings.ReplaceAll(s, `\"`, `"`)
	return s
}

// parseTypeSpec parses a base type name with optional array dimension
// suffixes attached to the type, e.g. int[8][8].
func (p *Parser) parseTypeSpec() (ast.TypeSpecID, bool) {
	start := p.cur().Span.Start
	name, ok := p.expect(token.Ident, diag.SynExpectType)
	if !ok {
		return ast.NoTypeSpecID, false
	}
	var dims []ast.ExprID
	for p.at(token.LBracket) {
		p.bump()
		dim := ast.NoExprID
		if !p.at(token.RBracket) {
			dim = p.parseAssign()
		}
		if _, ok := p.expect(token.RBracket, diag.SynUnclosedBracket); !ok {
			break
		}
		dims = append(dims, dim)
	}
	return p.builder.TypeSpecs.New(p.spanFrom(start), p.intern(name), dims), true
}

// parseDeclaratorDims folds array suffixes written after a declared
// name into the type spec: "int board[8][8]" declares board with type
// int[8][8], and "int[2] rows[8]" is eight rows of int[2], so the
// declarator dimensions go outermost.
func (p *Parser) parseDeclaratorDims(ts ast.TypeSpecID) ast.TypeSpecID {
	if !p.at(token.LBracket) {
		return ts
	}
	var dims []ast.ExprID
	for p.at(token.LBracket) {
		p.bump()
		dim := ast.NoExprID
		if !p.at(token.RBracket) {
			dim = p.parseAssign()
		}
		if _, ok := p.expect(token.RBracket, diag.SynUnclosedBracket); !ok {
			break
		}
		dims = append(dims, dim)
	}
	base := p.builder.TypeSpecs.Get(ts)
	merged := append(dims, base.Dims...)
	return p.builder.TypeSpecs.New(p.spanFrom(base.Span.Start), base.Name, merged)
}

// struct Name { type a, b; ... } ;
func (p *Parser) parseStruct() []ast.DeclID {
	start := p.cur().Span.Start
	p.bump()
	name, ok := p.expect(token.Ident, diag.SynExpectIdentifier)
	if !ok {
		p.syncTopLevel()
		return nil
	}
	if _, ok := p.expect(token.LBrace, diag.SynBadDeclaration); !ok {
		p.syncTopLevel()
		return nil
	}
	var members []ast.Member
	for !p.at(token.RBrace) && !p.at(token.EOF) {
		before := p.pos
		members = append(members, p.parseStructMember()...)
		if p.pos == before {
			p.errorf(diag.SynBadStructMember, p.cur().Span, "unexpected %s in struct body", p.cur().Kind)
			p.syncStmt()
		}
	}
	p.expect(token.RBrace, diag.SynUnclosedBrace)
	p.eat(token.Semicolon)
	d := p.builder.Decls.NewStruct(p.spanFrom(start), ast.DeclStructData{
		Name:     p.intern(name),
		NameSpan: name.Span,
		Members:  members,
	})
	return []ast.DeclID{d}
}

// One member line: a type spec followed by comma-separated names.
func (p *Parser) parseStructMember() []ast.Member {
	start := p.cur().Span.Start
	ts, ok := p.parseTypeSpec()
	if !ok {
		return nil
	}
	var out []ast.Member
	for {
		name, ok := p.expect(token.Ident, diag.SynBadStructMember)
		if !ok {
			p.syncStmt()
			return out
		}
		mts := p.parseDeclaratorDims(ts)
		out = append(out, ast.Member{
			Span: source.Span{File: p.file.ID, Start: start, End: p.spanFrom(start).End},
			Type: mts,
			Name: p.intern(name),
		})
		if !p.eat(token.Comma) {
			break
		}
	}
	if _, ok := p.expect(token.Semicolon, diag.SynExpectSemicolon); !ok {
		p.syncStmt()
	}
	return out
}

// typedef <type> <alias> ;
func (p *Parser) parseTypedef() []ast.DeclID {
	start := p.cur().Span.Start
	p.bump()
	ts, ok := p.parseTypeSpec()
	if !ok {
		p.syncTopLevel()
		return nil
	}
	name, ok := p.expect(token.Ident, diag.SynEmptyTypedef)
	if !ok {
		p.syncTopLevel()
		return nil
	}
	if _, ok := p.expect(token.Semicolon, diag.SynExpectSemicolon); !ok {
		p.syncStmt()
	}
	d := p.builder.Decls.NewTypedef(p.spanFrom(start), ast.DeclTypedefData{
		Base:     ts,
		Name:     p.intern(name),
		NameSpan: name.Span,
	})
	return []ast.DeclID{d}
}

// native [static] <type> <name> ( params ) ;
func (p *Parser) parseNative() []ast.DeclID {
	start := p.cur().Span.Start
	p.bump()
	static := p.eat(token.KwStatic)
	ts, ok := p.parseTypeSpec()
	if !ok {
		p.syncTopLevel()
		return nil
	}
	name, ok := p.expect(token.Ident, diag.SynExpectIdentifier)
	if !ok {
		p.syncTopLevel()
		return nil
	}
	if _, ok := p.expect(token.LParen, diag.SynBadDeclaration); !ok {
		p.syncTopLevel()
		return nil
	}
	params := p.parseParams()
	if _, ok := p.expect(token.Semicolon, diag.SynExpectSemicolon); !ok {
		p.syncStmt()
	}
	d := p.builder.Decls.NewFunc(p.spanFrom(start), ast.DeclFuncData{
		Ret:      ts,
		Name:     p.intern(name),
		NameSpan: name.Span,
		Params:   params,
		Native:   true,
		Static:   static,
	})
	return []ast.DeclID{d}
}

// parseParams consumes the parameter list up to and including ')'.
func (p *Parser) parseParams() []ast.Param {
	var params []ast.Param
	if p.eat(token.RParen) {
		return params
	}
	for {
		start := p.cur().Span.Start
		isConst := p.eat(token.KwConst)
		ts, ok := p.parseTypeSpec()
		if !ok {
			p.syncParamList()
			return params
		}
		name, ok := p.expect(token.Ident, diag.SynBadParameter)
		if !ok {
			p.syncParamList()
			return params
		}
		pts := p.parseDeclaratorDims(ts)
		params = append(params, ast.Param{
			Span:  source.Span{File: p.file.ID, Start: start, End: p.spanFrom(start).End},
			Type:  pts,
			Name:  p.intern(name),
			Const: isConst,
		})
		if !p.eat(token.Comma) {
			break
		}
	}
	p.expect(token.RParen, diag.SynUnclosedParen)
	return params
}

func (p *Parser) syncParamList() {
	for !p.at(token.EOF) {
		switch p.cur().Kind {
		case token.RParen:
			p.bump()
			return
		case token.Semicolon, token.LBrace:
			return
		}
		p.bump()
	}
}

// parseVarOrFunc handles [const|static]* <type> <name> followed either
// by '(' (function) or by a variable declarator list.
func (p *Parser) parseVarOrFunc() []ast.DeclID {
	start := p.cur().Span.Start
	var isConst, isStatic bool
	for {
		if p.eat(token.KwConst) {
			isConst = true
			continue
		}
		if p.eat(token.KwStatic) {
			isStatic = true
			continue
		}
		break
	}
	ts, ok := p.parseTypeSpec()
	if !ok {
		p.syncTopLevel()
		return nil
	}
	name, ok := p.expect(token.Ident, diag.SynExpectIdentifier)
	if !ok {
		p.syncTopLevel()
		return nil
	}

	if p.at(token.LParen) {
		p.bump()
		params := p.parseParams()
		data := ast.DeclFuncData{
			Ret:      ts,
			Name:     p.intern(name),
			NameSpan: name.Span,
			Params:   params,
			Static:   isStatic,
		}
		if p.at(token.LBrace) {
			data.Body = p.parseBlock()
		} else if _, ok := p.expect(token.Semicolon, diag.SynExpectSemicolon); !ok {
			p.syncTopLevel()
		}
		return []ast.DeclID{p.builder.Decls.NewFunc(p.spanFrom(start), data)}
	}

	return p.parseVarList(start, ts, name, isConst, isStatic)
}

// parseVarList finishes "type name [dims] [= init] (, ...)* ;". Each
// declarator carries its own array suffixes.
func (p *Parser) parseVarList(start uint32, ts ast.TypeSpecID, first token.Token, isConst, isStatic bool) []ast.DeclID {
	var out []ast.DeclID
	name := first
	for {
		vts := p.parseDeclaratorDims(ts)
		init := ast.NoExprID
		if p.eat(token.Assign) {
			init = p.parseInitializer()
		}
		out = append(out, p.builder.Decls.NewVar(p.spanFrom(start), ast.DeclVarData{
			Type:     vts,
			Name:     p.intern(name),
			NameSpan: name.Span,
			Init:     init,
			Const:    isConst,
			Static:   isStatic,
		}))
		if !p.eat(token.Comma) {
			break
		}
		var ok bool
		name, ok = p.expect(token.Ident, diag.SynExpectIdentifier)
		if !ok {
			p.syncStmt()
			return out
		}
	}
	if _, ok := p.expect(token.Semicolon, diag.SynExpectSemicolon); !ok {
		p.syncStmt()
	}
	return out
}

// parseInitializer parses either a brace initializer list or a single
// assignment expression.
func (p *Parser) parseInitializer() ast.ExprID {
	if !p.at(token.LBrace) {
		return p.parseAssign()
	}
	start := p.cur().Span.Start
	p.bump()
	var items []ast.ExprID
	for !p.at(token.RBrace) && !p.at(token.EOF) {
		items = append(items, p.parseInitializer())
		if !p.eat(token.Comma) {
			break
		}
	}
	p.expect(token.RBrace, diag.SynUnclosedBrace)
	return p.builder.Exprs.NewInitList(p.spanFrom(start), items)
}

// isDeclStart decides whether a statement position begins a local
// variable declaration. A leading const/static settles it; otherwise
// an identifier (with optional type-level dims) followed by another
// identifier does.
func (p *Parser) isDeclStart() bool {
	switch p.cur().Kind {
	case token.KwConst, token.KwStatic:
		return true
	case token.Ident:
	default:
		return false
	}
	i := p.pos + 1
	for i < len(p.toks) && p.toks[i].Kind == token.LBracket {
		depth := 1
		i++
		for i < len(p.toks) && depth > 0 {
			switch p.toks[i].Kind {
			case token.LBracket:
				depth++
			case token.RBracket:
				depth--
			case token.Semicolon, token.EOF:
				return false
			}
			i++
		}
	}
	return i < len(p.toks) && p.toks[i].Kind == token.Ident
}
