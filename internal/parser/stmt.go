package parser

import (
	"galaxy/internal/ast"
	"galaxy/internal/diag"
	"galaxy/internal/token"
)

// parseBlock consumes a '{'-delimited compound statement.
func (p *Parser) parseBlock() ast.StmtID {
	start := p.cur().Span.Start
	p.expect(token.LBrace, diag.SynUnexpectedToken)
	var stmts []ast.StmtID
	for !p.at(token.RBrace) && !p.at(token.EOF) {
		before := p.pos
		stmts = append(stmts, p.parseStmt()...)
		if p.pos == before {
			p.errorf(diag.SynUnexpectedToken, p.cur().Span, "unexpected %s", p.cur().Kind)
			p.bump()
		}
	}
	p.expect(token.RBrace, diag.SynUnclosedBrace)
	return p.builder.Stmts.NewBlock(p.spanFrom(start), stmts)
}

// parseStmt returns one or more statements: a declaration with several
// declarators expands to several local-var statements.
func (p *Parser) parseStmt() []ast.StmtID {
	switch p.cur().Kind {
	case token.LBrace:
		return []ast.StmtID{p.parseBlock()}
	case token.Semicolon:
		sp := p.bump().Span
		return []ast.StmtID{p.builder.Stmts.NewEmpty(sp)}
	case token.KwIf:
		return []ast.StmtID{p.parseIf()}
	case token.KwWhile:
		return []ast.StmtID{p.parseWhile()}
	case token.KwDo:
		return []ast.StmtID{p.parseDoWhile()}
	case token.KwFor:
		return []ast.StmtID{p.parseFor()}
	case token.KwReturn:
		return []ast.StmtID{p.parseReturn()}
	case token.KwBreak:
		sp := p.bump().Span
		p.expect(token.Semicolon, diag.SynExpectSemicolon)
		return []ast.StmtID{p.builder.Stmts.NewBreak(sp)}
	case token.KwContinue:
		sp := p.bump().Span
		p.expect(token.Semicolon, diag.SynExpectSemicolon)
		return []ast.StmtID{p.builder.Stmts.NewContinue(sp)}
	case token.KwBreakpoint:
		sp := p.bump().Span
		p.expect(token.Semicolon, diag.SynExpectSemicolon)
		return []ast.StmtID{p.builder.Stmts.NewBreakpoint(sp)}
	}

	if p.isDeclStart() {
		return p.parseLocalVars()
	}
	return []ast.StmtID{p.parseExprStmt()}
}

func (p *Parser) parseLocalVars() []ast.StmtID {
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
		p.syncStmt()
		return nil
	}
	name, ok := p.expect(token.Ident, diag.SynExpectIdentifier)
	if !ok {
		p.syncStmt()
		return nil
	}
	decls := p.parseVarList(start, ts, name, isConst, isStatic)
	stmts := make([]ast.StmtID, 0, len(decls))
	for _, d := range decls {
		stmts = append(stmts, p.builder.Stmts.NewLocalVar(p.builder.Decls.Get(d).Span, d))
	}
	return stmts
}

func (p *Parser) parseExprStmt() ast.StmtID {
	start := p.cur().Span.Start
	expr := p.parseExpr()
	if _, ok := p.expect(token.Semicolon, diag.SynExpectSemicolon); !ok {
		p.syncStmt()
	}
	return p.builder.Stmts.NewExpr(p.spanFrom(start), expr)
}

func (p *Parser) parseIf() ast.StmtID {
	start := p.cur().Span.Start
	p.bump()
	p.expect(token.LParen, diag.SynUnexpectedToken)
	cond := p.parseExpr()
	p.expect(token.RParen, diag.SynUnclosedParen)
	then := p.stmtAsBlockChild()
	els := ast.NoStmtID
	if p.eat(token.KwElse) {
		els = p.stmtAsBlockChild()
	}
	return p.builder.Stmts.NewIf(p.spanFrom(start), ast.StmtIfData{Cond: cond, Then: then, Else: els})
}

// stmtAsBlockChild parses a single statement for a control-flow body.
// A multi-declarator declaration is wrapped in a synthetic block.
func (p *Parser) stmtAsBlockChild() ast.StmtID {
	start := p.cur().Span.Start
	stmts := p.parseStmt()
	switch len(stmts) {
	case 0:
		return p.builder.Stmts.NewEmpty(p.spanFrom(start))
	case 1:
		return stmts[0]
	default:
		return p.builder.Stmts.NewBlock(p.spanFrom(start), stmts)
	}
}

func (p *Parser) parseWhile() ast.StmtID {
	start := p.cur().Span.Start
	p.bump()
	p.expect(token.LParen, diag.SynUnexpectedToken)
	cond := p.parseExpr()
	p.expect(token.RParen, diag.SynUnclosedParen)
	body := p.stmtAsBlockChild()
	return p.builder.Stmts.NewWhile(p.spanFrom(start), ast.StmtWhileData{Cond: cond, Body: body})
}

func (p *Parser) parseDoWhile() ast.StmtID {
	start := p.cur().Span.Start
	p.bump()
	body := p.stmtAsBlockChild()
	p.expect(token.KwWhile, diag.SynUnexpectedToken)
	p.expect(token.LParen, diag.SynUnexpectedToken)
	cond := p.parseExpr()
	p.expect(token.RParen, diag.SynUnclosedParen)
	p.expect(token.Semicolon, diag.SynExpectSemicolon)
	return p.builder.Stmts.NewDoWhile(p.spanFrom(start), ast.StmtDoWhileData{Body: body, Cond: cond})
}

// for ( init? ; cond? ; post? ) body — init may be a declaration.
func (p *Parser) parseFor() ast.StmtID {
	start := p.cur().Span.Start
	p.bump()
	p.expect(token.LParen, diag.SynUnexpectedToken)

	init := ast.NoStmtID
	if p.at(token.Semicolon) {
		p.bump()
	} else if p.isDeclStart() {
		locals := p.parseLocalVars()
		switch len(locals) {
		case 1:
			init = locals[0]
		default:
			init = p.builder.Stmts.NewBlock(p.spanFrom(start), locals)
		}
	} else {
		init = p.parseExprStmt()
	}

	cond := ast.NoExprID
	if !p.at(token.Semicolon) {
		cond = p.parseExpr()
	}
	p.expect(token.Semicolon, diag.SynExpectSemicolon)

	post := ast.NoExprID
	if !p.at(token.RParen) {
		post = p.parseExpr()
	}
	p.expect(token.RParen, diag.SynUnclosedParen)

	body := p.stmtAsBlockChild()
	return p.builder.Stmts.NewFor(p.spanFrom(start), ast.StmtForData{
		Init: init, Cond: cond, Post: post, Body: body,
	})
}

func (p *Parser) parseReturn() ast.StmtID {
	start := p.cur().Span.Start
	p.bump()
	value := ast.NoExprID
	if !p.at(token.Semicolon) {
		value = p.parseExpr()
	}
	p.expect(token.Semicolon, diag.SynExpectSemicolon)
	return p.builder.Stmts.NewReturn(p.spanFrom(start), value)
}
