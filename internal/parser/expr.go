package parser

import (
	"galaxy/internal/ast"
	"galaxy/internal/diag"
	"galaxy/internal/token"
)

// parseExpr parses a full expression including the comma operator.
func (p *Parser) parseExpr() ast.ExprID {
	start := p.cur().Span.Start
	first := p.parseAssign()
	if !p.at(token.Comma) {
		return first
	}
	items := []ast.ExprID{first}
	for p.eat(token.Comma) {
		items = append(items, p.parseAssign())
	}
	return p.builder.Exprs.NewComma(p.spanFrom(start), items)
}

var assignOps = map[token.Kind]ast.AssignOp{
	token.Assign:      ast.AssignSet,
	token.PlusAssign:  ast.AssignAdd,
	token.MinusAssign: ast.AssignSub,
	token.StarAssign:  ast.AssignMul,
	token.SlashAssign: ast.AssignDiv,
}

// Assignment is right associative.
func (p *Parser) parseAssign() ast.ExprID {
	start := p.cur().Span.Start
	left := p.parseTernary()
	op, ok := assignOps[p.cur().Kind]
	if !ok {
		return left
	}
	p.bump()
	value := p.parseAssign()
	return p.builder.Exprs.NewAssign(p.spanFrom(start), op, left, value)
}

func (p *Parser) parseTernary() ast.ExprID {
	start := p.cur().Span.Start
	cond := p.parseBinary(1)
	if !p.eat(token.Question) {
		return cond
	}
	then := p.parseExpr()
	p.expect(token.Colon, diag.SynUnexpectedToken)
	els := p.parseTernary()
	return p.builder.Exprs.NewTernary(p.spanFrom(start), cond, then, els)
}

type binInfo struct {
	op   ast.BinaryOp
	prec int
}

var binOps = map[token.Kind]binInfo{
	token.OrOr:    {ast.BinOr, 1},
	token.AndAnd:  {ast.BinAnd, 2},
	token.Pipe:    {ast.BinBitOr, 3},
	token.Caret:   {ast.BinBitXor, 4},
	token.Amp:     {ast.BinBitAnd, 5},
	token.EqEq:    {ast.BinEq, 6},
	token.BangEq:  {ast.BinNe, 6},
	token.Lt:      {ast.BinLt, 7},
	token.LtEq:    {ast.BinLe, 7},
	token.Gt:      {ast.BinGt, 7},
	token.GtEq:    {ast.BinGe, 7},
	token.Shl:     {ast.BinShl, 8},
	token.Shr:     {ast.BinShr, 8},
	token.Plus:    {ast.BinAdd, 9},
	token.Minus:   {ast.BinSub, 9},
	token.Star:    {ast.BinMul, 10},
	token.Slash:   {ast.BinDiv, 10},
	token.Percent: {ast.BinMod, 10},
}

// parseBinary folds left-associative operator chains at or above
// minPrec using precedence climbing.
func (p *Parser) parseBinary(minPrec int) ast.ExprID {
	start := p.cur().Span.Start
	left := p.parseUnary()
	for {
		info, ok := binOps[p.cur().Kind]
		if !ok || info.prec < minPrec {
			return left
		}
		p.bump()
		right := p.parseBinary(info.prec + 1)
		left = p.builder.Exprs.NewBinary(p.spanFrom(start), info.op, left, right)
	}
}

func (p *Parser) parseUnary() ast.ExprID {
	start := p.cur().Span.Start
	switch p.cur().Kind {
	case token.Minus:
		p.bump()
		return p.builder.Exprs.NewUnary(p.spanFrom(start), ast.UnaryNeg, p.parseUnary())
	case token.Plus:
		p.bump()
		return p.builder.Exprs.NewUnary(p.spanFrom(start), ast.UnaryPlus, p.parseUnary())
	case token.Bang:
		p.bump()
		return p.builder.Exprs.NewUnary(p.spanFrom(start), ast.UnaryNot, p.parseUnary())
	case token.Tilde:
		p.bump()
		return p.builder.Exprs.NewUnary(p.spanFrom(start), ast.UnaryBitNot, p.parseUnary())
	}
	if p.isCastStart() {
		p.bump() // '('
		name := p.bump()
		ts := p.builder.TypeSpecs.New(name.Span, p.intern(name), nil)
		p.bump() // ')'
		return p.builder.Exprs.NewCast(p.spanFrom(start), ts, p.parseUnary())
	}
	return p.parsePostfix()
}

// isCastStart detects "( ident )" followed by something that can only
// begin an operand. "(x) - y" stays a grouped expression; "(int) x"
// becomes a cast.
func (p *Parser) isCastStart() bool {
	if !p.at(token.LParen) || p.peek(1).Kind != token.Ident || p.peek(2).Kind != token.RParen {
		return false
	}
	switch p.peek(3).Kind {
	case token.Ident, token.IntLit, token.FixedLit, token.StringLit,
		token.KwTrue, token.KwFalse, token.KwNull,
		token.LParen, token.Bang, token.Tilde:
		return true
	}
	return false
}

func (p *Parser) parsePostfix() ast.ExprID {
	start := p.cur().Span.Start
	expr := p.parsePrimary()
	for {
		switch p.cur().Kind {
		case token.LParen:
			p.bump()
			var args []ast.ExprID
			if !p.at(token.RParen) {
				for {
					args = append(args, p.parseAssign())
					if !p.eat(token.Comma) {
						break
					}
				}
			}
			p.expect(token.RParen, diag.SynUnclosedParen)
			expr = p.builder.Exprs.NewCall(p.spanFrom(start), expr, args)
		case token.LBracket:
			p.bump()
			index := p.parseExpr()
			p.expect(token.RBracket, diag.SynUnclosedBracket)
			expr = p.builder.Exprs.NewIndex(p.spanFrom(start), expr, index)
		case token.Dot:
			p.bump()
			name, ok := p.expect(token.Ident, diag.SynExpectIdentifier)
			if !ok {
				return expr
			}
			expr = p.builder.Exprs.NewMember(p.spanFrom(start), expr, p.intern(name), name.Span)
		default:
			return expr
		}
	}
}

func (p *Parser) parsePrimary() ast.ExprID {
	t := p.cur()
	switch t.Kind {
	case token.Ident:
		p.bump()
		return p.builder.Exprs.NewIdent(t.Span, p.intern(t))
	case token.IntLit:
		p.bump()
		return p.builder.Exprs.NewLiteral(t.Span, ast.LitInt, p.intern(t))
	case token.FixedLit:
		p.bump()
		return p.builder.Exprs.NewLiteral(t.Span, ast.LitFixed, p.intern(t))
	case token.StringLit:
		p.bump()
		return p.builder.Exprs.NewLiteral(t.Span, ast.LitString, p.builder.Strings.Intern(unquote(t.Text)))
	case token.KwTrue, token.KwFalse:
		p.bump()
		return p.builder.Exprs.NewLiteral(t.Span, ast.LitBool, p.intern(t))
	case token.KwNull:
		p.bump()
		return p.builder.Exprs.NewLiteral(t.Span, ast.LitNull, p.intern(t))
	case token.LParen:
		start := t.Span.Start
		p.bump()
		inner := p.parseExpr()
		p.expect(token.RParen, diag.SynUnclosedParen)
		return p.builder.Exprs.NewGroup(p.spanFrom(start), inner)
	}
	p.errorf(diag.SynExpectExpression, t.Span, "expected expression, found %s", t.Kind)
	return ast.NoExprID
}
