package lexer

import "galaxy/internal/token"

func (lx *Lexer) scanOperatorOrPunct() token.Token {
	start := lx.cursor.Mark()
	b := lx.cursor.Bump()
	kind := token.Invalid

	switch b {
	case '+':
		kind = token.Plus
		if lx.cursor.Eat('=') {
			kind = token.PlusAssign
		}
	case '-':
		kind = token.Minus
		if lx.cursor.Eat('=') {
			kind = token.MinusAssign
		}
	case '*':
		kind = token.Star
		if lx.cursor.Eat('=') {
			kind = token.StarAssign
		}
	case '/':
		kind = token.Slash
		if lx.cursor.Eat('=') {
			kind = token.SlashAssign
		}
	case '%':
		kind = token.Percent
	case '=':
		kind = token.Assign
		if lx.cursor.Eat('=') {
			kind = token.EqEq
		}
	case '!':
		kind = token.Bang
		if lx.cursor.Eat('=') {
			kind = token.BangEq
		}
	case '<':
		kind = token.Lt
		if lx.cursor.Eat('=') {
			kind = token.LtEq
		} else if lx.cursor.Eat('<') {
			kind = token.Shl
		}
	case '>':
		kind = token.Gt
		if lx.cursor.Eat('=') {
			kind = token.GtEq
		} else if lx.cursor.Eat('>') {
			kind = token.Shr
		}
	case '&':
		kind = token.Amp
		if lx.cursor.Eat('&') {
			kind = token.AndAnd
		}
	case '|':
		kind = token.Pipe
		if lx.cursor.Eat('|') {
			kind = token.OrOr
		}
	case '^':
		kind = token.Caret
	case '~':
		kind = token.Tilde
	case '?':
		kind = token.Question
	case ':':
		kind = token.Colon
	case ';':
		kind = token.Semicolon
	case ',':
		kind = token.Comma
	case '.':
		kind = token.Dot
	case '(':
		kind = token.LParen
	case ')':
		kind = token.RParen
	case '{':
		kind = token.LBrace
	case '}':
		kind = token.RBrace
	case '[':
		kind = token.LBracket
	case ']':
		kind = token.RBracket
	}

	sp := lx.cursor.SpanFrom(start)
	if kind == token.Invalid {
		lx.report("UnexpectedChar", sp, "unexpected character "+lx.text(sp))
	}
	return token.Token{Kind: kind, Span: sp, Text: lx.text(sp)}
}
