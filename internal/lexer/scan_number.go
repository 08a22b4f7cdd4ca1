package lexer

import "galaxy/internal/token"

func isDec(b byte) bool {
	return b >= '0' && b <= '9'
}

func isHex(b byte) bool {
	return isDec(b) || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}

// Galaxy numbers: decimal integers, 0x hex integers, and fixed-point
// literals of the form digits '.' digits. No exponents, no suffixes.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()
	kind := token.IntLit

	if lx.cursor.Peek() == '0' {
		b0, b1, ok := lx.cursor.Peek2()
		if ok && b0 == '0' && (b1 == 'x' || b1 == 'X') {
			lx.cursor.Bump()
			lx.cursor.Bump()
			if !isHex(lx.cursor.Peek()) {
				sp := lx.cursor.SpanFrom(start)
				lx.report("BadNumber", sp, "expected hex digit after 0x")
				return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
			}
			for isHex(lx.cursor.Peek()) {
				lx.cursor.Bump()
			}
			sp := lx.cursor.SpanFrom(start)
			return token.Token{Kind: kind, Span: sp, Text: lx.text(sp)}
		}
	}

	for isDec(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}

	// A '.' followed by a digit makes this a fixed literal. A trailing
	// '.' without digits stays with the integer; the dot becomes its
	// own token.
	if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '.' && isDec(b1) {
		kind = token.FixedLit
		lx.cursor.Bump() // '.'
		for isDec(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
	}

	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: kind, Span: sp, Text: lx.text(sp)}
}
