package lexer

// skipTrivia consumes whitespace, line comments and block comments.
// An unterminated block comment is reported and consumed to EOF.
func (lx *Lexer) skipTrivia() {
	for !lx.cursor.EOF() {
		switch b := lx.cursor.Peek(); {
		case b == ' ' || b == '\t' || b == '\r' || b == '\n':
			lx.cursor.Bump()
		case b == '/':
			b0, b1, ok := lx.cursor.Peek2()
			if !ok || b0 != '/' {
				return
			}
			switch b1 {
			case '/':
				lx.skipLineComment()
			case '*':
				lx.skipBlockComment()
			default:
				return
			}
		default:
			return
		}
	}
}

func (lx *Lexer) skipLineComment() {
	for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
		lx.cursor.Bump()
	}
}

func (lx *Lexer) skipBlockComment() {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // '/'
	lx.cursor.Bump() // '*'
	for !lx.cursor.EOF() {
		if lx.cursor.Bump() == '*' && lx.cursor.Eat('/') {
			return
		}
	}
	lx.report("UnterminatedComment", lx.cursor.SpanFrom(start), "unterminated block comment")
}
