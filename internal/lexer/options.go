package lexer

import "galaxy/internal/source"

// Reporter is a thin callback so the lexer does not depend on diag.
// The caller maps kind strings to diagnostic codes.
type Reporter interface {
	Report(kind string, span source.Span, msg string)
}

type Options struct {
	Reporter Reporter // nil means errors are dropped but lexing continues
}

func (lx *Lexer) report(kind string, sp source.Span, msg string) {
	if lx.opts.Reporter != nil {
		lx.opts.Reporter.Report(kind, sp, msg)
	}
}
