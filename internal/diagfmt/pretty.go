package diagfmt

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"galaxy/internal/diag"
	"galaxy/internal/source"
)

var (
	errColor  = color.New(color.FgRed, color.Bold)
	warnColor = color.New(color.FgYellow, color.Bold)
	infoColor = color.New(color.FgCyan, color.Bold)
	posColor  = color.New(color.Bold)
	markColor = color.New(color.FgGreen)
)

// Pretty renders every diagnostic in the bag as
//
//	path:line:col: severity CODE: message
//	    source line
//	    ^~~~~
//
// The bag is expected to be sorted already.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	for _, d := range bag.Items() {
		writeOne(w, &d, fs, opts)
	}
}

func writeOne(w io.Writer, d *diag.Diagnostic, fs *source.FileSet, opts PrettyOpts) {
	sev := severityLabel(d.Severity)
	if opts.Color {
		sev = severityColor(d.Severity).Sprint(sev)
	}
	pos := position(fs, d.Primary, opts.PathMode)
	if opts.Color && pos != "" {
		pos = posColor.Sprint(pos)
	}
	if pos != "" {
		fmt.Fprintf(w, "%s: %s %s: %s\n", pos, sev, d.Code.ID(), d.Message)
	} else {
		fmt.Fprintf(w, "%s %s: %s\n", sev, d.Code.ID(), d.Message)
	}
	if opts.ShowSource {
		writeSourceLine(w, fs, d.Primary, opts)
	}
	if opts.ShowNotes {
		for _, n := range d.Notes {
			npos := position(fs, n.Span, opts.PathMode)
			if npos != "" {
				fmt.Fprintf(w, "  note: %s: %s\n", npos, n.Msg)
			} else {
				fmt.Fprintf(w, "  note: %s\n", n.Msg)
			}
		}
	}
}

// writeSourceLine prints the first line of the span with a ^~~~ marker
// underneath. Column math uses display widths so tabs and wide runes
// keep the caret aligned.
func writeSourceLine(w io.Writer, fs *source.FileSet, sp source.Span, opts PrettyOpts) {
	if fs == nil {
		return
	}
	f := fs.Get(sp.File)
	if f == nil {
		return
	}
	start, end := fs.Resolve(sp)
	line := f.Line(start.Line)
	if line == "" && start.Col > 1 {
		return
	}
	fmt.Fprintf(w, "    %s\n", expandTabs(line))

	prefix := line
	if int(start.Col-1) <= len(line) {
		prefix = line[:start.Col-1]
	}
	pad := runewidth.StringWidth(expandTabs(prefix))

	markLen := 1
	if end.Line == start.Line && end.Col > start.Col {
		span := line
		if int(end.Col-1) <= len(line) {
			span = line[start.Col-1 : end.Col-1]
		}
		if wlen := runewidth.StringWidth(expandTabs(span)); wlen > 0 {
			markLen = wlen
		}
	}
	mark := "^" + strings.Repeat("~", markLen-1)
	if opts.Color {
		mark = markColor.Sprint(mark)
	}
	fmt.Fprintf(w, "    %s%s\n", strings.Repeat(" ", pad), mark)
}

func expandTabs(s string) string {
	return strings.ReplaceAll(s, "\t", "    ")
}

func position(fs *source.FileSet, sp source.Span, mode PathMode) string {
	if fs == nil {
		return ""
	}
	f := fs.Get(sp.File)
	if f == nil {
		return ""
	}
	path := f.Path
	if mode == PathModeBasename {
		path = filepath.Base(path)
	}
	start, _ := fs.Resolve(sp)
	return fmt.Sprintf("%s:%d:%d", path, start.Line, start.Col)
}

func severityLabel(s diag.Severity) string {
	switch s {
	case diag.SevError:
		return "error"
	case diag.SevWarning:
		return "warning"
	}
	return "info"
}

func severityColor(s diag.Severity) *color.Color {
	switch s {
	case diag.SevError:
		return errColor
	case diag.SevWarning:
		return warnColor
	}
	return infoColor
}

// Summary prints the closing "N errors, M warnings" line.
func Summary(w io.Writer, bag *diag.Bag, useColor bool) {
	var errs, warns int
	for _, d := range bag.Items() {
		switch d.Severity {
		case diag.SevError:
			errs++
		case diag.SevWarning:
			warns++
		}
	}
	if errs == 0 && warns == 0 {
		return
	}
	line := fmt.Sprintf("%d error(s), %d warning(s)", errs, warns)
	if useColor {
		if errs > 0 {
			line = errColor.Sprint(line)
		} else {
			line = warnColor.Sprint(line)
		}
	}
	fmt.Fprintln(w, line)
}
