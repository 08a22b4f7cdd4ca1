// Package natives loads declarations of the Galaxy standard library.
// The real catalog ships with the game as a plain .galaxy file of
// native prototypes (TriggerLibs/natives.galaxy); a small built-in
// table covers the common subset for runs without game data.
package natives

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"galaxy/internal/source"
	"galaxy/internal/types"
)

// One prototype per line, e.g.
//
//	native void TriggerExecute(trigger t, bool immediate, bool wait);
var (
	protoRe = regexp.MustCompile(`^native\s+(\w+)(\[[\d\s]*\])?\s+([A-Za-z_]\w*)\s*\(([^)]*)\)\s*;`)
	paramRe = regexp.MustCompile(`(?:const\s+)?(\w+)(\[[\d\s]*\])?\s+[A-Za-z_]\w*`)
)

// Loader accumulates native function signatures as interned function
// types keyed by name.
type Loader struct {
	types   *types.Interner
	strings *source.Interner
	handles map[string]bool
	funcs   map[string]types.TypeID
	errs    []string
}

func NewLoader(ti *types.Interner, strs *source.Interner) *Loader {
	handles := make(map[string]bool, len(types.HandleNames))
	for _, h := range types.HandleNames {
		handles[h] = true
	}
	return &Loader{
		types:   ti,
		strings: strs,
		handles: handles,
		funcs:   make(map[string]types.TypeID, 256),
	}
}

// LoadFile parses a native declaration file and returns how many
// prototypes it understood. Lines that are not native prototypes are
// skipped, so the full game file can be fed in as is.
func (l *Loader) LoadFile(path string) (int, error) {
	f, err := os.Open(path) // #nosec G304 -- path comes from the caller
	if err != nil {
		return 0, err
	}
	defer f.Close()
	return l.Load(f)
}

// Load parses prototypes from r, one per line.
func (l *Loader) Load(r io.Reader) (int, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	count := 0
	for sc.Scan() {
		m := protoRe.FindStringSubmatch(strings.TrimSpace(sc.Text()))
		if m == nil {
			continue
		}
		ret := l.typeFor(m[1], m[2])
		params := l.parseParams(m[4])
		l.funcs[m[3]] = l.types.Func(ret, params)
		count++
	}
	if err := sc.Err(); err != nil {
		return count, err
	}
	return count, nil
}

// LoadCommon installs the built-in subset of frequently used natives.
func (l *Loader) LoadCommon() {
	for _, def := range commonNatives {
		params := make([]types.TypeID, len(def.params))
		for i, p := range def.params {
			params[i] = l.typeFor(p, "")
		}
		l.funcs[def.name] = l.types.Func(l.typeFor(def.ret, ""), params)
	}
}

// Funcs returns the accumulated name-to-signature table.
func (l *Loader) Funcs() map[string]types.TypeID {
	return l.funcs
}

// Errors lists type names that could not be resolved while loading.
func (l *Loader) Errors() []string {
	return l.errs
}

func (l *Loader) parseParams(s string) []types.TypeID {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "void") {
		return nil
	}
	var out []types.TypeID
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if m := paramRe.FindStringSubmatch(part); m != nil {
			out = append(out, l.typeFor(m[1], m[2]))
			continue
		}
		if fields := strings.Fields(part); len(fields) > 0 {
			out = append(out, l.typeFor(fields[0], ""))
		}
	}
	return out
}

// typeFor resolves a scalar type name, with a one-dimensional array
// suffix when present. Prototype files only use simple types.
func (l *Loader) typeFor(name, arraySuffix string) types.TypeID {
	b := l.types.Builtins()
	var id types.TypeID
	switch name {
	case "int", "integer", "byte":
		id = b.Int
	case "bool", "boolean":
		id = b.Bool
	case "fixed":
		id = b.Fixed
	case "string":
		id = b.String
	case "text":
		id = b.Text
	case "void":
		id = b.Void
	default:
		if l.handles[name] {
			id = l.types.Handle(l.strings.Intern(name))
		} else {
			l.errs = append(l.errs, fmt.Sprintf("unknown type %q in native prototype", name))
			id = b.Error
		}
	}
	if strings.Contains(arraySuffix, "[") {
		id = l.types.Array(id, 0, false)
	}
	return id
}
