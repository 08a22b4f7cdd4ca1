// Package sema implements the two-pass semantic analyzer: pass one
// registers global declarations (includes, constants, type names,
// function signatures, globals), pass two checks function bodies.
package sema

import (
	"fmt"

	"galaxy/internal/ast"
	"galaxy/internal/diag"
	"galaxy/internal/source"
	"galaxy/internal/symbols"
	"galaxy/internal/types"
)

const DefaultMaxDiags = 200

// ResolveInclude loads and parses an included file into the shared
// builder, reporting parse diagnostics through r. ok is false when the
// file cannot be found.
type ResolveInclude func(path string, r diag.Reporter) (ast.UnitID, bool)

type Options struct {
	// Natives maps library function names to interned function types.
	Natives map[string]types.TypeID
	Resolve ResolveInclude
	// MaxDiags caps the bag; 0 means DefaultMaxDiags.
	MaxDiags int
}

// Result carries everything the analysis produced for one root unit.
type Result struct {
	Unit ast.UnitID
	Bag  *diag.Bag
	// Table is the global symbol table after analysis.
	Table *symbols.Table
	// ExprTypes records the computed type of every visited expression.
	ExprTypes map[ast.ExprID]types.TypeID
	// Refs records which symbol each identifier expression resolved to.
	Refs map[ast.ExprID]*symbols.Symbol
}

func (r *Result) Success() bool {
	return r.Unit != ast.NoUnitID && !r.Bag.HasErrors()
}

// TypeOf returns the recorded type of an expression.
func (r *Result) TypeOf(e ast.ExprID) (types.TypeID, bool) {
	t, ok := r.ExprTypes[e]
	return t, ok
}

type funcCtx struct {
	sym *symbols.Symbol
	ret types.TypeID
}

type Checker struct {
	b     *ast.Builder
	ti    *types.Interner
	table *symbols.Table
	bag   *diag.Bag
	opts  Options

	exprTypes map[ast.ExprID]types.TypeID
	refs      map[ast.ExprID]*symbols.Symbol
	included  map[string]bool

	fn        *funcCtx
	loopDepth int
}

func New(b *ast.Builder, ti *types.Interner, opts Options) *Checker {
	if opts.MaxDiags <= 0 {
		opts.MaxDiags = DefaultMaxDiags
	}
	c := &Checker{
		b:         b,
		ti:        ti,
		table:     symbols.NewTable(),
		bag:       diag.NewBag(opts.MaxDiags),
		opts:      opts,
		exprTypes: make(map[ast.ExprID]types.TypeID, 256),
		refs:      make(map[ast.ExprID]*symbols.Symbol, 64),
		included:  make(map[string]bool),
	}
	c.registerBuiltins()
	return c
}

// Check analyzes the root unit and every unit it includes. A panic in
// the walk is downgraded to an internal-error diagnostic so one broken
// construct cannot take down a batch run.
func (c *Checker) Check(unit ast.UnitID) (res *Result) {
	res = &Result{
		Unit:      unit,
		Bag:       c.bag,
		Table:     c.table,
		ExprTypes: c.exprTypes,
		Refs:      c.refs,
	}
	defer func() {
		if r := recover(); r != nil {
			u := c.b.Units.Get(unit)
			c.error(diag.SemaInternal, u.Span, fmt.Sprintf("internal analyzer error: %v", r))
		}
	}()
	c.checkUnit(unit)
	c.bag.Sort()
	return res
}

// checkUnit runs the full pass sequence over one translation unit.
func (c *Checker) checkUnit(unit ast.UnitID) {
	u := c.b.Units.Get(unit)
	c.processIncludes(u)
	c.declareConstGlobals(u)
	c.declareTypeNames(u)
	c.fillTypeNames(u)
	c.declareFunctions(u)
	c.declareGlobals(u)
	c.checkBodies(u)
}

func (c *Checker) processIncludes(u *ast.Unit) {
	for _, id := range u.Decls {
		inc, ok := c.b.Decls.Include(id)
		if !ok {
			continue
		}
		path := c.b.Name(inc.Path)
		if c.included[path] {
			continue
		}
		c.included[path] = true
		if c.opts.Resolve == nil {
			c.warning(diag.SemaMissingInclude, inc.PathSpan,
				fmt.Sprintf("include %q not resolved (no include path configured)", path))
			continue
		}
		sub, ok := c.opts.Resolve(path, diag.BagReporter{Bag: c.bag})
		if !ok {
			c.warning(diag.SemaMissingInclude, inc.PathSpan,
				fmt.Sprintf("include %q not found", path))
			continue
		}
		c.checkUnit(sub)
	}
}

// ── diagnostics ──

func (c *Checker) error(code diag.Code, span source.Span, msg string) {
	c.bag.Add(diag.Diagnostic{Severity: diag.SevError, Code: code, Message: msg, Primary: span})
}

func (c *Checker) warning(code diag.Code, span source.Span, msg string) {
	c.bag.Add(diag.Diagnostic{Severity: diag.SevWarning, Code: code, Message: msg, Primary: span})
}

func (c *Checker) errorf(code diag.Code, span source.Span, format string, args ...any) {
	c.error(code, span, fmt.Sprintf(format, args...))
}

func (c *Checker) name(id source.StringID) string {
	return c.b.Name(id)
}

func (c *Checker) typeName(id types.TypeID) string {
	return c.ti.String(id)
}
