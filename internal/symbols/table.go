package symbols

import "galaxy/internal/source"

// Table is the nested-scope symbol table. The scope chain is
// global, then one function scope, then block scopes.
type Table struct {
	scopes []*Scope
}

func NewTable() *Table {
	return &Table{scopes: []*Scope{newScope("global")}}
}

func (t *Table) EnterFunction(name string) {
	t.scopes = append(t.scopes, newScope("func:"+name))
}

func (t *Table) EnterBlock() {
	t.scopes = append(t.scopes, newScope("block"))
}

// LeaveScope pops the innermost scope. The global scope is never
// popped.
func (t *Table) LeaveScope() {
	if len(t.scopes) > 1 {
		t.scopes = t.scopes[:len(t.scopes)-1]
	}
}

func (t *Table) IsGlobal() bool {
	return len(t.scopes) == 1
}

// Define inserts sym into the innermost scope. False means the name is
// already declared there; the caller reports the redeclaration and the
// original symbol stays.
func (t *Table) Define(sym *Symbol) bool {
	return t.scopes[len(t.scopes)-1].Define(sym)
}

// Lookup searches innermost to outermost.
func (t *Table) Lookup(name source.StringID) *Symbol {
	for i := len(t.scopes) - 1; i >= 0; i-- {
		if sym := t.scopes[i].Lookup(name); sym != nil {
			return sym
		}
	}
	return nil
}

// LookupLocal searches only the innermost scope.
func (t *Table) LookupLocal(name source.StringID) *Symbol {
	return t.scopes[len(t.scopes)-1].Lookup(name)
}

// LookupGlobal searches only the global scope.
func (t *Table) LookupGlobal(name source.StringID) *Symbol {
	return t.scopes[0].Lookup(name)
}

func (t *Table) Depth() int {
	return len(t.scopes)
}
