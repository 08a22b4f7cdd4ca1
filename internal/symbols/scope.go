package symbols

import "galaxy/internal/source"

// Scope is one lexical level: a name to symbol map with
// unique-insertion semantics.
type Scope struct {
	name    string
	entries map[source.StringID]*Symbol
}

func newScope(name string) *Scope {
	return &Scope{
		name:    name,
		entries: make(map[source.StringID]*Symbol),
	}
}

// Define inserts sym unless the name is already taken in this scope.
// On conflict the original symbol is kept and false is returned.
func (s *Scope) Define(sym *Symbol) bool {
	if _, ok := s.entries[sym.Name]; ok {
		return false
	}
	s.entries[sym.Name] = sym
	return true
}

func (s *Scope) Lookup(name source.StringID) *Symbol {
	return s.entries[name]
}

func (s *Scope) Len() int {
	return len(s.entries)
}
