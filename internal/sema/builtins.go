package sema

import (
	"galaxy/internal/symbols"
	"galaxy/internal/types"
)

// builtinAliases maps alternative spellings onto canonical built-ins.
var builtinAliases = map[string]string{
	"integer": "int",
	"boolean": "bool",
	"byte":    "int",
}

// registerBuiltins seeds the global scope with the built-in type names,
// the opaque handle types and the configured native functions.
func (c *Checker) registerBuiltins() {
	b := c.ti.Builtins()

	scalars := map[string]types.TypeID{
		"void":   b.Void,
		"int":    b.Int,
		"fixed":  b.Fixed,
		"bool":   b.Bool,
		"string": b.String,
		"text":   b.Text,
	}
	for name, id := range scalars {
		c.defineType(name, id)
	}
	for alias, canonical := range builtinAliases {
		c.defineType(alias, scalars[canonical])
	}
	for _, h := range types.HandleNames {
		c.defineType(h, c.ti.Handle(c.b.Strings.Intern(h)))
	}

	for name, fnType := range c.opts.Natives {
		c.table.Define(&symbols.Symbol{
			Name:    c.b.Strings.Intern(name),
			Type:    fnType,
			Kind:    symbols.KindFunc,
			Native:  true,
			Defined: true,
		})
	}
}

func (c *Checker) defineType(name string, id types.TypeID) {
	c.table.Define(&symbols.Symbol{
		Name: c.b.Strings.Intern(name),
		Type: id,
		Kind: symbols.KindType,
	})
}
