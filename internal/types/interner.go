package types

import (
	"fmt"
	"strings"

	"fortio.org/safecast"

	"galaxy/internal/source"
)

// Builtins stores TypeIDs of the primitive types every run needs.
type Builtins struct {
	Error  TypeID
	Void   TypeID
	Int    TypeID
	Fixed  TypeID
	Bool   TypeID
	String TypeID
	Text   TypeID
	Null   TypeID
}

// Interner provides stable TypeIDs. Arrays, functions and handles are
// interned structurally; structs and typedefs are nominal and every
// New* call mints a fresh identity.
type Interner struct {
	types    []Type
	index    map[typeKey]TypeID
	funcs    []FuncInfo
	fnIndex  map[string]TypeID
	structs  []StructInfo
	aliases  []AliasInfo
	builtins Builtins
	strings  *source.Interner
}

type typeKey struct {
	Kind     Kind
	Name     source.StringID
	Elem     TypeID
	Count    uint32
	HasCount bool
}

func NewInterner(strs *source.Interner) *Interner {
	in := &Interner{
		index:   make(map[typeKey]TypeID, 64),
		fnIndex: make(map[string]TypeID, 64),
		strings: strs,
	}
	in.types = append(in.types, Type{Kind: KindInvalid}) // reserve 0
	in.funcs = append(in.funcs, FuncInfo{})
	in.structs = append(in.structs, StructInfo{})
	in.aliases = append(in.aliases, AliasInfo{})
	in.builtins.Error = in.intern(Type{Kind: KindError})
	in.builtins.Void = in.intern(Type{Kind: KindVoid})
	in.builtins.Int = in.intern(Type{Kind: KindInt})
	in.builtins.Fixed = in.intern(Type{Kind: KindFixed})
	in.builtins.Bool = in.intern(Type{Kind: KindBool})
	in.builtins.String = in.intern(Type{Kind: KindString})
	in.builtins.Text = in.intern(Type{Kind: KindText})
	in.builtins.Null = in.intern(Type{Kind: KindNull})
	return in
}

func (in *Interner) Builtins() Builtins {
	return in.builtins
}

func (in *Interner) intern(t Type) TypeID {
	key := typeKey{Kind: t.Kind, Name: t.Name, Elem: t.Elem, Count: t.Count, HasCount: t.HasCount}
	if id, ok := in.index[key]; ok {
		return id
	}
	id := in.alloc(t)
	in.index[key] = id
	return id
}

func (in *Interner) alloc(t Type) TypeID {
	n, err := safecast.Conv[uint32](len(in.types))
	if err != nil {
		panic(fmt.Errorf("len(types) overflow: %w", err))
	}
	in.types = append(in.types, t)
	return TypeID(n)
}

// Lookup returns the descriptor for a TypeID.
func (in *Interner) Lookup(id TypeID) (Type, bool) {
	if id == NoTypeID || int(id) >= len(in.types) {
		return Type{}, false
	}
	return in.types[id], true
}

// MustLookup panics when id is invalid.
func (in *Interner) MustLookup(id TypeID) Type {
	t, ok := in.Lookup(id)
	if !ok {
		panic("types: invalid TypeID")
	}
	return t
}

// Handle interns the opaque handle type with the given name.
func (in *Interner) Handle(name source.StringID) TypeID {
	return in.intern(Type{Kind: KindHandle, Name: name})
}

// Array interns an array of elem. hasCount false means the dimension
// could not be determined (or is inferred from an initializer).
func (in *Interner) Array(elem TypeID, count uint32, hasCount bool) TypeID {
	return in.intern(Type{Kind: KindArray, Elem: elem, Count: count, HasCount: hasCount})
}

// Func interns a function signature.
func (in *Interner) Func(ret TypeID, params []TypeID) TypeID {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d(", ret)
	for _, p := range params {
		fmt.Fprintf(&sb, "%d,", p)
	}
	sb.WriteByte(')')
	key := sb.String()
	if id, ok := in.fnIndex[key]; ok {
		return id
	}
	in.funcs = append(in.funcs, FuncInfo{Ret: ret, Params: params})
	id := in.alloc(Type{Kind: KindFunc, Payload: uint32(len(in.funcs) - 1)})
	in.fnIndex[key] = id
	return id
}

// FuncOf returns the signature behind a function TypeID.
func (in *Interner) FuncOf(id TypeID) (*FuncInfo, bool) {
	t, ok := in.Lookup(id)
	if !ok || t.Kind != KindFunc {
		return nil, false
	}
	return &in.funcs[t.Payload], true
}

// NewStruct mints a fresh nominal struct type with no members yet.
func (in *Interner) NewStruct(name source.StringID) TypeID {
	in.structs = append(in.structs, StructInfo{Name: name})
	return in.alloc(Type{Kind: KindStruct, Name: name, Payload: uint32(len(in.structs) - 1)})
}

func (in *Interner) StructOf(id TypeID) (*StructInfo, bool) {
	t, ok := in.Lookup(id)
	if !ok || t.Kind != KindStruct {
		return nil, false
	}
	return &in.structs[t.Payload], true
}

// DefineStructMembers fills a forward-declared struct. It reports
// false when the struct already has members.
func (in *Interner) DefineStructMembers(id TypeID, members []StructMember) bool {
	info, ok := in.StructOf(id)
	if !ok || info.Defined {
		return false
	}
	info.Members = members
	info.Defined = true
	return true
}

// NewTypedef mints a fresh alias type whose underlying type is not yet
// known.
func (in *Interner) NewTypedef(name source.StringID) TypeID {
	in.aliases = append(in.aliases, AliasInfo{Name: name})
	return in.alloc(Type{Kind: KindTypedef, Name: name, Payload: uint32(len(in.aliases) - 1)})
}

func (in *Interner) AliasOf(id TypeID) (*AliasInfo, bool) {
	t, ok := in.Lookup(id)
	if !ok || t.Kind != KindTypedef {
		return nil, false
	}
	return &in.aliases[t.Payload], true
}

// SetUnderlying fills a typedef placeholder. It reports false when the
// alias is already bound.
func (in *Interner) SetUnderlying(id TypeID, underlying TypeID) bool {
	info, ok := in.AliasOf(id)
	if !ok || info.Underlying != NoTypeID {
		return false
	}
	info.Underlying = underlying
	return true
}

// Resolve follows typedef chains to the final concrete type. An alias
// whose underlying type was never filled resolves to Error.
func (in *Interner) Resolve(id TypeID) TypeID {
	for range in.aliases {
		t, ok := in.Lookup(id)
		if !ok || t.Kind != KindTypedef {
			return id
		}
		next := in.aliases[t.Payload].Underlying
		if next == NoTypeID {
			return in.builtins.Error
		}
		id = next
	}
	// Alias cycle; should be unreachable given registration order.
	return in.builtins.Error
}

// String renders a type for diagnostics.
func (in *Interner) String(id TypeID) string {
	t, ok := in.Lookup(id)
	if !ok {
		return "<invalid>"
	}
	switch t.Kind {
	case KindError:
		return "<error>"
	case KindVoid:
		return "void"
	case KindInt:
		return "int"
	case KindFixed:
		return "fixed"
	case KindBool:
		return "bool"
	case KindString:
		return "string"
	case KindText:
		return "text"
	case KindNull:
		return "null"
	case KindHandle:
		return in.name(t.Name)
	case KindArray:
		// Dimensions print outermost first, as declared.
		dims := ""
		cur := t
		for {
			if cur.HasCount {
				dims += fmt.Sprintf("[%d]", cur.Count)
			} else {
				dims += "[]"
			}
			next, ok := in.Lookup(cur.Elem)
			if !ok || next.Kind != KindArray {
				return in.String(cur.Elem) + dims
			}
			cur = next
		}
	case KindFunc:
		fn := in.funcs[t.Payload]
		parts := make([]string, len(fn.Params))
		for i, p := range fn.Params {
			parts[i] = in.String(p)
		}
		return fmt.Sprintf("%s(%s)", in.String(fn.Ret), strings.Join(parts, ", "))
	case KindStruct:
		return "struct " + in.name(t.Name)
	case KindTypedef:
		return in.name(t.Name)
	}
	return "<invalid>"
}

func (in *Interner) name(id source.StringID) string {
	if in.strings == nil {
		return fmt.Sprintf("#%d", id)
	}
	return in.strings.MustLookup(id)
}
