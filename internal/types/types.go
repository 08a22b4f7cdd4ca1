package types

import "galaxy/internal/source"

type TypeID uint32

const NoTypeID TypeID = 0

func (id TypeID) IsValid() bool { return id != NoTypeID }

type Kind uint8

const (
	KindInvalid Kind = iota
	// KindError is the poison type used for error recovery. It is
	// compatible with everything so one bad subexpression does not
	// cascade into unrelated diagnostics.
	KindError
	KindVoid
	KindInt
	KindFixed
	KindBool
	KindString
	// KindText is localized text, distinct from string.
	KindText
	// KindNull is the type of the null literal.
	KindNull
	KindHandle
	KindArray
	KindFunc
	KindStruct
	KindTypedef
)

// Type is a structural descriptor. Handle types carry their name;
// arrays carry element and optional size; funcs, structs and typedefs
// point into the interner's side tables via Payload.
type Type struct {
	Kind     Kind
	Name     source.StringID
	Elem     TypeID
	Count    uint32
	HasCount bool
	Payload  uint32
}

// FuncInfo describes a function signature.
type FuncInfo struct {
	Ret    TypeID
	Params []TypeID
}

// StructMember is one named field of a struct.
type StructMember struct {
	Name source.StringID
	Type TypeID
}

// StructInfo is a nominal struct entry. Members stays nil and Defined
// false while only the forward name has been seen.
type StructInfo struct {
	Name    source.StringID
	Members []StructMember
	Defined bool
}

// AliasInfo is a typedef entry. Underlying is NoTypeID until the
// defining declaration is processed.
type AliasInfo struct {
	Name       source.StringID
	Underlying TypeID
}

// HandleNames lists every built-in opaque handle type of the dialect.
// Handles cannot do arithmetic; they compare against each other and
// accept null.
var HandleNames = []string{
	"unit", "unitgroup", "unitfilter", "unitref",
	"point", "region", "trigger", "timer",
	"actor", "actorscope",
	"wave", "wavetarget", "waveinfo",
	"sound", "soundlink",
	"revealer", "playergroup",
	"shuffler", "color", "abilcmd",
	"order", "marker", "bank", "camerainfo",
	"aifilter", "effecthistory", "bitmask",
	"datetime", "doodad", "generichandle",
	"transmissionsource",
}
