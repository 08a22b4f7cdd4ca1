// Package diagfmt renders diagnostic bags for humans and tools.
package diagfmt

// PathMode specifies how file paths are displayed.
type PathMode uint8

const (
	PathModeFull PathMode = iota
	PathModeBasename
)

// PrettyOpts configures the human-readable renderer.
type PrettyOpts struct {
	Color    bool
	PathMode PathMode
	// ShowSource prints the offending line with a caret marker.
	ShowSource bool
	ShowNotes  bool
}

// JSONOpts configures the machine-readable renderer.
type JSONOpts struct {
	// IncludePositions adds 1-based line/column fields.
	IncludePositions bool
	IncludeNotes     bool
	PathMode         PathMode
}
