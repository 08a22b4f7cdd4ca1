package source

// FileID uniquely identifies a source file within a FileSet.
// The zero value is reserved: valid IDs start at 1.
type FileID uint32

// NoFileID marks the absence of a file.
const NoFileID FileID = 0

// FileFlags encodes metadata about how a file entered the set.
type FileFlags uint8

const (
	// FileVirtual marks content added from memory (tests, stdin).
	FileVirtual FileFlags = 1 << iota
	FileHadBOM
	FileNormalizedCRLF
)

// File holds normalized content plus the newline index used to turn byte
// offsets into line/column positions.
type File struct {
	ID      FileID
	Path    string
	Content []byte
	lineIdx []uint32
	Flags   FileFlags
}

// LineCol is a 1-based human-readable position.
type LineCol struct {
	Line uint32
	Col  uint32
}

// Line returns the text of the 1-based line number, without the trailing
// newline. Out-of-range line numbers yield "".
func (f *File) Line(lineNum uint32) string {
	if lineNum == 0 {
		return ""
	}
	var start uint32
	switch {
	case lineNum == 1:
		start = 0
	case int(lineNum-2) < len(f.lineIdx):
		start = f.lineIdx[lineNum-2] + 1
	default:
		return ""
	}
	end := uint32(len(f.Content))
	if int(lineNum-1) < len(f.lineIdx) {
		end = f.lineIdx[lineNum-1]
	}
	if start >= uint32(len(f.Content)) {
		return ""
	}
	if end > uint32(len(f.Content)) {
		end = uint32(len(f.Content))
	}
	return string(f.Content[start:end])
}

func buildLineIndex(content []byte) []uint32 {
	var out []uint32
	for i, b := range content {
		if b == '\n' {
			out = append(out, uint32(i))
		}
	}
	return out
}

// toLineCol maps a byte offset to a 1-based line/column using the newline
// index (binary search for the last newline at or before off).
func toLineCol(lineIdx []uint32, off uint32) LineCol {
	lo, hi := 0, len(lineIdx)-1
	for lo <= hi {
		mid := (lo + hi) / 2
		if lineIdx[mid] < off {
			lo = mid + 1
		} else {
			hi = mid - 1
		}
	}
	// hi is the index of the last newline strictly before off.
	if hi < 0 {
		return LineCol{Line: 1, Col: off + 1}
	}
	lineStart := lineIdx[hi] + 1
	return LineCol{Line: uint32(hi) + 2, Col: off - lineStart + 1}
}
