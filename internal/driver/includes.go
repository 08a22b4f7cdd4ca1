package driver

import (
	"os"
	"path/filepath"

	"galaxy/internal/ast"
	"galaxy/internal/diag"
	"galaxy/internal/parser"
	"galaxy/internal/sema"
	"galaxy/internal/source"
)

func (d *Driver) parse(file *source.File, b *ast.Builder, r diag.Reporter) (ast.UnitID, bool) {
	p := parser.New(file, b, parser.Options{
		Reporter:  r,
		MaxErrors: d.cfg.MaxDiags,
	})
	return p.ParseUnit()
}

// includeResolver searches the configured include paths for an include
// directive, loading and parsing the file into the shared builder.
// Includes without an extension get ".galaxy" appended, matching how
// the game resolves "TriggerLibs/NativeLib".
func (d *Driver) includeResolver(fset *source.FileSet, b *ast.Builder) sema.ResolveInclude {
	return func(path string, r diag.Reporter) (ast.UnitID, bool) {
		for _, cand := range d.includeCandidates(path) {
			if f, ok := fset.GetByPath(cand); ok {
				return d.parse(f, b, r)
			}
			if _, err := os.Stat(cand); err != nil {
				continue
			}
			id, err := fset.Load(cand)
			if err != nil {
				continue
			}
			return d.parse(fset.Get(id), b, r)
		}
		return ast.NoUnitID, false
	}
}

func (d *Driver) includeCandidates(path string) []string {
	names := []string{path}
	if filepath.Ext(path) == "" {
		names = append(names, path+".galaxy")
	}
	dirs := d.cfg.IncludePaths
	if len(dirs) == 0 {
		dirs = []string{"."}
	}
	out := make([]string, 0, len(names)*len(dirs))
	for _, dir := range dirs {
		for _, n := range names {
			out = append(out, filepath.Join(dir, filepath.FromSlash(n)))
		}
	}
	return out
}
