// Package driver wires the front end together: it loads files,
// resolves includes, feeds the parser and the semantic analyzer, and
// runs whole directories in parallel.
package driver

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"galaxy/internal/ast"
	"galaxy/internal/diag"
	"galaxy/internal/project"
	"galaxy/internal/sema"
	"galaxy/internal/source"
	"galaxy/internal/types"
)

const DefaultMaxDiags = 200

type Config struct {
	// IncludePaths are searched in order when resolving includes.
	IncludePaths []string
	// NativesFile points at a native prototype catalog; empty together
	// with CommonNatives=false runs without a native library.
	NativesFile   string
	CommonNatives bool
	MaxDiags      int
	// Jobs bounds CheckDir parallelism; 0 means GOMAXPROCS.
	Jobs int
	// Cache, when set, avoids re-parsing the natives catalog.
	Cache *NativesCache
}

type Driver struct {
	cfg Config
}

func New(cfg Config) *Driver {
	if cfg.MaxDiags <= 0 {
		cfg.MaxDiags = DefaultMaxDiags
	}
	return &Driver{cfg: cfg}
}

// FromManifest builds a driver from a parsed galaxy.toml.
func FromManifest(m *project.Manifest) *Driver {
	return New(Config{
		IncludePaths:  m.IncludePaths(),
		NativesFile:   m.NativesPath(),
		CommonNatives: m.NativesPath() == "",
		MaxDiags:      m.Config.Check.MaxDiags,
	})
}

// CheckResult is the analysis outcome for one root file.
type CheckResult struct {
	Path    string
	FileID  source.FileID
	Unit    ast.UnitID
	Files   *source.FileSet
	Builder *ast.Builder
	Types   *types.Interner
	Sema    *sema.Result
	// Bag merges lexical, syntactic and semantic diagnostics, sorted.
	Bag *diag.Bag
}

func (r *CheckResult) Success() bool {
	return r.Unit != ast.NoUnitID && !r.Bag.HasErrors()
}

// CheckFile analyzes one root script and everything it includes.
func (d *Driver) CheckFile(ctx context.Context, path string) (*CheckResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	fset := source.NewFileSet()
	res := &CheckResult{
		Path:    path,
		Files:   fset,
		Builder: ast.NewBuilder(ast.Hints{}),
		Bag:     diag.NewBag(d.cfg.MaxDiags),
	}
	res.Types = types.NewInterner(res.Builder.Strings)

	id, err := fset.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	res.FileID = id
	d.check(res, fset.Get(id))
	return res, nil
}

// CheckSource analyzes in-memory content under a display name, for
// stdin and tests.
func (d *Driver) CheckSource(name string, content []byte) *CheckResult {
	fset := source.NewFileSet()
	res := &CheckResult{
		Path:    name,
		Files:   fset,
		Builder: ast.NewBuilder(ast.Hints{}),
		Bag:     diag.NewBag(d.cfg.MaxDiags),
	}
	res.Types = types.NewInterner(res.Builder.Strings)
	res.FileID = fset.AddVirtual(name, content)
	d.check(res, fset.Get(res.FileID))
	return res
}

func (d *Driver) check(res *CheckResult, file *source.File) {
	unit, _ := d.parse(file, res.Builder, diag.BagReporter{Bag: res.Bag})
	res.Unit = unit

	natives, errs := d.loadNatives(res.Types, res.Builder.Strings)
	for _, msg := range errs {
		res.Bag.Add(diag.Diagnostic{
			Severity: diag.SevWarning,
			Code:     diag.IOLoadFileError,
			Message:  msg,
		})
	}

	checker := sema.New(res.Builder, res.Types, sema.Options{
		Natives:  natives,
		Resolve:  d.includeResolver(res.Files, res.Builder),
		MaxDiags: d.cfg.MaxDiags,
	})
	res.Sema = checker.Check(unit)
	res.Bag.Merge(res.Sema.Bag)
	res.Bag.Sort()
}

// ListScripts returns every *.galaxy file under dir, sorted for a
// deterministic run order.
func ListScripts(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, de fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !de.IsDir() && strings.HasSuffix(path, ".galaxy") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

// CheckDir analyzes every script under dir in parallel. Each root gets
// an isolated file set, builder and type interner, so workers share
// nothing. Results come back in the sorted file order.
func (d *Driver) CheckDir(ctx context.Context, dir string) ([]*CheckResult, error) {
	files, err := ListScripts(dir)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, nil
	}

	jobs := d.cfg.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	if jobs > len(files) {
		jobs = len(files)
	}

	results := make([]*CheckResult, len(files))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, err := d.CheckFile(gctx, path)
			if err != nil {
				// Surface the load failure as a diagnostic so one
				// unreadable file does not abort the batch.
				res = &CheckResult{Path: path, Bag: diag.NewBag(1)}
				res.Bag.Add(diag.Diagnostic{
					Severity: diag.SevError,
					Code:     diag.IOLoadFileError,
					Message:  err.Error(),
				})
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}
