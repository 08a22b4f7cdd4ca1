package driver

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"strings"

	"galaxy/internal/natives"
	"galaxy/internal/source"
	"galaxy/internal/types"
)

// loadNatives builds the native function table for one root's type
// interner. Warnings (not errors) come back as strings: a script is
// still worth checking without its native library.
func (d *Driver) loadNatives(ti *types.Interner, strs *source.Interner) (map[string]types.TypeID, []string) {
	loader := natives.NewLoader(ti, strs)

	if d.cfg.NativesFile == "" {
		if !d.cfg.CommonNatives {
			return nil, nil
		}
		loader.LoadCommon()
		return loader.Funcs(), nil
	}

	var warns []string
	lines, hit, err := d.cfg.Cache.Get(d.cfg.NativesFile)
	if err != nil {
		warns = append(warns, fmt.Sprintf("natives cache read failed: %v", err))
	}
	if hit {
		if _, err := loader.Load(strings.NewReader(strings.Join(lines, "\n"))); err == nil {
			return loader.Funcs(), warns
		}
	}

	content, err := os.ReadFile(d.cfg.NativesFile)
	if err != nil {
		warns = append(warns, fmt.Sprintf("cannot read natives catalog %s: %v", d.cfg.NativesFile, err))
		loader.LoadCommon()
		return loader.Funcs(), warns
	}
	if _, err := loader.Load(bytes.NewReader(content)); err != nil {
		warns = append(warns, fmt.Sprintf("cannot parse natives catalog %s: %v", d.cfg.NativesFile, err))
	}
	if d.cfg.Cache != nil {
		if err := d.cfg.Cache.Put(d.cfg.NativesFile, prototypeLines(content)); err != nil {
			warns = append(warns, fmt.Sprintf("natives cache write failed: %v", err))
		}
	}
	return loader.Funcs(), warns
}

// prototypeLines keeps only the lines that can be native prototypes,
// which is what makes the cached payload small.
func prototypeLines(content []byte) []string {
	var out []string
	sc := bufio.NewScanner(bytes.NewReader(content))
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if strings.HasPrefix(line, "native ") {
			out = append(out, line)
		}
	}
	return out
}
