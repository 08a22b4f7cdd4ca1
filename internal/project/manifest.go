// Package project locates and parses galaxy.toml project manifests.
package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

const ManifestName = "galaxy.toml"

// Manifest is a located, parsed project manifest.
type Manifest struct {
	Path   string
	Root   string
	Config Config
}

type Config struct {
	Package PackageConfig `toml:"package"`
	Check   CheckConfig   `toml:"check"`
}

type PackageConfig struct {
	Name string `toml:"name"`
}

// CheckConfig configures the analyzer driver.
type CheckConfig struct {
	// IncludePaths are searched, in order, when resolving include
	// directives. Relative entries are relative to the manifest root.
	IncludePaths []string `toml:"include_paths"`
	// Natives points at a native prototype file (natives.galaxy).
	// Empty means the built-in common subset.
	Natives string `toml:"natives"`
	// MaxDiags caps diagnostics per run; 0 keeps the default.
	MaxDiags int `toml:"max_diags"`
}

// ErrPackageSectionMissing indicates that [package] is missing.
var ErrPackageSectionMissing = errors.New("missing [package]")

// Find walks from startDir toward the filesystem root looking for a
// galaxy.toml.
func Find(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, ManifestName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// Load parses the manifest at path.
func Load(path string) (*Manifest, error) {
	var cfg Config
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if !meta.IsDefined("package") {
		return nil, fmt.Errorf("%s: %w", path, ErrPackageSectionMissing)
	}
	cfg.Package.Name = strings.TrimSpace(cfg.Package.Name)
	return &Manifest{
		Path:   path,
		Root:   filepath.Dir(path),
		Config: cfg,
	}, nil
}

// LoadFrom finds and parses the manifest governing startDir. ok is
// false when no manifest exists on the way up.
func LoadFrom(startDir string) (*Manifest, bool, error) {
	path, ok, err := Find(startDir)
	if err != nil || !ok {
		return nil, ok, err
	}
	m, err := Load(path)
	if err != nil {
		return nil, true, err
	}
	return m, true, nil
}

// IncludePaths resolves the configured include paths against the
// manifest root, always ending with the root itself.
func (m *Manifest) IncludePaths() []string {
	out := make([]string, 0, len(m.Config.Check.IncludePaths)+1)
	for _, p := range m.Config.Check.IncludePaths {
		if !filepath.IsAbs(p) {
			p = filepath.Join(m.Root, p)
		}
		out = append(out, p)
	}
	return append(out, m.Root)
}

// NativesPath resolves the configured natives file, if any.
func (m *Manifest) NativesPath() string {
	p := m.Config.Check.Natives
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(m.Root, p)
}
