package driver

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/vmihailenco/msgpack/v5"
)

// Bump when the payload layout changes.
const nativesCacheSchema uint16 = 1

// NativesCache memoizes the prototype lines extracted from a natives
// catalog. The game's natives.galaxy is megabytes of declarations that
// rarely change, so a stat-based key (path, size, mtime) is enough to
// skip re-filtering it on every run. Safe for concurrent use.
type NativesCache struct {
	mu  sync.RWMutex
	dir string
}

type nativesPayload struct {
	Schema uint16
	Lines  []string
}

// OpenNativesCache creates the cache under the user cache directory.
func OpenNativesCache(app string) (*NativesCache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	dir := filepath.Join(base, app, "natives")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &NativesCache{dir: dir}, nil
}

// NewNativesCacheAt creates the cache in an explicit directory.
func NewNativesCacheAt(dir string) (*NativesCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &NativesCache{dir: dir}, nil
}

// keyFor hashes the catalog's identity without reading its content.
func (c *NativesCache) keyFor(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	info, err := os.Stat(abs)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(fmt.Appendf(nil, "%s|%d|%d", abs, info.Size(), info.ModTime().UnixNano()))
	return hex.EncodeToString(sum[:]), nil
}

func (c *NativesCache) pathFor(key string) string {
	return filepath.Join(c.dir, key+".mp")
}

// Get returns the cached prototype lines for the catalog at path.
func (c *NativesCache) Get(path string) ([]string, bool, error) {
	if c == nil {
		return nil, false, nil
	}
	key, err := c.keyFor(path)
	if err != nil {
		return nil, false, err
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := os.Open(c.pathFor(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, err
	}
	defer f.Close()

	var payload nativesPayload
	if err := msgpack.NewDecoder(f).Decode(&payload); err != nil {
		return nil, false, err
	}
	if payload.Schema != nativesCacheSchema {
		return nil, false, nil
	}
	return payload.Lines, true, nil
}

// Put stores the prototype lines for the catalog at path, atomically.
func (c *NativesCache) Put(path string, lines []string) error {
	if c == nil {
		return nil
	}
	key, err := c.keyFor(path)
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	f, err := os.CreateTemp(c.dir, "tmp-*")
	if err != nil {
		return err
	}
	tmp := f.Name()
	enc := msgpack.NewEncoder(f)
	if err := enc.Encode(nativesPayload{Schema: nativesCacheSchema, Lines: lines}); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return err
	}
	return os.Rename(tmp, c.pathFor(key))
}
