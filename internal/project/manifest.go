// Package project locates and loads the optional zpl.toml workspace
// manifest: default printer address, session timeouts, and formatting
// style for everything under the workspace root.
package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// ManifestName is the file the workspace root is identified by.
const ManifestName = "zpl.toml"

// Config is the decoded manifest. Every key is optional; commands fall
// back to their flag defaults for anything left out.
type Config struct {
	Print  PrintConfig  `toml:"print"`
	Format FormatConfig `toml:"format"`
	Lint   LintConfig   `toml:"lint"`
}

// PrintConfig carries defaults for the print, status, and info commands.
type PrintConfig struct {
	// Printer is the default target address (IP, IP:PORT, hostname).
	Printer string `toml:"printer"`
	// TimeoutMS is the base session timeout in milliseconds.
	TimeoutMS int64 `toml:"timeout_ms"`
	// KeepAlive enables TCP keepalive probes on print sessions.
	KeepAlive bool `toml:"keep_alive"`
	// Bind pins the local IP print sessions dial from.
	Bind string `toml:"bind"`
}

// FormatConfig carries defaults for the fmt command. Values use the flag
// spellings: indent none|label|field, compaction none|field, comment
// placement default|line.
type FormatConfig struct {
	Indent           string `toml:"indent"`
	Compaction       string `toml:"compaction"`
	CommentPlacement string `toml:"comment_placement"`
}

// LintConfig carries defaults for check and lint.
type LintConfig struct {
	// MaxDiagnostics caps the number of reported diagnostics; 0 means
	// the command default.
	MaxDiagnostics int `toml:"max_diagnostics"`
}

// Manifest is a loaded zpl.toml plus where it came from.
type Manifest struct {
	Path   string // absolute path of the manifest file
	Root   string // directory containing it
	Config Config

	meta toml.MetaData
}

// Defined reports whether the manifest file itself set the given key
// path, e.g. Defined("print", "timeout_ms"). Commands use this to keep
// flag > manifest > default precedence: an absent key must not shadow
// the flag default with a zero value.
func (m *Manifest) Defined(keys ...string) bool {
	if m == nil {
		return false
	}
	return m.meta.IsDefined(keys...)
}

// FindManifest walks up from startDir to locate zpl.toml.
func FindManifest(startDir string) (path string, ok bool, err error) {
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

// FindRoot returns the directory containing zpl.toml, if any.
func FindRoot(startDir string) (root string, ok bool, err error) {
	manifestPath, ok, err := FindManifest(startDir)
	if err != nil || !ok {
		return "", ok, err
	}
	return filepath.Dir(manifestPath), true, nil
}

// Load finds the nearest manifest above startDir and decodes it. The
// second return is false when no manifest exists, which is not an error.
func Load(startDir string) (*Manifest, bool, error) {
	manifestPath, ok, err := FindManifest(startDir)
	if err != nil || !ok {
		return nil, ok, err
	}
	m, err := LoadFile(manifestPath)
	if err != nil {
		return nil, true, err
	}
	return m, true, nil
}

// LoadFile decodes one manifest file and validates the values it defines.
func LoadFile(path string) (*Manifest, error) {
	var cfg Config
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	m := &Manifest{
		Path:   path,
		Root:   filepath.Dir(path),
		Config: cfg,
		meta:   meta,
	}
	if m.Defined("print", "timeout_ms") && cfg.Print.TimeoutMS <= 0 {
		return nil, fmt.Errorf("%s: [print].timeout_ms must be > 0", path)
	}
	if m.Defined("lint", "max_diagnostics") && cfg.Lint.MaxDiagnostics < 0 {
		return nil, fmt.Errorf("%s: [lint].max_diagnostics must be >= 0", path)
	}
	return m, nil
}
