// Package config loads the optional .omnicode.toml project file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"omnicode/internal/diag"
	"omnicode/internal/lang"
	"omnicode/internal/lint"
)

// FileName is the project file looked up by Find.
const FileName = ".omnicode.toml"

// ErrNotFound is returned by Discover when no project file exists up the tree.
var ErrNotFound = errors.New("no " + FileName + " found")

// Config mirrors .omnicode.toml.
type Config struct {
	Editor      Editor            `toml:"editor"`
	Diagnostics Diagnostics       `toml:"diagnostics"`
	Extensions  map[string]string `toml:"extensions"`

	// Path is the file the config was read from, empty for Default.
	Path string `toml:"-"`
}

type Editor struct {
	DarkMode        bool   `toml:"dark_mode"`
	DefaultLanguage string `toml:"default_language"`
}

type Diagnostics struct {
	IndentUnit       int      `toml:"indent_unit"`
	Max              int      `toml:"max"`
	DisabledRules    []string `toml:"disabled_rules"`
	WarningsAsErrors bool     `toml:"warnings_as_errors"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Editor:      Editor{DefaultLanguage: string(lang.Default)},
		Diagnostics: Diagnostics{IndentUnit: lint.DefaultIndentUnit},
	}
}

// Find walks up from startDir looking for FileName.
func Find(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false, nil
		}
		dir = parent
	}
}

// Discover finds and loads the nearest project file.
// It returns ErrNotFound when there is none.
func Discover(startDir string) (*Config, error) {
	path, ok, err := Find(startDir)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNotFound
	}
	return Load(path)
}

// Load decodes path on top of Default and validates the result.
func Load(path string) (*Config, error) {
	cfg := Default()
	meta, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return nil, fmt.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if meta.IsDefined("diagnostics", "indent_unit") && cfg.Diagnostics.IndentUnit <= 0 {
		return nil, fmt.Errorf("%s: [diagnostics].indent_unit must be positive", path)
	}
	if meta.IsDefined("editor", "default_language") && !lang.IsKnown(lang.ID(cfg.Editor.DefaultLanguage)) {
		return nil, fmt.Errorf("%s: [editor].default_language: unknown language %q", path, cfg.Editor.DefaultLanguage)
	}
	for _, r := range cfg.Diagnostics.DisabledRules {
		if !diag.Rule(r).Known() {
			return nil, fmt.Errorf("%s: [diagnostics].disabled_rules: unknown rule %q", path, r)
		}
	}
	exts := make(map[string]string, len(cfg.Extensions))
	for ext, id := range cfg.Extensions {
		if !lang.IsKnown(lang.ID(id)) {
			return nil, fmt.Errorf("%s: [extensions].%s: unknown language %q", path, ext, id)
		}
		exts[strings.ToLower(strings.TrimPrefix(ext, "."))] = id
	}
	cfg.Extensions = exts
	cfg.Path = path
	return cfg, nil
}

// LintOptions converts the diagnostics section into linter options.
func (c *Config) LintOptions() lint.Options {
	opts := lint.Options{IndentUnit: c.Diagnostics.IndentUnit, Max: c.Diagnostics.Max}
	for _, r := range c.Diagnostics.DisabledRules {
		opts.Disabled = append(opts.Disabled, diag.Rule(r))
	}
	return opts
}

// DefaultLanguage returns the language used when nothing else matches.
func (c *Config) DefaultLanguage() lang.ID {
	if id := lang.ID(c.Editor.DefaultLanguage); lang.IsKnown(id) {
		return id
	}
	return lang.Default
}

// Language resolves filename through the [extensions] overrides, then the
// built-in table. The bool is false when the default language was used.
func (c *Config) Language(filename string) (lang.ID, bool) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
	if id, ok := c.Extensions[ext]; ok && ext != "" {
		return lang.ID(id), true
	}
	if id, ok := lang.FromFilename(filepath.Base(filename)); ok {
		return id, true
	}
	return c.DefaultLanguage(), false
}
