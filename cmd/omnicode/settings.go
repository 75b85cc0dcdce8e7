package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"omnicode/internal/config"
	"omnicode/internal/driver"
	"omnicode/internal/lang"
	"omnicode/internal/lint"
)

// langAuto asks for content-based detection on every input.
const langAuto = "auto"

// settings merge the project file with global flags. Flags win when set.
type settings struct {
	cfg      *config.Config
	color    string
	dark     bool
	timings  bool
	lint     lint.Options
	langFlag string
}

func loadSettings(cmd *cobra.Command) (*settings, error) {
	flags := cmd.Root().PersistentFlags()

	cfgPath, err := flags.GetString("config")
	if err != nil {
		return nil, fmt.Errorf("failed to get config flag: %w", err)
	}
	cfg, err := loadConfig(cfgPath)
	if err != nil {
		return nil, err
	}

	s := &settings{cfg: cfg, dark: cfg.Editor.DarkMode, lint: cfg.LintOptions()}
	if s.color, err = flags.GetString("color"); err != nil {
		return nil, fmt.Errorf("failed to get color flag: %w", err)
	}
	switch s.color {
	case "auto", "on", "off":
	default:
		return nil, fmt.Errorf("invalid --color value %q (expected auto|on|off)", s.color)
	}
	if s.timings, err = flags.GetBool("timings"); err != nil {
		return nil, fmt.Errorf("failed to get timings flag: %w", err)
	}
	if flags.Changed("dark") {
		if s.dark, err = flags.GetBool("dark"); err != nil {
			return nil, fmt.Errorf("failed to get dark flag: %w", err)
		}
	}
	if flags.Changed("max-diagnostics") {
		if s.lint.Max, err = flags.GetInt("max-diagnostics"); err != nil {
			return nil, fmt.Errorf("failed to get max-diagnostics flag: %w", err)
		}
	}
	if s.langFlag, err = flags.GetString("lang"); err != nil {
		return nil, fmt.Errorf("failed to get lang flag: %w", err)
	}
	// неизвестный id не ошибка: сканер и правила уходят в общий fallback
	s.langFlag = strings.ToLower(strings.TrimSpace(s.langFlag))
	return s, nil
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.Load(path)
	}
	wd, err := os.Getwd()
	if err != nil {
		return config.Default(), nil
	}
	cfg, err := config.Discover(wd)
	if errors.Is(err, config.ErrNotFound) {
		return config.Default(), nil
	}
	return cfg, err
}

// useColor resolves --color for f.
func (s *settings) useColor(f *os.File) bool {
	return s.color == "on" || (s.color == "auto" && isTerminal(f))
}

// fileOptions maps the settings onto driver options. Unknown extensions
// always fall back to content detection; --lang auto tries the content
// first.
func (s *settings) fileOptions() driver.FileOptions {
	opts := driver.FileOptions{
		Options: driver.Options{Lint: s.lint, Timings: s.timings},
		Resolve: s.cfg.Language,
		Detect:  true,
	}
	switch s.langFlag {
	case "":
	case langAuto:
		opts.PreferContent = true
	default:
		opts.Language = lang.ID(s.langFlag)
	}
	return opts
}
