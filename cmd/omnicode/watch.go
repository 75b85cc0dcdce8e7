package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"omnicode/internal/diagfmt"
	"omnicode/internal/driver"
	"omnicode/internal/trace"
)

// watchDebounce coalesces the burst of events editors emit on save.
const watchDebounce = 150 * time.Millisecond

func newWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch [flags] <file>",
		Short: "Re-check a file every time it changes",
		Args:  cobra.ExactArgs(1),
		RunE:  runWatch,
	}
	cmd.Flags().String("format", "pretty", "output format (pretty|short)")
	return cmd
}

func runWatch(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	if format != string(diagfmt.FormatPretty) && format != string(diagfmt.FormatShort) {
		return fmt.Errorf("unknown format: %s", format)
	}
	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	path, err := filepath.Abs(args[0])
	if err != nil {
		return err
	}

	opts := s.fileOptions()
	opts.Memo = driver.NewMemo(0)
	check := func() {
		res, err := analyzeInput(cmd, opts, path)
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", args[0], err)
			return
		}
		printWatchResult(cmd, s, format, res)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to start watcher: %w", err)
	}
	defer watcher.Close()
	// редакторы часто заменяют файл через rename, поэтому следим за каталогом
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", filepath.Dir(path), err)
	}

	check()
	ctx := cmd.Context()
	tracer := trace.FromContext(ctx)
	var debounce <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != path || ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			trace.Point(tracer, trace.ScopeFile, "watch", ev.String())
			debounce = time.After(watchDebounce)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			trace.Fail(tracer, "watch", err)
			fmt.Fprintf(cmd.ErrOrStderr(), "watch: %v\n", err)
		case <-debounce:
			debounce = nil
			if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
				continue
			}
			check()
		}
	}
}

func printWatchResult(cmd *cobra.Command, s *settings, format string, res *driver.Result) {
	out := cmd.OutOrStdout()
	entries := []diagfmt.Entry{{
		Path:        res.Path,
		Lines:       diagfmt.LinesFromTokens(res.Lines),
		Diagnostics: res.Diagnostics,
	}}
	fmt.Fprintf(out, "[%s] %s\n", time.Now().Format("15:04:05"), res.Path)
	var err error
	if format == string(diagfmt.FormatShort) {
		err = diagfmt.Short(out, entries)
	} else {
		err = diagfmt.Pretty(out, entries, diagfmt.PrettyOpts{Color: s.useColor(os.Stdout), Context: 2, Summary: true})
	}
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "watch: %v\n", err)
	}
}
