package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"omnicode/internal/config"
	"omnicode/internal/trace"
	"omnicode/internal/version"
)

// exitCodeError ends the process with code without printing anything more;
// the command has already reported the reason.
type exitCodeError struct {
	code int
}

func (e exitCodeError) Error() string { return fmt.Sprintf("exit status %d", e.code) }

// newRootCmd builds the command tree. Tests construct a fresh tree per run.
func newRootCmd() *cobra.Command {
	var cleanups []func()
	runCleanups := func() {
		for i := len(cleanups) - 1; i >= 0; i-- {
			cleanups[i]()
		}
		cleanups = nil
	}
	rootCmd := &cobra.Command{
		Use:           "omnicode",
		Short:         "Multi-language highlighter and linter",
		Long:          `omnicode tokenizes, highlights and checks source buffers in two dozen languages`,
		Version:       version.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if mode, _ := cmd.Root().PersistentFlags().GetString("color"); mode != "auto" {
				color.NoColor = mode != "on"
			}
			stopProfiling, err := setupProfiling(cmd)
			if err != nil {
				return err
			}
			cleanups = append(cleanups, stopProfiling)
			stopTracing, err := setupTracing(cmd)
			if err != nil {
				runCleanups()
				return err
			}
			cleanups = append(cleanups, stopTracing)
			trace.Point(trace.FromContext(cmd.Context()), trace.ScopeDriver, "command", cmd.CommandPath())
			return nil
		},
		// help and completion are added by cobra after the loop below
		// and only reach this hook.
		PersistentPostRun: func(*cobra.Command, []string) {
			runCleanups()
		},
	}

	// Добавляем команды
	rootCmd.AddCommand(newTokenizeCmd())
	rootCmd.AddCommand(newCheckCmd())
	rootCmd.AddCommand(newViewCmd())
	rootCmd.AddCommand(newWatchCmd())
	rootCmd.AddCommand(newNewCmd())
	rootCmd.AddCommand(newLanguagesCmd())
	rootCmd.AddCommand(newRunCmd())
	rootCmd.AddCommand(newVersionCmd())

	// PersistentPostRun is skipped when RunE fails, so cleanups also hang
	// off each command. runCleanups is idempotent.
	for _, c := range rootCmd.Commands() {
		run := c.RunE
		c.RunE = func(cmd *cobra.Command, args []string) error {
			defer runCleanups()
			return run(cmd, args)
		}
	}

	// Глобальные флаги
	flags := rootCmd.PersistentFlags()
	flags.String("color", "auto", "colorize output (auto|on|off)")
	flags.Bool("dark", false, "use the dark palette (overrides [editor].dark_mode)")
	flags.Bool("timings", false, "show timing information")
	flags.Int("max-diagnostics", 0, "maximum number of diagnostics per file (0 = config or unlimited)")
	flags.String("config", "", "path to "+config.FileName+" (default: search upwards from the working directory)")
	flags.String("lang", "", "force a language id, or \"auto\" to guess from content")
	flags.String("trace", "", "write trace events to file (- for stderr)")
	flags.String("trace-level", "off", "trace level (off|error|phase|detail|debug)")
	flags.String("trace-mode", "stream", "trace storage (stream|ring)")
	flags.String("trace-format", "auto", "trace output format (auto|text|ndjson)")
	flags.Int("trace-ring-size", 4096, "events kept in ring mode")
	flags.String("cpu-profile", "", "write a CPU profile to file")
	flags.String("mem-profile", "", "write a heap profile to file on exit")
	flags.String("runtime-trace", "", "write a Go runtime trace to file")

	return rootCmd
}

// main executes the root command and maps failures to exit codes.
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err == nil {
		return
	}
	var exit exitCodeError
	if errors.As(err, &exit) {
		os.Exit(exit.code)
	}
	fmt.Fprintln(os.Stderr, "error:", err)
	os.Exit(1)
}

// isTerminal проверяет, является ли файл терминалом
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
