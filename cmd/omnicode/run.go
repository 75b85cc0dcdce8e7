package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"omnicode/internal/runner"
	"omnicode/internal/source"
	"omnicode/internal/trace"
)

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [flags] <file|->",
		Short: "Execute a JavaScript, TypeScript or Python buffer",
		Long: `Run hands the buffer to a local interpreter. TypeScript annotations are
stripped first. The program's exit status is propagated.`,
		Args: cobra.ExactArgs(1),
		RunE: runRun,
	}
	cmd.Flags().Duration("timeout", runner.DefaultTimeout, "kill the program after this long")
	cmd.Flags().String("node", "", "node binary (default: node on PATH)")
	cmd.Flags().String("python", "", "python binary (default: python3 on PATH)")
	return cmd
}

func runRun(cmd *cobra.Command, args []string) error {
	timeout, err := cmd.Flags().GetDuration("timeout")
	if err != nil {
		return fmt.Errorf("failed to get timeout flag: %w", err)
	}
	node, err := cmd.Flags().GetString("node")
	if err != nil {
		return fmt.Errorf("failed to get node flag: %w", err)
	}
	python, err := cmd.Flags().GetString("python")
	if err != nil {
		return fmt.Errorf("failed to get python flag: %w", err)
	}
	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	file, err := loadInput(cmd, source.NewFileSet(), args[0])
	if err != nil {
		return err
	}
	text := file.Text()
	id := s.fileOptions().DetectLanguage(file.Path, text)
	if !runner.Supported(id) {
		fmt.Fprintln(cmd.ErrOrStderr(), runner.UnsupportedHelp(id))
		return exitCodeError{code: 1}
	}

	ctx := cmd.Context()
	span := trace.Begin(trace.FromContext(ctx), trace.ScopeDriver, "run", trace.CurrentSpan(ctx)).
		WithExtra("lang", string(id))
	res, err := runner.Execute(ctx, text, id, runner.Options{Timeout: timeout, Node: node, Python: python})
	span.End(fmt.Sprintf("exit %d", res.ExitCode))

	if res.Output != "" {
		fmt.Fprintln(cmd.OutOrStdout(), res.Output)
	}
	if res.Error != "" {
		fmt.Fprintln(cmd.ErrOrStderr(), res.Error)
	}
	switch {
	case errors.Is(err, runner.ErrInterpreterMissing):
		return fmt.Errorf("%w (install it or pass --node/--python)", err)
	case err != nil:
		return err
	}
	if s.timings {
		fmt.Fprintf(cmd.ErrOrStderr(), "ran %.1f ms\n", float64(res.Duration)/float64(time.Millisecond))
	}
	if res.ExitCode != 0 {
		return exitCodeError{code: res.ExitCode}
	}
	return nil
}
