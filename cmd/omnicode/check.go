package main

import (
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/spf13/cobra"

	"omnicode/internal/diag"
	"omnicode/internal/diagfmt"
	"omnicode/internal/driver"
	"omnicode/internal/version"
)

const (
	sortRule     = "rule"
	sortPosition = "position"
)

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "check [flags] <file|directory|->",
		Aliases: []string{"diag"},
		Short:   "Run diagnostics on a file, a directory or stdin",
		Long: `Check runs the per-language rule sets over one buffer or every recognised
file in a directory. The exit status is 1 when any error is reported.`,
		Args: cobra.ExactArgs(1),
		RunE: runCheck,
	}
	cmd.Flags().String("format", "pretty", "output format (pretty|short|json|sarif)")
	cmd.Flags().Bool("warnings-as-errors", false, "treat warnings as errors")
	cmd.Flags().Int("jobs", 0, "max parallel workers for directory processing (0=auto)")
	cmd.Flags().Bool("cache", false, "reuse results persisted on disk between runs")
	cmd.Flags().Bool("clear-cache", false, "drop persisted results before checking")
	cmd.Flags().String("ui", "auto", "progress UI for directories (auto|on|off)")
	cmd.Flags().String("sort", sortRule, "diagnostic order (rule|position)")
	return cmd
}

// runCheck executes the "check" command. It returns exitCodeError{1} when
// any error diagnostic (or load failure) was reported.
func runCheck(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	if !slices.Contains(diagfmt.Formats(), diagfmt.Format(format)) {
		return fmt.Errorf("unknown format: %s", format)
	}
	warningsAsErrors, err := cmd.Flags().GetBool("warnings-as-errors")
	if err != nil {
		return fmt.Errorf("failed to get warnings-as-errors flag: %w", err)
	}
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}
	useCache, err := cmd.Flags().GetBool("cache")
	if err != nil {
		return fmt.Errorf("failed to get cache flag: %w", err)
	}
	clearCache, err := cmd.Flags().GetBool("clear-cache")
	if err != nil {
		return fmt.Errorf("failed to get clear-cache flag: %w", err)
	}
	order, err := cmd.Flags().GetString("sort")
	if err != nil {
		return fmt.Errorf("failed to get sort flag: %w", err)
	}
	if order != sortRule && order != sortPosition {
		return fmt.Errorf("unknown sort order: %s", order)
	}
	uiFlag, err := cmd.Flags().GetString("ui")
	if err != nil {
		return fmt.Errorf("failed to get ui flag: %w", err)
	}
	mode, err := readUIMode(uiFlag)
	if err != nil {
		return err
	}

	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	warningsAsErrors = warningsAsErrors || s.cfg.Diagnostics.WarningsAsErrors

	opts := s.fileOptions()
	if useCache || clearCache {
		cache, err := driver.OpenDiskCache("omnicode")
		if err != nil {
			return fmt.Errorf("failed to open cache: %w", err)
		}
		if clearCache {
			if err := cache.DropAll(); err != nil {
				return fmt.Errorf("failed to clear cache: %w", err)
			}
		}
		if useCache {
			opts.Cache = cache
		}
	}

	results, failures, err := collectResults(cmd, args[0], opts, jobs, format == string(diagfmt.FormatPretty) && shouldUseTUI(mode))
	if err != nil {
		return err
	}

	entries := make([]diagfmt.Entry, 0, len(results))
	errorCount := failures
	for _, r := range results {
		bag := prepareDiagnostics(r.Diagnostics, warningsAsErrors, order == sortPosition)
		errorCount += bag.ErrorCount()
		entries = append(entries, diagfmt.Entry{
			Path:        r.Path,
			Lines:       diagfmt.LinesFromTokens(r.Lines),
			Diagnostics: bag.Items(),
		})
	}

	out := cmd.OutOrStdout()
	switch diagfmt.Format(format) {
	case diagfmt.FormatPretty:
		err = diagfmt.Pretty(out, entries, diagfmt.PrettyOpts{
			Color:   s.useColor(os.Stdout),
			Context: 2,
			Summary: true,
		})
	case diagfmt.FormatShort:
		err = diagfmt.Short(out, entries)
	case diagfmt.FormatJSON:
		err = diagfmt.JSON(out, entries, diagfmt.JSONOpts{Indent: true})
	case diagfmt.FormatSARIF:
		err = diagfmt.Sarif(out, entries, diagfmt.SarifRunMeta{
			ToolName:       "omnicode",
			ToolVersion:    version.Version,
			InvocationArgs: os.Args[1:],
		})
	}
	if err != nil {
		return fmt.Errorf("failed to format diagnostics: %w", err)
	}

	if s.timings {
		printTimings(cmd.ErrOrStderr(), results)
	}
	if errorCount > 0 {
		return exitCodeError{code: 1}
	}
	return nil
}

// collectResults analyzes arg and returns successful results plus the number
// of files that could not be read.
func collectResults(cmd *cobra.Command, arg string, opts driver.FileOptions, jobs int, withUI bool) ([]*driver.Result, int, error) {
	if arg != "-" {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, 0, err
		}
		if info.IsDir() {
			return collectDir(cmd, arg, driver.DirOptions{FileOptions: opts, Jobs: jobs}, withUI)
		}
	}
	res, err := analyzeInput(cmd, opts, arg)
	if err != nil {
		return nil, 0, fmt.Errorf("diagnosis failed: %w", err)
	}
	return []*driver.Result{res}, 0, nil
}

func collectDir(cmd *cobra.Command, dir string, opts driver.DirOptions, withUI bool) ([]*driver.Result, int, error) {
	var (
		res *driver.DirResult
		err error
	)
	if withUI {
		res, err = analyzeDirWithUI(cmd.Context(), "checking "+dir, dir, opts)
	} else {
		res, err = driver.AnalyzeDir(cmd.Context(), dir, opts)
	}
	if err != nil {
		return nil, 0, fmt.Errorf("diagnosis failed: %w", err)
	}
	results := make([]*driver.Result, 0, len(res.Files))
	failures := 0
	for _, f := range res.Files {
		if f.Err != nil {
			reportLoadError(cmd.ErrOrStderr(), f.Path, f.Err)
			failures++
			continue
		}
		results = append(results, f.Result)
	}
	return results, failures, nil
}

func reportLoadError(w io.Writer, path string, err error) {
	fmt.Fprintf(w, "%s: %v\n", path, err)
}

// prepareDiagnostics copies ds into a bag for display, raising warnings to
// errors when promote is set. Results may be shared through the memo, so
// ds itself is never modified.
func prepareDiagnostics(ds []diag.Diagnostic, promote, byPosition bool) *diag.Bag {
	bag := diag.NewBag(0)
	for _, d := range ds {
		if promote && d.Severity == diag.SevWarning {
			d.Severity = diag.SevError
		}
		bag.Add(d)
	}
	if byPosition {
		bag.Sort()
	}
	return bag
}
