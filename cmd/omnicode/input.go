package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"omnicode/internal/driver"
	"omnicode/internal/source"
)

// stdinName labels buffers read from standard input.
const stdinName = "<stdin>"

// loadInput reads arg ("-" for stdin) into fileSet and returns the file.
func loadInput(cmd *cobra.Command, fileSet *source.FileSet, arg string) (*source.File, error) {
	if arg == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		return fileSet.Get(fileSet.AddVirtual(stdinName, data)), nil
	}
	id, err := fileSet.Load(arg)
	if err != nil {
		return nil, err
	}
	return fileSet.Get(id), nil
}

// analyzeInput analyzes a single file or stdin.
func analyzeInput(cmd *cobra.Command, opts driver.FileOptions, arg string) (*driver.Result, error) {
	fileSet := source.NewFileSet()
	if arg == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		return driver.AnalyzeSource(cmd.Context(), fileSet, stdinName, data, opts)
	}
	return driver.AnalyzeFile(cmd.Context(), fileSet, arg, opts)
}
