// Package runner executes a buffer with a local interpreter.
//
// Only JavaScript, TypeScript and Python are runnable. Execution always goes
// through a child process bounded by a context and a timeout.
package runner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"omnicode/internal/lang"
)

// DefaultTimeout bounds a run when Options.Timeout is zero.
const DefaultTimeout = 10 * time.Second

var (
	// ErrUnsupported is returned for languages without an interpreter.
	ErrUnsupported = errors.New("execution not supported")
	// ErrInterpreterMissing is returned when the interpreter is not on PATH.
	ErrInterpreterMissing = errors.New("interpreter not found")
	// ErrTimeout is returned when the run exceeds its deadline.
	ErrTimeout = errors.New("execution timed out")
)

// Options control a run.
type Options struct {
	Timeout time.Duration
	// Node and Python override the interpreter binaries.
	Node   string
	Python string
	Stdin  []byte
}

// Result is what the program printed.
type Result struct {
	Output   string
	Error    string
	ExitCode int
	Duration time.Duration
}

// Supported reports whether id can be executed.
func Supported(id lang.ID) bool {
	switch id {
	case lang.JavaScript, lang.TypeScript, lang.Python:
		return true
	}
	return false
}

// UnsupportedHelp explains which languages can run.
func UnsupportedHelp(id lang.ID) string {
	return fmt.Sprintf(`Code execution for %s is not supported.

Supported languages for execution:
• JavaScript
• TypeScript
• Python

For other languages, export your code and run it in your local development environment.`, id)
}

// Execute runs code as language id. A non-zero exit is not an error; it
// is reported in Result.ExitCode and Result.Error.
func Execute(ctx context.Context, code string, id lang.ID, opts Options) (Result, error) {
	var name, ext string
	switch id {
	case lang.JavaScript:
		name, ext = pick(opts.Node, "node"), ".js"
	case lang.TypeScript:
		name, ext = pick(opts.Node, "node"), ".js"
		code = StripTypes(code)
	case lang.Python:
		name, ext = pick(opts.Python, "python3"), ".py"
	default:
		return Result{}, fmt.Errorf("%w: %s", ErrUnsupported, id)
	}
	bin, err := exec.LookPath(name)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %s", ErrInterpreterMissing, name)
	}

	dir, err := os.MkdirTemp("", "omnicode-run-*")
	if err != nil {
		return Result{}, err
	}
	defer os.RemoveAll(dir)
	script := filepath.Join(dir, "main"+ext)
	if err := os.WriteFile(script, []byte(code), 0o600); err != nil {
		return Result{}, err
	}

	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, bin, script)
	cmd.Dir = dir
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if opts.Stdin != nil {
		cmd.Stdin = bytes.NewReader(opts.Stdin)
	}
	start := time.Now()
	runErr := cmd.Run()
	res := Result{
		Output:   strings.TrimRight(stdout.String(), "\n"),
		Error:    strings.TrimRight(stderr.String(), "\n"),
		Duration: time.Since(start),
	}
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return res, fmt.Errorf("%w after %s", ErrTimeout, timeout)
	}
	if err := ctx.Err(); err != nil {
		return res, err
	}
	var exitErr *exec.ExitError
	if errors.As(runErr, &exitErr) {
		res.ExitCode = exitErr.ExitCode()
		return res, nil
	}
	if runErr != nil {
		return res, runErr
	}
	return res, nil
}

func pick(override, def string) string {
	if override != "" {
		return override
	}
	return def
}

var (
	typeAnnotation = regexp.MustCompile(`:\s*\w+(\[\])?`)
	interfaceDecl  = regexp.MustCompile(`interface\s+\w+\s*\{[^}]*\}`)
	typeAlias      = regexp.MustCompile(`type\s+\w+\s*=\s*[^;]+;`)
	typeAssertion  = regexp.MustCompile(`\bas\s+\w+`)
)

// StripTypes removes simple TypeScript annotations so node can run the
// result. It is a textual approximation, not a compiler.
func StripTypes(code string) string {
	code = interfaceDecl.ReplaceAllString(code, "")
	code = typeAlias.ReplaceAllString(code, "")
	code = typeAssertion.ReplaceAllString(code, "")
	return typeAnnotation.ReplaceAllString(code, "")
}
