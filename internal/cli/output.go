package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"gopkg.in/yaml.v3"
)

// Exit codes for CLI commands.
const (
	ExitSuccess      = 0 // Successful execution
	ExitFailure      = 1 // Marshaling failed
	ExitCommandError = 2 // Bad arguments, unreadable input, unknown type
)

// ExitError carries the process exit code for a failed command.
type ExitError struct {
	Code    int
	Message string
	Err     error
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// WrapExitError wraps an existing error with an exit code.
func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// GetExitCode extracts the exit code from an error.
// Returns ExitFailure (1) if the error is not an ExitError.
func GetExitCode(err error) int {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}

// OutputFormatter writes command results in the configured format.
type OutputFormatter struct {
	Format string
	Writer io.Writer
	header func(format string, a ...any) string
	muted  func(format string, a ...any) string
}

func newFormatter(opts *RootOptions, w io.Writer) *OutputFormatter {
	f := &OutputFormatter{Format: opts.Format, Writer: w}
	if opts.NoColor || !isTerminal(w) {
		f.header = fmt.Sprintf
		f.muted = fmt.Sprintf
		return f
	}
	f.header = color.New(color.Bold, color.FgCyan).SprintfFunc()
	f.muted = color.New(color.FgHiBlack).SprintfFunc()
	return f
}

// isTerminal reports whether w is a terminal that can render colour.
func isTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(file.Fd()) || isatty.IsCygwinTerminal(file.Fd())
}

// Structured writes v as JSON or YAML. Text format falls back to YAML.
func (f *OutputFormatter) Structured(v any) error {
	if f.Format == "json" {
		enc := json.NewEncoder(f.Writer)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	enc := yaml.NewEncoder(f.Writer)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

// Table writes aligned text rows under a coloured header.
func (f *OutputFormatter) Table(header []string, rows [][]string) {
	widths := make([]int, len(header))
	for i, h := range header {
		widths[i] = len(h)
	}
	for _, r := range rows {
		for i, c := range r {
			widths[i] = max(widths[i], len(c))
		}
	}
	line := func(cells []string, paint func(string, ...any) string) {
		for i, c := range cells {
			if i > 0 {
				fmt.Fprint(f.Writer, "  ")
			}
			if i == len(cells)-1 {
				fmt.Fprint(f.Writer, paint("%s", c))
				continue
			}
			fmt.Fprint(f.Writer, paint("%-*s", widths[i], c))
		}
		fmt.Fprintln(f.Writer)
	}
	line(header, f.header)
	for _, r := range rows {
		line(r, fmt.Sprintf)
	}
}
