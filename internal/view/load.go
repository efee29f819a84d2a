package view

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/charmbracelet/huh/spinner"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// FailureNotice is the only text shown to the user when a document cannot
// be loaded. The underlying error goes to the debug log.
const FailureNotice = "Unable to load this document. Please try again later."

// ErrReported marks an error whose user-facing notice has already been
// printed. main must not print it again.
var ErrReported = errors.New("error already reported")

// isTerminal is replaced in tests.
var isTerminal = func() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Load runs fn while showing a spinner titled title. Outside a terminal fn
// runs directly so piped output stays clean.
func Load(ctx context.Context, title string, fn func(context.Context) error) error {
	if !isTerminal() {
		return fn(ctx)
	}

	var err error
	spinErr := spinner.New().
		Title(title).
		Context(ctx).
		Action(func() { err = fn(ctx) }).
		Run()
	if spinErr != nil {
		return spinErr
	}
	return err
}

// Failure prints FailureNotice to the error writer, logs err at debug level
// and returns err wrapped with ErrReported.
func (r *Renderer) Failure(err error) error {
	slog.Debug("document load failed", "error", err)

	red := color.New(color.FgRed)
	red.Fprintln(r.errWriter, "✗ "+FailureNotice)

	return fmt.Errorf("%w: %w", ErrReported, err)
}
