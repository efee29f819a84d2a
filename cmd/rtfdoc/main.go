package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"

	"github.com/open-cli-collective/rtfdoc/internal/cmd/root"
	"github.com/open-cli-collective/rtfdoc/internal/view"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx)
	stop()
	os.Exit(code)
}

func run(ctx context.Context) int {
	cmd := root.NewCmdRoot()
	if err := cmd.ExecuteContext(ctx); err != nil {
		// Failures already shown to the user carry ErrReported
		if !errors.Is(err, view.ErrReported) {
			_, _ = color.New(color.FgRed).Fprintf(os.Stderr, "Error: %v\n", err)
		}
		return 1
	}
	return 0
}
