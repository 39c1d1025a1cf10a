package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/vk/hurlfmt/internal/app"
	"github.com/vk/hurlfmt/internal/cli"
)

// main is the entrypoint for the hurlfmt application.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	if err := run(context.Background(), os.Stdin, os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		if exitErr, ok := err.(*cli.ExitError); ok {
			if exitErr.Message != "" {
				fmt.Fprintln(os.Stderr, exitErr.Message)
			}
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run wires the CLI to the pipeline. A non-zero outcome is returned as an
// ExitError without a message, since the pipeline has already reported it.
func run(ctx context.Context, stdin io.Reader, stdout, stderr io.Writer, args []string) error {
	cfg, shouldExit, err := cli.Parse(args, stdout)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	deps := app.DefaultDeps(stdin, stdout, stderr, cfg.Color)
	outcome := app.New(cfg, deps, stderr).Run(ctx)
	if code := outcome.ExitCode(); code != 0 {
		return &cli.ExitError{Code: code}
	}
	return nil
}
