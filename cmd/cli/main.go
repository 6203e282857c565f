package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/specialistvlad/histgen/internal/app"
	"github.com/specialistvlad/histgen/internal/apperr"
	"github.com/specialistvlad/histgen/internal/cli"
)

// main is the entrypoint for the histgen application.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	// The real main function handles errors and exit codes.
	if err := run(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCode(err))
	}
}

// exitCode maps an error returned by run to a process exit status.
func exitCode(err error) int {
	var exitErr *cli.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return apperr.ExitCode(err)
}

// run encapsulates the main application logic for easier testing and error
// handling. Usage goes to outW, logs to errW.
func run(outW, errW io.Writer, args []string) (err error) {
	cfg, shouldExit, err := cli.Parse(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	// A panic anywhere in the pipeline is still a failed run, not a crash.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("histogram generation panicked: %v", r)
		}
	}()

	_, err = app.NewApp(errW, cfg).Run(context.Background())
	return err
}
