package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/vk/taskrank/internal/app"
	"github.com/vk/taskrank/internal/cli"
	"github.com/vk/taskrank/internal/hcl"
	"github.com/vk/taskrank/internal/yaml"
)

// main is the entrypoint for the taskrank application.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	// The real main function handles errors and exit codes.
	if err := run(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		if exitErr, ok := err.(*cli.ExitError); ok {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the main application logic for easier testing and error
// handling. Results are written to outW, logs to logW.
func run(outW, logW io.Writer, args []string) error {
	config, shouldExit, err := cli.Parse(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	// Instantiate the concrete plan loaders to pass to the app.
	taskrankApp := app.NewApp(outW, logW, config, hcl.NewLoader(), yaml.NewLoader())

	return taskrankApp.Run(context.Background())
}
