package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/vk/appweave/internal/app"
	"github.com/vk/appweave/internal/cli"
	"github.com/vk/appweave/internal/hclcfg"
)

// main is the entrypoint for the appweave demo application.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	if err := run(os.Stdout, os.Args[1:]); err != nil {
		if exitErr, ok := err.(*cli.ExitError); ok {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the main application logic for easier testing and error
// handling.
func run(outW io.Writer, args []string) error {
	appConfig, shouldExit, err := cli.Parse(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	weaveApp, err := app.NewApp(outW, appConfig, hclcfg.NewLoader(), app.CoreSeed)
	if err != nil {
		return err
	}

	// Modules load in caller-specified order; the slice is that order.
	for _, descriptor := range app.CoreDescriptors(weaveApp.Router()) {
		if err := weaveApp.LoadModule(descriptor); err != nil {
			return err
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := weaveApp.Init(ctx); err != nil {
		return err
	}
	return weaveApp.Run(ctx)
}
