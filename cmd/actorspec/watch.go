package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/atlanticdynamic/actorspec/internal/generate"
	"github.com/atlanticdynamic/actorspec/internal/runnables/regen"
	"github.com/robbyt/go-supervisor/supervisor"
	"github.com/urfave/cli/v3"
)

func newWatchCmd() *cli.Command {
	return &cli.Command{
		Name:      "watch",
		Usage:     "Regenerate actorspec.json whenever the config module changes or on SIGHUP",
		ArgsUsage: "[config]",
		Flags: append([]cli.Flag{
			configFlag(),
			&cli.StringFlag{
				Name:    "out-dir",
				Aliases: []string{"o"},
				Usage:   "Output directory (default: ./.actor if it exists, else the working directory)",
			},
			&cli.DurationFlag{
				Name:    "interval",
				Aliases: []string{"i"},
				Usage:   "How often to check the config module for changes (0 disables polling)",
				Value:   regen.DefaultInterval,
			},
		}, pipelineFlags()...),
		Action: watchAction,
	}
}

func watchAction(ctx context.Context, cmd *cli.Command) error {
	configPath, err := configPathArg(cmd)
	if err != nil {
		return err
	}

	logger := slog.Default()
	logHandler := logger.Handler()

	opts := append(pipelineOptions(cmd), generate.WithOutDir(cmd.String("out-dir")))
	gen, err := generate.New(opts...)
	if err != nil {
		return err
	}

	runner, err := regen.NewRunner(
		configPath,
		gen,
		regen.WithContext(ctx),
		regen.WithLogHandler(logHandler),
		regen.WithInterval(cmd.Duration("interval")),
	)
	if err != nil {
		return fmt.Errorf("failed to create regen runner: %w", err)
	}

	super, err := supervisor.New(
		supervisor.WithContext(ctx),
		supervisor.WithLogHandler(logHandler),
		supervisor.WithRunnables(runner),
	)
	if err != nil {
		return fmt.Errorf("failed to create supervisor: %w", err)
	}
	if err := super.Run(); err != nil {
		return fmt.Errorf("failed to run watcher: %w", err)
	}

	logger.Info("Watcher shutdown complete")
	return nil
}
