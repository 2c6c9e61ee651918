package main

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/atlanticdynamic/actorspec/internal/logging"
	"github.com/urfave/cli/v3"
)

// setupLogger configures the default logger from the root log flags
func setupLogger(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	logger, err := logging.NewLogger(logging.Options{
		Level:  cmd.String("log-level"),
		Format: cmd.String("log-format"),
		Output: cmd.String("log-output"),
	})
	if err != nil {
		return ctx, err
	}
	slog.SetDefault(logger)
	return ctx, nil
}

func stdout(cmd *cli.Command) io.Writer {
	if w := cmd.Root().Writer; w != nil {
		return w
	}
	return os.Stdout
}

func stderr(cmd *cli.Command) io.Writer {
	if w := cmd.Root().ErrWriter; w != nil {
		return w
	}
	return os.Stderr
}
