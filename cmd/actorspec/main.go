package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"
)

func newApp() *cli.Command {
	return &cli.Command{
		Name:    "actorspec",
		Version: Version,
		Usage:   "Generate actorspec.json from an ActorSpec config module",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "Log level (trace, debug, info, warn, error)",
				Value:   "info",
				Sources: cli.EnvVars("ACTORSPEC_LOG_LEVEL"),
			},
			&cli.StringFlag{
				Name:    "log-format",
				Usage:   "Log format (text, json)",
				Value:   "text",
				Sources: cli.EnvVars("ACTORSPEC_LOG_FORMAT"),
			},
			&cli.StringFlag{
				Name:    "log-output",
				Usage:   "Log destination (stdout, stderr, discard, or a file path)",
				Value:   "stdout",
				Sources: cli.EnvVars("ACTORSPEC_LOG_OUTPUT"),
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			newGenerateCmd(),
			newValidateCmd(),
			newWatchCmd(),
			newSchemaCmd(),
			newVersionCmd(),
		},
	}
}

func main() {
	if err := newApp().Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
