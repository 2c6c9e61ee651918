package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/atlanticdynamic/actorspec/internal/fancy"
	"github.com/atlanticdynamic/actorspec/internal/generate"
	"github.com/atlanticdynamic/actorspec/internal/logging"
	"github.com/urfave/cli/v3"
)

var errConfigPathRequired = errors.New(
	"config module path required (use the --config flag, or provide the config module as positional argument)",
)

func configFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   "Path to the config module, relative to the working directory",
	}
}

// pipelineFlags are shared by every command that resolves a config module.
func pipelineFlags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:  "strict",
			Usage: "Validate the full ActorSpec schema, not only actorspecVersion",
		},
		&cli.BoolFlag{
			Name:  "expand-env",
			Usage: "Expand ${VAR} and ${VAR:default} in string values",
		},
		&cli.StringSliceFlag{
			Name:  "env-file",
			Usage: "Load a dotenv file before importing the config module (repeatable)",
		},
		&cli.DurationFlag{
			Name:  "timeout",
			Usage: "Abort when resolving the config takes longer than this (0 waits forever)",
		},
	}
}

func newGenerateCmd() *cli.Command {
	return &cli.Command{
		Name:      "generate",
		Aliases:   []string{"gen"},
		Usage:     "Resolve a config module and write actorspec.json",
		ArgsUsage: "[config]",
		Flags: append([]cli.Flag{
			configFlag(),
			&cli.StringFlag{
				Name:    "out-dir",
				Aliases: []string{"o"},
				Usage:   "Output directory (default: ./.actor if it exists, else the working directory)",
			},
			&cli.BoolFlag{
				Name:    "silent",
				Aliases: []string{"s"},
				Usage:   "Suppress progress output",
			},
		}, pipelineFlags()...),
		Suggest: true,
		Action:  generateAction,
	}
}

// configPathArg reads the config path from --config, falling back to the first positional argument.
func configPathArg(cmd *cli.Command) (string, error) {
	if p := cmd.String("config"); p != "" {
		return p, nil
	}
	if cmd.Args().Len() < 1 {
		return "", errConfigPathRequired
	}
	return cmd.Args().First(), nil
}

// pipelineOptions maps the shared pipeline flags onto generator options.
func pipelineOptions(cmd *cli.Command) []generate.Option {
	opts := []generate.Option{
		generate.WithLogger(slog.Default()),
		generate.WithExpandEnv(cmd.Bool("expand-env")),
		generate.WithTimeout(cmd.Duration("timeout")),
	}
	if files := cmd.StringSlice("env-file"); len(files) > 0 {
		opts = append(opts, generate.WithEnvFiles(files...))
	}
	if cmd.Bool("strict") {
		opts = append(opts, generate.WithValidator(generate.Strict()))
	}
	return opts
}

func generateAction(ctx context.Context, cmd *cli.Command) error {
	configPath, err := configPathArg(cmd)
	if err != nil {
		return err
	}

	silent := cmd.Bool("silent")
	opts := append(pipelineOptions(cmd),
		generate.WithOutDir(cmd.String("out-dir")),
		generate.WithSilent(silent),
		generate.WithFailureHandler(logging.TextHandler("debug", stderr(cmd))),
	)

	gen, err := generate.New(opts...)
	if err != nil {
		return err
	}

	res, err := gen.Generate(ctx, configPath)
	if err != nil {
		return err
	}

	if !silent {
		fmt.Fprintln(stdout(cmd), renderGenerateSummary(res))
	}
	return nil
}

// renderGenerateSummary creates a formatted summary string for a written artifact
func renderGenerateSummary(res *generate.Result) string {
	var summary strings.Builder

	summary.WriteString(fancy.ValidText("✓ actorspec generated") + "\n")
	summary.WriteString(fmt.Sprintf("- Config: %s\n", fancy.PathText(res.ConfigPath)))
	summary.WriteString(fmt.Sprintf("- Output: %s\n", fancy.PathText(res.OutputPath)))
	summary.WriteString(fmt.Sprintf("- Size: %s bytes\n", fancy.CountText(fmt.Sprintf("%d", res.Bytes))))
	summary.WriteString(fancy.SummaryText(fmt.Sprintf("- Run: %s (%s)", res.RunID, res.Duration.Round(time.Microsecond))))

	return summary.String()
}
