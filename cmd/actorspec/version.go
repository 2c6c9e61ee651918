package main

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"strings"

	"github.com/atlanticdynamic/actorspec/internal/module"
	"github.com/urfave/cli/v3"
)

// Version is overridden at build time with -ldflags "-X main.Version=...".
var Version = "dev"

func newVersionCmd() *cli.Command {
	return &cli.Command{
		Name:  "version",
		Usage: "Print the actorspec version",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "Also print the Go runtime and supported config formats",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			w := stdout(cmd)
			fmt.Fprintf(w, "actorspec version %s\n", cmd.Root().Version)
			if !cmd.Bool("verbose") {
				return nil
			}

			imp := module.NewImporter(module.WithLogHandler(slog.DiscardHandler))
			fmt.Fprintf(w, "go: %s %s/%s\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)
			fmt.Fprintf(w, "formats: %s\n", strings.Join(imp.Extensions(), " "))
			return nil
		},
	}
}
