package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/atlanticdynamic/actorspec/internal/errz"
	"github.com/atlanticdynamic/actorspec/internal/generate"
	"github.com/atlanticdynamic/actorspec/internal/schema"
	"github.com/urfave/cli/v3"
)

func newValidateCmd() *cli.Command {
	return &cli.Command{
		Name:      "validate",
		Aliases:   []string{"lint"},
		Usage:     "Resolve and validate a config module without writing anything",
		ArgsUsage: "[config]",
		Flags: append([]cli.Flag{
			configFlag(),
			&cli.BoolFlag{
				Name:    "tree",
				Aliases: []string{"t"},
				Usage:   "Show detailed tree view of the resolved spec",
			},
		}, pipelineFlags()...),
		Suggest: true,
		Action:  validateAction,
	}
}

func validateAction(ctx context.Context, cmd *cli.Command) error {
	configPath, err := configPathArg(cmd)
	if err != nil {
		return err
	}

	gen, err := generate.New(pipelineOptions(cmd)...)
	if err != nil {
		return err
	}

	res, err := gen.Resolve(ctx, configPath)
	if err != nil {
		return err
	}

	spec, err := schema.Decode(res.Document)
	if err != nil {
		return errz.New(errz.ErrSchemaViolation, res.ConfigPath, err)
	}

	w := stdout(cmd)
	fmt.Fprintf(w, "Config module %s is valid\n", res.ConfigPath)

	if cmd.Bool("tree") {
		// Use the Stringer interface to print the ActorSpec in a fancy tree format
		fmt.Fprintln(w, spec)
		return nil
	}

	fmt.Fprintln(w, renderSpecSummary(spec))
	return nil
}

// renderSpecSummary creates a formatted summary string for a resolved spec
func renderSpecSummary(spec *schema.ScraperActorSpec) string {
	var summary strings.Builder

	summary.WriteString("\nSpec Summary:\n")
	summary.WriteString(fmt.Sprintf("- Version: %d\n", spec.ActorSpecVersion))
	summary.WriteString(fmt.Sprintf("- Title: %s\n", spec.Actor.Title))
	summary.WriteString(fmt.Sprintf("- Authors: %d\n", len(spec.Authors)))
	summary.WriteString(fmt.Sprintf("- Websites: %d\n", len(spec.Websites)))
	summary.WriteString(fmt.Sprintf("- Datasets: %d\n", len(spec.Datasets)))
	summary.WriteString("\nUse --tree for a more detailed view of the ActorSpec.")

	return summary.String()
}
