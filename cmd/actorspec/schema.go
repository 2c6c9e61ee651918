package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/atlanticdynamic/actorspec/internal/schema"
	"github.com/urfave/cli/v3"
)

func newSchemaCmd() *cli.Command {
	return &cli.Command{
		Name:  "schema",
		Usage: "Print the JSON Schema used by --strict",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			s, err := schema.JSONSchema()
			if err != nil {
				return err
			}
			data, err := json.MarshalIndent(s, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to encode schema: %w", err)
			}
			fmt.Fprintln(stdout(cmd), string(data))
			return nil
		},
	}
}
