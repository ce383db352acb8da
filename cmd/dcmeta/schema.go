package main

import (
	"github.com/reoring/dcmeta/internal/render"
	"github.com/spf13/cobra"
)

func newSchemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON Schema of classify output records",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return render.Write(cmd.OutOrStdout(), render.FormatJSON, render.Schema())
		},
	}
}
