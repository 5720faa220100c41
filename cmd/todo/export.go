package main

import (
	"encoding/json"

	"github.com/spf13/cobra"
	"github.com/yukikurage/project-todo/internal/services"
)

func exportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export",
		Short: "Print the saved state as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withWorkspace(func(ws *services.WorkspaceService) error {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(ws.Export())
			})
		},
	}
}
