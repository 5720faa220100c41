package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/yukikurage/project-todo/internal/services"
)

func projectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Manage projects",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "add [name]",
		Short: "Create a project and select it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withWorkspace(func(ws *services.WorkspaceService) error {
				project, err := ws.CreateProject(strings.TrimSpace(args[0]))
				if err != nil {
					return describeError(err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Created project %q\n", project.Name)
				return nil
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List projects",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withWorkspace(func(ws *services.WorkspaceService) error {
				projects, _ := ws.Projects()
				if len(projects) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "No projects yet.")
					return nil
				}
				for _, p := range projects {
					marker := " "
					if p.Current {
						marker = "*"
					}
					fmt.Fprintf(cmd.OutOrStdout(), "%s %s (%d tasks)\n", marker, p.Name, p.TaskCount)
				}
				return nil
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "select [name]",
		Short: "Make a project current",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withWorkspace(func(ws *services.WorkspaceService) error {
				current, err := ws.SelectProject(args[0])
				if err != nil {
					return describeError(err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Current project: %s\n", current.Name)
				return nil
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "remove [name]",
		Short: "Delete a project and its tasks",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withWorkspace(func(ws *services.WorkspaceService) error {
				if err := ws.RemoveProject(args[0]); err != nil {
					return describeError(err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Removed project %q\n", args[0])
				return nil
			})
		},
	})

	return cmd
}
