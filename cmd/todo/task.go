package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/yukikurage/project-todo/internal/constants"
	"github.com/yukikurage/project-todo/internal/models"
	"github.com/yukikurage/project-todo/internal/services"
	"github.com/yukikurage/project-todo/internal/utils"
)

func taskCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage tasks of the current project",
	}

	cmd.AddCommand(taskAddCmd())
	cmd.AddCommand(taskListCmd())
	cmd.AddCommand(&cobra.Command{
		Use:   "toggle [index]",
		Short: "Mark a task complete or incomplete",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := parseIndex(args[0])
			if err != nil {
				return err
			}
			return withWorkspace(func(ws *services.WorkspaceService) error {
				task, err := ws.ToggleTask(index)
				if err != nil {
					return describeError(err)
				}
				printTask(cmd.OutOrStdout(), task)
				return nil
			})
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "note [index] [text]",
		Short: "Replace the note of a task",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := parseIndex(args[0])
			if err != nil {
				return err
			}
			return withWorkspace(func(ws *services.WorkspaceService) error {
				task, err := ws.SetTaskNote(index, args[1])
				if err != nil {
					return describeError(err)
				}
				printTask(cmd.OutOrStdout(), task)
				return nil
			})
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "remove [index]",
		Short: "Delete a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := parseIndex(args[0])
			if err != nil {
				return err
			}
			return withWorkspace(func(ws *services.WorkspaceService) error {
				removed, err := ws.RemoveTask(index)
				if err != nil {
					return describeError(err)
				}
				if removed {
					fmt.Fprintf(cmd.OutOrStdout(), "Removed task %d\n", index)
				} else {
					fmt.Fprintf(cmd.OutOrStdout(), "No task at index %d\n", index)
				}
				return nil
			})
		},
	})

	return cmd
}

func taskAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add [title]",
		Short: "Add a task to the current project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			description, _ := cmd.Flags().GetString("description")
			due, _ := cmd.Flags().GetString("due")
			priority, _ := cmd.Flags().GetString("priority")

			return withWorkspace(func(ws *services.WorkspaceService) error {
				task, err := ws.AddTask(services.CreateTaskInput{
					Title:       args[0],
					Description: description,
					DueDate:     due,
					Priority:    models.Priority(priority),
				})
				if err != nil {
					return describeError(err)
				}
				printTask(cmd.OutOrStdout(), task)
				return nil
			})
		},
	}

	cmd.Flags().StringP("description", "d", "", "Task description")
	cmd.Flags().String("due", "", "Due date (YYYY-MM-DD)")
	cmd.Flags().StringP("priority", "p", "", "Priority (high, medium, low)")

	return cmd
}

func taskListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks of the current or a named project",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			projectName, _ := cmd.Flags().GetString("project")
			page, _ := cmd.Flags().GetInt("page")
			limit, _ := cmd.Flags().GetInt("limit")

			return withWorkspace(func(ws *services.WorkspaceService) error {
				if projectName == "" {
					current, err := ws.CurrentProject()
					if err != nil {
						return describeError(err)
					}
					projectName = current.Name
				}

				list, err := ws.ListTasks(projectName, utils.NewPaginationParams(page, limit))
				if err != nil {
					return describeError(err)
				}

				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "%s (page %d/%d, %d tasks)\n", list.Project, list.Page, list.TotalPages, list.TotalCount)
				if list.TotalCount == 0 {
					fmt.Fprintln(out, "No todos in this project.")
				}
				for _, t := range list.Tasks {
					printTask(out, t)
				}
				return nil
			})
		},
	}

	cmd.Flags().String("project", "", "Project name (defaults to the current project)")
	cmd.Flags().Int("page", 1, "Page number")
	cmd.Flags().IntP("limit", "n", constants.DefaultPageSize, "Tasks per page")

	return cmd
}

func parseIndex(arg string) (int, error) {
	index, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("invalid task index %q", arg)
	}
	return index, nil
}
