package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/yukikurage/project-todo/internal/config"
	"github.com/yukikurage/project-todo/internal/dto"
	"github.com/yukikurage/project-todo/internal/models"
	"github.com/yukikurage/project-todo/internal/repository"
	"github.com/yukikurage/project-todo/internal/services"
)

// withWorkspace opens the configured store, restores the saved workspace
// and runs fn against it. Every service mutation persists on its own.
func withWorkspace(fn func(*services.WorkspaceService) error) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	repo, closeStore, err := repository.Open(cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	workspace := services.NewWorkspaceService(repo, cfg.StateKey)
	if _, err := workspace.Load(); err != nil {
		return err
	}
	return fn(workspace)
}

// describeError turns recoverable workspace errors into user-facing messages.
func describeError(err error) error {
	var verr *models.ValidationError
	switch {
	case errors.As(err, &verr):
		return fmt.Errorf("%s is required", verr.Field)
	case errors.Is(err, models.ErrDuplicateProjectName):
		return errors.New("a project with that name already exists")
	case errors.Is(err, models.ErrNoCurrentProject):
		return errors.New("no project selected; run `todo project select NAME` first")
	default:
		return err
	}
}

func printTask(w io.Writer, t dto.TaskDTO) {
	mark := " "
	if t.Completed {
		mark = "x"
	}

	due := t.DueDate
	if due != "" && !t.DueDateValid {
		due += " (invalid date)"
	}
	if due == "" {
		due = "-"
	}

	priority := string(t.Priority)
	if priority == "" {
		priority = "none"
	}

	fmt.Fprintf(w, "%3d [%s] %s  due:%s  priority:%s\n", t.Index, mark, t.Title, due, priority)
	if t.Description != "" {
		fmt.Fprintf(w, "      %s\n", t.Description)
	}
	if t.Note != "" {
		fmt.Fprintf(w, "      note: %s\n", t.Note)
	}
}
