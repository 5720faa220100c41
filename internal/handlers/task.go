package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	apierrors "github.com/yukikurage/project-todo/internal/errors"
	"github.com/yukikurage/project-todo/internal/middleware"
	"github.com/yukikurage/project-todo/internal/models"
	"github.com/yukikurage/project-todo/internal/services"
)

// TaskHandler serves task operations on the current project.
type TaskHandler struct {
	workspace *services.WorkspaceService
}

func NewTaskHandler(workspace *services.WorkspaceService) *TaskHandler {
	return &TaskHandler{
		workspace: workspace,
	}
}

// CreateTask adds a task to the current project
func (h *TaskHandler) CreateTask(c *gin.Context) {
	type CreateTaskRequest struct {
		Title       string `json:"title" binding:"required"`
		Description string `json:"description"`
		DueDate     string `json:"due_date"`
		Priority    string `json:"priority"`
	}

	var req CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	task, err := h.workspace.AddTask(services.CreateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		DueDate:     req.DueDate,
		Priority:    models.Priority(req.Priority),
	})
	if err != nil {
		respondWorkspaceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, task)
}

// DeleteTask removes a task by position. Stale indices succeed without
// removing anything.
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	index, ok := middleware.GetTaskIndex(c)
	if !ok {
		apierrors.InternalError(c, "Task index not found in context")
		return
	}

	removed, err := h.workspace.RemoveTask(index)
	if err != nil {
		respondWorkspaceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"removed": removed,
	})
}

// ToggleTask flips a task's completion flag
func (h *TaskHandler) ToggleTask(c *gin.Context) {
	index, ok := middleware.GetTaskIndex(c)
	if !ok {
		apierrors.InternalError(c, "Task index not found in context")
		return
	}

	task, err := h.workspace.ToggleTask(index)
	if err != nil {
		respondWorkspaceError(c, err)
		return
	}

	c.JSON(http.StatusOK, task)
}

// UpdateNote replaces a task's note
func (h *TaskHandler) UpdateNote(c *gin.Context) {
	index, ok := middleware.GetTaskIndex(c)
	if !ok {
		apierrors.InternalError(c, "Task index not found in context")
		return
	}

	type UpdateNoteRequest struct {
		Note *string `json:"note" binding:"required"`
	}

	var req UpdateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	task, err := h.workspace.SetTaskNote(index, *req.Note)
	if err != nil {
		respondWorkspaceError(c, err)
		return
	}

	c.JSON(http.StatusOK, task)
}
