package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	apierrors "github.com/yukikurage/project-todo/internal/errors"
	"github.com/yukikurage/project-todo/internal/services"
	"github.com/yukikurage/project-todo/internal/utils"
)

// ProjectHandler serves project listing, creation and selection.
type ProjectHandler struct {
	workspace *services.WorkspaceService
}

// NewProjectHandler creates a new ProjectHandler.
func NewProjectHandler(workspace *services.WorkspaceService) *ProjectHandler {
	return &ProjectHandler{
		workspace: workspace,
	}
}

// ListProjects returns every project and the current one
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	projects, current := h.workspace.Projects()

	c.JSON(http.StatusOK, gin.H{
		"projects": projects,
		"current":  current,
	})
}

// CreateProject creates a project and makes it current
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	type CreateProjectRequest struct {
		Name string `json:"name" binding:"required"`
	}

	var req CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	project, err := h.workspace.CreateProject(strings.TrimSpace(req.Name))
	if err != nil {
		respondWorkspaceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, project)
}

// DeleteProject removes a project by name
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	if err := h.workspace.RemoveProject(c.Param("name")); err != nil {
		respondWorkspaceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Project deleted successfully",
	})
}

// ListProjectTasks returns a page of the named project's tasks
func (h *ProjectHandler) ListProjectTasks(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	page, err := h.workspace.ListTasks(c.Param("name"), params)
	if err != nil {
		respondWorkspaceError(c, err)
		return
	}

	c.JSON(http.StatusOK, page)
}

// GetCurrentProject returns the selected project with its tasks
func (h *ProjectHandler) GetCurrentProject(c *gin.Context) {
	current, err := h.workspace.CurrentProject()
	if err != nil {
		respondWorkspaceError(c, err)
		return
	}

	c.JSON(http.StatusOK, current)
}

// SelectProject changes the current project
func (h *ProjectHandler) SelectProject(c *gin.Context) {
	type SelectProjectRequest struct {
		Name string `json:"name" binding:"required"`
	}

	var req SelectProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	current, err := h.workspace.SelectProject(req.Name)
	if err != nil {
		respondWorkspaceError(c, err)
		return
	}

	c.JSON(http.StatusOK, current)
}
