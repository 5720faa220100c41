package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/project-todo/internal/dto"
	apierrors "github.com/yukikurage/project-todo/internal/errors"
	"github.com/yukikurage/project-todo/internal/services"
)

// StateHandler exports and imports the whole workspace snapshot.
type StateHandler struct {
	workspace *services.WorkspaceService
}

func NewStateHandler(workspace *services.WorkspaceService) *StateHandler {
	return &StateHandler{
		workspace: workspace,
	}
}

// Export returns the snapshot in its persisted layout
func (h *StateHandler) Export(c *gin.Context) {
	c.JSON(http.StatusOK, h.workspace.Export())
}

// Import replaces the workspace with the posted snapshot
func (h *StateHandler) Import(c *gin.Context) {
	var snap dto.Snapshot
	if err := c.ShouldBindJSON(&snap); err != nil {
		apierrors.BadRequestWithDetails(c, apierrors.ErrCodeCorruptState, "Invalid snapshot", err.Error())
		return
	}

	if err := h.workspace.Import(snap); err != nil {
		respondWorkspaceError(c, err)
		return
	}

	c.JSON(http.StatusOK, h.workspace.Export())
}
