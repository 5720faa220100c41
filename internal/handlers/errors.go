package handlers

import (
	"errors"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/project-todo/internal/codec"
	apierrors "github.com/yukikurage/project-todo/internal/errors"
	"github.com/yukikurage/project-todo/internal/models"
	"github.com/yukikurage/project-todo/internal/services"
)

func respondWorkspaceError(c *gin.Context, err error) {
	var verr *models.ValidationError

	switch {
	case errors.As(err, &verr):
		apierrors.BadRequestWithDetails(c, apierrors.ErrCodeMissingField, verr.Message, gin.H{"field": verr.Field})
	case errors.Is(err, codec.ErrCorruptData):
		apierrors.BadRequestWithDetails(c, apierrors.ErrCodeCorruptState, "Saved state is malformed", err.Error())
	case errors.Is(err, models.ErrDuplicateProjectName):
		apierrors.Conflict(c, apierrors.ErrCodeAlreadyExists, err.Error())
	case errors.Is(err, models.ErrNoCurrentProject):
		apierrors.Conflict(c, apierrors.ErrCodeNoCurrentProject, err.Error())
	case errors.Is(err, services.ErrProjectNotFound),
		errors.Is(err, services.ErrTaskNotFound):
		apierrors.NotFound(c, err.Error())
	default:
		log.Printf("workspace error: %v", err)
		apierrors.InternalError(c, "Internal server error")
	}
}
