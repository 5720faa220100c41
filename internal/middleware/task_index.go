package middleware

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/project-todo/internal/constants"
	apierrors "github.com/yukikurage/project-todo/internal/errors"
)

// RequireTaskIndex parses the :index path parameter into the context.
// Only the format is checked; range checks belong to the handler, since
// removal tolerates stale indices.
func RequireTaskIndex() gin.HandlerFunc {
	return func(c *gin.Context) {
		index, err := strconv.Atoi(c.Param("index"))
		if err != nil {
			apierrors.BadRequestWithDetails(c, apierrors.ErrCodeInvalidFormat, "Invalid task index", gin.H{"index": c.Param("index")})
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyTaskIndex, index)
		c.Next()
	}
}

// GetTaskIndex retrieves the task index from context
func GetTaskIndex(c *gin.Context) (int, bool) {
	value, exists := c.Get(constants.ContextKeyTaskIndex)
	if !exists {
		return 0, false
	}
	index, ok := value.(int)
	return index, ok
}
