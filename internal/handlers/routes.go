package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/project-todo/internal/middleware"
	"github.com/yukikurage/project-todo/internal/services"
)

// RegisterRoutes mounts the API on r.
func RegisterRoutes(r *gin.Engine, workspace *services.WorkspaceService) {
	projectHandler := NewProjectHandler(workspace)
	taskHandler := NewTaskHandler(workspace)
	stateHandler := NewStateHandler(workspace)

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Todo API is running",
		})
	})

	api := r.Group("/api")
	{
		projects := api.Group("/projects")
		{
			projects.GET("", projectHandler.ListProjects)
			projects.POST("", projectHandler.CreateProject)
			projects.DELETE("/:name", projectHandler.DeleteProject)
			projects.GET("/:name/tasks", projectHandler.ListProjectTasks)
		}

		current := api.Group("/current")
		{
			current.GET("", projectHandler.GetCurrentProject)
			current.PUT("", projectHandler.SelectProject)
			current.POST("/tasks", taskHandler.CreateTask)
			current.DELETE("/tasks/:index", middleware.RequireTaskIndex(), taskHandler.DeleteTask)
			current.POST("/tasks/:index/toggle", middleware.RequireTaskIndex(), taskHandler.ToggleTask)
			current.PUT("/tasks/:index/note", middleware.RequireTaskIndex(), taskHandler.UpdateNote)
		}

		api.GET("/state", stateHandler.Export)
		api.PUT("/state", stateHandler.Import)
	}
}
