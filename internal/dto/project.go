package dto

import (
	"github.com/yukikurage/project-todo/internal/models"
)

// TaskDTO represents a task in API responses
type TaskDTO struct {
	Index        int             `json:"index"`
	Title        string          `json:"title"`
	Description  string          `json:"description"`
	DueDate      string          `json:"due_date"`
	DueDateValid bool            `json:"due_date_valid"`
	Priority     models.Priority `json:"priority"`
	Completed    bool            `json:"completed"`
	Note         string          `json:"note"`
}

// ProjectDTO represents a project in API responses
type ProjectDTO struct {
	Name      string `json:"name"`
	TaskCount int    `json:"task_count"`
	Current   bool   `json:"current"`
}

// ProjectDetailDTO represents a project with all of its tasks
type ProjectDetailDTO struct {
	ProjectDTO
	Tasks []TaskDTO `json:"tasks"`
}

// TaskListResponse represents a paginated list of tasks
type TaskListResponse struct {
	Project    string    `json:"project"`
	Tasks      []TaskDTO `json:"tasks"`
	Page       int       `json:"page"`
	PageSize   int       `json:"page_size"`
	TotalCount int       `json:"total_count"`
	TotalPages int       `json:"total_pages"`
}

// ToTaskDTO converts a Task model to TaskDTO
func ToTaskDTO(index int, task *models.Task) TaskDTO {
	_, valid := task.DueTime()
	return TaskDTO{
		Index:        index,
		Title:        task.Title,
		Description:  task.Description,
		DueDate:      task.DueDate,
		DueDateValid: valid,
		Priority:     task.Priority,
		Completed:    task.Completed,
		Note:         task.Note,
	}
}

// ToProjectDTO converts a Project model to ProjectDTO
func ToProjectDTO(project *models.Project, current *models.Project) ProjectDTO {
	return ProjectDTO{
		Name:      project.Name(),
		TaskCount: project.Len(),
		Current:   current != nil && current == project,
	}
}

// ToProjectDetailDTO converts a project and its tasks to a detailed DTO
func ToProjectDetailDTO(project *models.Project, current *models.Project) ProjectDetailDTO {
	tasks := project.Tasks()
	taskDTOs := make([]TaskDTO, len(tasks))
	for i, task := range tasks {
		taskDTOs[i] = ToTaskDTO(i, task)
	}

	return ProjectDetailDTO{
		ProjectDTO: ToProjectDTO(project, current),
		Tasks:      taskDTOs,
	}
}

// ToProjectListDTO converts projects to DTOs, marking the current one
func ToProjectListDTO(projects []*models.Project, current *models.Project) []ProjectDTO {
	out := make([]ProjectDTO, len(projects))
	for i, p := range projects {
		out[i] = ToProjectDTO(p, current)
	}
	return out
}

// ToTaskListResponse converts one page of a project's tasks to TaskListResponse.
// offset is the index of the first task of the page within the project.
func ToTaskListResponse(project string, tasks []*models.Task, offset, page, pageSize, totalCount int) TaskListResponse {
	items := make([]TaskDTO, len(tasks))
	for i, task := range tasks {
		items[i] = ToTaskDTO(offset+i, task)
	}

	totalPages := totalCount / pageSize
	if totalCount%pageSize > 0 {
		totalPages++
	}

	return TaskListResponse{
		Project:    project,
		Tasks:      items,
		Page:       page,
		PageSize:   pageSize,
		TotalCount: totalCount,
		TotalPages: totalPages,
	}
}
