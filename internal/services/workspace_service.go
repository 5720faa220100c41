package services

import (
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/yukikurage/project-todo/internal/codec"
	"github.com/yukikurage/project-todo/internal/dto"
	"github.com/yukikurage/project-todo/internal/models"
	"github.com/yukikurage/project-todo/internal/repository"
	"github.com/yukikurage/project-todo/internal/utils"
)

var (
	ErrProjectNotFound = errors.New("project not found")
	ErrTaskNotFound    = errors.New("task not found")
)

// WorkspaceService owns the ProjectManager of one session and writes the
// full snapshot back to the state repository after every mutation.
type WorkspaceService struct {
	mu      sync.Mutex
	repo    repository.StateRepository
	key     string
	manager *models.ProjectManager
}

// NewWorkspaceService creates a service with an empty manager. Call Load to
// restore saved state.
func NewWorkspaceService(repo repository.StateRepository, key string) *WorkspaceService {
	return &WorkspaceService{
		repo:    repo,
		key:     key,
		manager: models.NewProjectManager(),
	}
}

// CreateTaskInput represents input for adding a task to the current project
type CreateTaskInput struct {
	Title       string
	Description string
	DueDate     string
	Priority    models.Priority
}

// Load replaces the in-memory state with the saved snapshot. Missing state
// and corrupt state both start an empty workspace; only store failures are
// returned. The bool reports whether saved state was restored.
func (s *WorkspaceService) Load() (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, ok, err := s.repo.Get(s.key)
	if err != nil {
		return false, fmt.Errorf("failed to load state: %w", err)
	}
	if !ok || raw == "" {
		s.manager = models.NewProjectManager()
		return false, nil
	}

	manager, err := codec.Decode(raw)
	if err != nil {
		if errors.Is(err, codec.ErrCorruptData) {
			log.Printf("Discarding saved state %q and starting with an empty workspace: %v", s.key, err)
			s.manager = models.NewProjectManager()
			return false, nil
		}
		return false, err
	}

	s.manager = manager
	return true, nil
}

// Projects returns every project and the current one (nil when none).
func (s *WorkspaceService) Projects() ([]dto.ProjectDTO, *dto.ProjectDetailDTO) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current := s.manager.CurrentProject()
	list := dto.ToProjectListDTO(s.manager.Projects(), current)
	if current == nil {
		return list, nil
	}
	detail := dto.ToProjectDetailDTO(current, current)
	return list, &detail
}

// CurrentProject returns the selected project with its tasks.
func (s *WorkspaceService) CurrentProject() (*dto.ProjectDetailDTO, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current := s.manager.CurrentProject()
	if current == nil {
		return nil, models.ErrNoCurrentProject
	}
	detail := dto.ToProjectDetailDTO(current, current)
	return &detail, nil
}

// ListTasks returns one page of a project's tasks.
func (s *WorkspaceService) ListTasks(projectName string, params utils.PaginationParams) (dto.TaskListResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	project, ok := s.manager.FindProject(projectName)
	if !ok {
		return dto.TaskListResponse{}, ErrProjectNotFound
	}

	tasks := project.Tasks()
	start, end := params.Bounds(len(tasks))

	return dto.ToTaskListResponse(project.Name(), tasks[start:end], start, params.Page, params.Limit, len(tasks)), nil
}

// CreateProject adds a project and selects it.
func (s *WorkspaceService) CreateProject(name string) (dto.ProjectDTO, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	project, err := s.manager.CreateProject(name)
	if err != nil {
		return dto.ProjectDTO{}, err
	}
	s.manager.SetCurrentProject(name)

	if err := s.saveLocked(); err != nil {
		return dto.ProjectDTO{}, err
	}
	return dto.ToProjectDTO(project, s.manager.CurrentProject()), nil
}

// SelectProject makes the named project current.
func (s *WorkspaceService) SelectProject(name string) (*dto.ProjectDetailDTO, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.manager.SetCurrentProject(name) {
		return nil, ErrProjectNotFound
	}
	if err := s.saveLocked(); err != nil {
		return nil, err
	}

	current := s.manager.CurrentProject()
	detail := dto.ToProjectDetailDTO(current, current)
	return &detail, nil
}

// RemoveProject deletes the named project. Removing the current project
// leaves nothing selected.
func (s *WorkspaceService) RemoveProject(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.manager.RemoveProject(name) {
		return ErrProjectNotFound
	}
	return s.saveLocked()
}

// AddTask creates a task in the current project.
func (s *WorkspaceService) AddTask(input CreateTaskInput) (dto.TaskDTO, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	task, err := models.NewTask(input.Title, input.Description, input.DueDate, input.Priority)
	if err != nil {
		return dto.TaskDTO{}, err
	}
	if err := s.manager.AddTaskToCurrentProject(task); err != nil {
		return dto.TaskDTO{}, err
	}
	if err := s.saveLocked(); err != nil {
		return dto.TaskDTO{}, err
	}

	return dto.ToTaskDTO(s.manager.CurrentProject().Len()-1, task), nil
}

// RemoveTask deletes a task of the current project by position. Stale
// indices are ignored; the bool reports whether a task was removed.
func (s *WorkspaceService) RemoveTask(index int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current := s.manager.CurrentProject()
	if current == nil {
		return false, models.ErrNoCurrentProject
	}
	if !current.RemoveTask(index) {
		return false, nil
	}
	return true, s.saveLocked()
}

// ToggleTask flips completion of a task in the current project.
func (s *WorkspaceService) ToggleTask(index int) (dto.TaskDTO, error) {
	return s.updateTask(index, func(t *models.Task) {
		t.ToggleComplete()
	})
}

// SetTaskNote replaces the note of a task in the current project.
func (s *WorkspaceService) SetTaskNote(index int, note string) (dto.TaskDTO, error) {
	return s.updateTask(index, func(t *models.Task) {
		t.SetNote(note)
	})
}

// Export returns the snapshot of the current state.
func (s *WorkspaceService) Export() dto.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return codec.Serialize(s.manager)
}

// Import replaces the whole workspace with snap and persists it.
func (s *WorkspaceService) Import(snap dto.Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	manager, err := codec.Deserialize(snap)
	if err != nil {
		return err
	}
	s.manager = manager
	return s.saveLocked()
}

func (s *WorkspaceService) updateTask(index int, apply func(*models.Task)) (dto.TaskDTO, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current := s.manager.CurrentProject()
	if current == nil {
		return dto.TaskDTO{}, models.ErrNoCurrentProject
	}
	task, ok := current.Task(index)
	if !ok {
		return dto.TaskDTO{}, ErrTaskNotFound
	}

	apply(task)
	if err := s.saveLocked(); err != nil {
		return dto.TaskDTO{}, err
	}
	return dto.ToTaskDTO(index, task), nil
}

func (s *WorkspaceService) saveLocked() error {
	raw, err := codec.Encode(s.manager)
	if err != nil {
		return err
	}
	if err := s.repo.Set(s.key, raw); err != nil {
		return fmt.Errorf("failed to save state: %w", err)
	}
	return nil
}
