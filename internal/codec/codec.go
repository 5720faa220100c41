// Package codec converts a ProjectManager to and from the persisted snapshot.
package codec

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/yukikurage/project-todo/internal/dto"
	"github.com/yukikurage/project-todo/internal/models"
)

// ErrCorruptData is returned when a stored payload cannot be turned back
// into a valid ProjectManager. Callers treat it as "no saved state".
var ErrCorruptData = errors.New("corrupt saved state")

// Serialize captures every project and task field in order.
func Serialize(m *models.ProjectManager) dto.Snapshot {
	projects := m.Projects()
	snap := dto.Snapshot{
		Projects: make([]dto.ProjectRecord, 0, len(projects)),
	}

	for _, p := range projects {
		tasks := p.Tasks()
		record := dto.ProjectRecord{
			Name:  p.Name(),
			Todos: make([]dto.TaskRecord, 0, len(tasks)),
		}
		for _, t := range tasks {
			record.Todos = append(record.Todos, dto.TaskRecord{
				Title:       t.Title,
				Description: t.Description,
				DueDate:     t.DueDate,
				Priority:    string(t.Priority),
				Completed:   t.Completed,
				Note:        t.Note,
			})
		}
		snap.Projects = append(snap.Projects, record)
	}

	if current := m.CurrentProject(); current != nil {
		name := current.Name()
		snap.CurrentProject = &name
	}

	return snap
}

// Deserialize rebuilds a fresh ProjectManager from snap.
//
// A named current project that exists is selected. A named project that
// does not exist leaves nothing selected. When no current project is named,
// the first project (if any) is selected.
func Deserialize(snap dto.Snapshot) (*models.ProjectManager, error) {
	if snap.Projects == nil {
		return nil, fmt.Errorf("%w: missing projects", ErrCorruptData)
	}

	m := models.NewProjectManager()
	for i, record := range snap.Projects {
		if record.Todos == nil {
			return nil, fmt.Errorf("%w: project %d has no todos list", ErrCorruptData, i)
		}

		project, err := m.CreateProject(record.Name)
		if err != nil {
			return nil, fmt.Errorf("%w: project %d %q: %v", ErrCorruptData, i, record.Name, err)
		}

		for j, tr := range record.Todos {
			task, err := restoreTask(tr)
			if err != nil {
				return nil, fmt.Errorf("%w: project %q task %d: %v", ErrCorruptData, record.Name, j, err)
			}
			project.AddTask(task)
		}
	}

	switch {
	case snap.CurrentProject != nil && *snap.CurrentProject != "":
		m.SetCurrentProject(*snap.CurrentProject)
	case len(snap.Projects) > 0:
		m.SetCurrentProject(snap.Projects[0].Name)
	}

	return m, nil
}

// restoreTask constructs a task from its required fields, then applies the
// fields the constructor does not take.
func restoreTask(tr dto.TaskRecord) (*models.Task, error) {
	task, err := models.NewTask(tr.Title, tr.Description, tr.DueDate, models.Priority(tr.Priority))
	if err != nil {
		return nil, err
	}
	task.SetCompleted(tr.Completed)
	task.SetNote(tr.Note)
	return task, nil
}

// Encode serializes m to its JSON representation.
func Encode(m *models.ProjectManager) (string, error) {
	b, err := json.Marshal(Serialize(m))
	if err != nil {
		return "", fmt.Errorf("failed to encode state: %w", err)
	}
	return string(b), nil
}

// Decode parses a stored JSON payload into a fresh ProjectManager.
func Decode(raw string) (*models.ProjectManager, error) {
	snap, err := Parse(raw)
	if err != nil {
		return nil, err
	}
	return Deserialize(snap)
}

// Parse decodes raw JSON into a snapshot without rebuilding the model.
func Parse(raw string) (dto.Snapshot, error) {
	var snap dto.Snapshot
	if err := json.Unmarshal([]byte(raw), &snap); err != nil {
		return dto.Snapshot{}, fmt.Errorf("%w: %v", ErrCorruptData, err)
	}
	return snap, nil
}
