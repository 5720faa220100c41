package models

// ProjectManager owns every project of a session and tracks which one is
// current. A nil current project means nothing is selected.
type ProjectManager struct {
	projects []*Project
	current  *Project
}

// NewProjectManager creates an empty manager with no project selected.
func NewProjectManager() *ProjectManager {
	return &ProjectManager{projects: []*Project{}}
}

// CreateProject appends a new project. Names are compared exactly, so
// "Home" and "home" are distinct projects.
func (m *ProjectManager) CreateProject(name string) (*Project, error) {
	if _, exists := m.FindProject(name); exists {
		return nil, ErrDuplicateProjectName
	}

	project, err := NewProject(name)
	if err != nil {
		return nil, err
	}

	m.projects = append(m.projects, project)
	return project, nil
}

// FindProject looks up a project by exact name.
func (m *ProjectManager) FindProject(name string) (*Project, bool) {
	for _, p := range m.projects {
		if p.name == name {
			return p, true
		}
	}
	return nil, false
}

// SetCurrentProject selects the named project. Unknown names leave the
// selection unchanged; the result only reports whether a match was found.
func (m *ProjectManager) SetCurrentProject(name string) bool {
	project, ok := m.FindProject(name)
	if !ok {
		return false
	}
	m.current = project
	return true
}

// CurrentProject returns the selected project, or nil.
func (m *ProjectManager) CurrentProject() *Project {
	return m.current
}

// AddTaskToCurrentProject appends task to the selected project.
func (m *ProjectManager) AddTaskToCurrentProject(task *Task) error {
	if m.current == nil {
		return ErrNoCurrentProject
	}
	m.current.AddTask(task)
	return nil
}

// RemoveProject deletes the named project. Removing the current project
// clears the selection.
func (m *ProjectManager) RemoveProject(name string) bool {
	for i, p := range m.projects {
		if p.name != name {
			continue
		}
		m.projects = append(m.projects[:i], m.projects[i+1:]...)
		if m.current == p {
			m.current = nil
		}
		return true
	}
	return false
}

// Projects returns the projects in creation order.
func (m *ProjectManager) Projects() []*Project {
	out := make([]*Project, len(m.projects))
	copy(out, m.projects)
	return out
}
