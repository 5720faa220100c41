package models

import "strings"

// Project is a named, ordered collection of tasks.
// Name uniqueness is enforced by ProjectManager, not here.
type Project struct {
	name  string
	tasks []*Task
}

// NewProject creates a project with no tasks.
func NewProject(name string) (*Project, error) {
	if strings.TrimSpace(name) == "" {
		return nil, &ValidationError{Field: "name", Message: "project name cannot be empty"}
	}
	return &Project{name: name, tasks: []*Task{}}, nil
}

// Name returns the project name.
func (p *Project) Name() string {
	return p.name
}

// AddTask appends a task at the end of the list.
func (p *Project) AddTask(task *Task) {
	p.tasks = append(p.tasks, task)
}

// RemoveTask removes the task at index. An index outside [0, Len()) is a
// no-op and reports false.
func (p *Project) RemoveTask(index int) bool {
	if index < 0 || index >= len(p.tasks) {
		return false
	}
	p.tasks = append(p.tasks[:index], p.tasks[index+1:]...)
	return true
}

// Task returns the task at index.
func (p *Project) Task(index int) (*Task, bool) {
	if index < 0 || index >= len(p.tasks) {
		return nil, false
	}
	return p.tasks[index], true
}

// Tasks returns the tasks in display order.
func (p *Project) Tasks() []*Task {
	out := make([]*Task, len(p.tasks))
	copy(out, p.tasks)
	return out
}

func (p *Project) Len() int {
	return len(p.tasks)
}
