package models

import (
	"strings"
	"time"
)

// DueDateLayout is the ISO-8601 calendar date layout due dates are written in.
const DueDateLayout = "2006-01-02"

// Task is a single unit of work owned by exactly one Project.
type Task struct {
	Title       string
	Description string
	DueDate     string
	Priority    Priority
	Completed   bool
	Note        string
}

// NewTask creates an incomplete task with an empty note.
// DueDate is kept verbatim; malformed dates are tolerated here.
func NewTask(title, description, dueDate string, priority Priority) (*Task, error) {
	if strings.TrimSpace(title) == "" {
		return nil, &ValidationError{Field: "title", Message: "title cannot be empty"}
	}

	return &Task{
		Title:       title,
		Description: description,
		DueDate:     dueDate,
		Priority:    priority,
	}, nil
}

// ToggleComplete flips the completion flag.
func (t *Task) ToggleComplete() {
	t.Completed = !t.Completed
}

// SetNote replaces the note.
func (t *Task) SetNote(note string) {
	t.Note = note
}

// SetCompleted sets the completion flag, used when restoring saved state.
func (t *Task) SetCompleted(completed bool) {
	t.Completed = completed
}

// DueTime parses DueDate. It reports false when the date is empty or malformed.
func (t *Task) DueTime() (time.Time, bool) {
	if strings.TrimSpace(t.DueDate) == "" {
		return time.Time{}, false
	}
	due, err := time.Parse(DueDateLayout, t.DueDate)
	if err != nil {
		return time.Time{}, false
	}
	return due, true
}
