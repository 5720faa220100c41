package models

import "errors"

var (
	ErrDuplicateProjectName = errors.New("a project with this name already exists")
	ErrNoCurrentProject     = errors.New("no project is currently selected")
)

// ValidationError reports a required field that was left empty.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}
