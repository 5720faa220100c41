package constants

// Persistence
const (
	// DefaultStateKey is the key the full application snapshot is stored under.
	DefaultStateKey = "todoAppState"
)

// Pagination
const (
	MinPageSize     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Context keys
const (
	ContextKeyTaskIndex = "task_index"
)
