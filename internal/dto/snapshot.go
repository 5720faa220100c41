package dto

// Snapshot is the persisted application state stored under one key.
// Field names match the stored JSON layout and must not change.
type Snapshot struct {
	Projects       []ProjectRecord `json:"projects"`
	CurrentProject *string         `json:"currentProject"`
}

// ProjectRecord is a project and its tasks in display order.
type ProjectRecord struct {
	Name  string       `json:"name"`
	Todos []TaskRecord `json:"todos"`
}

// TaskRecord carries every field of a task, including the ones restored
// after construction.
type TaskRecord struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	DueDate     string `json:"duedate"`
	Priority    string `json:"priority"`
	Completed   bool   `json:"completed"`
	Note        string `json:"note"`
}
