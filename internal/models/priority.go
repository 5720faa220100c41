package models

type Priority string

const (
	PriorityUnspecified Priority = ""
	PriorityHigh        Priority = "high"
	PriorityMedium      Priority = "medium"
	PriorityLow         Priority = "low"
)

// Known reports whether p is one of the three named levels.
// Unknown values are still stored and round-tripped as-is.
func (p Priority) Known() bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	default:
		return false
	}
}
