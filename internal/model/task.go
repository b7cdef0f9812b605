package model

// Priority is the task urgency level.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Valid reports whether p is one of the three known levels.
func (p Priority) Valid() bool {
	return p == PriorityLow || p == PriorityMedium || p == PriorityHigh
}

// Task is the canonical task record used everywhere inside the service.
// Date is an ISO YYYY-MM-DD string; StartTime/EndTime are zero-padded
// 24-hour HH:MM strings, so lexicographic comparison is chronological.
// Storage-specific field naming (snake_case columns) stays in the
// repository layer.
type Task struct {
	ID          string
	Title       string
	Description string
	Date        string
	StartTime   string
	EndTime     string
	Priority    Priority
	Color       string
	Completed   bool
}

// TaskDraft is a proposed task produced by parsing a user utterance,
// not yet committed to the store.
type TaskDraft struct {
	Title       string
	Description string
	Date        string
	StartTime   string
	EndTime     string
	Priority    Priority
	Color       string
}
