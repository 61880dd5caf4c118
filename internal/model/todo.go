package model

import "time"

// Priority levels a todo can carry.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// ValidPriority reports whether p is one of the known priority levels.
func ValidPriority(p string) bool {
	return p == PriorityLow || p == PriorityMedium || p == PriorityHigh
}

// Todo represents a task owned by exactly one user. The owner is fixed at
// creation and every query is scoped by it.
type Todo struct {
	ID        string     `json:"_id"`
	UserID    int64      `json:"user"`
	Task      string     `json:"task"`
	Completed bool       `json:"completed"`
	Priority  string     `json:"priority"`
	DueDate   *time.Time `json:"dueDate"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

// CreateTodoRequest represents a todo creation request. Priority and DueDate
// are optional; an empty priority defaults to medium.
type CreateTodoRequest struct {
	Task     string     `json:"task"`
	Priority string     `json:"priority"`
	DueDate  *time.Time `json:"dueDate"`
}

// DeleteTodoResponse confirms a deletion and carries the removed record's
// last state.
type DeleteTodoResponse struct {
	Success     bool   `json:"success"`
	Message     string `json:"message"`
	DeletedTodo Todo   `json:"deletedTodo"`
}
