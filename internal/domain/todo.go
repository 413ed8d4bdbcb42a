package domain

import "time"

type TodoPriority string

const (
	TodoPriorityHigh   TodoPriority = "hoch"
	TodoPriorityMedium TodoPriority = "mittel"
	TodoPriorityLow    TodoPriority = "niedrig"
)

func (p TodoPriority) IsValid() bool {
	return p == TodoPriorityHigh || p == TodoPriorityMedium || p == TodoPriorityLow
}

type Todo struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	DueDate     *Date        `json:"due_date"`
	Priority    TodoPriority `json:"priority"`
	Completed   bool         `json:"completed"`
	AssignedTo  *string      `json:"assigned_to"`
	CreatedBy   *string      `json:"created_by"`
	CreatedAt   time.Time    `json:"created_at"`
}

type CreateTodoRequest struct {
	Title       string       `json:"title"`
	Description string       `json:"description"`
	DueDate     *Date        `json:"due_date"`
	Priority    TodoPriority `json:"priority"`
	AssignedTo  *string      `json:"assigned_to"`
}

type UpdateTodoRequest struct {
	ID          string        `json:"id"`
	Title       *string       `json:"title,omitempty"`
	Description *string       `json:"description,omitempty"`
	DueDate     *Date         `json:"due_date,omitempty"`
	Priority    *TodoPriority `json:"priority,omitempty"`
	Completed   *bool         `json:"completed,omitempty"`
	AssignedTo  *string       `json:"assigned_to,omitempty"`
}

// OnlyCompletion indica que a atualização mexe apenas no campo "completed"
func (r *UpdateTodoRequest) OnlyCompletion() bool {
	return r.Completed != nil && r.Title == nil && r.Description == nil &&
		r.DueDate == nil && r.Priority == nil && r.AssignedTo == nil
}
