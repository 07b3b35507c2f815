package types

import "time"

type Task struct {
	ID             string     `json:"id,omitempty"`
	UserID         string     `json:"user_id"`
	TeamID         *string    `json:"team_id,omitempty"` // nullable
	Title          string     `json:"title"`
	Description    string     `json:"description"`
	Status         string     `json:"status"`
	Priority       string     `json:"priority"`
	DueDate        *time.Time `json:"due_date,omitempty"`
	EstimatedHours int        `json:"estimated_hours,omitempty"`
	AISuggested    bool       `json:"ai_suggested"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at,omitempty"`
}

type CreateTaskRequest struct {
	Title          string     `json:"title" validate:"required,min=1,max=255"`
	Description    string     `json:"description"`
	Status         string     `json:"status" validate:"omitempty,oneof=todo in-progress review completed done"`
	Priority       string     `json:"priority" validate:"omitempty,oneof=high medium low"`
	DueDate        *time.Time `json:"due_date,omitempty"`
	TeamID         *string    `json:"team_id,omitempty" validate:"omitempty,uuid4"`
	EstimatedHours int        `json:"estimated_hours" validate:"omitempty,min=1,max=8"`
}

type TaskResponse struct {
	Success      bool   `json:"success"`
	Task         Task   `json:"task,omitempty"`  // the created/updated task
	ErrorMessage string `json:"error,omitempty"` // only set on failure
}

type DeleteTaskResponse struct {
	Success      bool   `json:"success"`
	ErrorMessage string `json:"error,omitempty"`   // only set on failure
	Message      string `json:"message,omitempty"` // confirmation message
}

type GetTasksResponse struct {
	Success      bool   `json:"success"`
	Tasks        []Task `json:"tasks,omitempty"`
	Total        int    `json:"total,omitempty"`  // Optional: total count for pagination
	Limit        int    `json:"limit,omitempty"`  // Echoed back from request
	Offset       int    `json:"offset,omitempty"` // Echoed back from request
	ErrorMessage string `json:"error,omitempty"`  // Only set on failure
}

// BoardColumn is one kanban column: a status plus the tasks parked in it.
type BoardColumn struct {
	Status string `json:"status"`
	Tasks  []Task `json:"tasks"`
}

type BoardResponse struct {
	Success      bool          `json:"success"`
	Columns      []BoardColumn `json:"columns,omitempty"`
	ErrorMessage string        `json:"error,omitempty"`
}

type MoveTaskRequest struct {
	TaskID string `json:"task_id" validate:"required,uuid4"`
	Status string `json:"status" validate:"required,oneof=todo in-progress review completed"`
}
