package types

import "time"

type Event struct {
	ID          string    `json:"id,omitempty"`
	UserID      string    `json:"user_id"`
	TeamID      *string   `json:"team_id,omitempty"` // nullable
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	StartsAt    time.Time `json:"starts_at"`
	EndsAt      time.Time `json:"ends_at"`
	CreatedAt   time.Time `json:"created_at,omitempty"`
}

type CreateEventRequest struct {
	Title       string    `json:"title" validate:"required,min=1,max=255"`
	Description string    `json:"description"`
	StartsAt    time.Time `json:"starts_at" validate:"required"`
	EndsAt      time.Time `json:"ends_at" validate:"required,gtfield=StartsAt"`
	TeamID      *string   `json:"team_id,omitempty" validate:"omitempty,uuid4"`
}

type EventResponse struct {
	Success      bool   `json:"success"`
	Event        Event  `json:"event,omitempty"`
	ErrorMessage string `json:"error,omitempty"`
}

type GetEventsResponse struct {
	Success      bool    `json:"success"`
	Events       []Event `json:"events,omitempty"`
	ErrorMessage string  `json:"error,omitempty"`
}

type DeleteEventResponse struct {
	Success      bool   `json:"success"`
	ErrorMessage string `json:"error,omitempty"`
	Message      string `json:"message,omitempty"`
}
