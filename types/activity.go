package types

import "time"

type UserActivity struct {
	ID           string    `json:"id,omitempty"`
	UserID       string    `json:"user_id"`
	ActivityType string    `json:"activity_type"` // see config.ActivityType* constants
	Content      string    `json:"content"`
	Metadata     string    `json:"metadata,omitempty"` // JSON string for additional context
	CreatedAt    time.Time `json:"created_at"`
}
