package types

// Insight is a short actionable recommendation surfaced to the user.
type Insight struct {
	Type        string `json:"type"` // productivity | task | team | schedule
	Title       string `json:"title"`
	Description string `json:"description"`
	Action      string `json:"action,omitempty"` // suggested follow-up prompt
}

// TaskDraft is a structured, not-yet-persisted task produced from free text.
// The caller decides whether to save it.
type TaskDraft struct {
	Title          string `json:"title"`
	Description    string `json:"description"`
	Priority       string `json:"priority"` // high | medium | low
	Status         string `json:"status"`   // always "todo" for new drafts
	EstimatedHours int    `json:"estimatedHours"`
}

type InsightsResponse struct {
	Success      bool      `json:"success"`
	Insights     []Insight `json:"insights,omitempty"`
	ErrorMessage string    `json:"error,omitempty"`
}

type BreakdownRequest struct {
	Description string `json:"description" validate:"required"`
	Save        bool   `json:"save,omitempty"` // persist drafts as AI-suggested tasks
}

type BreakdownResponse struct {
	Success      bool        `json:"success"`
	Drafts       []TaskDraft `json:"drafts,omitempty"`
	Saved        bool        `json:"saved,omitempty"`
	ErrorMessage string      `json:"error,omitempty"`
}
