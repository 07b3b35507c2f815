package types

import "time"

// ActivityEntry is one (action, timestamp) pair in an AggregatedContext,
// most recent first.
type ActivityEntry struct {
	Action    string    `json:"action"`
	Timestamp time.Time `json:"timestamp"`
}

// AggregatedContext is a per-user statistical summary of task/team/activity
// state, computed on demand. It is never persisted.
type AggregatedContext struct {
	UserName         string          `json:"user_name"`
	TotalTasks       int             `json:"total_tasks"`
	CompletedTasks   int             `json:"completed_tasks"`
	OverdueTasks     int             `json:"overdue_tasks"`
	CompletionRate   float64         `json:"completion_rate"` // 0..100
	TeamSize         int             `json:"team_size"`
	TasksByStatus    map[string]int  `json:"tasks_by_status"`
	TasksByPriority  map[string]int  `json:"tasks_by_priority"`
	ActivityCount    int             `json:"activity_count"`
	RecentActivities []ActivityEntry `json:"recent_activities"`
}
