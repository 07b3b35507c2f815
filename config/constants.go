package config

// Task board statuses
const (
	StatusTodo       = "todo"
	StatusInProgress = "in-progress"
	StatusReview     = "review"
	StatusCompleted  = "completed"
	// StatusDone is a legacy label still written by older clients. It is
	// treated as a synonym of StatusCompleted everywhere.
	StatusDone = "done"
)

// Task priorities
const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"
)

// Insight categories
const (
	InsightProductivity = "productivity"
	InsightTask         = "task"
	InsightTeam         = "team"
	InsightSchedule     = "schedule"
)

// Activity types constants
const (
	ActivityTypeTaskCreated    = "task_created"
	ActivityTypeTaskUpdated    = "task_updated"
	ActivityTypeTaskCompleted  = "task_completed"
	ActivityTypeTaskDeleted    = "task_deleted"
	ActivityTypeTaskMoved      = "task_moved"
	ActivityTypeTasksCreated   = "tasks_created"
	ActivityTypeEventCreated   = "event_created"
	ActivityTypeTeamCreated    = "team_created"
	ActivityTypeMemberJoined   = "member_joined"
	ActivityTypeInsightsViewed = "insights_viewed"
)

// InvitationTTLDays is how long a team invitation stays redeemable.
const InvitationTTLDays = 7
