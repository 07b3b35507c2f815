package insight

import (
	"testing"
	"time"

	"clementus360/taskflow/config"
	"clementus360/taskflow/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildContextEmptyInputs(t *testing.T) {
	ctx := BuildContext("Ada", nil, nil, nil)

	assert.Equal(t, "Ada", ctx.UserName)
	assert.Equal(t, 0, ctx.TotalTasks)
	assert.Equal(t, 0, ctx.CompletedTasks)
	assert.Equal(t, 0, ctx.OverdueTasks)
	assert.Equal(t, float64(0), ctx.CompletionRate, "no division by zero on empty task list")
	assert.Equal(t, 0, ctx.TeamSize)
	assert.Empty(t, ctx.RecentActivities)

	// Maps are always present with zeroed buckets.
	assert.Equal(t, 0, ctx.TasksByStatus[config.StatusTodo])
	assert.Equal(t, 0, ctx.TasksByPriority[config.PriorityHigh])
}

func TestBuildContextCountsAndRate(t *testing.T) {
	past := time.Now().Add(-48 * time.Hour)
	future := time.Now().Add(48 * time.Hour)

	tasks := []types.Task{
		{Title: "a", Status: config.StatusCompleted, Priority: config.PriorityHigh},
		{Title: "b", Status: config.StatusDone, Priority: config.PriorityLow, DueDate: &past},
		{Title: "c", Status: config.StatusTodo, Priority: config.PriorityMedium, DueDate: &past},
		{Title: "d", Status: config.StatusInProgress, Priority: config.PriorityHigh, DueDate: &future},
		{Title: "e", Status: config.StatusReview, Priority: config.PriorityMedium},
		{Title: "f", Status: "archived", Priority: "none"},
	}
	memberships := []types.TeamMembership{
		{UserID: "u1"}, {UserID: "u2"}, {UserID: "u3"},
	}

	ctx := BuildContext("Ada", tasks, memberships, nil)

	assert.Equal(t, 6, ctx.TotalTasks)
	assert.Equal(t, 2, ctx.CompletedTasks, "completed and done are synonyms")
	assert.Equal(t, 1, ctx.OverdueTasks, "a finished task past its due date is not overdue")
	assert.InDelta(t, 100.0*2/6, ctx.CompletionRate, 0.001)
	assert.Equal(t, 3, ctx.TeamSize)

	assert.Equal(t, 1, ctx.TasksByStatus[config.StatusTodo])
	assert.Equal(t, 1, ctx.TasksByStatus[config.StatusInProgress])
	assert.Equal(t, 1, ctx.TasksByStatus[config.StatusReview])
	assert.Equal(t, 1, ctx.TasksByStatus[config.StatusCompleted], "legacy done label is not a board column")

	assert.Equal(t, 2, ctx.TasksByPriority[config.PriorityHigh])
	assert.Equal(t, 2, ctx.TasksByPriority[config.PriorityMedium])
	assert.Equal(t, 1, ctx.TasksByPriority[config.PriorityLow])
}

func TestBuildContextRecentActivities(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	var activities []types.UserActivity
	for i := 0; i < 15; i++ {
		activities = append(activities, types.UserActivity{
			ActivityType: config.ActivityTypeTaskCreated,
			CreatedAt:    base.Add(time.Duration(i) * time.Hour),
		})
	}

	ctx := BuildContext("Ada", nil, nil, activities)

	assert.Equal(t, 15, ctx.ActivityCount, "count is taken before the cap")
	require.Len(t, ctx.RecentActivities, 10, "recent activities are capped at 10")
	for i := 1; i < len(ctx.RecentActivities); i++ {
		assert.True(t, !ctx.RecentActivities[i-1].Timestamp.Before(ctx.RecentActivities[i].Timestamp),
			"entries are ordered most recent first")
	}
	assert.Equal(t, base.Add(14*time.Hour), ctx.RecentActivities[0].Timestamp)

	// The caller's slice is left untouched.
	assert.Equal(t, base, activities[0].CreatedAt)
}
