package insight

import (
	"slices"
	"time"

	"clementus360/taskflow/config"
	"clementus360/taskflow/types"
)

const maxRecentActivities = 10

// taskCompleted reports whether a task counts as finished. "done" is a
// legacy status written by older clients and is treated as a synonym of
// "completed".
func taskCompleted(status string) bool {
	return status == config.StatusCompleted || status == config.StatusDone
}

// BuildContext reduces raw task/team/activity records into a per-user
// summary. It is pure and never fails; empty inputs yield zeroed fields.
func BuildContext(userName string, tasks []types.Task, memberships []types.TeamMembership, activities []types.UserActivity) types.AggregatedContext {
	ctx := types.AggregatedContext{
		UserName: userName,
		TasksByStatus: map[string]int{
			config.StatusTodo:       0,
			config.StatusInProgress: 0,
			config.StatusReview:     0,
			config.StatusCompleted:  0,
		},
		TasksByPriority: map[string]int{
			config.PriorityHigh:   0,
			config.PriorityMedium: 0,
			config.PriorityLow:    0,
		},
		TeamSize: len(memberships),
	}

	now := time.Now()
	for _, task := range tasks {
		ctx.TotalTasks++

		if taskCompleted(task.Status) {
			ctx.CompletedTasks++
		} else if task.DueDate != nil && task.DueDate.Before(now) {
			ctx.OverdueTasks++
		}

		// Only the four board statuses are counted here, so the column sums
		// may fall short of TotalTasks when legacy labels are present.
		if _, ok := ctx.TasksByStatus[task.Status]; ok {
			ctx.TasksByStatus[task.Status]++
		}
		if _, ok := ctx.TasksByPriority[task.Priority]; ok {
			ctx.TasksByPriority[task.Priority]++
		}
	}

	if ctx.TotalTasks > 0 {
		ctx.CompletionRate = float64(ctx.CompletedTasks) / float64(ctx.TotalTasks) * 100
	}

	// ActivityCount is the full count; RecentActivities is capped for
	// display and prompt building.
	ctx.ActivityCount = len(activities)
	ctx.RecentActivities = recentEntries(activities, maxRecentActivities)

	return ctx
}

// recentEntries returns up to limit activities as (action, timestamp)
// pairs, most recent first. The input slice is not mutated.
func recentEntries(activities []types.UserActivity, limit int) []types.ActivityEntry {
	sorted := slices.Clone(activities)
	slices.SortFunc(sorted, func(a, b types.UserActivity) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})

	if len(sorted) > limit {
		sorted = sorted[:limit]
	}

	entries := make([]types.ActivityEntry, 0, len(sorted))
	for _, activity := range sorted {
		entries = append(entries, types.ActivityEntry{
			Action:    activity.ActivityType,
			Timestamp: activity.CreatedAt,
		})
	}
	return entries
}
