package insight

import (
	"fmt"
	"strings"

	"clementus360/taskflow/config"
	"clementus360/taskflow/types"
)

// BuildInsightPrompt embeds the full aggregated context and asks for a JSON
// array of 2-4 insights matching the Insight shape.
func BuildInsightPrompt(ctx types.AggregatedContext) string {
	instructions := `You are a productivity coach for a team task-management app. Based on the user's statistics below, generate 2-4 short, actionable insights.

Cover whichever of these areas the data supports:
- completion patterns
- priority management
- time management
- team collaboration
- workflow efficiency

Respond ONLY with a valid JSON array. Each element must have this shape:
{
  "type": "productivity" | "task" | "team" | "schedule",
  "title": "Short title",
  "description": "1-2 sentences with a concrete recommendation",
  "action": "optional suggested follow-up prompt"
}

Do not include any text outside the JSON array.`

	var stats strings.Builder
	stats.WriteString("USER STATISTICS:\n")
	stats.WriteString(fmt.Sprintf("- Name: %s\n", ctx.UserName))
	stats.WriteString(fmt.Sprintf("- Total tasks: %d\n", ctx.TotalTasks))
	stats.WriteString(fmt.Sprintf("- Completed tasks: %d\n", ctx.CompletedTasks))
	stats.WriteString(fmt.Sprintf("- Overdue tasks: %d\n", ctx.OverdueTasks))
	stats.WriteString(fmt.Sprintf("- Completion rate: %.1f%%\n", ctx.CompletionRate))
	stats.WriteString(fmt.Sprintf("- Team size: %d\n", ctx.TeamSize))
	stats.WriteString(fmt.Sprintf("- Recorded activities: %d\n", ctx.ActivityCount))

	stats.WriteString("- Tasks by status:")
	for _, status := range []string{config.StatusTodo, config.StatusInProgress, config.StatusReview, config.StatusCompleted} {
		stats.WriteString(fmt.Sprintf(" %s=%d", status, ctx.TasksByStatus[status]))
	}
	stats.WriteString("\n- Tasks by priority:")
	for _, priority := range []string{config.PriorityHigh, config.PriorityMedium, config.PriorityLow} {
		stats.WriteString(fmt.Sprintf(" %s=%d", priority, ctx.TasksByPriority[priority]))
	}
	stats.WriteString("\n")

	if len(ctx.RecentActivities) > 0 {
		stats.WriteString("- Recent activity (most recent first):\n")
		for _, entry := range ctx.RecentActivities {
			stats.WriteString(fmt.Sprintf("  - %s at %s\n", entry.Action, entry.Timestamp.Format("2006-01-02 15:04")))
		}
	}

	return fmt.Sprintf("%s\n\n%s", instructions, stats.String())
}

// BuildBreakdownPrompt asks the model to decompose a free-text description
// into 2-8 structured tasks.
func BuildBreakdownPrompt(description string) string {
	instructions := `You are an experienced project manager. Break the project description below into 2-8 concrete, actionable tasks.

Guidelines:
- Each task should be completable in 1-8 hours.
- Include setup, execution, and review phases where relevant.
- Assign priority by urgency: high, medium, or low.

Respond ONLY with a valid JSON array. Each element must have this shape:
{
  "title": "Short task title",
  "description": "What to do and why",
  "priority": "high" | "medium" | "low",
  "status": "todo",
  "estimatedHours": 2
}

Do not include any text outside the JSON array.`

	return fmt.Sprintf("%s\n\nPROJECT DESCRIPTION:\n%s", instructions, description)
}
