package insight

import (
	"encoding/json"
	"fmt"

	"clementus360/taskflow/config"
	"clementus360/taskflow/types"
)

// SynthesizeInsights produces 2-4 actionable insights from an aggregated
// context. It never fails: when the generator is nil, errors, or returns
// unusable output, it silently falls back to rule-based generation.
func SynthesizeInsights(ctx types.AggregatedContext, gen TextGenerator) []types.Insight {
	var insights []types.Insight

	if gen != nil {
		if generated, ok := aiInsights(ctx, gen); ok {
			insights = generated
		}
	}

	// AI results replace the rule list entirely, never merge with it.
	if len(insights) == 0 {
		insights = ruleInsights(ctx)
	}

	if len(insights) < minInsights {
		for _, fallback := range defaultInsights() {
			insights = append(insights, fallback)
			if len(insights) >= minInsights {
				break
			}
		}
	}
	if len(insights) > maxInsights {
		insights = insights[:maxInsights]
	}

	return insights
}

// aiInsights makes a single call to the generator, no retry. Any failure is
// logged and absorbed.
func aiInsights(ctx types.AggregatedContext, gen TextGenerator) ([]types.Insight, bool) {
	raw, err := gen(BuildInsightPrompt(ctx))
	if err != nil {
		config.Logger.Warn("Insight generation call failed, falling back to rules: ", err)
		return nil, false
	}

	arr, found := extractJSONArray(raw)
	if !found {
		config.Logger.Warn("No JSON array in insight response, falling back to rules")
		return nil, false
	}

	var parsed []types.Insight
	if err := json.Unmarshal([]byte(arr), &parsed); err != nil {
		config.Logger.Warn("Failed to parse insight response, falling back to rules: ", err)
		return nil, false
	}

	// Model output is untrusted: drop anything missing required fields or
	// outside the type enum.
	valid := make([]types.Insight, 0, len(parsed))
	for _, ins := range parsed {
		if ins.Title == "" || ins.Description == "" {
			continue
		}
		if !validInsightType(ins.Type) {
			continue
		}
		valid = append(valid, ins)
	}

	if len(valid) == 0 {
		config.Logger.Warn("Insight response parsed but contained no usable entries")
		return nil, false
	}
	return valid, true
}

func validInsightType(t string) bool {
	switch t {
	case config.InsightProductivity, config.InsightTask, config.InsightTeam, config.InsightSchedule:
		return true
	}
	return false
}

// ruleInsights evaluates the deterministic conditions in a fixed order and
// appends one insight for each that holds.
func ruleInsights(ctx types.AggregatedContext) []types.Insight {
	var insights []types.Insight

	if ctx.CompletionRate < 50 {
		pending := ctx.TotalTasks - ctx.CompletedTasks
		insights = append(insights, types.Insight{
			Type:        config.InsightProductivity,
			Title:       "Boost Your Completion Rate",
			Description: fmt.Sprintf("You have %d pending tasks. Break them into smaller chunks to build momentum and finish more of what you start.", pending),
			Action:      "Break down my pending tasks",
		})
	}

	if ctx.OverdueTasks > 0 {
		insights = append(insights, types.Insight{
			Type:        config.InsightTask,
			Title:       "Clear Overdue Tasks",
			Description: fmt.Sprintf("%d of your tasks are past their due date. Sort them with the Eisenhower matrix and tackle the urgent-important ones first.", ctx.OverdueTasks),
			Action:      "Help me prioritize my overdue tasks",
		})
	}

	// Fires on activity volume, not recency.
	if ctx.ActivityCount > 10 {
		insights = append(insights, types.Insight{
			Type:        config.InsightSchedule,
			Title:       "Optimize Your Productive Hours",
			Description: "Your activity volume is high. Block out your most productive hours for deep work and batch the small stuff around them.",
		})
	}

	if ctx.TeamSize > 1 {
		insights = append(insights, types.Insight{
			Type:        config.InsightTeam,
			Title:       "Keep Your Team in Sync",
			Description: fmt.Sprintf("You're collaborating with %d people. Short, regular check-ins keep everyone aligned without adding meeting overhead.", ctx.TeamSize),
			Action:      "Draft a check-in agenda",
		})
	}

	return insights
}

// defaultInsights pads the result up to the floor of 2 when the rules
// produce too few entries.
func defaultInsights() []types.Insight {
	return []types.Insight{
		{
			Type:        config.InsightProductivity,
			Title:       "Build a Task System",
			Description: "Adopt a trusted method like GTD or PARA to capture and organize everything in one place, so nothing slips through the cracks.",
			Action:      "Explain GTD in two minutes",
		},
		{
			Type:        config.InsightProductivity,
			Title:       "Review Your Week",
			Description: "Set aside 15 minutes at the end of the week to close out finished tasks and reschedule the rest.",
			Action:      "Plan my weekly review",
		},
	}
}
