package insight

import (
	"fmt"
	"testing"
	"time"

	"clementus360/taskflow/config"
	"clementus360/taskflow/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func manyActivities(n int) []types.ActivityEntry {
	entries := make([]types.ActivityEntry, n)
	for i := range entries {
		entries[i] = types.ActivityEntry{Action: "task_created", Timestamp: time.Now()}
	}
	return entries
}

func TestSynthesizeInsightsBounds(t *testing.T) {
	contexts := []types.AggregatedContext{
		{},
		{TotalTasks: 10, CompletedTasks: 10, CompletionRate: 100},
		{TotalTasks: 10, CompletedTasks: 1, CompletionRate: 10, OverdueTasks: 5, TeamSize: 4, ActivityCount: 12},
		{TotalTasks: 3, CompletedTasks: 2, CompletionRate: 66.7, TeamSize: 2},
	}

	for i, ctx := range contexts {
		insights := SynthesizeInsights(ctx, nil)
		assert.GreaterOrEqual(t, len(insights), 2, "context %d", i)
		assert.LessOrEqual(t, len(insights), 4, "context %d", i)
	}
}

func TestSynthesizeInsightsRuleOrder(t *testing.T) {
	ctx := types.AggregatedContext{
		TotalTasks:     10,
		CompletedTasks: 2,
		CompletionRate: 20,
		OverdueTasks:   3,
		TeamSize:       1,
	}

	insights := SynthesizeInsights(ctx, nil)

	require.Len(t, insights, 2)
	assert.Equal(t, config.InsightProductivity, insights[0].Type)
	assert.Equal(t, config.InsightTask, insights[1].Type)
	assert.Contains(t, insights[0].Description, "8 pending tasks")
	assert.Contains(t, insights[1].Description, "Eisenhower")
}

func TestSynthesizeInsightsAllRulesFire(t *testing.T) {
	ctx := types.AggregatedContext{
		TotalTasks:       20,
		CompletedTasks:   2,
		CompletionRate:   10,
		OverdueTasks:     4,
		TeamSize:         5,
		ActivityCount:    11,
		RecentActivities: manyActivities(10),
	}

	insights := SynthesizeInsights(ctx, nil)

	require.Len(t, insights, 4)
	assert.Equal(t, config.InsightProductivity, insights[0].Type)
	assert.Equal(t, config.InsightTask, insights[1].Type)
	assert.Equal(t, config.InsightSchedule, insights[2].Type)
	assert.Equal(t, config.InsightTeam, insights[3].Type)
}

func TestSynthesizeInsightsPadsToFloor(t *testing.T) {
	// Nothing triggers: high completion rate, no overdue, solo user.
	ctx := types.AggregatedContext{
		TotalTasks:     4,
		CompletedTasks: 4,
		CompletionRate: 100,
	}

	insights := SynthesizeInsights(ctx, nil)

	require.Len(t, insights, 2)
	assert.Equal(t, config.InsightProductivity, insights[0].Type)
	assert.Contains(t, insights[0].Description, "GTD")
}

func TestSynthesizeInsightsIdempotentWithoutGenerator(t *testing.T) {
	ctx := types.AggregatedContext{
		TotalTasks:     6,
		CompletedTasks: 1,
		CompletionRate: 16.7,
		OverdueTasks:   1,
		TeamSize:       3,
	}

	first := SynthesizeInsights(ctx, nil)
	second := SynthesizeInsights(ctx, nil)
	assert.Equal(t, first, second)
}

func TestSynthesizeInsightsAITier(t *testing.T) {
	gen := func(prompt string) (string, error) {
		assert.Contains(t, prompt, "Total tasks: 10")
		return "```json\n[\n" +
			`{"type":"productivity","title":"Batch Small Tasks","description":"Group quick wins into one block.","action":"Show my quick wins"},` + "\n" +
			`{"type":"schedule","title":"Protect Mornings","description":"Your mornings are your best hours."}` + "\n]\n```", nil
	}

	ctx := types.AggregatedContext{TotalTasks: 10, CompletedTasks: 2, CompletionRate: 20, OverdueTasks: 5}
	insights := SynthesizeInsights(ctx, gen)

	// AI output replaces the rule list entirely.
	require.Len(t, insights, 2)
	assert.Equal(t, "Batch Small Tasks", insights[0].Title)
	assert.Equal(t, config.InsightSchedule, insights[1].Type)
}

func TestSynthesizeInsightsAITruncatedToCeiling(t *testing.T) {
	gen := func(string) (string, error) {
		out := "["
		for i := 0; i < 6; i++ {
			if i > 0 {
				out += ","
			}
			out += fmt.Sprintf(`{"type":"task","title":"Insight %d","description":"Do thing %d."}`, i, i)
		}
		return out + "]", nil
	}

	insights := SynthesizeInsights(types.AggregatedContext{}, gen)
	require.Len(t, insights, 4)
	assert.Equal(t, "Insight 0", insights[0].Title)
	assert.Equal(t, "Insight 3", insights[3].Title)
}

func TestSynthesizeInsightsFallbackOnGeneratorError(t *testing.T) {
	gen := func(string) (string, error) {
		return "", fmt.Errorf("service unavailable")
	}

	ctx := types.AggregatedContext{TotalTasks: 10, CompletedTasks: 2, CompletionRate: 20, OverdueTasks: 1}
	insights := SynthesizeInsights(ctx, gen)

	require.Len(t, insights, 2)
	assert.Equal(t, config.InsightProductivity, insights[0].Type)
	assert.Equal(t, config.InsightTask, insights[1].Type)
}

func TestSynthesizeInsightsFallbackOnUnusableOutput(t *testing.T) {
	cases := map[string]string{
		"prose only":    "Here are some thoughts about your productivity.",
		"broken json":   "```json\n[{\"type\": \"productivity\",]\n```",
		"invalid types": `[{"type":"horoscope","title":"Stars","description":"Mars is retrograde."}]`,
		"empty array":   `[]`,
	}

	ctx := types.AggregatedContext{TotalTasks: 10, CompletedTasks: 2, CompletionRate: 20, OverdueTasks: 1}
	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			gen := func(string) (string, error) { return raw, nil }
			insights := SynthesizeInsights(ctx, gen)
			require.Len(t, insights, 2)
			assert.Equal(t, config.InsightProductivity, insights[0].Type)
		})
	}
}
