package insight

import (
	"fmt"
	"strings"
	"testing"

	"clementus360/taskflow/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecomposeInventoryTemplate(t *testing.T) {
	drafts := DecomposeTasks("We need to manage our warehouse inventory better", nil)

	require.Len(t, drafts, 6)

	wantTitles := []string{
		"Analyze Current Inventory System",
		"Design Database Schema",
		"Develop Frontend Interface",
		"Implement Backend Logic",
		"Test System Integration",
		"Deploy and Train Users",
	}
	for i, want := range wantTitles {
		assert.Equal(t, want, drafts[i].Title)
		assert.Equal(t, config.StatusTodo, drafts[i].Status)
	}
}

func TestDecomposeDelegationTemplate(t *testing.T) {
	drafts := DecomposeTasks("Divide the website project between team members", nil)

	require.Len(t, drafts, 5)
	assert.Equal(t, "Define Project Scope", drafts[0].Title)
	assert.Equal(t, "Plan Integration Checkpoints", drafts[4].Title)
}

func TestDecomposePresentationTemplate(t *testing.T) {
	drafts := DecomposeTasks("Put together a presentation for the client review", nil)

	require.Len(t, drafts, 4)
	assert.Equal(t, "Research the Topic", drafts[0].Title)
	assert.Equal(t, "Rehearse the Delivery", drafts[3].Title)
}

func TestDecomposeSentenceSplit(t *testing.T) {
	description := "Write the launch announcement for the blog. Coordinate the release schedule with marketing. Update the documentation site!"
	drafts := DecomposeTasks(description, nil)

	require.Len(t, drafts, 3)

	assert.Equal(t, "Write the launch announcement for the blog", drafts[0].Title)
	assert.Equal(t, config.PriorityHigh, drafts[0].Priority)
	assert.Equal(t, config.PriorityMedium, drafts[1].Priority)
	assert.Equal(t, config.PriorityMedium, drafts[2].Priority)
	for _, d := range drafts {
		assert.Equal(t, 2, d.EstimatedHours)
		assert.Equal(t, config.StatusTodo, d.Status)
	}
}

func TestDecomposeSingleSentence(t *testing.T) {
	drafts := DecomposeTasks("Organize the quarterly budget review for Friday.", nil)

	require.Len(t, drafts, 1)
	assert.Equal(t, "Organize the quarterly budget review for Friday", drafts[0].Title)
	assert.Equal(t, config.PriorityHigh, drafts[0].Priority)
	assert.Equal(t, 3, drafts[0].EstimatedHours)
}

func TestDecomposeLongSentenceTitleEllipsis(t *testing.T) {
	description := "Coordinate the end-of-quarter financial reconciliation across every regional office."
	drafts := DecomposeTasks(description, nil)

	require.Len(t, drafts, 1)
	assert.True(t, strings.HasSuffix(drafts[0].Title, "..."))
	assert.Len(t, []rune(drafts[0].Title), 53)
}

func TestDecomposeEmptyDescription(t *testing.T) {
	for _, description := range []string{"", "   ", "Do it."} {
		drafts := DecomposeTasks(description, nil)

		require.Len(t, drafts, 1, "description %q", description)
		if strings.TrimSpace(description) == "" {
			assert.Equal(t, "Complete Task", drafts[0].Title)
			assert.Equal(t, config.PriorityMedium, drafts[0].Priority)
			assert.Equal(t, 2, drafts[0].EstimatedHours)
		}
	}
}

func TestDecomposeAITier(t *testing.T) {
	gen := func(prompt string) (string, error) {
		assert.Contains(t, prompt, "project manager")
		return "```json\n[" +
			`{"title":"Set Up Repository","description":"Create the repo and CI.","priority":"high","status":"todo","estimatedHours":2},` +
			`{"title":"","description":"No title given.","priority":"urgent","status":"in-progress","estimatedHours":20},` +
			`{"title":"` + strings.Repeat("x", 80) + `","description":"Oversized title.","priority":"low"}` +
			"]\n```", nil
	}

	drafts := DecomposeTasks("Build the new service", gen)

	require.Len(t, drafts, 3)

	assert.Equal(t, "Set Up Repository", drafts[0].Title)
	assert.Equal(t, config.PriorityHigh, drafts[0].Priority)

	// Untrusted fields are coerced, not trusted.
	assert.Equal(t, "Generated Task", drafts[1].Title)
	assert.Equal(t, config.PriorityMedium, drafts[1].Priority)
	assert.Equal(t, config.StatusTodo, drafts[1].Status)
	assert.Equal(t, 8, drafts[1].EstimatedHours)

	assert.Len(t, []rune(drafts[2].Title), 60)
	assert.Equal(t, 2, drafts[2].EstimatedHours, "missing hours default to 2")
}

func TestDecomposeAICappedAtEight(t *testing.T) {
	gen := func(string) (string, error) {
		items := make([]string, 0, 12)
		for i := 0; i < 12; i++ {
			items = append(items, fmt.Sprintf(`{"title":"Task %d","description":"d","priority":"low","estimatedHours":1}`, i))
		}
		return "[" + strings.Join(items, ",") + "]", nil
	}

	drafts := DecomposeTasks("Plan a very large project", gen)
	require.Len(t, drafts, 8)
}

func TestDecomposeAIFailureFallsThrough(t *testing.T) {
	gen := func(string) (string, error) {
		return "", fmt.Errorf("timeout")
	}

	drafts := DecomposeTasks("We need to manage our warehouse inventory better", gen)
	require.Len(t, drafts, 6)
	assert.Equal(t, "Analyze Current Inventory System", drafts[0].Title)
}

func TestDecomposeInvariants(t *testing.T) {
	descriptions := []string{
		"",
		"Ship the mobile release. Fix the crash reports. Write the changelog. Notify support.",
		"We need to manage our warehouse inventory better",
		"Put together a presentation for the client review",
		"Divide the website project between team members",
		"Organize the quarterly budget review for Friday.",
		strings.Repeat("Investigate a long-standing flaky integration suite. ", 12),
	}

	for _, description := range descriptions {
		drafts := DecomposeTasks(description, nil)

		assert.GreaterOrEqual(t, len(drafts), 1, "description %q", description)
		assert.LessOrEqual(t, len(drafts), 8, "description %q", description)
		for _, d := range drafts {
			assert.Equal(t, config.StatusTodo, d.Status)
			assert.Contains(t, []string{config.PriorityHigh, config.PriorityMedium, config.PriorityLow}, d.Priority)
			assert.GreaterOrEqual(t, d.EstimatedHours, 1)
			assert.LessOrEqual(t, d.EstimatedHours, 8)
			assert.LessOrEqual(t, len([]rune(d.Title)), 60)
		}
	}
}
