package insight

import (
	"strings"

	"clementus360/taskflow/config"
	"clementus360/taskflow/types"

	"github.com/tidwall/gjson"
)

// DecomposeTasks turns a free-text project description into 1-8 structured
// task drafts. It never fails: tiers are attempted in order (AI, keyword
// templates, sentence split) and each lower tier is deterministic.
// Rejecting blank descriptions is the caller's job.
func DecomposeTasks(description string, gen TextGenerator) []types.TaskDraft {
	if gen != nil {
		if drafts, ok := aiDrafts(description, gen); ok {
			return drafts
		}
	}

	if drafts := templateDrafts(description); len(drafts) > 0 {
		return drafts
	}

	if drafts := sentenceDrafts(description); len(drafts) > 0 {
		return drafts
	}

	return []types.TaskDraft{{
		Title:          "Complete Task",
		Description:    description,
		Priority:       config.PriorityMedium,
		Status:         config.StatusTodo,
		EstimatedHours: defaultDraftHours,
	}}
}

// aiDrafts makes a single call to the generator and sanitizes every field
// of the response before trusting it. Any failure is logged and absorbed.
func aiDrafts(description string, gen TextGenerator) ([]types.TaskDraft, bool) {
	raw, err := gen(BuildBreakdownPrompt(description))
	if err != nil {
		config.Logger.Warn("Task breakdown call failed, falling back to templates: ", err)
		return nil, false
	}

	arr, found := extractJSONArray(raw)
	if !found {
		config.Logger.Warn("No JSON array in breakdown response, falling back to templates")
		return nil, false
	}

	items := gjson.Parse(arr).Array()
	if len(items) == 0 {
		config.Logger.Warn("Breakdown response parsed but contained no tasks")
		return nil, false
	}

	drafts := make([]types.TaskDraft, 0, len(items))
	for _, item := range items {
		drafts = append(drafts, sanitizeDraft(item))
		if len(drafts) == maxDrafts {
			break
		}
	}
	return drafts, true
}

// sanitizeDraft coerces one model-emitted task into the draft invariants:
// title capped at 60 chars, priority in the three-value enum, status forced
// to todo, hours clamped to [1,8].
func sanitizeDraft(item gjson.Result) types.TaskDraft {
	title := strings.TrimSpace(item.Get("title").String())
	if title == "" {
		title = "Generated Task"
	}
	title = truncateRunes(title, draftTitleMax)

	priority := item.Get("priority").String()
	switch priority {
	case config.PriorityHigh, config.PriorityMedium, config.PriorityLow:
	default:
		priority = config.PriorityMedium
	}

	hours := int(item.Get("estimatedHours").Int())
	if hours == 0 {
		hours = defaultDraftHours
	}
	if hours < minDraftHours {
		hours = minDraftHours
	}
	if hours > maxDraftHours {
		hours = maxDraftHours
	}

	return types.TaskDraft{
		Title:          title,
		Description:    item.Get("description").String(),
		Priority:       priority,
		Status:         config.StatusTodo,
		EstimatedHours: hours,
	}
}

// sentenceDrafts is the generic tier: split the description on sentence
// terminators, drop fragments of 10 characters or fewer, one task per
// surviving sentence.
func sentenceDrafts(description string) []types.TaskDraft {
	var sentences []string
	for _, fragment := range strings.FieldsFunc(description, isSentenceEnd) {
		trimmed := strings.TrimSpace(fragment)
		if len(trimmed) > minFragmentLen {
			sentences = append(sentences, trimmed)
		}
	}

	if len(sentences) > 1 {
		drafts := make([]types.TaskDraft, 0, len(sentences))
		for i, sentence := range sentences {
			priority := config.PriorityMedium
			if i == 0 {
				priority = config.PriorityHigh
			}
			drafts = append(drafts, types.TaskDraft{
				Title:          sentenceTitle(sentence),
				Description:    sentence,
				Priority:       priority,
				Status:         config.StatusTodo,
				EstimatedHours: defaultDraftHours,
			})
			if len(drafts) == maxDrafts {
				break
			}
		}
		return drafts
	}

	if trimmed := strings.TrimSpace(description); trimmed != "" {
		title := trimmed
		if len(sentences) == 1 {
			title = sentences[0]
		}
		return []types.TaskDraft{{
			Title:          sentenceTitle(title),
			Description:    description,
			Priority:       config.PriorityHigh,
			Status:         config.StatusTodo,
			EstimatedHours: 3,
		}}
	}

	return nil
}

func isSentenceEnd(r rune) bool {
	return r == '.' || r == '!' || r == '?'
}

// sentenceTitle keeps the first 50 characters, with an ellipsis when the
// sentence is longer.
func sentenceTitle(sentence string) string {
	if len([]rune(sentence)) > sentenceTitleMax {
		return truncateRunes(sentence, sentenceTitleMax) + "..."
	}
	return sentence
}
