package insight

import (
	"strings"

	"clementus360/taskflow/config"
	"clementus360/taskflow/types"
)

// templateDrafts is the keyword tier: match the lower-cased description
// against a small ordered set of domain keyword groups, each bound to a
// fixed pre-written task list.
func templateDrafts(description string) []types.TaskDraft {
	lower := strings.ToLower(description)

	if containsAny(lower, "inventory", "stock", "warehouse") {
		return inventoryTemplate()
	}

	if strings.Contains(lower, "team") && containsAny(lower, "member", "divide", "assign") {
		return delegationTemplate()
	}

	if containsAny(lower, "presentation", "demo") {
		return presentationTemplate()
	}

	return nil
}

func containsAny(text string, keywords ...string) bool {
	for _, keyword := range keywords {
		if strings.Contains(text, keyword) {
			return true
		}
	}
	return false
}

func inventoryTemplate() []types.TaskDraft {
	return []types.TaskDraft{
		draft("Analyze Current Inventory System", "Review how stock is tracked today and document pain points and requirements.", config.PriorityHigh, 3),
		draft("Design Database Schema", "Model products, stock levels, locations, and movement history.", config.PriorityHigh, 4),
		draft("Develop Frontend Interface", "Build the screens for viewing, searching, and adjusting inventory.", config.PriorityMedium, 6),
		draft("Implement Backend Logic", "Implement stock movements, reorder thresholds, and reporting endpoints.", config.PriorityHigh, 8),
		draft("Test System Integration", "Run end-to-end checks covering receiving, picking, and stock counts.", config.PriorityMedium, 4),
		draft("Deploy and Train Users", "Roll out the system and walk the warehouse team through daily workflows.", config.PriorityMedium, 3),
	}
}

func delegationTemplate() []types.TaskDraft {
	return []types.TaskDraft{
		draft("Define Project Scope", "Agree on deliverables, deadlines, and what is explicitly out of scope.", config.PriorityHigh, 2),
		draft("Break Down Work Items", "Split the project into assignable chunks sized for individual members.", config.PriorityHigh, 3),
		draft("Set Up Shared Environment", "Prepare the shared board, repository, and documents everyone will use.", config.PriorityMedium, 2),
		draft("Establish Communication Channels", "Decide where updates happen and how often the team syncs.", config.PriorityMedium, 1),
		draft("Plan Integration Checkpoints", "Schedule points where individual pieces are merged and reviewed together.", config.PriorityMedium, 2),
	}
}

func presentationTemplate() []types.TaskDraft {
	return []types.TaskDraft{
		draft("Research the Topic", "Gather the facts, numbers, and examples the presentation will lean on.", config.PriorityHigh, 2),
		draft("Draft the Outline", "Order the story: hook, key points, and the ask at the end.", config.PriorityHigh, 1),
		draft("Build the Slides", "Turn the outline into slides, keeping one idea per slide.", config.PriorityMedium, 3),
		draft("Rehearse the Delivery", "Run through it aloud at least twice and trim to the time limit.", config.PriorityMedium, 1),
	}
}

func draft(title, description, priority string, hours int) types.TaskDraft {
	return types.TaskDraft{
		Title:          title,
		Description:    description,
		Priority:       priority,
		Status:         config.StatusTodo,
		EstimatedHours: hours,
	}
}
