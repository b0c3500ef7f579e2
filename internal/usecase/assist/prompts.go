package assist

import "github.com/evgeniy-krivenko/ai-notes/internal/entity"

var systemPrompts = map[entity.Action]string{
	entity.ActionSummary: "You are a professional note-taking secretary. " +
		"Summarize this memo concisely as a bulleted list.",
	entity.ActionContinue: "You are a creative writing assistant. " +
		"Continue the existing content in the same tone for about 150 words. Output only the continuation.",
	entity.ActionOptimize: "You are a text editor. " +
		"Fix the grammar and make the text more elegant while keeping its meaning. Output only the full revised text.",
	entity.ActionChecklist: "You are a task extraction expert. " +
		"Turn the action items in the content into lines of the form '- [ ] task'. Output only the list.",
}

var blockLabels = map[entity.Action]string{
	entity.ActionSummary:   "Summary",
	entity.ActionChecklist: "Checklist",
}

// applyResult merges the generated text into the current content.
func applyResult(action entity.Action, current, result string) string {
	switch action {
	case entity.ActionContinue:
		return current + "\n\n" + result
	case entity.ActionOptimize:
		return result
	default:
		return current + "\n\n--- ✨ AI " + blockLabels[action] + " ---\n" + result
	}
}
