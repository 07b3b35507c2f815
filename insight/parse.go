package insight

import (
	"encoding/json"
	"strings"
)

// stripCodeFence removes a leading ```json (or bare ```) line and a
// trailing ``` line from model output. Models wrap JSON this way even when
// told not to.
func stripCodeFence(text string) string {
	cleaned := strings.TrimSpace(text)

	if strings.HasPrefix(cleaned, "```") {
		if idx := strings.Index(cleaned, "\n"); idx != -1 {
			cleaned = cleaned[idx+1:]
		} else {
			cleaned = strings.TrimPrefix(cleaned, "```json")
			cleaned = strings.TrimPrefix(cleaned, "```")
		}
	}
	if strings.HasSuffix(strings.TrimSpace(cleaned), "```") {
		trimmed := strings.TrimSpace(cleaned)
		cleaned = trimmed[:len(trimmed)-3]
	}

	return strings.TrimSpace(cleaned)
}

// extractJSONArray pulls the first valid JSON array out of model output,
// tolerating code fences and prose around the payload.
func extractJSONArray(text string) (string, bool) {
	cleaned := stripCodeFence(text)

	if strings.HasPrefix(cleaned, "[") && json.Valid([]byte(cleaned)) {
		return cleaned, true
	}

	start := strings.Index(cleaned, "[")
	end := strings.LastIndex(cleaned, "]")
	if start == -1 || end <= start {
		return "", false
	}

	candidate := cleaned[start : end+1]
	if json.Valid([]byte(candidate)) {
		return candidate, true
	}
	return "", false
}

// truncateRunes shortens s to at most n runes without splitting a
// multi-byte character.
func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
