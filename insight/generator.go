package insight

// TextGenerator is the single capability this package needs from a
// generative-language service: prompt in, raw text out. A nil generator
// means the service is not configured, and every operation falls back to
// its deterministic tiers.
type TextGenerator func(prompt string) (string, error)

const (
	minInsights = 2
	maxInsights = 4
	maxDrafts   = 8

	draftTitleMax    = 60
	sentenceTitleMax = 50
	minFragmentLen   = 10

	defaultDraftHours = 2
	minDraftHours     = 1
	maxDraftHours     = 8
)
