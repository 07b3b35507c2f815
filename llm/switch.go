package llm

import (
	"os"
)

type Model string

const (
	OpenAI Model = "openai"
	Gemini Model = "gemini"
)

// DefaultModel picks the model from AI_MODEL, defaulting to Gemini.
func DefaultModel() Model {
	switch Model(os.Getenv("AI_MODEL")) {
	case OpenAI:
		return OpenAI
	default:
		return Gemini
	}
}

// Generator returns the text-generation function for the given model, or
// nil when its API key is not configured. A nil generator is the explicit
// signal for callers to use their deterministic fallbacks instead of an
// ambient environment check.
func Generator(model Model) func(prompt string) (string, error) {
	switch model {
	case OpenAI:
		if os.Getenv("OPENAI_API_KEY") == "" {
			return nil
		}
		return OpenAIGenerateText
	case Gemini:
		if os.Getenv("GEMINI_API_KEY") == "" {
			return nil
		}
		return GeminiGenerateText
	default:
		return nil
	}
}
