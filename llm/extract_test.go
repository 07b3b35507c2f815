package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractGeminiText(t *testing.T) {
	body := []byte(`{
		"candidates": [
			{
				"content": {
					"parts": [{"text": "[{\"title\":\"Plan sprint\"}]"}],
					"role": "model"
				},
				"finishReason": "STOP"
			}
		]
	}`)

	text, err := extractGeminiText(body)
	require.NoError(t, err)
	assert.Equal(t, `[{"title":"Plan sprint"}]`, text)
}

func TestExtractGeminiTextMissing(t *testing.T) {
	for _, body := range []string{
		`{}`,
		`{"candidates": []}`,
		`{"candidates": [{"content": {"parts": []}}]}`,
		`{"candidates": [{"content": {"parts": [{"text": ""}]}}]}`,
	} {
		_, err := extractGeminiText([]byte(body))
		assert.Error(t, err, "body %s", body)
	}
}

func TestExtractOpenAIText(t *testing.T) {
	body := []byte(`{
		"choices": [
			{
				"index": 0,
				"message": {"role": "assistant", "content": "Here you go"},
				"finish_reason": "stop"
			}
		]
	}`)

	text, err := extractOpenAIText(body)
	require.NoError(t, err)
	assert.Equal(t, "Here you go", text)
}

func TestExtractOpenAITextMissing(t *testing.T) {
	_, err := extractOpenAIText([]byte(`{"choices": []}`))
	assert.Error(t, err)
}

func TestGeneratorNilWithoutKey(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("OPENAI_API_KEY", "")

	assert.Nil(t, Generator(Gemini))
	assert.Nil(t, Generator(OpenAI))
	assert.Nil(t, Generator(Model("unknown")))
}

func TestGeneratorPresentWithKey(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "test-key")
	assert.NotNil(t, Generator(Gemini))
}

func TestDefaultModel(t *testing.T) {
	t.Setenv("AI_MODEL", "")
	assert.Equal(t, Gemini, DefaultModel())

	t.Setenv("AI_MODEL", "openai")
	assert.Equal(t, OpenAI, DefaultModel())
}
