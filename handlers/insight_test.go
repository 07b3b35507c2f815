package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"clementus360/taskflow/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBreakdownHandlerInvalidJSON(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/tasks/breakdown", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()

	BreakdownHandler(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestBreakdownHandlerMissingDescription(t *testing.T) {
	for _, body := range []string{`{}`, `{"description": "   "}`} {
		req := httptest.NewRequest(http.MethodPost, "/tasks/breakdown", strings.NewReader(body))
		rec := httptest.NewRecorder()

		BreakdownHandler(rec, req)

		require.Equal(t, http.StatusBadRequest, rec.Code, "body %s", body)

		var resp types.BreakdownResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.False(t, resp.Success)
	}
}

func TestBreakdownHandlerUnauthorized(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/tasks/breakdown", strings.NewReader(`{"description":"Plan the launch"}`))
	rec := httptest.NewRecorder()

	BreakdownHandler(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestGetInsightsHandlerUnauthorized(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/insights", nil)
	rec := httptest.NewRecorder()

	GetInsightsHandler(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
