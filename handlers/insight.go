package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"clementus360/taskflow/config"
	"clementus360/taskflow/insight"
	"clementus360/taskflow/llm"
	"clementus360/taskflow/supabase"
	"clementus360/taskflow/types"
)

// GetInsightsHandler aggregates the caller's task/team/activity state and
// returns 2-4 productivity insights. AI involvement is best-effort; the
// response is always a usable list.
func GetInsightsHandler(w http.ResponseWriter, r *http.Request) {
	supabaseClient, userId, err := supabase.SupabaseClientFromRequest(r)
	if err != nil {
		config.Logger.Error("Failed to create Supabase client: ", err)
		writeError(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	userCtx, err := supabase.FetchUserTaskContext(supabaseClient, userId)
	if err != nil {
		config.Logger.Error("Failed to fetch user context: ", err)
		writeError(w, "Failed to fetch user context", http.StatusInternalServerError)
		return
	}

	aggregated := insight.BuildContext(userCtx.DisplayName, userCtx.Tasks, userCtx.Memberships, userCtx.Activities)
	insights := insight.SynthesizeInsights(aggregated, llm.Generator(llm.DefaultModel()))

	go func() {
		if err := supabase.TrackUserActivity(supabaseClient, userId, config.ActivityTypeInsightsViewed, "", map[string]interface{}{
			"insight_count": len(insights),
		}); err != nil {
			config.Logger.Warn("TrackUserActivity failed: ", err)
		}
	}()

	writeJSON(w, http.StatusOK, types.InsightsResponse{
		Success:  true,
		Insights: insights,
	})
}

// BreakdownHandler decomposes a free-text description into 1-8 task
// drafts, optionally saving them as AI-suggested tasks.
func BreakdownHandler(w http.ResponseWriter, r *http.Request) {
	var req types.BreakdownRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "Invalid JSON body", http.StatusBadRequest)
		return
	}

	if strings.TrimSpace(req.Description) == "" {
		writeError(w, "Missing description", http.StatusBadRequest)
		return
	}

	supabaseClient, userId, err := supabase.SupabaseClientFromRequest(r)
	if err != nil {
		config.Logger.Error("Failed to create Supabase client: ", err)
		writeError(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	drafts := insight.DecomposeTasks(req.Description, llm.Generator(llm.DefaultModel()))

	saved := false
	if req.Save {
		if err := supabase.SaveDrafts(supabaseClient, userId, drafts); err != nil {
			config.Logger.Error("Failed to save drafts: ", err)
			writeError(w, "Failed to save tasks", http.StatusInternalServerError)
			return
		}
		saved = true
	}

	go func() {
		if err := supabase.TrackUserActivity(supabaseClient, userId, config.ActivityTypeTasksCreated, req.Description, map[string]interface{}{
			"task_count":   len(drafts),
			"ai_suggested": true,
			"saved":        saved,
		}); err != nil {
			config.Logger.Warn("TrackUserActivity failed: ", err)
		}
	}()

	writeJSON(w, http.StatusOK, types.BreakdownResponse{
		Success: true,
		Drafts:  drafts,
		Saved:   saved,
	})
}
