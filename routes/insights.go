package routes

import (
	"net/http"

	"clementus360/taskflow/handlers"
)

// RegisterInsightRoutes registers the AI-assisted routes
func RegisterInsightRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /insights", handlers.GetInsightsHandler)
	mux.HandleFunc("POST /tasks/breakdown", handlers.BreakdownHandler)
}
