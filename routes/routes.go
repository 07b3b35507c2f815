package routes

import "net/http"

// RegisterAllRoutes registers all application routes
func RegisterAllRoutes(mux *http.ServeMux) {
	RegisterTaskRoutes(mux)
	RegisterTeamRoutes(mux)
	RegisterEventRoutes(mux)
	RegisterInsightRoutes(mux)
}
