package routes

import (
	"net/http"

	"clementus360/taskflow/handlers"
)

// RegisterTeamRoutes registers all team-related routes
func RegisterTeamRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /teams/create", handlers.CreateTeamHandler)
	mux.HandleFunc("GET /teams", handlers.GetTeamsHandler)
	mux.HandleFunc("GET /teams/members", handlers.GetMembersHandler)

	// Invitation flow
	mux.HandleFunc("POST /teams/invite", handlers.InviteHandler)
	mux.HandleFunc("POST /teams/join", handlers.JoinTeamHandler)
}
