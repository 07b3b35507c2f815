package routes

import (
	"net/http"

	"clementus360/taskflow/handlers"
)

// RegisterEventRoutes registers all calendar-event routes
func RegisterEventRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /events/create", handlers.CreateEventHandler)
	mux.HandleFunc("GET /events", handlers.GetEventsHandler)
	mux.HandleFunc("PATCH /events/update", handlers.UpdateEventHandler)
	mux.HandleFunc("DELETE /events/delete", handlers.DeleteEventHandler)
}
