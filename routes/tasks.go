package routes

import (
	"net/http"

	"clementus360/taskflow/handlers"
)

// RegisterTaskRoutes registers all task- and board-related routes
func RegisterTaskRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /tasks/create", handlers.CreateTaskHandler)
	mux.HandleFunc("PATCH /tasks/update", handlers.UpdateTaskHandler)
	mux.HandleFunc("DELETE /tasks/delete", handlers.DeleteTaskHandler)
	mux.HandleFunc("GET /tasks", handlers.GetTasksHandler)
	mux.HandleFunc("GET /task", handlers.GetSingleTaskHandler)

	// Kanban board views
	mux.HandleFunc("GET /board", handlers.GetBoardHandler)
	mux.HandleFunc("PATCH /board/move", handlers.MoveTaskHandler)
}
