package handlers

import (
	"encoding/json"
	"net/http"

	"clementus360/taskflow/config"
	"clementus360/taskflow/supabase"
	"clementus360/taskflow/types"
)

// boardColumns is the fixed column order of the kanban board.
var boardColumns = []string{
	config.StatusTodo,
	config.StatusInProgress,
	config.StatusReview,
	config.StatusCompleted,
}

// GetBoardHandler returns the caller's tasks grouped into kanban columns.
func GetBoardHandler(w http.ResponseWriter, r *http.Request) {
	supabaseClient, userId, err := supabase.SupabaseClientFromRequest(r)
	if err != nil {
		config.Logger.Error("Failed to create Supabase client: ", err)
		writeError(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	tasks, err := supabase.GetAllUserTasks(supabaseClient, userId)
	if err != nil {
		config.Logger.Error("Failed to fetch tasks for board: ", err)
		writeError(w, "Failed to fetch board", http.StatusInternalServerError)
		return
	}

	grouped := make(map[string][]types.Task, len(boardColumns))
	for _, task := range tasks {
		status := task.Status
		if status == config.StatusDone {
			status = config.StatusCompleted
		}
		grouped[status] = append(grouped[status], task)
	}

	columns := make([]types.BoardColumn, 0, len(boardColumns))
	for _, status := range boardColumns {
		columns = append(columns, types.BoardColumn{
			Status: status,
			Tasks:  grouped[status],
		})
	}

	writeJSON(w, http.StatusOK, types.BoardResponse{
		Success: true,
		Columns: columns,
	})
}

// MoveTaskHandler moves a task to another board column.
func MoveTaskHandler(w http.ResponseWriter, r *http.Request) {
	var req types.MoveTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "Invalid JSON body", http.StatusBadRequest)
		return
	}

	if err := validate.Struct(req); err != nil {
		config.Logger.Error("Move validation failed: ", err)
		writeError(w, "Invalid move payload", http.StatusBadRequest)
		return
	}

	supabaseClient, userId, err := supabase.SupabaseClientFromRequest(r)
	if err != nil {
		config.Logger.Error("Failed to create Supabase client: ", err)
		writeError(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	task, err := supabase.MoveTask(supabaseClient, req.TaskID, userId, req.Status)
	if err != nil {
		config.Logger.Error("Failed to move task: ", err)
		writeError(w, "Could not move task", http.StatusInternalServerError)
		return
	}

	activityType := config.ActivityTypeTaskMoved
	if req.Status == config.StatusCompleted {
		activityType = config.ActivityTypeTaskCompleted
	}
	go func() {
		if err := supabase.TrackUserActivity(supabaseClient, userId, activityType, task.Title, map[string]interface{}{
			"task_id": task.ID,
			"status":  req.Status,
		}); err != nil {
			config.Logger.Warn("TrackUserActivity failed: ", err)
		}
	}()

	writeJSON(w, http.StatusOK, types.TaskResponse{
		Success: true,
		Task:    task,
	})
}
