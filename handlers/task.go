package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"clementus360/taskflow/config"
	"clementus360/taskflow/supabase"
	"clementus360/taskflow/types"

	"github.com/google/uuid"
)

func CreateTaskHandler(w http.ResponseWriter, r *http.Request) {
	var req types.CreateTaskRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.Logger.Error("Failed to decode task JSON: ", err)
		writeError(w, "Invalid JSON body", http.StatusBadRequest)
		return
	}

	if err := validate.Struct(req); err != nil {
		config.Logger.Error("Task validation failed: ", err)
		writeError(w, "Invalid task payload", http.StatusBadRequest)
		return
	}

	supabaseClient, userId, err := supabase.SupabaseClientFromRequest(r)
	if err != nil {
		config.Logger.Error("Failed to create Supabase client: ", err)
		writeError(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	task := types.Task{
		UserID:         userId,
		TeamID:         req.TeamID,
		Title:          req.Title,
		Description:    req.Description,
		Status:         req.Status,
		Priority:       req.Priority,
		DueDate:        req.DueDate,
		EstimatedHours: req.EstimatedHours,
	}

	savedTask, err := supabase.InsertAndReturnTask(supabaseClient, task)
	if err != nil {
		config.Logger.Error("Failed to save task: ", err)
		writeError(w, "Failed to create task", http.StatusInternalServerError)
		return
	}

	go func() {
		if err := supabase.TrackUserActivity(supabaseClient, userId, config.ActivityTypeTaskCreated, savedTask.Title, map[string]interface{}{
			"task_id":      savedTask.ID,
			"has_due_date": savedTask.DueDate != nil,
		}); err != nil {
			config.Logger.Warn("TrackUserActivity failed: ", err)
		}
	}()

	writeJSON(w, http.StatusCreated, types.TaskResponse{
		Success: true,
		Task:    savedTask,
	})
}

func UpdateTaskHandler(w http.ResponseWriter, r *http.Request) {
	taskID := r.URL.Query().Get("id")
	if taskID == "" {
		writeError(w, "Missing task ID", http.StatusBadRequest)
		return
	}
	if _, err := uuid.Parse(taskID); err != nil {
		config.Logger.Error("Invalid task ID format: ", err)
		writeError(w, "Invalid task ID", http.StatusBadRequest)
		return
	}

	var updates map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&updates); err != nil || len(updates) == 0 {
		config.Logger.Error("Failed to decode update JSON: ", err)
		writeError(w, "Invalid or empty update payload", http.StatusBadRequest)
		return
	}

	client, userID, err := supabase.SupabaseClientFromRequest(r)
	if err != nil {
		config.Logger.Error("Failed to create Supabase client: ", err)
		writeError(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	updatedTask, err := supabase.UpdateTask(client, taskID, userID, updates)
	if err != nil {
		config.Logger.Error("Failed to update task: ", err)
		writeJSON(w, http.StatusInternalServerError, types.TaskResponse{
			Success:      false,
			ErrorMessage: err.Error(),
		})
		return
	}

	activityType := config.ActivityTypeTaskUpdated
	if status, ok := updates["status"].(string); ok && (status == config.StatusCompleted || status == config.StatusDone) {
		activityType = config.ActivityTypeTaskCompleted
	}
	go func() {
		if err := supabase.TrackUserActivity(client, userID, activityType, updatedTask.Title, map[string]interface{}{
			"task_id": updatedTask.ID,
		}); err != nil {
			config.Logger.Warn("TrackUserActivity failed: ", err)
		}
	}()

	writeJSON(w, http.StatusOK, types.TaskResponse{
		Success: true,
		Task:    updatedTask,
	})
}

func DeleteTaskHandler(w http.ResponseWriter, r *http.Request) {
	taskID := r.URL.Query().Get("id")
	if taskID == "" {
		writeError(w, "Missing task ID", http.StatusBadRequest)
		return
	}

	supabaseClient, userId, err := supabase.SupabaseClientFromRequest(r)
	if err != nil {
		config.Logger.Error("Failed to create Supabase client: ", err)
		writeError(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	if err := supabase.DeleteTask(supabaseClient, taskID, userId); err != nil {
		config.Logger.Error("Failed to delete task: ", err)
		writeError(w, "Could not delete task", http.StatusInternalServerError)
		return
	}

	go func() {
		if err := supabase.TrackUserActivity(supabaseClient, userId, config.ActivityTypeTaskDeleted, taskID, nil); err != nil {
			config.Logger.Warn("TrackUserActivity failed: ", err)
		}
	}()

	writeJSON(w, http.StatusOK, types.DeleteTaskResponse{
		Success: true,
		Message: "Task deleted successfully",
	})
}

func GetTasksHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	status := q.Get("status")
	priority := q.Get("priority")
	limitStr := q.Get("limit")
	offsetStr := q.Get("offset")
	search := q.Get("search")
	sortBy := q.Get("sort_by")       // e.g., "created_at", "title", "status"
	sortOrder := q.Get("sort_order") // "asc" or "desc"

	limit := 20 // default
	offset := 0
	var err error

	if limitStr != "" {
		limit, err = strconv.Atoi(limitStr)
		if err != nil || limit < 1 {
			config.Logger.Error("Invalid limit value: ", err)
			writeError(w, "Invalid limit value", http.StatusBadRequest)
			return
		}
	}

	if offsetStr != "" {
		offset, err = strconv.Atoi(offsetStr)
		if err != nil || offset < 0 {
			config.Logger.Error("Invalid offset value: ", err)
			writeError(w, "Invalid offset value", http.StatusBadRequest)
			return
		}
	}

	supabaseClient, userId, err := supabase.SupabaseClientFromRequest(r)
	if err != nil {
		config.Logger.Error("Failed to create Supabase client: ", err)
		writeError(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	tasks, total, err := supabase.GetTasks(supabaseClient, userId, status, priority, limit, offset, search, sortBy, sortOrder)
	if err != nil {
		config.Logger.Error("Failed to fetch tasks: ", err)
		writeError(w, "Failed to fetch tasks", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, types.GetTasksResponse{
		Success: true,
		Tasks:   tasks,
		Limit:   limit,
		Offset:  offset,
		Total:   int(total),
	})
}

// get a single task by ID
func GetSingleTaskHandler(w http.ResponseWriter, r *http.Request) {
	taskID := r.URL.Query().Get("id")
	if taskID == "" {
		writeError(w, "Missing task ID", http.StatusBadRequest)
		return
	}

	supabaseClient, userId, err := supabase.SupabaseClientFromRequest(r)
	if err != nil {
		config.Logger.Error("Failed to create Supabase client: ", err)
		writeError(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	task, err := supabase.GetSingleTask(supabaseClient, userId, taskID)
	if err != nil {
		config.Logger.Error("Failed to fetch task: ", err)
		writeError(w, "Failed to fetch task", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, types.TaskResponse{
		Success: true,
		Task:    task,
	})
}
