package supabase

import (
	"encoding/json"
	"fmt"
	"time"

	"clementus360/taskflow/config"
	"clementus360/taskflow/types"

	"github.com/supabase-community/postgrest-go"
	"github.com/supabase-community/supabase-go"
)

func InsertAndReturnTask(client *supabase.Client, task types.Task) (types.Task, error) {
	if task.Status == "" {
		task.Status = config.StatusTodo
	}
	if task.Priority == "" {
		task.Priority = config.PriorityMedium
	}
	if task.CreatedAt.IsZero() {
		task.CreatedAt = time.Now()
	}

	resp, _, err := client.From("tasks").Insert(task, false, "", "representation", "").Execute()
	if err != nil {
		return types.Task{}, fmt.Errorf("failed to insert task: %w", err)
	}

	var created []types.Task
	if err := json.Unmarshal(resp, &created); err != nil {
		return types.Task{}, fmt.Errorf("failed to parse inserted task: %w", err)
	}
	if len(created) == 0 {
		return types.Task{}, fmt.Errorf("insert returned no task")
	}
	return created[0], nil
}

func UpdateTask(client *supabase.Client, taskID, userID string, updates map[string]interface{}) (types.Task, error) {
	updates["updated_at"] = time.Now()

	resp, _, err := client.From("tasks").
		Update(updates, "representation", "").
		Eq("id", taskID).
		Eq("user_id", userID).
		Execute()

	if err != nil {
		return types.Task{}, fmt.Errorf("failed to update task: %w", err)
	}

	var updated []types.Task
	if err := json.Unmarshal(resp, &updated); err != nil {
		return types.Task{}, fmt.Errorf("failed to parse update result: %w", err)
	}
	if len(updated) == 0 {
		return types.Task{}, fmt.Errorf("no task found or updated")
	}
	return updated[0], nil
}

func DeleteTask(client *supabase.Client, taskID, userID string) error {
	_, _, err := client.From("tasks").
		Delete("", "").
		Eq("id", taskID).
		Eq("user_id", userID).
		Execute()

	if err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	return nil
}

func GetTasks(client *supabase.Client, userID, status, priority string, limit, offset int, search, sortBy, sortOrder string) ([]types.Task, int64, error) {
	query := client.From("tasks").
		Select("*", "exact", false).
		Eq("user_id", userID)

	if status != "" {
		query = query.Eq("status", status)
	}
	if priority != "" {
		query = query.Eq("priority", priority)
	}
	if search != "" {
		query = query.Ilike("title", "%"+search+"%")
	}

	if sortBy == "" {
		sortBy = "created_at"
	}
	ascending := sortOrder == "asc"
	query = query.Order(sortBy, &postgrest.OrderOpts{Ascending: ascending}).
		Range(offset, offset+limit-1, "")

	resp, total, err := query.Execute()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to fetch tasks: %w", err)
	}

	var tasks []types.Task
	if err := json.Unmarshal(resp, &tasks); err != nil {
		return nil, 0, fmt.Errorf("failed to decode task data: %w", err)
	}

	return tasks, total, nil
}

func GetSingleTask(client *supabase.Client, userID, taskID string) (types.Task, error) {
	resp, _, err := client.From("tasks").
		Select("*", "", false).
		Eq("id", taskID).
		Eq("user_id", userID).
		Single().
		Execute()

	if err != nil {
		return types.Task{}, fmt.Errorf("failed to fetch task: %w", err)
	}

	var task types.Task
	if err := json.Unmarshal(resp, &task); err != nil {
		return types.Task{}, fmt.Errorf("failed to decode task data: %w", err)
	}
	return task, nil
}

// GetAllUserTasks fetches the caller's full task list for aggregation.
func GetAllUserTasks(client *supabase.Client, userID string) ([]types.Task, error) {
	resp, _, err := client.From("tasks").
		Select("*", "", false).
		Eq("user_id", userID).
		Order("created_at", &postgrest.OrderOpts{Ascending: false}).
		Execute()

	if err != nil {
		return nil, fmt.Errorf("failed to fetch tasks: %w", err)
	}

	var tasks []types.Task
	if err := json.Unmarshal(resp, &tasks); err != nil {
		return nil, fmt.Errorf("failed to decode task data: %w", err)
	}
	return tasks, nil
}

// SaveDrafts persists decomposed task drafts as AI-suggested todo tasks.
func SaveDrafts(client *supabase.Client, userID string, drafts []types.TaskDraft) error {
	tasks := make([]types.Task, 0, len(drafts))
	for _, d := range drafts {
		tasks = append(tasks, types.Task{
			UserID:         userID,
			Title:          d.Title,
			Description:    d.Description,
			Status:         config.StatusTodo,
			Priority:       d.Priority,
			EstimatedHours: d.EstimatedHours,
			AISuggested:    true,
			CreatedAt:      time.Now(),
		})
	}

	_, _, err := client.From("tasks").Insert(tasks, false, "", "", "").Execute()
	if err != nil {
		return fmt.Errorf("failed to save task drafts: %w", err)
	}
	return nil
}

// MoveTask changes a task's board column.
func MoveTask(client *supabase.Client, taskID, userID, status string) (types.Task, error) {
	return UpdateTask(client, taskID, userID, map[string]interface{}{
		"status": status,
	})
}
