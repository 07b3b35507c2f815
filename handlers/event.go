package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"clementus360/taskflow/config"
	"clementus360/taskflow/supabase"
	"clementus360/taskflow/types"

	"github.com/google/uuid"
)

func CreateEventHandler(w http.ResponseWriter, r *http.Request) {
	var req types.CreateEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "Invalid JSON body", http.StatusBadRequest)
		return
	}

	if err := validate.Struct(req); err != nil {
		config.Logger.Error("Event validation failed: ", err)
		writeError(w, "Invalid event payload", http.StatusBadRequest)
		return
	}

	supabaseClient, userId, err := supabase.SupabaseClientFromRequest(r)
	if err != nil {
		config.Logger.Error("Failed to create Supabase client: ", err)
		writeError(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	event := types.Event{
		UserID:      userId,
		TeamID:      req.TeamID,
		Title:       req.Title,
		Description: req.Description,
		StartsAt:    req.StartsAt,
		EndsAt:      req.EndsAt,
	}

	savedEvent, err := supabase.InsertAndReturnEvent(supabaseClient, event)
	if err != nil {
		config.Logger.Error("Failed to save event: ", err)
		writeError(w, "Failed to create event", http.StatusInternalServerError)
		return
	}

	go func() {
		if err := supabase.TrackUserActivity(supabaseClient, userId, config.ActivityTypeEventCreated, savedEvent.Title, map[string]interface{}{
			"event_id": savedEvent.ID,
		}); err != nil {
			config.Logger.Warn("TrackUserActivity failed: ", err)
		}
	}()

	writeJSON(w, http.StatusCreated, types.EventResponse{
		Success: true,
		Event:   savedEvent,
	})
}

func GetEventsHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var from, to *time.Time
	if fromStr := q.Get("from"); fromStr != "" {
		parsed, err := time.Parse(time.RFC3339, fromStr)
		if err != nil {
			writeError(w, "Invalid from value", http.StatusBadRequest)
			return
		}
		from = &parsed
	}
	if toStr := q.Get("to"); toStr != "" {
		parsed, err := time.Parse(time.RFC3339, toStr)
		if err != nil {
			writeError(w, "Invalid to value", http.StatusBadRequest)
			return
		}
		to = &parsed
	}

	supabaseClient, userId, err := supabase.SupabaseClientFromRequest(r)
	if err != nil {
		config.Logger.Error("Failed to create Supabase client: ", err)
		writeError(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	events, err := supabase.GetEvents(supabaseClient, userId, from, to)
	if err != nil {
		config.Logger.Error("Failed to fetch events: ", err)
		writeError(w, "Failed to fetch events", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, types.GetEventsResponse{
		Success: true,
		Events:  events,
	})
}

func UpdateEventHandler(w http.ResponseWriter, r *http.Request) {
	eventID := r.URL.Query().Get("id")
	if eventID == "" {
		writeError(w, "Missing event ID", http.StatusBadRequest)
		return
	}
	if _, err := uuid.Parse(eventID); err != nil {
		config.Logger.Error("Invalid event ID format: ", err)
		writeError(w, "Invalid event ID", http.StatusBadRequest)
		return
	}

	var updates map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&updates); err != nil || len(updates) == 0 {
		config.Logger.Error("Failed to decode update JSON: ", err)
		writeError(w, "Invalid or empty update payload", http.StatusBadRequest)
		return
	}

	supabaseClient, userId, err := supabase.SupabaseClientFromRequest(r)
	if err != nil {
		config.Logger.Error("Failed to create Supabase client: ", err)
		writeError(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	updatedEvent, err := supabase.UpdateEvent(supabaseClient, eventID, userId, updates)
	if err != nil {
		config.Logger.Error("Failed to update event: ", err)
		writeError(w, "Could not update event", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, types.EventResponse{
		Success: true,
		Event:   updatedEvent,
	})
}

func DeleteEventHandler(w http.ResponseWriter, r *http.Request) {
	eventID := r.URL.Query().Get("id")
	if eventID == "" {
		writeError(w, "Missing event ID", http.StatusBadRequest)
		return
	}

	supabaseClient, userId, err := supabase.SupabaseClientFromRequest(r)
	if err != nil {
		config.Logger.Error("Failed to create Supabase client: ", err)
		writeError(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	if err := supabase.DeleteEvent(supabaseClient, eventID, userId); err != nil {
		config.Logger.Error("Failed to delete event: ", err)
		writeError(w, "Could not delete event", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, types.DeleteEventResponse{
		Success: true,
		Message: "Event deleted successfully",
	})
}
