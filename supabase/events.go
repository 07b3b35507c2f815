package supabase

import (
	"encoding/json"
	"fmt"
	"time"

	"clementus360/taskflow/types"

	"github.com/supabase-community/postgrest-go"
	"github.com/supabase-community/supabase-go"
)

func InsertAndReturnEvent(client *supabase.Client, event types.Event) (types.Event, error) {
	if event.CreatedAt.IsZero() {
		event.CreatedAt = time.Now()
	}

	resp, _, err := client.From("events").Insert(event, false, "", "representation", "").Execute()
	if err != nil {
		return types.Event{}, fmt.Errorf("failed to insert event: %w", err)
	}

	var created []types.Event
	if err := json.Unmarshal(resp, &created); err != nil {
		return types.Event{}, fmt.Errorf("failed to parse inserted event: %w", err)
	}
	if len(created) == 0 {
		return types.Event{}, fmt.Errorf("insert returned no event")
	}
	return created[0], nil
}

func UpdateEvent(client *supabase.Client, eventID, userID string, updates map[string]interface{}) (types.Event, error) {
	resp, _, err := client.From("events").
		Update(updates, "representation", "").
		Eq("id", eventID).
		Eq("user_id", userID).
		Execute()

	if err != nil {
		return types.Event{}, fmt.Errorf("failed to update event: %w", err)
	}

	var updated []types.Event
	if err := json.Unmarshal(resp, &updated); err != nil {
		return types.Event{}, fmt.Errorf("failed to parse update result: %w", err)
	}
	if len(updated) == 0 {
		return types.Event{}, fmt.Errorf("no event found or updated")
	}
	return updated[0], nil
}

func DeleteEvent(client *supabase.Client, eventID, userID string) error {
	_, _, err := client.From("events").
		Delete("", "").
		Eq("id", eventID).
		Eq("user_id", userID).
		Execute()

	if err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}
	return nil
}

// GetEvents lists the user's events, optionally restricted to a time range.
func GetEvents(client *supabase.Client, userID string, from, to *time.Time) ([]types.Event, error) {
	query := client.From("events").
		Select("*", "", false).
		Eq("user_id", userID)

	if from != nil {
		query = query.Gte("starts_at", from.Format(time.RFC3339))
	}
	if to != nil {
		query = query.Lte("starts_at", to.Format(time.RFC3339))
	}

	resp, _, err := query.
		Order("starts_at", &postgrest.OrderOpts{Ascending: true}).
		Execute()

	if err != nil {
		return nil, fmt.Errorf("failed to fetch events: %w", err)
	}

	var events []types.Event
	if err := json.Unmarshal(resp, &events); err != nil {
		return nil, fmt.Errorf("failed to decode event data: %w", err)
	}
	return events, nil
}
