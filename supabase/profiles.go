package supabase

import (
	"encoding/json"
	"fmt"

	"clementus360/taskflow/types"

	"github.com/supabase-community/supabase-go"
)

// GetProfile fetches the user's display profile. Missing profiles are not
// an error; an empty profile is returned instead.
func GetProfile(client *supabase.Client, userID string) (types.Profile, error) {
	resp, _, err := client.From("profiles").
		Select("*", "", false).
		Eq("user_id", userID).
		Execute()

	if err != nil {
		return types.Profile{}, fmt.Errorf("failed to fetch profile: %w", err)
	}

	var profiles []types.Profile
	if err := json.Unmarshal(resp, &profiles); err != nil {
		return types.Profile{}, fmt.Errorf("failed to decode profile data: %w", err)
	}

	if len(profiles) > 0 {
		return profiles[0], nil
	}
	return types.Profile{UserID: userID}, nil
}
