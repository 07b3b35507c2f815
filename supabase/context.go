package supabase

import (
	"time"

	"clementus360/taskflow/config"
	"clementus360/taskflow/types"

	"github.com/supabase-community/supabase-go"
)

const (
	activityLookbackDays = 30
	activityFetchLimit   = 50
)

// UserTaskContext bundles everything the insight aggregator needs about
// one user.
type UserTaskContext struct {
	DisplayName string
	Tasks       []types.Task
	Memberships []types.TeamMembership
	Activities  []types.UserActivity
}

// FetchUserTaskContext gathers the user's tasks, teammates, recent
// activities, and display name. Partial failures are logged and leave the
// corresponding field empty rather than failing the whole fetch; insight
// generation degrades gracefully on empty input.
func FetchUserTaskContext(client *supabase.Client, userID string) (UserTaskContext, error) {
	ctx := UserTaskContext{}

	tasks, err := GetAllUserTasks(client, userID)
	if err != nil {
		config.Logger.Warn("Could not fetch tasks for context: ", err)
	}
	ctx.Tasks = tasks

	memberships, err := GetTeammates(client, userID)
	if err != nil {
		config.Logger.Warn("Could not fetch teammates for context: ", err)
	}
	ctx.Memberships = memberships

	since := time.Now().AddDate(0, 0, -activityLookbackDays)
	activities, err := GetUserActivities(client, userID, since, activityFetchLimit)
	if err != nil {
		config.Logger.Warn("Could not fetch activities for context: ", err)
	}
	ctx.Activities = activities

	profile, err := GetProfile(client, userID)
	if err != nil {
		config.Logger.Warn("Could not fetch profile for context: ", err)
	}
	ctx.DisplayName = profile.DisplayName

	return ctx, nil
}
