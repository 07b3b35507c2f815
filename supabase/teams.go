package supabase

import (
	"encoding/json"
	"fmt"
	"time"

	"clementus360/taskflow/config"
	"clementus360/taskflow/types"

	"github.com/google/uuid"
	"github.com/supabase-community/postgrest-go"
	"github.com/supabase-community/supabase-go"
)

// CreateTeam inserts a team and makes the creator its owner member.
func CreateTeam(client *supabase.Client, userID, name string) (types.Team, error) {
	team := types.Team{
		OwnerID: userID,
		Name:    name,
	}

	resp, _, err := client.From("teams").Insert(team, false, "", "representation", "").Execute()
	if err != nil {
		return types.Team{}, fmt.Errorf("failed to insert team: %w", err)
	}

	var created []types.Team
	if err := json.Unmarshal(resp, &created); err != nil {
		return types.Team{}, fmt.Errorf("failed to parse inserted team: %w", err)
	}
	if len(created) == 0 {
		return types.Team{}, fmt.Errorf("insert returned no team")
	}

	membership := types.TeamMembership{
		TeamID:   created[0].ID,
		UserID:   userID,
		Role:     "owner",
		JoinedAt: time.Now(),
	}
	if _, _, err := client.From("team_members").Insert(membership, false, "", "", "").Execute(); err != nil {
		return types.Team{}, fmt.Errorf("failed to insert owner membership: %w", err)
	}

	return created[0], nil
}

// GetTeamsForUser lists the teams the user belongs to.
func GetTeamsForUser(client *supabase.Client, userID string) ([]types.Team, error) {
	memberships, err := GetUserMemberships(client, userID)
	if err != nil {
		return nil, err
	}
	if len(memberships) == 0 {
		return nil, nil
	}

	teamIDs := make([]string, 0, len(memberships))
	for _, m := range memberships {
		teamIDs = append(teamIDs, m.TeamID)
	}

	resp, _, err := client.From("teams").
		Select("*", "", false).
		In("id", teamIDs).
		Order("created_at", &postgrest.OrderOpts{Ascending: false}).
		Execute()

	if err != nil {
		return nil, fmt.Errorf("failed to fetch teams: %w", err)
	}

	var teams []types.Team
	if err := json.Unmarshal(resp, &teams); err != nil {
		return nil, fmt.Errorf("failed to decode team data: %w", err)
	}
	return teams, nil
}

// GetUserMemberships returns the membership rows for the user themselves.
func GetUserMemberships(client *supabase.Client, userID string) ([]types.TeamMembership, error) {
	resp, _, err := client.From("team_members").
		Select("*", "", false).
		Eq("user_id", userID).
		Execute()

	if err != nil {
		return nil, fmt.Errorf("failed to fetch memberships: %w", err)
	}

	var memberships []types.TeamMembership
	if err := json.Unmarshal(resp, &memberships); err != nil {
		return nil, fmt.Errorf("failed to decode membership data: %w", err)
	}
	return memberships, nil
}

// GetTeamMembers lists every member of one team.
func GetTeamMembers(client *supabase.Client, teamID string) ([]types.TeamMembership, error) {
	resp, _, err := client.From("team_members").
		Select("*", "", false).
		Eq("team_id", teamID).
		Order("joined_at", &postgrest.OrderOpts{Ascending: true}).
		Execute()

	if err != nil {
		return nil, fmt.Errorf("failed to fetch team members: %w", err)
	}

	var members []types.TeamMembership
	if err := json.Unmarshal(resp, &members); err != nil {
		return nil, fmt.Errorf("failed to decode member data: %w", err)
	}
	return members, nil
}

// GetTeammates returns the membership rows of everyone who shares a team
// with the user, the user included. Used for team-size aggregation.
func GetTeammates(client *supabase.Client, userID string) ([]types.TeamMembership, error) {
	own, err := GetUserMemberships(client, userID)
	if err != nil {
		return nil, err
	}
	if len(own) == 0 {
		return nil, nil
	}

	teamIDs := make([]string, 0, len(own))
	for _, m := range own {
		teamIDs = append(teamIDs, m.TeamID)
	}

	resp, _, err := client.From("team_members").
		Select("*", "", false).
		In("team_id", teamIDs).
		Execute()

	if err != nil {
		return nil, fmt.Errorf("failed to fetch teammates: %w", err)
	}

	var members []types.TeamMembership
	if err := json.Unmarshal(resp, &members); err != nil {
		return nil, fmt.Errorf("failed to decode teammate data: %w", err)
	}

	// Distinct users only; one person can share several teams with the caller.
	seen := make(map[string]bool, len(members))
	distinct := members[:0]
	for _, m := range members {
		if seen[m.UserID] {
			continue
		}
		seen[m.UserID] = true
		distinct = append(distinct, m)
	}
	return distinct, nil
}

// CreateInvitation mints a single-use invitation code for a team.
func CreateInvitation(client *supabase.Client, teamID, inviterID string) (types.Invitation, error) {
	invitation := types.Invitation{
		TeamID:    teamID,
		InviterID: inviterID,
		Code:      uuid.New().String(),
		ExpiresAt: time.Now().AddDate(0, 0, config.InvitationTTLDays),
	}

	resp, _, err := client.From("invitations").Insert(invitation, false, "", "representation", "").Execute()
	if err != nil {
		return types.Invitation{}, fmt.Errorf("failed to insert invitation: %w", err)
	}

	var created []types.Invitation
	if err := json.Unmarshal(resp, &created); err != nil {
		return types.Invitation{}, fmt.Errorf("failed to parse inserted invitation: %w", err)
	}
	if len(created) == 0 {
		return types.Invitation{}, fmt.Errorf("insert returned no invitation")
	}
	return created[0], nil
}

// AcceptInvitation redeems an invitation code and adds the user to the team.
func AcceptInvitation(client *supabase.Client, code, userID string) (types.TeamMembership, error) {
	resp, _, err := client.From("invitations").
		Select("*", "", false).
		Eq("code", code).
		Eq("accepted", "false").
		Single().
		Execute()

	if err != nil {
		return types.TeamMembership{}, fmt.Errorf("invitation not found: %w", err)
	}

	var invitation types.Invitation
	if err := json.Unmarshal(resp, &invitation); err != nil {
		return types.TeamMembership{}, fmt.Errorf("failed to decode invitation: %w", err)
	}

	if time.Now().After(invitation.ExpiresAt) {
		return types.TeamMembership{}, fmt.Errorf("invitation has expired")
	}

	membership := types.TeamMembership{
		TeamID:   invitation.TeamID,
		UserID:   userID,
		Role:     "member",
		JoinedAt: time.Now(),
	}

	memberResp, _, err := client.From("team_members").Insert(membership, false, "", "representation", "").Execute()
	if err != nil {
		return types.TeamMembership{}, fmt.Errorf("failed to insert membership: %w", err)
	}

	var created []types.TeamMembership
	if err := json.Unmarshal(memberResp, &created); err != nil {
		return types.TeamMembership{}, fmt.Errorf("failed to parse membership: %w", err)
	}
	if len(created) == 0 {
		return types.TeamMembership{}, fmt.Errorf("insert returned no membership")
	}

	_, _, err = client.From("invitations").
		Update(map[string]interface{}{"accepted": true}, "", "").
		Eq("id", invitation.ID).
		Execute()
	if err != nil {
		config.Logger.Warn("Failed to mark invitation accepted: ", err)
	}

	return created[0], nil
}
