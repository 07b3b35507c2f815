package handlers

import (
	"encoding/json"
	"net/http"

	"clementus360/taskflow/config"
	"clementus360/taskflow/supabase"
	"clementus360/taskflow/types"
)

func CreateTeamHandler(w http.ResponseWriter, r *http.Request) {
	var req types.CreateTeamRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "Invalid JSON body", http.StatusBadRequest)
		return
	}

	if err := validate.Struct(req); err != nil {
		config.Logger.Error("Team validation failed: ", err)
		writeError(w, "Invalid team payload", http.StatusBadRequest)
		return
	}

	supabaseClient, userId, err := supabase.SupabaseClientFromRequest(r)
	if err != nil {
		config.Logger.Error("Failed to create Supabase client: ", err)
		writeError(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	team, err := supabase.CreateTeam(supabaseClient, userId, req.Name)
	if err != nil {
		config.Logger.Error("Failed to create team: ", err)
		writeError(w, "Failed to create team", http.StatusInternalServerError)
		return
	}

	go func() {
		if err := supabase.TrackUserActivity(supabaseClient, userId, config.ActivityTypeTeamCreated, team.Name, map[string]interface{}{
			"team_id": team.ID,
		}); err != nil {
			config.Logger.Warn("TrackUserActivity failed: ", err)
		}
	}()

	writeJSON(w, http.StatusCreated, types.TeamResponse{
		Success: true,
		Team:    team,
	})
}

func GetTeamsHandler(w http.ResponseWriter, r *http.Request) {
	supabaseClient, userId, err := supabase.SupabaseClientFromRequest(r)
	if err != nil {
		config.Logger.Error("Failed to create Supabase client: ", err)
		writeError(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	teams, err := supabase.GetTeamsForUser(supabaseClient, userId)
	if err != nil {
		config.Logger.Error("Failed to fetch teams: ", err)
		writeError(w, "Failed to fetch teams", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, types.GetTeamsResponse{
		Success: true,
		Teams:   teams,
	})
}

func InviteHandler(w http.ResponseWriter, r *http.Request) {
	var req types.InviteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "Invalid JSON body", http.StatusBadRequest)
		return
	}

	if err := validate.Struct(req); err != nil {
		config.Logger.Error("Invite validation failed: ", err)
		writeError(w, "Invalid invite payload", http.StatusBadRequest)
		return
	}

	supabaseClient, userId, err := supabase.SupabaseClientFromRequest(r)
	if err != nil {
		config.Logger.Error("Failed to create Supabase client: ", err)
		writeError(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	invitation, err := supabase.CreateInvitation(supabaseClient, req.TeamID, userId)
	if err != nil {
		config.Logger.Error("Failed to create invitation: ", err)
		writeError(w, "Failed to create invitation", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, types.InvitationResponse{
		Success:    true,
		Invitation: invitation,
	})
}

func JoinTeamHandler(w http.ResponseWriter, r *http.Request) {
	var req types.JoinTeamRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "Invalid JSON body", http.StatusBadRequest)
		return
	}

	if err := validate.Struct(req); err != nil {
		config.Logger.Error("Join validation failed: ", err)
		writeError(w, "Invalid join payload", http.StatusBadRequest)
		return
	}

	supabaseClient, userId, err := supabase.SupabaseClientFromRequest(r)
	if err != nil {
		config.Logger.Error("Failed to create Supabase client: ", err)
		writeError(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	membership, err := supabase.AcceptInvitation(supabaseClient, req.Code, userId)
	if err != nil {
		config.Logger.Error("Failed to accept invitation: ", err)
		writeError(w, "Could not join team", http.StatusBadRequest)
		return
	}

	go func() {
		if err := supabase.TrackUserActivity(supabaseClient, userId, config.ActivityTypeMemberJoined, membership.TeamID, nil); err != nil {
			config.Logger.Warn("TrackUserActivity failed: ", err)
		}
	}()

	writeJSON(w, http.StatusOK, types.MembersResponse{
		Success: true,
		Members: []types.TeamMembership{membership},
	})
}

func GetMembersHandler(w http.ResponseWriter, r *http.Request) {
	teamID := r.URL.Query().Get("team_id")
	if teamID == "" {
		writeError(w, "Missing team ID", http.StatusBadRequest)
		return
	}

	supabaseClient, _, err := supabase.SupabaseClientFromRequest(r)
	if err != nil {
		config.Logger.Error("Failed to create Supabase client: ", err)
		writeError(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	members, err := supabase.GetTeamMembers(supabaseClient, teamID)
	if err != nil {
		config.Logger.Error("Failed to fetch members: ", err)
		writeError(w, "Failed to fetch members", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, types.MembersResponse{
		Success: true,
		Members: members,
	})
}
