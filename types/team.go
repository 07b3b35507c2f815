package types

import "time"

type Team struct {
	ID        string    `json:"id,omitempty"` // <-- omitempty is critical
	OwnerID   string    `json:"owner_id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at,omitempty"`
}

type TeamMembership struct {
	ID       string    `json:"id,omitempty"`
	TeamID   string    `json:"team_id"`
	UserID   string    `json:"user_id"`
	Role     string    `json:"role"` // owner | member
	JoinedAt time.Time `json:"joined_at,omitempty"`
}

type Invitation struct {
	ID        string    `json:"id,omitempty"`
	TeamID    string    `json:"team_id"`
	InviterID string    `json:"inviter_id"`
	Code      string    `json:"code"`
	ExpiresAt time.Time `json:"expires_at"`
	Accepted  bool      `json:"accepted"`
	CreatedAt time.Time `json:"created_at,omitempty"`
}

type Profile struct {
	ID          string `json:"id,omitempty"`
	UserID      string `json:"user_id"`
	DisplayName string `json:"display_name"`
}

type CreateTeamRequest struct {
	Name string `json:"name" validate:"required,min=1,max=120"`
}

type InviteRequest struct {
	TeamID string `json:"team_id" validate:"required,uuid4"`
}

type JoinTeamRequest struct {
	Code string `json:"code" validate:"required,uuid4"`
}

type TeamResponse struct {
	Success      bool   `json:"success"`
	Team         Team   `json:"team,omitempty"`
	ErrorMessage string `json:"error,omitempty"`
}

type GetTeamsResponse struct {
	Success      bool   `json:"success"`
	Teams        []Team `json:"teams,omitempty"`
	ErrorMessage string `json:"error,omitempty"`
}

type InvitationResponse struct {
	Success      bool       `json:"success"`
	Invitation   Invitation `json:"invitation,omitempty"`
	ErrorMessage string     `json:"error,omitempty"`
}

type MembersResponse struct {
	Success      bool             `json:"success"`
	Members      []TeamMembership `json:"members,omitempty"`
	ErrorMessage string           `json:"error,omitempty"`
}
