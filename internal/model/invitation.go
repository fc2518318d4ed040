package model

import "time"

// Invitation role constants.
const (
	InviteRoleViewer = "viewer"
	InviteRoleEditor = "editor"
)

// ShareInvitation records a project-sharing email sent to a collaborator.
type ShareInvitation struct {
	ID        string    `json:"id" db:"id"`
	ProjectID string    `json:"projectId" db:"project_id"`
	Email     string    `json:"email" db:"email"`
	Role      string    `json:"role" db:"role"`
	Message   string    `json:"message" db:"message"`
	Inviter   string    `json:"inviter" db:"inviter"`
	SentAt    time.Time `json:"sentAt" db:"sent_at"`
}
