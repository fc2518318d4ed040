package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/pdash/portfolio-dashboard/internal/model"
)

// CreateInvitation records a share invitation and returns its id.
// Generates a UUID if the id is empty.
func (s *SQLiteStore) CreateInvitation(ctx context.Context, inv model.ShareInvitation) (string, error) {
	if inv.ID == "" {
		inv.ID = uuid.New().String()
	}
	inv.SentAt = time.Now().UTC()

	_, err := s.db.NamedExecContext(ctx, `
		INSERT INTO share_invitations (id, project_id, email, role, message, inviter, sent_at)
		VALUES (:id, :project_id, :email, :role, :message, :inviter, :sent_at)`, inv)
	if err != nil {
		return "", fmt.Errorf("creating invitation for project %s: %w",
			inv.ProjectID, classifyError(err))
	}
	return inv.ID, nil
}

// GetInvitationsForProject retrieves all invitations sent for a project,
// most recent first.
func (s *SQLiteStore) GetInvitationsForProject(ctx context.Context, projectID string) ([]model.ShareInvitation, error) {
	var invitations []model.ShareInvitation
	err := s.db.SelectContext(ctx, &invitations, `
		SELECT * FROM share_invitations
		WHERE project_id = ?
		ORDER BY sent_at DESC`, projectID)
	if err != nil {
		return nil, fmt.Errorf("querying invitations for project %s: %w", projectID, err)
	}
	return invitations, nil
}
