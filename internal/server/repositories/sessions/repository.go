// Package sessions provides persistence for table sessions and their
// participants.
package sessions

import (
	"context"

	"github.com/dkrasnenko/sharedtab/internal/server/models"
)

// Repository is the storage contract used by the sessions service.
// Implementations return common.ErrNotFound for missing rows.
type Repository interface {
	CreateSession(ctx context.Context, session *models.Session) error
	CreateParticipant(ctx context.Context, participant *models.Participant) error

	// GetSession returns the session with its full participant list and an
	// up-to-date count of active participants.
	GetSession(ctx context.Context, sessionID string) (*models.Session, error)

	// GetSessionByCode resolves a share code among live sessions only.
	// Matching is case-insensitive.
	GetSessionByCode(ctx context.Context, code string) (*models.Session, error)

	// ListSessionsForUser returns live sessions in which the user has a
	// participant row with status pending or active.
	ListSessionsForUser(ctx context.Context, userID string) ([]*models.Session, error)

	GetParticipantByUser(ctx context.Context, sessionID, userID string) (*models.Participant, error)
	GetParticipantByID(ctx context.Context, sessionID, participantID string) (*models.Participant, error)

	UpdateParticipantStatus(ctx context.Context, participantID string, status models.ParticipantStatus) error
	UpdateSessionStatus(ctx context.Context, sessionID string, status models.SessionStatus) error
}
