package client

import (
	"context"

	"github.com/dkrasnenko/sharedtab/internal/client/models"
)

// JoinResult is the client-side view of a join response. ParticipantID is
// empty when the server reported the new participant under neither of the
// known field names (degraded mode).
type JoinResult struct {
	RequiresApproval bool
	Session          *models.Session
	ParticipantID    string
}

// Directory is the remote source of truth for sessions and participants.
type Directory interface {
	Close() error
	RegisterDevice(ctx context.Context, displayName string) (*models.DeviceIdentity, error)
	CreateSession(ctx context.Context, restaurantName, tableNumber string, requiresApproval bool) (*models.Session, error)
	ResolveCode(ctx context.Context, code string) (*models.Session, error)
	GetSession(ctx context.Context, sessionID string) (*models.Session, error)
	ListMySessions(ctx context.Context) ([]*models.Session, error)
	Join(ctx context.Context, sessionID, code string) (*JoinResult, error)
	Approve(ctx context.Context, sessionID, participantID string) error
	Reject(ctx context.Context, sessionID, participantID string) error
	Leave(ctx context.Context, sessionID string) error
	Cancel(ctx context.Context, sessionID string) error
	Subscribe(ctx context.Context, sessionID string) (<-chan models.SessionEvent, func(), error)
}
