// Package cache persists the device's local state: the single cached session
// pointer and the device identity issued at registration.
package cache

import (
	"context"

	"github.com/dkrasnenko/sharedtab/internal/client/models"
)

// Repository stores at most one session pointer and one device identity.
// Absent records are reported as nil, not as errors.
type Repository interface {
	GetPointer(ctx context.Context) (*models.CachedSessionPointer, error)
	SavePointer(ctx context.Context, pointer *models.CachedSessionPointer) error
	ClearPointer(ctx context.Context) error

	GetIdentity(ctx context.Context) (*models.DeviceIdentity, error)
	SaveIdentity(ctx context.Context, identity *models.DeviceIdentity) error
}
