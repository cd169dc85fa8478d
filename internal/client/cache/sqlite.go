package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dkrasnenko/sharedtab/internal/client/models"
	"github.com/dkrasnenko/sharedtab/internal/dbx"
)

type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) GetPointer(ctx context.Context) (*models.CachedSessionPointer, error) {
	pointer := &models.CachedSessionPointer{}
	err := r.db.QueryRowContext(ctx,
		`SELECT session_id, participant_id, role FROM session_pointer WHERE id = 1`,
	).Scan(&pointer.SessionID, &pointer.ParticipantID, &pointer.Role)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session pointer: %w", err)
	}
	return pointer, nil
}

// SavePointer replaces the pointer wholesale. There is never more than one.
func (r *SQLiteRepository) SavePointer(ctx context.Context, pointer *models.CachedSessionPointer) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO session_pointer (id, session_id, participant_id, role) VALUES (1, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			session_id = excluded.session_id,
			participant_id = excluded.participant_id,
			role = excluded.role
	`, pointer.SessionID, pointer.ParticipantID, pointer.Role)
	if err != nil {
		return fmt.Errorf("failed to save session pointer: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) ClearPointer(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM session_pointer`)
	if err != nil {
		return fmt.Errorf("failed to clear session pointer: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) GetIdentity(ctx context.Context) (*models.DeviceIdentity, error) {
	identity := &models.DeviceIdentity{}
	err := r.db.QueryRowContext(ctx,
		`SELECT user_id, display_name, access_token FROM device_identity WHERE id = 1`,
	).Scan(&identity.UserID, &identity.DisplayName, &identity.AccessToken)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get device identity: %w", err)
	}
	return identity, nil
}

func (r *SQLiteRepository) SaveIdentity(ctx context.Context, identity *models.DeviceIdentity) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO device_identity (id, user_id, display_name, access_token) VALUES (1, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			user_id = excluded.user_id,
			display_name = excluded.display_name,
			access_token = excluded.access_token
	`, identity.UserID, identity.DisplayName, identity.AccessToken)
	if err != nil {
		return fmt.Errorf("failed to save device identity: %w", err)
	}
	return nil
}
