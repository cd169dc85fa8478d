package sessions

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dkrasnenko/sharedtab/internal/common"
	"github.com/dkrasnenko/sharedtab/internal/dbx"
	"github.com/dkrasnenko/sharedtab/internal/server/models"
)

// PostgresRepository implements session storage over a dbx.DBTX
// (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) CreateSession(ctx context.Context, session *models.Session) error {
	query := `
		INSERT INTO sessions (id, share_code, status, restaurant_name, table_number, requires_approval, host_user_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := r.db.ExecContext(ctx, query,
		session.ID, session.ShareCode, session.Status, session.RestaurantName,
		session.TableNumber, session.RequiresApproval, session.HostUserID, session.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert session: %w", err)
	}
	return nil
}

func (r *PostgresRepository) CreateParticipant(ctx context.Context, participant *models.Participant) error {
	query := `
		INSERT INTO participants (id, session_id, user_id, display_name, is_host, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := r.db.ExecContext(ctx, query,
		participant.ID, participant.SessionID, participant.UserID, participant.DisplayName,
		participant.IsHost, participant.Status, participant.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert participant: %w", err)
	}
	return nil
}

func (r *PostgresRepository) GetSession(ctx context.Context, sessionID string) (*models.Session, error) {
	query := `
		SELECT id, share_code, status, restaurant_name, table_number, requires_approval, host_user_id, created_at
		FROM sessions WHERE id=$1
	`
	session, err := r.scanSession(r.db.QueryRowContext(ctx, query, sessionID))
	if err != nil {
		return nil, err
	}
	if err := r.loadParticipants(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

func (r *PostgresRepository) GetSessionByCode(ctx context.Context, code string) (*models.Session, error) {
	query := `
		SELECT id, share_code, status, restaurant_name, table_number, requires_approval, host_user_id, created_at
		FROM sessions
		WHERE upper(share_code)=upper($1) AND status IN ('active', 'locked', 'payment')
	`
	session, err := r.scanSession(r.db.QueryRowContext(ctx, query, code))
	if err != nil {
		return nil, err
	}
	if err := r.loadParticipants(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

func (r *PostgresRepository) ListSessionsForUser(ctx context.Context, userID string) ([]*models.Session, error) {
	query := `
		SELECT s.id, s.share_code, s.status, s.restaurant_name, s.table_number, s.requires_approval, s.host_user_id, s.created_at
		FROM sessions s
		JOIN participants p ON p.session_id = s.id
		WHERE p.user_id=$1 AND p.status IN ('pending', 'active') AND s.status IN ('active', 'locked', 'payment')
		ORDER BY s.created_at DESC
	`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to select sessions: %w", err)
	}
	defer rows.Close()

	var result []*models.Session
	for rows.Next() {
		var item models.Session
		if err := rows.Scan(
			&item.ID, &item.ShareCode, &item.Status, &item.RestaurantName,
			&item.TableNumber, &item.RequiresApproval, &item.HostUserID, &item.CreatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, session := range result {
		if err := r.loadParticipants(ctx, session); err != nil {
			return nil, err
		}
	}
	return result, nil
}

func (r *PostgresRepository) GetParticipantByUser(ctx context.Context, sessionID, userID string) (*models.Participant, error) {
	query := `
		SELECT id, session_id, user_id, display_name, is_host, status, created_at
		FROM participants WHERE session_id=$1 AND user_id=$2
	`
	return r.scanParticipant(r.db.QueryRowContext(ctx, query, sessionID, userID))
}

func (r *PostgresRepository) GetParticipantByID(ctx context.Context, sessionID, participantID string) (*models.Participant, error) {
	query := `
		SELECT id, session_id, user_id, display_name, is_host, status, created_at
		FROM participants WHERE session_id=$1 AND id=$2
	`
	return r.scanParticipant(r.db.QueryRowContext(ctx, query, sessionID, participantID))
}

func (r *PostgresRepository) UpdateParticipantStatus(ctx context.Context, participantID string, status models.ParticipantStatus) error {
	res, err := r.db.ExecContext(ctx, `UPDATE participants SET status=$1 WHERE id=$2`, status, participantID)
	if err != nil {
		return fmt.Errorf("failed to update participant: %w", err)
	}
	return requireOneRow(res)
}

func (r *PostgresRepository) UpdateSessionStatus(ctx context.Context, sessionID string, status models.SessionStatus) error {
	res, err := r.db.ExecContext(ctx, `UPDATE sessions SET status=$1 WHERE id=$2`, status, sessionID)
	if err != nil {
		return fmt.Errorf("failed to update session: %w", err)
	}
	return requireOneRow(res)
}

func (r *PostgresRepository) loadParticipants(ctx context.Context, session *models.Session) error {
	query := `
		SELECT id, session_id, user_id, display_name, is_host, status, created_at
		FROM participants WHERE session_id=$1 ORDER BY created_at
	`
	rows, err := r.db.QueryContext(ctx, query, session.ID)
	if err != nil {
		return fmt.Errorf("failed to select participants: %w", err)
	}
	defer rows.Close()

	session.Participants = nil
	session.ParticipantCount = 0
	for rows.Next() {
		var item models.Participant
		if err := rows.Scan(
			&item.ID, &item.SessionID, &item.UserID, &item.DisplayName,
			&item.IsHost, &item.Status, &item.CreatedAt,
		); err != nil {
			return err
		}
		session.Participants = append(session.Participants, &item)
		if item.Status == models.ParticipantStatusActive {
			session.ParticipantCount++
		}
	}
	return rows.Err()
}

func (r *PostgresRepository) scanSession(row *sql.Row) (*models.Session, error) {
	var item models.Session
	err := row.Scan(
		&item.ID, &item.ShareCode, &item.Status, &item.RestaurantName,
		&item.TableNumber, &item.RequiresApproval, &item.HostUserID, &item.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to select session: %w", err)
	}
	return &item, nil
}

func (r *PostgresRepository) scanParticipant(row *sql.Row) (*models.Participant, error) {
	var item models.Participant
	err := row.Scan(
		&item.ID, &item.SessionID, &item.UserID, &item.DisplayName,
		&item.IsHost, &item.Status, &item.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to select participant: %w", err)
	}
	return &item, nil
}

func requireOneRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	if n == 0 {
		return common.ErrNotFound
	}
	return nil
}
