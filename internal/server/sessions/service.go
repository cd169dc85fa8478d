// Package sessions implements the server-side session lifecycle: creation
// with share codes, joining with optional host approval, host actions and
// the events they publish.
package sessions

import (
	"context"
	"crypto/rand"
	"database/sql"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/dkrasnenko/sharedtab/internal/common"
	"github.com/dkrasnenko/sharedtab/internal/dbx"
	"github.com/dkrasnenko/sharedtab/internal/server/events"
	"github.com/dkrasnenko/sharedtab/internal/server/models"
	"github.com/dkrasnenko/sharedtab/internal/server/repositories/repomanager"
	sessrepo "github.com/dkrasnenko/sharedtab/internal/server/repositories/sessions"
	"github.com/google/uuid"
)

// Share codes avoid 0/O/1/I to stay unambiguous when read aloud at a table.
const (
	shareCodeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
	shareCodeLength   = 6
	shareCodeAttempts = 5
)

// JoinResult is the outcome of a join call.
type JoinResult struct {
	RequiresApproval bool
	Session          *models.Session
	ParticipantID    string
}

// Service owns session business logic on top of the repositories and
// publishes session events to the hub. Multi-write operations run inside a
// transaction via dbx.WithTx.
type Service struct {
	db              *sql.DB
	manager         repomanager.RepositoryManager
	hub             *events.Hub
	maxParticipants int
}

func NewService(db *sql.DB, manager repomanager.RepositoryManager, hub *events.Hub, maxParticipants int) *Service {
	return &Service{db: db, manager: manager, hub: hub, maxParticipants: maxParticipants}
}

// Create starts a new session with the caller as its host. The host is an
// active participant from the start; approval only applies to guests. Session
// and host rows are written in one transaction so a share code never resolves
// to a hostless session.
func (s *Service) Create(ctx context.Context, userID, displayName, restaurantName, tableNumber string, requiresApproval bool) (*models.Session, error) {
	repo := s.manager.Sessions(s.db)

	code, err := s.newShareCode(ctx, repo)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	session := &models.Session{
		ID:               uuid.NewString(),
		ShareCode:        code,
		Status:           models.SessionStatusActive,
		RestaurantName:   restaurantName,
		TableNumber:      tableNumber,
		RequiresApproval: requiresApproval,
		HostUserID:       userID,
		CreatedAt:        now,
	}
	host := &models.Participant{
		ID:          uuid.NewString(),
		SessionID:   session.ID,
		UserID:      userID,
		DisplayName: displayName,
		IsHost:      true,
		Status:      models.ParticipantStatusActive,
		CreatedAt:   now,
	}

	if err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repoTx := s.manager.Sessions(tx)
		if err := repoTx.CreateSession(ctx, session); err != nil {
			return err
		}
		return repoTx.CreateParticipant(ctx, host)
	}); err != nil {
		return nil, err
	}

	return repo.GetSession(ctx, session.ID)
}

// ResolveCode looks a share code up among live sessions.
func (s *Service) ResolveCode(ctx context.Context, code string) (*models.Session, error) {
	return s.manager.Sessions(s.db).GetSessionByCode(ctx, code)
}

// Get returns a session snapshot including its participant list.
func (s *Service) Get(ctx context.Context, sessionID string) (*models.Session, error) {
	return s.manager.Sessions(s.db).GetSession(ctx, sessionID)
}

// ListForUser returns the live sessions the user participates in.
func (s *Service) ListForUser(ctx context.Context, userID string) ([]*models.Session, error) {
	return s.manager.Sessions(s.db).ListSessionsForUser(ctx, userID)
}

// Join adds the caller to a session identified by id or share code.
//
// The call is idempotent per user: an existing active membership is reported
// as an immediate admission, an existing pending one as still requiring
// approval. A previously removed participant re-enters the approval flow.
func (s *Service) Join(ctx context.Context, userID, displayName, sessionID, code string) (*JoinResult, error) {
	repo := s.manager.Sessions(s.db)

	var session *models.Session
	var err error
	if sessionID != "" {
		session, err = repo.GetSession(ctx, sessionID)
	} else {
		session, err = repo.GetSessionByCode(ctx, code)
	}
	if err != nil {
		return nil, err
	}

	if !session.Status.Joinable() {
		return nil, common.ErrNotJoinable
	}

	existing, err := repo.GetParticipantByUser(ctx, session.ID, userID)
	if err != nil && !errors.Is(err, common.ErrNotFound) {
		return nil, err
	}

	if existing != nil {
		switch existing.Status {
		case models.ParticipantStatusActive:
			return &JoinResult{RequiresApproval: false, Session: session, ParticipantID: existing.ID}, nil
		case models.ParticipantStatusPending:
			return &JoinResult{RequiresApproval: true, Session: session, ParticipantID: existing.ID}, nil
		case models.ParticipantStatusRemoved:
			return s.readmit(ctx, repo, session, existing)
		}
	}

	status := models.ParticipantStatusActive
	if session.RequiresApproval {
		status = models.ParticipantStatusPending
	}
	participant := &models.Participant{
		ID:          uuid.NewString(),
		SessionID:   session.ID,
		UserID:      userID,
		DisplayName: displayName,
		Status:      status,
		CreatedAt:   time.Now().UTC(),
	}

	// The capacity check reads the count inside the same transaction as the
	// insert, so concurrent joins cannot both pass against a stale snapshot.
	if err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repoTx := s.manager.Sessions(tx)
		current, err := repoTx.GetSession(ctx, session.ID)
		if err != nil {
			return err
		}
		if s.maxParticipants > 0 && current.ParticipantCount >= s.maxParticipants {
			return common.ErrSessionFull
		}
		return repoTx.CreateParticipant(ctx, participant)
	}); err != nil {
		return nil, err
	}

	s.hub.Publish(events.Event{
		Type:        events.TypeSessionUpdate,
		SubEvent:    events.SubEventParticipantJoined,
		SessionID:   session.ID,
		Participant: participant,
	})

	session, err = repo.GetSession(ctx, session.ID)
	if err != nil {
		return nil, err
	}
	return &JoinResult{
		RequiresApproval: status == models.ParticipantStatusPending,
		Session:          session,
		ParticipantID:    participant.ID,
	}, nil
}

// readmit puts a previously removed participant back through the join flow.
func (s *Service) readmit(ctx context.Context, repo sessrepo.Repository, session *models.Session, participant *models.Participant) (*JoinResult, error) {
	status := models.ParticipantStatusActive
	if session.RequiresApproval {
		status = models.ParticipantStatusPending
	}
	if err := repo.UpdateParticipantStatus(ctx, participant.ID, status); err != nil {
		return nil, err
	}
	participant.Status = status

	s.hub.Publish(events.Event{
		Type:        events.TypeSessionUpdate,
		SubEvent:    events.SubEventParticipantJoined,
		SessionID:   session.ID,
		Participant: participant,
	})

	session, err := repo.GetSession(ctx, session.ID)
	if err != nil {
		return nil, err
	}
	return &JoinResult{
		RequiresApproval: status == models.ParticipantStatusPending,
		Session:          session,
		ParticipantID:    participant.ID,
	}, nil
}

// Approve moves a pending participant to active. Host only.
func (s *Service) Approve(ctx context.Context, hostUserID, sessionID, participantID string) error {
	repo := s.manager.Sessions(s.db)
	participant, err := s.hostAction(ctx, repo, hostUserID, sessionID, participantID)
	if err != nil {
		return err
	}
	if err := repo.UpdateParticipantStatus(ctx, participantID, models.ParticipantStatusActive); err != nil {
		return err
	}
	participant.Status = models.ParticipantStatusActive

	s.hub.Publish(events.Event{
		Type:        events.TypeParticipantApproved,
		SessionID:   sessionID,
		Participant: participant,
	})
	return nil
}

// Reject moves a pending participant to removed. Host only.
func (s *Service) Reject(ctx context.Context, hostUserID, sessionID, participantID string) error {
	repo := s.manager.Sessions(s.db)
	participant, err := s.hostAction(ctx, repo, hostUserID, sessionID, participantID)
	if err != nil {
		return err
	}
	if err := repo.UpdateParticipantStatus(ctx, participantID, models.ParticipantStatusRemoved); err != nil {
		return err
	}
	participant.Status = models.ParticipantStatusRemoved

	s.hub.Publish(events.Event{
		Type:        events.TypeSessionUpdate,
		SubEvent:    events.SubEventParticipantRemoved,
		SessionID:   sessionID,
		Participant: participant,
	})
	return nil
}

// Leave removes the caller's own membership.
func (s *Service) Leave(ctx context.Context, userID, sessionID string) error {
	repo := s.manager.Sessions(s.db)
	participant, err := repo.GetParticipantByUser(ctx, sessionID, userID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return common.ErrNotParticipant
		}
		return err
	}
	if err := repo.UpdateParticipantStatus(ctx, participant.ID, models.ParticipantStatusRemoved); err != nil {
		return err
	}
	participant.Status = models.ParticipantStatusRemoved

	s.hub.Publish(events.Event{
		Type:        events.TypeSessionUpdate,
		SubEvent:    events.SubEventParticipantRemoved,
		SessionID:   sessionID,
		Participant: participant,
	})
	return nil
}

// Cancel ends the whole session. Host only.
func (s *Service) Cancel(ctx context.Context, hostUserID, sessionID string) error {
	repo := s.manager.Sessions(s.db)
	session, err := repo.GetSession(ctx, sessionID)
	if err != nil {
		return err
	}
	if session.HostUserID != hostUserID {
		return common.ErrNotHost
	}
	if err := repo.UpdateSessionStatus(ctx, sessionID, models.SessionStatusCancelled); err != nil {
		return err
	}
	session.Status = models.SessionStatusCancelled

	s.hub.Publish(events.Event{
		Type:      events.TypeSessionUpdate,
		SubEvent:  events.SubEventSessionCancelled,
		SessionID: sessionID,
		Session:   session,
	})
	return nil
}

// hostAction validates a host-only operation on a pending participant.
func (s *Service) hostAction(ctx context.Context, repo sessrepo.Repository, hostUserID, sessionID, participantID string) (*models.Participant, error) {
	session, err := repo.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.HostUserID != hostUserID {
		return nil, common.ErrNotHost
	}
	participant, err := repo.GetParticipantByID(ctx, sessionID, participantID)
	if err != nil {
		return nil, err
	}
	if participant.Status != models.ParticipantStatusPending {
		return nil, common.ErrParticipantNotPending
	}
	return participant, nil
}

func (s *Service) newShareCode(ctx context.Context, repo sessrepo.Repository) (string, error) {
	for attempt := 0; attempt < shareCodeAttempts; attempt++ {
		code, err := makeShareCode()
		if err != nil {
			return "", err
		}
		_, err = repo.GetSessionByCode(ctx, code)
		if errors.Is(err, common.ErrNotFound) {
			return code, nil
		}
		if err != nil {
			return "", err
		}
		// Collision with a live session: try another code.
	}
	return "", fmt.Errorf("could not allocate a unique share code")
}

func makeShareCode() (string, error) {
	b := make([]byte, shareCodeLength)
	for i := range b {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(shareCodeAlphabet))))
		if err != nil {
			return "", err
		}
		b[i] = shareCodeAlphabet[n.Int64()]
	}
	return string(b), nil
}
