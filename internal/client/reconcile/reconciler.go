// Package reconcile cross-checks the locally cached session pointer against
// the server on app activation. The cache is never trusted silently.
package reconcile

import (
	"context"
	"errors"
	"fmt"

	"github.com/dkrasnenko/sharedtab/internal/client/cache"
	"github.com/dkrasnenko/sharedtab/internal/client/models"
	"github.com/dkrasnenko/sharedtab/internal/common"
	"github.com/dkrasnenko/sharedtab/internal/logging"
)

// StateKind classifies the reconciliation result.
type StateKind string

const (
	// StateNoSession: no cached pointer survived reconciliation and no
	// rejoin candidate exists.
	StateNoSession StateKind = "no_session"
	// StateActive: the cached pointer refers to a live membership.
	StateActive StateKind = "active"
	// StateRejoinCandidate: the cache is empty but the server reports a
	// membership the user may explicitly resume.
	StateRejoinCandidate StateKind = "rejoin_candidate"
)

// State is the reconciliation result. Pointer and Session are set for
// StateActive; Session and Participant for StateRejoinCandidate.
type State struct {
	Kind        StateKind
	Pointer     *models.CachedSessionPointer
	Session     *models.Session
	Participant *models.Participant
}

// directory is the slice of the session directory the reconciler needs.
type directory interface {
	GetSession(ctx context.Context, sessionID string) (*models.Session, error)
	ListMySessions(ctx context.Context) ([]*models.Session, error)
	Leave(ctx context.Context, sessionID string) error
}

// Reconciler resolves disagreement between the cached session pointer and
// server truth. It never joins a session on its own: a lost cached session
// is terminal for that pointer, and a server-side membership found with an
// empty cache is only ever offered as a rejoin candidate.
type Reconciler struct {
	dir    directory
	cache  cache.Repository
	logger logging.Logger
	userID string
}

func NewReconciler(dir directory, cacheRepo cache.Repository, logger logging.Logger, userID string) *Reconciler {
	return &Reconciler{
		dir:    dir,
		cache:  cacheRepo,
		logger: logger.With("module", "reconciler"),
		userID: userID,
	}
}

// Reconcile checks the cache against the server and returns the device's
// session state.
func (r *Reconciler) Reconcile(ctx context.Context) (*State, error) {
	pointer, err := r.cache.GetPointer(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read cached pointer: %w", err)
	}

	if pointer != nil {
		return r.reconcilePointer(ctx, pointer)
	}
	return r.findRejoinCandidate(ctx)
}

// reconcilePointer refreshes the exact cached session. Any failure to
// confirm it — fetch error, session gone or ended, participant removed —
// clears the cache; rejoining later is a new, explicit flow.
func (r *Reconciler) reconcilePointer(ctx context.Context, pointer *models.CachedSessionPointer) (*State, error) {
	session, err := r.dir.GetSession(ctx, pointer.SessionID)
	if err != nil {
		if !errors.Is(err, common.ErrNotFound) {
			r.logger.Warn(ctx, "cached session could not be refreshed", "session_id", pointer.SessionID, "error", err)
		}
		return r.clearPointer(ctx)
	}

	if !session.Status.Live() {
		return r.clearPointer(ctx)
	}

	participant := session.FindParticipant(pointer.ParticipantID)
	if participant == nil || participant.Status == models.ParticipantStatusRemoved {
		r.logger.Info(ctx, "server reports membership removed, clearing cache", "session_id", pointer.SessionID)
		return r.clearPointer(ctx)
	}

	return &State{Kind: StateActive, Pointer: pointer, Session: session, Participant: participant}, nil
}

func (r *Reconciler) clearPointer(ctx context.Context) (*State, error) {
	if err := r.cache.ClearPointer(ctx); err != nil {
		return nil, fmt.Errorf("failed to clear cached pointer: %w", err)
	}
	return &State{Kind: StateNoSession}, nil
}

// findRejoinCandidate lists the server-side memberships and surfaces exactly
// one joinable match as a candidate. No join call is made.
func (r *Reconciler) findRejoinCandidate(ctx context.Context) (*State, error) {
	sessions, err := r.dir.ListMySessions(ctx)
	if err != nil {
		// Offline start is not an error state; there is just nothing to offer.
		r.logger.Debug(ctx, "membership listing failed", "error", err)
		return &State{Kind: StateNoSession}, nil
	}

	var candidates []*models.Session
	for _, session := range sessions {
		if session.Status.Joinable() {
			candidates = append(candidates, session)
		}
	}

	if len(candidates) != 1 {
		return &State{Kind: StateNoSession}, nil
	}

	session := candidates[0]
	return &State{
		Kind:        StateRejoinCandidate,
		Session:     session,
		Participant: session.FindParticipantByUser(r.userID),
	}, nil
}

// DismissRejoin declines a rejoin candidate. When the user already holds an
// active membership, an explicit leave keeps the server's participant count
// honest. A pending or absent membership must not trigger any call — in
// particular not a join.
func (r *Reconciler) DismissRejoin(ctx context.Context, state *State) error {
	if state == nil || state.Kind != StateRejoinCandidate {
		return nil
	}

	if state.Participant == nil || state.Participant.Status != models.ParticipantStatusActive {
		return nil
	}

	if err := r.dir.Leave(ctx, state.Session.ID); err != nil {
		return fmt.Errorf("failed to leave dismissed session: %w", err)
	}
	return nil
}
