package watch

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/dkrasnenko/sharedtab/internal/client/models"
	"github.com/dkrasnenko/sharedtab/internal/logging"
)

// DefaultPollInterval paces the poll fallback path.
const DefaultPollInterval = 10 * time.Second

var ErrAlreadyStarted = errors.New("watcher already started")

// directory is the slice of the session directory the watcher needs.
type directory interface {
	GetSession(ctx context.Context, sessionID string) (*models.Session, error)
	Subscribe(ctx context.Context, sessionID string) (<-chan models.SessionEvent, func(), error)
}

// ApprovalWatcher waits for the host's decision on a pending join attempt.
//
// Two signal paths race through an OutcomeLatch: the push stream and a
// periodic poll of the session's participant list. Whichever settles the
// latch first wins; the loser's later signals are no-ops. Poll errors are
// swallowed and retried next tick — a network blip must never be mistaken
// for a rejection, and the poll loop is the designed fallback for a dead
// push channel.
//
// When participantID is empty the watcher runs in degraded mode and matches
// any approval or removal on the session. The device is only waiting on its
// own request, so no other decision is expected to race it; the weaker match
// is logged when it fires.
//
// The watcher imposes no timeout. It runs until resolved or until Stop,
// which is a caller-level abandonment and fires no callback.
type ApprovalWatcher struct {
	dir           directory
	logger        logging.Logger
	sessionID     string
	participantID string
	pollInterval  time.Duration
	onOutcome     func(models.Outcome)

	latch *OutcomeLatch

	started  bool
	stopOnce sync.Once
	stopped  chan struct{}
	cancel   context.CancelFunc
	done     chan struct{}
}

func NewApprovalWatcher(dir directory, logger logging.Logger, sessionID, participantID string,
	pollInterval time.Duration, onOutcome func(models.Outcome)) *ApprovalWatcher {
	if pollInterval <= 0 {
		pollInterval = DefaultPollInterval
	}
	return &ApprovalWatcher{
		dir:           dir,
		logger:        logger.With("module", "approval_watcher", "session_id", sessionID),
		sessionID:     sessionID,
		participantID: participantID,
		pollInterval:  pollInterval,
		onOutcome:     onOutcome,
		latch:         NewOutcomeLatch(),
		stopped:       make(chan struct{}),
		done:          make(chan struct{}),
	}
}

// Start begins watching. It may be called once.
func (w *ApprovalWatcher) Start(ctx context.Context) error {
	if w.started {
		return ErrAlreadyStarted
	}
	w.started = true

	if w.participantID == "" {
		w.logger.Warn(ctx, "participant id unknown, watching in degraded mode")
	}

	ctx, cancel := context.WithCancel(ctx)
	w.cancel = cancel

	events, unsubscribe, err := w.dir.Subscribe(ctx, w.sessionID)
	if err != nil {
		// Poll-only: a nil channel never delivers, the ticker still runs.
		w.logger.Warn(ctx, "push subscription failed, polling only", "error", err)
		events, unsubscribe = nil, func() {}
	}

	go w.run(ctx, events, unsubscribe)
	return nil
}

// Stop abandons the watch. It is idempotent and synchronous: when it
// returns, the subscription and the poll ticker are torn down and no
// callback will fire, even for a signal already in flight.
func (w *ApprovalWatcher) Stop() {
	if !w.started {
		return
	}

	w.stopOnce.Do(func() { close(w.stopped) })

	w.cancel()
	<-w.done
}

// Resolved reports whether a terminal outcome has been reached.
func (w *ApprovalWatcher) Resolved() bool {
	return w.latch.Resolved()
}

// Outcome returns the terminal outcome and the source that won the race.
func (w *ApprovalWatcher) Outcome() (models.Outcome, string, bool) {
	return w.latch.Outcome()
}

func (w *ApprovalWatcher) run(ctx context.Context, events <-chan models.SessionEvent, unsubscribe func()) {
	defer close(w.done)
	defer unsubscribe()

	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-events:
			if !ok {
				events = nil
				continue
			}
			w.handleEvent(ctx, event)
		case <-ticker.C:
			w.poll(ctx)
		}

		if w.latch.Resolved() {
			return
		}
	}
}

// matches reports whether an event's participant concerns this watch.
func (w *ApprovalWatcher) matches(ctx context.Context, participant *models.Participant) bool {
	if w.participantID == "" {
		w.logger.Warn(ctx, "degraded mode matched an unattributed event")
		return true
	}
	return participant != nil && participant.ID == w.participantID
}

func (w *ApprovalWatcher) handleEvent(ctx context.Context, event models.SessionEvent) {
	if w.latch.Resolved() {
		return
	}

	switch event.Type {
	case models.EventTypeParticipantApproved:
		if !w.matches(ctx, event.Participant) {
			return
		}
		w.resolve(ctx, SourcePush, models.Admitted(w.sessionSnapshot(ctx, event.Session)))

	case models.EventTypeSessionUpdate:
		switch event.Event {
		case models.SubEventParticipantRemoved:
			if !w.matches(ctx, event.Participant) {
				return
			}
			w.resolve(ctx, SourcePush, models.Rejected())
		case models.SubEventSessionCancelled:
			w.resolve(ctx, SourcePush, models.Failed("session cancelled"))
		}
	}
}

func (w *ApprovalWatcher) poll(ctx context.Context) {
	session, err := w.dir.GetSession(ctx, w.sessionID)
	if err != nil {
		// Swallowed: retried next tick. Transient failures must not
		// resolve the latch.
		w.logger.Debug(ctx, "poll failed", "error", err)
		return
	}

	participant := w.pollParticipant(session)
	if participant == nil {
		return
	}

	switch participant.Status {
	case models.ParticipantStatusActive:
		w.resolve(ctx, SourcePoll, models.Admitted(session))
	case models.ParticipantStatusRemoved:
		w.resolve(ctx, SourcePoll, models.Rejected())
	}
	// pending or absent: keep watching
}

// pollParticipant picks the participant whose status decides this watch:
// the known participant id, or in degraded mode the first non-host entry
// that has left the pending state.
func (w *ApprovalWatcher) pollParticipant(session *models.Session) *models.Participant {
	if w.participantID != "" {
		return session.FindParticipant(w.participantID)
	}
	for _, p := range session.Participants {
		if !p.IsHost && p.Status != models.ParticipantStatusPending {
			return p
		}
	}
	return nil
}

// sessionSnapshot fetches a fresh session for the Admitted payload, falling
// back to the event's embedded session or a bare reference.
func (w *ApprovalWatcher) sessionSnapshot(ctx context.Context, fromEvent *models.Session) *models.Session {
	if session, err := w.dir.GetSession(ctx, w.sessionID); err == nil {
		return session
	}
	if fromEvent != nil {
		return fromEvent
	}
	return &models.Session{ID: w.sessionID}
}

func (w *ApprovalWatcher) resolve(ctx context.Context, source string, outcome models.Outcome) {
	if !w.latch.TryResolve(source, outcome) {
		return
	}

	select {
	case <-w.stopped:
		// Abandoned: the outcome is recorded but no callback fires.
		return
	default:
	}

	w.logger.Debug(ctx, "watch resolved", "outcome", string(outcome.Kind), "source", source)
	if w.onOutcome != nil {
		w.onOutcome(outcome)
	}
}
