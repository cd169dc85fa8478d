// Package join turns a share code or a known session reference into either
// an immediate admission or a pending approval watch.
package join

import (
	"context"
	"strings"
	"time"

	"github.com/dkrasnenko/sharedtab/internal/client/client"
	"github.com/dkrasnenko/sharedtab/internal/client/models"
	"github.com/dkrasnenko/sharedtab/internal/client/watch"
	"github.com/dkrasnenko/sharedtab/internal/common"
	"github.com/dkrasnenko/sharedtab/internal/logging"
)

// Result is what a join attempt yields synchronously: either a terminal
// outcome, or a Pending handle whose watcher drives the attempt to its
// eventual outcome.
type Result struct {
	Outcome *models.Outcome
	Pending *Pending
}

// Pending is a join awaiting the host's decision. The watcher is constructed
// but not started; the caller starts it when entering the waiting state and
// must Stop it on abandonment.
type Pending struct {
	Attempt *models.JoinAttempt
	Session *models.Session
	Watcher *watch.ApprovalWatcher
}

// Orchestrator is the public entry point of the join flow.
type Orchestrator struct {
	dir          client.Directory
	logger       logging.Logger
	pollInterval time.Duration
}

func NewOrchestrator(dir client.Directory, logger logging.Logger, pollInterval time.Duration) *Orchestrator {
	if pollInterval <= 0 {
		pollInterval = watch.DefaultPollInterval
	}
	return &Orchestrator{
		dir:          dir,
		logger:       logger.With("module", "join_orchestrator"),
		pollInterval: pollInterval,
	}
}

// NormalizeCode trims surrounding whitespace and uppercases a share code.
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// JoinByCode resolves a share code and joins the session it names. The
// session's status is checked before the join call: a non-joinable session
// fails synchronously without a join round trip.
func (o *Orchestrator) JoinByCode(ctx context.Context, code string, onOutcome func(models.Outcome)) (*Result, error) {
	code = NormalizeCode(code)

	session, err := o.dir.ResolveCode(ctx, code)
	if err != nil {
		return nil, err
	}

	if !session.Status.Joinable() {
		return nil, common.ErrNotJoinable
	}

	return o.join(ctx, session.ID, "", onOutcome)
}

// Rejoin joins a previously known session by id.
func (o *Orchestrator) Rejoin(ctx context.Context, sessionID string, onOutcome func(models.Outcome)) (*Result, error) {
	session, err := o.dir.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if !session.Status.Joinable() {
		return nil, common.ErrNotJoinable
	}

	return o.join(ctx, session.ID, "", onOutcome)
}

func (o *Orchestrator) join(ctx context.Context, sessionID, code string, onOutcome func(models.Outcome)) (*Result, error) {
	result, err := o.dir.Join(ctx, sessionID, code)
	if err != nil {
		return nil, err
	}

	if result.ParticipantID == "" {
		// The response named the participant under neither convention.
		// The watch falls back to matching any event on the session.
		o.logger.Warn(ctx, "join response carried no participant id, degraded matching in effect",
			"session_id", sessionID)
	}

	if !result.RequiresApproval {
		outcome := models.Admitted(result.Session)
		return &Result{Outcome: &outcome}, nil
	}

	attempt := &models.JoinAttempt{
		SessionID:     result.Session.ID,
		ParticipantID: result.ParticipantID,
		SubmittedAt:   time.Now(),
	}

	watcher := watch.NewApprovalWatcher(o.dir, o.logger, result.Session.ID, result.ParticipantID,
		o.pollInterval, onOutcome)

	return &Result{Pending: &Pending{
		Attempt: attempt,
		Session: result.Session,
		Watcher: watcher,
	}}, nil
}
