package cli

import (
	"context"
	"errors"
	"os"

	"github.com/dkrasnenko/sharedtab/internal/client/client"
	"github.com/dkrasnenko/sharedtab/internal/client/models"
	"github.com/dkrasnenko/sharedtab/internal/common"
)

// Join asks for a share code and runs the join flow. An immediate admission
// is cached right away; an approval-required join starts a watcher and
// returns control to the REPL in the waiting state.
func (a *App) Join(ctx context.Context) error {
	if a.hasPendingJoin() {
		printlnFn("You are already waiting for approval; use 'cancelwait' first.")
		return nil
	}

	code, err := GetSimpleText(a.reader, "Share code?", os.Stdout)
	if err != nil {
		return err
	}

	result, err := a.orchestrator.JoinByCode(ctx, code, a.handleOutcome)
	if err != nil {
		printlnFn(joinErrorMessage(err))
		return err
	}

	if result.Outcome != nil {
		a.handleOutcome(*result.Outcome)
		return nil
	}

	a.setPending(result.Pending)
	if err := result.Pending.Watcher.Start(ctx); err != nil {
		a.setPending(nil)
		return err
	}

	printlnFn("Waiting for the host to approve you. You can keep using the CLI; 'cancelwait' stops waiting.")
	return nil
}

// handleOutcome reacts to the terminal outcome of a join attempt. It runs on
// the watcher's goroutine for approval-required joins.
func (a *App) handleOutcome(outcome models.Outcome) {
	ctx := context.Background()
	pending := a.takePending()

	switch outcome.Kind {
	case models.OutcomeAdmitted:
		pointer := &models.CachedSessionPointer{
			SessionID: outcome.Session.ID,
			Role:      models.RoleGuest,
		}
		if pending != nil {
			pointer.ParticipantID = pending.Attempt.ParticipantID
		}
		if pointer.ParticipantID == "" {
			if me := outcome.Session.FindParticipantByUser(a.identity.UserID); me != nil {
				pointer.ParticipantID = me.ID
			}
		}
		if err := a.cacheRepo.SavePointer(ctx, pointer); err != nil {
			a.logger.Error(ctx, "failed to cache session pointer", "error", err)
		}
		printlnFn("You are in! Session:", outcome.Session.RestaurantName, "table", outcome.Session.TableNumber)

	case models.OutcomeRejected:
		printlnFn("The host declined your request to join.")

	case models.OutcomeTimedOut:
		printlnFn("Gave up waiting for approval.")

	case models.OutcomeFailed:
		printlnFn("Join failed:", outcome.Reason)
	}
}

// CancelWait abandons the current approval wait. No outcome callback fires
// after this.
func (a *App) CancelWait(ctx context.Context) error {
	pending := a.takePending()
	if pending == nil {
		printlnFn("Not waiting for anything.")
		return nil
	}

	pending.Watcher.Stop()
	printlnFn("Stopped waiting for approval.")
	return nil
}

func joinErrorMessage(err error) string {
	switch {
	case errors.Is(err, common.ErrNotFound):
		return "No session found for that code."
	case errors.Is(err, common.ErrNotJoinable):
		return "That session is not accepting new diners."
	case errors.Is(err, common.ErrSessionFull):
		return "That session is full."
	case errors.Is(err, client.ErrUnavailable):
		return "Server unavailable, try again."
	default:
		return "Could not join: " + err.Error()
	}
}
