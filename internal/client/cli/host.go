package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/dkrasnenko/sharedtab/internal/client/models"
)

// pendingParticipants prints the session's pending participants and returns
// them, fetching the session named by the cached pointer.
func (a *App) pendingParticipants(ctx context.Context) (string, []*models.Participant, error) {
	pointer, err := a.cacheRepo.GetPointer(ctx)
	if err != nil {
		return "", nil, err
	}
	if pointer == nil {
		printlnFn("No active session.")
		return "", nil, nil
	}

	session, err := a.dir.GetSession(ctx, pointer.SessionID)
	if err != nil {
		printlnFn("Could not fetch session:", err)
		return "", nil, err
	}

	var pending []*models.Participant
	for _, p := range session.Participants {
		if p.Status == models.ParticipantStatusPending {
			pending = append(pending, p)
		}
	}
	return session.ID, pending, nil
}

func (a *App) pickPendingParticipant(ctx context.Context) (string, *models.Participant, error) {
	sessionID, pending, err := a.pendingParticipants(ctx)
	if err != nil || sessionID == "" {
		return "", nil, err
	}
	if len(pending) == 0 {
		printlnFn("Nobody is waiting for approval.")
		return "", nil, nil
	}

	printlnFn("Waiting for approval:")
	for i, p := range pending {
		printlnFn(fmt.Sprintf("  %d. %s", i+1, p.DisplayName))
	}

	answer, err := GetSimpleText(a.reader, "Who? (number)", os.Stdout)
	if err != nil {
		return "", nil, err
	}

	var idx int
	if _, err := fmt.Sscanf(answer, "%d", &idx); err != nil || idx < 1 || idx > len(pending) {
		printlnFn("Invalid choice.")
		return "", nil, nil
	}
	return sessionID, pending[idx-1], nil
}

// Approve lets the host admit a pending participant.
func (a *App) Approve(ctx context.Context) error {
	sessionID, participant, err := a.pickPendingParticipant(ctx)
	if err != nil || participant == nil {
		return err
	}

	if err := a.dir.Approve(ctx, sessionID, participant.ID); err != nil {
		printlnFn("Approve failed:", err)
		return err
	}
	printlnFn("Approved", participant.DisplayName)
	return nil
}

// Reject lets the host decline a pending participant.
func (a *App) Reject(ctx context.Context) error {
	sessionID, participant, err := a.pickPendingParticipant(ctx)
	if err != nil || participant == nil {
		return err
	}

	if err := a.dir.Reject(ctx, sessionID, participant.ID); err != nil {
		printlnFn("Reject failed:", err)
		return err
	}
	printlnFn("Rejected", participant.DisplayName)
	return nil
}

// Cancel ends the whole session (host only) and clears the cache.
func (a *App) Cancel(ctx context.Context) error {
	pointer, err := a.cacheRepo.GetPointer(ctx)
	if err != nil {
		return err
	}
	if pointer == nil {
		printlnFn("No active session.")
		return nil
	}

	ok, err := GetYesNo(a.reader, "Cancel the session for everyone?", os.Stdout)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}

	if err := a.dir.Cancel(ctx, pointer.SessionID); err != nil {
		printlnFn("Cancel failed:", err)
		return err
	}

	if err := a.cacheRepo.ClearPointer(ctx); err != nil {
		return err
	}
	printlnFn("Session cancelled.")
	return nil
}
