package cli

import (
	"context"
	"fmt"

	"github.com/dkrasnenko/sharedtab/internal/client/reconcile"
)

// Status reconciles the cached pointer against the server and prints the
// result.
func (a *App) Status(ctx context.Context) error {
	if a.hasPendingJoin() {
		printlnFn("Waiting for host approval...")
		return nil
	}

	state, err := a.reconciler().Reconcile(ctx)
	if err != nil {
		printlnFn("Could not check session state:", err)
		return err
	}

	switch state.Kind {
	case reconcile.StateNoSession:
		printlnFn("No active session.")

	case reconcile.StateActive:
		session := state.Session
		printlnFn(fmt.Sprintf("Session %s (%s, table %s) — %s, code %s",
			session.ID, session.RestaurantName, session.TableNumber, session.Status, session.ShareCode))
		for _, p := range session.Participants {
			marker := ""
			if p.IsHost {
				marker = " [host]"
			}
			printlnFn(fmt.Sprintf("  %s — %s%s", p.DisplayName, p.Status, marker))
		}

	case reconcile.StateRejoinCandidate:
		printlnFn(fmt.Sprintf("You have a session you could rejoin: %s (table %s). Use 'join' with code %s.",
			state.Session.RestaurantName, state.Session.TableNumber, state.Session.ShareCode))
	}

	return nil
}
