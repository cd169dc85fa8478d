package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/dkrasnenko/sharedtab/internal/client/reconcile"
)

// offerRejoin runs the reconciler at startup. A surviving cached membership
// is reported; a rejoin candidate is offered interactively and never joined
// silently.
func (a *App) offerRejoin(ctx context.Context) {
	state, err := a.reconciler().Reconcile(ctx)
	if err != nil {
		a.logger.Warn(ctx, "startup reconciliation failed", "error", err)
		return
	}

	switch state.Kind {
	case reconcile.StateActive:
		printlnFn(fmt.Sprintf("You are in a session at %s (table %s).",
			state.Session.RestaurantName, state.Session.TableNumber))

	case reconcile.StateRejoinCandidate:
		ok, err := GetYesNo(a.reader, fmt.Sprintf("Rejoin your session at %s (table %s)?",
			state.Session.RestaurantName, state.Session.TableNumber), os.Stdout)
		if err != nil {
			return
		}

		if !ok {
			if err := a.reconciler().DismissRejoin(ctx, state); err != nil {
				a.logger.Warn(ctx, "dismiss failed", "error", err)
			}
			return
		}

		result, err := a.orchestrator.Rejoin(ctx, state.Session.ID, a.handleOutcome)
		if err != nil {
			printlnFn(joinErrorMessage(err))
			return
		}

		if result.Outcome != nil {
			a.handleOutcome(*result.Outcome)
			return
		}

		a.setPending(result.Pending)
		if err := result.Pending.Watcher.Start(ctx); err != nil {
			a.setPending(nil)
			return
		}
		printlnFn("Waiting for the host to approve you again.")
	}
}
