package cli

import (
	"context"
	"os"

	"github.com/dkrasnenko/sharedtab/internal/client/models"
)

// Create starts a new table session with this device as host and caches the
// resulting membership.
func (a *App) Create(ctx context.Context) error {
	if a.hasPendingJoin() {
		printlnFn("You are waiting for approval; use 'cancelwait' first.")
		return nil
	}

	restaurant, err := GetSimpleText(a.reader, "Restaurant name?", os.Stdout)
	if err != nil {
		return err
	}
	table, err := GetSimpleText(a.reader, "Table number?", os.Stdout)
	if err != nil {
		return err
	}
	requiresApproval, err := GetYesNo(a.reader, "Require approval for new diners?", os.Stdout)
	if err != nil {
		return err
	}

	session, err := a.dir.CreateSession(ctx, restaurant, table, requiresApproval)
	if err != nil {
		printlnFn("Could not create session:", err)
		return err
	}

	pointer := &models.CachedSessionPointer{SessionID: session.ID, Role: models.RoleHost}
	if me := session.FindParticipantByUser(a.identity.UserID); me != nil {
		pointer.ParticipantID = me.ID
	}
	if err := a.cacheRepo.SavePointer(ctx, pointer); err != nil {
		return err
	}

	printlnFn("Session created. Share code:", session.ShareCode)
	return nil
}
