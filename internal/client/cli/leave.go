package cli

import "context"

// Leave removes this device's membership and clears the cache.
func (a *App) Leave(ctx context.Context) error {
	pointer, err := a.cacheRepo.GetPointer(ctx)
	if err != nil {
		return err
	}
	if pointer == nil {
		printlnFn("No active session.")
		return nil
	}

	if err := a.dir.Leave(ctx, pointer.SessionID); err != nil {
		printlnFn("Leave failed:", err)
		return err
	}

	if err := a.cacheRepo.ClearPointer(ctx); err != nil {
		return err
	}
	printlnFn("Left the session.")
	return nil
}
