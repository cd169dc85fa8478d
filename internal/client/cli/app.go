// Package cli implements the interactive SharedTab client: a REPL driving
// the join/approval flow, the local cache and the reconciler.
package cli

import (
	"bufio"
	"context"
	"log/slog"
	"os"
	"sync"

	"github.com/dkrasnenko/sharedtab/internal/client/cache"
	"github.com/dkrasnenko/sharedtab/internal/client/client"
	"github.com/dkrasnenko/sharedtab/internal/client/config"
	"github.com/dkrasnenko/sharedtab/internal/client/join"
	"github.com/dkrasnenko/sharedtab/internal/client/models"
	"github.com/dkrasnenko/sharedtab/internal/client/reconcile"
	"github.com/dkrasnenko/sharedtab/internal/logging"
)

type App struct {
	config       *config.Config
	dir          client.Directory
	cacheRepo    cache.Repository
	orchestrator *join.Orchestrator
	logger       logging.Logger
	reader       *bufio.Reader

	identity *models.DeviceIdentity

	mu      sync.Mutex
	pending *join.Pending
}

func NewApp(c *config.Config) (*App, error) {

	ctx := context.Background()

	sl := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	logger := logging.NewSlogLogger(sl)

	db, err := client.InitDatabase(ctx, c.DBFileName)
	if err != nil {
		return nil, err
	}

	apiClient, err := client.NewSharedTabClientService(c.ServerEndpointAddr)
	if err != nil {
		return nil, err
	}

	cacheRepo := cache.NewSQLiteRepository(db)
	orchestrator := join.NewOrchestrator(apiClient, logger, c.PollInterval)

	return &App{
		config:       c,
		dir:          apiClient,
		cacheRepo:    cacheRepo,
		orchestrator: orchestrator,
		logger:       logger,
		reader:       bufio.NewReader(os.Stdin),
	}, nil
}

func (a *App) Run(ctx context.Context) {
	defer a.dir.Close()

	if err := a.ensureRegistered(ctx); err != nil {
		a.logger.Error(ctx, "device registration failed", "error", err)
		return
	}

	a.offerRejoin(ctx)
	a.Root(ctx)
}

// ensureRegistered loads the persisted device identity or registers a new
// one, and installs its access token on the transport.
func (a *App) ensureRegistered(ctx context.Context) error {
	identity, err := a.cacheRepo.GetIdentity(ctx)
	if err != nil {
		return err
	}

	if identity == nil {
		name, err := GetSimpleText(a.reader, "What name should other diners see?", os.Stdout)
		if err != nil {
			return err
		}

		identity, err = a.dir.RegisterDevice(ctx, name)
		if err != nil {
			return err
		}
		if err := a.cacheRepo.SaveIdentity(ctx, identity); err != nil {
			return err
		}
	}

	a.identity = identity
	if setter, ok := a.dir.(interface{ SetAccessToken(string) }); ok {
		setter.SetAccessToken(identity.AccessToken)
	}
	return nil
}

func (a *App) hasPendingJoin() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.pending != nil
}

func (a *App) setPending(p *join.Pending) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.pending = p
}

func (a *App) takePending() *join.Pending {
	a.mu.Lock()
	defer a.mu.Unlock()
	p := a.pending
	a.pending = nil
	return p
}

func (a *App) reconciler() *reconcile.Reconciler {
	userID := ""
	if a.identity != nil {
		userID = a.identity.UserID
	}
	return reconcile.NewReconciler(a.dir, a.cacheRepo, a.logger, userID)
}
