// Package server wires the application together: configuration, logging,
// database, the sessions service with its event hub, and the gRPC transport.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/dkrasnenko/sharedtab/internal/logging"
	"github.com/dkrasnenko/sharedtab/internal/server/config"
	"github.com/dkrasnenko/sharedtab/internal/server/events"
	"github.com/dkrasnenko/sharedtab/internal/server/repositories/repomanager"
	"github.com/dkrasnenko/sharedtab/internal/server/sessions"
	"github.com/sethvargo/go-retry"

	gs "github.com/dkrasnenko/sharedtab/internal/server/grpc"
)

type App struct {
	config         *config.Config
	logger         logging.Logger
	db             *sql.DB
	hub            *events.Hub
	sessionService *sessions.Service
}

func NewApp(c *config.Config) (*App, error) {

	sl := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	logger := logging.NewSlogLogger(sl)

	db, err := sql.Open("pgx", c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	if err := pingWithRetry(context.Background(), db); err != nil {
		return nil, fmt.Errorf("db ping error: %w", err)
	}

	manager := repomanager.NewPostgresRepositoryManager()
	if err := manager.RunMigrations(context.Background(), db); err != nil {
		return nil, fmt.Errorf("db migration error: %w", err)
	}

	hub := events.NewHub()
	svc := sessions.NewService(db, manager, hub, c.MaxParticipants)

	return &App{config: c, logger: logger, db: db, hub: hub, sessionService: svc}, nil
}

// pingWithRetry waits for the database to accept connections, backing off
// between attempts. Containerized deployments often start the database and
// the server together.
func pingWithRetry(ctx context.Context, db *sql.DB) error {
	backoff := retry.WithMaxRetries(5, retry.NewExponential(1*time.Second))
	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		return retry.RetryableError(db.PingContext(ctx))
	})
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startGRPCServer(ctx context.Context, cancelFunc context.CancelFunc) {

	s, err := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger, app.sessionService, app.hub,
		app.config.SecretKey, app.config.AccessTokenValidityDuration)

	if err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
		return
	}

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startGRPCServer(ctx, cancelFunc)
	}()

	wg.Wait()

	if err := app.db.Close(); err != nil {
		app.logger.Error(ctx, "db close error", "error", err)
	}
}
