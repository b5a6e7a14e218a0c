// Package server wires the storage backend, the account service and the
// gRPC endpoint together and runs them until a shutdown signal arrives.
package server

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/dmitrijs2005/blogauth/internal/logging"
	"github.com/dmitrijs2005/blogauth/internal/server/config"
	"github.com/dmitrijs2005/blogauth/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/blogauth/internal/server/services"
	"github.com/sethvargo/go-retry"

	gs "github.com/dmitrijs2005/blogauth/internal/server/grpc"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// MemoryDSN selects the in-process account store instead of PostgreSQL.
const MemoryDSN = "memory://"

var ErrInsecureSecret = errors.New("token signing key is unset or the development default; set SECRET_ACCESS_KEY")

var (
	sqlOpen        = sql.Open
	connectBackoff = 200 * time.Millisecond
)

type App struct {
	config         *config.Config
	logger         logging.Logger
	db             *sql.DB
	accountService *services.AccountService
}

func NewApp(c *config.Config) (*App, error) {
	return newApp(context.Background(), c, logging.NewJSONLogger(os.Stdout, slog.LevelInfo))
}

func newApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {
	var (
		db *sql.DB
		rm repomanager.RepositoryManager
	)

	inMemory := strings.HasPrefix(c.DatabaseDSN, MemoryDSN)

	if c.SecretKey == "" || c.SecretKey == config.DevSecretKey {
		if !inMemory {
			return nil, ErrInsecureSecret
		}
		logger.Warn(ctx, "Signing tokens with the development key")
	}

	if inMemory {
		logger.Warn(ctx, "Using in-memory account store, data will not survive a restart")
		rm = repomanager.NewInMemoryRepositoryManager()
	} else {
		var err error
		db, err = openDB(ctx, c.DatabaseDSN, c.ConnectAttempts, logger)
		if err != nil {
			return nil, fmt.Errorf("db init error: %w", err)
		}
		rm = repomanager.NewPostgresRepositoryManager()
	}

	if err := rm.RunMigrations(ctx, db); err != nil {
		closeDB(db)
		return nil, fmt.Errorf("migration error: %w", err)
	}

	as, err := services.NewAccountService(db, rm, c, logger)
	if err != nil {
		closeDB(db)
		return nil, fmt.Errorf("account service init error: %w", err)
	}

	return &App{config: c, logger: logger, db: db, accountService: as}, nil
}

// openDB opens the pgx pool and pings it, retrying with exponential
// backoff, so a missing database fails at startup rather than on the
// first request.
func openDB(ctx context.Context, dsn string, attempts uint64, logger logging.Logger) (*sql.DB, error) {
	db, err := sqlOpen("pgx", dsn)
	if err != nil {
		return nil, err
	}

	if attempts == 0 {
		attempts = 1
	}
	b := retry.WithMaxRetries(attempts-1, retry.NewExponential(connectBackoff))

	err = retry.Do(ctx, b, func(ctx context.Context) error {
		if err := db.PingContext(ctx); err != nil {
			logger.Warn(ctx, "Database is not reachable", "error", err)
			return retry.RetryableError(err)
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

func closeDB(db *sql.DB) {
	if db != nil {
		db.Close()
	}
}

// initSignalHandler cancels on SIGINT, SIGTERM or SIGQUIT. The returned
// func stops signal delivery; it must be called once ctx is done.
func (app *App) initSignalHandler(ctx context.Context, cancelFunc context.CancelFunc) func() {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	done := make(chan struct{})
	go func() {
		defer close(done)
		select {
		case <-sigs:
			cancelFunc()
		case <-ctx.Done():
		}
	}()

	return func() {
		signal.Stop(sigs)
		<-done
	}
}

func (app *App) startGRPCServer(ctx context.Context, cancelFunc context.CancelFunc) {
	s := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger, app.accountService)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

// Run serves until ctx is cancelled or a termination signal is received,
// then releases the database.
func (app *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	stopSignals := app.initSignalHandler(ctx, cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startGRPCServer(ctx, cancelFunc)
	}()

	wg.Wait()

	cancelFunc()
	stopSignals()

	closeDB(app.db)
	app.logger.Info(context.Background(), "App stopped")
}
