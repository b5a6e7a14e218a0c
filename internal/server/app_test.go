package server

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"syscall"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/blogauth/internal/logging"
	"github.com/dmitrijs2005/blogauth/internal/server/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func testConfig() *config.Config {
	c := &config.Config{}
	c.LoadDefaults()
	c.EndpointAddrGRPC = "127.0.0.1:0"
	c.DatabaseDSN = MemoryDSN
	c.BcryptCost = 4
	return c
}

func stubOpen(t *testing.T, db *sql.DB, err error) {
	t.Helper()
	origOpen, origBackoff := sqlOpen, connectBackoff
	t.Cleanup(func() { sqlOpen, connectBackoff = origOpen, origBackoff })

	connectBackoff = time.Millisecond
	sqlOpen = func(driver, dsn string) (*sql.DB, error) {
		assert.Equal(t, "pgx", driver)
		return db, err
	}
}

func TestNewApp_InMemory(t *testing.T) {
	app, err := newApp(context.Background(), testConfig(), logging.Nop{})
	require.NoError(t, err)
	assert.Nil(t, app.db)
	assert.NotNil(t, app.accountService)
}

func TestNewApp_BadSecret(t *testing.T) {
	c := testConfig()
	c.SecretKey = ""

	_, err := newApp(context.Background(), c, logging.Nop{})
	assert.Error(t, err)
}

func TestNewApp_DevSecretRejectedForPostgres(t *testing.T) {
	for _, secret := range []string{"", config.DevSecretKey} {
		origOpen := sqlOpen
		opened := false
		sqlOpen = func(string, string) (*sql.DB, error) {
			opened = true
			return nil, errors.New("must not be called")
		}

		c := testConfig()
		c.DatabaseDSN = "postgres://x"
		c.SecretKey = secret

		_, err := newApp(context.Background(), c, logging.Nop{})
		sqlOpen = origOpen

		assert.ErrorIs(t, err, ErrInsecureSecret, "secret %q", secret)
		assert.False(t, opened, "database opened with secret %q", secret)
	}
}

func TestOpenDB_RetriesUntilPingSucceeds(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectPing().WillReturnError(errors.New("connection refused"))
	mock.ExpectPing()
	stubOpen(t, db, nil)

	got, err := openDB(context.Background(), "postgres://x", 3, logging.Nop{})
	require.NoError(t, err)
	assert.Same(t, db, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOpenDB_GivesUp(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)

	boom := errors.New("connection refused")
	mock.ExpectPing().WillReturnError(boom)
	mock.ExpectPing().WillReturnError(boom)
	mock.ExpectClose()
	stubOpen(t, db, nil)

	_, err = openDB(context.Background(), "postgres://x", 2, logging.Nop{})
	assert.ErrorIs(t, err, boom)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOpenDB_OpenError(t *testing.T) {
	boom := errors.New("bad dsn")
	stubOpen(t, nil, boom)

	_, err := openDB(context.Background(), "::", 1, logging.Nop{})
	assert.ErrorIs(t, err, boom)
}

func TestNewApp_MigrationFailureClosesDB(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)

	mock.ExpectPing()
	mock.ExpectClose()
	stubOpen(t, db, nil)

	c := testConfig()
	c.DatabaseDSN = "postgres://x"
	c.SecretKey = "s3cr3t"

	// goose issues its own queries; with no expectations set they fail.
	_, err = newApp(context.Background(), c, logging.Nop{})
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRun_StopsOnCancel(t *testing.T) {
	app, err := newApp(context.Background(), testConfig(), logging.Nop{})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		app.Run(ctx)
		close(done)
	}()

	time.Sleep(100 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("app did not stop after cancel")
	}
}

func TestRun_StopsOnListenError(t *testing.T) {
	c := testConfig()
	c.EndpointAddrGRPC = "127.0.0.1:99999"
	app, err := newApp(context.Background(), c, logging.Nop{})
	require.NoError(t, err)

	done := make(chan struct{})
	go func() {
		app.Run(context.Background())
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("app did not stop after listen error")
	}
}

func TestSignalHandler_ReleasedOnCancel(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	ctx, cancel := context.WithCancel(context.Background())
	stop := (&App{}).initSignalHandler(ctx, cancel)
	cancel()

	finished := make(chan struct{})
	go func() {
		stop()
		close(finished)
	}()

	select {
	case <-finished:
	case <-time.After(time.Second):
		t.Fatal("signal goroutine still running after cancel")
	}
}

func TestSignalHandler_CancelsOnSignal(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	stop := (&App{}).initSignalHandler(ctx, cancel)
	defer stop()

	require.NoError(t, syscall.Kill(os.Getpid(), syscall.SIGTERM))

	select {
	case <-ctx.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("context not cancelled by SIGTERM")
	}
}
