package cmd

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"testing"
	"time"

	"simplequery/config"

	"github.com/DATA-DOG/go-sqlmock"
)

var testConn = config.Connection{Name: "TEST", Driver: "sqlmock", DSN: "test-dsn"}

// mockFn is a helper to test the callback logic.
func mockFn(ctx context.Context, db *sql.DB) error {
	return nil
}

// injectDB replaces sqlOpen and dbPing for the duration of the test.
func injectDB(t *testing.T, db *sql.DB, pingErr error) {
	t.Helper()
	origOpen, origPing := sqlOpen, dbPing
	t.Cleanup(func() { sqlOpen, dbPing = origOpen, origPing })
	sqlOpen = func(driver, dsn string) (*sql.DB, error) {
		if driver != testConn.Driver || dsn != testConn.DSN {
			return nil, fmt.Errorf("unexpected driver %q or dsn %q", driver, dsn)
		}
		return db, nil
	}
	dbPing = func(ctx context.Context, db *sql.DB) error { return pingErr }
}

func TestWithDB_UnknownDriver(t *testing.T) {
	err := withDB(config.Connection{Name: "X", Driver: "oracle", DSN: "dsn"}, mockFn)
	if err == nil || !strings.Contains(err.Error(), `unknown driver "oracle"`) {
		t.Errorf("expected unknown driver error, got: %v", err)
	}
}

func TestWithDB_SuccessfulConnectionAndCallback(t *testing.T) {
	mockDB, _, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer mockDB.Close()
	injectDB(t, mockDB, nil)

	called := false
	err = withDB(testConn, func(ctx context.Context, db *sql.DB) error {
		called = db == mockDB
		return nil
	})
	if err != nil {
		t.Errorf("expected no error, got: %v", err)
	}
	if !called {
		t.Error("expected callback to be called with the opened pool")
	}
}

func TestWithDB_ConnectionError(t *testing.T) {
	origOpen := sqlOpen
	defer func() { sqlOpen = origOpen }()
	sqlOpen = func(driver, dsn string) (*sql.DB, error) {
		return nil, fmt.Errorf("open fail")
	}
	err := withDB(testConn, mockFn)
	if err == nil || !strings.Contains(err.Error(), "error creating connection pool") {
		t.Errorf("expected connection pool error, got: %v", err)
	}
}

func TestWithDB_PingError(t *testing.T) {
	mockDB, _, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer mockDB.Close()
	injectDB(t, mockDB, fmt.Errorf("ping fail"))

	err = withDB(testConn, mockFn)
	if err == nil || !strings.Contains(err.Error(), "cannot connect to database") || !strings.Contains(err.Error(), "ping fail") {
		t.Errorf("expected ping error, got: %v", err)
	}
}

func TestWithDB_CallbackError(t *testing.T) {
	mockDB, _, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer mockDB.Close()
	injectDB(t, mockDB, nil)

	cbErr := fmt.Errorf("callback fail")
	err = withDB(testConn, func(ctx context.Context, db *sql.DB) error { return cbErr })
	if err != cbErr {
		t.Errorf("expected callback error unchanged, got: %v", err)
	}
}

func TestWithDB_Timeout(t *testing.T) {
	mockDB, _, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer mockDB.Close()
	injectDB(t, mockDB, nil)

	timeout = time.Minute
	defer func() { timeout = 0 }()
	err = withDB(testConn, func(ctx context.Context, db *sql.DB) error {
		if _, ok := ctx.Deadline(); !ok {
			return fmt.Errorf("expected a deadline")
		}
		return nil
	})
	if err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}
