package cmd

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"os/signal"
	"slices"
	"strings"
	"syscall"

	"simplequery/config"
)

// sqlOpen, dbPing and driverRegistered are package-level variables to allow
// test injection.
var sqlOpen = sql.Open
var dbPing = func(ctx context.Context, db *sql.DB) error { return db.PingContext(ctx) }
var driverRegistered = func(name string) bool { return slices.Contains(sql.Drivers(), name) }

// withDB opens the connection described by conn, sets up signal handling
// and the --timeout deadline, and calls fn with the live pool. The pool is
// closed when fn returns.
//
// Usage:
//
//	err := withDB(conn, func(ctx context.Context, db *sql.DB) error {
//	    // use db here
//	    return nil
//	})
func withDB(conn config.Connection, fn func(ctx context.Context, db *sql.DB) error) error {
	if !driverRegistered(conn.Driver) {
		return fmt.Errorf("unknown driver %q for connection %s (available: %s)", conn.Driver, conn.Name, strings.Join(sql.Drivers(), ", "))
	}
	db, err := sqlOpen(conn.Driver, conn.DSN)
	if err != nil {
		return fmt.Errorf("error creating connection pool: %w", err)
	}
	defer db.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	if err := dbPing(ctx, db); err != nil {
		return fmt.Errorf("cannot connect to database: %w", err)
	}
	log.Printf("[DEBUG] connected to %s using driver %s\n", conn.Name, conn.Driver)
	return fn(ctx, db)
}
