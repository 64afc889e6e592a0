package cmd

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"log"
	"strings"
	"time"

	"simplequery/config"
	"simplequery/resultset"

	"github.com/spf13/cobra"
)

func runQuery(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configFile)
	if err != nil {
		return err
	}
	conn, err := cfg.Lookup(args[0])
	if err != nil {
		return err
	}
	query, err := readQuery(args[1], cmd.InOrStdin())
	if err != nil {
		return err
	}
	return withDB(conn, func(ctx context.Context, db *sql.DB) error {
		out := bufio.NewWriter(cmd.OutOrStdout())
		err := executeQuery(ctx, db, query, out)
		if flushErr := out.Flush(); err == nil && flushErr != nil {
			err = fmt.Errorf("error writing output: %w", flushErr)
		}
		return err
	})
}

// readQuery returns arg, or the text read from stdin when arg is "-".
func readQuery(arg string, stdin io.Reader) (string, error) {
	if arg != "-" {
		return arg, nil
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("error reading query from stdin: %w", err)
	}
	query := strings.TrimSpace(string(data))
	if query == "" {
		return "", errUsage
	}
	return query, nil
}

// executeQuery runs query and renders all of its result sets to w.
func executeQuery(ctx context.Context, db *sql.DB, query string, w io.Writer) error {
	start := time.Now()
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return err
	}
	defer rows.Close()

	if err := resultset.RenderAll(resultset.NewSQLCursor(rows), w); err != nil {
		return err
	}
	log.Printf("[DEBUG] query completed in %s\n", time.Since(start))
	return nil
}
