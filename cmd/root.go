// Package cmd contains the command-line interface of simplequery.
//
// simplequery runs one query against a named connection and prints every
// result set as tab-separated text:
//
//	simplequery reporting "SELECT id, name FROM customers"
//
// Connections are configured in a dotenv file (default .env) or in the
// environment, see package config.
package cmd

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

const usageLine = "Usage: simplequery <connection_name> <query>"

var errUsage = errors.New(usageLine)

var (
	configFile string
	verbose    bool
	timeout    time.Duration
)

// exitFunc is replaced in tests.
var exitFunc = os.Exit

var rootCmd = &cobra.Command{
	Use:   "simplequery [flags] <connection_name> <query>",
	Short: "Run a query against a named connection and print the results as TSV",
	Long: `Run a query against a named, pre-configured database connection and print
every result set as tab-separated text. Each result set that returns rows
starts with a header line; a blank line follows every result set.

Connections are read from the config file and the environment:
  SIMPLEQUERY_<NAME>_DRIVER   sqlserver, postgres, sqlite3, sqlite or duckdb
  SIMPLEQUERY_<NAME>_DSN      driver-specific connection string

Pass "-" as the query to read it from standard input. A query that starts
with "-", such as one opening with a "--" comment, goes after a "--"
separator:
  simplequery reporting -- "-- monthly totals
  SELECT 1"`,
	Args:          checkQueryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		configureLogging(cmd.ErrOrStderr())
	},
	RunE: runQuery,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", ".env", "dotenv file with SIMPLEQUERY_<NAME>_DSN/_DRIVER entries")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print debug logs and error details to stderr")
	rootCmd.Flags().DurationVar(&timeout, "timeout", 0, "abort the query after this duration (0 means no limit)")
}

// Execute runs the root command and exits with status 1 on failure.
func Execute() {
	// Flag and argument errors return before PersistentPreRun runs.
	configureLogging(os.Stderr)
	if err := rootCmd.Execute(); err != nil {
		configureLogging(os.Stderr)
		fmt.Fprintln(os.Stderr, describeError(err))
		exitFunc(1)
	}
}

func checkQueryArgs(cmd *cobra.Command, args []string) error {
	if len(args) != 2 || strings.TrimSpace(args[0]) == "" || strings.TrimSpace(args[1]) == "" {
		return errUsage
	}
	return nil
}

// configureLogging sends [DEBUG] log lines to w in verbose mode and drops
// them otherwise.
func configureLogging(w io.Writer) {
	if verbose {
		log.SetOutput(w)
		return
	}
	log.SetOutput(io.Discard)
}
