// simplequery is a CLI tool that runs a query against a named database
// connection and prints every result set as tab-separated text.
//
// Usage:
//
//	simplequery [flags] <connection_name> <query>
//	  Run the query and print its result sets
//	simplequery connections
//	  List the configured connections
//	simplequery version
//	  Print the version number
//
// Connections are configured with SIMPLEQUERY_<NAME>_DRIVER and
// SIMPLEQUERY_<NAME>_DSN, in a .env file or in the environment.
package main

import (
	"simplequery/cmd"

	_ "github.com/denisenkom/go-mssqldb"
	_ "github.com/lib/pq"
	_ "github.com/marcboeker/go-duckdb"
	_ "github.com/mattn/go-sqlite3"
	_ "modernc.org/sqlite"
)

func main() {
	cmd.Execute()
}
