package config

import "strings"

// driverAliases maps provider names, including the ADO.NET invariant names
// used by older connection configurations, to database/sql driver names.
var driverAliases = map[string]string{
	"sqlserver":                "sqlserver",
	"mssql":                    "sqlserver",
	"system.data.sqlclient":    "sqlserver",
	"microsoft.data.sqlclient": "sqlserver",
	"postgres":                 "postgres",
	"postgresql":               "postgres",
	"pq":                       "postgres",
	"npgsql":                   "postgres",
	"sqlite3":                  "sqlite3",
	"system.data.sqlite":       "sqlite3",
	"microsoft.data.sqlite":    "sqlite3",
	"sqlite":                   "sqlite",
	"duckdb":                   "duckdb",
	"duckdb.net.data":          "duckdb",
}

// NormalizeDriver returns the database/sql driver name for a provider name.
// Unknown names are returned trimmed but otherwise unchanged.
func NormalizeDriver(provider string) string {
	p := strings.TrimSpace(provider)
	if d, ok := driverAliases[strings.ToLower(p)]; ok {
		return d
	}
	return p
}
