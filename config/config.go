// Package config resolves connection names to a database driver and
// connection string.
//
// Connections are read from a dotenv file and the process environment:
//
//	SIMPLEQUERY_<NAME>_DRIVER=sqlserver
//	SIMPLEQUERY_<NAME>_DSN=server=localhost;user id=sa;password=secret;database=app
//
// Environment variables take precedence over the file.
package config

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/joho/godotenv"
)

const (
	EnvPrefix    = "SIMPLEQUERY_"
	DSNSuffix    = "_DSN"
	DriverSuffix = "_DRIVER"

	// DefaultFile is read when no file is given; it may be absent.
	DefaultFile = ".env"
)

// ErrConnectionNotFound is returned by Lookup for names without a
// connection string.
var ErrConnectionNotFound = errors.New("connection string not found in the configuration")

// Connection is one named connection.
type Connection struct {
	Name   string
	Driver string
	DSN    string
}

// Config holds the configured connections, keyed by normalized name.
type Config struct {
	connections map[string]Connection
}

// Load reads connections from path and overlays the process environment.
// A missing file is an error unless path is DefaultFile.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultFile
	}
	vars, err := godotenv.Read(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) || path != DefaultFile {
			return nil, fmt.Errorf("error reading config file %s: %w", path, err)
		}
		vars = map[string]string{}
	}
	for _, kv := range os.Environ() {
		if k, v, ok := strings.Cut(kv, "="); ok && strings.HasPrefix(k, EnvPrefix) {
			vars[k] = v
		}
	}
	return FromMap(vars), nil
}

// FromMap builds a Config from SIMPLEQUERY_* variables. Other keys are
// ignored.
func FromMap(vars map[string]string) *Config {
	c := &Config{connections: map[string]Connection{}}
	for k, v := range vars {
		key := strings.ToUpper(k)
		if !strings.HasPrefix(key, EnvPrefix) {
			continue
		}
		rest := strings.TrimPrefix(key, EnvPrefix)
		var name string
		var isDriver bool
		switch {
		case strings.HasSuffix(rest, DSNSuffix):
			name = strings.TrimSuffix(rest, DSNSuffix)
		case strings.HasSuffix(rest, DriverSuffix):
			name = strings.TrimSuffix(rest, DriverSuffix)
			isDriver = true
		default:
			continue
		}
		if name == "" {
			continue
		}
		conn := c.connections[name]
		conn.Name = name
		if isDriver {
			conn.Driver = NormalizeDriver(v)
		} else {
			conn.DSN = strings.TrimSpace(v)
		}
		c.connections[name] = conn
	}
	return c
}

// Lookup returns the connection called name. Names match case-insensitively
// and '-', '.' and spaces match '_'.
func (c *Config) Lookup(name string) (Connection, error) {
	conn, ok := c.connections[NormalizeName(name)]
	if !ok || conn.DSN == "" {
		return Connection{}, fmt.Errorf("%w: %q", ErrConnectionNotFound, name)
	}
	if conn.Driver == "" {
		return Connection{}, fmt.Errorf("no driver configured for connection %q (set %s%s%s)", name, EnvPrefix, conn.Name, DriverSuffix)
	}
	return conn, nil
}

// Names returns the names of all connections that have a connection string,
// sorted.
func (c *Config) Names() []string {
	names := make([]string, 0, len(c.connections))
	for name, conn := range c.connections {
		if conn.DSN != "" {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// Connections returns all connections that have a connection string, sorted
// by name.
func (c *Config) Connections() []Connection {
	names := c.Names()
	out := make([]Connection, len(names))
	for i, name := range names {
		out[i] = c.connections[name]
	}
	return out
}

// NormalizeName maps a connection name to its variable form.
func NormalizeName(name string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '-', '.', ' ':
			return '_'
		}
		return r
	}, strings.ToUpper(strings.TrimSpace(name)))
}
