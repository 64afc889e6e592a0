package cmd

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"simplequery/config"
)

// invalidObjectPatterns match driver messages for queries that reference a
// missing table, view or procedure, in English and Spanish.
var invalidObjectPatterns = []string{
	"is not a valid object name",
	"invalid object name",
	"nombre de objeto",
	"does not exist",
	"no existe",
	"object does not exist",
	"table does not exist",
	"invalid table name",
	"could not find object",
	"could not find stored procedure",
	"no such table",
	"catalog error",
}

var connectionPatterns = []string{
	"cannot connect to database",
	"login failed",
	"password authentication failed",
	"connection refused",
	"no such host",
	"i/o timeout",
	"network is unreachable",
	"unable to open database file",
}

// matchesAny checks err and every error it wraps for one of patterns.
func matchesAny(err error, patterns []string) bool {
	for err != nil {
		errStr := strings.ToLower(err.Error())
		for _, pat := range patterns {
			if strings.Contains(errStr, pat) {
				return true
			}
		}
		err = errors.Unwrap(err)
	}
	return false
}

func isInvalidObjectError(err error) bool {
	return matchesAny(err, invalidObjectPatterns)
}

func isConnectionError(err error) bool {
	return matchesAny(err, connectionPatterns)
}

// describeError turns an error returned by a command into the message
// printed on stderr.
func describeError(err error) string {
	log.Printf("[DEBUG] describeError called with: %v (%T)\n", err, err)
	switch {
	case errors.Is(err, errUsage):
		return usageLine
	case errors.Is(err, config.ErrConnectionNotFound):
		return "Connection string not found in the configuration."
	}

	msg := fmt.Sprintf("An error occurred: %v", err)
	if verbose {
		root := err
		for errors.Unwrap(root) != nil {
			root = errors.Unwrap(root)
		}
		msg += fmt.Sprintf("\ncause: %T: %v", root, root)
	}
	switch {
	case isConnectionError(err):
		msg += "\n\ncheck the connection string and driver configured for this connection, and that the server is reachable"
	case isInvalidObjectError(err):
		msg += "\n\ncheck that every table, view or procedure in the query exists and is spelled correctly. if it belongs to another schema, use the qualified name (for example: schema.table)"
	}
	return msg
}
