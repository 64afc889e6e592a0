package cmd

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"simplequery/config"
)

type wrapErr struct{ inner error }

func (w wrapErr) Error() string { return "wrap: " + w.inner.Error() }
func (w wrapErr) Unwrap() error { return w.inner }

type customErr struct{}

func (c customErr) Error() string { return "definitely not a known error" }

func TestIsInvalidObjectError_MatchesPatterns(t *testing.T) {
	for _, pat := range invalidObjectPatterns {
		err := fmt.Errorf("some error: %s", pat)
		if !isInvalidObjectError(err) {
			t.Errorf("expected true for pattern: %q", pat)
		}
	}
}

func TestIsInvalidObjectError_Spanish(t *testing.T) {
	err := fmt.Errorf("el nombre de objeto 'foo' no es válido")
	if !isInvalidObjectError(err) {
		t.Error("expected true for Spanish error")
	}
}

func TestIsInvalidObjectError_Unwrap(t *testing.T) {
	base := errors.New("Invalid object name 'x'")
	if !isInvalidObjectError(wrapErr{base}) {
		t.Error("expected true for wrapped error")
	}
	if isInvalidObjectError(wrapErr{customErr{}}) {
		t.Error("expected false for wrapped custom error")
	}
}

func TestIsInvalidObjectError_Nil(t *testing.T) {
	if isInvalidObjectError(nil) || isConnectionError(nil) {
		t.Error("expected false for nil error")
	}
}

func TestIsConnectionError(t *testing.T) {
	for _, pat := range connectionPatterns {
		if !isConnectionError(fmt.Errorf("wrap1: %w", errors.New(strings.ToUpper(pat)))) {
			t.Errorf("expected true for pattern: %q", pat)
		}
	}
	if isConnectionError(customErr{}) {
		t.Error("expected false for custom error")
	}
}

func TestDescribeError(t *testing.T) {
	if got := describeError(errUsage); got != usageLine {
		t.Errorf("unexpected usage message: %s", got)
	}
	if got := describeError(fmt.Errorf("%w: %q", config.ErrConnectionNotFound, "x")); got != "Connection string not found in the configuration." {
		t.Errorf("unexpected not found message: %s", got)
	}
	if got := describeError(customErr{}); got != "An error occurred: definitely not a known error" {
		t.Errorf("unexpected generic message: %s", got)
	}
	got := describeError(fmt.Errorf("cannot connect to database: %w", errors.New("login failed for user 'sa'")))
	if !containsAll(got, []string{"An error occurred: cannot connect to database", "check the connection string"}) {
		t.Errorf("expected connection hint, got: %s", got)
	}
}

func TestDescribeError_Verbose(t *testing.T) {
	verbose = true
	defer func() { verbose = false }()
	got := describeError(fmt.Errorf("outer: %w", customErr{}))
	if !strings.Contains(got, "cause: cmd.customErr: definitely not a known error") {
		t.Errorf("expected root cause detail, got: %s", got)
	}
}
