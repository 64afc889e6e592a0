package cmd

import (
	"strings"
	"testing"
)

func TestConnections_List(t *testing.T) {
	path := writeConfig(t, testConfig+
		"SIMPLEQUERY_ARCHIVE_DSN=secret-archive-dsn\n"+
		"SIMPLEQUERY_ARCHIVE_DRIVER=oracle\n"+
		"SIMPLEQUERY_LOOSE_DSN=secret-loose-dsn\n")
	out, err := execute(t, "", "connections", "--config", path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !containsAll(out, []string{"Name", "Driver", "TEST", "sqlmock", "yes", "ARCHIVE", "oracle", "no", "LOOSE", "(none)"}) {
		t.Errorf("unexpected connections output: %s", out)
	}
	if strings.Contains(out, "secret") || strings.Contains(out, "test-dsn") {
		t.Errorf("connection strings must not be printed: %s", out)
	}
	if strings.Index(out, "ARCHIVE") > strings.Index(out, "TEST") {
		t.Errorf("expected connections sorted by name: %s", out)
	}
}

func TestConnections_Empty(t *testing.T) {
	path := writeConfig(t, "OTHER=1\n")
	out, err := execute(t, "", "connections", "--config", path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "(no connections configured)") {
		t.Errorf("unexpected output: %s", out)
	}
}

func TestConnections_Help(t *testing.T) {
	out, err := execute(t, "", "connections", "--help")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !containsAll(out, []string{"Usage:", "connections"}) {
		t.Errorf("expected help output for connections, got: %s", out)
	}
}
