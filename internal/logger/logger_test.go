package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultLoggerIsUsable(t *testing.T) {
	// Before Init the package-level logger must accept writes without panicking.
	Info("message before init")
	Warn("warning before init")
	Sugar.Debugf("sugar before init: %d", 42)
}

func TestInitWritesToFile(t *testing.T) {
	tempDir := t.TempDir()
	logFile := filepath.Join(tempDir, "test.log")

	if err := Init("debug", logFile, false); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	defer Sync()

	Info("file target check")
	Sync()

	data, err := os.ReadFile(logFile)
	if err != nil {
		t.Fatalf("reading log file: %v", err)
	}
	if !strings.Contains(string(data), "file target check") {
		t.Errorf("log file missing entry, got: %s", data)
	}
}

func TestParseLevel(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want string
	}{
		{"debug", "debug"},
		{"warn", "warn"},
		{"error", "error"},
		{"info", "info"},
		{"bogus", "info"},
	} {
		if got := parseLevel(tc.in).String(); got != tc.want {
			t.Errorf("parseLevel(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}
