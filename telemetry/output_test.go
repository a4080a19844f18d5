package telemetry

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestOutputManagerDisabled(t *testing.T) {
	om, err := NewOutputManager("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if om != nil {
		t.Fatal("expected nil manager for empty dir")
	}
	// Writes to a nil manager are no-ops.
	if err := om.WriteStats(WindowStats{}); err != nil {
		t.Errorf("nil manager write failed: %v", err)
	}
	if err := om.Close(); err != nil {
		t.Errorf("nil manager close failed: %v", err)
	}
}

func TestOutputManagerWritesCSV(t *testing.T) {
	dir := t.TempDir()
	om, err := NewOutputManager(dir)
	if err != nil {
		t.Fatalf("creating manager: %v", err)
	}

	if err := om.WriteStats(WindowStats{WindowEnd: 120, Frames: 120, FPS: 60}); err != nil {
		t.Fatalf("first write: %v", err)
	}
	if err := om.WriteStats(WindowStats{WindowEnd: 240, Frames: 120, FPS: 59}); err != nil {
		t.Fatalf("second write: %v", err)
	}
	if err := om.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "frames.csv"))
	if err != nil {
		t.Fatalf("reading frames.csv: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header + 2 records, got %d lines", len(lines))
	}
	if !strings.Contains(lines[0], "window_end") {
		t.Errorf("missing header, got %q", lines[0])
	}
	// Header written once only.
	if strings.Contains(lines[1], "window_end") || strings.Contains(lines[2], "window_end") {
		t.Error("header repeated in data rows")
	}
}
