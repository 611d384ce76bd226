package logger

import (
	"path/filepath"
	"testing"
)

func TestGetLogsMissingFile(t *testing.T) {
	l := NewIsolatedLogger(filepath.Join(t.TempDir(), "never-written.jsonl"))

	entries, err := l.GetLogs("", 10, 0)
	if err != nil {
		t.Fatalf("GetLogs failed: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("got %d entries from a missing file, want 0", len(entries))
	}
}

func TestGetLogsReadsBackWrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log.jsonl")
	l := NewIsolatedLogger(path)

	l.Info("auth", "user logged in", map[string]interface{}{"username": "maya"})
	l.Warn("auth", "login throttled", nil)
	if err := l.Sync(); err != nil {
		t.Fatalf("Sync failed: %v", err)
	}

	entries, err := l.GetLogs("", 10, 0)
	if err != nil {
		t.Fatalf("GetLogs failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}

	// Newest first.
	if entries[0].Message != "login throttled" {
		t.Errorf("first entry = %q, want the most recent write", entries[0].Message)
	}
	if entries[1].Module != "auth" {
		t.Errorf("module = %q, want auth", entries[1].Module)
	}
	if entries[1].Details["username"] != "maya" {
		t.Errorf("details username = %v, want maya", entries[1].Details["username"])
	}
	for _, e := range entries {
		if e.Id == "" {
			t.Error("entry missing derived id")
		}
	}
}

func TestGetLogsLevelFilterAndPaging(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log.jsonl")
	l := NewIsolatedLogger(path)

	l.Info("cart", "item added", nil)
	l.Error("cart", "checkout failed", nil)
	l.Info("cart", "item removed", nil)
	if err := l.Sync(); err != nil {
		t.Fatalf("Sync failed: %v", err)
	}

	errs, err := l.GetLogs("ERROR", 10, 0)
	if err != nil {
		t.Fatalf("GetLogs failed: %v", err)
	}
	if len(errs) != 1 || errs[0].Message != "checkout failed" {
		t.Fatalf("level filter returned %+v, want the single error line", errs)
	}

	page, err := l.GetLogs("INFO", 1, 1)
	if err != nil {
		t.Fatalf("GetLogs failed: %v", err)
	}
	if len(page) != 1 || page[0].Message != "item added" {
		t.Fatalf("paging returned %+v, want the older info line", page)
	}

	past, err := l.GetLogs("", 10, 50)
	if err != nil {
		t.Fatalf("GetLogs failed: %v", err)
	}
	if len(past) != 0 {
		t.Errorf("offset past end returned %d entries, want 0", len(past))
	}
}

func TestGetLogById(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log.jsonl")
	l := NewIsolatedLogger(path)

	l.Info("auth", "session created", nil)
	if err := l.Sync(); err != nil {
		t.Fatalf("Sync failed: %v", err)
	}

	entries, err := l.GetLogs("", 1, 0)
	if err != nil {
		t.Fatalf("GetLogs failed: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}

	got, err := l.GetLogById(entries[0].Id)
	if err != nil {
		t.Fatalf("GetLogById failed: %v", err)
	}
	if got.Message != "session created" {
		t.Errorf("message = %q, want %q", got.Message, "session created")
	}

	if _, err := l.GetLogById("no-such-id"); err == nil {
		t.Error("expected error for unknown id")
	}
}
