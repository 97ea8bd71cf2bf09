package settings

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/easel-works/easel/internal/domain"
	"github.com/easel-works/easel/internal/hotkey"
)

func newStoreAt(t *testing.T) *Store {
	t.Helper()
	return NewStore(zap.NewNop(), filepath.Join(t.TempDir(), "settings.json"))
}

func TestStoreLoadDefaultsWhenMissing(t *testing.T) {
	store := newStoreAt(t)

	got, err := store.Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Hotkey != hotkey.DefaultAccelerator {
		t.Errorf("Hotkey: expected '%s', got '%s'", hotkey.DefaultAccelerator, got.Hotkey)
	}
}

func TestStoreSaveLoadRoundTrip(t *testing.T) {
	store := newStoreAt(t)

	if err := store.Save(domain.Settings{Hotkey: "CmdOrCtrl+Alt+P"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := store.Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Hotkey != "CmdOrCtrl+Alt+P" {
		t.Errorf("Hotkey: expected 'CmdOrCtrl+Alt+P', got '%s'", got.Hotkey)
	}

	// The file on disk is the documented JSON shape
	data, err := os.ReadFile(store.Path())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var raw map[string]string
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("settings file is not valid JSON: %v", err)
	}
	if raw["hotkey"] != "CmdOrCtrl+Alt+P" {
		t.Errorf("hotkey field: expected 'CmdOrCtrl+Alt+P', got '%s'", raw["hotkey"])
	}
}

func TestStoreSaveLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(zap.NewNop(), filepath.Join(dir, "settings.json"))

	if err := store.Save(domain.Settings{Hotkey: "CmdOrCtrl+Shift+G"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := store.Save(domain.Settings{Hotkey: "CmdOrCtrl+Shift+H"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 1 || entries[0].Name() != "settings.json" {
		names := make([]string, 0, len(entries))
		for _, e := range entries {
			names = append(names, e.Name())
		}
		t.Errorf("expected only settings.json, got %v", names)
	}
}

func TestStoreLoadMalformedHotkeyFallsBack(t *testing.T) {
	store := newStoreAt(t)
	if err := os.WriteFile(store.Path(), []byte(`{"hotkey": "Shift+"}`), 0o644); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := store.Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Hotkey != hotkey.DefaultAccelerator {
		t.Errorf("Hotkey: expected fallback to '%s', got '%s'", hotkey.DefaultAccelerator, got.Hotkey)
	}
}

func TestStoreLoadEmptyHotkeyDefaults(t *testing.T) {
	store := newStoreAt(t)
	if err := os.WriteFile(store.Path(), []byte(`{}`), 0o644); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := store.Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Hotkey != hotkey.DefaultAccelerator {
		t.Errorf("Hotkey: expected '%s', got '%s'", hotkey.DefaultAccelerator, got.Hotkey)
	}
}

func TestStoreLoadRejectsBadJSON(t *testing.T) {
	store := newStoreAt(t)
	if err := os.WriteFile(store.Path(), []byte(`{"hotkey": `), 0o644); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err := store.Load()
	if err == nil {
		t.Fatal("expected an error for malformed JSON, got nil")
	}
	if !strings.Contains(err.Error(), "failed to parse settings") {
		t.Errorf("unexpected error message: '%s'", err.Error())
	}
}
