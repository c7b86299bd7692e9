package store

import (
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"
)

type record struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestFileStoreRoundtrip(t *testing.T) {
	fs, err := NewFile(t.TempDir(), zap.NewNop())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	fs.Set("sample", record{Name: "acme", Count: 3})

	var got record
	if !GetJSON(fs, "sample", &got) {
		t.Fatalf("expected value to be present")
	}
	if got.Name != "acme" || got.Count != 3 {
		t.Fatalf("unexpected value: %+v", got)
	}
}

func TestFileStoreMissingKey(t *testing.T) {
	fs, err := NewFile(t.TempDir(), zap.NewNop())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, ok := fs.Get("absent"); ok {
		t.Fatalf("absent key must report absence")
	}

	var got record
	if GetJSON(fs, "absent", &got) {
		t.Fatalf("GetJSON must report absence")
	}
}

func TestFileStoreMalformedValueReadsAsAbsent(t *testing.T) {
	dir := t.TempDir()
	fs, err := NewFile(dir, zap.NewNop())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := os.WriteFile(filepath.Join(dir, "broken.json"), []byte("{oops"), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	got := record{Name: "untouched"}
	if GetJSON(fs, "broken", &got) {
		t.Fatalf("malformed value must read as absent")
	}
	if got.Name != "untouched" {
		t.Fatalf("dest must be left untouched, got %+v", got)
	}
}

func TestFileStoreDelete(t *testing.T) {
	fs, err := NewFile(t.TempDir(), zap.NewNop())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	fs.Set("sample", record{Name: "acme"})
	fs.Delete("sample")
	if _, ok := fs.Get("sample"); ok {
		t.Fatalf("deleted key must be absent")
	}

	// Deleting an absent key is a no-op.
	fs.Delete("sample")
}

func TestFileStoreCreatesStateDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "state")

	if _, err := NewFile(dir, zap.NewNop()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := os.Stat(dir); err != nil {
		t.Fatalf("state directory not created: %v", err)
	}
}

func TestMemoryStore(t *testing.T) {
	m := NewMemory()

	if _, ok := m.Get("absent"); ok {
		t.Fatalf("absent key must report absence")
	}

	m.Set("sample", record{Name: "acme", Count: 1})
	var got record
	if !GetJSON(m, "sample", &got) {
		t.Fatalf("expected value to be present")
	}
	if got.Name != "acme" || got.Count != 1 {
		t.Fatalf("unexpected value: %+v", got)
	}

	m.Delete("sample")
	if _, ok := m.Get("sample"); ok {
		t.Fatalf("deleted key must be absent")
	}
}
