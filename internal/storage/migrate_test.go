package storage

import (
	"io/fs"
	"strings"
	"testing"
)

func TestEmbeddedMigrationsArePresent(t *testing.T) {
	entries, err := fs.ReadDir(migrations, migrationsDir)
	if err != nil {
		t.Fatalf("read embedded migrations: %v", err)
	}
	if len(entries) == 0 {
		t.Fatalf("expected at least one migration")
	}

	body, err := fs.ReadFile(migrations, migrationsDir+"/"+entries[0].Name())
	if err != nil {
		t.Fatalf("read migration: %v", err)
	}
	for _, marker := range []string{"-- +goose Up", "-- +goose Down", "marketplace_listings"} {
		if !strings.Contains(string(body), marker) {
			t.Fatalf("migration %s missing %q", entries[0].Name(), marker)
		}
	}
}
