// Package testutil provides shared helpers for tests that need a database.
package testutil

import (
	"context"
	"testing"

	"github.com/Veraticus/lifepath/internal/model"
	"github.com/Veraticus/lifepath/internal/storage"
)

// TestDB represents a test database with associated test utilities.
type TestDB struct {
	Storage  *storage.SQLiteStorage
	t        *testing.T
	Profiles []model.UserProfile
}

// SetupTestDB creates a new in-memory test database seeded with profiles.
// It automatically handles migrations and cleanup.
//
// Example:
//
//	db := testutil.SetupTestDB(t,
//		model.UserProfile{Name: "Ada Lovelace", DOB: "1815-12-10"},
//	)
//	id := db.MustProfileID("Ada Lovelace")
func SetupTestDB(t *testing.T, profiles ...model.UserProfile) *TestDB {
	t.Helper()

	store, err := storage.NewSQLiteStorage(storage.MemoryPath)
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}

	t.Cleanup(func() {
		_ = store.Close()
	})

	ctx := context.Background()
	if err := store.Migrate(ctx); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}

	seeded := make([]model.UserProfile, 0, len(profiles))
	for _, p := range profiles {
		if err := store.SaveProfile(ctx, &p); err != nil {
			t.Fatalf("failed to seed profile %q: %v", p.Name, err)
		}
		seeded = append(seeded, p)
	}

	return &TestDB{
		Storage:  store,
		Profiles: seeded,
		t:        t,
	}
}

// MustProfileID returns the ID of the seeded profile with the given name or
// fails the test.
func (db *TestDB) MustProfileID(name string) string {
	db.t.Helper()
	for _, p := range db.Profiles {
		if p.Name == name {
			return p.ID
		}
	}
	db.t.Fatalf("no seeded profile named %q", name)
	return ""
}
