//go:build integration

package db

import (
	"context"
	"os"
	"testing"

	"github.com/google/uuid"

	"github.com/jonathan/autoresume/internal/types"
)

func getTestDB(t *testing.T) *DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping integration test")
	}

	ctx := context.Background()
	db, err := Connect(ctx, dsn)
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}
	if err := db.EnsureSchema(ctx); err != nil {
		t.Fatalf("EnsureSchema failed: %v", err)
	}

	// Clean up test data before each test
	_, _ = db.pool.Exec(ctx, "DELETE FROM resume_builds WHERE full_name LIKE 'Integration Test%'")

	return db
}

func TestIntegration_Build_CRUD(t *testing.T) {
	db := getTestDB(t)
	defer db.Close()
	ctx := context.Background()

	raw := &types.RawResume{
		Contact:  types.Contact{FullName: "Integration Test User"},
		Projects: []types.RawEntry{{Title: "Site", Summary: "Built a website.", Tools: types.ToolList{"Go"}}},
	}
	resume := &types.Resume{
		Contact:  raw.Contact,
		Projects: []types.Entry{{Title: "Site", Bullets: []string{"• Built a website using Go, enhancing usability."}}},
	}

	var id uuid.UUID
	t.Run("save build", func(t *testing.T) {
		var err error
		id, err = db.SaveBuild(ctx, raw, resume)
		if err != nil {
			t.Fatalf("SaveBuild failed: %v", err)
		}
		if id == uuid.Nil {
			t.Error("Build ID should not be nil")
		}
	})

	t.Run("get build", func(t *testing.T) {
		record, err := db.GetBuild(ctx, id)
		if err != nil {
			t.Fatalf("GetBuild failed: %v", err)
		}
		if record == nil {
			t.Fatal("Build should exist")
		}
		if got := record.Output.Projects[0].Bullets[0]; got != resume.Projects[0].Bullets[0] {
			t.Errorf("bullet = %q, want %q", got, resume.Projects[0].Bullets[0])
		}
		if got := record.Input.Projects[0].Tools; len(got) != 1 || got[0] != "Go" {
			t.Errorf("tools = %v, want [Go]", got)
		}
	})

	t.Run("missing build", func(t *testing.T) {
		record, err := db.GetBuild(ctx, uuid.New())
		if err != nil {
			t.Fatalf("GetBuild failed: %v", err)
		}
		if record != nil {
			t.Error("Expected nil for unknown build")
		}
	})

	t.Run("list builds", func(t *testing.T) {
		summaries, err := db.ListBuilds(ctx, 5)
		if err != nil {
			t.Fatalf("ListBuilds failed: %v", err)
		}
		found := false
		for _, s := range summaries {
			if s.ID == id {
				found = true
				if s.FullName != "Integration Test User" {
					t.Errorf("FullName = %q", s.FullName)
				}
			}
		}
		if !found {
			t.Error("saved build missing from listing")
		}
	})
}
