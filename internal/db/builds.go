package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/autoresume/internal/types"
)

// Listing limits for ListBuilds
const (
	DefaultListLimit = 20
	MaxListLimit     = 100
)

// SaveBuild stores the input record and the built resume, returning the new build ID
func (db *DB) SaveBuild(ctx context.Context, raw *types.RawResume, resume *types.Resume) (uuid.UUID, error) {
	input, err := json.Marshal(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal input: %w", err)
	}
	output, err := json.Marshal(resume)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal output: %w", err)
	}

	id := uuid.New()
	fullName := ""
	if resume != nil {
		fullName = resume.Contact.FullName
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO resume_builds (id, full_name, input, output)
		 VALUES ($1, $2, $3, $4)`,
		id, fullName, input, output,
	)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save build: %w", err)
	}
	return id, nil
}

// GetBuild retrieves a build by ID. Returns nil, nil when no build has that ID.
func (db *DB) GetBuild(ctx context.Context, id uuid.UUID) (*types.BuildRecord, error) {
	var (
		input, output []byte
		createdAt     time.Time
	)
	err := db.pool.QueryRow(ctx,
		`SELECT input, output, created_at FROM resume_builds WHERE id = $1`,
		id,
	).Scan(&input, &output, &createdAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get build %s: %w", id, err)
	}

	return decodeBuild(id, input, output, createdAt)
}

func decodeBuild(id uuid.UUID, input, output []byte, createdAt time.Time) (*types.BuildRecord, error) {
	record := &types.BuildRecord{ID: id, CreatedAt: createdAt}
	if err := json.Unmarshal(input, &record.Input); err != nil {
		return nil, fmt.Errorf("failed to decode build %s input: %w", id, err)
	}
	if err := json.Unmarshal(output, &record.Output); err != nil {
		return nil, fmt.Errorf("failed to decode build %s output: %w", id, err)
	}
	return record, nil
}

// ListBuilds returns the most recent builds, newest first
func (db *DB) ListBuilds(ctx context.Context, limit int) ([]types.BuildSummary, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, full_name, created_at FROM resume_builds
		 ORDER BY created_at DESC LIMIT $1`,
		clampLimit(limit),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list builds: %w", err)
	}
	defer rows.Close()

	summaries := []types.BuildSummary{}
	for rows.Next() {
		var s types.BuildSummary
		if err := rows.Scan(&s.ID, &s.FullName, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan build: %w", err)
		}
		summaries = append(summaries, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list builds: %w", err)
	}
	return summaries, nil
}

func clampLimit(limit int) int {
	switch {
	case limit <= 0:
		return DefaultListLimit
	case limit > MaxListLimit:
		return MaxListLimit
	default:
		return limit
	}
}
