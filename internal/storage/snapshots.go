package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Veraticus/lifepath/internal/common"
	"github.com/Veraticus/lifepath/internal/model"
)

const snapshotColumns = `id, profile_id, start_year, report, pathway, generated_at`

// SaveSnapshot stores a generated report and pathway for a saved profile.
func (s *SQLiteStorage) SaveSnapshot(ctx context.Context, snapshot *model.Snapshot) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateSnapshot(snapshot); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var exists bool
	err = tx.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM profiles WHERE id = ?)`, snapshot.ProfileID).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to check profile existence: %w", err)
	}
	if !exists {
		return fmt.Errorf("profile %s: %w", snapshot.ProfileID, common.ErrNotFound)
	}

	report, err := json.Marshal(snapshot.Report)
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	pathway, err := json.Marshal(snapshot.Pathway)
	if err != nil {
		return fmt.Errorf("failed to encode pathway: %w", err)
	}

	if snapshot.GeneratedAt.IsZero() {
		snapshot.GeneratedAt = s.now()
	}
	snapshot.GeneratedAt = snapshot.GeneratedAt.UTC()

	result, err := tx.ExecContext(ctx, `
		INSERT INTO snapshots (profile_id, start_year, report, pathway, generated_at)
		VALUES (?, ?, ?, ?, ?)
	`, snapshot.ProfileID, snapshot.StartYear, string(report), string(pathway), snapshot.GeneratedAt)
	if err != nil {
		return fmt.Errorf("failed to save snapshot: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get snapshot ID: %w", err)
	}
	snapshot.ID = id

	return tx.Commit()
}

// GetLatestSnapshot returns the most recently generated snapshot for a profile.
func (s *SQLiteStorage) GetLatestSnapshot(ctx context.Context, profileID string) (*model.Snapshot, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(profileID, "profileID"); err != nil {
		return nil, err
	}

	row := s.db.QueryRowContext(ctx, `
		SELECT `+snapshotColumns+`
		FROM snapshots
		WHERE profile_id = ?
		ORDER BY generated_at DESC, id DESC
		LIMIT 1
	`, profileID)

	snapshot, err := scanSnapshot(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("snapshot for profile %s: %w", profileID, common.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get snapshot: %w", err)
	}

	return &snapshot, nil
}

// ListSnapshots returns every snapshot for a profile, newest first.
func (s *SQLiteStorage) ListSnapshots(ctx context.Context, profileID string) ([]model.Snapshot, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(profileID, "profileID"); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT `+snapshotColumns+`
		FROM snapshots
		WHERE profile_id = ?
		ORDER BY generated_at DESC, id DESC
	`, profileID)
	if err != nil {
		return nil, fmt.Errorf("failed to query snapshots: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var snapshots []model.Snapshot
	for rows.Next() {
		snapshot, err := scanSnapshot(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan snapshot: %w", err)
		}
		snapshots = append(snapshots, snapshot)
	}

	return snapshots, rows.Err()
}

func scanSnapshot(row scanner) (model.Snapshot, error) {
	var (
		snapshot model.Snapshot
		report   string
		pathway  string
	)

	err := row.Scan(
		&snapshot.ID,
		&snapshot.ProfileID,
		&snapshot.StartYear,
		&report,
		&pathway,
		&snapshot.GeneratedAt,
	)
	if err != nil {
		return model.Snapshot{}, err
	}

	if err := json.Unmarshal([]byte(report), &snapshot.Report); err != nil {
		return model.Snapshot{}, fmt.Errorf("failed to decode report: %w", err)
	}
	if err := json.Unmarshal([]byte(pathway), &snapshot.Pathway); err != nil {
		return model.Snapshot{}, fmt.Errorf("failed to decode pathway: %w", err)
	}

	return snapshot, nil
}
