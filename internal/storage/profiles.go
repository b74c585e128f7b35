package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/Veraticus/lifepath/internal/common"
	"github.com/Veraticus/lifepath/internal/model"
	"github.com/google/uuid"
)

const profileColumns = `id, details, created_at, updated_at`

// SaveProfile inserts a new profile or updates an existing one. A profile
// without an ID is assigned a new UUID. The assigned ID and timestamps are
// written back to profile only once the save has committed.
func (s *SQLiteStorage) SaveProfile(ctx context.Context, profile *model.UserProfile) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateProfile(profile); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	saved := *profile
	if err := s.saveProfileTx(ctx, tx, &saved); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit profile: %w", err)
	}
	*profile = saved
	return nil
}

func (s *SQLiteStorage) saveProfileTx(ctx context.Context, q queryable, profile *model.UserProfile) error {
	now := s.now().UTC()
	if profile.ID == "" {
		profile.ID = uuid.NewString()
	}
	if profile.CreatedAt.IsZero() {
		profile.CreatedAt = now
	}
	profile.UpdatedAt = now

	details, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("failed to encode profile: %w", err)
	}

	_, err = q.ExecContext(ctx, `
		INSERT INTO profiles (id, name, email, dob, details, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			email = excluded.email,
			dob = excluded.dob,
			details = excluded.details,
			updated_at = excluded.updated_at
	`, profile.ID, profile.Name, profile.Email, profile.DOB, string(details), profile.CreatedAt.UTC(), profile.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}

	// An update keeps the original creation time.
	err = q.QueryRowContext(ctx, `SELECT created_at FROM profiles WHERE id = ?`, profile.ID).Scan(&profile.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to read profile creation time: %w", err)
	}

	return nil
}

// GetProfile retrieves a profile by ID.
func (s *SQLiteStorage) GetProfile(ctx context.Context, id string) (*model.UserProfile, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(id, "id"); err != nil {
		return nil, err
	}

	row := s.db.QueryRowContext(ctx, `SELECT `+profileColumns+` FROM profiles WHERE id = ?`, id)
	profile, err := scanProfile(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("profile %s: %w", id, common.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	return &profile, nil
}

// FindProfilesByName returns the profiles whose name contains name,
// ignoring case.
func (s *SQLiteStorage) FindProfilesByName(ctx context.Context, name string) ([]model.UserProfile, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(name, "name"); err != nil {
		return nil, err
	}

	pattern := "%" + escapeLike(strings.TrimSpace(name)) + "%"
	return s.queryProfiles(ctx, `
		SELECT `+profileColumns+`
		FROM profiles
		WHERE name LIKE ? ESCAPE '\'
		ORDER BY name COLLATE NOCASE, id
	`, pattern)
}

// ListProfiles returns every stored profile ordered by name.
func (s *SQLiteStorage) ListProfiles(ctx context.Context) ([]model.UserProfile, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	return s.queryProfiles(ctx, `
		SELECT `+profileColumns+`
		FROM profiles
		ORDER BY name COLLATE NOCASE, id
	`)
}

// DeleteProfile removes a profile and all of its snapshots.
func (s *SQLiteStorage) DeleteProfile(ctx context.Context, id string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(id, "id"); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM snapshots WHERE profile_id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete snapshots: %w", err)
	}

	result, err := tx.ExecContext(ctx, `DELETE FROM profiles WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete profile: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("profile %s: %w", id, common.ErrNotFound)
	}

	return tx.Commit()
}

func (s *SQLiteStorage) queryProfiles(ctx context.Context, query string, args ...any) ([]model.UserProfile, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query profiles: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var profiles []model.UserProfile
	for rows.Next() {
		profile, err := scanProfile(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan profile: %w", err)
		}
		profiles = append(profiles, profile)
	}

	return profiles, rows.Err()
}

func scanProfile(row scanner) (model.UserProfile, error) {
	var (
		profile model.UserProfile
		id      string
		details string
	)

	if err := row.Scan(&id, &details, &profile.CreatedAt, &profile.UpdatedAt); err != nil {
		return model.UserProfile{}, err
	}

	createdAt, updatedAt := profile.CreatedAt, profile.UpdatedAt
	if err := json.Unmarshal([]byte(details), &profile); err != nil {
		return model.UserProfile{}, fmt.Errorf("failed to decode profile %s: %w", id, err)
	}

	// Columns win over the encoded copy.
	profile.ID = id
	profile.CreatedAt = createdAt
	profile.UpdatedAt = updatedAt

	return profile, nil
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
