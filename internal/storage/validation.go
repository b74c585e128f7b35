// Package storage provides the data persistence layer for lifepath.
package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Veraticus/lifepath/internal/model"
)

// Validation errors.
var (
	ErrNilContext      = errors.New("context cannot be nil")
	ErrEmptyString     = errors.New("string parameter cannot be empty")
	ErrNilParameter    = errors.New("parameter cannot be nil")
	ErrInvalidProfile  = errors.New("invalid profile")
	ErrInvalidSnapshot = errors.New("invalid snapshot")
)

// validateContext ensures the context is not nil.
func validateContext(ctx context.Context) error {
	if ctx == nil {
		return ErrNilContext
	}
	return nil
}

// validateString ensures a string parameter is not empty.
func validateString(s string, paramName string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%w: %s", ErrEmptyString, paramName)
	}
	return nil
}

// validateProfile checks the columns the profiles table requires. Field
// level rules live in the profile package.
func validateProfile(p *model.UserProfile) error {
	if p == nil {
		return fmt.Errorf("%w: profile", ErrNilParameter)
	}
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("%w: missing name", ErrInvalidProfile)
	}
	if strings.TrimSpace(p.DOB) == "" {
		return fmt.Errorf("%w: missing date of birth", ErrInvalidProfile)
	}
	return nil
}

// validateSnapshot validates a snapshot before it is stored.
func validateSnapshot(snap *model.Snapshot) error {
	if snap == nil {
		return fmt.Errorf("%w: snapshot", ErrNilParameter)
	}
	if strings.TrimSpace(snap.ProfileID) == "" {
		return fmt.Errorf("%w: missing profile ID", ErrInvalidSnapshot)
	}
	if snap.StartYear <= 0 {
		return fmt.Errorf("%w: start year must be positive", ErrInvalidSnapshot)
	}
	return nil
}
