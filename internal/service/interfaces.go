// Package service defines the interfaces for all application services.
package service

import (
	"context"

	"github.com/Veraticus/lifepath/internal/model"
)

// Storage defines the contract for our persistence layer.
type Storage interface {
	// Profile operations
	SaveProfile(ctx context.Context, profile *model.UserProfile) error
	GetProfile(ctx context.Context, id string) (*model.UserProfile, error)
	FindProfilesByName(ctx context.Context, name string) ([]model.UserProfile, error)
	ListProfiles(ctx context.Context) ([]model.UserProfile, error)
	DeleteProfile(ctx context.Context, id string) error

	// Snapshot operations
	SaveSnapshot(ctx context.Context, snapshot *model.Snapshot) error
	GetLatestSnapshot(ctx context.Context, profileID string) (*model.Snapshot, error)
	ListSnapshots(ctx context.Context, profileID string) ([]model.Snapshot, error)

	// Database management
	Migrate(ctx context.Context) error
	Close() error
}
