package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/Veraticus/lifepath/internal/cli"
	"github.com/Veraticus/lifepath/internal/common"
	"github.com/Veraticus/lifepath/internal/config"
	"github.com/Veraticus/lifepath/internal/model"
	"github.com/Veraticus/lifepath/internal/profile"
	"github.com/Veraticus/lifepath/internal/service"
	"github.com/Veraticus/lifepath/internal/storage"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Output formats accepted by --format.
const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

var errUnknownFormat = errors.New("unknown output format")

// loadConfig resolves the configuration from the global viper instance.
func loadConfig() (config.Config, error) {
	return config.Load(viper.GetViper())
}

// initStorage opens the configured database and applies migrations.
func initStorage(ctx context.Context) (service.Storage, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	store, err := storage.NewSQLiteStorage(cfg.Database.Path)
	if err != nil {
		return nil, err
	}

	if err := store.Migrate(ctx); err != nil {
		if closeErr := store.Close(); closeErr != nil {
			common.LogError(closeErr, "Failed to close storage", nil)
		}
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return store, nil
}

func closeStorage(store service.Storage) {
	if err := store.Close(); err != nil {
		common.LogError(err, "Failed to close storage", nil)
	}
}

// formatter builds a formatter from --mode, falling back to render.mode.
func formatter(cmd *cobra.Command, cfg config.Config) (*cli.Formatter, error) {
	name := cfg.Render.Mode
	if f := cmd.Flags().Lookup("mode"); f != nil && f.Changed {
		name = f.Value.String()
	}
	mode, err := cli.ParseRenderMode(name)
	if err != nil {
		return nil, err
	}
	return cli.NewFormatter(mode), nil
}

func checkFormat(format string) error {
	switch format {
	case formatText, formatJSON, formatYAML:
		return nil
	default:
		return fmt.Errorf("%w: %q (expected text, json, or yaml)", errUnknownFormat, format)
	}
}

// writeEncoded writes v as indented JSON or as YAML.
func writeEncoded(w io.Writer, format string, v any) error {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("%w: %q", errUnknownFormat, format)
	}
}

// profileSource holds the mutually exclusive ways a command can be given a person.
type profileSource struct {
	name string
	dob  string
	file string
	id   string
}

func (s *profileSource) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&s.name, "name", "", "full birth name")
	cmd.Flags().StringVar(&s.dob, "dob", "", "date of birth (YYYY-MM-DD)")
	cmd.Flags().StringVar(&s.file, "profile", "", "path to a YAML or JSON profile")
	cmd.Flags().StringVar(&s.id, "id", "", "ID of a saved profile")
	cmd.MarkFlagsMutuallyExclusive("profile", "id")
	cmd.MarkFlagsMutuallyExclusive("profile", "name")
	cmd.MarkFlagsMutuallyExclusive("id", "name")
	cmd.MarkFlagsMutuallyExclusive("profile", "dob")
	cmd.MarkFlagsMutuallyExclusive("id", "dob")
}

func (s *profileSource) stored() bool {
	return s.id != ""
}

// resolve returns the profile named by the flags. Flag input is passed to the
// engine as typed; files are validated.
func (s *profileSource) resolve(ctx context.Context, store service.Storage) (model.UserProfile, error) {
	switch {
	case s.file != "":
		p, err := profile.Load(s.file)
		if err != nil {
			return model.UserProfile{}, err
		}
		if err := profile.Validate(p); err != nil {
			return model.UserProfile{}, common.NewUserError(err.Error(), err)
		}
		return p, nil

	case s.id != "":
		if store == nil {
			return model.UserProfile{}, fmt.Errorf("%w: storage required for --id", common.ErrMissingConfig)
		}
		p, err := store.GetProfile(ctx, s.id)
		if errors.Is(err, common.ErrNotFound) {
			return model.UserProfile{}, common.NewUserError(fmt.Sprintf("No saved profile with ID %s", s.id), err)
		}
		if err != nil {
			return model.UserProfile{}, err
		}
		return *p, nil

	default:
		if strings.TrimSpace(s.dob) == "" && strings.TrimSpace(s.name) == "" {
			return model.UserProfile{}, common.NewUserError("Provide --name and --dob, --profile, or --id", common.ErrInvalidProfile)
		}
		return profile.Normalize(model.UserProfile{Name: s.name, DOB: s.dob}), nil
	}
}
