package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/Veraticus/lifepath/internal/cli"
	"github.com/Veraticus/lifepath/internal/common"
	"github.com/Veraticus/lifepath/internal/model"
	"github.com/Veraticus/lifepath/internal/pathway"
	"github.com/Veraticus/lifepath/internal/profile"
	"github.com/Veraticus/lifepath/internal/service"
	"github.com/spf13/cobra"
)

// planOutput is the document written by --format json and yaml.
type planOutput struct {
	Profile model.UserProfile      `json:"profile" yaml:"profile"`
	Report  model.NumerologyReport `json:"report" yaml:"report"`
	Pathway model.Pathway          `json:"pathway" yaml:"pathway"`
}

func reportCmd() *cobra.Command {
	var (
		src       profileSource
		format    string
		startYear int
		save      bool
	)

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Generate a numerology report and ten-year pathway",
		Long: `Generate the full numerology report followed by the ten-year pathway.

The person can be given inline with --name and --dob, read from a profile
file with --profile, or looked up by ID with --id. With --save the profile
and the generated plan are stored for later.`,
		Example: `  lifepath report --name "Ada Lovelace" --dob 1815-12-10
  lifepath report --profile me.yaml --mode print > plan.txt
  lifepath report --id 3f0c... --format json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := checkFormat(format); err != nil {
				return err
			}
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			ctx := cmd.Context()

			var store service.Storage
			if src.stored() || save {
				store, err = initStorage(ctx)
				if err != nil {
					return fmt.Errorf("failed to initialize storage: %w", err)
				}
				defer closeStorage(store)
			}

			p, err := src.resolve(ctx, store)
			if err != nil {
				return err
			}

			planner := pathway.New()
			if startYear <= 0 {
				startYear = planner.CurrentYear()
			}
			snap := planner.Snapshot(p, startYear, cfg.Forecast.Years)
			if snap.Report.LifePath.Number == 0 {
				slog.Warn("No usable date of birth; date-based numbers are 0", "dob", p.DOB)
			}

			if save {
				if err := saveSnapshot(ctx, store, &p, &snap); err != nil {
					return err
				}
				fmt.Fprintln(cmd.ErrOrStderr(), cli.FormatSuccess(fmt.Sprintf("Saved plan for %s (%s)", p.Name, p.ID)))
			}

			if format != formatText {
				return writeEncoded(cmd.OutOrStdout(), format, planOutput{Profile: p, Report: snap.Report, Pathway: snap.Pathway})
			}

			f, err := formatter(cmd, cfg)
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), f.Plan(p, snap.Report, snap.Pathway))
			return err
		},
	}

	src.register(cmd)
	cmd.Flags().StringVarP(&format, "format", "f", formatText, "output format (text, json, yaml)")
	cmd.Flags().String("mode", "", "render mode for text output (screen, print)")
	cmd.Flags().IntVar(&startYear, "start-year", 0, "first calendar year of the forecast and pathway (default: current year)")
	cmd.Flags().BoolVar(&save, "save", false, "store the profile and the generated plan")

	return cmd
}

// saveSnapshot makes sure p is stored, then stores snap against it.
func saveSnapshot(ctx context.Context, store service.Storage, p *model.UserProfile, snap *model.Snapshot) error {
	if err := ensureProfile(ctx, store, p); err != nil {
		return err
	}

	snap.ProfileID = p.ID
	if err := store.SaveSnapshot(ctx, snap); err != nil {
		return fmt.Errorf("failed to save snapshot: %w", err)
	}
	return nil
}

// ensureProfile saves p unless it is already stored. A profile without an ID
// reuses a saved profile with the same name and birth date.
func ensureProfile(ctx context.Context, store service.Storage, p *model.UserProfile) error {
	if p.ID != "" {
		_, err := store.GetProfile(ctx, p.ID)
		if err == nil {
			return nil
		}
		if !errors.Is(err, common.ErrNotFound) {
			return fmt.Errorf("failed to look up profile: %w", err)
		}
	}

	if err := profile.Validate(*p); err != nil {
		return common.NewUserError(err.Error(), err)
	}

	if p.ID == "" {
		existing, err := store.FindProfilesByName(ctx, p.Name)
		if err != nil {
			return fmt.Errorf("failed to look up profile: %w", err)
		}
		for _, candidate := range existing {
			if strings.EqualFold(candidate.Name, p.Name) && candidate.DOB == p.DOB {
				p.ID = candidate.ID
				return nil
			}
		}
	}

	if err := store.SaveProfile(ctx, p); err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}
	common.LogInfo("Saved profile", common.Fields{"id": p.ID, "name": p.Name})
	return nil
}
