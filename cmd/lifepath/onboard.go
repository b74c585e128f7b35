package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/Veraticus/lifepath/internal/cli"
	"github.com/Veraticus/lifepath/internal/pathway"
	"github.com/Veraticus/lifepath/internal/tui"
	"github.com/Veraticus/lifepath/internal/tui/themes"
	"github.com/spf13/cobra"
)

func onboardCmd() *cobra.Command {
	var (
		save  bool
		theme string
	)

	cmd := &cobra.Command{
		Use:   "onboard",
		Short: "Answer a few questions and get your plan",
		Long: `Walk through name, date of birth, location, and life goal one question
at a time, then print the report and ten-year pathway.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			ctx := cmd.Context()

			in, out := cmd.InOrStdin(), cmd.OutOrStdout()
			if in == os.Stdin {
				in = nil
			}
			if out == os.Stdout {
				out = nil
			}

			p, err := tui.Run(ctx, in, out, tui.WithTheme(themes.GetTheme(theme)))
			if errors.Is(err, tui.ErrCancelled) {
				fmt.Fprintln(cmd.ErrOrStderr(), cli.FormatWarning("Onboarding cancelled."))
				return nil
			}
			if err != nil {
				return err
			}

			planner := pathway.New()
			snap := planner.Snapshot(p, planner.CurrentYear(), cfg.Forecast.Years)

			if save {
				store, err := initStorage(ctx)
				if err != nil {
					return fmt.Errorf("failed to initialize storage: %w", err)
				}
				defer closeStorage(store)

				if err := saveSnapshot(ctx, store, &p, &snap); err != nil {
					return err
				}
				fmt.Fprintln(cmd.ErrOrStderr(), cli.FormatSuccess(fmt.Sprintf("Saved plan for %s (%s)", p.Name, p.ID)))
			}

			f, err := formatter(cmd, cfg)
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), f.Plan(p, snap.Report, snap.Pathway))
			return err
		},
	}

	cmd.Flags().BoolVar(&save, "save", false, "store the profile and the generated plan")
	cmd.Flags().StringVar(&theme, "theme", "default", "wizard color theme (default, catppuccin-mocha)")
	cmd.Flags().String("mode", "", "render mode for the printed plan (screen, print)")

	return cmd
}
