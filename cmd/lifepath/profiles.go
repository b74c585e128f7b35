package main

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/Veraticus/lifepath/internal/cli"
	"github.com/Veraticus/lifepath/internal/common"
	"github.com/Veraticus/lifepath/internal/pathway"
	"github.com/Veraticus/lifepath/internal/profile"
	"github.com/spf13/cobra"
)

func profilesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "profiles",
		Aliases: []string{"profile"},
		Short:   "Manage saved profiles",
		Long:    `Add, list, show, delete, and refresh saved profiles and their plans.`,
	}

	cmd.AddCommand(profilesAddCmd())
	cmd.AddCommand(profilesListCmd())
	cmd.AddCommand(profilesShowCmd())
	cmd.AddCommand(profilesDeleteCmd())
	cmd.AddCommand(profilesRefreshCmd())

	return cmd
}

func profilesAddCmd() *cobra.Command {
	var replace bool

	cmd := &cobra.Command{
		Use:   "add <file>",
		Short: "Save a profile from a YAML or JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			p, err := profile.Load(args[0])
			if err != nil {
				return err
			}
			if err := profile.Validate(p); err != nil {
				return common.NewUserError(err.Error(), err)
			}

			store, err := initStorage(ctx)
			if err != nil {
				return fmt.Errorf("failed to initialize storage: %w", err)
			}
			defer closeStorage(store)

			if p.ID != "" && !replace {
				_, err := store.GetProfile(ctx, p.ID)
				if err == nil {
					return common.NewUserError(
						fmt.Sprintf("Profile %s already exists; use --replace to overwrite it", p.ID),
						common.ErrDuplicateEntry)
				}
				if !errors.Is(err, common.ErrNotFound) {
					return fmt.Errorf("failed to look up profile: %w", err)
				}
			}

			if err := store.SaveProfile(ctx, &p); err != nil {
				return fmt.Errorf("failed to save profile: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), cli.FormatSuccess(fmt.Sprintf("Saved %s as %s", p.Name, p.ID)))
			return nil
		},
	}

	cmd.Flags().BoolVar(&replace, "replace", false, "overwrite a saved profile with the same ID")

	return cmd
}

func profilesListCmd() *cobra.Command {
	var (
		search string
		format string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List saved profiles",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := checkFormat(format); err != nil {
				return err
			}
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return fmt.Errorf("failed to initialize storage: %w", err)
			}
			defer closeStorage(store)

			list, err := store.ListProfiles(ctx)
			if search != "" {
				list, err = store.FindProfilesByName(ctx, search)
			}
			if err != nil {
				return fmt.Errorf("failed to list profiles: %w", err)
			}

			if format != formatText {
				return writeEncoded(cmd.OutOrStdout(), format, list)
			}

			f, err := formatter(cmd, cfg)
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), f.ProfileTable(list))
			return err
		},
	}

	cmd.Flags().StringVarP(&search, "search", "s", "", "only list profiles whose name contains this text")
	cmd.Flags().StringVarP(&format, "format", "f", formatText, "output format (text, json, yaml)")
	cmd.Flags().String("mode", "", "render mode for text output (screen, print)")

	return cmd
}

func profilesShowCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show a saved profile and its latest plan",
		Long: `Show a saved profile with the most recently saved plan.
When no plan has been saved a fresh one is generated and shown, not stored.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkFormat(format); err != nil {
				return err
			}
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return fmt.Errorf("failed to initialize storage: %w", err)
			}
			defer closeStorage(store)

			src := profileSource{id: args[0]}
			p, err := src.resolve(ctx, store)
			if err != nil {
				return err
			}

			snap, err := store.GetLatestSnapshot(ctx, p.ID)
			switch {
			case errors.Is(err, common.ErrNotFound):
				planner := pathway.New()
				fresh := planner.Snapshot(p, planner.CurrentYear(), cfg.Forecast.Years)
				snap = &fresh
			case err != nil:
				return fmt.Errorf("failed to load snapshot: %w", err)
			default:
				common.LogDebug("Showing saved snapshot", common.Fields{"id": snap.ID, "generated_at": snap.GeneratedAt})
			}

			if format != formatText {
				return writeEncoded(cmd.OutOrStdout(), format, planOutput{Profile: p, Report: snap.Report, Pathway: snap.Pathway})
			}

			f, err := formatter(cmd, cfg)
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), f.ProfileCard(p)+"\n"+f.Plan(p, snap.Report, snap.Pathway))
			return err
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", formatText, "output format (text, json, yaml)")
	cmd.Flags().String("mode", "", "render mode for text output (screen, print)")

	return cmd
}

func profilesDeleteCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a saved profile",
		Long:  `Delete a saved profile together with every plan saved for it.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id := args[0]

			store, err := initStorage(ctx)
			if err != nil {
				return fmt.Errorf("failed to initialize storage: %w", err)
			}
			defer closeStorage(store)

			p, err := store.GetProfile(ctx, id)
			if errors.Is(err, common.ErrNotFound) {
				return common.NewUserError(fmt.Sprintf("No saved profile with ID %s", id), err)
			}
			if err != nil {
				return fmt.Errorf("failed to look up profile: %w", err)
			}

			if !force {
				ok, err := cli.Confirm(ctx, cmd.InOrStdin(), cmd.OutOrStdout(),
					fmt.Sprintf("Delete %s (%s) and its saved plans?", p.Name, id))
				if err != nil {
					return err
				}
				if !ok {
					fmt.Fprintln(cmd.OutOrStdout(), "Deletion cancelled.")
					return nil
				}
			}

			if err := store.DeleteProfile(ctx, id); err != nil {
				return fmt.Errorf("failed to delete profile: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), cli.FormatSuccess(fmt.Sprintf("Deleted %s", p.Name)))
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "skip confirmation prompt")

	return cmd
}

func profilesRefreshCmd() *cobra.Command {
	var startYear int

	cmd := &cobra.Command{
		Use:   "refresh",
		Short: "Regenerate and save a plan for every profile",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			interruptHandler := cli.NewInterruptHandler(cmd.ErrOrStderr())
			ctx := interruptHandler.HandleInterrupts(cmd.Context(), "Run profiles refresh again to finish.")

			store, err := initStorage(ctx)
			if err != nil {
				return fmt.Errorf("failed to initialize storage: %w", err)
			}
			defer closeStorage(store)

			list, err := store.ListProfiles(ctx)
			if err != nil {
				return fmt.Errorf("failed to list profiles: %w", err)
			}
			if len(list) == 0 {
				fmt.Fprint(cmd.OutOrStdout(), cli.FormatInfo("No saved profiles.")+"\n")
				return nil
			}

			planner := pathway.New()
			if startYear <= 0 {
				startYear = planner.CurrentYear()
			}

			bar := cli.NewProgressBar(cmd.ErrOrStderr(), len(list), "Refreshing plans")
			refreshed := 0
			for _, p := range list {
				if err := ctx.Err(); err != nil {
					return fmt.Errorf("refreshed %d of %d profiles: %w", refreshed, len(list), err)
				}

				snap := planner.Snapshot(p, startYear, cfg.Forecast.Years)
				if err := store.SaveSnapshot(ctx, &snap); err != nil {
					return fmt.Errorf("failed to save snapshot for %s: %w", p.ID, err)
				}
				refreshed++
				if err := bar.Add(1); err != nil {
					slog.Debug("Failed to update progress bar", "error", err)
				}
			}

			fmt.Fprintln(cmd.OutOrStdout(), cli.FormatSuccess(fmt.Sprintf("Refreshed %d profiles from %d", refreshed, startYear)))
			return nil
		},
	}

	cmd.Flags().IntVar(&startYear, "start-year", 0, "first calendar year of each plan (default: current year)")

	return cmd
}
