package main

import (
	"fmt"
	"strconv"

	"github.com/Veraticus/lifepath/internal/pathway"
	"github.com/spf13/cobra"
)

func planCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "plan <number>",
		Short: "Show the plan for one personal year number",
		Long: `Show the theme, milestones, and habits for a personal year number.
Numbers outside 1-9, 11, 22, and 33 show the plan for 1.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkFormat(format); err != nil {
				return err
			}
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid personal year number %q: %w", args[0], err)
			}

			plan := pathway.PlanForPersonalYear(n)
			if format != formatText {
				return writeEncoded(cmd.OutOrStdout(), format, plan)
			}

			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			f, err := formatter(cmd, cfg)
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), f.YearPlan(n, plan))
			return err
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", formatText, "output format (text, json, yaml)")
	cmd.Flags().String("mode", "", "render mode for text output (screen, print)")

	return cmd
}
