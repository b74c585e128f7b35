package main

import (
	"fmt"
	"strings"

	"github.com/Veraticus/lifepath/internal/model"
	"github.com/Veraticus/lifepath/internal/pathway"
	"github.com/spf13/cobra"
)

func pathwayCmd() *cobra.Command {
	var (
		dob       string
		startYear int
		format    string
	)

	cmd := &cobra.Command{
		Use:   "pathway",
		Short: "Plan the next ten years from a birth date",
		Long: `Plan ten consecutive calendar years, each themed by its personal year number.
The pathway only depends on the date of birth.`,
		Example: `  lifepath pathway --dob 1990-05-15
  lifepath pathway --dob 1990-05-15 --start-year 2030 --format yaml`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := checkFormat(format); err != nil {
				return err
			}

			profile := model.UserProfile{DOB: strings.TrimSpace(dob)}
			planner := pathway.New()

			var pw model.Pathway
			if startYear > 0 {
				pw = planner.BuildPathway(profile, startYear, pathway.HorizonYears)
			} else {
				pw = planner.BuildTenYearPathway(profile)
			}

			if format != formatText {
				return writeEncoded(cmd.OutOrStdout(), format, pw)
			}

			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			f, err := formatter(cmd, cfg)
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), f.Pathway(pw))
			return err
		},
	}

	cmd.Flags().StringVar(&dob, "dob", "", "date of birth (YYYY-MM-DD)")
	cmd.Flags().IntVar(&startYear, "start-year", 0, "first calendar year of the pathway (default: current year)")
	cmd.Flags().StringVarP(&format, "format", "f", formatText, "output format (text, json, yaml)")
	cmd.Flags().String("mode", "", "render mode for text output (screen, print)")

	return cmd
}
