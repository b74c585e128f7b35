package main

import (
	"fmt"
	"strings"

	"github.com/Veraticus/lifepath/internal/numerology"
	"github.com/Veraticus/lifepath/internal/pathway"
	"github.com/spf13/cobra"
)

func numbersCmd() *cobra.Command {
	var (
		name string
		dob  string
		year int
	)

	cmd := &cobra.Command{
		Use:   "numbers",
		Short: "Print the core numbers for a name and birth date",
		Long: `Print every core numerology number, one per line.
Numbers that need a missing input are printed as 0.`,
		Example: `  lifepath numbers --name "Ada Lovelace" --dob 1815-12-10
  lifepath numbers --dob 1990-05-15 --year 2030`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			name = strings.TrimSpace(name)
			dob = strings.TrimSpace(dob)
			if year == 0 {
				year = pathway.New().CurrentYear()
			}

			lifePath := numerology.LifePath(dob)
			expression := numerology.Expression(name)
			rows := []struct {
				label string
				value int
			}{
				{"Life Path", lifePath},
				{"Expression", expression},
				{"Soul Urge", numerology.SoulUrge(name)},
				{"Personality", numerology.Personality(name)},
				{"Maturity", numerology.Maturity(lifePath, expression)},
				{"Birthday", numerology.Birthday(dob)},
				{fmt.Sprintf("Personal Year %d", year), numerology.PersonalYear(dob, year)},
			}

			out := cmd.OutOrStdout()
			for _, row := range rows {
				if _, err := fmt.Fprintf(out, "%-20s %d\n", row.label+":", row.value); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "full birth name")
	cmd.Flags().StringVar(&dob, "dob", "", "date of birth (YYYY-MM-DD)")
	cmd.Flags().IntVar(&year, "year", 0, "calendar year for the personal year number (default: current year)")

	return cmd
}
