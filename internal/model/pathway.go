package model

import "time"

// YearPlan is the theme, milestones, and habits for one personal year number.
type YearPlan struct {
	Theme      string   `json:"theme" yaml:"theme"`
	Milestones []string `json:"milestones" yaml:"milestones"`
	Habits     []string `json:"habits" yaml:"habits"`
}

// Epoch is one year of a pathway. Years holds the calendar year label, e.g. "2026".
type Epoch struct {
	Years      string   `json:"years" yaml:"years"`
	Theme      string   `json:"theme" yaml:"theme"`
	Milestones []string `json:"milestones" yaml:"milestones"`
	Habits     []string `json:"habits" yaml:"habits"`
}

// Pathway is a multi-year plan. Epochs are in ascending calendar order.
type Pathway struct {
	Epochs            []Epoch  `json:"epochs" yaml:"epochs"`
	Risks             []string `json:"risks" yaml:"risks"`
	LeadingIndicators []string `json:"leading_indicators" yaml:"leading_indicators"`
	HorizonYears      int      `json:"horizon_years" yaml:"horizon_years"`
}

// Snapshot is a stored report and pathway generated for a saved profile.
type Snapshot struct {
	GeneratedAt time.Time        `json:"generated_at" yaml:"generated_at"`
	ProfileID   string           `json:"profile_id" yaml:"profile_id"`
	Pathway     Pathway          `json:"pathway" yaml:"pathway"`
	Report      NumerologyReport `json:"report" yaml:"report"`
	ID          int64            `json:"id" yaml:"id"`
	StartYear   int              `json:"start_year" yaml:"start_year"`
}
