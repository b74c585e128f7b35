// Package model defines the plain data types shared by the engine, planner, storage, and presentation layers.
package model

// Reading is a single numerology number with its interpretation.
type Reading struct {
	Interpretation string `json:"interpretation" yaml:"interpretation"`
	Number         int    `json:"number" yaml:"number"`
}

// Cycle is one of the four pinnacle or challenge periods of a life.
// StartYear and EndYear are calendar years, both inclusive.
type Cycle struct {
	Meaning   string `json:"meaning" yaml:"meaning"`
	Index     int    `json:"cycle" yaml:"cycle"`
	StartYear int    `json:"start_year" yaml:"start_year"`
	EndYear   int    `json:"end_year" yaml:"end_year"`
	Number    int    `json:"number" yaml:"number"`
}

// PersonalYearForecast is the personal year number for one calendar year.
type PersonalYearForecast struct {
	Theme  string `json:"theme" yaml:"theme"`
	Year   int    `json:"year" yaml:"year"`
	Number int    `json:"number" yaml:"number"`
}

// NumerologyReport aggregates every number derived from a name and birth date.
// The pointer readings are optional: nil means the number was not computed.
type NumerologyReport struct {
	Personality   *Reading               `json:"personality,omitempty" yaml:"personality,omitempty"`
	Maturity      *Reading               `json:"maturity,omitempty" yaml:"maturity,omitempty"`
	Birthday      *Reading               `json:"birthday,omitempty" yaml:"birthday,omitempty"`
	Summary       string                 `json:"summary" yaml:"summary"`
	Pinnacles     []Cycle                `json:"pinnacles,omitempty" yaml:"pinnacles,omitempty"`
	Challenges    []Cycle                `json:"challenges,omitempty" yaml:"challenges,omitempty"`
	PersonalYears []PersonalYearForecast `json:"personal_years,omitempty" yaml:"personal_years,omitempty"`
	LifePath      Reading                `json:"life_path" yaml:"life_path"`
	Expression    Reading                `json:"expression" yaml:"expression"`
	SoulUrge      Reading                `json:"soul_urge" yaml:"soul_urge"`
}

// HasExtended reports whether the optional readings are all present.
func (r NumerologyReport) HasExtended() bool {
	return r.Personality != nil && r.Maturity != nil && r.Birthday != nil
}
