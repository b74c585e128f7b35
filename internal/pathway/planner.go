package pathway

import (
	"strconv"
	"time"

	"github.com/Veraticus/lifepath/internal/model"
	"github.com/Veraticus/lifepath/internal/numerology"
)

// HorizonYears is the length of the standard pathway.
const HorizonYears = 10

var risks = []string{
	"Market downturns affecting job stability or investment returns.",
	"Personal burnout from overcommitting during high-energy years.",
	"Neglecting health and relationships while chasing milestones.",
}

var leadingIndicators = []string{
	"Monthly progress on the current year's milestones.",
	"Savings rate and net worth trend, reviewed quarterly.",
	"Number of meaningful professional and personal connections made.",
}

// Risks returns the advisory risks attached to every pathway.
func Risks() []string {
	return append([]string(nil), risks...)
}

// LeadingIndicators returns the advisory progress signals attached to every pathway.
func LeadingIndicators() []string {
	return append([]string(nil), leadingIndicators...)
}

// Option configures a Planner.
type Option func(*Planner)

// WithClock overrides the clock used to pick the first pathway year.
func WithClock(now func() time.Time) Option {
	return func(p *Planner) {
		if now != nil {
			p.now = now
		}
	}
}

// Planner builds pathways from a profile's date of birth.
type Planner struct {
	now func() time.Time
}

// New creates a Planner that starts pathways at the current calendar year.
func New(opts ...Option) *Planner {
	p := &Planner{now: time.Now}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// CurrentYear returns the calendar year the planner treats as now.
func (p *Planner) CurrentYear() int {
	return p.now().Year()
}

// BuildTenYearPathway plans the ten calendar years starting with the current one.
func (p *Planner) BuildTenYearPathway(profile model.UserProfile) model.Pathway {
	return p.BuildPathway(profile, p.CurrentYear(), HorizonYears)
}

// BuildPathway plans horizon consecutive years starting at startYear. Each
// epoch is themed by that year's personal year number. A horizon below one
// is treated as one.
func (p *Planner) BuildPathway(profile model.UserProfile, startYear, horizon int) model.Pathway {
	if horizon < 1 {
		horizon = 1
	}

	epochs := make([]model.Epoch, 0, horizon)
	for i := range horizon {
		year := startYear + i
		plan := PlanForPersonalYear(numerology.PersonalYear(profile.DOB, year))
		epochs = append(epochs, model.Epoch{
			Years:      strconv.Itoa(year),
			Theme:      plan.Theme,
			Milestones: plan.Milestones,
			Habits:     plan.Habits,
		})
	}

	return model.Pathway{
		HorizonYears:      horizon,
		Epochs:            epochs,
		Risks:             Risks(),
		LeadingIndicators: LeadingIndicators(),
	}
}

// Snapshot generates the report and standard pathway for a profile, both
// starting at startYear, stamped with the planner's clock. forecastYears
// sets the length of the report's personal year forecast.
func (p *Planner) Snapshot(profile model.UserProfile, startYear, forecastYears int) model.Snapshot {
	return model.Snapshot{
		ProfileID:   profile.ID,
		StartYear:   startYear,
		GeneratedAt: p.now().UTC(),
		Report:      numerology.BuildReport(profile, startYear, forecastYears),
		Pathway:     p.BuildPathway(profile, startYear, HorizonYears),
	}
}
