package numerology

import (
	"fmt"

	"github.com/Veraticus/lifepath/internal/model"
)

// DefaultForecastYears is the personal year forecast length used when a
// caller asks for zero or fewer years.
const DefaultForecastYears = 10

// BuildReport computes the full numerology report for a profile. Only Name
// and DOB are read. The personal year forecast covers years calendar years
// starting at startYear.
func BuildReport(p model.UserProfile, startYear, years int) model.NumerologyReport {
	if years < 1 {
		years = DefaultForecastYears
	}

	lifePath := LifePath(p.DOB)
	expression := Expression(p.Name)
	soulUrge := SoulUrge(p.Name)
	personality := Personality(p.Name)
	maturity := Maturity(lifePath, expression)
	birthday := Birthday(p.DOB)

	report := model.NumerologyReport{
		LifePath:      reading(KindLifePath, lifePath),
		Expression:    reading(KindExpression, expression),
		SoulUrge:      reading(KindSoulUrge, soulUrge),
		Personality:   readingPtr(KindPersonality, personality),
		Maturity:      readingPtr(KindMaturity, maturity),
		Birthday:      readingPtr(KindBirthday, birthday),
		PersonalYears: Forecast(p.DOB, startYear, years),
	}

	if !ParseBirthDate(p.DOB).IsZero() {
		cycles := PinnaclesAndChallenges(p.DOB, lifePath)
		report.Pinnacles = cycles.Pinnacles
		report.Challenges = cycles.Challenges
	}

	report.Summary = summarize(report)
	return report
}

func reading(kind Kind, n int) model.Reading {
	return model.Reading{Number: n, Interpretation: Interpret(kind, n)}
}

func readingPtr(kind Kind, n int) *model.Reading {
	r := reading(kind, n)
	return &r
}

func summarize(r model.NumerologyReport) string {
	lp, ex, su := r.LifePath.Number, r.Expression.Number, r.SoulUrge.Number
	if lp == 0 && ex == 0 {
		return "Enter a full name and date of birth to see your numerology summary."
	}

	summary := fmt.Sprintf(
		"Your numbers combine %s (%d), %s (%d), and a deep-seated need for %s (%d).",
		Keyword(lp), lp, Keyword(ex), ex, Keyword(su), su,
	)
	if lp == ex && lp != 0 {
		summary += fmt.Sprintf(" Your life path and expression share the number %d, so your talents and your direction pull the same way.", lp)
	}
	if IsMaster(lp) {
		summary += " A master life path asks more of you and offers more in return."
	}
	if len(r.PersonalYears) > 0 {
		current := r.PersonalYears[0]
		summary += fmt.Sprintf(" %d is a personal year %d. %s", current.Year, current.Number, current.Theme)
	}
	return summary
}
