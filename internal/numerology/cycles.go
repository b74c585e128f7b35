package numerology

import "github.com/Veraticus/lifepath/internal/model"

const (
	// CycleCount is the number of pinnacle and challenge periods in a life.
	CycleCount = 4
	// cycleLength is the span in years of cycles two through four.
	cycleLength = 9
	// firstCycleBase is the age the first cycle ends at, before subtracting the life path.
	firstCycleBase = 36
)

// PersonalYear computes the personal year number of dob for a calendar year.
// Month, day, and year are each reduced to a single digit first; master
// numbers are only kept in the final reduction.
func PersonalYear(dob string, year int) int {
	bd := ParseBirthDate(dob)
	total := ReduceToDigit(bd.Month) + ReduceToDigit(bd.Day) + ReduceToDigit(year)
	return Reduce(total)
}

// Forecast returns the personal year for each of years calendar years
// starting at startYear, in ascending order.
func Forecast(dob string, startYear, years int) []model.PersonalYearForecast {
	if years < 1 {
		return []model.PersonalYearForecast{}
	}
	forecast := make([]model.PersonalYearForecast, 0, years)
	for i := range years {
		year := startYear + i
		n := PersonalYear(dob, year)
		forecast = append(forecast, model.PersonalYearForecast{
			Year:   year,
			Number: n,
			Theme:  PersonalYearTheme(n),
		})
	}
	return forecast
}

// Cycles holds the four pinnacles and four challenges of a life. Both share
// the same age windows.
type Cycles struct {
	Pinnacles  []model.Cycle
	Challenges []model.Cycle
}

// Window is an inclusive range of calendar years.
type Window struct {
	Start int
	End   int
}

// CycleWindows returns the four contiguous cycle windows for a birth year.
// The first lasts 36 minus the life path years, clamped to at least one;
// each later window lasts nine years.
func CycleWindows(birthYear, lifePath int) [CycleCount]Window {
	span := firstCycleBase - lifePath
	if span < 1 {
		span = 1
	}

	var windows [CycleCount]Window
	windows[0] = Window{Start: birthYear, End: birthYear + span - 1}
	for i := 1; i < CycleCount; i++ {
		start := windows[i-1].End + 1
		windows[i] = Window{Start: start, End: start + cycleLength - 1}
	}
	return windows
}

// PinnaclesAndChallenges derives the four life cycles from a birth date and
// its life path number. lifePath must be the unreduced-past-master value
// returned by LifePath.
func PinnaclesAndChallenges(dob string, lifePath int) Cycles {
	bd := ParseBirthDate(dob)
	m := ReduceToDigit(bd.Month)
	d := ReduceToDigit(bd.Day)
	y := ReduceToDigit(bd.Year)

	p1 := Reduce(m + d)
	p2 := Reduce(d + y)
	p3 := Reduce(p1 + p2)
	p4 := Reduce(m + y)

	c1 := abs(d - m)
	c2 := abs(y - d)
	c3 := abs(c1 - c2)
	c4 := abs(m - y)

	pinnacles := [CycleCount]int{p1, p2, p3, p4}
	challenges := [CycleCount]int{c1, c2, c3, c4}
	windows := CycleWindows(bd.Year, lifePath)

	out := Cycles{
		Pinnacles:  make([]model.Cycle, 0, CycleCount),
		Challenges: make([]model.Cycle, 0, CycleCount),
	}
	for i, w := range windows {
		out.Pinnacles = append(out.Pinnacles, model.Cycle{
			Index:     i + 1,
			StartYear: w.Start,
			EndYear:   w.End,
			Number:    pinnacles[i],
			Meaning:   NumberMeaning(pinnacles[i]),
		})
		out.Challenges = append(out.Challenges, model.Cycle{
			Index:     i + 1,
			StartYear: w.Start,
			EndYear:   w.End,
			Number:    challenges[i],
			Meaning:   ChallengeMeaning(challenges[i]),
		})
	}
	return out
}
