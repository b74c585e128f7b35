package numerology

import (
	"fmt"
	"testing"

	"github.com/Veraticus/lifepath/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPersonalYear(t *testing.T) {
	tests := []struct {
		name string
		dob  string
		year int
		want int
	}{
		{name: "single digit result", dob: "1990-05-15", year: 2026, want: 3},
		{name: "millennium birth", dob: "2000-01-01", year: 2026, want: 3},
		{name: "master 11 in final step", dob: "1980-01-01", year: 2025, want: 11},
		{name: "master 22 in final step", dob: "1980-09-09", year: 2020, want: 22},
		{name: "components reduced first", dob: "1990-11-29", year: 2026, want: 5},
		{name: "empty dob uses year only", dob: "", year: 2026, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PersonalYear(tt.dob, tt.year))
		})
	}
}

func TestPersonalYear_Range(t *testing.T) {
	for year := 1900; year <= 2100; year++ {
		for _, dob := range []string{"1990-05-15", "1980-09-09", "2000-12-31", "1975-11-22"} {
			got := PersonalYear(dob, year)
			assert.True(t, validNumbers[got], "PersonalYear(%q, %d) = %d", dob, year, got)
		}
	}
}

func TestForecast(t *testing.T) {
	forecast := Forecast("1990-05-15", 2026, 10)
	require.Len(t, forecast, 10)

	for i, f := range forecast {
		assert.Equal(t, 2026+i, f.Year)
		assert.Equal(t, PersonalYear("1990-05-15", f.Year), f.Number)
		assert.Equal(t, PersonalYearTheme(f.Number), f.Theme)
	}

	assert.Empty(t, Forecast("1990-05-15", 2026, 0))
	assert.Empty(t, Forecast("1990-05-15", 2026, -3))
}

func TestPinnaclesAndChallenges(t *testing.T) {
	dob := "1990-05-15"
	cycles := PinnaclesAndChallenges(dob, LifePath(dob))

	require.Len(t, cycles.Pinnacles, CycleCount)
	require.Len(t, cycles.Challenges, CycleCount)

	// month 5, day 6, year 1
	assert.Equal(t, []int{11, 7, 9, 6}, cycleNumbers(cycles.Pinnacles))
	assert.Equal(t, []int{1, 5, 4, 4}, cycleNumbers(cycles.Challenges))

	wantWindows := [][2]int{{1990, 2022}, {2023, 2031}, {2032, 2040}, {2041, 2049}}
	for i := range CycleCount {
		p, c := cycles.Pinnacles[i], cycles.Challenges[i]
		assert.Equal(t, i+1, p.Index)
		assert.Equal(t, wantWindows[i], [2]int{p.StartYear, p.EndYear}, "pinnacle %d", i+1)
		assert.Equal(t, [2]int{p.StartYear, p.EndYear}, [2]int{c.StartYear, c.EndYear}, "challenge %d window", i+1)
		assert.Equal(t, NumberMeaning(p.Number), p.Meaning)
		assert.Equal(t, ChallengeMeaning(c.Number), c.Meaning)
	}
}

func TestPinnaclesAndChallenges_WindowsAreContiguous(t *testing.T) {
	dobs := []string{"1990-05-15", "1969-07-01", "1991-08-10", "2000-01-01", "1980-01-03"}

	for _, dob := range dobs {
		lp := LifePath(dob)
		cycles := PinnaclesAndChallenges(dob, lp)

		assert.Equal(t, ParseBirthDate(dob).Year, cycles.Pinnacles[0].StartYear, "%s starts at birth year", dob)
		assert.Equal(t, ParseBirthDate(dob).Year+(36-lp)-1, cycles.Pinnacles[0].EndYear, "%s first window", dob)
		for i := 1; i < CycleCount; i++ {
			prev, cur := cycles.Pinnacles[i-1], cycles.Pinnacles[i]
			assert.Equal(t, prev.EndYear+1, cur.StartYear, "%s cycle %d leaves a gap", dob, i+1)
			assert.Equal(t, 8, cur.EndYear-cur.StartYear, "%s cycle %d is not nine years", dob, i+1)
		}
	}
}

func TestPinnaclesAndChallenges_ChallengesNeverMaster(t *testing.T) {
	for year := 1900; year <= 2030; year += 7 {
		for month := 1; month <= 12; month++ {
			for _, day := range []int{1, 9, 11, 19, 22, 29, 31} {
				dob := isoDate(year, month, day)
				for _, c := range PinnaclesAndChallenges(dob, LifePath(dob)).Challenges {
					assert.True(t, c.Number >= 0 && c.Number <= 8, "%s challenge %d = %d", dob, c.Index, c.Number)
				}
			}
		}
	}
}

func TestCycleWindows_ClampsFirstSpan(t *testing.T) {
	windows := CycleWindows(2000, 40)
	assert.Equal(t, Window{Start: 2000, End: 2000}, windows[0])
	assert.Equal(t, Window{Start: 2001, End: 2009}, windows[1])

	windows = CycleWindows(1969, 33)
	assert.Equal(t, Window{Start: 1969, End: 1971}, windows[0])
	assert.Equal(t, Window{Start: 1990, End: 1998}, windows[3])
}

func isoDate(year, month, day int) string {
	return fmt.Sprintf("%04d-%02d-%02d", year, month, day)
}

func cycleNumbers(cycles []model.Cycle) []int {
	out := make([]int, 0, len(cycles))
	for _, c := range cycles {
		out = append(out, c.Number)
	}
	return out
}
