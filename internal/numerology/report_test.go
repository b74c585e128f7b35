package numerology

import (
	"testing"

	"github.com/Veraticus/lifepath/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildReport_AdaLovelace(t *testing.T) {
	profile := model.UserProfile{Name: "Ada Lovelace", DOB: "2000-01-01"}

	report := BuildReport(profile, 2026, 10)

	assert.Equal(t, 4, report.LifePath.Number)
	assert.NotEmpty(t, report.LifePath.Interpretation)
	assert.Equal(t, 9, report.Expression.Number)
	assert.Equal(t, 1, report.SoulUrge.Number)

	require.True(t, report.HasExtended())
	assert.Equal(t, 8, report.Personality.Number)
	assert.Equal(t, 4, report.Maturity.Number)
	assert.Equal(t, 1, report.Birthday.Number)

	assert.Len(t, report.Pinnacles, CycleCount)
	assert.Len(t, report.Challenges, CycleCount)
	require.Len(t, report.PersonalYears, 10)
	assert.Equal(t, 2026, report.PersonalYears[0].Year)
	assert.Equal(t, 2035, report.PersonalYears[9].Year)

	assert.Contains(t, report.Summary, "stability (4)")
	assert.Contains(t, report.Summary, "compassion (9)")
	assert.Contains(t, report.Summary, "2026 is a personal year 3")
}

func TestBuildReport_EveryNumberInRange(t *testing.T) {
	profiles := []model.UserProfile{
		{Name: "Ada Lovelace", DOB: "2000-01-01"},
		{Name: "Grace Brewster Murray Hopper", DOB: "1906-12-09"},
		{Name: "Alan Mathison Turing", DOB: "1912-06-23"},
		{Name: "Katherine Johnson", DOB: "1918-08-26"},
	}

	for _, p := range profiles {
		r := BuildReport(p, 2026, 10)
		for _, n := range []int{
			r.LifePath.Number, r.Expression.Number, r.SoulUrge.Number,
			r.Personality.Number, r.Maturity.Number, r.Birthday.Number,
		} {
			assert.True(t, validNumbers[n], "%s: %d out of range", p.Name, n)
		}
		for _, c := range r.Pinnacles {
			assert.True(t, validNumbers[c.Number], "%s: pinnacle %d = %d", p.Name, c.Index, c.Number)
		}
		for _, py := range r.PersonalYears {
			assert.True(t, validNumbers[py.Number], "%s: personal year %d = %d", p.Name, py.Year, py.Number)
		}
	}
}

func TestBuildReport_EmptyProfile(t *testing.T) {
	var report model.NumerologyReport
	require.NotPanics(t, func() {
		report = BuildReport(model.UserProfile{}, 2026, 0)
	})

	assert.Equal(t, 0, report.LifePath.Number)
	assert.Equal(t, 0, report.Expression.Number)
	assert.NotEmpty(t, report.LifePath.Interpretation)
	assert.Empty(t, report.Pinnacles)
	assert.Empty(t, report.Challenges)
	assert.Len(t, report.PersonalYears, DefaultForecastYears)
	assert.Contains(t, report.Summary, "Enter a full name")
}

func TestBuildReport_MasterLifePath(t *testing.T) {
	report := BuildReport(model.UserProfile{Name: "Test", DOB: "1991-08-10"}, 2026, 1)

	assert.Equal(t, 11, report.LifePath.Number)
	assert.Contains(t, report.Summary, "master life path")
	// 36 - 11 years for the first cycle
	assert.Equal(t, 1991+25-1, report.Pinnacles[0].EndYear)
}
