package pathway

import (
	"strconv"
	"testing"
	"time"

	"github.com/Veraticus/lifepath/internal/model"
	"github.com/Veraticus/lifepath/internal/numerology"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock(year int) func() time.Time {
	return func() time.Time {
		return time.Date(year, time.June, 1, 12, 0, 0, 0, time.UTC)
	}
}

func TestPlanForPersonalYear_Completeness(t *testing.T) {
	for _, n := range []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 11, 22, 33} {
		plan := PlanForPersonalYear(n)
		assert.NotEmpty(t, plan.Theme, "plan %d has no theme", n)
		assert.NotEmpty(t, plan.Milestones, "plan %d has no milestones", n)
		assert.NotEmpty(t, plan.Habits, "plan %d has no habits", n)
	}
}

func TestPlanForPersonalYear_FallsBackToOne(t *testing.T) {
	want := PlanForPersonalYear(1)
	for _, n := range []int{0, 10, 12, 44, -7} {
		assert.Equal(t, want, PlanForPersonalYear(n), "plan for %d", n)
	}
}

func TestPlanForPersonalYear_ReturnsCopies(t *testing.T) {
	plan := PlanForPersonalYear(4)
	plan.Milestones[0] = "changed"
	plan.Habits = append(plan.Habits, "extra")

	fresh := PlanForPersonalYear(4)
	assert.NotEqual(t, "changed", fresh.Milestones[0])
	assert.NotContains(t, fresh.Habits, "extra")
}

func TestBuildTenYearPathway(t *testing.T) {
	planner := New(WithClock(fixedClock(2026)))
	profile := model.UserProfile{Name: "Ada Lovelace", DOB: "1990-05-15"}

	pathway := planner.BuildTenYearPathway(profile)

	assert.Equal(t, HorizonYears, pathway.HorizonYears)
	require.Len(t, pathway.Epochs, 10)
	for i, epoch := range pathway.Epochs {
		year := 2026 + i
		assert.Equal(t, strconv.Itoa(year), epoch.Years)

		want := PlanForPersonalYear(numerology.PersonalYear(profile.DOB, year))
		assert.Equal(t, want.Theme, epoch.Theme, "year %d", year)
		assert.Equal(t, want.Milestones, epoch.Milestones, "year %d", year)
		assert.Equal(t, want.Habits, epoch.Habits, "year %d", year)
	}

	// personal year 3 in 2026 for this birth date
	assert.Equal(t, PlanForPersonalYear(3).Theme, pathway.Epochs[0].Theme)
	assert.Len(t, pathway.Risks, 3)
	assert.Len(t, pathway.LeadingIndicators, 3)
}

func TestBuildTenYearPathway_YearsStrictlyIncrease(t *testing.T) {
	planner := New(WithClock(fixedClock(2031)))
	pathway := planner.BuildTenYearPathway(model.UserProfile{DOB: "1980-09-09"})

	prev := 0
	for i, epoch := range pathway.Epochs {
		year, err := strconv.Atoi(epoch.Years)
		require.NoError(t, err)
		if i == 0 {
			assert.Equal(t, 2031, year)
		} else {
			assert.Equal(t, prev+1, year)
		}
		prev = year
	}
}

func TestBuildPathway_MatchesReportForecast(t *testing.T) {
	profile := model.UserProfile{Name: "Grace Hopper", DOB: "1906-12-09"}
	planner := New()
	start := planner.CurrentYear()

	pathway := planner.BuildPathway(profile, start, HorizonYears)
	report := numerology.BuildReport(profile, start, HorizonYears)

	require.Len(t, report.PersonalYears, len(pathway.Epochs))
	for i, py := range report.PersonalYears {
		assert.Equal(t, strconv.Itoa(py.Year), pathway.Epochs[i].Years)
		assert.Equal(t, PlanForPersonalYear(py.Number).Theme, pathway.Epochs[i].Theme)
	}
}

func TestBuildPathway_EmptyDOB(t *testing.T) {
	planner := New(WithClock(fixedClock(2026)))

	var pathway model.Pathway
	require.NotPanics(t, func() {
		pathway = planner.BuildTenYearPathway(model.UserProfile{})
	})
	assert.Len(t, pathway.Epochs, 10)
}

func TestBuildPathway_ClampsHorizon(t *testing.T) {
	planner := New(WithClock(fixedClock(2026)))
	pathway := planner.BuildPathway(model.UserProfile{DOB: "2000-01-01"}, 2026, 0)

	assert.Equal(t, 1, pathway.HorizonYears)
	assert.Len(t, pathway.Epochs, 1)
}

func TestRisksAndIndicatorsAreCopies(t *testing.T) {
	r := Risks()
	r[0] = "changed"
	assert.NotEqual(t, "changed", Risks()[0])

	li := LeadingIndicators()
	li[0] = "changed"
	assert.NotEqual(t, "changed", LeadingIndicators()[0])
}

func TestWithClock_NilIgnored(t *testing.T) {
	planner := New(WithClock(nil))
	assert.Equal(t, time.Now().Year(), planner.CurrentYear())
}

func TestSnapshot(t *testing.T) {
	planner := New(WithClock(fixedClock(2026)))
	profile := model.UserProfile{ID: "p-1", Name: "Ada Lovelace", DOB: "1815-12-10"}

	snap := planner.Snapshot(profile, 2030, 5)

	assert.Equal(t, "p-1", snap.ProfileID)
	assert.Equal(t, 2030, snap.StartYear)
	assert.True(t, snap.GeneratedAt.Equal(fixedClock(2026)()))
	require.Len(t, snap.Report.PersonalYears, 5)
	require.Len(t, snap.Pathway.Epochs, HorizonYears)
	assert.Equal(t, "2030", snap.Pathway.Epochs[0].Years)
	for i, py := range snap.Report.PersonalYears {
		assert.Equal(t, PlanForPersonalYear(py.Number).Theme, snap.Pathway.Epochs[i].Theme)
	}
}
