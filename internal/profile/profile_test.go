package profile

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Veraticus/lifepath/internal/common"
	"github.com/Veraticus/lifepath/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const yamlProfile = `
name: "  Ada Lovelace "
email: ada@example.com
dob: 1815-12-10
sex: female
location: London
life_goal: Build the analytical engine
values:
  growth: 0.9
  stability: 0.4
  impact: 1
  family: 0.65
skills:
  general: [mathematics, writing]
  ai: [algorithms]
health:
  height_cm: 165
  weight_kg: 55
  sleep_hours: 7.5
  exercise_frequency: 1-2_weekly
  addiction_self_rating: 2
finance:
  net_worth: 12000
  savings_rate: 0.15
  income: 48000
  liabilities: 3000
  currency: gbp
`

func TestDecode_YAML(t *testing.T) {
	p, err := Decode(strings.NewReader(yamlProfile))
	require.NoError(t, err)

	assert.Equal(t, "Ada Lovelace", p.Name)
	assert.Equal(t, "1815-12-10", p.DOB)
	assert.Equal(t, model.SexFemale, p.Sex)
	assert.InDelta(t, 1.0, p.Values.Impact, 0.0001)
	assert.InDelta(t, 0.65, p.Values.Family, 0.0001)
	assert.Equal(t, []string{"mathematics", "writing"}, p.Skills.General)
	assert.Equal(t, model.ExerciseSometimes, p.Health.ExerciseFrequency)
	assert.InDelta(t, 0.15, p.Finance.SavingsRate, 0.0001)
	assert.Equal(t, "GBP", p.Finance.Currency)

	assert.NoError(t, Validate(p))
}

func TestDecode_JSON(t *testing.T) {
	doc := `{"name": "Alan Turing", "dob": "1912-06-23", "finance": {"income": 1000, "currency": "GBP"}}`

	p, err := Decode(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, "Alan Turing", p.Name)
	assert.Equal(t, "1912-06-23", p.DOB)
	assert.InDelta(t, 1000, p.Finance.Income, 0)
}

func TestDecode_FractionalValues(t *testing.T) {
	p, err := Decode(strings.NewReader("name: Ada\ndob: 1815-12-10\nvalues:\n  growth: 0.75\n  family: 0.2\n"))
	require.NoError(t, err)
	assert.InDelta(t, 0.75, p.Values.Growth, 0.0001)
	assert.InDelta(t, 0.2, p.Values.Family, 0.0001)
	assert.Zero(t, p.Values.Stability)
	assert.NoError(t, Validate(p))

	p.Values.Impact = -0.1
	assert.ErrorContains(t, Validate(p), "values.impact must be at least 0")
}

func TestDecode_RejectsUnknownFields(t *testing.T) {
	_, err := Decode(strings.NewReader("name: Ada\ndob: 1815-12-10\nbirthday: yes\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "birthday")
}

func TestDecode_Empty(t *testing.T) {
	_, err := Decode(strings.NewReader(""))
	assert.ErrorIs(t, err, ErrEmpty)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ada.yaml")
	require.NoError(t, os.WriteFile(path, []byte(yamlProfile), 0o600))

	p, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Ada Lovelace", p.Name)

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestEncode_RoundTrip(t *testing.T) {
	p, err := Decode(strings.NewReader(yamlProfile))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, p))

	again, err := Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, p, again)
}

func TestValidate(t *testing.T) {
	valid := model.UserProfile{Name: "Ada Lovelace", DOB: "1815-12-10"}

	tests := []struct {
		name     string
		mutate   func(p *model.UserProfile)
		contains string
	}{
		{name: "missing name", mutate: func(p *model.UserProfile) { p.Name = "" }, contains: "name is required"},
		{name: "missing dob", mutate: func(p *model.UserProfile) { p.DOB = "" }, contains: "dob is required"},
		{name: "impossible date", mutate: func(p *model.UserProfile) { p.DOB = "2001-02-30" }, contains: "dob must be a valid date"},
		{name: "wrong layout", mutate: func(p *model.UserProfile) { p.DOB = "10/12/1815" }, contains: "dob must be a valid date"},
		{name: "bad email", mutate: func(p *model.UserProfile) { p.Email = "not-an-email" }, contains: "email must be a valid email"},
		{name: "bad sex", mutate: func(p *model.UserProfile) { p.Sex = "unknown" }, contains: "sex must be one of"},
		{name: "values out of range", mutate: func(p *model.UserProfile) { p.Values.Growth = 1.5 }, contains: "values.growth must be at most 1"},
		{name: "sleep out of range", mutate: func(p *model.UserProfile) { p.Health.SleepHours = 30 }, contains: "health.sleep_hours must be at most 24"},
		{name: "savings rate", mutate: func(p *model.UserProfile) { p.Finance.SavingsRate = 1.5 }, contains: "finance.savings_rate must be at most 1"},
		{name: "currency length", mutate: func(p *model.UserProfile) { p.Finance.Currency = "POUND" }, contains: "finance.currency must be exactly 3 characters"},
	}

	require.NoError(t, Validate(valid))

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := valid
			tt.mutate(&p)

			err := Validate(p)
			require.Error(t, err)
			assert.ErrorIs(t, err, common.ErrInvalidProfile)
			assert.Contains(t, err.Error(), tt.contains)

			var verr *ValidationError
			require.True(t, errors.As(err, &verr))
			assert.NotEmpty(t, verr.Problems)
		})
	}
}

func TestIsISODate(t *testing.T) {
	assert.True(t, IsISODate("2000-02-29"))
	assert.False(t, IsISODate("1900-02-29"))
	assert.False(t, IsISODate("2000-1-1"))
	assert.False(t, IsISODate(""))
}

func TestValidationError_Field(t *testing.T) {
	p := model.UserProfile{
		Name:   "Ada",
		DOB:    "1815-13-40",
		Skills: model.Skills{General: []string{"ok", strings.Repeat("x", 101)}},
		Values: model.Values{Family: 2},
	}

	var verr *ValidationError
	require.True(t, errors.As(Validate(p), &verr))

	assert.Contains(t, verr.Field("dob"), "YYYY-MM-DD")
	assert.Equal(t, "values.family must be at most 1", verr.Field("values.family"))
	assert.Equal(t, "skills.general[1] must be at most 100", verr.Field("skills.general"))
	assert.Empty(t, verr.Field("name"))
	assert.Empty(t, verr.Field("values.growth"))
	assert.Empty(t, verr.Field("skills"), "a bare prefix must not match nested fields")
}
