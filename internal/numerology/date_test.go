package numerology

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseBirthDate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want BirthDate
	}{
		{name: "iso date", in: "1990-05-15", want: BirthDate{Year: 1990, Month: 5, Day: 15}},
		{name: "timestamp suffix", in: "1990-05-15T00:00:00Z", want: BirthDate{Year: 1990, Month: 5, Day: 15}},
		{name: "surrounding space", in: " 2000-01-01 ", want: BirthDate{Year: 2000, Month: 1, Day: 1}},
		{name: "partial year and month", in: "1985-07", want: BirthDate{Year: 1985, Month: 7}},
		{name: "year only", in: "1985", want: BirthDate{Year: 1985}},
		{name: "impossible date kept", in: "2001-02-30", want: BirthDate{Year: 2001, Month: 2, Day: 30}},
		{name: "empty", in: "", want: BirthDate{}},
		{name: "garbage", in: "not a date", want: BirthDate{}},
		{name: "huge component capped", in: "99999999999999999999-01-01", want: BirthDate{Year: 9999999999, Month: 1, Day: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseBirthDate(tt.in))
		})
	}
}

func TestLifePath(t *testing.T) {
	tests := []struct {
		name string
		dob  string
		want int
	}{
		{name: "digit sum 30", dob: "1990-05-15", want: 3},
		{name: "millennium", dob: "2000-01-01", want: 4},
		{name: "lands on 11", dob: "1991-08-10", want: 11},
		{name: "lands on 22", dob: "1980-01-03", want: 22},
		{name: "lands on 33", dob: "1969-07-01", want: 33},
		{name: "separators ignored", dob: "1990/05/15", want: 3},
		{name: "empty", dob: "", want: 0},
		{name: "no digits", dob: "unknown", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, LifePath(tt.dob))
		})
	}
}

func TestBirthday(t *testing.T) {
	tests := []struct {
		dob  string
		want int
	}{
		{"2000-01-01", 1},
		{"1990-05-15", 6},
		{"1990-05-11", 11},
		{"1990-05-22", 22},
		{"1990-05-29", 11},
		{"1990-05-31", 4},
		{"", 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Birthday(tt.dob), "Birthday(%q)", tt.dob)
	}
}

func TestEngineIsTotal(t *testing.T) {
	inputs := []string{
		"", "-", "--", "---", "----", "T", "9999-99-99", "-1-1", "\x00", "١٩٩٠-٠٥-١٥",
		"1990-05-15-extra", "🎂", "0000-00-00",
	}

	for _, in := range inputs {
		assert.NotPanics(t, func() {
			_ = LifePath(in)
			_ = Birthday(in)
			_ = PersonalYear(in, 2026)
			_ = PinnaclesAndChallenges(in, LifePath(in))
			_ = Expression(in)
			_ = SoulUrge(in)
			_ = Personality(in)
		}, "input %q", in)
	}
}
