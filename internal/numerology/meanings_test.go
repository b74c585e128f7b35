package numerology

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNumberMeaning(t *testing.T) {
	seen := make(map[string]int)
	for n := range validNumbers {
		m := NumberMeaning(n)
		assert.NotEqual(t, unknownMeaning, m, "number %d has no meaning", n)
		if prev, ok := seen[m]; ok {
			t.Errorf("numbers %d and %d share a meaning", prev, n)
		}
		seen[m] = n
	}

	for _, n := range []int{0, 10, 12, 44, -1} {
		assert.Equal(t, unknownMeaning, NumberMeaning(n))
	}
}

func TestPersonalYearTheme(t *testing.T) {
	for n := range validNumbers {
		assert.NotEqual(t, unknownTheme, PersonalYearTheme(n), "number %d has no theme", n)
	}
	assert.Equal(t, unknownTheme, PersonalYearTheme(0))
}

func TestChallengeMeaning(t *testing.T) {
	for n := 0; n <= 8; n++ {
		assert.NotEqual(t, unknownMeaning, ChallengeMeaning(n), "challenge %d has no meaning", n)
	}
	assert.Equal(t, unknownMeaning, ChallengeMeaning(9))
}

func TestKeyword(t *testing.T) {
	for n := range validNumbers {
		assert.NotEqual(t, unknownKeyword, Keyword(n))
	}
	assert.Equal(t, unknownKeyword, Keyword(0))
}

func TestInterpret(t *testing.T) {
	tests := []struct {
		name     string
		kind     Kind
		n        int
		contains string
	}{
		{name: "life path", kind: KindLifePath, n: 4, contains: "Your life path resonates with the number 4."},
		{name: "soul urge master", kind: KindSoulUrge, n: 11, contains: "driven by the number 11."},
		{name: "birthday", kind: KindBirthday, n: 22, contains: "master builder"},
		{name: "missing input", kind: KindExpression, n: 0, contains: missingInputText},
		{name: "unknown kind", kind: Kind("other"), n: 7, contains: NumberMeaning(7)},
		{name: "unknown number", kind: KindMaturity, n: 44, contains: unknownMeaning},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Contains(t, Interpret(tt.kind, tt.n), tt.contains)
		})
	}
}
