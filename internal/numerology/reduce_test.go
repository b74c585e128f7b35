package numerology

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

var validNumbers = map[int]bool{
	1: true, 2: true, 3: true, 4: true, 5: true, 6: true, 7: true, 8: true, 9: true,
	11: true, 22: true, 33: true,
}

func TestReduce(t *testing.T) {
	tests := []struct {
		name string
		in   int
		want int
	}{
		{name: "zero sentinel", in: 0, want: 0},
		{name: "single digit", in: 7, want: 7},
		{name: "master 11", in: 11, want: 11},
		{name: "master 22", in: 22, want: 22},
		{name: "master 33", in: 33, want: 33},
		{name: "29 stops at 11", in: 29, want: 11},
		{name: "38 stops at 11", in: 38, want: 11},
		{name: "40 reduces to 4", in: 40, want: 4},
		{name: "30 reduces to 3", in: 30, want: 3},
		{name: "44 is not master", in: 44, want: 8},
		{name: "two passes", in: 99, want: 9},
		{name: "large number", in: 987654321, want: 9},
		{name: "negative", in: -29, want: 11},
		{name: "min int", in: math.MinInt64, want: 8},
		{name: "max int", in: math.MaxInt64, want: 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Reduce(tt.in))
		})
	}
}

func TestReduce_RangeAndIdempotence(t *testing.T) {
	for n := 1; n <= 5000; n++ {
		got := Reduce(n)
		assert.True(t, validNumbers[got], "Reduce(%d) = %d is outside the numerology range", n, got)
		assert.Equal(t, got, Reduce(got), "Reduce is not idempotent for %d", n)
	}

	for _, n := range []int{math.MinInt, math.MinInt + 1, -1, math.MaxInt - 1, math.MaxInt} {
		got := Reduce(n)
		assert.True(t, validNumbers[got], "Reduce(%d) = %d is outside the numerology range", n, got)
	}
}

func TestReduceToDigit(t *testing.T) {
	tests := []struct {
		in   int
		want int
	}{
		{0, 0},
		{9, 9},
		{11, 2},
		{22, 4},
		{33, 6},
		{29, 2},
		{1990, 1},
		{2026, 1},
		{-15, 6},
		{math.MinInt64, 8},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ReduceToDigit(tt.in), "ReduceToDigit(%d)", tt.in)
	}

	for n := 1; n <= 5000; n++ {
		got := ReduceToDigit(n)
		assert.True(t, got >= 1 && got <= 9, "ReduceToDigit(%d) = %d", n, got)
	}
}

func TestIsMaster(t *testing.T) {
	for _, n := range []int{11, 22, 33} {
		assert.True(t, IsMaster(n), "%d should be a master number", n)
	}
	for _, n := range []int{0, 1, 9, 10, 12, 21, 44, 55} {
		assert.False(t, IsMaster(n), "%d should not be a master number", n)
	}
}
