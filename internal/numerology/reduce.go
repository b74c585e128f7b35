// Package numerology computes Pythagorean numerology numbers from a name and a
// birth date.
//
// Every function in this package is total: malformed or empty input degrades
// to 0 or a fallback string, never to an error or a panic. Interactive
// callers run the engine against half-filled forms, so partial input must
// always produce something displayable.
package numerology

// Master numbers are never reduced once a sum lands on them.
const (
	Master11 = 11
	Master22 = 22
	Master33 = 33
)

// IsMaster reports whether n is one of the master numbers 11, 22, or 33.
func IsMaster(n int) bool {
	return n == Master11 || n == Master22 || n == Master33
}

// Reduce repeatedly sums the decimal digits of n until it is a single digit
// or a master number. Reduce(0) is 0, which callers use as the "no input"
// sentinel. Negative input is treated as its absolute value.
func Reduce(n int) int {
	m := magnitude(n)
	for m > 9 && !IsMaster(int(m)) {
		m = digitSum(m)
	}
	return int(m)
}

// ReduceToDigit reduces n to 0..9 ignoring master numbers. It is used for
// the month, day, and year components of cycle calculations.
func ReduceToDigit(n int) int {
	m := magnitude(n)
	for m > 9 {
		m = digitSum(m)
	}
	return int(m)
}

func digitSum(m uint64) uint64 {
	var sum uint64
	for m > 0 {
		sum += m % 10
		m /= 10
	}
	return sum
}

// magnitude is |n| without overflowing on math.MinInt.
func magnitude(n int) uint64 {
	if n < 0 {
		return uint64(-(n + 1)) + 1
	}
	return uint64(n)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
