package numerology

import "strings"

// maxComponent caps parsed date components so absurd input cannot overflow.
const maxComponent = 1_000_000_000

// BirthDate is a calendar date extracted from an ISO date string.
// A zero field means the component was missing or malformed.
type BirthDate struct {
	Year  int
	Month int
	Day   int
}

// ParseBirthDate extracts year, month, and day from a YYYY-MM-DD string.
// Each dash-separated part contributes its leading digits; anything after
// them (such as the time in "1990-05-15T00:00:00Z") is ignored. No range
// checks are made: "2001-02-30" yields {2001, 2, 30}.
func ParseBirthDate(dob string) BirthDate {
	parts := strings.SplitN(strings.TrimSpace(dob), "-", 3)

	var bd BirthDate
	if len(parts) > 0 {
		bd.Year = leadingInt(parts[0])
	}
	if len(parts) > 1 {
		bd.Month = leadingInt(parts[1])
	}
	if len(parts) > 2 {
		bd.Day = leadingInt(parts[2])
	}
	return bd
}

// IsZero reports whether no component could be parsed.
func (b BirthDate) IsZero() bool {
	return b.Year == 0 && b.Month == 0 && b.Day == 0
}

func leadingInt(s string) int {
	n := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			break
		}
		if n >= maxComponent {
			break
		}
		n = n*10 + int(r-'0')
	}
	return n
}

// LifePath sums every digit in dob, separators contributing nothing, and
// reduces the total. An empty date yields 0.
func LifePath(dob string) int {
	sum := 0
	for _, r := range dob {
		if r >= '0' && r <= '9' {
			sum += int(r - '0')
		}
	}
	return Reduce(sum)
}

// Birthday reduces the day of the month, keeping 11 and 22 intact.
func Birthday(dob string) int {
	return Reduce(ParseBirthDate(dob).Day)
}
