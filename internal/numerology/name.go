package numerology

import "strings"

// CleanName returns name reduced to uppercase ASCII letters. Spaces,
// punctuation, digits, and accented letters are dropped, so "Zoë" and "ZO"
// reduce to the same sequence.
func CleanName(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	for _, r := range name {
		switch {
		case r >= 'A' && r <= 'Z':
			b.WriteRune(r)
		case r >= 'a' && r <= 'z':
			b.WriteRune(r - 'a' + 'A')
		}
	}
	return b.String()
}

// LetterValue maps a letter to its Pythagorean value using the repeating
// 1-9 cycle (A=1 ... I=9, J=1 ...). Non-letters are worth 0.
func LetterValue(r rune) int {
	switch {
	case r >= 'A' && r <= 'Z':
		return int(r-'A')%9 + 1
	case r >= 'a' && r <= 'z':
		return int(r-'a')%9 + 1
	default:
		return 0
	}
}

// IsVowel reports whether r is in the vowel set {A, E, I, O, U, Y}.
// Y always counts as a vowel.
func IsVowel(r rune) bool {
	switch r {
	case 'A', 'E', 'I', 'O', 'U', 'Y', 'a', 'e', 'i', 'o', 'u', 'y':
		return true
	default:
		return false
	}
}

// NameSums returns the unreduced letter sums of a name: all letters, vowels
// only, and consonants only. all is always vowels + consonants.
func NameSums(name string) (all, vowels, consonants int) {
	for _, r := range CleanName(name) {
		v := LetterValue(r)
		if IsVowel(r) {
			vowels += v
		} else {
			consonants += v
		}
	}
	return vowels + consonants, vowels, consonants
}

// Expression is the reduced sum of every letter in the name.
func Expression(name string) int {
	all, _, _ := NameSums(name)
	return Reduce(all)
}

// SoulUrge is the reduced sum of the vowels in the name.
func SoulUrge(name string) int {
	_, vowels, _ := NameSums(name)
	return Reduce(vowels)
}

// Personality is the reduced sum of the consonants in the name.
func Personality(name string) int {
	_, _, consonants := NameSums(name)
	return Reduce(consonants)
}

// Maturity combines the life path and expression numbers.
func Maturity(lifePath, expression int) int {
	return Reduce(lifePath + expression)
}
