package numerology

import "fmt"

// Kind identifies which core number a reading describes.
type Kind string

// Reading kinds.
const (
	KindLifePath    Kind = "life_path"
	KindExpression  Kind = "expression"
	KindSoulUrge    Kind = "soul_urge"
	KindPersonality Kind = "personality"
	KindMaturity    Kind = "maturity"
	KindBirthday    Kind = "birthday"
)

const (
	unknownMeaning   = "No interpretation is available for this number."
	missingInputText = "Not enough information was provided to calculate this number."
	unknownTheme     = "A year of steady, ordinary progress."
	unknownKeyword   = "balance"
)

var meanings = map[int]string{
	1:        "Independence, initiative, and the courage to lead and begin new things.",
	2:        "Cooperation, diplomacy, and a fine sensitivity to the needs of others.",
	3:        "Creativity, self-expression, and an optimistic, social spirit.",
	4:        "Structure, discipline, and steady work that builds lasting foundations.",
	5:        "Freedom, adaptability, and a hunger for change and new experience.",
	6:        "Responsibility, care, and devotion to family and community.",
	7:        "Introspection, analysis, and a patient search for deeper truth.",
	8:        "Ambition, authority, and mastery of material and financial affairs.",
	9:        "Compassion, idealism, and generous service to the wider world.",
	Master11: "Intuition and inspiration; a master number of spiritual insight.",
	Master22: "The master builder, able to turn large visions into practical reality.",
	Master33: "The master teacher, uplifting others through compassionate service.",
}

var keywords = map[int]string{
	1:        "leadership",
	2:        "partnership",
	3:        "creativity",
	4:        "stability",
	5:        "freedom",
	6:        "nurturing",
	7:        "wisdom",
	8:        "ambition",
	9:        "compassion",
	Master11: "intuition",
	Master22: "vision",
	Master33: "service",
}

var personalYearThemes = map[int]string{
	1:        "New beginnings: plant seeds and take the initiative.",
	2:        "Patience and partnership: cooperate and let things grow.",
	3:        "Expression and joy: create, socialise, and communicate.",
	4:        "Hard work and foundations: build structure and discipline.",
	5:        "Change and freedom: expect movement, travel, and surprises.",
	6:        "Home and responsibility: focus on family and commitments.",
	7:        "Reflection and study: slow down, learn, and look inward.",
	8:        "Power and achievement: pursue recognition and financial goals.",
	9:        "Completion and release: finish cycles and let go of what is done.",
	Master11: "Illumination: heightened intuition and inspired opportunities.",
	Master22: "Master building: ambitious projects with lasting impact.",
	Master33: "Master service: teaching, healing, and generous leadership.",
}

var challengeMeanings = map[int]string{
	0: "The choice challenge: every lesson is open and you choose which to face.",
	1: "Asserting yourself without domineering; independence without isolation.",
	2: "Oversensitivity; learning to trust your own judgement in partnership.",
	3: "Scattered energy and self-doubt when expressing yourself.",
	4: "Impatience with routine; accepting discipline and order.",
	5: "Restlessness; learning to use freedom responsibly.",
	6: "Perfectionism and taking on too much responsibility for others.",
	7: "Isolation and scepticism; learning to trust others and yourself.",
	8: "Balancing money and power with deeper values.",
}

var kindPrefixes = map[Kind]string{
	KindLifePath:    "Your life path resonates with the number",
	KindExpression:  "Your name expresses the energy of",
	KindSoulUrge:    "At heart you are driven by the number",
	KindPersonality: "Others first meet the number",
	KindMaturity:    "Later in life you grow into the number",
	KindBirthday:    "You were born with the gift of",
}

// NumberMeaning returns a one-sentence description of a numerology number.
// Numbers outside {1..9, 11, 22, 33} get a neutral placeholder.
func NumberMeaning(n int) string {
	if m, ok := meanings[n]; ok {
		return m
	}
	return unknownMeaning
}

// Keyword returns a single word that captures a number, for summaries.
func Keyword(n int) string {
	if k, ok := keywords[n]; ok {
		return k
	}
	return unknownKeyword
}

// PersonalYearTheme returns the short theme of a personal year number.
func PersonalYearTheme(n int) string {
	if t, ok := personalYearThemes[n]; ok {
		return t
	}
	return unknownTheme
}

// ChallengeMeaning describes a challenge number (0-8).
func ChallengeMeaning(n int) string {
	if m, ok := challengeMeanings[n]; ok {
		return m
	}
	return unknownMeaning
}

// Interpret phrases the meaning of n for a particular kind of reading.
// A 0 (missing input) returns a note that the number could not be computed.
func Interpret(kind Kind, n int) string {
	if n == 0 {
		return missingInputText
	}
	prefix, ok := kindPrefixes[kind]
	if !ok {
		return NumberMeaning(n)
	}
	return fmt.Sprintf("%s %d. %s", prefix, n, NumberMeaning(n))
}
