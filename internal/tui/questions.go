package tui

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/Veraticus/lifepath/internal/model"
)

// Step identifies one question in the wizard.
type Step int

const (
	StepName Step = iota
	StepEmail
	StepDOB
	StepSex
	StepLocation
	StepGrowth
	StepStability
	StepImpact
	StepFamily
	StepGeneralSkills
	StepAISkills
	StepHeight
	StepWeight
	StepSleep
	StepExercise
	StepAddiction
	StepCurrency
	StepIncome
	StepNetWorth
	StepLiabilities
	StepSavingsRate
	StepGoal
	stepCount
)

var errNotANumber = errors.New("not a number")

// question is one prompt in the wizard. field is the validator path the
// answer lands in; profile.Validate decides whether the answer is accepted.
type question struct {
	apply       func(p *model.UserProfile, value string) error
	load        func(p model.UserProfile) string
	section     string
	label       string
	placeholder string
	field       string
	hint        string
	charLimit   int
}

const (
	sectionBasics  = "Basics"
	sectionValues  = "Values"
	sectionSkills  = "Skills"
	sectionHealth  = "Health"
	sectionFinance = "Finance & goal"
)

const valueHint = "Enter a number from 0 to 1, like 0.75."

var questions = [stepCount]question{
	StepName: {
		section:     sectionBasics,
		label:       "What is your full name?",
		placeholder: "Ada Lovelace",
		field:       "name",
		hint:        "Please enter your name.",
		charLimit:   200,
		apply:       func(p *model.UserProfile, v string) error { p.Name = v; return nil },
		load:        func(p model.UserProfile) string { return p.Name },
	},
	StepEmail: {
		section:     sectionBasics,
		label:       "What is your email? (optional)",
		placeholder: "ada@example.com",
		field:       "email",
		hint:        "Enter an email like ada@example.com, or leave it blank.",
		charLimit:   254,
		apply:       func(p *model.UserProfile, v string) error { p.Email = v; return nil },
		load:        func(p model.UserProfile) string { return p.Email },
	},
	StepDOB: {
		section:     sectionBasics,
		label:       "When were you born?",
		placeholder: "YYYY-MM-DD",
		field:       "dob",
		hint:        "Enter a real date as YYYY-MM-DD.",
		charLimit:   10,
		apply:       func(p *model.UserProfile, v string) error { p.DOB = v; return nil },
		load:        func(p model.UserProfile) string { return p.DOB },
	},
	StepSex: {
		section:     sectionBasics,
		label:       "What is your sex? male, female or other (optional)",
		placeholder: "other",
		field:       "sex",
		hint:        "Answer male, female or other, or leave it blank.",
		charLimit:   10,
		apply: func(p *model.UserProfile, v string) error {
			p.Sex = model.Sex(strings.ToLower(strings.TrimSpace(v)))
			return nil
		},
		load: func(p model.UserProfile) string { return string(p.Sex) },
	},
	StepLocation: {
		section:     sectionBasics,
		label:       "Where do you live? (optional)",
		placeholder: "City, Country",
		field:       "location",
		hint:        "Keep your location under 200 characters.",
		charLimit:   200,
		apply:       func(p *model.UserProfile, v string) error { p.Location = v; return nil },
		load:        func(p model.UserProfile) string { return p.Location },
	},
	StepGrowth: valueQuestion("How much do you value personal growth?", "values.growth",
		func(p *model.UserProfile) *float64 { return &p.Values.Growth }),
	StepStability: valueQuestion("How much do you value stability?", "values.stability",
		func(p *model.UserProfile) *float64 { return &p.Values.Stability }),
	StepImpact: valueQuestion("How much do you value making an impact?", "values.impact",
		func(p *model.UserProfile) *float64 { return &p.Values.Impact }),
	StepFamily: valueQuestion("How much do you value family?", "values.family",
		func(p *model.UserProfile) *float64 { return &p.Values.Family }),
	StepGeneralSkills: {
		section:     sectionSkills,
		label:       "What are your main skills? Separate them with commas. (optional)",
		placeholder: "writing, carpentry, public speaking",
		field:       "skills.general",
		hint:        "Keep each skill under 100 characters.",
		charLimit:   1000,
		apply:       func(p *model.UserProfile, v string) error { p.Skills.General = splitList(v); return nil },
		load:        func(p model.UserProfile) string { return strings.Join(p.Skills.General, ", ") },
	},
	StepAISkills: {
		section:     sectionSkills,
		label:       "Which AI tools or skills do you use? Separate them with commas. (optional)",
		placeholder: "prompting, fine-tuning",
		field:       "skills.ai",
		hint:        "Keep each skill under 100 characters.",
		charLimit:   1000,
		apply:       func(p *model.UserProfile, v string) error { p.Skills.AI = splitList(v); return nil },
		load:        func(p model.UserProfile) string { return strings.Join(p.Skills.AI, ", ") },
	},
	StepHeight: numberQuestion(sectionHealth, "How tall are you, in centimeters? (optional)", "175",
		"health.height_cm", "Enter your height in centimeters, from 0 to 300.",
		func(p *model.UserProfile) *float64 { return &p.Health.HeightCM }),
	StepWeight: numberQuestion(sectionHealth, "How much do you weigh, in kilograms? (optional)", "70",
		"health.weight_kg", "Enter your weight in kilograms, from 0 to 700.",
		func(p *model.UserProfile) *float64 { return &p.Health.WeightKG }),
	StepSleep: {
		section:     sectionHealth,
		label:       "How many hours do you sleep? A bedtime range like 23:00-07:00 works too. (optional)",
		placeholder: "7.5",
		field:       "health.sleep_hours",
		hint:        "Enter hours between 0 and 24, or a range like 23:00-07:00.",
		charLimit:   11,
		apply: func(p *model.UserProfile, v string) error {
			hours, err := parseSleep(v)
			if err != nil {
				return err
			}
			p.Health.SleepHours = hours
			return nil
		},
		load: func(p model.UserProfile) string { return formatNumber(p.Health.SleepHours) },
	},
	StepExercise: {
		section:     sectionHealth,
		label:       "How often do you exercise? daily, 3-5_weekly, 1-2_weekly or rarely (optional)",
		placeholder: "3-5_weekly",
		field:       "health.exercise_frequency",
		hint:        "Answer daily, 3-5_weekly, 1-2_weekly or rarely, or leave it blank.",
		charLimit:   10,
		apply: func(p *model.UserProfile, v string) error {
			p.Health.ExerciseFrequency = model.ExerciseFrequency(strings.ToLower(strings.TrimSpace(v)))
			return nil
		},
		load: func(p model.UserProfile) string { return string(p.Health.ExerciseFrequency) },
	},
	StepAddiction: {
		section:     sectionHealth,
		label:       "On a scale of 1 to 5, how much do habits or addictions hold you back? (optional)",
		placeholder: "1",
		field:       "health.addiction_self_rating",
		hint:        "Enter a whole number from 1 to 5, or leave it blank.",
		charLimit:   2,
		apply: func(p *model.UserProfile, v string) error {
			v = strings.TrimSpace(v)
			if v == "" {
				p.Health.AddictionSelfRating = 0
				return nil
			}
			n, err := strconv.Atoi(v)
			if err != nil {
				return errNotANumber
			}
			p.Health.AddictionSelfRating = n
			return nil
		},
		load: func(p model.UserProfile) string {
			if p.Health.AddictionSelfRating == 0 {
				return ""
			}
			return strconv.Itoa(p.Health.AddictionSelfRating)
		},
	},
	StepCurrency: {
		section:     sectionFinance,
		label:       "Which currency do you use? (optional)",
		placeholder: "USD",
		field:       "finance.currency",
		hint:        "Enter a three-letter currency code like USD.",
		charLimit:   3,
		apply:       func(p *model.UserProfile, v string) error { p.Finance.Currency = v; return nil },
		load:        func(p model.UserProfile) string { return p.Finance.Currency },
	},
	StepIncome: numberQuestion(sectionFinance, "What is your yearly income? (optional)", "60000",
		"finance.income", "Enter an amount of 0 or more.",
		func(p *model.UserProfile) *float64 { return &p.Finance.Income }),
	StepNetWorth: numberQuestion(sectionFinance, "What is your net worth? (optional)", "25000",
		"finance.net_worth", "Enter an amount. It can be negative.",
		func(p *model.UserProfile) *float64 { return &p.Finance.NetWorth }),
	StepLiabilities: numberQuestion(sectionFinance, "How much do you owe in total? (optional)", "10000",
		"finance.liabilities", "Enter an amount of 0 or more.",
		func(p *model.UserProfile) *float64 { return &p.Finance.Liabilities }),
	StepSavingsRate: {
		section:     sectionFinance,
		label:       "How much of your income do you save? (optional)",
		placeholder: "15%",
		field:       "finance.savings_rate",
		hint:        "Enter a rate from 0 to 1, or a percentage like 15%.",
		charLimit:   6,
		apply: func(p *model.UserProfile, v string) error {
			rate, err := parseRate(v)
			if err != nil {
				return err
			}
			p.Finance.SavingsRate = rate
			return nil
		},
		load: func(p model.UserProfile) string { return formatNumber(p.Finance.SavingsRate) },
	},
	StepGoal: {
		section:     sectionFinance,
		label:       "What is your biggest goal for the next ten years? (optional)",
		placeholder: "Start my own studio",
		field:       "life_goal",
		hint:        "Keep your goal under 1000 characters.",
		charLimit:   1000,
		apply:       func(p *model.UserProfile, v string) error { p.LifeGoal = v; return nil },
		load:        func(p model.UserProfile) string { return p.LifeGoal },
	},
}

func valueQuestion(label, field string, target func(*model.UserProfile) *float64) question {
	q := numberQuestion(sectionValues, label+" 0 to 1 (optional)", "0.5", field, valueHint, target)
	q.charLimit = 5
	return q
}

func numberQuestion(section, label, placeholder, field, hint string, target func(*model.UserProfile) *float64) question {
	return question{
		section:     section,
		label:       label,
		placeholder: placeholder,
		field:       field,
		hint:        hint,
		charLimit:   20,
		apply: func(p *model.UserProfile, v string) error {
			n, err := parseNumber(v)
			if err != nil {
				return err
			}
			*target(p) = n
			return nil
		},
		load: func(p model.UserProfile) string { return formatNumber(*target(&p)) },
	}
}

// parseNumber reads a decimal answer. Blank means zero and thousands
// separators are ignored.
func parseNumber(s string) (float64, error) {
	s = strings.NewReplacer(",", "", "_", "", " ", "").Replace(s)
	if s == "" {
		return 0, nil
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, errNotANumber
	}
	return n, nil
}

// parseRate accepts a fraction ("0.15") or a percentage ("15%").
func parseRate(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if pct, ok := strings.CutSuffix(s, "%"); ok {
		n, err := parseNumber(pct)
		if err != nil {
			return 0, err
		}
		return n / 100, nil
	}
	return parseNumber(s)
}

// parseSleep accepts hours ("7.5") or a bedtime range ("23:00-07:00"),
// which wraps past midnight.
func parseSleep(s string) (float64, error) {
	bed, wake, ok := strings.Cut(strings.TrimSpace(s), "-")
	if !ok {
		return parseNumber(s)
	}

	from, err := time.Parse("15:04", strings.TrimSpace(bed))
	if err != nil {
		return 0, errNotANumber
	}
	to, err := time.Parse("15:04", strings.TrimSpace(wake))
	if err != nil {
		return 0, errNotANumber
	}

	d := to.Sub(from)
	if d <= 0 {
		d += 24 * time.Hour
	}
	return math.Round(d.Hours()*10) / 10, nil
}

func formatNumber(n float64) string {
	if n == 0 {
		return ""
	}
	return strconv.FormatFloat(n, 'f', -1, 64)
}

// splitList turns "a, b,,c" into [a b c].
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
