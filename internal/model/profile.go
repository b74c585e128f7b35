package model

import "time"

// Sex is the self-reported sex collected during onboarding.
type Sex string

const (
	// SexMale is the male option.
	SexMale Sex = "male"
	// SexFemale is the female option.
	SexFemale Sex = "female"
	// SexOther covers every other answer.
	SexOther Sex = "other"
)

// ExerciseFrequency is a coarse bucket for how often someone exercises.
type ExerciseFrequency string

const (
	// ExerciseDaily means at least once a day.
	ExerciseDaily ExerciseFrequency = "daily"
	// ExerciseOften means three to five times a week.
	ExerciseOften ExerciseFrequency = "3-5_weekly"
	// ExerciseSometimes means once or twice a week.
	ExerciseSometimes ExerciseFrequency = "1-2_weekly"
	// ExerciseRarely means less than weekly.
	ExerciseRarely ExerciseFrequency = "rarely"
)

// UserProfile is everything the onboarding flow collects about a person.
// The numerology engine reads only Name and DOB.
type UserProfile struct {
	CreatedAt time.Time `json:"created_at,omitempty" yaml:"-"`
	UpdatedAt time.Time `json:"updated_at,omitempty" yaml:"-"`
	ID        string    `json:"id,omitempty" yaml:"id,omitempty"`
	Name      string    `json:"name" yaml:"name" validate:"required,max=200"`
	Email     string    `json:"email,omitempty" yaml:"email,omitempty" validate:"omitempty,email"`
	// DOB is an ISO date (YYYY-MM-DD). It stays a string because partially
	// entered dates must still flow through the engine.
	DOB      string  `json:"dob" yaml:"dob" validate:"required,isodate"`
	Sex      Sex     `json:"sex,omitempty" yaml:"sex,omitempty" validate:"omitempty,oneof=male female other"`
	Location string  `json:"location,omitempty" yaml:"location,omitempty" validate:"max=200"`
	LifeGoal string  `json:"life_goal,omitempty" yaml:"life_goal,omitempty" validate:"max=1000"`
	Values   Values  `json:"values" yaml:"values"`
	Skills   Skills  `json:"skills" yaml:"skills"`
	Health   Health  `json:"health" yaml:"health"`
	Finance  Finance `json:"finance" yaml:"finance"`
}

// Values weights what the person cares about, each from 0 to 1.
type Values struct {
	Growth    float64 `json:"growth" yaml:"growth" validate:"min=0,max=1"`
	Stability float64 `json:"stability" yaml:"stability" validate:"min=0,max=1"`
	Impact    float64 `json:"impact" yaml:"impact" validate:"min=0,max=1"`
	Family    float64 `json:"family" yaml:"family" validate:"min=0,max=1"`
}

// Skills lists self-reported skills.
type Skills struct {
	General []string `json:"general,omitempty" yaml:"general,omitempty" validate:"dive,max=100"`
	AI      []string `json:"ai,omitempty" yaml:"ai,omitempty" validate:"dive,max=100"`
}

// Health holds basic health indicators.
type Health struct {
	ExerciseFrequency   ExerciseFrequency `json:"exercise_frequency,omitempty" yaml:"exercise_frequency,omitempty" validate:"omitempty,oneof=daily 3-5_weekly 1-2_weekly rarely"`
	HeightCM            float64           `json:"height_cm,omitempty" yaml:"height_cm,omitempty" validate:"min=0,max=300"`
	WeightKG            float64           `json:"weight_kg,omitempty" yaml:"weight_kg,omitempty" validate:"min=0,max=700"`
	SleepHours          float64           `json:"sleep_hours,omitempty" yaml:"sleep_hours,omitempty" validate:"min=0,max=24"`
	AddictionSelfRating int               `json:"addiction_self_rating,omitempty" yaml:"addiction_self_rating,omitempty" validate:"omitempty,min=1,max=5"`
}

// Finance holds a snapshot of the person's finances in a single currency.
type Finance struct {
	Currency    string  `json:"currency,omitempty" yaml:"currency,omitempty" validate:"omitempty,len=3"`
	NetWorth    float64 `json:"net_worth" yaml:"net_worth"`
	SavingsRate float64 `json:"savings_rate" yaml:"savings_rate" validate:"min=0,max=1"`
	Income      float64 `json:"income" yaml:"income" validate:"min=0"`
	Liabilities float64 `json:"liabilities" yaml:"liabilities" validate:"min=0"`
}
