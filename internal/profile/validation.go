package profile

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/Veraticus/lifepath/internal/common"
	"github.com/Veraticus/lifepath/internal/model"
	"github.com/go-playground/validator/v10"
)

// DateLayout is the ISO date format profiles use for the date of birth.
const DateLayout = "2006-01-02"

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	// Registration only fails for an empty tag or nil func.
	_ = v.RegisterValidation("isodate", func(fl validator.FieldLevel) bool {
		return IsISODate(fl.Field().String())
	})

	return v
}

// IsISODate reports whether s is a real calendar date in YYYY-MM-DD form.
func IsISODate(s string) bool {
	_, err := time.Parse(DateLayout, s)
	return err == nil
}

// ValidationError lists every problem found in a profile.
type ValidationError struct {
	Problems []string
	// fields holds the field path of each problem, in the same order.
	fields []string
}

// Field returns the first problem reported for path, or "" when that field
// is valid. A path also matches its indexed elements, so "skills.general"
// covers "skills.general[2]".
func (e *ValidationError) Field(path string) string {
	for i, f := range e.fields {
		if f == path || strings.HasPrefix(f, path+"[") {
			return e.Problems[i]
		}
	}
	return ""
}

func (e *ValidationError) Error() string {
	return "invalid profile: " + strings.Join(e.Problems, "; ")
}

// Unwrap lets callers match with errors.Is(err, common.ErrInvalidProfile).
func (e *ValidationError) Unwrap() error {
	return common.ErrInvalidProfile
}

// Validate checks that a profile is complete enough to be saved.
func Validate(p model.UserProfile) error {
	err := validate.Struct(p)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("%w: %v", common.ErrInvalidProfile, err)
	}

	verr := &ValidationError{
		Problems: make([]string, 0, len(fieldErrs)),
		fields:   make([]string, 0, len(fieldErrs)),
	}
	for _, fe := range fieldErrs {
		verr.Problems = append(verr.Problems, formatFieldError(fe))
		verr.fields = append(verr.fields, fieldPath(fe.Namespace()))
	}
	return verr
}

// formatFieldError formats a single validation error into a readable message.
func formatFieldError(e validator.FieldError) string {
	field := fieldPath(e.Namespace())

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "isodate":
		return fmt.Sprintf("%s must be a valid date in YYYY-MM-DD format", field)
	case "email":
		return fmt.Sprintf("%s must be a valid email", field)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, e.Param())
	case "len":
		return fmt.Sprintf("%s must be exactly %s characters", field, e.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s", field, e.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", field, e.Param())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}

// fieldPath drops the struct name from a validator namespace,
// "UserProfile.finance.income" becoming "finance.income".
func fieldPath(namespace string) string {
	if i := strings.Index(namespace, "."); i >= 0 {
		return namespace[i+1:]
	}
	return namespace
}
