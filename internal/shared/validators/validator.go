package validators

import (
	"time"
	_ "time/tzdata"

	"github.com/go-playground/validator/v10"
)

// Validate is a type alias for validator.Validate.
type Validate = validator.Validate

// ValidationErrors is a type alias for validator.ValidationErrors.
type ValidationErrors = validator.ValidationErrors

// FieldError is a type alias for validator.FieldError.
type FieldError = validator.FieldError

const (
	TagClockTime = "clocktime"
	TagTimezone  = "timezone"
)

// New creates a validator with the project's custom tags registered:
//   - clocktime: "HH:MM:SS" wall clock value
//   - timezone: IANA zone name resolvable by time.LoadLocation
func New() *Validate {
	v := validator.New()
	_ = v.RegisterValidation(TagClockTime, func(fl validator.FieldLevel) bool {
		_, err := time.Parse(time.TimeOnly, fl.Field().String())
		return err == nil
	})
	_ = v.RegisterValidation(TagTimezone, func(fl validator.FieldLevel) bool {
		_, err := time.LoadLocation(fl.Field().String())
		return err == nil
	})
	return v
}
