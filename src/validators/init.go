package validators

import (
	"regexp"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validate *validator.Validate
	initOnce sync.Once
)

// Digits with an optional leading "+" and the usual separators.
var phoneNumberRegex = regexp.MustCompile(`^\+?[0-9][0-9 ()\-]{2,24}$`)

func InitValidators() {
	initOnce.Do(func() {
		validate = validator.New()

		RegisterAllValidators(validate)
	})
}

func RegisterAllValidators(v *validator.Validate) {
	v.RegisterValidation("phone_number", func(fl validator.FieldLevel) bool {
		return phoneNumberRegex.MatchString(fl.Field().String())
	})
}

// Export validate to use in handlers
func Validator() *validator.Validate {
	InitValidators()
	return validate
}
