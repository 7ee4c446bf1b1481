package validator

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

// Optional leading +, then 10 to 15 digits.
var mobileRe = regexp.MustCompile(`^\+?[0-9]{10,15}$`)

func registerCustomRules(v *validator.Validate) error {
	return v.RegisterValidation("mobile", validateMobile)
}

func validateMobile(fl validator.FieldLevel) bool {
	return mobileRe.MatchString(fl.Field().String())
}
