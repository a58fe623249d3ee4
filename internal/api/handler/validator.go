package handler

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// accountPasswordSpecials is the character set at least one of which a new
// account password must contain.
const accountPasswordSpecials = `!@#$%^&*()_+{}[]:;<>,.?~\/-`

// echoValidator wraps go-playground/validator so Echo can call
// c.Validate(req). Pre-flight failures never reach the backend.
type echoValidator struct {
	v *validator.Validate
}

// NewValidator returns an echoValidator ready to be assigned to
// echo.Echo.Validator.
func NewValidator() *echoValidator {
	v := validator.New()
	_ = v.RegisterValidation("accountpassword", validAccountPassword)
	return &echoValidator{v: v}
}

// Validate satisfies the echo.Validator interface.
func (ev *echoValidator) Validate(i any) error {
	if err := ev.v.Struct(i); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			msgs := make([]string, 0, len(ve))
			for _, fe := range ve {
				msgs = append(msgs, fieldError(fe))
			}
			return fmt.Errorf("%s", strings.Join(msgs, "; "))
		}
		return err
	}
	return nil
}

// validAccountPassword enforces the new-account password rule: 8..16
// characters with at least one uppercase letter and one special character.
func validAccountPassword(fl validator.FieldLevel) bool {
	pw := fl.Field().String()
	if len(pw) < 8 || len(pw) > 16 {
		return false
	}
	var upper, special bool
	for _, r := range pw {
		if unicode.IsUpper(r) {
			upper = true
		}
		if strings.ContainsRune(accountPasswordSpecials, r) {
			special = true
		}
	}
	return upper && special
}

// fieldError converts a single ValidationError into a human-readable
// message suitable for inline rendering next to the field.
func fieldError(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fe.Param())
	case "eqfield":
		return field + " must match " + strings.ToLower(fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "lte":
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "accountpassword":
		return field + " must be 8-16 characters with an uppercase letter and a special character"
	default:
		return fmt.Sprintf("%s failed validation (%s)", field, fe.Tag())
	}
}
