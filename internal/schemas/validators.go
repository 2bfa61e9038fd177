// Package schemas is the validation layer: it turns raw request input into
// request objects whose constructors are the only way to produce them, so
// nothing unvalidated reaches a controller.
package schemas

import (
	"regexp"
	"strings"

	"userhub/api/internal/apperr"
)

var phonePattern = regexp.MustCompile(`^09\d{9}$`)

const passwordSpecials = "@$!%*?&"

const passwordMessage = "Password must contain at least 8 characters, including one uppercase letter, one lowercase letter, one number, and one special character."

// ValidatePhone checks the 09xxxxxxxxx phone format.
func ValidatePhone(value string) error {
	if !phonePattern.MatchString(value) {
		return apperr.BadRequest("Invalid phone number.")
	}
	return nil
}

// ValidatePassword enforces the complexity rule: at least 8 characters with
// an uppercase letter, a lowercase letter, a digit and one of @$!%*?&, and
// nothing outside those classes.
func ValidatePassword(value string) error {
	if len(value) < 8 {
		return apperr.BadRequest(passwordMessage)
	}

	var lower, upper, digit, special bool
	for _, r := range value {
		switch {
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= '0' && r <= '9':
			digit = true
		case strings.ContainsRune(passwordSpecials, r):
			special = true
		default:
			return apperr.BadRequest(passwordMessage)
		}
	}

	if !lower || !upper || !digit || !special {
		return apperr.BadRequest(passwordMessage)
	}
	return nil
}
