package booking

import (
	"regexp"
	"strings"

	"github.com/turfbook/service-booking/pkg/domain"
)

// emailPattern requires a local part, an @, and a dotted domain, with no whitespace.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

const phoneLength = 10

// ValidateName checks that the requester name is non-empty after trimming.
func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return domain.NewFieldValidationError(domain.CodeEmptyField, "name", "name is required")
	}
	return nil
}

// ValidateEmail checks that the requester email is present and well-formed.
func ValidateEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return domain.NewFieldValidationError(domain.CodeEmptyField, "email", "email is required")
	}
	if !emailPattern.MatchString(email) {
		return domain.NewFieldValidationError(domain.CodeMalformedEmail, "email", "email address is malformed")
	}
	return nil
}

// ValidatePhone checks that the phone number is exactly 10 ASCII digits.
func ValidatePhone(phone string) error {
	if len(phone) != phoneLength {
		return domain.NewFieldValidationError(domain.CodeInvalidPhone, "phone", "phone must be a 10-digit number")
	}
	for _, c := range phone {
		if c < '0' || c > '9' {
			return domain.NewFieldValidationError(domain.CodeInvalidPhone, "phone", "phone must be a 10-digit number")
		}
	}
	return nil
}
