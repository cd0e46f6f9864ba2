package user

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/BruksfildServices01/appointment-booking/internal/httperr"
)

var (
	ErrEmailAlreadyInUse  = httperr.ErrConflict("email_already_in_use")
	ErrInvalidEmail       = httperr.ErrBusiness("invalid_email")
	ErrWeakPassword       = httperr.ErrBusiness("weak_password")
	ErrInvalidCredentials = httperr.ErrUnauthorized("invalid_credentials")
	ErrUserNotFound       = httperr.ErrNotFound("user_not_found")
)

const MinPasswordLen = 8

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func IsValidEmail(email string) bool {
	return emailRe.MatchString(email)
}

// IsStrongPassword requires MinPasswordLen characters with at least one
// letter and one digit.
func IsStrongPassword(password string) bool {
	if len(password) < MinPasswordLen {
		return false
	}

	var letter, digit bool
	for _, r := range password {
		switch {
		case unicode.IsLetter(r):
			letter = true
		case unicode.IsDigit(r):
			digit = true
		}
	}
	return letter && digit
}

var ErrInvalidEmailDomain = httperr.ErrBusiness("invalid_email_domain")
