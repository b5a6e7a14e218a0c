// Package validation checks sign-up and sign-in input against the credential
// format rules. Rules run in a fixed order and the first failure is returned.
package validation

import (
	"regexp"
	"strings"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/dmitrijs2005/blogauth/internal/common"
)

const (
	minFullnameLength = 3
	minPasswordLength = 6
	maxPasswordLength = 20
)

var emailRegex = regexp.MustCompile(`^\w+([\.-]?\w+)*@\w+([\.-]?\w+)*(\.\w{2,3})+$`)

// ValidateRegistration validates the sign-up form.
func ValidateRegistration(fullname, email, password string) error {
	if fullname == "" {
		return common.ErrEmptyFullname
	}
	if utf8.RuneCountInString(fullname) < minFullnameLength {
		return common.ErrFullnameTooShort
	}
	return ValidateCredentials(email, password)
}

// ValidateCredentials validates an email/password pair.
func ValidateCredentials(email, password string) error {
	if email == "" {
		return common.ErrEmptyEmail
	}
	if !emailRegex.MatchString(email) {
		return common.ErrInvalidEmail
	}
	if password == "" {
		return common.ErrEmptyPassword
	}
	if !isStrongPassword(password) {
		return common.ErrWeakPassword
	}
	return nil
}

// isStrongPassword requires 6..20 characters with at least one digit, one
// lowercase and one uppercase letter. Length is measured in UTF-16 code units
// so that browser-side checks agree with ours; this also keeps any accepted
// password well under bcrypt's 72 byte limit.
func isStrongPassword(password string) bool {
	if !utf8.ValidString(password) || strings.ContainsAny(password, "\n\r\u2028\u2029") {
		return false
	}

	var length int
	var digit, lower, upper bool
	for _, r := range password {
		length += utf16.RuneLen(r)
		switch {
		case r >= '0' && r <= '9':
			digit = true
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= 'A' && r <= 'Z':
			upper = true
		}
	}

	return length >= minPasswordLength && length <= maxPasswordLength && digit && lower && upper
}
