package common

import "errors"

// Error kinds as they travel over the wire.
const (
	KindEmptyFullname     = "EmptyFullname"
	KindFullnameTooShort  = "FullnameTooShort"
	KindEmptyEmail        = "EmptyEmail"
	KindInvalidEmail      = "InvalidEmail"
	KindEmptyPassword     = "EmptyPassword"
	KindWeakPassword      = "WeakPassword"
	KindEmailExists       = "EmailExists"
	KindEmailNotFound     = "EmailNotFound"
	KindIncorrectPassword = "IncorrectPassword"
	KindInternal          = "Internal"
)

type errorInfo struct {
	err     error
	kind    string
	message string
}

// userFacing is checked in order; the first match wins.
var userFacing = []errorInfo{
	{ErrEmptyFullname, KindEmptyFullname, "Enter full name."},
	{ErrFullnameTooShort, KindFullnameTooShort, "Full name must be at least 3 letters long."},
	{ErrEmptyEmail, KindEmptyEmail, "Enter email."},
	{ErrInvalidEmail, KindInvalidEmail, "Email is invalid."},
	{ErrEmptyPassword, KindEmptyPassword, "Enter password."},
	{ErrWeakPassword, KindWeakPassword, "Password should be 6 to 20 characters long with a numeric, 1 lowercase, and 1 uppercase letters."},
	{ErrEmailExists, KindEmailExists, "Email already exists."},
	{ErrEmailNotFound, KindEmailNotFound, "Email not found."},
	{ErrIncorrectPassword, KindIncorrectPassword, "Incorrect Password."},
}

const internalMessage = "Something went wrong, please try again."

func lookup(err error) (errorInfo, bool) {
	for _, e := range userFacing {
		if errors.Is(err, e.err) {
			return e, true
		}
	}
	return errorInfo{}, false
}

// ErrorKind returns the wire kind of err. Anything that is not a known
// client-facing error is reported as KindInternal.
func ErrorKind(err error) string {
	if e, ok := lookup(err); ok {
		return e.kind
	}
	return KindInternal
}

// UserMessage returns the message shown to the end user for err.
// Internal errors never leak their details.
func UserMessage(err error) string {
	if e, ok := lookup(err); ok {
		return e.message
	}
	return internalMessage
}
