// Package common defines shared constants and sentinel errors used across
// client and server layers of blogauth. Callers should use errors.Is to
// match these values.
package common

import (
	"errors"
	"fmt"
)

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")

	// Service-level errors (generic/internal flow control).
	ErrorInternal = errors.New("internal error")

	// Credential validation errors. All of them wrap ErrorValidation.
	ErrorValidation     = errors.New("validation error")
	ErrEmptyFullname    = fmt.Errorf("%w: empty fullname", ErrorValidation)
	ErrFullnameTooShort = fmt.Errorf("%w: fullname too short", ErrorValidation)
	ErrEmptyEmail       = fmt.Errorf("%w: empty email", ErrorValidation)
	ErrInvalidEmail     = fmt.Errorf("%w: invalid email", ErrorValidation)
	ErrEmptyPassword    = fmt.Errorf("%w: empty password", ErrorValidation)
	ErrWeakPassword     = fmt.Errorf("%w: weak password", ErrorValidation)

	// Account errors surfaced to callers.
	ErrEmailExists       = errors.New("email already exists")
	ErrEmailNotFound     = errors.New("email not found")
	ErrIncorrectPassword = errors.New("incorrect password")

	// Password hashing errors.
	ErrHashMalformed = errors.New("malformed password hash")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)
