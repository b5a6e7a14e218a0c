package models

import "time"

// Account is a registered user. It is created once on sign-up and never
// mutated by the auth core afterwards.
type Account struct {
	ID           string
	Email        string
	Username     string
	Fullname     string
	PasswordHash string
	ProfileImage string
	CreatedAt    time.Time
}
