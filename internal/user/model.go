package user

import (
	"errors"
	"time"
)

var (
	ErrNotFound           = errors.New("user not found")
	ErrEmailAlreadyUsed   = errors.New("email already used")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInactiveUser       = errors.New("user is inactive")
)

// User represents an account in the system. Guests submitting booking
// requests do not need an account; accounts exist for the customer
// dashboard and the admin back-office.
type User struct {
	ID           string // UUID
	Email        string
	PasswordHash string
	DisplayName  *string
	CreatedAt    time.Time
	LastLoginAt  *time.Time
	IsActive     bool
	IsAdmin      bool
}

// Filter defines filter options for listing users.
type Filter struct {
	Email    string
	IsActive *bool // nil means "not set"

	Page     int
	PageSize int
}
