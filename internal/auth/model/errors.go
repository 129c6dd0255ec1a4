package model

import "errors"

var (
	// ErrUserNotFound indicates that no account exists for the email.
	ErrUserNotFound = errors.New("user not found")
	// ErrUserExists indicates the email is already registered.
	ErrUserExists = errors.New("user already exists")
	// ErrInvalidCredentials indicates a wrong email/password pair.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrInvalidEmail indicates a malformed email address.
	ErrInvalidEmail = errors.New("invalid email address")
	// ErrWeakPassword indicates a password below the minimum length.
	ErrWeakPassword = errors.New("password too short")
	// ErrInvalidToken indicates a missing, malformed or expired token.
	ErrInvalidToken = errors.New("invalid token")
)
