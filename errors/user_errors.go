package errors

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrUserConflict       = errors.New("user already exists")
	ErrInvalidUserData    = errors.New("invalid user data")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
)
