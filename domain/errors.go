package domain

import "errors"

var (
	ErrUserNotFound        = errors.New("user not found")
	ErrUsernameTaken       = errors.New("username already exists")
	ErrTripNotFound        = errors.New("trip not found")
	ErrDestinationNotFound = errors.New("destination not found")
)
