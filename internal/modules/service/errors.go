package service

import "errors"

var (
	// ErrForbidden means the actor is neither the row owner nor an admin.
	ErrForbidden = errors.New("permission denied")

	ErrPasswordMismatch   = errors.New("Passwords do not match.")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidRole        = errors.New("invalid role")
	ErrInvalidCategory    = errors.New("invalid category")
	ErrInvalidRating      = errors.New("rating must be an integer between 1 and 5")
	ErrInvalidReaction    = errors.New("invalid reaction type")
	ErrInvalidStatus      = errors.New("invalid status")
	ErrAlreadyResolved    = errors.New("report already resolved")
)
