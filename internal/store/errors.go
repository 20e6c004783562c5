package store

import "errors"

var (
	// ErrDeckNotFound is returned when the referenced deck does not exist
	// for the given user.
	ErrDeckNotFound = errors.New("deck not found")

	// ErrFavoriteNotFound is returned when removing a favorite that is not
	// saved for the given user.
	ErrFavoriteNotFound = errors.New("favorite not found")

	// ErrUserNotFound is returned when no account exists for the lookup.
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailTaken is returned when signing up with an email that already
	// has an account.
	ErrEmailTaken = errors.New("email already registered")
)
