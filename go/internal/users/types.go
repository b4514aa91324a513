package users

import "errors"

var (
	// ErrUsernameTaken is returned when registering a username that already exists.
	ErrUsernameTaken = errors.New("username already taken")

	// ErrInvalidCredentials is returned when a login attempt does not match a stored user.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrMissingFields is returned when username or password is empty.
	ErrMissingFields = errors.New("username and password are required")

	// ErrUserNotFound is returned by the repository when no row matches.
	ErrUserNotFound = errors.New("user not found")
)

// CreateUserParams carries the fields needed to persist a new user.
type CreateUserParams struct {
	Username     string
	PasswordHash string
}
