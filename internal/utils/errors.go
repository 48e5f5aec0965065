package utils

import "errors"

// Common application errors used across services. Handlers translate these
// into the HTTP error taxonomy; everything else becomes a generic 500.
var (
	ErrInvalidCredentials     = errors.New("invalid credentials")
	ErrInvalidToken           = errors.New("invalid token")
	ErrNotFound               = errors.New("not found")
	ErrDuplicateEmail         = errors.New("email already exists")
	ErrLastAdministrator      = errors.New("cannot delete the last administrator")
	ErrInvalidCurrentPassword = errors.New("current password is incorrect")
	ErrPasswordTooShort       = errors.New("password too short")
	ErrInvalidEmail           = errors.New("invalid email format")
	ErrMissingFields          = errors.New("missing required fields")
	ErrNoFile                 = errors.New("no file provided")
	ErrInvalidFileType        = errors.New("invalid file type")
	ErrFileTooLarge           = errors.New("file too large")
)
