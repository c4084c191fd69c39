package repository

import "errors"

var (
	ErrFailedToSave = errors.New("failed to save session")
	ErrInvalidID    = errors.New("session id is required")
)
