package service

import "errors"

var (
	// ErrEmptyMessage rejects a chat message that trims to nothing.
	ErrEmptyMessage = errors.New("message is empty")

	// ErrNotFound signals a referenced title does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidMinutes rejects a negative watch-time report.
	ErrInvalidMinutes = errors.New("minutes must not be negative")
)
