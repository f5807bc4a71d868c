package sessions

import "errors"

var (
	ErrNotFound     = errors.New("session not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrCompleted    = errors.New("session already completed")
)
