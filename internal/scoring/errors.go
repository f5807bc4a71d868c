package scoring

import "errors"

var (
	// ErrInvalidAnswer marks a raw answer value outside the 1-5 range.
	ErrInvalidAnswer = errors.New("invalid answer value")

	// ErrBankIncomplete marks a content bank missing a required entry. This
	// is a packaging defect, not a runtime input condition, and is surfaced
	// at engine construction.
	ErrBankIncomplete = errors.New("content bank incomplete")
)
