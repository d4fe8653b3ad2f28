package services

import (
	"errors"
	"fmt"
)

// ErrValidation marks caller mistakes that are surfaced as-is, never
// silently repaired. Capability outages (embedding, classifier) are not
// errors at this level: they degrade locally to documented fallback paths.
var ErrValidation = errors.New("validation failed")

var (
	ErrMismatchedPairs = fmt.Errorf("%w: question and answer counts differ", ErrValidation)
	ErrResumeTooShort  = fmt.Errorf("%w: resume text is empty or too short", ErrValidation)
)
