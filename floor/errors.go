package floor

import "errors"

// Error kinds surfaced by the engine. Every rejected operation leaves the
// state exactly as it was; callers can match these with errors.Is.
var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrNotFound          = errors.New("not found")
	ErrCapacityExceeded  = errors.New("capacity exceeded")
	ErrInvalidTransition = errors.New("invalid transition")
)
