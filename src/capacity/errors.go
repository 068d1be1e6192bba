package capacity

import "errors"

var (
	// ErrUnknownLevel is returned when a level is not one of L, M, Q or H.
	ErrUnknownLevel = errors.New("unknown error-correction level")

	// ErrVersionOutOfRange is returned for versions outside [MinVersion, MaxVersion].
	ErrVersionOutOfRange = errors.New("symbol version out of range")

	// ErrCapacityExceeded is returned when the payload does not fit even in
	// the largest symbol version.
	ErrCapacityExceeded = errors.New("payload exceeds maximum symbol capacity")
)
