package segment

import "errors"

var (
	// ErrIndexOutOfRange is returned for any per-segment operation whose
	// index falls outside [0, Len()).
	ErrIndexOutOfRange = errors.New("segment index out of range")

	// ErrInvalidArgument is returned for a negative segment count or a nil image.
	ErrInvalidArgument = errors.New("invalid argument")
)
