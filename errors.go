package adaptivebg

import "errors"

var (
	// ErrCapabilityMissing is returned when no PNG encoder is available.
	ErrCapabilityMissing = errors.New("png encoder unavailable")
	// ErrInvalidSize is returned when the edge length is not in [1, MaxSize].
	ErrInvalidSize       = errors.New("invalid size")
)
