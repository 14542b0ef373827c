package loader

import "errors"

var (
	ErrUnknownCity      = errors.New("unknown city")
	ErrOpeningData      = errors.New("error opening trip data")
	ErrParsingData      = errors.New("error parsing trip data")
	ErrMissingColumn    = errors.New("missing column")
	ErrInvalidStartTime = errors.New("invalid start time")
	ErrInvalidFilter    = errors.New("invalid filter")
)
