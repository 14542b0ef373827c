package reporters

import "errors"

var (
	ErrEmptyDataset  = errors.New("there are no trips for the selected filters")
	ErrMissingColumn = errors.New("missing column")
	ErrInvalidValue  = errors.New("invalid value")
)
