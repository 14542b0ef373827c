package prompt

import "errors"

var (
	ErrInputClosed  = errors.New("input closed")
	ErrReadingInput = errors.New("error reading input")
)
