package model

import "errors"

// Error kinds shared by every stage of a run. Callers wrap them with context
// and classify them with errors.Is.
var (
	ErrUsage            = errors.New("missing input filename")
	ErrIO               = errors.New("i/o failure")
	ErrMalformedRow     = errors.New("malformed row")
	ErrParse            = errors.New("unparseable timestamp")
	ErrInsufficientData = errors.New("not enough data")
)
