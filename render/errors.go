package render

import "errors"

var (
	ErrInvalidSize   = errors.New("image width and height must be greater than 0")
	ErrUnknownFormat = errors.New("unknown image format")
	ErrInvalidScale  = errors.New("scale factor must be at least 1")
)
