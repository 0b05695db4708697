package service

import "errors"

var (
	// ErrValidation is returned by the mutation entry point when the
	// payload does not match the shape its mutation type demands. The
	// intent is never queued.
	ErrValidation = errors.New("mutation failed validation")
)
