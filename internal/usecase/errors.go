package usecase

import "errors"

var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrNotFound              = errors.New("resource not found")
	ErrUnauthorized          = errors.New("unauthorized")
	ErrStore                 = errors.New("data store request failed")
	ErrCompression           = errors.New("image compression failed")
	ErrUpload                = errors.New("image upload failed")
	ErrDependencyUnavailable = errors.New("dependency unavailable")
)
