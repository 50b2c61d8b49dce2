package utils

import "errors"

var (
	ErrTripNotFound      = errors.New("trip not found")
	ErrStopNotFound      = errors.New("stop not found")
	ErrActivityNotFound  = errors.New("activity not found")
	ErrInvalidInput      = errors.New("invalid input")
	ErrInvalidPage       = errors.New("invalid page parameter")
	ErrInvalidPageSize   = errors.New("invalid page size parameter")
	ErrDatabaseError     = errors.New("database error")
	ErrWriteFailed       = errors.New("write failed")
	ErrInvalidAIResponse = errors.New("invalid ai response")
	ErrUnauthenticated   = errors.New("not authenticated")
	ErrForbidden         = errors.New("forbidden")
)
