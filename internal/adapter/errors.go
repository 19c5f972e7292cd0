package adapter

import "errors"

// Sentinel errors mapped from HTTP status codes by mapHTTPError so callers
// can use errors.Is for transport-agnostic error handling.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrBadGateway          = errors.New("bad gateway")
	ErrInternalServerError = errors.New("internal server error")
)
