package apierr

import (
	"errors"
	"fmt"
)

// Sentinels for the failure modes the pipelines can surface. Handlers map
// these onto HTTP status codes; services wrap them with context via %w.
var (
	ErrUnauthorized     = errors.New("unauthorized")
	ErrNotFound         = errors.New("not found")
	ErrValidation       = errors.New("validation failed")
	ErrGenerationParse  = errors.New("could not parse generated content")
	ErrAlreadyFinalized = errors.New("plan already finalized")
	ErrNoContent        = errors.New("plan has no generated content")
	ErrExternalService  = errors.New("text generation service failed")
)

type Error struct {
	Status int
	Code   string
	Err    error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	if e.Code != "" {
		return e.Code
	}
	if e.Status != 0 {
		return fmt.Sprintf("api error (%d)", e.Status)
	}
	return "api error"
}

func (e *Error) Unwrap() error { return e.Err }

func New(status int, code string, err error) *Error {
	return &Error{Status: status, Code: code, Err: err}
}
