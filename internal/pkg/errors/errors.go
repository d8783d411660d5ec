package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
)

const (
	KindBadRequest         = "bad_request"
	KindUnauthorized       = "unauthorized"
	KindNotFound           = "not_found"
	KindConflict           = "conflict"
	KindInternal           = "internal_error"
	KindInvalidInput       = "invalid_input"
	KindOccupancyExceeded  = "occupancy_exceeded"
	KindNoAvailability     = "no_availability"
	KindIllegalTransition  = "illegal_transition"
	KindServiceUnavailable = "service_unavailable"
)

// CustomError carries the HTTP status the transport layer should answer with.
type CustomError struct {
	Code    int
	Kind    string
	Message string
	Details map[string]interface{}
	cause   error
}

func (e *CustomError) Error() string {
	return e.Message
}

func (e *CustomError) Unwrap() error {
	return e.cause
}

func newError(code int, kind, msg string) *CustomError {
	return &CustomError{Code: code, Kind: kind, Message: msg}
}

func BadRequest(msg string) error {
	return newError(http.StatusBadRequest, KindBadRequest, msg)
}

func UnauthorizedError(msg string) error {
	return newError(http.StatusUnauthorized, KindUnauthorized, msg)
}

func NotFound(msg string) error {
	return newError(http.StatusNotFound, KindNotFound, msg)
}

func Conflict(msg string) error {
	return newError(http.StatusConflict, KindConflict, msg)
}

func InternalServerError(msg string) error {
	return newError(http.StatusInternalServerError, KindInternal, msg)
}

// Wrap keeps err reachable through errors.As while answering with a 500.
func Wrap(err error, msg string) error {
	e := newError(http.StatusInternalServerError, KindInternal, msg)
	e.cause = err
	return e
}

func ServiceUnavailable(msg string) error {
	return newError(http.StatusServiceUnavailable, KindServiceUnavailable, msg)
}

// InvalidInput is always the caller's fault and is surfaced verbatim.
func InvalidInput(msg string) error {
	return newError(http.StatusBadRequest, KindInvalidInput, msg)
}

// OccupancyExceeded reports which limit (adults or children) was violated.
func OccupancyExceeded(limit string, max, requested int) error {
	e := newError(http.StatusUnprocessableEntity, KindOccupancyExceeded,
		fmt.Sprintf("%s limit exceeded: maximum %d, requested %d", limit, max, requested))
	e.Details = map[string]interface{}{
		"limit":     limit,
		"max":       max,
		"requested": requested,
	}
	return e
}

func NoAvailability(msg string) error {
	return newError(http.StatusConflict, KindNoAvailability, msg)
}

func IllegalTransition(from, to string) error {
	e := newError(http.StatusConflict, KindIllegalTransition,
		fmt.Sprintf("illegal status transition from %s to %s", from, to))
	e.Details = map[string]interface{}{
		"from": from,
		"to":   to,
	}
	return e
}

// As unwraps err into a *CustomError when possible.
func As(err error) (*CustomError, bool) {
	var ce *CustomError
	if stderrors.As(err, &ce) {
		return ce, true
	}
	return nil, false
}

func IsKind(err error, kind string) bool {
	ce, ok := As(err)
	return ok && ce.Kind == kind
}
