// Package errors defines dashboard typed application errors.
package errors

import (
	stderrors "errors"
	"net/http"

	"github.com/louisbranch/poolview/internal/chart"
	"github.com/louisbranch/poolview/internal/dataset"
	"github.com/louisbranch/poolview/internal/filter"
)

// Kind classifies application failures for consistent HTTP mapping.
type Kind string

const (
	KindUnknown      Kind = "unknown"
	KindInvalidInput Kind = "invalid_input"
	KindNotFound     Kind = "not_found"
	KindUnavailable  Kind = "unavailable"
)

// Error is a typed dashboard failure.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e Error) Error() string {
	switch {
	case e.Message != "" && e.Err != nil:
		return e.Message + ": " + e.Err.Error()
	case e.Message != "":
		return e.Message
	case e.Err != nil:
		return e.Err.Error()
	default:
		return string(e.Kind)
	}
}

// Unwrap exposes the wrapped cause.
func (e Error) Unwrap() error { return e.Err }

// E builds a typed Error.
func E(kind Kind, message string) error {
	return Error{Kind: kind, Message: message}
}

// Wrap classifies err under kind.
func Wrap(kind Kind, message string, err error) error {
	if err == nil {
		return nil
	}
	return Error{Kind: kind, Message: message, Err: err}
}

// KindOf resolves the failure kind for err, classifying domain sentinels
// that were not wrapped explicitly.
func KindOf(err error) Kind {
	if err == nil {
		return ""
	}
	var appErr Error
	if stderrors.As(err, &appErr) && appErr.Kind != "" && appErr.Kind != KindUnknown {
		return appErr.Kind
	}
	var binding *chart.BindingError
	switch {
	case stderrors.Is(err, dataset.ErrUnknownDataset):
		return KindNotFound
	case stderrors.Is(err, filter.ErrUnknownDimension), stderrors.As(err, &binding):
		return KindInvalidInput
	default:
		return KindUnknown
	}
}

// HTTPStatus maps an error to an HTTP status code.
func HTTPStatus(err error) int {
	if err == nil {
		return http.StatusOK
	}
	switch KindOf(err) {
	case KindInvalidInput:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
