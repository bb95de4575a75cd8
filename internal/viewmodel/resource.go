// Package viewmodel holds per-client observable state built on top of the usecases.
// A view-model reloads its collections whenever the local cache reports a write to
// a table it depends on, so every subscriber sees the cached data as it changes.
package viewmodel

import (
	domainerrors "smokebreak/internal/domain/errors"
	"smokebreak/internal/errors"
)

// Status is the state of a Resource.
type Status string

const (
	StatusSuccess Status = "success"
	StatusError   Status = "error"
	StatusLoading Status = "loading"
)

const unknownError = "Unknown error"

// Resource is the outcome of a view-model operation.
type Resource[T any] struct {
	Status  Status `json:"status"`
	Data    T      `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
}

// Success wraps data from a completed operation.
func Success[T any](data T) Resource[T] {
	return Resource[T]{Status: StatusSuccess, Data: data}
}

// Failure turns err into an error resource carrying its display message.
func Failure[T any](err error) Resource[T] {
	return Resource[T]{Status: StatusError, Message: ErrorMessage(err)}
}

// Loading marks an operation in flight, optionally with stale data.
func Loading[T any](data T) Resource[T] {
	return Resource[T]{Status: StatusLoading, Data: data}
}

func (r Resource[T]) IsSuccess() bool { return r.Status == StatusSuccess }
func (r Resource[T]) IsError() bool   { return r.Status == StatusError }
func (r Resource[T]) IsLoading() bool { return r.Status == StatusLoading }

// ErrorMessage is the text shown to a user for err: the AppError message when
// there is one, the error text otherwise.
func ErrorMessage(err error) string {
	if err == nil {
		return ""
	}
	if appErr, ok := errors.AsType[domainerrors.AppError](err); ok {
		return appErr.Message()
	}
	if msg := err.Error(); msg != "" {
		return msg
	}

	return unknownError
}
