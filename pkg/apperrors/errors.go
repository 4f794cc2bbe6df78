// Package apperrors carries typed errors from the domain to the HTTP error
// handler, which turns them into an error page or a JSON body.
package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// AppError is an error with a stable code and the HTTP status it maps to.
type AppError struct {
	Code       string       `json:"code"`
	Message    string       `json:"message"`
	Fields     []FieldError `json:"fields,omitempty"`
	HTTPStatus int          `json:"-"`
	Err        error        `json:"-"`
}

// FieldError is a validation message bound to one form field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return e.Message + ": " + e.Err.Error()
}

func (e *AppError) Unwrap() error { return e.Err }

func wrap(status int, code, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: status, Err: err}
}

func NewBadRequest(code, message string) *AppError {
	return wrap(http.StatusBadRequest, code, message, nil)
}

func NewNotFound(code, message string) *AppError {
	return wrap(http.StatusNotFound, code, message, nil)
}

func NewTooManyRequests(code, message string) *AppError {
	return wrap(http.StatusTooManyRequests, code, message, nil)
}

func NewInternal(code, message string, err error) *AppError {
	return wrap(http.StatusInternalServerError, code, message, err)
}

// NewContentLoad reports a content record that is missing or malformed.
func NewContentLoad(page string, err error) *AppError {
	return wrap(http.StatusInternalServerError, ErrCodeContentLoad,
		fmt.Sprintf("content %q could not be loaded", page), err)
}

// NewContentShape reports a builder that met a record without a required key.
func NewContentShape(component, field string) *AppError {
	return wrap(http.StatusInternalServerError, ErrCodeContentShape,
		fmt.Sprintf("%s: required field %q is missing", component, field), nil)
}

// NewValidation lists every form field that failed its checks, in form order.
func NewValidation(fields ...FieldError) *AppError {
	var names []string
	for _, f := range fields {
		names = append(names, f.Field)
	}
	e := wrap(http.StatusBadRequest, ErrCodeValidationFailed,
		"validation failed: "+strings.Join(names, ", "), nil)
	e.Fields = fields
	return e
}

// NewDelivery wraps a notification gateway failure.
func NewDelivery(provider string, err error) *AppError {
	return wrap(http.StatusBadGateway, ErrCodeEmailSendFailed, provider+" delivery failed", err)
}

// AsAppError finds the first AppError in err's chain.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	ok := errors.As(err, &appErr)
	return appErr, ok
}

// HasCode reports whether err is an AppError with the given code.
func HasCode(err error, code string) bool {
	appErr, ok := AsAppError(err)
	return ok && appErr.Code == code
}
