package common

import (
	"errors"
	"fmt"
)

/*Error type for an application error */
type Error struct {
	Code string `json:"code,omitempty"`
	Msg  string `json:"msg"`
}

func (err *Error) Error() string {
	return fmt.Sprintf("%s: %s", err.Code, err.Msg)
}

/*NewError - create a new error */
func NewError(code string, msg string) *Error {
	return &Error{Code: code, Msg: msg}
}

/*NewErrorf - create a new formatted error */
func NewErrorf(code string, format string, args ...interface{}) *Error {
	return &Error{Code: code, Msg: fmt.Sprintf(format, args...)}
}

const (
	ErrNoResourceCode = "resource_not_found"
	ErrBadRequestCode = "invalid_request"
	ErrInternalCode   = "internal_error"
)

// NewErrNoResource creates new Error with ErrNoResourceCode.
func NewErrNoResource(msg string) *Error {
	return NewError(ErrNoResourceCode, msg)
}

// NewErrBadRequest creates new Error with ErrBadRequestCode.
func NewErrBadRequest(msg string) *Error {
	return NewError(ErrBadRequestCode, msg)
}

// NewErrInternal creates new Error with ErrInternalCode.
func NewErrInternal(msg string) *Error {
	return NewError(ErrInternalCode, msg)
}

// ErrorCode returns the stable code of an error created by this package,
// or the empty string for any other error. Callers branch on this rather
// than on the message text.
func ErrorCode(err error) string {
	var cerr *Error
	if errors.As(err, &cerr) {
		return cerr.Code
	}
	return ""
}
