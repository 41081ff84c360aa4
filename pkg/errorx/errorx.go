package errorx

import (
	"errors"
	"fmt"
)

// CodeError is an error carrying a business status code.
// It implements the error interface, wraps an underlying cause and is
// recognized by errors.Is/errors.As.
type CodeError struct {
	Code  int    // business status code
	Msg   string // human readable message
	cause error  // wrapped underlying error
}

// Error returns "msg: cause" when a cause is present, otherwise just msg.
func (e *CodeError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.cause)
	}
	return e.Msg
}

// Unwrap exposes the wrapped cause to errors.Is/errors.As.
func (e *CodeError) Unwrap() error {
	return e.cause
}

// New creates a CodeError without a cause.
func New(code int, msg string) *CodeError {
	return &CodeError{
		Code: code,
		Msg:  msg,
	}
}

// Newf creates a CodeError with a formatted message.
func Newf(code int, format string, args ...any) *CodeError {
	return &CodeError{
		Code: code,
		Msg:  fmt.Sprintf(format, args...),
	}
}

// Wrap wraps an underlying error with a business code and message.
func Wrap(err error, code int, msg string) *CodeError {
	return &CodeError{
		Code:  code,
		Msg:   msg,
		cause: err,
	}
}

// Wrapf wraps an underlying error with a formatted message.
func Wrapf(err error, code int, format string, args ...any) *CodeError {
	return &CodeError{
		Code:  code,
		Msg:   fmt.Sprintf(format, args...),
		cause: err,
	}
}

// GetCode extracts the business code from an error chain.
// Non CodeError values map to CodeServerBusy.
func GetCode(err error) int {
	var codeErr *CodeError
	if errors.As(err, &codeErr) {
		return codeErr.Code
	}
	return CodeServerBusy
}

// Business status codes.
const (
	CodeSuccess      = 1000 // ok
	CodeInvalidParam = 1001 // malformed request parameters
	CodeUnauthorized = 1002 // authentication missing or invalid
	CodeNotFound     = 1003 // referenced entity does not exist
	CodeServerBusy   = 1005 // unexpected internal failure
	CodeDBError      = 1010 // database failure
	CodeCacheError   = 1011 // redis failure
	CodeConfigError  = 1020 // missing per-tenant gateway configuration
	CodeGatewayError = 1021 // Evolution API rejected the request
)

// Predefined instances, usable directly or with errors.Is.
var (
	ErrInvalidParam = New(CodeInvalidParam, "parâmetros inválidos")
	ErrServerBusy   = New(CodeServerBusy, "serviço indisponível, tente novamente")
)

// IsNotFound reports whether err is a not-found class error.
func IsNotFound(err error) bool {
	var codeErr *CodeError
	return errors.As(err, &codeErr) && codeErr.Code == CodeNotFound
}

// IsConfigError reports whether err is a tenant configuration error.
func IsConfigError(err error) bool {
	var codeErr *CodeError
	return errors.As(err, &codeErr) && codeErr.Code == CodeConfigError
}
