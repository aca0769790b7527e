// Package showenum maps generation failures onto stable error codes and
// process exit statuses for the showenum command.
package showenum

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/broady/showenum/enumgen/ir"
	"github.com/broady/showenum/enumgen/parser"
	"github.com/broady/showenum/internal/source"
)

// ErrorCode represents a machine-readable error code.
type ErrorCode string

const (
	CodeMalformedDeclaration    ErrorCode = "malformed_declaration"
	CodeVariantCapacityExceeded ErrorCode = "variant_capacity_exceeded"
	CodeEmptyDisplayName        ErrorCode = "empty_display_name"
	CodeInvalidArgument         ErrorCode = "invalid_argument"
	CodeNotFound                ErrorCode = "not_found"
	CodeCanceled                ErrorCode = "canceled"
	CodeInternal                ErrorCode = "internal"
)

// Error is the error envelope reported to users.
type Error struct {
	Code    ErrorCode      `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewError creates a new Error.
func NewError(code ErrorCode, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// Errorf creates a new Error with a formatted message.
func Errorf(code ErrorCode, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// WithDetail returns a new Error with the key-value pair added to details.
func (e *Error) WithDetail(key string, value any) *Error {
	details := make(map[string]any, len(e.Details)+1)
	for k, v := range e.Details {
		details[k] = v
	}
	details[key] = value
	return &Error{
		Code:    e.Code,
		Message: e.Message,
		Details: details,
	}
}

// DefaultErrorTransformer maps errors returned by the generation pipeline
// to an Error. It returns nil for a nil error.
func DefaultErrorTransformer(err error) *Error {
	if err == nil {
		return nil
	}

	var envErr *Error
	if errors.As(err, &envErr) {
		return envErr
	}

	var malformed *parser.MalformedDeclarationError
	if errors.As(err, &malformed) {
		return NewError(CodeMalformedDeclaration, err.Error()).
			WithDetail("expected", malformed.Expected).
			WithDetail("line", malformed.Pos.Line).
			WithDetail("column", malformed.Pos.Column)
	}

	var capErr *parser.CapacityError
	if errors.As(err, &capErr) {
		return NewError(CodeVariantCapacityExceeded, err.Error()).
			WithDetail("limit", capErr.Limit)
	}

	if errors.Is(err, ir.ErrEmptyDisplayName) {
		return NewError(CodeEmptyDisplayName, err.Error())
	}

	var valErrs validator.ValidationErrors
	if errors.As(err, &valErrs) {
		details := make(map[string]any, len(valErrs))
		messages := make([]string, 0, len(valErrs))
		for _, ve := range valErrs {
			msg := formatValidationError(ve)
			details[ve.Field()] = msg
			messages = append(messages, ve.Field()+": "+msg)
		}
		return &Error{
			Code:    CodeInvalidArgument,
			Message: strings.Join(messages, "; "),
			Details: details,
		}
	}

	if errors.Is(err, source.ErrInvalidRange) {
		return NewError(CodeInvalidArgument, err.Error())
	}

	if errors.Is(err, fs.ErrNotExist) {
		return NewError(CodeNotFound, err.Error())
	}

	if errors.Is(err, context.Canceled) {
		return NewError(CodeCanceled, err.Error())
	}

	// errors.Join: classify by the first error, keep every message.
	if u, ok := err.(interface{ Unwrap() []error }); ok {
		if errs := u.Unwrap(); len(errs) > 0 {
			first := DefaultErrorTransformer(errs[0])
			msgs := make([]string, len(errs))
			for i, e := range errs {
				msgs[i] = e.Error()
			}
			return &Error{
				Code:    first.Code,
				Message: strings.Join(msgs, "; "),
				Details: first.Details,
			}
		}
	}

	return NewError(CodeInternal, err.Error())
}

// ExitCode maps an ErrorCode to a process exit status.
// Bad invocations exit with 2, every other failure with 1.
func (c ErrorCode) ExitCode() int {
	switch c {
	case CodeInvalidArgument:
		return 2
	default:
		return 1
	}
}

// formatValidationError converts a validator.FieldError to a human-readable message.
func formatValidationError(ve validator.FieldError) string {
	switch ve.Tag() {
	case "required":
		return "required"
	case "gte":
		return fmt.Sprintf("must be at least %s", ve.Param())
	case "lte":
		return fmt.Sprintf("must be at most %s", ve.Param())
	case "gtefield":
		return fmt.Sprintf("must not be less than %s", ve.Param())
	case "cprefix":
		return "must contain only letters, digits and underscores, and not start with a digit"
	default:
		if ve.Param() != "" {
			return fmt.Sprintf("failed %s=%s validation", ve.Tag(), ve.Param())
		}
		return fmt.Sprintf("failed %s validation", ve.Tag())
	}
}
