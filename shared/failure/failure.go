package failure

import (
	"errors"
	"net/http"
	"sort"
	"strings"
)

// Failure is a wrapper for error messages and codes using standard HTTP response codes.
// Validation failures additionally carry the offending field paths so the
// transport layer can return a structured response.
type Failure struct {
	Code    int                 `json:"code"`
	Message string              `json:"message"`
	Fields  map[string][]string `json:"fields,omitempty"`
}

// ExternalLookupError hides transport details of the workshop provider from callers.
var ExternalLookupError = &Failure{Code: http.StatusBadGateway, Message: "external lookup failed"}

// Error returns the failure message, with field violations appended when present.
func (e *Failure) Error() string {
	if len(e.Fields) == 0 {
		return e.Message
	}

	fields := make([]string, 0, len(e.Fields))
	for field := range e.Fields {
		fields = append(fields, field)
	}

	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, field+": "+strings.Join(e.Fields[field], "; "))
	}

	return e.Message + ": " + strings.Join(parts, ", ")
}

// BadRequest returns a new Failure with code for bad requests.
func BadRequest(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		}
	}

	return nil
}

// BadRequestFromString returns a new Failure with code for bad requests with message set from string.
func BadRequestFromString(msg string) error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Message: msg,
	}
}

// Validation returns a new Failure carrying one or more rule violations grouped
// by the field path they apply to.
func Validation(fields map[string][]string) error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Message: "validation failed",
		Fields:  fields,
	}
}

// InvalidField returns a validation Failure for a single field violation.
func InvalidField(field, msg string) error {
	return Validation(map[string][]string{field: {msg}})
}

// InternalError returns a new Failure with code for internal error and message derived from an error interface.
func InternalError(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusInternalServerError,
			Message: err.Error(),
		}
	}

	return nil
}

// NotFound returns a new Failure with code for entity not found.
func NotFound(entityName string) error {
	return &Failure{
		Code:    http.StatusNotFound,
		Message: entityName,
	}
}

// Conflict returns a new Failure with code for conflict situations.
func Conflict(message string) error {
	return &Failure{
		Code:    http.StatusConflict,
		Message: message,
	}
}

// GetCode returns the error code of an error interface.
func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return http.StatusInternalServerError
}

// GetFields returns the field violations of an error interface, if any.
func GetFields(err error) map[string][]string {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Fields
	}

	return nil
}

// IsExpected reports whether the error is a Failure the caller can act on,
// as opposed to an unexpected internal error.
func IsExpected(err error) bool {
	var fail *Failure

	return errors.As(err, &fail)
}
