package validator

import (
	"errors"
	"strings"

	val "github.com/go-playground/validator/v10"
)

var (
	templates = map[string]string{
		"required": "{field} is required",
		"gt":       "{field} must be greater than {param}",
		"gte":      "{field} must be greater than or equal to {param}",
		"lte":      "{field} must be less than or equal to {param}",
		"oneof":    "{field} must be one of {param}",
		"max":      "{field} must be less than or equal to {param} characters",
		"min":      "{field} must be greater than or equal to {param}",
		"email":    "{field} must be a valid email address",
		"future":   "{field} must be a future date",
	}
)

// messages renders every violation into a human-readable message, grouped by
// the json field path relative to the request root. A field may accumulate
// more than one message.
func messages(err error) map[string][]string {
	var valErrors val.ValidationErrors

	if !errors.As(err, &valErrors) {
		return nil
	}

	fields := map[string][]string{}

	for _, valErr := range valErrors {
		field := fieldPath(valErr)

		msg := templates[valErr.Tag()]
		if msg == "" {
			msg = "{field} is invalid"
		}

		msg = strings.ReplaceAll(msg, "{field}", field)
		msg = strings.ReplaceAll(msg, "{param}", valErr.Param())

		fields[field] = append(fields[field], msg)
	}

	return fields
}

// fieldPath strips the root struct segment from the namespace, leaving the
// dotted json path ("contact.email").
func fieldPath(valErr val.FieldError) string {
	namespace := valErr.Namespace()

	if idx := strings.Index(namespace, "."); idx >= 0 {
		return namespace[idx+1:]
	}

	return namespace
}
