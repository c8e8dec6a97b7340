package validator

import (
	"encoding/json"
	"fmt"
	"io"
	"reflect"
	"strings"
	"time"

	val "github.com/go-playground/validator/v10"

	"boxes/shared/failure"
)

var validate *val.Validate

func registerFutureValidation(field val.FieldLevel) bool {
	t, ok := field.Field().Interface().(time.Time)
	if !ok {
		return false
	}

	return t.After(time.Now().UTC())
}

func init() {
	validate = val.New(val.WithRequiredStructEnabled())

	// Report violations under the json field path the caller actually sent.
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}

		return name
	})

	err := validate.RegisterValidation("future", registerFutureValidation)
	if err != nil {
		panic(err)
	}
}

// Validate reads from the given io.Reader into the given struct, and then performs validation
// on the struct using the validator package. If the struct is invalid according to the
// validation rules, an error is returned. Otherwise, nil is returned.
// https://github.com/go-playground/validator
func Validate[T any](r io.Reader, data *T) error {
	decoder := json.NewDecoder(r)
	err := decoder.Decode(data)

	if err != nil {
		return failure.BadRequest(fmt.Errorf("failed to decode request body: %w", err)) //nolint:wrapcheck
	}

	return ValidateStruct(data)
}

// Decode reads from the given io.Reader into the given struct without running
// any rules. Use it when validation happens later in the request pipeline.
func Decode[T any](r io.Reader, data *T) error {
	if err := json.NewDecoder(r).Decode(data); err != nil {
		return failure.BadRequest(fmt.Errorf("failed to decode request body: %w", err)) //nolint:wrapcheck
	}

	return nil
}

// ValidateStruct evaluates every rule declared on the struct and aggregates
// all violations, grouped by field path, into a single validation failure.
func ValidateStruct[T any](data *T) error {
	err := validate.Struct(data)

	if err != nil {
		fields := messages(err)
		if len(fields) == 0 {
			return failure.BadRequestFromString(err.Error()) //nolint:wrapcheck
		}

		return failure.Validation(fields) //nolint:wrapcheck
	}

	return nil
}
