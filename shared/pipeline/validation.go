package pipeline

import (
	"context"

	"boxes/shared/validator"
)

// Validation evaluates every rule declared on the request type before the
// handler runs. All failures are aggregated into one validation error and
// the downstream stages never run. Requests declaring no rules pass through
// unchanged.
func Validation[Req, Res any]() Behavior[Req, Res] {
	return func(next Handler[Req, Res]) Handler[Req, Res] {
		return func(ctx context.Context, req Req) (Res, error) {
			if err := validator.ValidateStruct(&req); err != nil {
				var zero Res

				return zero, err
			}

			return next(ctx, req)
		}
	}
}
