package pipeline

import (
	"context"

	"github.com/rs/zerolog/log"

	"boxes/shared/failure"
	"boxes/shared/logger"
)

// Logging is the outermost stage. Expected failures pass through quietly;
// anything else is logged with full context and returned unchanged for the
// transport layer to map.
func Logging[Req, Res any]() Behavior[Req, Res] {
	return func(next Handler[Req, Res]) Handler[Req, Res] {
		return func(ctx context.Context, req Req) (Res, error) {
			res, err := next(ctx, req)

			if err != nil && !failure.IsExpected(err) {
				log.Error().Err(err).Type("request", req).Msg("unhandled error in request pipeline")
				logger.ErrorWithStack(err)
			}

			return res, err
		}
	}
}
