package pipeline

import (
	"context"

	"boxes/shared/cache"
)

// Handler is one use-case invocation: a request in, a result out.
type Handler[Req, Res any] func(ctx context.Context, req Req) (Res, error)

// Behavior is a cross-cutting stage wrapped around a handler. Behaviors must
// not assume anything about the handler that follows and must propagate its
// errors unchanged.
type Behavior[Req, Res any] func(next Handler[Req, Res]) Handler[Req, Res]

// Chain composes behaviors around a handler. The first behavior is the
// outermost stage.
func Chain[Req, Res any](handler Handler[Req, Res], behaviors ...Behavior[Req, Res]) Handler[Req, Res] {
	wrapped := handler

	for i := len(behaviors) - 1; i >= 0; i-- {
		wrapped = behaviors[i](wrapped)
	}

	return wrapped
}

// Default composes the standard stage order around a handler. The order is a
// hard contract: unhandled-error logging outermost, then validation, then
// caching, then the handler itself.
func Default[Req, Res any](handler Handler[Req, Res], store cache.Cache) Handler[Req, Res] {
	return Chain(handler,
		Logging[Req, Res](),
		Validation[Req, Res](),
		Caching[Req, Res](store),
	)
}
