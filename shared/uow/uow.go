package uow

//go:generate go run go.uber.org/mock/mockgen -source=./uow.go -destination=./mocks/uow_mock.go -package=mocks

import (
	"context"
	"sync"

	"boxes/infras/otel"
	"boxes/shared/constant"
)

// UnitOfWork marks the boundary of a single logical commit so handlers never
// assume the storage underneath writes synchronously. Close must release any
// underlying resource deterministically and be safe to call more than once.
type UnitOfWork interface {
	Commit(ctx context.Context) (int, error)
	Close() error
}

type inMemory struct {
	otel  otel.Otel
	close sync.Once
}

// NewInMemory returns the no-op unit of work for the in-memory store, which
// already committed by the time Commit is called.
func NewInMemory(ot otel.Otel) UnitOfWork {
	return &inMemory{
		otel: ot,
	}
}

// Commit implements UnitOfWork.
func (u *inMemory) Commit(ctx context.Context) (int, error) {
	_, scope := u.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".uow.Commit")
	defer scope.End()

	return 1, nil
}

// Close implements UnitOfWork.
func (u *inMemory) Close() error {
	u.close.Do(func() {})

	return nil
}
