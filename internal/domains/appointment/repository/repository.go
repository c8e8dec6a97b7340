package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"boxes/infras/otel"
	"boxes/internal/domains/appointment/model"
	gRepo "boxes/shared/repository"
)

type Appointment interface {
	Add(ctx context.Context, appointment *model.Appointment) (*model.Appointment, error)
	Find(ctx context.Context, id int) (*model.Appointment, bool, error)
	List(ctx context.Context, query gRepo.ListQuery[*model.Appointment]) ([]*model.Appointment, error)
	Exist(ctx context.Context, predicate func(*model.Appointment) bool) (bool, error)
}

type repositoryImpl struct {
	*gRepo.InMemory[*model.Appointment]
}

func New(ot otel.Otel) Appointment {
	return &repositoryImpl{
		InMemory: gRepo.NewInMemory[*model.Appointment](model.EntityName, ot),
	}
}
