package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"

	"github.com/rs/zerolog/log"

	"boxes/infras/otel"
	"boxes/internal/domains/workshop/model"
	"boxes/internal/domains/workshop/provider"
	"boxes/shared/constant"
)

// Workshop looks up bookable workshops at the external provider.
type Workshop interface {
	ListActive(ctx context.Context) ([]model.Workshop, error)
	GetByID(ctx context.Context, placeID int) (model.Workshop, bool, error)
}

type serviceImpl struct {
	provider provider.Fetcher
	otel     otel.Otel
}

func New(fetcher provider.Fetcher, ot otel.Otel) Workshop {
	return &serviceImpl{
		provider: fetcher,
		otel:     ot,
	}
}

// ListActive fetches the provider's workshop list and maps it down to the
// internal shape.
func (s *serviceImpl) ListActive(ctx context.Context) (workshops []model.Workshop, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".workshop.ListActive")
	defer scope.End()
	defer scope.TraceIfError(err)

	records, err := s.provider.FetchWorkshops(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to fetch workshops from provider")

		return nil, err //nolint:wrapcheck
	}

	workshops = make([]model.Workshop, len(records))
	for i, record := range records {
		workshops[i] = mapRecord(record)
	}

	return workshops, nil
}

// GetByID scans the active list for the first match.
func (s *serviceImpl) GetByID(ctx context.Context, placeID int) (model.Workshop, bool, error) {
	workshops, err := s.ListActive(ctx)
	if err != nil {
		return model.Workshop{}, false, err
	}

	for _, workshop := range workshops {
		if workshop.ID == placeID {
			return workshop, true, nil
		}
	}

	return model.Workshop{}, false, nil
}

func mapRecord(record provider.WorkshopRecord) model.Workshop {
	workshop := model.Workshop{
		ID:     record.ID,
		Name:   record.Name,
		Active: record.Active,
	}

	if !record.Address.Empty() {
		formatted := record.Address.Formatted()
		workshop.Address = &formatted
	}

	return workshop
}
