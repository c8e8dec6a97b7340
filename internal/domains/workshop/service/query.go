package service

import (
	"context"

	"github.com/rs/zerolog/log"

	"boxes/infras/otel"
	"boxes/internal/domains/workshop/model/dto"
	"boxes/shared/cache"
	"boxes/shared/constant"
	"boxes/shared/pipeline"
)

// Query is the workshop read use case exposed to the HTTP surface.
type Query interface {
	GetAll(ctx context.Context) ([]dto.WorkshopResponse, error)
}

type queryImpl struct {
	workshops Cached
	otel      otel.Otel
	list      pipeline.Handler[dto.ListWorkshopsQuery, []dto.WorkshopResponse]
}

func NewQuery(workshops Cached, store cache.Cache, ot otel.Otel) Query {
	query := &queryImpl{
		workshops: workshops,
		otel:      ot,
	}
	query.list = pipeline.Default(query.listWorkshops, store)

	return query
}

func (q *queryImpl) GetAll(ctx context.Context) ([]dto.WorkshopResponse, error) {
	return q.list(ctx, dto.ListWorkshopsQuery{})
}

func (q *queryImpl) listWorkshops(ctx context.Context, _ dto.ListWorkshopsQuery) (res []dto.WorkshopResponse, err error) {
	ctx, scope := q.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".workshop.GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	workshops, err := q.workshops.ListActive(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to list workshops")

		return nil, err //nolint:wrapcheck
	}

	res = make([]dto.WorkshopResponse, len(workshops))
	for i, workshop := range workshops {
		res[i].FromModel(workshop)
	}

	return res, nil
}
