package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"boxes/infras/otel"
	"boxes/internal/domains/appointment/model"
	"boxes/internal/domains/appointment/model/dto"
	"boxes/internal/domains/appointment/repository"
	wsService "boxes/internal/domains/workshop/service"
	"boxes/shared/cache"
	"boxes/shared/constant"
	"boxes/shared/failure"
	"boxes/shared/pipeline"
	gRepo "boxes/shared/repository"
	"boxes/shared/uow"
)

// Appointment is the booking use case surface. Every invocation runs through
// the request pipeline: validation first, then caching, then the handler.
type Appointment interface {
	Create(ctx context.Context, req dto.CreateAppointmentRequest) (int, error)
	GetAll(ctx context.Context) ([]dto.AppointmentResponse, error)
}

type serviceImpl struct {
	repo      repository.Appointment
	workshops wsService.Cached
	unit      uow.UnitOfWork
	otel      otel.Otel

	create pipeline.Handler[dto.CreateAppointmentRequest, int]
	list   pipeline.Handler[dto.ListAppointmentsQuery, []dto.AppointmentResponse]
}

func New(repo repository.Appointment, workshops wsService.Cached, unit uow.UnitOfWork, store cache.Cache, ot otel.Otel) Appointment {
	s := &serviceImpl{
		repo:      repo,
		workshops: workshops,
		unit:      unit,
		otel:      ot,
	}
	s.create = pipeline.Default(s.createAppointment, store)
	s.list = pipeline.Default(s.listAppointments, store)

	return s
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateAppointmentRequest) (int, error) {
	return s.create(ctx, req)
}

func (s *serviceImpl) GetAll(ctx context.Context) ([]dto.AppointmentResponse, error) {
	return s.list(ctx, dto.ListAppointmentsQuery{})
}

func (s *serviceImpl) createAppointment(ctx context.Context, req dto.CreateAppointmentRequest) (id int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".appointment.Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	workshop, found, err := s.workshops.GetByID(ctx, req.PlaceID)
	if err != nil {
		log.Error().Err(err).Int("placeId", req.PlaceID).Msg("failed to look up workshop")

		return 0, err //nolint:wrapcheck
	}

	if !found || !workshop.Active {
		log.Warn().Int("placeId", req.PlaceID).Msg("workshop missing or inactive")

		return 0, failure.BadRequestFromString(fmt.Sprintf("workshop with placeId %d does not exist or is not active", req.PlaceID)) //nolint:wrapcheck
	}

	appointment, err := req.ToModel()
	if err != nil {
		log.Error().Err(err).Msg("failed to construct appointment")

		return 0, err //nolint:wrapcheck
	}

	stored, err := s.repo.Add(ctx, appointment)
	if err != nil {
		log.Error().Err(err).Msg("failed to store appointment")

		return 0, fmt.Errorf("failed to store appointment: %w", err)
	}

	if _, err = s.unit.Commit(ctx); err != nil {
		log.Error().Err(err).Msg("failed to commit appointment")

		return 0, fmt.Errorf("failed to commit appointment: %w", err)
	}

	scope.SetAttribute("appointment.id", stored.GetID())

	return stored.GetID(), nil
}

func (s *serviceImpl) listAppointments(ctx context.Context, _ dto.ListAppointmentsQuery) (res []dto.AppointmentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".appointment.GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	appointments, err := s.repo.List(ctx, gRepo.ListQuery[*model.Appointment]{})
	if err != nil {
		log.Error().Err(err).Msg("failed to list appointments")

		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}

	res = make([]dto.AppointmentResponse, len(appointments))
	for i, appointment := range appointments {
		res[i].FromModel(appointment)
	}

	return res, nil
}
