package service

import (
	"context"
	"fmt"
	"reserva/config"
	"reserva/infras/otel"
	resourceModel "reserva/internal/domains/resource/model"
	resourceRepo "reserva/internal/domains/resource/repository"
	"reserva/internal/domains/tariff/model"
	"reserva/internal/domains/tariff/model/dto"
	"reserva/internal/domains/tariff/repository"
	"reserva/shared/constant"
	gDto "reserva/shared/dto"
	"reserva/shared/failure"
	"reserva/shared/interval"

	"github.com/rs/zerolog/log"
)

type Tariff interface {
	Quote(ctx context.Context, req dto.QuoteRequest) (dto.QuoteResponse, error)
}

type serviceImpl struct {
	repo     repository.Tariff
	typeRepo resourceRepo.ResourceType
	cfg      *config.Config
	otel     otel.Otel
}

func New(repo repository.Tariff, typeRepo resourceRepo.ResourceType, cfg *config.Config, otel otel.Otel) Tariff {
	return &serviceImpl{
		repo:     repo,
		typeRepo: typeRepo,
		cfg:      cfg,
		otel:     otel,
	}
}

// Quote prices a stay for one resource type. A tariff covering the whole
// interval wins; otherwise the type's base rate applies and the response is
// tagged accordingly.
func (s *serviceImpl) Quote(ctx context.Context, req dto.QuoteRequest) (res dto.QuoteResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".QuoteRate")
	defer scope.End()
	defer scope.TraceIfError(err)

	checkin := req.CheckinDate()
	checkout := req.CheckoutDate()

	if !interval.IsValid(checkin, checkout) {
		return res, failure.BadRequestFromString("checkout must be after checkin") // nolint:wrapcheck
	}

	resourceType, err := s.typeRepo.Get(ctx, typeByIDFilter(req.TenantID, req.TypeID))
	if err != nil {
		log.Error().Err(err).Str("typeID", req.TypeID).Msg("failed to get resource type")

		return res, fmt.Errorf("failed to get resource type: %w", err)
	}

	if resourceType.ID == "" {
		return res, failure.NotFound("resource type") // nolint:wrapcheck
	}

	params := gDto.QueryParams{
		Limit:   1,
		SortBy:  fmt.Sprintf("%s.%s", model.TableName, model.FieldDailyRate),
		SortDir: gDto.SortDirAsc,
	}

	tariffs, err := s.repo.GetAll(ctx, params, repository.CoveringFilter(req.TenantID, req.TypeID, req.Plan, checkin, checkout))
	if err != nil {
		log.Error().Err(err).Msg("failed to get tariffs")

		return res, fmt.Errorf("failed to get tariffs: %w", err)
	}

	rate := resourceType.BaseRate
	rateSource := dto.RateSourceBaseRate

	if len(tariffs) > 0 {
		rate = tariffs[0].DailyRate
		rateSource = dto.RateSourceTariff
	}

	units := req.Units
	if units == 0 {
		units = 1
	}

	nights := interval.Nights(checkin, checkout)
	extras := req.ExtrasSubtotal()

	res = dto.QuoteResponse{
		TypeID:         req.TypeID,
		Checkin:        req.Checkin,
		Checkout:       req.Checkout,
		Nights:         nights,
		Units:          units,
		DailyRate:      rate,
		RateSource:     rateSource,
		ExtrasSubtotal: extras,
		Total:          float64(nights)*rate*float64(units) + extras,
	}

	return res, nil
}

func typeByIDFilter(tenantID, typeID string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    resourceModel.TypeFieldID,
				Operator: gDto.FilterOperatorEq,
				Value:    typeID,
				Table:    resourceModel.TypeTableName,
			},
			gDto.Filter{
				Field:    resourceModel.TypeFieldTenantID,
				ArgName:  "type_tenant_id",
				Operator: gDto.FilterOperatorEq,
				Value:    tenantID,
				Table:    resourceModel.TypeTableName,
			},
		},
	}
}
