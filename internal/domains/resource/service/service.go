package service

import (
	"context"
	"fmt"
	"reserva/config"
	"reserva/infras/otel"
	bookingModel "reserva/internal/domains/booking/model"
	bookingRepo "reserva/internal/domains/booking/repository"
	"reserva/internal/domains/resource/model"
	"reserva/internal/domains/resource/model/dto"
	"reserva/internal/domains/resource/repository"
	"reserva/shared"
	"reserva/shared/cache"
	"reserva/shared/constant"
	gDto "reserva/shared/dto"
	"reserva/shared/failure"
	"reserva/shared/interval"
	"time"

	"github.com/rs/zerolog/log"
)

const cacheAvailability = "resource:availability"

type Resource interface {
	Availability(ctx context.Context, req dto.AvailabilityRequest) (dto.AvailabilityResponse, error)
}

type serviceImpl struct {
	repo           repository.Resource
	categoryRepo   repository.ResourceCategory
	blockRepo      repository.ResourceBlock
	assignmentRepo bookingRepo.BookingResource
	bookingRepo    bookingRepo.Booking
	cfg            *config.Config
	cache          cache.RedisCache
	otel           otel.Otel
}

func New(
	repo repository.Resource,
	categoryRepo repository.ResourceCategory,
	blockRepo repository.ResourceBlock,
	assignmentRepo bookingRepo.BookingResource,
	booking bookingRepo.Booking,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Resource {
	return &serviceImpl{
		repo:           repo,
		categoryRepo:   categoryRepo,
		blockRepo:      blockRepo,
		assignmentRepo: assignmentRepo,
		bookingRepo:    booking,
		cfg:            cfg,
		cache:          cache,
		otel:           otel,
	}
}

// Availability lists every bookable unit of a category annotated with its
// state for the requested stay. Units are never filtered out: a unit taken by
// a booking comes back with is_available=false, a blocked unit keeps its
// availability verdict and carries the block annotation on top.
func (s *serviceImpl) Availability(ctx context.Context, req dto.AvailabilityRequest) (res dto.AvailabilityResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ResourceAvailability")
	defer scope.End()
	defer scope.TraceIfError(err)

	checkin, err := time.Parse(constant.DateOnlyFormat, req.Checkin)
	if err != nil {
		return res, failure.BadRequestFromString("invalid checkin date") // nolint:wrapcheck
	}

	checkout, err := time.Parse(constant.DateOnlyFormat, req.Checkout)
	if err != nil {
		return res, failure.BadRequestFromString("invalid checkout date") // nolint:wrapcheck
	}

	if !interval.IsValid(checkin, checkout) {
		return res, failure.BadRequestFromString("checkout must be after checkin") // nolint:wrapcheck
	}

	cacheKey := shared.BuildCacheKey(cacheAvailability, req.TenantID, req.Category, req.Checkin, req.Checkout)

	if cacheErr := s.cache.Get(ctx, cacheKey, &res); cacheErr == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for resource availability")

		return res, nil
	}

	category, err := s.categoryRepo.Get(ctx, categoryByCodeFilter(req.TenantID, req.Category))
	if err != nil {
		log.Error().Err(err).Str("category", req.Category).Msg("failed to get resource category")

		return res, fmt.Errorf("failed to get resource category: %w", err)
	}

	if category.ID == "" {
		return res, failure.NotFound("resource category") // nolint:wrapcheck
	}

	resources, err := s.repo.GetAll(ctx, gDto.QueryParams{}, candidateFilter(req.TenantID, category.ID))
	if err != nil {
		log.Error().Err(err).Msg("failed to get resources")

		return res, fmt.Errorf("failed to get resources: %w", err)
	}

	res.Checkin = req.Checkin
	res.Checkout = req.Checkout
	res.Resources = make([]dto.ResourceAvailability, len(resources))

	if len(resources) == 0 {
		return res, nil
	}

	resourceIDs := make([]string, len(resources))
	for i, resource := range resources {
		resourceIDs[i] = resource.ID
	}

	taken, err := s.takenResources(ctx, resourceIDs, checkin, checkout)
	if err != nil {
		return res, err
	}

	blocks, err := s.blockRepo.GetAll(ctx, gDto.QueryParams{}, repository.BlockOverlapFilter(req.TenantID, resourceIDs, checkin, checkout))
	if err != nil {
		log.Error().Err(err).Msg("failed to get resource blocks")

		return res, fmt.Errorf("failed to get resource blocks: %w", err)
	}

	blockByResource := make(map[string]model.ResourceBlock, len(blocks))
	for _, block := range blocks {
		blockByResource[block.ResourceID] = block
	}

	for i, resource := range resources {
		res.Resources[i].FromModel(resource)
		res.Resources[i].IsAvailable = !taken[resource.ID]

		if block, ok := blockByResource[resource.ID]; ok {
			res.Resources[i].Blocked = true
			res.Resources[i].BlockType = block.BlockType
			res.Resources[i].BlockReason = block.Reason
		}
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if cacheErr := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); cacheErr != nil {
			log.Warn().Err(cacheErr).Str("cacheKey", cacheKey).Msg("failed to save availability cache")
		}
	}()

	return res, nil
}

// takenResources resolves the set of resource ids held by a live booking over
// the stay, from assignment rows and legacy direct header links.
func (s *serviceImpl) takenResources(ctx context.Context, resourceIDs []string, checkin, checkout time.Time) (map[string]bool, error) {
	taken := make(map[string]bool)

	assignments, err := s.assignmentRepo.GetAll(ctx, gDto.QueryParams{}, bookingRepo.OverlapFilter(resourceIDs, checkin, checkout, ""))
	if err != nil {
		log.Error().Err(err).Msg("failed to get overlapping assignments")

		return nil, fmt.Errorf("failed to get overlapping assignments: %w", err)
	}

	for _, row := range assignments {
		taken[row.ResourceID] = true
	}

	headers, err := s.bookingRepo.GetAll(ctx, gDto.QueryParams{}, bookingRepo.DirectOverlapFilter(resourceIDs, checkin, checkout, ""), bookingModel.FieldID, bookingModel.FieldResourceID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get overlapping bookings")

		return nil, fmt.Errorf("failed to get overlapping bookings: %w", err)
	}

	for _, header := range headers {
		taken[header.ResourceID] = true
	}

	return taken, nil
}

func categoryByCodeFilter(tenantID, code string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.CategoryFieldTenantID,
				Operator: gDto.FilterOperatorEq,
				Value:    tenantID,
				Table:    model.CategoryTableName,
			},
			gDto.Filter{
				Field:    model.CategoryFieldCode,
				Operator: gDto.FilterOperatorEq,
				Value:    code,
				Table:    model.CategoryTableName,
			},
		},
	}
}

// candidateFilter scopes the unit scan to one tenant and category and skips
// units parked in maintenance.
func candidateFilter(tenantID, categoryID string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldTenantID,
				Operator: gDto.FilterOperatorEq,
				Value:    tenantID,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.TypeFieldCategoryID,
				ArgName:  "resource_category_id",
				Operator: gDto.FilterOperatorEq,
				Value:    categoryID,
				Table:    model.TypeTableName,
			},
			gDto.Filter{
				Field:    model.FieldStatus,
				ArgName:  "resource_status_ne",
				Operator: gDto.FilterOperatorNotEq,
				Value:    model.StatusMaintenance,
				Table:    model.TableName,
			},
		},
	}
}
