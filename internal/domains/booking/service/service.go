package service

import (
	"context"
	"fmt"
	"reserva/config"
	"reserva/infras/kafka"
	"reserva/infras/otel"
	"reserva/internal/domains/booking/model"
	"reserva/internal/domains/booking/model/dto"
	"reserva/internal/domains/booking/repository"
	customerRepo "reserva/internal/domains/customer/repository"
	customerService "reserva/internal/domains/customer/service"
	resourceModel "reserva/internal/domains/resource/model"
	resourceRepo "reserva/internal/domains/resource/repository"
	tenantModel "reserva/internal/domains/tenant/model"
	tenantRepo "reserva/internal/domains/tenant/repository"
	"reserva/shared"
	"reserva/shared/cache"
	"reserva/shared/constant"
	gDto "reserva/shared/dto"
	"reserva/shared/failure"
	"reserva/shared/interval"
	"reserva/shared/timezone"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetBooking     = "booking:get"
	cacheGetAllBookings = "booking:gets"

	eventBookingCreated   = "booking.created"
	eventBookingUpdated   = "booking.updated"
	eventBookingCancelled = "booking.cancelled"

	paymentWarning = "booking confirmed but the payment record could not be saved"
)

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.CreateBookingResponse, error)
	Update(ctx context.Context, req dto.UpdateBookingRequest) (dto.BookingResponse, error)
	CheckAvailabilityForEdit(ctx context.Context, req dto.EditAvailabilityRequest) (dto.EditAvailabilityResponse, error)
	Get(ctx context.Context, tenantID, id string) (dto.BookingResponse, error)
	GetAll(ctx context.Context, tenantID string, params gDto.QueryParams) (dto.GetBookingsResponse, error)
	Cancel(ctx context.Context, tenantID, id string) error
}

type serviceImpl struct {
	repo         repository.Booking
	resourceRepo repository.BookingResource
	paymentRepo  repository.Payment
	customerRepo customerRepo.Customer
	unitRepo     resourceRepo.Resource
	blockRepo    resourceRepo.ResourceBlock
	tenantRepo   tenantRepo.Tenant
	producer     kafka.Producer
	cfg          *config.Config
	cache        cache.RedisCache
	otel         otel.Otel
}

func New(
	repo repository.Booking,
	resources repository.BookingResource,
	payments repository.Payment,
	customers customerRepo.Customer,
	units resourceRepo.Resource,
	blocks resourceRepo.ResourceBlock,
	tenants tenantRepo.Tenant,
	producer kafka.Producer,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Booking {
	return &serviceImpl{
		repo:         repo,
		resourceRepo: resources,
		paymentRepo:  payments,
		customerRepo: customers,
		unitRepo:     units,
		blockRepo:    blocks,
		tenantRepo:   tenants,
		producer:     producer,
		cfg:          cfg,
		cache:        cache,
		otel:         otel,
	}
}

// Create books a set of resources for one customer. Pre-checks catch blocks
// and overlaps early for a clean error, but the storage-level exclusion
// constraint is the authoritative conflict signal: a violation during the
// assignment insert comes back as a conflict after the header is compensated
// away. The payment record is best-effort and never rolls the booking back.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.CreateBookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateBooking")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	checkin := req.CheckinDate()
	checkout := req.CheckoutDate()

	if !interval.IsValid(checkin, checkout) {
		return res, failure.BadRequestFromString("checkout must be after checkin") // nolint:wrapcheck
	}

	customerExists, err := s.customerRepo.Exist(ctx, customerService.FilterByIDAndTenant(req.CustomerID, req.TenantID))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if customer exists")

		return res, fmt.Errorf("failed to check if customer exists: %w", err)
	}

	if !customerExists {
		return res, failure.NotFound("customer") // nolint:wrapcheck
	}

	if err = s.ensureResourcesExist(ctx, req.TenantID, req.ResourceIDs); err != nil {
		return res, err
	}

	if err = s.ensureNotBlocked(ctx, req.TenantID, req.ResourceIDs, checkin, checkout); err != nil {
		return res, err
	}

	conflicts, err := s.conflictingResources(ctx, req.ResourceIDs, checkin, checkout, "")
	if err != nil {
		return res, err
	}

	if len(conflicts) > 0 {
		return res, failure.ConflictWithDetails("resource already booked for the requested dates", dto.ConflictDetails{ // nolint:wrapcheck
			ResourceIDs: conflicts,
		})
	}

	booking := req.ToModel(user)

	if err = s.repo.Insert(ctx, booking); err != nil {
		log.Error().Err(err).Msg("failed to create booking")

		return res, fmt.Errorf("failed to create booking: %w", err)
	}

	if err = s.resourceRepo.InsertBulk(ctx, req.ToResourceModels(booking)); err != nil {
		log.Error().Err(err).Str("bookingID", booking.ID).Msg("failed to assign resources, removing booking header")

		if deleteErr := s.repo.Delete(ctx, shared.FilterByID(booking.ID, model.FieldID, model.TableName)); deleteErr != nil {
			log.Error().Err(deleteErr).Str("bookingID", booking.ID).Msg("failed to remove booking header after assignment failure")
		}

		if failure.IsConflict(err) {
			return res, failure.ConflictWithDetails("resource already booked for the requested dates", dto.ConflictDetails{ // nolint:wrapcheck
				ResourceIDs: req.ResourceIDs,
			})
		}

		return res, err
	}

	res.Booking.FromModel(booking, nil)
	res.Booking.ResourceIDs = req.ResourceIDs

	if req.PaymentMethod != "" && req.PaymentAmount > 0 {
		if paymentErr := s.recordPayment(ctx, req, booking); paymentErr != nil {
			log.Warn().Err(paymentErr).Str("bookingID", booking.ID).Msg("failed to record payment for booking")

			res.Warning = paymentWarning
		}
	}

	s.publishEvent(ctx, eventBookingCreated, booking.ID, res.Booking)
	s.invalidateBookingCaches(ctx)

	return res, nil
}

// Update replaces a booking's interval and resource set wholesale. The
// booking's own assignment rows are excluded from the conflict scan so it
// never collides with itself.
func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateBooking")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	checkin := req.CheckinDate()
	checkout := req.CheckoutDate()

	if !interval.IsValid(checkin, checkout) {
		return res, failure.BadRequestFromString("checkout must be after checkin") // nolint:wrapcheck
	}

	booking, err := s.getOwned(ctx, req.TenantID, req.BookingID)
	if err != nil {
		return res, err
	}

	if err = s.ensureResourcesExist(ctx, req.TenantID, req.ResourceIDs); err != nil {
		return res, err
	}

	if err = s.ensureNotBlocked(ctx, req.TenantID, req.ResourceIDs, checkin, checkout); err != nil {
		return res, err
	}

	conflicts, err := s.conflictingResources(ctx, req.ResourceIDs, checkin, checkout, booking.ID)
	if err != nil {
		return res, err
	}

	if len(conflicts) > 0 {
		return res, failure.ConflictWithDetails("resource already booked for the requested dates", dto.ConflictDetails{ // nolint:wrapcheck
			ResourceIDs: conflicts,
		})
	}

	rows := req.ToResourceModels(booking, user)

	if err = s.resourceRepo.Replace(ctx, booking.ID, rows); err != nil {
		log.Error().Err(err).Str("bookingID", booking.ID).Msg("failed to replace resource assignments")

		if failure.IsConflict(err) {
			return res, failure.ConflictWithDetails("resource already booked for the requested dates", dto.ConflictDetails{ // nolint:wrapcheck
				ResourceIDs: req.ResourceIDs,
			})
		}

		return res, err
	}

	if err = s.repo.Update(ctx, req.ToFields(user), shared.FilterByID(booking.ID, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Str("bookingID", booking.ID).Msg("failed to update booking header")

		return res, fmt.Errorf("failed to update booking: %w", err)
	}

	updated, err := s.getOwned(ctx, req.TenantID, req.BookingID)
	if err != nil {
		return res, err
	}

	res.FromModel(updated, rows)

	s.publishEvent(ctx, eventBookingUpdated, booking.ID, res)
	s.invalidateBookingCaches(ctx)

	return res, nil
}

// CheckAvailabilityForEdit answers whether a booking could move to a new
// interval or resource set without writing anything. Idempotent between
// writes.
func (s *serviceImpl) CheckAvailabilityForEdit(ctx context.Context, req dto.EditAvailabilityRequest) (res dto.EditAvailabilityResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CheckBookingAvailability")
	defer scope.End()
	defer scope.TraceIfError(err)

	checkin := req.CheckinDate()
	checkout := req.CheckoutDate()

	if !interval.IsValid(checkin, checkout) {
		return res, failure.BadRequestFromString("checkout must be after checkin") // nolint:wrapcheck
	}

	if _, err = s.getOwned(ctx, req.TenantID, req.BookingID); err != nil {
		return res, err
	}

	conflicts, err := s.conflictingResources(ctx, req.ResourceIDs, checkin, checkout, req.BookingID)
	if err != nil {
		return res, err
	}

	res.Available = len(conflicts) == 0
	res.Conflicts = conflicts

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, tenantID, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetBooking")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetBooking, tenantID, id)

	if cacheErr := s.cache.Get(ctx, cacheKey, &res); cacheErr == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking")

		return res, nil
	}

	booking, err := s.getOwned(ctx, tenantID, id)
	if err != nil {
		return res, err
	}

	rows, err := s.resourceRepo.GetAll(ctx, gDto.QueryParams{}, assignmentsByBookingFilter(id))
	if err != nil {
		log.Error().Err(err).Str("bookingID", id).Msg("failed to get resource assignments")

		return res, fmt.Errorf("failed to get resource assignments: %w", err)
	}

	res.FromModel(booking, rows)

	go func() {
		c := context.WithoutCancel(ctx)

		if cacheErr := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); cacheErr != nil {
			log.Warn().Err(cacheErr).Str("cacheKey", cacheKey).Msg("failed to save booking cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, tenantID string, params gDto.QueryParams) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetBookings")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := tenantFilter(tenantID)
	cacheKey := shared.BuildCacheKeyWithQuery(shared.BuildCacheKey(cacheGetAllBookings, tenantID), params, filter)

	if cacheErr := s.cache.Get(ctx, cacheKey, &res); cacheErr == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for bookings")

		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	bookings, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(bookings, total, params.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if cacheErr := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); cacheErr != nil {
			log.Warn().Err(cacheErr).Str("cacheKey", cacheKey).Msg("failed to save bookings cache")
		}
	}()

	return res, nil
}

// Cancel flips the booking to cancelled and syncs the denormalized status on
// its assignment rows so the exclusion constraint frees the resources. Rows
// are kept for history.
func (s *serviceImpl) Cancel(ctx context.Context, tenantID, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CancelBooking")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	booking, err := s.getOwned(ctx, tenantID, id)
	if err != nil {
		return err
	}

	headerFields := map[string]any{
		model.FieldStatus:        model.StatusCancelled,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	if err = s.repo.Update(ctx, headerFields, shared.FilterByID(booking.ID, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Str("bookingID", id).Msg("failed to cancel booking")

		return fmt.Errorf("failed to cancel booking: %w", err)
	}

	rowFields := map[string]any{
		model.ResourceFieldBookingStatus: model.StatusCancelled,
		constant.FieldModifiedAt:         timezone.Now(),
		constant.FieldModifiedBy:         user,
	}

	if err = s.resourceRepo.Update(ctx, rowFields, assignmentsByBookingFilter(booking.ID)); err != nil {
		log.Error().Err(err).Str("bookingID", id).Msg("failed to sync cancelled status to resource assignments")

		return fmt.Errorf("failed to sync cancelled status: %w", err)
	}

	s.publishEvent(ctx, eventBookingCancelled, booking.ID, map[string]string{"booking_id": booking.ID})
	s.invalidateBookingCaches(ctx)

	return nil
}

func (s *serviceImpl) getOwned(ctx context.Context, tenantID, id string) (model.Booking, error) {
	booking, err := s.repo.Get(ctx, ownedBookingFilter(tenantID, id))
	if err != nil {
		log.Error().Err(err).Str("bookingID", id).Msg("failed to get booking")

		return booking, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == "" {
		return booking, failure.NotFound("booking") // nolint:wrapcheck
	}

	return booking, nil
}

func (s *serviceImpl) ensureResourcesExist(ctx context.Context, tenantID string, resourceIDs []string) error {
	count, err := s.unitRepo.Count(ctx, resourcesByIDsFilter(tenantID, resourceIDs))
	if err != nil {
		log.Error().Err(err).Msg("failed to check resources")

		return fmt.Errorf("failed to check resources: %w", err)
	}

	if count != len(resourceIDs) {
		return failure.NotFound("resource") // nolint:wrapcheck
	}

	return nil
}

func (s *serviceImpl) ensureNotBlocked(ctx context.Context, tenantID string, resourceIDs []string, checkin, checkout time.Time) error {
	blocks, err := s.blockRepo.GetAll(ctx, gDto.QueryParams{}, resourceRepo.BlockOverlapFilter(tenantID, resourceIDs, checkin, checkout))
	if err != nil {
		log.Error().Err(err).Msg("failed to check resource blocks")

		return fmt.Errorf("failed to check resource blocks: %w", err)
	}

	if len(blocks) == 0 {
		return nil
	}

	blockedIDs := make([]string, len(blocks))
	for i, block := range blocks {
		blockedIDs[i] = block.ResourceID
	}

	return failure.ConflictWithDetails("resource is blocked for the requested dates", dto.BlockedDetails{ // nolint:wrapcheck
		ResourceIDs: blockedIDs,
		BlockType:   blocks[0].BlockType,
		Reason:      blocks[0].Reason,
	})
}

// conflictingResources collects resource ids held by another live booking
// over the interval, from both assignment rows and legacy direct header
// links.
func (s *serviceImpl) conflictingResources(ctx context.Context, resourceIDs []string, checkin, checkout time.Time, excludeBookingID string) ([]string, error) {
	seen := make(map[string]bool)
	conflicts := make([]string, 0)

	assignments, err := s.resourceRepo.GetAll(ctx, gDto.QueryParams{}, repository.OverlapFilter(resourceIDs, checkin, checkout, excludeBookingID))
	if err != nil {
		log.Error().Err(err).Msg("failed to check overlapping assignments")

		return nil, fmt.Errorf("failed to check overlapping assignments: %w", err)
	}

	for _, row := range assignments {
		if !seen[row.ResourceID] {
			seen[row.ResourceID] = true
			conflicts = append(conflicts, row.ResourceID)
		}
	}

	headers, err := s.repo.GetAll(ctx, gDto.QueryParams{}, repository.DirectOverlapFilter(resourceIDs, checkin, checkout, excludeBookingID), model.FieldID, model.FieldResourceID)
	if err != nil {
		log.Error().Err(err).Msg("failed to check overlapping bookings")

		return nil, fmt.Errorf("failed to check overlapping bookings: %w", err)
	}

	for _, header := range headers {
		if !seen[header.ResourceID] {
			seen[header.ResourceID] = true
			conflicts = append(conflicts, header.ResourceID)
		}
	}

	return conflicts, nil
}

func (s *serviceImpl) recordPayment(ctx context.Context, req dto.CreateBookingRequest, booking model.Booking) error {
	currency := s.cfg.App.DefaultCurrency

	tenant, err := s.tenantRepo.Get(ctx, shared.FilterByID(booking.TenantID, tenantModel.FieldID, tenantModel.TableName))
	if err != nil || tenant.BaseCurrency == "" {
		log.Warn().Err(err).Str("tenantID", booking.TenantID).Str("currency", currency).Msg("tenant base currency unavailable, using default")
	} else {
		currency = tenant.BaseCurrency
	}

	if err = s.paymentRepo.Insert(ctx, req.ToPaymentModel(booking, currency)); err != nil {
		return fmt.Errorf("failed to record payment: %w", err)
	}

	return nil
}

func (s *serviceImpl) publishEvent(ctx context.Context, event, bookingID string, payload any) {
	go func() {
		c := context.WithoutCancel(ctx)

		message := kafka.Message{
			Key: bookingID,
			Value: map[string]any{
				"event":   event,
				"payload": payload,
			},
		}

		if err := s.producer.SendMessages(c, s.cfg.Kafka.BookingTopic, message); err != nil {
			log.Warn().Err(err).Str("event", event).Str("bookingID", bookingID).Msg("failed to publish booking event")
		}
	}()
}

func (s *serviceImpl) invalidateBookingCaches(ctx context.Context) {
	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllBookings)
		shared.InvalidateCaches(c, s.cache, cacheGetBooking)
	}()
}

func ownedBookingFilter(tenantID, id string) gDto.FilterGroup {
	filter := shared.FilterByID(id, model.FieldID, model.TableName)
	filter.Operator = gDto.FilterGroupOperatorAnd
	filter.Filters = append(filter.Filters, gDto.Filter{
		Field:    model.FieldTenantID,
		ArgName:  "booking_tenant_id",
		Operator: gDto.FilterOperatorEq,
		Value:    tenantID,
		Table:    model.TableName,
	})

	return filter
}

func assignmentsByBookingFilter(bookingID string) gDto.FilterGroup {
	return shared.FilterByID(bookingID, model.ResourceFieldBookingID, model.ResourceTableName)
}

func tenantFilter(tenantID string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldTenantID,
				Operator: gDto.FilterOperatorEq,
				Value:    tenantID,
				Table:    model.TableName,
			},
		},
	}
}

func resourcesByIDsFilter(tenantID string, resourceIDs []string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    resourceModel.FieldTenantID,
				Operator: gDto.FilterOperatorEq,
				Value:    tenantID,
				Table:    resourceModel.TableName,
			},
			gDto.Filter{
				Field:    resourceModel.FieldID,
				ArgName:  "check_resource_ids",
				Operator: gDto.FilterOperatorIn,
				Value:    resourceIDs,
				Table:    resourceModel.TableName,
			},
		},
	}
}
