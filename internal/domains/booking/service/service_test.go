package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"reserva/config"
	kafkaMocks "reserva/infras/kafka/mocks"
	"reserva/infras/otel/mocks"
	bookingMocks "reserva/internal/domains/booking/mocks"
	"reserva/internal/domains/booking/model"
	"reserva/internal/domains/booking/model/dto"
	"reserva/internal/domains/booking/service"
	customerMocks "reserva/internal/domains/customer/mocks"
	resourceMocks "reserva/internal/domains/resource/mocks"
	resourceModel "reserva/internal/domains/resource/model"
	tenantMocks "reserva/internal/domains/tenant/mocks"
	tenantModel "reserva/internal/domains/tenant/model"
	cacheMocks "reserva/shared/cache/mocks"
	"reserva/shared/constant"
	"reserva/shared/failure"
)

type bookingMockSet struct {
	repo         *bookingMocks.MockBooking
	resourceRepo *bookingMocks.MockBookingResource
	paymentRepo  *bookingMocks.MockPayment
	customerRepo *customerMocks.MockCustomer
	unitRepo     *resourceMocks.MockResource
	blockRepo    *resourceMocks.MockResourceBlock
	tenantRepo   *tenantMocks.MockTenant
	producer     *kafkaMocks.MockProducer
	cache        *cacheMocks.MockRedisCache
}

func newBookingService(ctrl *gomock.Controller) (service.Booking, *bookingMockSet) {
	m := &bookingMockSet{
		repo:         bookingMocks.NewMockBooking(ctrl),
		resourceRepo: bookingMocks.NewMockBookingResource(ctrl),
		paymentRepo:  bookingMocks.NewMockPayment(ctrl),
		customerRepo: customerMocks.NewMockCustomer(ctrl),
		unitRepo:     resourceMocks.NewMockResource(ctrl),
		blockRepo:    resourceMocks.NewMockResourceBlock(ctrl),
		tenantRepo:   tenantMocks.NewMockTenant(ctrl),
		producer:     kafkaMocks.NewMockProducer(ctrl),
		cache:        cacheMocks.NewMockRedisCache(ctrl),
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600
	cfg.App.DefaultCurrency = "USD"
	cfg.Kafka.BookingTopic = "booking-events"

	svc := service.New(
		m.repo, m.resourceRepo, m.paymentRepo, m.customerRepo,
		m.unitRepo, m.blockRepo, m.tenantRepo, m.producer,
		cfg, m.cache, mocks.NewOtel(),
	)

	return svc, m
}

func (m *bookingMockSet) expectAsyncSideEffects() {
	m.producer.EXPECT().
		SendMessages(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()
	m.cache.EXPECT().
		Clear(gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()
}

func (m *bookingMockSet) expectNoConflicts() {
	m.blockRepo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]resourceModel.ResourceBlock{}, nil)
	m.resourceRepo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]model.BookingResource{}, nil)
	m.repo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]model.Booking{}, nil)
}

var testCtx = context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")

func validCreateRequest() dto.CreateBookingRequest {
	return dto.CreateBookingRequest{
		TenantID:    "tenant-1",
		CustomerID:  "11111111-1111-1111-1111-111111111111",
		Checkin:     "2026-09-10",
		Checkout:    "2026-09-12",
		ResourceIDs: []string{"res-1", "res-2"},
		Guests:      2,
		TotalPrice:  240,
	}
}

func TestBookingService_Create(t *testing.T) {
	t.Run("successful creation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newBookingService(ctrl)

		m.customerRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		m.unitRepo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(2, nil)
		m.expectNoConflicts()
		m.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
		m.resourceRepo.EXPECT().
			InsertBulk(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, rows []model.BookingResource) error {
				assert.Len(t, rows, 2)
				assert.Equal(t, model.StatusConfirmed, rows[0].BookingStatus)
				return nil
			})
		m.expectAsyncSideEffects()

		res, err := svc.Create(testCtx, validCreateRequest())

		time.Sleep(10 * time.Millisecond)

		require.NoError(t, err)
		assert.Empty(t, res.Warning)
		assert.Equal(t, model.StatusConfirmed, res.Booking.Status)
		assert.Equal(t, []string{"res-1", "res-2"}, res.Booking.ResourceIDs)
	})

	t.Run("blocked resource", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newBookingService(ctrl)

		m.customerRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		m.unitRepo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(2, nil)
		m.blockRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]resourceModel.ResourceBlock{
				{ResourceID: "res-1", BlockType: "maintenance", Reason: "renovation"},
			}, nil)

		_, err := svc.Create(testCtx, validCreateRequest())

		require.Error(t, err)
		assert.Equal(t, 409, failure.GetCode(err))

		details, ok := failure.GetDetails(err).(dto.BlockedDetails)
		require.True(t, ok)
		assert.Equal(t, []string{"res-1"}, details.ResourceIDs)
		assert.Equal(t, "maintenance", details.BlockType)
		assert.Equal(t, "renovation", details.Reason)
	})

	t.Run("overlapping assignment", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newBookingService(ctrl)

		m.customerRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		m.unitRepo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(2, nil)
		m.blockRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]resourceModel.ResourceBlock{}, nil)
		m.resourceRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.BookingResource{{ResourceID: "res-2", BookingID: "bk-other"}}, nil)
		m.repo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.Booking{}, nil)

		_, err := svc.Create(testCtx, validCreateRequest())

		require.Error(t, err)
		assert.Equal(t, 409, failure.GetCode(err))

		details, ok := failure.GetDetails(err).(dto.ConflictDetails)
		require.True(t, ok)
		assert.Equal(t, []string{"res-2"}, details.ResourceIDs)
	})

	t.Run("legacy direct booking conflicts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newBookingService(ctrl)

		m.customerRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		m.unitRepo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(2, nil)
		m.blockRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]resourceModel.ResourceBlock{}, nil)
		m.resourceRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.BookingResource{}, nil)
		m.repo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.Booking{{ID: "bk-legacy", ResourceID: "res-1"}}, nil)

		_, err := svc.Create(testCtx, validCreateRequest())

		require.Error(t, err)
		assert.Equal(t, 409, failure.GetCode(err))
	})

	t.Run("assignment insert fails and header is compensated", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newBookingService(ctrl)

		m.customerRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		m.unitRepo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(2, nil)
		m.expectNoConflicts()
		m.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
		m.resourceRepo.EXPECT().
			InsertBulk(gomock.Any(), gomock.Any()).
			Return(failure.Conflict("conflict with existing data"))
		m.repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)

		_, err := svc.Create(testCtx, validCreateRequest())

		require.Error(t, err)
		assert.Equal(t, 409, failure.GetCode(err))
	})

	t.Run("payment failure keeps the booking and warns", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newBookingService(ctrl)

		m.customerRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		m.unitRepo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(2, nil)
		m.expectNoConflicts()
		m.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
		m.resourceRepo.EXPECT().InsertBulk(gomock.Any(), gomock.Any()).Return(nil)
		m.tenantRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(tenantModel.Tenant{ID: "tenant-1", BaseCurrency: "EUR"}, nil)
		m.paymentRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			Return(errors.New("database error"))
		m.expectAsyncSideEffects()

		req := validCreateRequest()
		req.PaymentMethod = "card"
		req.PaymentAmount = 50

		res, err := svc.Create(testCtx, req)

		time.Sleep(10 * time.Millisecond)

		require.NoError(t, err)
		assert.NotEmpty(t, res.Warning)
	})

	t.Run("payment uses tenant base currency", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newBookingService(ctrl)

		m.customerRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		m.unitRepo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(2, nil)
		m.expectNoConflicts()
		m.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
		m.resourceRepo.EXPECT().InsertBulk(gomock.Any(), gomock.Any()).Return(nil)
		m.tenantRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(tenantModel.Tenant{ID: "tenant-1", BaseCurrency: "EUR"}, nil)
		m.paymentRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, payment model.Payment) error {
				assert.Equal(t, "EUR", payment.Currency)
				assert.Equal(t, float64(50), payment.Amount)
				return nil
			})
		m.expectAsyncSideEffects()

		req := validCreateRequest()
		req.PaymentMethod = "card"
		req.PaymentAmount = 50

		res, err := svc.Create(testCtx, req)

		time.Sleep(10 * time.Millisecond)

		require.NoError(t, err)
		assert.Empty(t, res.Warning)
	})

	t.Run("unknown customer", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newBookingService(ctrl)

		m.customerRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

		_, err := svc.Create(testCtx, validCreateRequest())

		require.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})

	t.Run("invalid interval", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, _ := newBookingService(ctrl)

		req := validCreateRequest()
		req.Checkout = req.Checkin

		_, err := svc.Create(testCtx, req)

		require.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})
}

func TestBookingService_Update(t *testing.T) {
	current := model.Booking{
		ID:         "bk-1",
		TenantID:   "tenant-1",
		CustomerID: "11111111-1111-1111-1111-111111111111",
		Status:     model.StatusConfirmed,
	}

	validReq := func() dto.UpdateBookingRequest {
		return dto.UpdateBookingRequest{
			TenantID:    "tenant-1",
			BookingID:   "bk-1",
			Checkin:     "2026-09-15",
			Checkout:    "2026-09-18",
			ResourceIDs: []string{"res-3"},
		}
	}

	t.Run("full replace succeeds", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newBookingService(ctrl)

		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(current, nil).Times(2)
		m.unitRepo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(1, nil)
		m.blockRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]resourceModel.ResourceBlock{}, nil)
		m.resourceRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.BookingResource{}, nil)
		m.repo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.Booking{}, nil)
		m.resourceRepo.EXPECT().
			Replace(gomock.Any(), "bk-1", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, rows []model.BookingResource) error {
				assert.Len(t, rows, 1)
				assert.Equal(t, "res-3", rows[0].ResourceID)
				return nil
			})
		m.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		m.expectAsyncSideEffects()

		res, err := svc.Update(testCtx, validReq())

		time.Sleep(10 * time.Millisecond)

		require.NoError(t, err)
		assert.Equal(t, []string{"res-3"}, res.ResourceIDs)
	})

	t.Run("own rows never conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newBookingService(ctrl)

		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(current, nil).Times(2)
		m.unitRepo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(1, nil)
		m.blockRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]resourceModel.ResourceBlock{}, nil)
		// The overlap filter already excludes the booking's own rows, so the
		// repo comes back empty even though the booking holds res-3 today.
		m.resourceRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.BookingResource{}, nil)
		m.repo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.Booking{}, nil)
		m.resourceRepo.EXPECT().Replace(gomock.Any(), "bk-1", gomock.Any()).Return(nil)
		m.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		m.expectAsyncSideEffects()

		_, err := svc.Update(testCtx, validReq())

		time.Sleep(10 * time.Millisecond)

		require.NoError(t, err)
	})

	t.Run("conflicting move is rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newBookingService(ctrl)

		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(current, nil)
		m.unitRepo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(1, nil)
		m.blockRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]resourceModel.ResourceBlock{}, nil)
		m.resourceRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.BookingResource{{ResourceID: "res-3", BookingID: "bk-other"}}, nil)
		m.repo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.Booking{}, nil)

		_, err := svc.Update(testCtx, validReq())

		require.Error(t, err)
		assert.Equal(t, 409, failure.GetCode(err))
	})

	t.Run("move onto a blocked resource is rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newBookingService(ctrl)

		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(current, nil)
		m.unitRepo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(1, nil)
		m.blockRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]resourceModel.ResourceBlock{
				{ResourceID: "res-3", BlockType: "maintenance", Reason: "deep clean"},
			}, nil)

		_, err := svc.Update(testCtx, validReq())

		require.Error(t, err)
		assert.Equal(t, 409, failure.GetCode(err))

		details, ok := failure.GetDetails(err).(dto.BlockedDetails)
		require.True(t, ok)
		assert.Equal(t, []string{"res-3"}, details.ResourceIDs)
		assert.Equal(t, "maintenance", details.BlockType)
	})

	t.Run("unknown booking", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newBookingService(ctrl)

		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Booking{}, nil)

		_, err := svc.Update(testCtx, validReq())

		require.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})
}

func TestBookingService_CheckAvailabilityForEdit(t *testing.T) {
	current := model.Booking{ID: "bk-1", TenantID: "tenant-1"}

	req := dto.EditAvailabilityRequest{
		TenantID:    "tenant-1",
		BookingID:   "bk-1",
		Checkin:     "2026-09-15",
		Checkout:    "2026-09-18",
		ResourceIDs: []string{"res-1", "res-2"},
	}

	t.Run("available", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newBookingService(ctrl)

		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(current, nil)
		m.resourceRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.BookingResource{}, nil)
		m.repo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.Booking{}, nil)

		res, err := svc.CheckAvailabilityForEdit(testCtx, req)

		require.NoError(t, err)
		assert.True(t, res.Available)
		assert.Empty(t, res.Conflicts)
	})

	t.Run("conflicting resources listed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newBookingService(ctrl)

		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(current, nil)
		m.resourceRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.BookingResource{{ResourceID: "res-1", BookingID: "bk-other"}}, nil)
		m.repo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.Booking{{ID: "bk-legacy", ResourceID: "res-2"}}, nil)

		res, err := svc.CheckAvailabilityForEdit(testCtx, req)

		require.NoError(t, err)
		assert.False(t, res.Available)
		assert.ElementsMatch(t, []string{"res-1", "res-2"}, res.Conflicts)
	})
}

func TestBookingService_Cancel(t *testing.T) {
	current := model.Booking{ID: "bk-1", TenantID: "tenant-1", Status: model.StatusConfirmed}

	t.Run("status flip syncs assignment rows", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newBookingService(ctrl)

		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(current, nil)
		m.repo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ any) error {
				assert.Equal(t, model.StatusCancelled, fields[model.FieldStatus])
				return nil
			})
		m.resourceRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ any) error {
				assert.Equal(t, model.StatusCancelled, fields[model.ResourceFieldBookingStatus])
				return nil
			})
		m.expectAsyncSideEffects()

		err := svc.Cancel(testCtx, "tenant-1", "bk-1")

		time.Sleep(10 * time.Millisecond)

		require.NoError(t, err)
	})

	t.Run("unknown booking", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newBookingService(ctrl)

		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Booking{}, nil)

		err := svc.Cancel(testCtx, "tenant-1", "bk-missing")

		require.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})
}

func TestBookingService_Get(t *testing.T) {
	t.Run("booking with assignments", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newBookingService(ctrl)

		m.cache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))
		m.cache.EXPECT().
			Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		m.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Booking{ID: "bk-1", TenantID: "tenant-1"}, nil)
		m.resourceRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.BookingResource{{ResourceID: "res-1"}, {ResourceID: "res-2"}}, nil)

		res, err := svc.Get(testCtx, "tenant-1", "bk-1")

		time.Sleep(10 * time.Millisecond)

		require.NoError(t, err)
		assert.Equal(t, []string{"res-1", "res-2"}, res.ResourceIDs)
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newBookingService(ctrl)

		m.cache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))
		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Booking{}, nil)

		_, err := svc.Get(testCtx, "tenant-1", "bk-missing")

		require.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})
}
