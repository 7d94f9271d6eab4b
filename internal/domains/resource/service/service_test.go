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
	"reserva/infras/otel/mocks"
	bookingMocks "reserva/internal/domains/booking/mocks"
	bookingModel "reserva/internal/domains/booking/model"
	resourceMocks "reserva/internal/domains/resource/mocks"
	"reserva/internal/domains/resource/model"
	"reserva/internal/domains/resource/model/dto"
	"reserva/internal/domains/resource/service"
	cacheMocks "reserva/shared/cache/mocks"
	"reserva/shared/failure"
)

func TestResourceService_Availability(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := resourceMocks.NewMockResource(ctrl)
	mockCategoryRepo := resourceMocks.NewMockResourceCategory(ctrl)
	mockBlockRepo := resourceMocks.NewMockResourceBlock(ctrl)
	mockAssignmentRepo := bookingMocks.NewMockBookingResource(ctrl)
	mockBookingRepo := bookingMocks.NewMockBooking(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, mockCategoryRepo, mockBlockRepo, mockAssignmentRepo, mockBookingRepo, cfg, mockCache, mockOtel)

	cacheMiss := func() {
		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))
		mockCache.EXPECT().
			Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()
	}

	category := model.ResourceCategory{ID: "cat-1", Code: "rooms"}
	resources := []model.Resource{
		{ID: "res-1", Label: "101", TypeID: "type-1", TypeName: "Standard"},
		{ID: "res-2", Label: "102", TypeID: "type-1", TypeName: "Standard"},
		{ID: "res-3", Label: "103", TypeID: "type-1", TypeName: "Standard"},
	}

	t.Run("annotates taken and blocked resources", func(t *testing.T) {
		cacheMiss()

		mockCategoryRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(category, nil)

		mockRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(resources, nil)

		mockAssignmentRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]bookingModel.BookingResource{{ResourceID: "res-1"}}, nil)

		mockBookingRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]bookingModel.Booking{{ID: "bk-1", ResourceID: "res-2"}}, nil)

		mockBlockRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.ResourceBlock{{ResourceID: "res-3", BlockType: "maintenance", Reason: "leak"}}, nil)

		res, err := svc.Availability(context.Background(), dto.AvailabilityRequest{
			TenantID: "tenant-1",
			Category: "rooms",
			Checkin:  "2026-09-10",
			Checkout: "2026-09-12",
		})

		time.Sleep(10 * time.Millisecond)

		require.NoError(t, err)
		require.Len(t, res.Resources, 3)

		byID := make(map[string]dto.ResourceAvailability)
		for _, r := range res.Resources {
			byID[r.ID] = r
		}

		assert.False(t, byID["res-1"].IsAvailable)
		assert.False(t, byID["res-2"].IsAvailable)

		// Blocked unit keeps its booking-derived availability and carries
		// the block annotation on top.
		assert.True(t, byID["res-3"].IsAvailable)
		assert.True(t, byID["res-3"].Blocked)
		assert.Equal(t, "maintenance", byID["res-3"].BlockType)
		assert.Equal(t, "leak", byID["res-3"].BlockReason)
	})

	t.Run("empty candidate set short-circuits", func(t *testing.T) {
		cacheMiss()

		mockCategoryRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(category, nil)

		mockRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.Resource{}, nil)

		res, err := svc.Availability(context.Background(), dto.AvailabilityRequest{
			TenantID: "tenant-1",
			Category: "rooms",
			Checkin:  "2026-09-10",
			Checkout: "2026-09-12",
		})

		require.NoError(t, err)
		assert.Empty(t, res.Resources)
	})

	t.Run("unknown category", func(t *testing.T) {
		cacheMiss()

		mockCategoryRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.ResourceCategory{}, nil)

		_, err := svc.Availability(context.Background(), dto.AvailabilityRequest{
			TenantID: "tenant-1",
			Category: "ghosts",
			Checkin:  "2026-09-10",
			Checkout: "2026-09-12",
		})

		require.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})

	t.Run("checkout before checkin", func(t *testing.T) {
		_, err := svc.Availability(context.Background(), dto.AvailabilityRequest{
			TenantID: "tenant-1",
			Category: "rooms",
			Checkin:  "2026-09-12",
			Checkout: "2026-09-10",
		})

		require.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})

	t.Run("checkout equal to checkin", func(t *testing.T) {
		_, err := svc.Availability(context.Background(), dto.AvailabilityRequest{
			TenantID: "tenant-1",
			Category: "rooms",
			Checkin:  "2026-09-10",
			Checkout: "2026-09-10",
		})

		require.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})

	t.Run("assignment query failure returns no partial result", func(t *testing.T) {
		cacheMiss()

		mockCategoryRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(category, nil)

		mockRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(resources, nil)

		mockAssignmentRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errors.New("database error"))

		_, err := svc.Availability(context.Background(), dto.AvailabilityRequest{
			TenantID: "tenant-1",
			Category: "rooms",
			Checkin:  "2026-09-10",
			Checkout: "2026-09-12",
		})

		require.Error(t, err)
	})
}
