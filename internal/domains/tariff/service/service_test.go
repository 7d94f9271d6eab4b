package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"reserva/config"
	"reserva/infras/otel/mocks"
	resourceMocks "reserva/internal/domains/resource/mocks"
	resourceModel "reserva/internal/domains/resource/model"
	tariffMocks "reserva/internal/domains/tariff/mocks"
	"reserva/internal/domains/tariff/model"
	"reserva/internal/domains/tariff/model/dto"
	"reserva/internal/domains/tariff/service"
	"reserva/shared/failure"
)

func TestTariffService_Quote(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := tariffMocks.NewMockTariff(ctrl)
	mockTypeRepo := resourceMocks.NewMockResourceType(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockRepo, mockTypeRepo, cfg, mockOtel)

	resourceType := resourceModel.ResourceType{ID: "type-1", Name: "Standard", BaseRate: 100}

	t.Run("covering tariff wins over base rate", func(t *testing.T) {
		mockTypeRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(resourceType, nil)

		mockRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.Tariff{{ID: "tariff-1", DailyRate: 80}}, nil)

		res, err := svc.Quote(context.Background(), dto.QuoteRequest{
			TenantID: "tenant-1",
			TypeID:   "type-1",
			Checkin:  "2026-09-10",
			Checkout: "2026-09-13",
			Units:    2,
		})

		require.NoError(t, err)
		assert.Equal(t, 3, res.Nights)
		assert.Equal(t, 2, res.Units)
		assert.Equal(t, float64(80), res.DailyRate)
		assert.Equal(t, dto.RateSourceTariff, res.RateSource)
		assert.Equal(t, float64(480), res.Total)
	})

	t.Run("base rate fallback when no tariff covers", func(t *testing.T) {
		mockTypeRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(resourceType, nil)

		mockRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.Tariff{}, nil)

		res, err := svc.Quote(context.Background(), dto.QuoteRequest{
			TenantID: "tenant-1",
			TypeID:   "type-1",
			Checkin:  "2026-09-10",
			Checkout: "2026-09-11",
		})

		require.NoError(t, err)
		assert.Equal(t, 1, res.Nights)
		assert.Equal(t, 1, res.Units)
		assert.Equal(t, float64(100), res.DailyRate)
		assert.Equal(t, dto.RateSourceBaseRate, res.RateSource)
		assert.Equal(t, float64(100), res.Total)
	})

	t.Run("extras added on top", func(t *testing.T) {
		mockTypeRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(resourceType, nil)

		mockRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.Tariff{}, nil)

		res, err := svc.Quote(context.Background(), dto.QuoteRequest{
			TenantID: "tenant-1",
			TypeID:   "type-1",
			Checkin:  "2026-09-10",
			Checkout: "2026-09-12",
			Extras: []dto.ExtraFee{
				{Name: "breakfast", Amount: 15},
				{Name: "parking", Amount: 10},
			},
		})

		require.NoError(t, err)
		assert.Equal(t, float64(25), res.ExtrasSubtotal)
		assert.Equal(t, float64(225), res.Total)
	})

	t.Run("unknown resource type", func(t *testing.T) {
		mockTypeRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(resourceModel.ResourceType{}, nil)

		_, err := svc.Quote(context.Background(), dto.QuoteRequest{
			TenantID: "tenant-1",
			TypeID:   "type-missing",
			Checkin:  "2026-09-10",
			Checkout: "2026-09-12",
		})

		require.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})

	t.Run("invalid interval", func(t *testing.T) {
		_, err := svc.Quote(context.Background(), dto.QuoteRequest{
			TenantID: "tenant-1",
			TypeID:   "type-1",
			Checkin:  "2026-09-12",
			Checkout: "2026-09-12",
		})

		require.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})

	t.Run("tariff query failure", func(t *testing.T) {
		mockTypeRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(resourceType, nil)

		mockRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errors.New("database error"))

		_, err := svc.Quote(context.Background(), dto.QuoteRequest{
			TenantID: "tenant-1",
			TypeID:   "type-1",
			Checkin:  "2026-09-10",
			Checkout: "2026-09-12",
		})

		require.Error(t, err)
	})
}
