package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"reserva/infras/otel"
	"reserva/infras/postgres"
	"reserva/internal/domains/booking/model"
	"reserva/shared/constant"
	gDto "reserva/shared/dto"
	"reserva/shared/logger"
	gRepo "reserva/shared/repository"
	"time"
)

type Booking interface {
	Insert(ctx context.Context, model model.Booking) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Booking, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Booking, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type BookingResource interface {
	InsertBulk(ctx context.Context, models []model.BookingResource) error
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.BookingResource, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Replace(ctx context.Context, bookingID string, rows []model.BookingResource) error
}

type Payment interface {
	Insert(ctx context.Context, model model.Payment) error
}

type bookingImpl struct {
	gRepo.Repository[model.Booking]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	return &bookingImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

type bookingResourceImpl struct {
	gRepo.Repository[model.BookingResource]
	db   *postgres.Connection
	otel otel.Otel
}

func NewBookingResource(db *postgres.Connection, otel otel.Otel) BookingResource {
	return &bookingResourceImpl{
		Repository: gRepo.NewRepository[model.BookingResource](model.ResourceEntityName, model.ResourceTableName, model.ResourceFieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// Replace swaps a booking's full assignment set in one transaction. Partial
// row patches are unsupported; delete-and-reinsert keeps the overlap
// constraint check simple.
func (repo *bookingResourceImpl) Replace(ctx context.Context, bookingID string, rows []model.BookingResource) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking_resource.Replace")
	defer scope.End()
	defer scope.TraceIfError(err)

	tx, err := repo.db.Write.Beginx()
	if err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to begin resource replace: %w", err)
	}

	defer func() {
		if err != nil {
			if rollbackErr := tx.Rollback(); rollbackErr != nil {
				logger.ErrorWithStack(rollbackErr)
			}
		}
	}()

	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.ResourceFieldBookingID,
				Operator: gDto.FilterOperatorEq,
				Value:    bookingID,
				Table:    model.ResourceTableName,
			},
		},
	}

	if err = repo.DeleteTx(ctx, tx, filter); err != nil {
		return fmt.Errorf("failed to delete previous resource assignments: %w", err)
	}

	if err = repo.InsertBulkTx(ctx, tx, rows); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to commit resource replace: %w", err)
	}

	return nil
}

type paymentImpl struct {
	gRepo.Repository[model.Payment]
	db   *postgres.Connection
	otel otel.Otel
}

func NewPayment(db *postgres.Connection, otel otel.Otel) Payment {
	return &paymentImpl{
		Repository: gRepo.NewRepository[model.Payment](model.PaymentEntityName, model.PaymentTableName, model.PaymentFieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// OverlapFilter matches assignment rows of non-cancelled bookings whose
// half-open [checkin, checkout) range touches the requested one. A row ending
// the day the request starts never matches: same-day turnover is legal.
// excludeBookingID removes a booking's own rows so it never conflicts with
// itself.
func OverlapFilter(resourceIDs []string, checkin, checkout time.Time, excludeBookingID string) gDto.FilterGroup {
	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.ResourceFieldResourceID,
				ArgName:  "assignment_resource_id",
				Operator: gDto.FilterOperatorIn,
				Value:    resourceIDs,
				Table:    model.ResourceTableName,
			},
			gDto.Filter{
				Field:    model.ResourceFieldBookingStatus,
				ArgName:  "assignment_status_ne",
				Operator: gDto.FilterOperatorNotEq,
				Value:    model.StatusCancelled,
				Table:    model.ResourceTableName,
			},
			gDto.Filter{
				Field:    model.ResourceFieldCheckin,
				ArgName:  "assignment_checkin_lt",
				Operator: gDto.FilterOperatorLess,
				Value:    checkout.Format(constant.DateOnlyFormat),
				Table:    model.ResourceTableName,
			},
			gDto.Filter{
				Field:    model.ResourceFieldCheckout,
				ArgName:  "assignment_checkout_gt",
				Operator: gDto.FilterOperatorGreater,
				Value:    checkin.Format(constant.DateOnlyFormat),
				Table:    model.ResourceTableName,
			},
		},
	}

	if excludeBookingID != "" {
		filter.Filters = append(filter.Filters, gDto.Filter{
			Field:    model.ResourceFieldBookingID,
			ArgName:  "assignment_booking_ne",
			Operator: gDto.FilterOperatorNotEq,
			Value:    excludeBookingID,
			Table:    model.ResourceTableName,
		})
	}

	return filter
}

// DirectOverlapFilter is the same check against headers that carry a legacy
// direct resource link instead of assignment rows.
func DirectOverlapFilter(resourceIDs []string, checkin, checkout time.Time, excludeBookingID string) gDto.FilterGroup {
	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldResourceID,
				ArgName:  "direct_resource_id",
				Operator: gDto.FilterOperatorIn,
				Value:    resourceIDs,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldStatus,
				ArgName:  "direct_status_ne",
				Operator: gDto.FilterOperatorNotEq,
				Value:    model.StatusCancelled,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldCheckin,
				ArgName:  "direct_checkin_lt",
				Operator: gDto.FilterOperatorLess,
				Value:    checkout.Format(constant.DateOnlyFormat),
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldCheckout,
				ArgName:  "direct_checkout_gt",
				Operator: gDto.FilterOperatorGreater,
				Value:    checkin.Format(constant.DateOnlyFormat),
				Table:    model.TableName,
			},
		},
	}

	if excludeBookingID != "" {
		filter.Filters = append(filter.Filters, gDto.Filter{
			Field:    model.FieldID,
			ArgName:  "direct_booking_ne",
			Operator: gDto.FilterOperatorNotEq,
			Value:    excludeBookingID,
			Table:    model.TableName,
		})
	}

	return filter
}
