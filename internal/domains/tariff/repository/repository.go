package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"reserva/infras/otel"
	"reserva/infras/postgres"
	"reserva/internal/domains/tariff/model"
	"reserva/shared/constant"
	gDto "reserva/shared/dto"
	gRepo "reserva/shared/repository"
	"time"
)

type Tariff interface {
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Tariff, error)
}

type tariffImpl struct {
	gRepo.Repository[model.Tariff]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Tariff {
	return &tariffImpl{
		Repository: gRepo.NewRepository[model.Tariff](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// CoveringFilter matches tariffs of a resource type whose window holds the
// whole stay. Tariffs covering only part of the interval never apply. An
// optional plan name narrows the selection.
func CoveringFilter(tenantID, typeID, plan string, checkin, checkout time.Time) gDto.FilterGroup {
	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldTenantID,
				Operator: gDto.FilterOperatorEq,
				Value:    tenantID,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldTypeID,
				ArgName:  "tariff_type_id",
				Operator: gDto.FilterOperatorEq,
				Value:    typeID,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldDateFrom,
				ArgName:  "tariff_date_from_lte",
				Operator: gDto.FilterOperatorLessEq,
				Value:    checkin.Format(constant.DateOnlyFormat),
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldDateTo,
				ArgName:  "tariff_date_to_gte",
				Operator: gDto.FilterOperatorGreaterEq,
				Value:    checkout.Format(constant.DateOnlyFormat),
				Table:    model.TableName,
			},
		},
	}

	if plan != "" {
		filter.Filters = append(filter.Filters, gDto.Filter{
			Field:    model.FieldName,
			ArgName:  "tariff_plan",
			Operator: gDto.FilterOperatorEq,
			Value:    plan,
			Table:    model.TableName,
		})
	}

	return filter
}
