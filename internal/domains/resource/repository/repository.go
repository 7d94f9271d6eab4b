package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"reserva/infras/otel"
	"reserva/infras/postgres"
	"reserva/internal/domains/resource/model"
	"reserva/shared/constant"
	gDto "reserva/shared/dto"
	gRepo "reserva/shared/repository"
	"time"
)

type Resource interface {
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Resource, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Resource, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
}

type ResourceType interface {
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.ResourceType, error)
}

type ResourceCategory interface {
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.ResourceCategory, error)
}

type ResourceBlock interface {
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.ResourceBlock, error)
}

type resourceImpl struct {
	gRepo.Repository[model.Resource]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Resource {
	return &resourceImpl{
		Repository: gRepo.NewRepository[model.Resource](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

type resourceTypeImpl struct {
	gRepo.Repository[model.ResourceType]
	db   *postgres.Connection
	otel otel.Otel
}

func NewResourceType(db *postgres.Connection, otel otel.Otel) ResourceType {
	return &resourceTypeImpl{
		Repository: gRepo.NewRepository[model.ResourceType](model.TypeEntityName, model.TypeTableName, model.TypeFieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

type resourceCategoryImpl struct {
	gRepo.Repository[model.ResourceCategory]
	db   *postgres.Connection
	otel otel.Otel
}

func NewResourceCategory(db *postgres.Connection, otel otel.Otel) ResourceCategory {
	return &resourceCategoryImpl{
		Repository: gRepo.NewRepository[model.ResourceCategory](model.CategoryEntityName, model.CategoryTableName, model.CategoryFieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

type resourceBlockImpl struct {
	gRepo.Repository[model.ResourceBlock]
	db   *postgres.Connection
	otel otel.Otel
}

func NewResourceBlock(db *postgres.Connection, otel otel.Otel) ResourceBlock {
	return &resourceBlockImpl{
		Repository: gRepo.NewRepository[model.ResourceBlock](model.BlockEntityName, model.BlockTableName, model.BlockFieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// BlockOverlapFilter matches blocks whose inclusive [date_from, date_to] hold
// touches any day of the requested stay. A block ending the day a booking
// starts still matches; block bounds are inclusive by convention.
func BlockOverlapFilter(tenantID string, resourceIDs []string, checkin, checkout time.Time) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.BlockFieldTenantID,
				Operator: gDto.FilterOperatorEq,
				Value:    tenantID,
				Table:    model.BlockTableName,
			},
			gDto.Filter{
				Field:    model.BlockFieldResourceID,
				ArgName:  "block_resource_id",
				Operator: gDto.FilterOperatorIn,
				Value:    resourceIDs,
				Table:    model.BlockTableName,
			},
			gDto.Filter{
				Field:    model.BlockFieldDateFrom,
				ArgName:  "block_date_from_lte",
				Operator: gDto.FilterOperatorLessEq,
				Value:    checkout.Format(constant.DateOnlyFormat),
				Table:    model.BlockTableName,
			},
			gDto.Filter{
				Field:    model.BlockFieldDateTo,
				ArgName:  "block_date_to_gte",
				Operator: gDto.FilterOperatorGreaterEq,
				Value:    checkin.Format(constant.DateOnlyFormat),
				Table:    model.BlockTableName,
			},
		},
	}
}
