package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"reserva/infras/otel"
	"reserva/infras/postgres"
	"reserva/internal/domains/tenant/model"
	gDto "reserva/shared/dto"
	gRepo "reserva/shared/repository"
)

type Tenant interface {
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Tenant, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Tenant]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Tenant {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Tenant](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
