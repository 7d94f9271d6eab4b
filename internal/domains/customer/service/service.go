package service

import (
	"context"
	"fmt"
	"reserva/config"
	"reserva/infras/otel"
	"reserva/internal/domains/customer/model"
	"reserva/internal/domains/customer/model/dto"
	"reserva/internal/domains/customer/repository"
	"reserva/shared"
	"reserva/shared/constant"
	gDto "reserva/shared/dto"

	"github.com/rs/zerolog/log"
)

// Customer is the thin directory the booking coordinator resolves
// counterparties against. Search-or-create only; no invariant lives here.
type Customer interface {
	Search(ctx context.Context, tenantID, query string, params gDto.QueryParams) (dto.GetCustomersResponse, error)
	Create(ctx context.Context, req dto.CreateCustomerRequest) (dto.CustomerResponse, error)
}

type serviceImpl struct {
	repo repository.Customer
	cfg  *config.Config
	otel otel.Otel
}

func New(repo repository.Customer, cfg *config.Config, otel otel.Otel) Customer {
	return &serviceImpl{
		repo: repo,
		cfg:  cfg,
		otel: otel,
	}
}

func (s *serviceImpl) Search(ctx context.Context, tenantID, query string, params gDto.QueryParams) (res dto.GetCustomersResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SearchCustomers")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldTenantID,
				Operator: gDto.FilterOperatorEq,
				Value:    tenantID,
				Table:    model.TableName,
			},
		},
	}

	if query != "" {
		filter.Filters = append(filter.Filters, gDto.FilterGroup{
			Operator: gDto.FilterGroupOperatorOr,
			Filters: []any{
				gDto.Filter{
					Field:    model.FieldName,
					ArgName:  "search_name",
					Operator: gDto.FilterOperatorLike,
					Value:    query,
					Table:    model.TableName,
				},
				gDto.Filter{
					Field:    model.FieldEmail,
					ArgName:  "search_email",
					Operator: gDto.FilterOperatorLike,
					Value:    query,
					Table:    model.TableName,
				},
			},
		})
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count customers")

		return res, fmt.Errorf("failed to count customers: %w", err)
	}

	customers, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to search customers")

		return res, fmt.Errorf("failed to search customers: %w", err)
	}

	res.FromModels(customers, total, params.Limit)

	return res, nil
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateCustomerRequest) (res dto.CustomerResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateCustomer")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	customer := req.ToModel(user)

	if err = s.repo.Insert(ctx, customer); err != nil {
		log.Error().Err(err).Msg("failed to create customer")

		return res, fmt.Errorf("failed to create customer: %w", err)
	}

	res.FromModel(customer)

	return res, nil
}

// FilterByIDAndTenant scopes a customer lookup to one tenant, so cross-tenant
// ids never resolve.
func FilterByIDAndTenant(id, tenantID string) gDto.FilterGroup {
	filter := shared.FilterByID(id, model.FieldID, model.TableName)
	filter.Operator = gDto.FilterGroupOperatorAnd
	filter.Filters = append(filter.Filters, gDto.Filter{
		Field:    model.FieldTenantID,
		Operator: gDto.FilterOperatorEq,
		Value:    tenantID,
		Table:    model.TableName,
	})

	return filter
}
