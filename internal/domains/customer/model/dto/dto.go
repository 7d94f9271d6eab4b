package dto

import (
	"reserva/internal/domains/customer/model"
	"reserva/shared"
	gDto "reserva/shared/dto"
	gModel "reserva/shared/model"
	"reserva/shared/timezone"

	"github.com/google/uuid"
)

type CreateCustomerRequest struct {
	TenantID string `json:"-"`
	Name     string `json:"name"  validate:"required,max=150"`
	Email    string `json:"email" validate:"omitempty,email,max=150"`
	Phone    string `json:"phone" validate:"omitempty,max=30"`
}

func (c *CreateCustomerRequest) ToModel(user string) model.Customer {
	return model.Customer{
		ID:       uuid.NewString(),
		TenantID: c.TenantID,
		Name:     c.Name,
		Email:    c.Email,
		Phone:    c.Phone,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type CustomerResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	gDto.Metadata
}

func (r *CustomerResponse) FromModel(model model.Customer) {
	r.ID = model.ID
	r.Name = model.Name
	r.Email = model.Email
	r.Phone = model.Phone
	r.Metadata.FromModel(model.Metadata)
}

type GetCustomersResponse struct {
	Customers []CustomerResponse `json:"customers"`
	TotalPage int                `json:"total_page"`
	TotalData int                `json:"total_data"`
}

func (r *GetCustomersResponse) FromModels(models []model.Customer, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Customers = make([]CustomerResponse, len(models))
	for i, mod := range models {
		r.Customers[i].FromModel(mod)
	}
}
