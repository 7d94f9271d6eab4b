package model

import "reserva/shared/model"

const (
	TableName  = "customers"
	EntityName = "customer"

	FieldID       = "id"
	FieldTenantID = "tenant_id"
	FieldName     = "name"
	FieldEmail    = "email"
	FieldPhone    = "phone"
)

type Customer struct {
	ID       string `db:"id"`
	TenantID string `db:"tenant_id"`
	Name     string `db:"name"`
	Email    string `db:"email"`
	Phone    string `db:"phone"`
	model.Metadata
}
