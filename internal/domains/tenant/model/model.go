package model

import "reserva/shared/model"

const (
	TableName  = "tenants"
	EntityName = "tenant"

	FieldID           = "id"
	FieldName         = "name"
	FieldBaseCurrency = "base_currency"
)

// Tenant is the organization boundary. Read-only to the engine; only the base
// currency is consulted, when recording an initial payment.
type Tenant struct {
	ID           string `db:"id"`
	Name         string `db:"name"`
	BaseCurrency string `db:"base_currency"`
	model.Metadata
}
