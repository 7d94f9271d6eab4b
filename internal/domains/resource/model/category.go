package model

import "reserva/shared/model"

const (
	CategoryTableName  = "resource_categories"
	CategoryEntityName = "resource_category"

	CategoryFieldID       = "id"
	CategoryFieldTenantID = "tenant_id"
	CategoryFieldCode     = "code"
	CategoryFieldName     = "name"
)

type ResourceCategory struct {
	ID       string `db:"id"`
	TenantID string `db:"tenant_id"`
	Code     string `db:"code"`
	Name     string `db:"name"`
	model.Metadata
}
