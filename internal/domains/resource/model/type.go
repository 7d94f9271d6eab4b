package model

import "reserva/shared/model"

const (
	TypeTableName  = "resource_types"
	TypeEntityName = "resource_type"

	TypeFieldID         = "id"
	TypeFieldTenantID   = "tenant_id"
	TypeFieldCategoryID = "category_id"
	TypeFieldName       = "name"
	TypeFieldBaseRate   = "base_rate"
	TypeFieldCapacity   = "capacity"
)

// ResourceType carries the static base rate and capacity for a class of
// resources. Read-only to the engine.
type ResourceType struct {
	ID         string  `db:"id"`
	TenantID   string  `db:"tenant_id"`
	CategoryID string  `db:"category_id"`
	Name       string  `db:"name"`
	BaseRate   float64 `db:"base_rate"`
	Capacity   int     `db:"capacity"`
	model.Metadata
}
