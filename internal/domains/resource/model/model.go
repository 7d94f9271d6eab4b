package model

import "reserva/shared/model"

const (
	TableName  = "resources"
	EntityName = "resource"

	FieldID       = "id"
	FieldTenantID = "tenant_id"
	FieldTypeID   = "type_id"
	FieldLabel    = "label"
	FieldStatus   = "status"
)

const (
	StatusActive      = "active"
	StatusMaintenance = "maintenance"
)

// Resource is one concrete bookable unit ("Room 204", "Spot B12"). The status
// flag is independent of bookings: a unit under maintenance never appears in
// availability results at all.
type Resource struct {
	ID         string `db:"id"`
	TenantID   string `db:"tenant_id"`
	TypeID     string `db:"type_id"`
	Label      string `db:"label"`
	Status     string `db:"status"`
	TypeName   string `db:"type_name"   table:"resource_types" column:"name"`
	CategoryID string `db:"category_id" table:"resource_types"`
	model.Metadata
}

func (Resource) GetJoinQuery() string {
	return "JOIN resource_types ON resource_types.id = resources.type_id"
}
