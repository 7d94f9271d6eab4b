package model

import (
	"reserva/shared/model"
	"time"
)

const (
	TableName  = "tariffs"
	EntityName = "tariff"

	FieldID        = "id"
	FieldTenantID  = "tenant_id"
	FieldTypeID    = "resource_type_id"
	FieldName      = "name"
	FieldDailyRate = "daily_rate"
	FieldDateFrom  = "date_from"
	FieldDateTo    = "date_to"
)

// Tariff is a seasonal price window for one resource type. A tariff applies
// to a stay only when [date_from, date_to] covers the whole interval.
type Tariff struct {
	ID        string    `db:"id"`
	TenantID  string    `db:"tenant_id"`
	TypeID    string    `db:"resource_type_id"`
	Name      string    `db:"name"`
	DailyRate float64   `db:"daily_rate"`
	DateFrom  time.Time `db:"date_from"`
	DateTo    time.Time `db:"date_to"`
	model.Metadata
}
