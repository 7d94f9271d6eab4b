package model

import (
	"reserva/shared/model"
	"time"
)

const (
	BlockTableName  = "resource_blocks"
	BlockEntityName = "resource_block"

	BlockFieldID         = "id"
	BlockFieldTenantID   = "tenant_id"
	BlockFieldResourceID = "resource_id"
	BlockFieldBlockType  = "block_type"
	BlockFieldReason     = "reason"
	BlockFieldDateFrom   = "date_from"
	BlockFieldDateTo     = "date_to"
)

// ResourceBlock is a calendar-day hold placed on a resource out-of-band
// (maintenance, owner hold). Bounds are inclusive on both ends, unlike the
// half-open booking convention. Read-only to the engine.
type ResourceBlock struct {
	ID         string    `db:"id"`
	TenantID   string    `db:"tenant_id"`
	ResourceID string    `db:"resource_id"`
	BlockType  string    `db:"block_type"`
	Reason     string    `db:"reason"`
	DateFrom   time.Time `db:"date_from"`
	DateTo     time.Time `db:"date_to"`
	model.Metadata
}
