package dto

import (
	"reserva/internal/domains/resource/model"
)

type AvailabilityRequest struct {
	TenantID string `json:"-"        validate:"required"`
	Category string `json:"category" validate:"required"`
	Checkin  string `json:"checkin"  validate:"required,dateonly"`
	Checkout string `json:"checkout" validate:"required,dateonly"`
}

// ResourceAvailability annotates one candidate resource. The full candidate
// set is always returned so callers can show why a unit is unavailable
// instead of silently hiding it.
type ResourceAvailability struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	TypeID      string `json:"type_id"`
	TypeName    string `json:"type_name"`
	IsAvailable bool   `json:"is_available"`
	Blocked     bool   `json:"blocked"`
	BlockType   string `json:"block_type,omitempty"`
	BlockReason string `json:"block_reason,omitempty"`
}

func (r *ResourceAvailability) FromModel(model model.Resource) {
	r.ID = model.ID
	r.Label = model.Label
	r.TypeID = model.TypeID
	r.TypeName = model.TypeName
}

type AvailabilityResponse struct {
	Checkin   string                 `json:"checkin"`
	Checkout  string                 `json:"checkout"`
	Resources []ResourceAvailability `json:"resources"`
}
