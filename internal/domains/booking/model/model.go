package model

import (
	"reserva/shared/model"
	"time"

	"github.com/jmoiron/sqlx/types"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID          = "id"
	FieldTenantID    = "tenant_id"
	FieldBranchID    = "branch_id"
	FieldCustomerID  = "customer_id"
	FieldResourceID  = "resource_id"
	FieldCheckin     = "checkin"
	FieldCheckout    = "checkout"
	FieldGuests      = "guests"
	FieldStatus      = "status"
	FieldChannel     = "channel"
	FieldTotalPrice  = "total_price"
	FieldNotes       = "notes"
	FieldExtras      = "extras"
	FieldCategoryTag = "category_tag"
)

const (
	StatusTentative  = "tentative"
	StatusConfirmed  = "confirmed"
	StatusCheckedIn  = "checked_in"
	StatusCheckedOut = "checked_out"
	StatusCancelled  = "cancelled"
	StatusNoShow     = "no_show"
)

// Booking is the reservation header. ResourceID is the legacy single-resource
// link: old rows carry it instead of booking_resources join rows, new rows
// mirror their first assignment into it for older readers. Conflict scans
// consult both and dedupe.
type Booking struct {
	ID          string         `db:"id"`
	TenantID    string         `db:"tenant_id"`
	BranchID    string         `db:"branch_id"`
	CustomerID  string         `db:"customer_id"`
	ResourceID  string         `db:"resource_id"`
	Checkin     time.Time      `db:"checkin"`
	Checkout    time.Time      `db:"checkout"`
	Guests      int            `db:"guests"`
	Status      string         `db:"status"`
	Channel     string         `db:"channel"`
	TotalPrice  float64        `db:"total_price"`
	Notes       string         `db:"notes"`
	Extras      types.JSONText `db:"extras"`
	CategoryTag string         `db:"category_tag"`
	model.Metadata
}
