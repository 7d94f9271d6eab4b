package model

import (
	"reserva/shared/model"
	"time"
)

const (
	ResourceTableName  = "booking_resources"
	ResourceEntityName = "booking_resource"

	ResourceFieldID            = "id"
	ResourceFieldBookingID     = "booking_id"
	ResourceFieldResourceID    = "resource_id"
	ResourceFieldCheckin       = "checkin"
	ResourceFieldCheckout      = "checkout"
	ResourceFieldBookingStatus = "booking_status"
)

// BookingResource is one resource assignment of a booking. booking_status is
// a denormalized copy of the parent status so the storage-level exclusion
// constraint can skip cancelled bookings without a join; the coordinator keeps
// it in sync on every status change.
type BookingResource struct {
	ID            string    `db:"id"`
	BookingID     string    `db:"booking_id"`
	ResourceID    string    `db:"resource_id"`
	Checkin       time.Time `db:"checkin"`
	Checkout      time.Time `db:"checkout"`
	BookingStatus string    `db:"booking_status"`
	model.Metadata
}
