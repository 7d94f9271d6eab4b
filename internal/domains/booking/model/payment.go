package model

import "reserva/shared/model"

const (
	PaymentTableName  = "payments"
	PaymentEntityName = "payment"

	PaymentFieldID        = "id"
	PaymentFieldTenantID  = "tenant_id"
	PaymentFieldBookingID = "booking_id"
	PaymentFieldAmount    = "amount"
	PaymentFieldMethod    = "method"
	PaymentFieldCurrency  = "currency"
)

// Payment is the optional initial deposit recorded alongside a new booking.
// Best-effort: a failed insert never rolls the booking back.
type Payment struct {
	ID        string  `db:"id"`
	TenantID  string  `db:"tenant_id"`
	BookingID string  `db:"booking_id"`
	Amount    float64 `db:"amount"`
	Method    string  `db:"method"`
	Currency  string  `db:"currency"`
	model.Metadata
}
