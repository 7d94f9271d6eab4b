package dto

import (
	"reserva/shared/constant"
	"time"
)

const (
	RateSourceTariff   = "tariff"
	RateSourceBaseRate = "base_rate"
)

type ExtraFee struct {
	Name   string  `json:"name"   validate:"required,max=100"`
	Amount float64 `json:"amount" validate:"min=0"`
}

type QuoteRequest struct {
	TenantID string     `json:"-"`
	TypeID   string     `json:"type_id"  validate:"required,uuid"`
	Checkin  string     `json:"checkin"  validate:"required,dateonly"`
	Checkout string     `json:"checkout" validate:"required,dateonly"`
	Units    int        `json:"units"    validate:"omitempty,min=1"`
	Plan     string     `json:"plan"     validate:"omitempty,max=100"`
	Extras   []ExtraFee `json:"extras"   validate:"omitempty,dive"`
}

func (q *QuoteRequest) CheckinDate() time.Time {
	t, _ := time.Parse(constant.DateOnlyFormat, q.Checkin)

	return t
}

func (q *QuoteRequest) CheckoutDate() time.Time {
	t, _ := time.Parse(constant.DateOnlyFormat, q.Checkout)

	return t
}

func (q *QuoteRequest) ExtrasSubtotal() float64 {
	var subtotal float64
	for _, extra := range q.Extras {
		subtotal += extra.Amount
	}

	return subtotal
}

// QuoteResponse is the price breakdown for one stay. RateSource tells whether
// DailyRate came from a covering tariff or the type's base rate.
type QuoteResponse struct {
	TypeID         string  `json:"type_id"`
	Checkin        string  `json:"checkin"`
	Checkout       string  `json:"checkout"`
	Nights         int     `json:"nights"`
	Units          int     `json:"units"`
	DailyRate      float64 `json:"daily_rate"`
	RateSource     string  `json:"rate_source"`
	ExtrasSubtotal float64 `json:"extras_subtotal"`
	Total          float64 `json:"total"`
}
