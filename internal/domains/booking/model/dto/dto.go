package dto

import (
	"encoding/json"
	"reserva/internal/domains/booking/model"
	"reserva/shared"
	"reserva/shared/constant"
	gDto "reserva/shared/dto"
	gModel "reserva/shared/model"
	"reserva/shared/timezone"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx/types"
)

type CreateBookingRequest struct {
	TenantID      string          `json:"-"`
	BranchID      string          `json:"branch_id"      validate:"omitempty,uuid"`
	CustomerID    string          `json:"customer_id"    validate:"required,uuid"`
	Checkin       string          `json:"checkin"        validate:"required,dateonly"`
	Checkout      string          `json:"checkout"       validate:"required,dateonly"`
	ResourceIDs   []string        `json:"resource_ids"   validate:"required,min=1,dive,uuid"`
	Guests        int             `json:"guests"         validate:"omitempty,min=1"`
	Channel       string          `json:"channel"        validate:"omitempty,max=50"`
	TotalPrice    float64         `json:"total_price"    validate:"omitempty,min=0"`
	Notes         string          `json:"notes"          validate:"omitempty,max=2000"`
	Extras        json.RawMessage `json:"extras"         validate:"omitempty"`
	CategoryTag   string          `json:"category_tag"   validate:"omitempty,max=50"`
	PaymentMethod string          `json:"payment_method" validate:"omitempty,max=50"`
	PaymentAmount float64         `json:"payment_amount" validate:"omitempty,min=0"`
}

func (c *CreateBookingRequest) CheckinDate() time.Time {
	t, _ := time.Parse(constant.DateOnlyFormat, c.Checkin)

	return t
}

func (c *CreateBookingRequest) CheckoutDate() time.Time {
	t, _ := time.Parse(constant.DateOnlyFormat, c.Checkout)

	return t
}

func (c *CreateBookingRequest) ToModel(user string) model.Booking {
	extras := types.JSONText("{}")
	if len(c.Extras) > 0 {
		extras = types.JSONText(c.Extras)
	}

	return model.Booking{
		ID:          uuid.NewString(),
		TenantID:    c.TenantID,
		BranchID:    c.BranchID,
		CustomerID:  c.CustomerID,
		ResourceID:  c.ResourceIDs[0],
		Checkin:     c.CheckinDate(),
		Checkout:    c.CheckoutDate(),
		Guests:      c.Guests,
		Status:      model.StatusConfirmed,
		Channel:     c.Channel,
		TotalPrice:  c.TotalPrice,
		Notes:       c.Notes,
		Extras:      extras,
		CategoryTag: c.CategoryTag,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

// ToResourceModels expands the request into one assignment row per resource,
// stamped with the parent booking's id and status.
func (c *CreateBookingRequest) ToResourceModels(booking model.Booking) []model.BookingResource {
	rows := make([]model.BookingResource, len(c.ResourceIDs))
	for i, resourceID := range c.ResourceIDs {
		rows[i] = model.BookingResource{
			ID:            uuid.NewString(),
			BookingID:     booking.ID,
			ResourceID:    resourceID,
			Checkin:       booking.Checkin,
			Checkout:      booking.Checkout,
			BookingStatus: booking.Status,
			Metadata:      booking.Metadata,
		}
	}

	return rows
}

func (c *CreateBookingRequest) ToPaymentModel(booking model.Booking, currency string) model.Payment {
	return model.Payment{
		ID:        uuid.NewString(),
		TenantID:  booking.TenantID,
		BookingID: booking.ID,
		Amount:    c.PaymentAmount,
		Method:    c.PaymentMethod,
		Currency:  currency,
		Metadata:  booking.Metadata,
	}
}

type UpdateBookingRequest struct {
	TenantID    string          `json:"-"`
	BookingID   string          `json:"-"`
	Checkin     string          `json:"checkin"      validate:"required,dateonly"`
	Checkout    string          `json:"checkout"     validate:"required,dateonly"`
	ResourceIDs []string        `json:"resource_ids" validate:"required,min=1,dive,uuid"`
	Guests      int             `json:"guests"       validate:"omitempty,min=1"  db:"guests"`
	Status      string          `json:"status"       validate:"omitempty,oneof=tentative confirmed checked_in checked_out cancelled no_show" db:"status"`
	Channel     string          `json:"channel"      validate:"omitempty,max=50" db:"channel"`
	TotalPrice  float64         `json:"total_price"  validate:"omitempty,min=0"  db:"total_price"`
	Notes       string          `json:"notes"        validate:"omitempty,max=2000" db:"notes"`
	Extras      json.RawMessage `json:"extras"       validate:"omitempty"`
	CategoryTag string          `json:"category_tag" validate:"omitempty,max=50" db:"category_tag"`
}

func (u *UpdateBookingRequest) CheckinDate() time.Time {
	t, _ := time.Parse(constant.DateOnlyFormat, u.Checkin)

	return t
}

func (u *UpdateBookingRequest) CheckoutDate() time.Time {
	t, _ := time.Parse(constant.DateOnlyFormat, u.Checkout)

	return t
}

// ToFields builds the header update map. Dates and the legacy resource link
// are set explicitly since they are not db-tagged on the request.
func (u *UpdateBookingRequest) ToFields(user string) map[string]any {
	fields := shared.TransformFields(*u, user)
	fields[model.FieldCheckin] = u.CheckinDate()
	fields[model.FieldCheckout] = u.CheckoutDate()
	fields[model.FieldResourceID] = u.ResourceIDs[0]
	if len(u.Extras) > 0 {
		fields[model.FieldExtras] = types.JSONText(u.Extras)
	}

	return fields
}

func (u *UpdateBookingRequest) ToResourceModels(current model.Booking, user string) []model.BookingResource {
	status := current.Status
	if u.Status != "" {
		status = u.Status
	}

	rows := make([]model.BookingResource, len(u.ResourceIDs))
	for i, resourceID := range u.ResourceIDs {
		rows[i] = model.BookingResource{
			ID:            uuid.NewString(),
			BookingID:     current.ID,
			ResourceID:    resourceID,
			Checkin:       u.CheckinDate(),
			Checkout:      u.CheckoutDate(),
			BookingStatus: status,
			Metadata: gModel.Metadata{
				CreatedAt:  timezone.Now(),
				ModifiedAt: timezone.Now(),
				CreatedBy:  user,
				ModifiedBy: user,
			},
		}
	}

	return rows
}

type EditAvailabilityRequest struct {
	TenantID    string   `json:"-"`
	BookingID   string   `json:"-"`
	Checkin     string   `json:"checkin"      validate:"required,dateonly"`
	Checkout    string   `json:"checkout"     validate:"required,dateonly"`
	ResourceIDs []string `json:"resource_ids" validate:"required,min=1,dive,uuid"`
}

func (e *EditAvailabilityRequest) CheckinDate() time.Time {
	t, _ := time.Parse(constant.DateOnlyFormat, e.Checkin)

	return t
}

func (e *EditAvailabilityRequest) CheckoutDate() time.Time {
	t, _ := time.Parse(constant.DateOnlyFormat, e.Checkout)

	return t
}

type EditAvailabilityResponse struct {
	Available bool     `json:"available"`
	Conflicts []string `json:"conflicts,omitempty"`
}

type BookingResponse struct {
	ID          string          `json:"id"`
	TenantID    string          `json:"tenant_id"`
	BranchID    string          `json:"branch_id,omitempty"`
	CustomerID  string          `json:"customer_id"`
	Checkin     string          `json:"checkin"`
	Checkout    string          `json:"checkout"`
	ResourceIDs []string        `json:"resource_ids"`
	Guests      int             `json:"guests"`
	Status      string          `json:"status"`
	Channel     string          `json:"channel,omitempty"`
	TotalPrice  float64         `json:"total_price"`
	Notes       string          `json:"notes,omitempty"`
	Extras      json.RawMessage `json:"extras,omitempty"`
	CategoryTag string          `json:"category_tag,omitempty"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(mod model.Booking, resources []model.BookingResource) {
	r.ID = mod.ID
	r.TenantID = mod.TenantID
	r.BranchID = mod.BranchID
	r.CustomerID = mod.CustomerID
	r.Checkin = mod.Checkin.Format(constant.DateOnlyFormat)
	r.Checkout = mod.Checkout.Format(constant.DateOnlyFormat)
	r.Guests = mod.Guests
	r.Status = mod.Status
	r.Channel = mod.Channel
	r.TotalPrice = mod.TotalPrice
	r.Notes = mod.Notes
	r.CategoryTag = mod.CategoryTag
	r.Metadata.FromModel(mod.Metadata)

	if len(mod.Extras) > 0 {
		r.Extras = json.RawMessage(mod.Extras)
	}

	r.ResourceIDs = make([]string, 0, len(resources))
	for _, row := range resources {
		r.ResourceIDs = append(r.ResourceIDs, row.ResourceID)
	}
	if len(r.ResourceIDs) == 0 && mod.ResourceID != "" {
		r.ResourceIDs = []string{mod.ResourceID}
	}
}

type CreateBookingResponse struct {
	Booking BookingResponse `json:"booking"`
	Warning string          `json:"warning,omitempty"`
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod, nil)
	}
}

// ConflictDetails is the payload attached to resource conflict failures so
// callers can see which resources are taken or blocked.
type ConflictDetails struct {
	ResourceIDs []string `json:"resource_ids"`
}

// BlockedDetails is the payload attached to block failures: which resources
// are held and why.
type BlockedDetails struct {
	ResourceIDs []string `json:"resource_ids"`
	BlockType   string   `json:"block_type"`
	Reason      string   `json:"reason,omitempty"`
}
