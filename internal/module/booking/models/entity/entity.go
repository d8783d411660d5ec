package entity

import (
	"database/sql"
	"fmt"
	"time"

	catalog "reservation-service/internal/module/catalog/models/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusNewEnquiry       Status = "new_enquiry"
	StatusEnquiryResponded Status = "enquiry_responded"
	StatusQuoteSent        Status = "quote_sent"
	StatusBookingConfirmed Status = "booking_confirmed"
	StatusCheckedIn        Status = "checked_in"
	StatusCheckedOut       Status = "checked_out"
	StatusCancelled        Status = "cancelled"
	StatusNoShow           Status = "no_show"
)

var statuses = map[string]Status{
	"new_enquiry":       StatusNewEnquiry,
	"enquiry_responded": StatusEnquiryResponded,
	"quote_sent":        StatusQuoteSent,
	"booking_confirmed": StatusBookingConfirmed,
	"checked_in":        StatusCheckedIn,
	"checked_out":       StatusCheckedOut,
	"cancelled":         StatusCancelled,
	"no_show":           StatusNoShow,
}

func ParseStatus(s string) (Status, error) {
	st, ok := statuses[s]
	if !ok {
		return "", fmt.Errorf("unknown booking status %q", s)
	}
	return st, nil
}

// HoldsInventory reports whether a booking in this status occupies rooms.
func (s Status) HoldsInventory() bool {
	switch s {
	case StatusBookingConfirmed, StatusCheckedIn, StatusCheckedOut:
		return true
	}
	return false
}

type PaymentStatus string

const (
	PaymentUnpaid   PaymentStatus = "unpaid"
	PaymentPending  PaymentStatus = "pending"
	PaymentPaid     PaymentStatus = "paid"
	PaymentFailed   PaymentStatus = "failed"
	PaymentRefunded PaymentStatus = "refunded"
)

// PricingSnapshot is frozen on the booking at creation.
type PricingSnapshot struct {
	Nights           int             `db:"nights" json:"nights"`
	SeasonMultiplier decimal.Decimal `db:"season_multiplier" json:"season_multiplier"`
	BasePrice        decimal.Decimal `db:"base_price" json:"base_price"`
	ExtrasTotal      decimal.Decimal `db:"extras_total" json:"extras_total"`
	MealPlanTotal    decimal.Decimal `db:"meal_plan_total" json:"meal_plan_total"`
	DiscountAmount   decimal.Decimal `db:"discount_amount" json:"discount_amount"`
	Subtotal         decimal.Decimal `db:"subtotal" json:"subtotal"`
	TaxRate          decimal.Decimal `db:"tax_rate" json:"tax_rate"`
	Taxes            decimal.Decimal `db:"taxes" json:"taxes"`
	GrandTotal       decimal.Decimal `db:"grand_total" json:"grand_total"`
	Currency         string          `db:"currency" json:"currency"`
}

type Booking struct {
	ID               uuid.UUID            `db:"id"`
	BookingReference string               `db:"booking_reference"`
	UserID           uuid.NullUUID        `db:"user_id"`
	GuestName        string               `db:"guest_name"`
	GuestEmail       string               `db:"guest_email"`
	GuestPhone       string               `db:"guest_phone"`
	GuestCountry     string               `db:"guest_country"`
	CheckInDate      time.Time            `db:"check_in_date"`
	CheckOutDate     time.Time            `db:"check_out_date"`
	NumAdults        int                  `db:"num_adults"`
	NumChildren      int                  `db:"num_children"`
	NumRooms         int                  `db:"num_rooms"`
	RoomCategoryID   uuid.UUID            `db:"room_category_id"`
	MealPlan         catalog.MealPlanCode `db:"meal_plan"`
	Status           Status               `db:"status"`
	IsEnquiryOnly    bool                 `db:"is_enquiry_only"`
	PricingSnapshot
	PaymentStatus    PaymentStatus  `db:"payment_status"`
	PaymentReference sql.NullString `db:"payment_reference"`
	SpecialRequests  string         `db:"special_requests"`
	InternalNotes    string         `db:"internal_notes"`
	CreatedAt        time.Time      `db:"created_at"`
	UpdatedAt        time.Time      `db:"updated_at"`
}

// CoversNight reports whether the guest occupies the room on night d.
// Checkout is exclusive: [check_in, check_out).
func (b Booking) CoversNight(d time.Time) bool {
	return !d.Before(b.CheckInDate) && d.Before(b.CheckOutDate)
}

type BookingFilter struct {
	Status         Status
	RoomCategoryID uuid.NullUUID
	From           time.Time
	To             time.Time
	Limit          int
	Offset         int
}
