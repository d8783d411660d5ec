package response

import (
	"reservation-service/internal/module/booking/lifecycle"
	"reservation-service/internal/module/booking/models/entity"
	"reservation-service/internal/pkg/helpers"

	"github.com/shopspring/decimal"
)

type Availability struct {
	RoomCategoryID string `json:"room_category_id"`
	CheckIn        string `json:"check_in"`
	CheckOut       string `json:"check_out"`
	AvailableUnits int    `json:"available_units"`
}

type AvailableRoom struct {
	ID         string `json:"id"`
	RoomNumber string `json:"room_number"`
	Floor      int    `json:"floor"`
}

type Quote struct {
	RoomCategoryID   string          `json:"room_category_id"`
	CheckIn          string          `json:"check_in"`
	CheckOut         string          `json:"check_out"`
	NumRooms         int             `json:"num_rooms"`
	Nights           int             `json:"nights"`
	SeasonMultiplier decimal.Decimal `json:"season_multiplier"`
	RoomTotal        decimal.Decimal `json:"room_total"`
	ExtraAdults      int             `json:"extra_adults"`
	ExtraChildren    int             `json:"extra_children"`
	ExtraGuestTotal  decimal.Decimal `json:"extra_guest_total"`
	MealPlan         string          `json:"meal_plan"`
	MealPlanTotal    decimal.Decimal `json:"meal_plan_total"`
	Subtotal         decimal.Decimal `json:"subtotal"`
	TaxRate          decimal.Decimal `json:"tax_rate"`
	Taxes            decimal.Decimal `json:"taxes"`
	GrandTotal       decimal.Decimal `json:"grand_total"`
	Currency         string          `json:"currency"`
}

type Booking struct {
	ID               string                 `json:"id"`
	BookingReference string                 `json:"booking_reference"`
	GuestName        string                 `json:"guest_name"`
	GuestEmail       string                 `json:"guest_email"`
	GuestPhone       string                 `json:"guest_phone,omitempty"`
	GuestCountry     string                 `json:"guest_country,omitempty"`
	RoomCategoryID   string                 `json:"room_category_id"`
	CheckIn          string                 `json:"check_in"`
	CheckOut         string                 `json:"check_out"`
	NumAdults        int                    `json:"num_adults"`
	NumChildren      int                    `json:"num_children"`
	NumRooms         int                    `json:"num_rooms"`
	MealPlan         string                 `json:"meal_plan"`
	Status           string                 `json:"status"`
	AllowedStatuses  []string               `json:"allowed_statuses"`
	IsEnquiryOnly    bool                   `json:"is_enquiry_only"`
	Pricing          entity.PricingSnapshot `json:"pricing"`
	PaymentStatus    string                 `json:"payment_status"`
	SpecialRequests  string                 `json:"special_requests,omitempty"`
	InternalNotes    string                 `json:"internal_notes,omitempty"`
	CreatedAt        string                 `json:"created_at"`
	UpdatedAt        string                 `json:"updated_at"`
}

func FromEntity(b entity.Booking) Booking {
	allowed := []string{}
	for _, st := range lifecycle.AllowedTargets(b.Status) {
		allowed = append(allowed, string(st))
	}

	return Booking{
		ID:               b.ID.String(),
		BookingReference: b.BookingReference,
		GuestName:        b.GuestName,
		GuestEmail:       b.GuestEmail,
		GuestPhone:       b.GuestPhone,
		GuestCountry:     b.GuestCountry,
		RoomCategoryID:   b.RoomCategoryID.String(),
		CheckIn:          b.CheckInDate.Format(helpers.DateLayout),
		CheckOut:         b.CheckOutDate.Format(helpers.DateLayout),
		NumAdults:        b.NumAdults,
		NumChildren:      b.NumChildren,
		NumRooms:         b.NumRooms,
		MealPlan:         string(b.MealPlan),
		Status:           string(b.Status),
		AllowedStatuses:  allowed,
		IsEnquiryOnly:    b.IsEnquiryOnly,
		Pricing:          b.PricingSnapshot,
		PaymentStatus:    string(b.PaymentStatus),
		SpecialRequests:  b.SpecialRequests,
		InternalNotes:    b.InternalNotes,
		CreatedAt:        b.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt:        b.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
}

type BookingList struct {
	Items    []Booking `json:"items"`
	Page     int       `json:"page"`
	PageSize int       `json:"page_size"`
}

type PaymentOrder struct {
	BookingID        string          `json:"booking_id"`
	PaymentReference string          `json:"payment_reference"`
	ClientSecret     string          `json:"client_secret"`
	Amount           decimal.Decimal `json:"amount"`
	Currency         string          `json:"currency"`
}
