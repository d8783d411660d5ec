package request

import (
	"github.com/shopspring/decimal"
)

type RoomCategory struct {
	Name              string          `json:"name" validate:"required,max=120"`
	Slug              string          `json:"slug" validate:"omitempty,max=140"`
	Description       string          `json:"description"`
	BasePricePerNight decimal.Decimal `json:"base_price_per_night"`
	BaseOccupancy     int             `json:"base_occupancy" validate:"required,min=1"`
	MaxAdults         int             `json:"max_adults" validate:"required,min=1"`
	MaxChildren       int             `json:"max_children" validate:"min=0"`
	ExtraAdultPrice   decimal.Decimal `json:"extra_adult_price"`
	ExtraChildPrice   decimal.Decimal `json:"extra_child_price"`
	TotalRooms        int             `json:"total_rooms" validate:"min=0"`
	IsActive          *bool           `json:"is_active"`
}

type Room struct {
	RoomNumber string `json:"room_number" validate:"required,max=20"`
	Floor      int    `json:"floor"`
	IsActive   *bool  `json:"is_active"`
}

type HousekeepingStatus struct {
	Status string `json:"status" validate:"required,oneof=available occupied cleaning maintenance out_of_order"`
}

type Season struct {
	Name            string          `json:"name" validate:"required"`
	SeasonType      string          `json:"season_type" validate:"required,oneof=peak regular off_peak"`
	StartDate       string          `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate         string          `json:"end_date" validate:"required,datetime=2006-01-02"`
	PriceMultiplier decimal.Decimal `json:"price_multiplier"`
	IsActive        *bool           `json:"is_active"`
}

type MealPlan struct {
	Code       string          `json:"code" validate:"required,oneof=room_only breakfast_included half_board full_board"`
	Name       string          `json:"name" validate:"required"`
	AdultPrice decimal.Decimal `json:"adult_price"`
	ChildPrice decimal.Decimal `json:"child_price"`
	IsActive   *bool           `json:"is_active"`
}

type TaxConfig struct {
	Name       string          `json:"name" validate:"required"`
	Percentage decimal.Decimal `json:"percentage"`
}

// BlockedDates blocks RoomID for every date in [From, To).
type BlockedDates struct {
	RoomID string `json:"room_id" validate:"required,uuid"`
	From   string `json:"from" validate:"required,datetime=2006-01-02"`
	To     string `json:"to" validate:"required,datetime=2006-01-02"`
	Reason string `json:"reason" validate:"required,oneof=maintenance manual_hold"`
	Notes  string `json:"notes"`
}
