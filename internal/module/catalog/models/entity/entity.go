package entity

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type RoomCategory struct {
	ID                uuid.UUID       `db:"id" json:"id"`
	Name              string          `db:"name" json:"name"`
	Slug              string          `db:"slug" json:"slug"`
	Description       string          `db:"description" json:"description"`
	BasePricePerNight decimal.Decimal `db:"base_price_per_night" json:"base_price_per_night"`
	BaseOccupancy     int             `db:"base_occupancy" json:"base_occupancy"`
	MaxAdults         int             `db:"max_adults" json:"max_adults"`
	MaxChildren       int             `db:"max_children" json:"max_children"`
	ExtraAdultPrice   decimal.Decimal `db:"extra_adult_price" json:"extra_adult_price"`
	ExtraChildPrice   decimal.Decimal `db:"extra_child_price" json:"extra_child_price"`
	TotalRooms        int             `db:"total_rooms" json:"total_rooms"`
	IsActive          bool            `db:"is_active" json:"is_active"`
	CreatedAt         time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt         time.Time       `db:"updated_at" json:"updated_at"`
}

// Validate checks max_adults >= base_occupancy >= 1 and non-negative counts and prices.
func (c RoomCategory) Validate() error {
	switch {
	case strings.TrimSpace(c.Name) == "":
		return fmt.Errorf("name is required")
	case c.BaseOccupancy < 1:
		return fmt.Errorf("base_occupancy must be at least 1")
	case c.MaxAdults < c.BaseOccupancy:
		return fmt.Errorf("max_adults must be greater than or equal to base_occupancy")
	case c.MaxChildren < 0:
		return fmt.Errorf("max_children must not be negative")
	case c.TotalRooms < 0:
		return fmt.Errorf("total_rooms must not be negative")
	case c.BasePricePerNight.IsNegative(), c.ExtraAdultPrice.IsNegative(), c.ExtraChildPrice.IsNegative():
		return fmt.Errorf("prices must not be negative")
	}
	return nil
}

type HousekeepingStatus string

const (
	HousekeepingAvailable   HousekeepingStatus = "available"
	HousekeepingOccupied    HousekeepingStatus = "occupied"
	HousekeepingCleaning    HousekeepingStatus = "cleaning"
	HousekeepingMaintenance HousekeepingStatus = "maintenance"
	HousekeepingOutOfOrder  HousekeepingStatus = "out_of_order"
)

var housekeepingStatuses = map[string]HousekeepingStatus{
	"available":    HousekeepingAvailable,
	"occupied":     HousekeepingOccupied,
	"cleaning":     HousekeepingCleaning,
	"maintenance":  HousekeepingMaintenance,
	"out_of_order": HousekeepingOutOfOrder,
}

func ParseHousekeepingStatus(s string) (HousekeepingStatus, error) {
	st, ok := housekeepingStatuses[s]
	if !ok {
		return "", fmt.Errorf("unknown housekeeping status %q", s)
	}
	return st, nil
}

type Room struct {
	ID                 uuid.UUID          `db:"id" json:"id"`
	RoomCategoryID     uuid.UUID          `db:"room_category_id" json:"room_category_id"`
	RoomNumber         string             `db:"room_number" json:"room_number"`
	Floor              int                `db:"floor" json:"floor"`
	HousekeepingStatus HousekeepingStatus `db:"housekeeping_status" json:"housekeeping_status"`
	IsActive           bool               `db:"is_active" json:"is_active"`
	CreatedAt          time.Time          `db:"created_at" json:"created_at"`
	UpdatedAt          time.Time          `db:"updated_at" json:"updated_at"`
}

// SeasonType is informational only; pricing reads the multiplier.
type SeasonType string

const (
	SeasonPeak    SeasonType = "peak"
	SeasonRegular SeasonType = "regular"
	SeasonOffPeak SeasonType = "off_peak"
)

var seasonTypes = map[string]SeasonType{
	"peak":     SeasonPeak,
	"regular":  SeasonRegular,
	"off_peak": SeasonOffPeak,
}

func ParseSeasonType(s string) (SeasonType, error) {
	st, ok := seasonTypes[s]
	if !ok {
		return "", fmt.Errorf("unknown season type %q", s)
	}
	return st, nil
}

type Season struct {
	ID              uuid.UUID       `db:"id" json:"id"`
	Name            string          `db:"name" json:"name"`
	SeasonType      SeasonType      `db:"season_type" json:"season_type"`
	StartDate       time.Time       `db:"start_date" json:"start_date"`
	EndDate         time.Time       `db:"end_date" json:"end_date"`
	PriceMultiplier decimal.Decimal `db:"price_multiplier" json:"price_multiplier"`
	IsActive        bool            `db:"is_active" json:"is_active"`
	CreatedAt       time.Time       `db:"created_at" json:"created_at"`
}

func (s Season) Validate() error {
	if strings.TrimSpace(s.Name) == "" {
		return fmt.Errorf("name is required")
	}
	if s.EndDate.Before(s.StartDate) {
		return fmt.Errorf("end_date must not be before start_date")
	}
	if !s.PriceMultiplier.IsPositive() {
		return fmt.Errorf("price_multiplier must be positive")
	}
	return nil
}

// Contains reports whether day falls inside the inclusive [start, end] range.
func (s Season) Contains(day time.Time) bool {
	return !day.Before(s.StartDate) && !day.After(s.EndDate)
}

// LengthDays is the inclusive length of the season.
func (s Season) LengthDays() int {
	return int(s.EndDate.Sub(s.StartDate).Hours()/24) + 1
}

type MealPlanCode string

const (
	MealPlanRoomOnly          MealPlanCode = "room_only"
	MealPlanBreakfastIncluded MealPlanCode = "breakfast_included"
	MealPlanHalfBoard         MealPlanCode = "half_board"
	MealPlanFullBoard         MealPlanCode = "full_board"
)

var mealPlanCodes = map[string]MealPlanCode{
	"room_only":          MealPlanRoomOnly,
	"breakfast_included": MealPlanBreakfastIncluded,
	"half_board":         MealPlanHalfBoard,
	"full_board":         MealPlanFullBoard,
}

func ParseMealPlanCode(s string) (MealPlanCode, error) {
	code, ok := mealPlanCodes[s]
	if !ok {
		return "", fmt.Errorf("unknown meal plan %q", s)
	}
	return code, nil
}

type MealPlan struct {
	ID         uuid.UUID       `db:"id" json:"id"`
	Code       MealPlanCode    `db:"code" json:"code"`
	Name       string          `db:"name" json:"name"`
	AdultPrice decimal.Decimal `db:"adult_price" json:"adult_price"`
	ChildPrice decimal.Decimal `db:"child_price" json:"child_price"`
	IsActive   bool            `db:"is_active" json:"is_active"`
}

type TaxConfig struct {
	ID         uuid.UUID       `db:"id" json:"id"`
	Name       string          `db:"name" json:"name"`
	Percentage decimal.Decimal `db:"percentage" json:"percentage"`
	IsActive   bool            `db:"is_active" json:"is_active"`
	CreatedAt  time.Time       `db:"created_at" json:"created_at"`
}

type BlockReason string

const (
	BlockReasonBooking     BlockReason = "booking"
	BlockReasonMaintenance BlockReason = "maintenance"
	BlockReasonManualHold  BlockReason = "manual_hold"
)

var blockReasons = map[string]BlockReason{
	"booking":     BlockReasonBooking,
	"maintenance": BlockReasonMaintenance,
	"manual_hold": BlockReasonManualHold,
}

func ParseBlockReason(s string) (BlockReason, error) {
	r, ok := blockReasons[s]
	if !ok {
		return "", fmt.Errorf("unknown block reason %q", s)
	}
	return r, nil
}

type BlockedDate struct {
	ID          uuid.UUID     `db:"id" json:"id"`
	RoomID      uuid.UUID     `db:"room_id" json:"room_id"`
	BlockedDate time.Time     `db:"blocked_date" json:"blocked_date"`
	Reason      BlockReason   `db:"reason" json:"reason"`
	BookingID   uuid.NullUUID `db:"booking_id" json:"booking_id"`
	Notes       string        `db:"notes" json:"notes"`
	CreatedAt   time.Time     `db:"created_at" json:"created_at"`
}
