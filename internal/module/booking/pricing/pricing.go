// Package pricing computes deterministic, itemized stay quotes from room
// rates, seasonal multipliers, occupancy surcharges, meal plans and tax.
package pricing

import (
	"sort"
	"time"

	"reservation-service/internal/module/booking/models/entity"
	catalog "reservation-service/internal/module/catalog/models/entity"
	"reservation-service/internal/pkg/errors"
	"reservation-service/internal/pkg/helpers"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Rules is the pricing-rule state a quote is computed against.
type Rules struct {
	Seasons    []catalog.Season
	TaxConfigs []catalog.TaxConfig
}

type Request struct {
	Category    catalog.RoomCategory
	CheckIn     time.Time
	CheckOut    time.Time
	NumAdults   int
	NumChildren int
	// NumRooms scales the room rate and the included occupancy; 0 means 1.
	NumRooms int
	MealPlan catalog.MealPlan
}

// Breakdown carries every unrounded intermediate of a quote.
type Breakdown struct {
	Nights           int             `json:"nights"`
	SeasonMultiplier decimal.Decimal `json:"season_multiplier"`
	RoomTotal        decimal.Decimal `json:"room_total"`
	ExtraAdults      int             `json:"extra_adults"`
	ExtraChildren    int             `json:"extra_children"`
	ExtraGuestTotal  decimal.Decimal `json:"extra_guest_total"`
	MealPlanTotal    decimal.Decimal `json:"meal_plan_total"`
	Subtotal         decimal.Decimal `json:"subtotal"`
	TaxRate          decimal.Decimal `json:"tax_rate"`
	Taxes            decimal.Decimal `json:"taxes"`
	GrandTotal       decimal.Decimal `json:"grand_total"`
}

// Quote prices NumRooms rooms of the category for [CheckIn, CheckOut).
// Occupancy limits are not checked here.
func Quote(req Request, rules Rules) (Breakdown, error) {
	nights := helpers.NightsBetween(req.CheckIn, req.CheckOut)
	if nights <= 0 {
		return Breakdown{}, errors.InvalidInput("stay must be at least one night")
	}
	if req.NumAdults < 1 {
		return Breakdown{}, errors.InvalidInput("at least one adult is required")
	}
	if req.NumChildren < 0 {
		return Breakdown{}, errors.InvalidInput("num_children must not be negative")
	}
	rooms := req.NumRooms
	if rooms == 0 {
		rooms = 1
	}
	if rooms < 0 {
		return Breakdown{}, errors.InvalidInput("num_rooms must be positive")
	}

	n := decimal.NewFromInt(int64(nights))
	multiplier := SeasonMultiplier(rules.Seasons, helpers.NormalizeDate(req.CheckIn))

	roomTotal := req.Category.BasePricePerNight.Mul(n).Mul(multiplier).Mul(decimal.NewFromInt(int64(rooms)))

	extraAdults := req.NumAdults - req.Category.BaseOccupancy*rooms
	if extraAdults < 0 {
		extraAdults = 0
	}
	// children always pay the surcharge; base_occupancy covers adults only
	extraChildren := req.NumChildren
	extraGuestTotal := req.Category.ExtraAdultPrice.Mul(decimal.NewFromInt(int64(extraAdults))).
		Add(req.Category.ExtraChildPrice.Mul(decimal.NewFromInt(int64(extraChildren)))).
		Mul(n)

	mealPlanTotal := req.MealPlan.AdultPrice.Mul(decimal.NewFromInt(int64(req.NumAdults))).
		Add(req.MealPlan.ChildPrice.Mul(decimal.NewFromInt(int64(req.NumChildren)))).
		Mul(n)

	subtotal := roomTotal.Add(extraGuestTotal).Add(mealPlanTotal)

	taxRate := TaxRate(rules.TaxConfigs)
	taxes := subtotal.Mul(taxRate).Div(hundred).Round(0)

	return Breakdown{
		Nights:           nights,
		SeasonMultiplier: multiplier,
		RoomTotal:        roomTotal,
		ExtraAdults:      extraAdults,
		ExtraChildren:    extraChildren,
		ExtraGuestTotal:  extraGuestTotal,
		MealPlanTotal:    mealPlanTotal,
		Subtotal:         subtotal,
		TaxRate:          taxRate,
		Taxes:            taxes,
		GrandTotal:       subtotal.Add(taxes),
	}, nil
}

// SeasonMultiplier picks the active season containing day. Overlaps resolve
// to the shortest range, then the most recently created, then the lowest id.
// No match yields 1.
func SeasonMultiplier(seasons []catalog.Season, day time.Time) decimal.Decimal {
	s, ok := ApplicableSeason(seasons, day)
	if !ok {
		return decimal.NewFromInt(1)
	}
	return s.PriceMultiplier
}

func ApplicableSeason(seasons []catalog.Season, day time.Time) (catalog.Season, bool) {
	var candidates []catalog.Season
	for _, s := range seasons {
		if s.IsActive && s.Contains(day) {
			candidates = append(candidates, s)
		}
	}
	if len(candidates) == 0 {
		return catalog.Season{}, false
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if a.LengthDays() != b.LengthDays() {
			return a.LengthDays() < b.LengthDays()
		}
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.After(b.CreatedAt)
		}
		return a.ID.String() < b.ID.String()
	})
	return candidates[0], true
}

// TaxRate is the percentage of the active tax config, 0 when none is active.
// Several active configs resolve to the most recently created.
func TaxRate(configs []catalog.TaxConfig) decimal.Decimal {
	var (
		chosen catalog.TaxConfig
		found  bool
	)
	for _, c := range configs {
		if !c.IsActive {
			continue
		}
		if !found || c.CreatedAt.After(chosen.CreatedAt) ||
			(c.CreatedAt.Equal(chosen.CreatedAt) && c.ID.String() < chosen.ID.String()) {
			chosen = c
			found = true
		}
	}
	if !found {
		return decimal.Zero
	}
	return chosen.Percentage
}

// Snapshot rounds the breakdown to minor units for persistence.
func (b Breakdown) Snapshot(currency string) entity.PricingSnapshot {
	return entity.PricingSnapshot{
		Nights:           b.Nights,
		SeasonMultiplier: b.SeasonMultiplier,
		BasePrice:        b.RoomTotal.Round(2),
		ExtrasTotal:      b.ExtraGuestTotal.Round(2),
		MealPlanTotal:    b.MealPlanTotal.Round(2),
		DiscountAmount:   decimal.Zero,
		Subtotal:         b.Subtotal.Round(2),
		TaxRate:          b.TaxRate,
		Taxes:            b.Taxes.Round(2),
		GrandTotal:       b.GrandTotal.Round(2),
		Currency:         currency,
	}
}
