// Package availability derives sellable inventory for a room category from
// inventory-holding bookings and blocked-date rows.
package availability

import (
	"sort"
	"time"

	"reservation-service/internal/module/booking/models/entity"
	catalog "reservation-service/internal/module/catalog/models/entity"
	"reservation-service/internal/pkg/helpers"

	"github.com/google/uuid"
)

type Input struct {
	TotalRooms int
	CheckIn    time.Time
	CheckOut   time.Time
	// Bookings of the category that may overlap the range, any status.
	Bookings []entity.Booking
	// Blocks on the category's rooms inside the range.
	Blocks           []catalog.BlockedDate
	ExcludeBookingID uuid.NullUUID
}

type NightOccupancy struct {
	Night    time.Time `json:"night"`
	Occupied int       `json:"occupied"`
}

// AvailableUnits returns total_rooms minus the occupancy of the busiest night
// in [CheckIn, CheckOut), never below zero.
func AvailableUnits(in Input) (int, error) {
	if err := helpers.ValidateStay(in.CheckIn, in.CheckOut); err != nil {
		return 0, err
	}
	if in.TotalRooms <= 0 {
		return 0, nil
	}

	peak := 0
	for _, n := range Nightly(in) {
		if n.Occupied > peak {
			peak = n.Occupied
		}
	}

	available := in.TotalRooms - peak
	if available < 0 {
		return 0, nil
	}
	return available, nil
}

// Nightly reports the occupied unit count for every night of the range.
// A booking and the blocked rows it created are one hold: it counts as the
// larger of num_rooms and its rows that night. Unlinked blocks count one each.
func Nightly(in Input) []NightOccupancy {
	nights := helpers.EachNight(in.CheckIn, in.CheckOut)
	out := make([]NightOccupancy, 0, len(nights))

	for _, night := range nights {
		units := make(map[uuid.UUID]int)

		for _, b := range in.Bookings {
			if excluded(in.ExcludeBookingID, b.ID) || !b.Status.HoldsInventory() {
				continue
			}
			if !b.CoversNight(night) {
				continue
			}
			if b.NumRooms > units[b.ID] {
				units[b.ID] = b.NumRooms
			}
		}

		rows := make(map[uuid.UUID]int)
		unlinked := 0
		for _, blk := range in.Blocks {
			if !helpers.NormalizeDate(blk.BlockedDate).Equal(night) {
				continue
			}
			if !blk.BookingID.Valid {
				unlinked++
				continue
			}
			if excluded(in.ExcludeBookingID, blk.BookingID.UUID) {
				continue
			}
			rows[blk.BookingID.UUID]++
		}
		for id, n := range rows {
			if n > units[id] {
				units[id] = n
			}
		}

		occupied := unlinked
		for _, n := range units {
			occupied += n
		}
		out = append(out, NightOccupancy{Night: night, Occupied: occupied})
	}
	return out
}

// FreeRooms returns active rooms with no block on any night of the range,
// ignoring blocks owned by the excluded booking, ordered by room number.
func FreeRooms(rooms []catalog.Room, blocks []catalog.BlockedDate, checkIn, checkOut time.Time, exclude uuid.NullUUID) []catalog.Room {
	in := helpers.NormalizeDate(checkIn)
	out := helpers.NormalizeDate(checkOut)

	taken := make(map[uuid.UUID]bool)
	for _, blk := range blocks {
		if blk.BookingID.Valid && excluded(exclude, blk.BookingID.UUID) {
			continue
		}
		d := helpers.NormalizeDate(blk.BlockedDate)
		if !d.Before(in) && d.Before(out) {
			taken[blk.RoomID] = true
		}
	}

	free := make([]catalog.Room, 0, len(rooms))
	for _, r := range rooms {
		if r.IsActive && !taken[r.ID] {
			free = append(free, r)
		}
	}
	sort.SliceStable(free, func(i, j int) bool {
		return free[i].RoomNumber < free[j].RoomNumber
	})
	return free
}

func excluded(exclude uuid.NullUUID, id uuid.UUID) bool {
	return exclude.Valid && exclude.UUID == id
}
