// Package lifecycle holds the booking state machine. Every status change in
// the service goes through Apply, whatever the entry point.
package lifecycle

import (
	"time"

	"reservation-service/internal/module/booking/models/entity"
	"reservation-service/internal/pkg/errors"
)

// Effect is the inventory side effect of entering a status.
type Effect int

const (
	EffectNone Effect = iota
	// EffectHold blocks the booking's nights.
	EffectHold
	// EffectRelease removes every block linked to the booking.
	EffectRelease
)

var transitions = map[entity.Status][]entity.Status{
	entity.StatusNewEnquiry:       {entity.StatusEnquiryResponded, entity.StatusQuoteSent, entity.StatusCancelled},
	entity.StatusEnquiryResponded: {entity.StatusQuoteSent, entity.StatusBookingConfirmed, entity.StatusCancelled},
	entity.StatusQuoteSent:        {entity.StatusBookingConfirmed, entity.StatusCancelled},
	entity.StatusBookingConfirmed: {entity.StatusCheckedIn, entity.StatusCancelled, entity.StatusNoShow},
	entity.StatusCheckedIn:        {entity.StatusCheckedOut},
	entity.StatusCheckedOut:       {},
	entity.StatusCancelled:        {},
	entity.StatusNoShow:           {},
}

// AllowedTargets lists the statuses reachable from from, in table order.
func AllowedTargets(from entity.Status) []entity.Status {
	targets := transitions[from]
	out := make([]entity.Status, len(targets))
	copy(out, targets)
	return out
}

func CanTransition(from, to entity.Status) bool {
	for _, t := range transitions[from] {
		if t == to {
			return true
		}
	}
	return false
}

func IsTerminal(s entity.Status) bool {
	targets, ok := transitions[s]
	return ok && len(targets) == 0
}

// InitialStatus is new_enquiry for enquiries and booking_confirmed for direct
// reservations, which skip the intermediate states.
func InitialStatus(isEnquiryOnly bool) entity.Status {
	if isEnquiryOnly {
		return entity.StatusNewEnquiry
	}
	return entity.StatusBookingConfirmed
}

func EffectOf(to entity.Status) Effect {
	switch to {
	case entity.StatusBookingConfirmed:
		return EffectHold
	case entity.StatusCancelled, entity.StatusNoShow:
		return EffectRelease
	}
	return EffectNone
}

// Apply moves b to target, touching only status and updated_at. A target
// outside the table fails with IllegalTransition and b is returned unchanged.
func Apply(b entity.Booking, target entity.Status, now time.Time) (entity.Booking, Effect, error) {
	if !CanTransition(b.Status, target) {
		return b, EffectNone, errors.IllegalTransition(string(b.Status), string(target))
	}
	b.Status = target
	b.UpdatedAt = now
	return b, EffectOf(target), nil
}
