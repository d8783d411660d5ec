package usecases_test

import (
	"context"
	"database/sql"
	"sync"
	"time"

	"reservation-service/internal/module/booking/models/entity"
	catalog "reservation-service/internal/module/catalog/models/entity"
	catalogrepo "reservation-service/internal/module/catalog/repositories"
	"reservation-service/internal/pkg/errors"
	"reservation-service/internal/pkg/helpers"
	"reservation-service/internal/pkg/notification"
	"reservation-service/internal/pkg/payment"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
)

type txKey struct{}

// store backs both repositories in memory. WithTx runs one transaction at a
// time and rolls the booking state back when fn fails.
type store struct {
	// catalog methods the booking flows never call stay nil
	catalogrepo.Repositories

	txMu sync.Mutex
	mu   sync.Mutex

	categories map[uuid.UUID]catalog.RoomCategory
	rooms      []catalog.Room
	seasons    []catalog.Season
	mealPlans  map[catalog.MealPlanCode]catalog.MealPlan
	taxes      []catalog.TaxConfig
	bookings   map[uuid.UUID]entity.Booking
	blocks     []catalog.BlockedDate
}

func newStore() *store {
	return &store{
		categories: map[uuid.UUID]catalog.RoomCategory{},
		mealPlans:  map[catalog.MealPlanCode]catalog.MealPlan{},
		bookings:   map[uuid.UUID]entity.Booking{},
	}
}

func (s *store) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if ctx.Value(txKey{}) != nil {
		return fn(ctx)
	}
	s.txMu.Lock()
	defer s.txMu.Unlock()

	s.mu.Lock()
	bookings := make(map[uuid.UUID]entity.Booking, len(s.bookings))
	for k, v := range s.bookings {
		bookings[k] = v
	}
	blocks := append([]catalog.BlockedDate(nil), s.blocks...)
	s.mu.Unlock()

	if err := fn(context.WithValue(ctx, txKey{}, true)); err != nil {
		s.mu.Lock()
		s.bookings, s.blocks = bookings, blocks
		s.mu.Unlock()
		return err
	}
	return nil
}

func (s *store) LockRoomCategory(ctx context.Context, id uuid.UUID) (catalog.RoomCategory, error) {
	return s.FindRoomCategoryByID(ctx, id)
}

func (s *store) FindHoldingBookings(_ context.Context, categoryID uuid.UUID, checkIn, checkOut time.Time) ([]entity.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []entity.Booking{}
	for _, b := range s.bookings {
		if b.RoomCategoryID == categoryID && b.Status.HoldsInventory() &&
			b.CheckInDate.Before(checkOut) && b.CheckOutDate.After(checkIn) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (s *store) InsertBooking(_ context.Context, b entity.Booking) (entity.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b.ID = uuid.New()
	s.bookings[b.ID] = b
	return b, nil
}

func (s *store) ExistsBookingReference(_ context.Context, reference string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, b := range s.bookings {
		if b.BookingReference == reference {
			return true, nil
		}
	}
	return false, nil
}

func (s *store) FindBookingByID(_ context.Context, id uuid.UUID) (entity.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.bookings[id]
	if !ok {
		return entity.Booking{}, errors.NotFound("booking not found")
	}
	return b, nil
}

func (s *store) FindBookingByIDForUpdate(ctx context.Context, id uuid.UUID) (entity.Booking, error) {
	return s.FindBookingByID(ctx, id)
}

func (s *store) find(match func(entity.Booking) bool) (entity.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, b := range s.bookings {
		if match(b) {
			return b, nil
		}
	}
	return entity.Booking{}, errors.NotFound("booking not found")
}

func (s *store) FindBookingByReference(_ context.Context, reference string) (entity.Booking, error) {
	return s.find(func(b entity.Booking) bool { return b.BookingReference == reference })
}

func (s *store) FindBookingByPaymentReference(_ context.Context, ref string) (entity.Booking, error) {
	return s.find(func(b entity.Booking) bool { return b.PaymentReference.Valid && b.PaymentReference.String == ref })
}

func (s *store) UpdateBookingStatus(_ context.Context, b entity.Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cur, ok := s.bookings[b.ID]
	if !ok {
		return errors.NotFound("booking not found")
	}
	cur.Status, cur.UpdatedAt = b.Status, b.UpdatedAt
	s.bookings[b.ID] = cur
	return nil
}

func (s *store) UpdateInternalNotes(_ context.Context, id uuid.UUID, notes string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cur, ok := s.bookings[id]
	if !ok {
		return errors.NotFound("booking not found")
	}
	cur.InternalNotes = notes
	s.bookings[id] = cur
	return nil
}

func (s *store) UpdatePayment(_ context.Context, id uuid.UUID, status entity.PaymentStatus, ref sql.NullString) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cur, ok := s.bookings[id]
	if !ok {
		return errors.NotFound("booking not found")
	}
	cur.PaymentStatus = status
	if ref.Valid {
		cur.PaymentReference = ref
	}
	s.bookings[id] = cur
	return nil
}

func (s *store) ListBookings(_ context.Context, filter entity.BookingFilter) ([]entity.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []entity.Booking{}
	for _, b := range s.bookings {
		if filter.Status != "" && b.Status != filter.Status {
			continue
		}
		out = append(out, b)
	}
	return out, nil
}

func (s *store) CountBlockedDatesByBooking(_ context.Context, bookingID uuid.UUID) (int, error) {
	return len(s.blocksOf(bookingID)), nil
}

func (s *store) DeleteBlockedDatesByBooking(_ context.Context, bookingID uuid.UUID) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.blocks[:0]
	var n int64
	for _, blk := range s.blocks {
		if blk.BookingID.Valid && blk.BookingID.UUID == bookingID {
			n++
			continue
		}
		kept = append(kept, blk)
	}
	s.blocks = kept
	return n, nil
}

func (s *store) blocksOf(bookingID uuid.UUID) []catalog.BlockedDate {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []catalog.BlockedDate
	for _, blk := range s.blocks {
		if blk.BookingID.Valid && blk.BookingID.UUID == bookingID {
			out = append(out, blk)
		}
	}
	return out
}

func (s *store) FindRoomCategoryByID(_ context.Context, id uuid.UUID) (catalog.RoomCategory, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.categories[id]
	if !ok {
		return catalog.RoomCategory{}, errors.NotFound("room category not found")
	}
	return c, nil
}

func (s *store) FindRoomsByCategory(_ context.Context, categoryID uuid.UUID) ([]catalog.Room, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []catalog.Room{}
	for _, r := range s.rooms {
		if r.RoomCategoryID == categoryID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *store) FindSeasonsCovering(_ context.Context, day time.Time) ([]catalog.Season, error) {
	out := []catalog.Season{}
	for _, season := range s.seasons {
		if season.Contains(day) {
			out = append(out, season)
		}
	}
	return out, nil
}

func (s *store) FindMealPlanByCode(_ context.Context, code catalog.MealPlanCode) (catalog.MealPlan, error) {
	plan, ok := s.mealPlans[code]
	if !ok {
		return catalog.MealPlan{}, errors.NotFound("meal plan not found")
	}
	return plan, nil
}

func (s *store) FindActiveTaxConfigs(context.Context) ([]catalog.TaxConfig, error) {
	return s.taxes, nil
}

func (s *store) FindBlockedDates(_ context.Context, categoryID uuid.UUID, from, to time.Time) ([]catalog.BlockedDate, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	inCategory := map[uuid.UUID]bool{}
	for _, r := range s.rooms {
		if r.RoomCategoryID == categoryID {
			inCategory[r.ID] = true
		}
	}
	out := []catalog.BlockedDate{}
	for _, blk := range s.blocks {
		if inCategory[blk.RoomID] && !blk.BlockedDate.Before(from) && blk.BlockedDate.Before(to) {
			out = append(out, blk)
		}
	}
	return out, nil
}

func (s *store) InsertBlockedDates(_ context.Context, blocks []catalog.BlockedDate) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, blk := range blocks {
		for _, existing := range s.blocks {
			if existing.RoomID == blk.RoomID && existing.BlockedDate.Equal(blk.BlockedDate) {
				return errors.Conflict("room is already blocked on " + blk.BlockedDate.Format(helpers.DateLayout))
			}
		}
	}
	for _, blk := range blocks {
		blk.ID = uuid.New()
		s.blocks = append(s.blocks, blk)
	}
	return nil
}

type publisher struct {
	mu       sync.Mutex
	messages []*message.Message
}

func (p *publisher) Publish(_ string, messages ...*message.Message) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.messages = append(p.messages, messages...)
	return nil
}

func (p *publisher) Close() error { return nil }

type tasks struct {
	mu        sync.Mutex
	scheduled map[uuid.UUID]time.Time
	cancelled []uuid.UUID
}

func (t *tasks) ScheduleNoShow(_ context.Context, bookingID uuid.UUID, at time.Time) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.scheduled == nil {
		t.scheduled = map[uuid.UUID]time.Time{}
	}
	t.scheduled[bookingID] = at
	return nil
}

func (t *tasks) CancelNoShow(_ context.Context, bookingID uuid.UUID) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.cancelled = append(t.cancelled, bookingID)
	return nil
}

type gateway struct {
	orders []payment.Order
	event  payment.Event
	err    error
}

func (g *gateway) CreatePaymentOrder(_ context.Context, order payment.Order) (payment.Intent, error) {
	g.orders = append(g.orders, order)
	return payment.Intent{Reference: "pi_123", ClientSecret: "pi_123_secret"}, nil
}

func (g *gateway) VerifyEvent([]byte, string) (payment.Event, error) {
	return g.event, g.err
}

type notifier struct {
	sent []notification.Message
}

func (n *notifier) Send(_ context.Context, msg notification.Message) error {
	n.sent = append(n.sent, msg)
	return nil
}
