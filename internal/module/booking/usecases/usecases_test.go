package usecases_test

import (
	"context"
	"fmt"
	"regexp"
	"sync"
	"testing"
	"time"

	"reservation-service/config"
	"reservation-service/internal/module/booking/models/entity"
	"reservation-service/internal/module/booking/models/request"
	"reservation-service/internal/module/booking/usecases"
	catalog "reservation-service/internal/module/catalog/models/entity"
	"reservation-service/internal/pkg/clock"
	"reservation-service/internal/pkg/errors"
	log_internal "reservation-service/internal/pkg/log"
	"reservation-service/internal/pkg/payment"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	uc        usecases.Usecase
	db        *store
	pub       *publisher
	taskMock  *tasks
	payMock   *gateway
	mailMock  *notifier
	category  catalog.RoomCategory
	timeNow   = time.Date(2026, 10, 15, 9, 0, 0, 0, time.UTC)
	noShowAdd = 36 * time.Hour
)

// setup seeds one category with totalRooms active rooms priced at 5000 for
// two guests, 1000 per extra adult, with 18% tax.
func setup(totalRooms int) {
	db = newStore()
	pub = &publisher{}
	taskMock = &tasks{}
	payMock = &gateway{}
	mailMock = &notifier{}

	category = catalog.RoomCategory{
		ID:                uuid.New(),
		Name:              "Forest Villa",
		BasePricePerNight: decimal.NewFromInt(5000),
		BaseOccupancy:     2,
		MaxAdults:         3,
		MaxChildren:       2,
		ExtraAdultPrice:   decimal.NewFromInt(1000),
		ExtraChildPrice:   decimal.NewFromInt(500),
		TotalRooms:        totalRooms,
		IsActive:          true,
	}
	db.categories[category.ID] = category
	for i := 0; i < totalRooms; i++ {
		db.rooms = append(db.rooms, catalog.Room{
			ID:             uuid.New(),
			RoomCategoryID: category.ID,
			RoomNumber:     fmt.Sprintf("V%02d", i+1),
			IsActive:       true,
		})
	}
	db.taxes = []catalog.TaxConfig{{ID: uuid.New(), Name: "GST", Percentage: decimal.NewFromInt(18), IsActive: true}}

	log_internal.Init(log_internal.SetupLogger())
	uc = usecases.New(db, db, log_internal.GetLogger(), pub, usecases.Options{
		Payment:   payMock,
		Tasks:     taskMock,
		Notifier:  mailMock,
		Clock:     clock.NewFixed(timeNow),
		Booking:   config.BookingConfig{Currency: "INR", ReferencePrefix: "RSV"},
		Scheduler: config.SchedulerConfig{EnableNoShow: true, NoShowGrace: noShowAdd},
	})
}

func teardown() {
	uc = nil
	db = nil
}

func date(s string) time.Time {
	t, _ := time.Parse("2006-01-02", s)
	return t
}

func createPayload(checkIn, checkOut string) *request.CreateBooking {
	return &request.CreateBooking{
		GuestName:      "Asha Rao",
		GuestEmail:     "asha@example.com",
		RoomCategoryID: category.ID.String(),
		CheckIn:        checkIn,
		CheckOut:       checkOut,
		NumAdults:      2,
	}
}

func available(t *testing.T, checkIn, checkOut string) int {
	t.Helper()
	resp, err := uc.ComputeAvailableUnits(context.Background(), &request.Availability{
		RoomCategoryID: category.ID.String(),
		CheckIn:        checkIn,
		CheckOut:       checkOut,
	})
	require.NoError(t, err)
	return resp.AvailableUnits
}

func events(t *testing.T) []request.BookingEvent {
	t.Helper()
	pub.mu.Lock()
	defer pub.mu.Unlock()
	out := make([]request.BookingEvent, 0, len(pub.messages))
	for _, msg := range pub.messages {
		var evt request.BookingEvent
		require.NoError(t, json.Unmarshal(msg.Payload, &evt))
		out = append(out, evt)
	}
	return out
}

func TestCreateBookingHoldsEveryNight(t *testing.T) {
	setup(1)
	defer teardown()

	ctx := context.Background()
	assert.Equal(t, 1, available(t, "2026-12-10", "2026-12-12"))

	b, err := uc.CreateBooking(ctx, createPayload("2026-12-10", "2026-12-12"))
	require.NoError(t, err)
	assert.Equal(t, entity.StatusBookingConfirmed, b.Status)
	assert.Equal(t, entity.PaymentUnpaid, b.PaymentStatus)

	blocks := db.blocksOf(b.ID)
	require.Len(t, blocks, 2)
	assert.True(t, blocks[0].BlockedDate.Equal(date("2026-12-10")))
	assert.True(t, blocks[1].BlockedDate.Equal(date("2026-12-11")))
	assert.Equal(t, catalog.BlockReasonBooking, blocks[0].Reason)

	assert.Equal(t, 0, available(t, "2026-12-10", "2026-12-12"))
	assert.Equal(t, 0, available(t, "2026-12-11", "2026-12-13"))
	// checkout night is free
	assert.Equal(t, 1, available(t, "2026-12-12", "2026-12-14"))

	evts := events(t)
	require.Len(t, evts, 1)
	assert.Equal(t, usecases.EventBookingCreated, evts[0].Type)
	assert.Equal(t, b.BookingReference, evts[0].BookingReference)

	assert.Equal(t, date("2026-12-10").Add(noShowAdd), taskMock.scheduled[b.ID])
}

func TestCreateBookingPricesAndFreezesSnapshot(t *testing.T) {
	setup(2)
	defer teardown()

	payload := createPayload("2026-12-10", "2026-12-12")
	payload.NumAdults = 3

	b, err := uc.CreateBooking(context.Background(), payload)
	require.NoError(t, err)

	assert.Equal(t, 2, b.Nights)
	assert.True(t, decimal.NewFromInt(10000).Equal(b.BasePrice))
	assert.True(t, decimal.NewFromInt(2000).Equal(b.ExtrasTotal))
	assert.True(t, decimal.NewFromInt(12000).Equal(b.Subtotal))
	assert.True(t, decimal.NewFromInt(2160).Equal(b.Taxes))
	assert.True(t, decimal.NewFromInt(14160).Equal(b.GrandTotal))
	assert.Equal(t, "INR", b.Currency)

	// later tax changes leave the stored booking untouched
	db.taxes = []catalog.TaxConfig{{ID: uuid.New(), Percentage: decimal.NewFromInt(5), IsActive: true}}
	stored, err := uc.GetBooking(context.Background(), b.ID)
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(14160).Equal(stored.GrandTotal))
}

func TestCreateBookingReferenceFormat(t *testing.T) {
	setup(3)
	defer teardown()

	pattern := regexp.MustCompile(`^RSV-[23456789ABCDEFGHJKLMNPQRSTUVWXYZ]{8}$`)
	seen := map[string]bool{}
	for i := 0; i < 3; i++ {
		b, err := uc.CreateBooking(context.Background(), createPayload("2026-12-10", "2026-12-11"))
		require.NoError(t, err)
		assert.Regexp(t, pattern, b.BookingReference)
		assert.False(t, seen[b.BookingReference])
		seen[b.BookingReference] = true

		found, err := uc.GetBookingByReference(context.Background(), " "+b.BookingReference)
		require.NoError(t, err)
		assert.Equal(t, b.ID, found.ID)
	}
}

func TestCreateBookingGeneratesReferenceForEveryKind(t *testing.T) {
	setup(1)
	defer teardown()

	pattern := regexp.MustCompile(`^RSV-[23456789ABCDEFGHJKLMNPQRSTUVWXYZ]{8}$`)
	for _, enquiry := range []bool{false, true} {
		payload := createPayload("2026-12-10", "2026-12-12")
		payload.IsEnquiryOnly = enquiry

		var (
			b   entity.Booking
			err error
		)
		assert.NotPanics(t, func() {
			b, err = uc.CreateBooking(context.Background(), payload)
		})
		require.NoError(t, err)
		assert.Regexp(t, pattern, b.BookingReference)
	}
}

func TestCreateBookingWhenFull(t *testing.T) {
	setup(1)
	defer teardown()

	ctx := context.Background()
	_, err := uc.CreateBooking(ctx, createPayload("2026-12-10", "2026-12-12"))
	require.NoError(t, err)

	t.Run("confirmed booking is rejected", func(t *testing.T) {
		_, err := uc.CreateBooking(ctx, createPayload("2026-12-11", "2026-12-13"))
		assert.True(t, errors.IsKind(err, errors.KindNoAvailability))
		assert.Len(t, db.bookings, 1)
	})

	t.Run("enquiry is accepted without a hold", func(t *testing.T) {
		payload := createPayload("2026-12-11", "2026-12-13")
		payload.IsEnquiryOnly = true

		b, err := uc.CreateBooking(ctx, payload)
		require.NoError(t, err)
		assert.Equal(t, entity.StatusNewEnquiry, b.Status)
		assert.Empty(t, db.blocksOf(b.ID))
		assert.NotContains(t, taskMock.scheduled, b.ID)
	})
}

func TestCreateBookingRejectsInvalidInput(t *testing.T) {
	setup(1)
	defer teardown()

	ctx := context.Background()

	t.Run("zero nights", func(t *testing.T) {
		_, err := uc.CreateBooking(ctx, createPayload("2026-12-10", "2026-12-10"))
		assert.True(t, errors.IsKind(err, errors.KindInvalidInput))
	})

	t.Run("too many adults", func(t *testing.T) {
		payload := createPayload("2026-12-10", "2026-12-12")
		payload.NumAdults = 4

		_, err := uc.CreateBooking(ctx, payload)
		require.True(t, errors.IsKind(err, errors.KindOccupancyExceeded))
		ce, ok := errors.As(err)
		require.True(t, ok)
		assert.Equal(t, "adults", ce.Details["limit"])
		assert.Empty(t, db.bookings)
	})

	t.Run("too many children", func(t *testing.T) {
		payload := createPayload("2026-12-10", "2026-12-12")
		payload.NumChildren = 3

		_, err := uc.CreateBooking(ctx, payload)
		assert.True(t, errors.IsKind(err, errors.KindOccupancyExceeded))
	})

	t.Run("unknown category", func(t *testing.T) {
		payload := createPayload("2026-12-10", "2026-12-12")
		payload.RoomCategoryID = uuid.NewString()

		_, err := uc.CreateBooking(ctx, payload)
		assert.True(t, errors.IsKind(err, errors.KindNotFound))
	})

	t.Run("inactive meal plan", func(t *testing.T) {
		db.mealPlans[catalog.MealPlanFullBoard] = catalog.MealPlan{Code: catalog.MealPlanFullBoard}
		payload := createPayload("2026-12-10", "2026-12-12")
		payload.MealPlan = string(catalog.MealPlanFullBoard)

		_, err := uc.CreateBooking(ctx, payload)
		assert.True(t, errors.IsKind(err, errors.KindInvalidInput))
	})
}

func TestCreateBookingNeverOversells(t *testing.T) {
	setup(3)
	defer teardown()

	const attempts = 20
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
		rejected  int
	)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := uc.CreateBooking(context.Background(), createPayload("2026-12-10", "2026-12-13"))
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				succeeded++
			case errors.IsKind(err, errors.KindNoAvailability):
				rejected++
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 3, succeeded)
	assert.Equal(t, attempts-3, rejected)
	assert.Equal(t, 0, available(t, "2026-12-10", "2026-12-13"))
	assert.Len(t, db.blocks, 9)
}

func TestTransitionReleasesAndRestoresInventory(t *testing.T) {
	setup(2)
	defer teardown()

	ctx := context.Background()
	assert.Equal(t, 2, available(t, "2026-12-10", "2026-12-12"))

	b, err := uc.CreateBooking(ctx, createPayload("2026-12-10", "2026-12-12"))
	require.NoError(t, err)
	assert.Equal(t, 1, available(t, "2026-12-10", "2026-12-12"))

	noted, err := uc.UpdateInternalNotes(ctx, b.ID, &request.UpdateNotes{InternalNotes: "guest called"})
	require.NoError(t, err)
	assert.Equal(t, "guest called", noted.InternalNotes)
	assert.Equal(t, entity.StatusBookingConfirmed, noted.Status)

	cancelled, err := uc.Transition(ctx, b.ID, &request.UpdateStatus{Status: "cancelled"})
	require.NoError(t, err)
	assert.Equal(t, entity.StatusCancelled, cancelled.Status)
	assert.Equal(t, "guest called", db.bookings[b.ID].InternalNotes)
	assert.Equal(t, b.PricingSnapshot, db.bookings[b.ID].PricingSnapshot)

	assert.Equal(t, 2, available(t, "2026-12-10", "2026-12-12"))
	assert.Empty(t, db.blocksOf(b.ID))
	assert.Contains(t, taskMock.cancelled, b.ID)

	evts := events(t)
	require.Len(t, evts, 2)
	assert.Equal(t, usecases.EventBookingStatusChanged, evts[1].Type)
	assert.Equal(t, "booking_confirmed", evts[1].PreviousStatus)
	assert.Equal(t, "cancelled", evts[1].Status)
}

func TestTransitionRejectsIllegalMove(t *testing.T) {
	setup(1)
	defer teardown()

	ctx := context.Background()
	b, err := uc.CreateBooking(ctx, createPayload("2026-12-10", "2026-12-12"))
	require.NoError(t, err)

	_, err = uc.Transition(ctx, b.ID, &request.UpdateStatus{Status: "checked_in"})
	require.NoError(t, err)
	_, err = uc.Transition(ctx, b.ID, &request.UpdateStatus{Status: "checked_out"})
	require.NoError(t, err)

	_, err = uc.Transition(ctx, b.ID, &request.UpdateStatus{Status: "booking_confirmed"})
	assert.True(t, errors.IsKind(err, errors.KindIllegalTransition))
	assert.Equal(t, entity.StatusCheckedOut, db.bookings[b.ID].Status)
	// checked-out stays keep their nights
	assert.Len(t, db.blocksOf(b.ID), 2)
}

func TestTransitionConfirmRechecksAvailability(t *testing.T) {
	setup(1)
	defer teardown()

	ctx := context.Background()
	enquiry := createPayload("2026-12-10", "2026-12-12")
	enquiry.IsEnquiryOnly = true
	e, err := uc.CreateBooking(ctx, enquiry)
	require.NoError(t, err)

	_, err = uc.Transition(ctx, e.ID, &request.UpdateStatus{Status: "quote_sent"})
	require.NoError(t, err)

	_, err = uc.CreateBooking(ctx, createPayload("2026-12-11", "2026-12-12"))
	require.NoError(t, err)

	_, err = uc.Transition(ctx, e.ID, &request.UpdateStatus{Status: "booking_confirmed"})
	assert.True(t, errors.IsKind(err, errors.KindNoAvailability))
	assert.Equal(t, entity.StatusQuoteSent, db.bookings[e.ID].Status)
	assert.Empty(t, db.blocksOf(e.ID))
}

func TestTransitionConfirmHoldsEnquiry(t *testing.T) {
	setup(1)
	defer teardown()

	ctx := context.Background()
	enquiry := createPayload("2026-12-10", "2026-12-12")
	enquiry.IsEnquiryOnly = true
	e, err := uc.CreateBooking(ctx, enquiry)
	require.NoError(t, err)

	_, err = uc.Transition(ctx, e.ID, &request.UpdateStatus{Status: "enquiry_responded"})
	require.NoError(t, err)
	confirmed, err := uc.Transition(ctx, e.ID, &request.UpdateStatus{Status: "booking_confirmed"})
	require.NoError(t, err)

	assert.Equal(t, entity.StatusBookingConfirmed, confirmed.Status)
	assert.Len(t, db.blocksOf(e.ID), 2)
	assert.Equal(t, 0, available(t, "2026-12-10", "2026-12-12"))
	assert.Contains(t, taskMock.scheduled, e.ID)
}

func TestMarkNoShow(t *testing.T) {
	setup(1)
	defer teardown()

	ctx := context.Background()

	t.Run("confirmed booking becomes no-show", func(t *testing.T) {
		b, err := uc.CreateBooking(ctx, createPayload("2026-12-10", "2026-12-12"))
		require.NoError(t, err)

		require.NoError(t, uc.MarkNoShow(ctx, b.ID))
		assert.Equal(t, entity.StatusNoShow, db.bookings[b.ID].Status)
		assert.Empty(t, db.blocksOf(b.ID))
	})

	t.Run("checked-in booking is left alone", func(t *testing.T) {
		b, err := uc.CreateBooking(ctx, createPayload("2026-12-20", "2026-12-22"))
		require.NoError(t, err)
		_, err = uc.Transition(ctx, b.ID, &request.UpdateStatus{Status: "checked_in"})
		require.NoError(t, err)

		require.NoError(t, uc.MarkNoShow(ctx, b.ID))
		assert.Equal(t, entity.StatusCheckedIn, db.bookings[b.ID].Status)
	})

	t.Run("unknown booking is ignored", func(t *testing.T) {
		assert.NoError(t, uc.MarkNoShow(ctx, uuid.New()))
	})
}

func TestQuoteStay(t *testing.T) {
	setup(1)
	defer teardown()

	db.mealPlans[catalog.MealPlanBreakfastIncluded] = catalog.MealPlan{
		Code:       catalog.MealPlanBreakfastIncluded,
		AdultPrice: decimal.NewFromInt(500),
		ChildPrice: decimal.NewFromInt(250),
		IsActive:   true,
	}

	resp, err := uc.QuoteStay(context.Background(), &request.Quote{
		RoomCategoryID: category.ID.String(),
		CheckIn:        "2026-12-10",
		CheckOut:       "2026-12-12",
		NumAdults:      2,
		NumChildren:    1,
		MealPlan:       "breakfast_included",
	})
	require.NoError(t, err)

	assert.Equal(t, 2, resp.Nights)
	assert.Equal(t, 1, resp.NumRooms)
	assert.True(t, decimal.NewFromInt(10000).Equal(resp.RoomTotal))
	assert.Equal(t, 1, resp.ExtraChildren)
	assert.True(t, decimal.NewFromInt(1000).Equal(resp.ExtraGuestTotal))
	assert.True(t, decimal.NewFromInt(2500).Equal(resp.MealPlanTotal))
	assert.True(t, decimal.NewFromInt(13500).Equal(resp.Subtotal))
	assert.True(t, decimal.NewFromInt(2430).Equal(resp.Taxes))
	assert.True(t, decimal.NewFromInt(15930).Equal(resp.GrandTotal))
	// quoting holds nothing
	assert.Empty(t, db.blocks)
}

func TestListAvailableRooms(t *testing.T) {
	setup(3)
	defer teardown()

	ctx := context.Background()
	b, err := uc.CreateBooking(ctx, createPayload("2026-12-10", "2026-12-12"))
	require.NoError(t, err)

	q := &request.Availability{RoomCategoryID: category.ID.String(), CheckIn: "2026-12-10", CheckOut: "2026-12-12"}
	rooms, err := uc.ListAvailableRooms(ctx, q)
	require.NoError(t, err)
	assert.Len(t, rooms, 2)

	q.ExcludeBookingID = b.ID.String()
	rooms, err = uc.ListAvailableRooms(ctx, q)
	require.NoError(t, err)
	assert.Len(t, rooms, 3)
	assert.Equal(t, "V01", rooms[0].RoomNumber)
}

func TestBlockDatesForBookingConflicts(t *testing.T) {
	setup(1)
	defer teardown()

	ctx := context.Background()
	roomID := db.rooms[0].ID
	bookingID := uuid.New()

	require.NoError(t, uc.BlockDatesForBooking(ctx, bookingID, date("2026-12-10"), date("2026-12-13"), roomID))
	assert.Len(t, db.blocksOf(bookingID), 3)

	err := uc.BlockDatesForBooking(ctx, uuid.New(), date("2026-12-12"), date("2026-12-14"), roomID)
	assert.True(t, errors.IsKind(err, errors.KindConflict))

	err = uc.BlockDatesForBooking(ctx, bookingID, date("2026-12-14"), date("2026-12-14"), roomID)
	assert.True(t, errors.IsKind(err, errors.KindInvalidInput))
}

func TestListBookings(t *testing.T) {
	setup(2)
	defer teardown()

	ctx := context.Background()
	_, err := uc.CreateBooking(ctx, createPayload("2026-12-10", "2026-12-12"))
	require.NoError(t, err)
	enquiry := createPayload("2026-12-10", "2026-12-12")
	enquiry.IsEnquiryOnly = true
	_, err = uc.CreateBooking(ctx, enquiry)
	require.NoError(t, err)

	list, err := uc.ListBookings(ctx, &request.ListBookings{Status: "new_enquiry"})
	require.NoError(t, err)
	assert.Len(t, list.Items, 1)
	assert.Equal(t, 1, list.Page)
	assert.Equal(t, 20, list.PageSize)

	_, err = uc.ListBookings(ctx, &request.ListBookings{RoomCategoryID: "nope"})
	assert.True(t, errors.IsKind(err, errors.KindInvalidInput))
}

func TestRequestPaymentAndWebhook(t *testing.T) {
	setup(1)
	defer teardown()

	ctx := context.Background()
	b, err := uc.CreateBooking(ctx, createPayload("2026-12-10", "2026-12-12"))
	require.NoError(t, err)

	order, err := uc.RequestPayment(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, "pi_123", order.PaymentReference)
	require.Len(t, payMock.orders, 1)
	assert.True(t, b.GrandTotal.Equal(payMock.orders[0].Amount))
	assert.Equal(t, "inr", payMock.orders[0].Currency)
	assert.Equal(t, entity.PaymentPending, db.bookings[b.ID].PaymentStatus)

	payMock.event = payment.Event{Type: payment.EventPaymentSucceeded, PaymentReference: "pi_123"}
	require.NoError(t, uc.HandlePaymentWebhook(ctx, []byte(`{}`), "sig"))
	assert.Equal(t, entity.PaymentPaid, db.bookings[b.ID].PaymentStatus)
	assert.True(t, b.GrandTotal.Equal(db.bookings[b.ID].GrandTotal))

	t.Run("late failure does not downgrade a paid booking", func(t *testing.T) {
		payMock.event = payment.Event{Type: payment.EventPaymentFailed, PaymentReference: "pi_123"}
		require.NoError(t, uc.HandlePaymentWebhook(ctx, []byte(`{}`), "sig"))
		assert.Equal(t, entity.PaymentPaid, db.bookings[b.ID].PaymentStatus)
	})

	t.Run("paid booking cannot be charged again", func(t *testing.T) {
		_, err := uc.RequestPayment(ctx, b.ID)
		assert.True(t, errors.IsKind(err, errors.KindConflict))
	})

	t.Run("bad signature", func(t *testing.T) {
		payMock.err = errors.UnauthorizedError("invalid signature")
		err := uc.HandlePaymentWebhook(ctx, []byte(`{}`), "bad")
		assert.True(t, errors.IsKind(err, errors.KindUnauthorized))
		payMock.err = nil
	})
}

func TestRequestPaymentRejectsEnquiry(t *testing.T) {
	setup(1)
	defer teardown()

	payload := createPayload("2026-12-10", "2026-12-12")
	payload.IsEnquiryOnly = true
	b, err := uc.CreateBooking(context.Background(), payload)
	require.NoError(t, err)

	_, err = uc.RequestPayment(context.Background(), b.ID)
	assert.True(t, errors.IsKind(err, errors.KindInvalidInput))
	assert.Empty(t, payMock.orders)
}

func TestNotifyGuest(t *testing.T) {
	setup(1)
	defer teardown()

	ctx := context.Background()
	evt := &request.BookingEvent{
		Type:             usecases.EventBookingStatusChanged,
		BookingReference: "RSV-ABCDEFGH",
		Status:           "booking_confirmed",
		GuestName:        "Asha Rao",
		GuestEmail:       "asha@example.com",
		GrandTotal:       "14160.00",
		Currency:         "INR",
	}
	require.NoError(t, uc.NotifyGuest(ctx, evt))
	require.Len(t, mailMock.sent, 1)
	assert.Equal(t, "asha@example.com", mailMock.sent[0].To)
	assert.Contains(t, mailMock.sent[0].Subject, "RSV-ABCDEFGH")

	// check-in needs no email
	evt.Status = "checked_in"
	require.NoError(t, uc.NotifyGuest(ctx, evt))
	assert.Len(t, mailMock.sent, 1)
}
