package handler_test

import (
	"bytes"
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"reservation-service/internal/module/booking/handler"
	"reservation-service/internal/module/booking/mocks"
	"reservation-service/internal/module/booking/models/entity"
	"reservation-service/internal/module/booking/models/request"
	"reservation-service/internal/module/booking/models/response"
	"reservation-service/internal/module/booking/usecases"
	"reservation-service/internal/pkg/errors"
	log_internal "reservation-service/internal/pkg/log"
	"reservation-service/internal/pkg/scheduler"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	h   *handler.BookingHandler
	ucm *mocks.Usecase
	app *fiber.App
)

func setup() {
	ucm = &mocks.Usecase{}
	h = &handler.BookingHandler{
		Log:       log_internal.Setup(),
		Validator: validator.New(),
		Usecase:   ucm,
	}
	app = fiber.New()
}

func teardown() {
	ucm = nil
	h = nil
	app = nil
}

func bookingMock() entity.Booking {
	return entity.Booking{
		ID:               uuid.New(),
		BookingReference: "RSV-7KQ2MX9P",
		GuestName:        "Asha Rao",
		GuestEmail:       "asha@example.com",
		RoomCategoryID:   uuid.New(),
		CheckInDate:      time.Date(2026, 12, 10, 0, 0, 0, 0, time.UTC),
		CheckOutDate:     time.Date(2026, 12, 12, 0, 0, 0, 0, time.UTC),
		NumAdults:        2,
		NumRooms:         1,
		Status:           entity.StatusBookingConfirmed,
		PricingSnapshot: entity.PricingSnapshot{
			Nights:     2,
			GrandTotal: decimal.NewFromInt(11800),
			Currency:   "INR",
		},
		PaymentStatus: entity.PaymentUnpaid,
	}
}

func decode(t *testing.T, body []byte) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(body, &out))
	return out
}

func TestAvailability(t *testing.T) {
	setup()
	defer teardown()
	app.Get("/api/v1/availability", h.Availability)

	categoryID := uuid.NewString()

	t.Run("success", func(t *testing.T) {
		ucm.On("ComputeAvailableUnits", mock.Anything, &request.Availability{
			RoomCategoryID: categoryID,
			CheckIn:        "2026-12-10",
			CheckOut:       "2026-12-12",
		}).Return(response.Availability{RoomCategoryID: categoryID, AvailableUnits: 3}, nil).Once()

		url := "/api/v1/availability?room_category_id=" + categoryID + "&check_in=2026-12-10&check_out=2026-12-12"
		resp, err := app.Test(httptest.NewRequest("GET", url, nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		var body struct {
			Data response.Availability `json:"data"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, 3, body.Data.AvailableUnits)
	})

	t.Run("malformed date", func(t *testing.T) {
		url := "/api/v1/availability?room_category_id=" + categoryID + "&check_in=10-12-2026&check_out=2026-12-12"
		resp, err := app.Test(httptest.NewRequest("GET", url, nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})

	ucm.AssertExpectations(t)
}

func TestCreateBooking(t *testing.T) {
	setup()
	defer teardown()
	app.Post("/api/v1/bookings", h.CreateBooking)

	payload := request.CreateBooking{
		GuestName:      "Asha Rao",
		GuestEmail:     "asha@example.com",
		RoomCategoryID: uuid.NewString(),
		CheckIn:        "2026-12-10",
		CheckOut:       "2026-12-12",
		NumAdults:      2,
	}
	body, _ := json.Marshal(payload)

	post := func() *testResponse {
		req := httptest.NewRequest("POST", "/api/v1/bookings", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)
		require.NoError(t, err)
		buf := new(bytes.Buffer)
		_, _ = buf.ReadFrom(resp.Body)
		return &testResponse{status: resp.StatusCode, body: buf.Bytes()}
	}

	t.Run("created", func(t *testing.T) {
		b := bookingMock()
		ucm.On("CreateBooking", mock.Anything, &payload).Return(b, nil).Once()

		resp := post()
		assert.Equal(t, fiber.StatusCreated, resp.status)
		data := decode(t, resp.body)["data"].(map[string]interface{})
		assert.Equal(t, "RSV-7KQ2MX9P", data["booking_reference"])
		assert.Equal(t, "booking_confirmed", data["status"])
	})

	t.Run("no availability", func(t *testing.T) {
		ucm.On("CreateBooking", mock.Anything, &payload).
			Return(entity.Booking{}, errors.NoAvailability("no rooms left")).Once()

		resp := post()
		assert.Equal(t, fiber.StatusConflict, resp.status)
		assert.Equal(t, errors.KindNoAvailability, decode(t, resp.body)["code"])
	})

	t.Run("occupancy exceeded", func(t *testing.T) {
		ucm.On("CreateBooking", mock.Anything, &payload).
			Return(entity.Booking{}, errors.OccupancyExceeded("adults", 3, 4)).Once()

		resp := post()
		assert.Equal(t, fiber.StatusUnprocessableEntity, resp.status)
		details := decode(t, resp.body)["details"].(map[string]interface{})
		assert.Equal(t, "adults", details["limit"])
	})

	t.Run("invalid email", func(t *testing.T) {
		bad := payload
		bad.GuestEmail = "not-an-email"
		badBody, _ := json.Marshal(bad)

		req := httptest.NewRequest("POST", "/api/v1/bookings", bytes.NewReader(badBody))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})

	ucm.AssertExpectations(t)
}

type testResponse struct {
	status int
	body   []byte
}

func TestUpdateStatus(t *testing.T) {
	setup()
	defer teardown()
	app.Patch("/api/admin/bookings/:id/status", h.UpdateStatus)

	id := uuid.New()
	patch := func(body string) int {
		req := httptest.NewRequest("PATCH", "/api/admin/bookings/"+id.String()+"/status", bytes.NewReader([]byte(body)))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)
		require.NoError(t, err)
		return resp.StatusCode
	}

	t.Run("success", func(t *testing.T) {
		b := bookingMock()
		b.ID = id
		b.Status = entity.StatusCancelled
		ucm.On("Transition", mock.Anything, id, &request.UpdateStatus{Status: "cancelled"}).Return(b, nil).Once()

		assert.Equal(t, fiber.StatusOK, patch(`{"status":"cancelled"}`))
	})

	t.Run("illegal transition", func(t *testing.T) {
		ucm.On("Transition", mock.Anything, id, &request.UpdateStatus{Status: "booking_confirmed"}).
			Return(entity.Booking{}, errors.IllegalTransition("checked_out", "booking_confirmed")).Once()

		assert.Equal(t, fiber.StatusConflict, patch(`{"status":"booking_confirmed"}`))
	})

	t.Run("unknown status", func(t *testing.T) {
		assert.Equal(t, fiber.StatusBadRequest, patch(`{"status":"archived"}`))
	})

	ucm.AssertExpectations(t)
}

func TestUpdateNotes(t *testing.T) {
	setup()
	defer teardown()
	app.Patch("/api/admin/bookings/:id/notes", h.UpdateNotes)

	id := uuid.New()
	b := bookingMock()
	b.ID = id
	b.InternalNotes = "late arrival"
	ucm.On("UpdateInternalNotes", mock.Anything, id, &request.UpdateNotes{InternalNotes: "late arrival"}).Return(b, nil).Once()

	req := httptest.NewRequest("PATCH", "/api/admin/bookings/"+id.String()+"/notes", bytes.NewReader([]byte(`{"internal_notes":"late arrival"}`)))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	ucm.AssertExpectations(t)
}

func TestGetBookingByReference(t *testing.T) {
	setup()
	defer teardown()
	app.Get("/api/v1/bookings/:reference", h.GetBookingByReference)

	t.Run("found", func(t *testing.T) {
		b := bookingMock()
		b.BookingReference = "RSV-7KQ2M9XA"
		ucm.On("GetBookingByReference", mock.Anything, "RSV-7KQ2M9XA").Return(b, nil).Once()

		resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/bookings/RSV-7KQ2M9XA", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("not found", func(t *testing.T) {
		ucm.On("GetBookingByReference", mock.Anything, "RSV-NONE2345").
			Return(entity.Booking{}, errors.NotFound("booking not found")).Once()

		resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/bookings/RSV-NONE2345", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	})

	ucm.AssertExpectations(t)
}

func TestRequestPayment(t *testing.T) {
	setup()
	defer teardown()
	app.Post("/api/v1/bookings/:id/payment", h.RequestPayment)

	id := uuid.New()
	ucm.On("RequestPayment", mock.Anything, id).Return(response.PaymentOrder{
		BookingID:        id.String(),
		PaymentReference: "pi_123",
		ClientSecret:     "pi_123_secret",
		Amount:           decimal.NewFromInt(11800),
		Currency:         "INR",
	}, nil).Once()

	resp, err := app.Test(httptest.NewRequest("POST", "/api/v1/bookings/"+id.String()+"/payment", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	ucm.AssertExpectations(t)
}

func TestPaymentWebhook(t *testing.T) {
	setup()
	defer teardown()
	app.Post("/api/v1/webhooks/payment", h.PaymentWebhook)

	payload := []byte(`{"type":"payment_intent.succeeded"}`)

	t.Run("verified", func(t *testing.T) {
		ucm.On("HandlePaymentWebhook", mock.Anything, payload, "t=1,v1=abc").Return(nil).Once()

		req := httptest.NewRequest("POST", "/api/v1/webhooks/payment", bytes.NewReader(payload))
		req.Header.Set(handler.SignatureHeader, "t=1,v1=abc")
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("bad signature", func(t *testing.T) {
		ucm.On("HandlePaymentWebhook", mock.Anything, payload, "forged").
			Return(errors.UnauthorizedError("invalid payment signature")).Once()

		req := httptest.NewRequest("POST", "/api/v1/webhooks/payment", bytes.NewReader(payload))
		req.Header.Set(handler.SignatureHeader, "forged")
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("missing signature", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("POST", "/api/v1/webhooks/payment", bytes.NewReader(payload)))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})

	ucm.AssertExpectations(t)
}

func TestListBookings(t *testing.T) {
	setup()
	defer teardown()
	app.Get("/api/admin/bookings", h.ListBookings)

	ucm.On("ListBookings", mock.Anything, &request.ListBookings{Status: "booking_confirmed", Page: 2}).
		Return(response.BookingList{Page: 2, PageSize: 20}, nil).Once()

	resp, err := app.Test(httptest.NewRequest("GET", "/api/admin/bookings?status=booking_confirmed&page=2", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	ucm.AssertExpectations(t)
}

func TestConsumeBookingEvents(t *testing.T) {
	setup()
	defer teardown()

	evt := request.BookingEvent{
		Type:             usecases.EventBookingCreated,
		BookingID:        uuid.NewString(),
		BookingReference: "RSV-7KQ2MX9P",
		Status:           "booking_confirmed",
		GuestEmail:       "asha@example.com",
	}

	t.Run("notifies guest", func(t *testing.T) {
		payload, _ := json.Marshal(evt)
		ucm.On("NotifyGuest", mock.Anything, &evt).Return(nil).Once()

		err := h.ConsumeBookingEvents(message.NewMessage(watermill.NewUUID(), payload))
		assert.NoError(t, err)
	})

	t.Run("malformed payload is returned for poisoning", func(t *testing.T) {
		err := h.ConsumeBookingEvents(message.NewMessage(watermill.NewUUID(), []byte(`{`)))
		assert.Error(t, err)
	})

	ucm.AssertExpectations(t)
}

func TestMarkNoShow(t *testing.T) {
	setup()
	defer teardown()

	id := uuid.New()
	task, err := scheduler.NewNoShowTask(id)
	require.NoError(t, err)

	ucm.On("MarkNoShow", mock.Anything, id).Return(nil).Once()
	assert.NoError(t, h.MarkNoShow(context.Background(), task))

	err = h.MarkNoShow(context.Background(), asynq.NewTask(scheduler.TypeMarkNoShow, []byte(`{"booking_id":"nope"}`)))
	assert.Error(t, err)
	assert.NotPanics(t, func() {
		err = h.MarkNoShow(context.Background(), asynq.NewTask(scheduler.TypeMarkNoShow, []byte(`{"booking_id":""}`)))
	})
	assert.Error(t, err)
	ucm.AssertNumberOfCalls(t, "MarkNoShow", 1)
	ucm.AssertExpectations(t)
}
