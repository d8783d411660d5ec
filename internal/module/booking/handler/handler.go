package handler

import (
	"context"
	"fmt"

	"reservation-service/internal/module/booking/models/request"
	"reservation-service/internal/module/booking/models/response"
	"reservation-service/internal/module/booking/usecases"
	"reservation-service/internal/pkg/errors"
	"reservation-service/internal/pkg/helpers"
	"reservation-service/internal/pkg/scheduler"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
)

// SignatureHeader carries the payment gateway's webhook signature.
const SignatureHeader = "Stripe-Signature"

type BookingHandler struct {
	Log       *otelzap.Logger
	Validator *validator.Validate
	Usecase   usecases.Usecase
}

func (h *BookingHandler) parseBody(ctx *fiber.Ctx, req interface{}) error {
	if err := ctx.BodyParser(req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error parse request: %v", err))
		return errors.BadRequest("error parse request")
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error validate request: %v", err))
		return errors.InvalidInput(err.Error())
	}
	return nil
}

func (h *BookingHandler) parseQuery(ctx *fiber.Ctx, req interface{}) error {
	if err := ctx.QueryParser(req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error parse query: %v", err))
		return errors.BadRequest("error parse query")
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error validate query: %v", err))
		return errors.InvalidInput(err.Error())
	}
	return nil
}

func (h *BookingHandler) Availability(ctx *fiber.Ctx) error {
	var req request.Availability
	if err := h.parseQuery(ctx, &req); err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}

	resp, err := h.Usecase.ComputeAvailableUnits(ctx.UserContext(), &req)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error compute availability: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success get availability")
}

func (h *BookingHandler) AvailableRooms(ctx *fiber.Ctx) error {
	var req request.Availability
	if err := h.parseQuery(ctx, &req); err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}

	resp, err := h.Usecase.ListAvailableRooms(ctx.UserContext(), &req)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error list available rooms: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success list available rooms")
}

func (h *BookingHandler) Quote(ctx *fiber.Ctx) error {
	var req request.Quote
	if err := h.parseBody(ctx, &req); err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}

	resp, err := h.Usecase.QuoteStay(ctx.UserContext(), &req)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error quote stay: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success quote stay")
}

func (h *BookingHandler) CreateBooking(ctx *fiber.Ctx) error {
	var req request.CreateBooking
	if err := h.parseBody(ctx, &req); err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}

	booking, err := h.Usecase.CreateBooking(ctx.UserContext(), &req)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error create booking: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	msg := "success create booking"
	if booking.IsEnquiryOnly {
		msg = "success create enquiry, we will get back to you shortly"
	}
	return helpers.RespCreated(ctx, h.Log, response.FromEntity(booking), msg)
}

func (h *BookingHandler) GetBookingByReference(ctx *fiber.Ctx) error {
	booking, err := h.Usecase.GetBookingByReference(ctx.UserContext(), ctx.Params("reference"))
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error get booking by reference: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, response.FromEntity(booking), "success get booking")
}

func (h *BookingHandler) RequestPayment(ctx *fiber.Ctx) error {
	id, err := helpers.ParseUUID(ctx.Params("id"), "booking id")
	if err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}

	resp, err := h.Usecase.RequestPayment(ctx.UserContext(), id)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error request payment: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success create payment order")
}

func (h *BookingHandler) PaymentWebhook(ctx *fiber.Ctx) error {
	signature := ctx.Get(SignatureHeader)
	if signature == "" {
		return helpers.RespError(ctx, h.Log, errors.BadRequest("missing payment signature"))
	}

	// the body is copied since fasthttp reuses its buffers
	payload := append([]byte(nil), ctx.Body()...)
	if err := h.Usecase.HandlePaymentWebhook(ctx.UserContext(), payload, signature); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error handle payment webhook: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, nil, "success handle payment webhook")
}

func (h *BookingHandler) ListBookings(ctx *fiber.Ctx) error {
	var req request.ListBookings
	if err := h.parseQuery(ctx, &req); err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}

	resp, err := h.Usecase.ListBookings(ctx.UserContext(), &req)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error list bookings: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success list bookings")
}

func (h *BookingHandler) GetBooking(ctx *fiber.Ctx) error {
	id, err := helpers.ParseUUID(ctx.Params("id"), "booking id")
	if err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}

	booking, err := h.Usecase.GetBooking(ctx.UserContext(), id)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error get booking: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, response.FromEntity(booking), "success get booking")
}

func (h *BookingHandler) UpdateStatus(ctx *fiber.Ctx) error {
	id, err := helpers.ParseUUID(ctx.Params("id"), "booking id")
	if err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}

	var req request.UpdateStatus
	if err := h.parseBody(ctx, &req); err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}

	booking, err := h.Usecase.Transition(ctx.UserContext(), id, &req)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error update booking status: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, response.FromEntity(booking), "success update booking status")
}

func (h *BookingHandler) UpdateNotes(ctx *fiber.Ctx) error {
	id, err := helpers.ParseUUID(ctx.Params("id"), "booking id")
	if err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}

	var req request.UpdateNotes
	if err := h.parseBody(ctx, &req); err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}

	booking, err := h.Usecase.UpdateInternalNotes(ctx.UserContext(), id, &req)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error update booking notes: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, response.FromEntity(booking), "success update booking notes")
}

// ConsumeBookingEvents emails the guest about a booking event. Errors are
// returned so the router retries and then poisons the message.
func (h *BookingHandler) ConsumeBookingEvents(msg *message.Message) error {
	var req request.BookingEvent
	if err := json.Unmarshal(msg.Payload, &req); err != nil {
		h.Log.Ctx(msg.Context()).Error(fmt.Sprintf("error unmarshal booking event: %v", err))
		return err
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Ctx(msg.Context()).Error(fmt.Sprintf("error validate booking event: %v", err))
		return err
	}

	if err := h.Usecase.NotifyGuest(msg.Context(), &req); err != nil {
		h.Log.Ctx(msg.Context()).Error(fmt.Sprintf("error notify guest: %v", err))
		return err
	}

	return nil
}

func (h *BookingHandler) MarkNoShow(ctx context.Context, t *asynq.Task) error {
	var req scheduler.NoShowPayload
	if err := json.Unmarshal(t.Payload(), &req); err != nil {
		h.Log.Ctx(ctx).Error(fmt.Sprintf("error unmarshal payload: %v", err))
		return err
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Ctx(ctx).Error(fmt.Sprintf("error validate payload: %v", err))
		return err
	}

	bookingID, err := uuid.Parse(req.BookingID)
	if err != nil {
		h.Log.Ctx(ctx).Error(fmt.Sprintf("error parse booking id: %v", err))
		return err
	}

	if err := h.Usecase.MarkNoShow(ctx, bookingID); err != nil {
		h.Log.Ctx(ctx).Error(fmt.Sprintf("error mark no-show: %v", err))
		return err
	}

	return nil
}
