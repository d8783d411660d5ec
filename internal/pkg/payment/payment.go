package payment

import (
	"context"
	stderrors "errors"
	"fmt"
	"time"

	"reservation-service/config"
	"reservation-service/internal/pkg/errors"

	"github.com/goccy/go-json"
	circuit "github.com/rubyist/circuitbreaker"
	"github.com/shopspring/decimal"
	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/webhook"
)

const (
	EventPaymentSucceeded = "payment_intent.succeeded"
	EventPaymentFailed    = "payment_intent.payment_failed"

	MetadataBookingID        = "booking_id"
	MetadataBookingReference = "booking_reference"
)

type Order struct {
	BookingID        string
	BookingReference string
	Amount           decimal.Decimal
	Currency         string
}

type Intent struct {
	Reference    string
	ClientSecret string
}

// Event is a verified gateway callback. Type is empty for events the
// service does not act on.
type Event struct {
	Type             string
	PaymentReference string
	BookingID        string
}

type Gateway interface {
	CreatePaymentOrder(ctx context.Context, order Order) (Intent, error)
	VerifyEvent(payload []byte, signature string) (Event, error)
}

type stripeGateway struct {
	client        *stripe.Client
	webhookSecret string
	breaker       *circuit.Breaker
	timeout       time.Duration
}

func NewStripeGateway(cfg *config.PaymentConfig, cb *circuit.Breaker, timeout time.Duration) Gateway {
	return &stripeGateway{
		client:        stripe.NewClient(cfg.StripeSecretKey),
		webhookSecret: cfg.StripeWebhookSecret,
		breaker:       cb,
		timeout:       timeout,
	}
}

// MinorUnits converts a major-unit amount to the integer the gateway expects.
func MinorUnits(amount decimal.Decimal) int64 {
	return amount.Shift(2).Round(0).IntPart()
}

func (g *stripeGateway) CreatePaymentOrder(ctx context.Context, order Order) (Intent, error) {
	params := &stripe.PaymentIntentCreateParams{
		Amount:   stripe.Int64(MinorUnits(order.Amount)),
		Currency: stripe.String(order.Currency),
	}
	params.AddMetadata(MetadataBookingID, order.BookingID)
	params.AddMetadata(MetadataBookingReference, order.BookingReference)

	var pi *stripe.PaymentIntent
	err := g.breaker.Call(func() error {
		var err error
		pi, err = g.client.V1PaymentIntents.Create(ctx, params)
		return err
	}, g.timeout)
	if stderrors.Is(err, circuit.ErrBreakerOpen) {
		return Intent{}, errors.ServiceUnavailable("payment gateway is unavailable")
	}
	if err != nil {
		return Intent{}, errors.Wrap(err, "error create payment order")
	}

	return Intent{Reference: pi.ID, ClientSecret: pi.ClientSecret}, nil
}

func (g *stripeGateway) VerifyEvent(payload []byte, signature string) (Event, error) {
	event, err := webhook.ConstructEventWithOptions(payload, signature, g.webhookSecret,
		webhook.ConstructEventOptions{IgnoreAPIVersionMismatch: true})
	if err != nil {
		return Event{}, errors.UnauthorizedError("invalid payment signature")
	}

	switch string(event.Type) {
	case EventPaymentSucceeded, EventPaymentFailed:
	default:
		return Event{}, nil
	}

	var pi stripe.PaymentIntent
	if err := json.Unmarshal(event.Data.Raw, &pi); err != nil {
		return Event{}, errors.BadRequest(fmt.Sprintf("error parse payment intent: %v", err))
	}

	return Event{
		Type:             string(event.Type),
		PaymentReference: pi.ID,
		BookingID:        pi.Metadata[MetadataBookingID],
	}, nil
}
