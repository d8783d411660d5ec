package usecases

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"reservation-service/config"
	"reservation-service/internal/module/booking/availability"
	"reservation-service/internal/module/booking/lifecycle"
	"reservation-service/internal/module/booking/models/entity"
	"reservation-service/internal/module/booking/models/request"
	"reservation-service/internal/module/booking/models/response"
	"reservation-service/internal/module/booking/pricing"
	"reservation-service/internal/module/booking/repositories"
	catalog "reservation-service/internal/module/catalog/models/entity"
	catalogrepo "reservation-service/internal/module/catalog/repositories"
	"reservation-service/internal/pkg/clock"
	"reservation-service/internal/pkg/errors"
	"reservation-service/internal/pkg/helpers"
	"reservation-service/internal/pkg/lock"
	"reservation-service/internal/pkg/log"
	"reservation-service/internal/pkg/notification"
	"reservation-service/internal/pkg/payment"
	"reservation-service/internal/pkg/scheduler"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/lithammer/shortuuid/v3"
	"go.uber.org/zap"
)

const (
	TopicBookingEvents         = "booking_events"
	TopicBookingEventsPoisoned = "booking_events_poisoned"

	EventBookingCreated        = "booking.created"
	EventBookingStatusChanged  = "booking.status_changed"
	EventBookingPaymentUpdated = "booking.payment_updated"

	// ReferenceAlphabet leaves out 0, O, 1 and I.
	ReferenceAlphabet = "23456789ABCDEFGHJKLMNPQRSTUVWXYZ"

	referenceLength      = 8
	maxReferenceAttempts = 5
	defaultPageSize      = 20
)

// Options carries the collaborators around the booking core. Nil
// collaborators fall back to in-process defaults or are skipped.
type Options struct {
	Locker    lock.Locker
	Payment   payment.Gateway
	Tasks     scheduler.TaskClient
	Notifier  notification.Notifier
	Clock     clock.Clock
	Booking   config.BookingConfig
	Scheduler config.SchedulerConfig
}

type usecase struct {
	repo        repositories.Repositories
	catalogRepo catalogrepo.Repositories
	log         log.Logger
	publisher   message.Publisher
	locker      lock.Locker
	gateway     payment.Gateway
	tasks       scheduler.TaskClient
	notifier    notification.Notifier
	clock       clock.Clock
	cfg         config.BookingConfig
	schedCfg    config.SchedulerConfig
}

type Usecase interface {
	// availability & pricing
	ComputeAvailableUnits(ctx context.Context, payload *request.Availability) (response.Availability, error)
	ListAvailableRooms(ctx context.Context, payload *request.Availability) ([]response.AvailableRoom, error)
	QuoteStay(ctx context.Context, payload *request.Quote) (response.Quote, error)
	// bookings
	CreateBooking(ctx context.Context, payload *request.CreateBooking) (entity.Booking, error)
	GetBooking(ctx context.Context, id uuid.UUID) (entity.Booking, error)
	GetBookingByReference(ctx context.Context, reference string) (entity.Booking, error)
	ListBookings(ctx context.Context, payload *request.ListBookings) (response.BookingList, error)
	Transition(ctx context.Context, id uuid.UUID, payload *request.UpdateStatus) (entity.Booking, error)
	UpdateInternalNotes(ctx context.Context, id uuid.UUID, payload *request.UpdateNotes) (entity.Booking, error)
	BlockDatesForBooking(ctx context.Context, bookingID uuid.UUID, checkIn, checkOut time.Time, roomID uuid.UUID) error
	MarkNoShow(ctx context.Context, bookingID uuid.UUID) error
	// payment
	RequestPayment(ctx context.Context, bookingID uuid.UUID) (response.PaymentOrder, error)
	HandlePaymentWebhook(ctx context.Context, payload []byte, signature string) error
	// notification
	NotifyGuest(ctx context.Context, event *request.BookingEvent) error
}

func New(repo repositories.Repositories, catalogRepo catalogrepo.Repositories, log log.Logger, publisher message.Publisher, opts Options) Usecase {
	u := &usecase{
		repo:        repo,
		catalogRepo: catalogRepo,
		log:         log,
		publisher:   publisher,
		locker:      opts.Locker,
		gateway:     opts.Payment,
		tasks:       opts.Tasks,
		notifier:    opts.Notifier,
		clock:       opts.Clock,
		cfg:         opts.Booking,
		schedCfg:    opts.Scheduler,
	}
	if u.locker == nil {
		u.locker = lock.NewLocal()
	}
	if u.clock == nil {
		u.clock = clock.NewSystem()
	}
	if u.cfg.Currency == "" {
		u.cfg.Currency = "INR"
	}
	if u.cfg.ReferencePrefix == "" {
		u.cfg.ReferencePrefix = "RSV"
	}
	return u
}

type stay struct {
	categoryID uuid.UUID
	checkIn    time.Time
	checkOut   time.Time
}

func parseStay(categoryID, checkIn, checkOut string) (stay, error) {
	id, err := uuid.Parse(categoryID)
	if err != nil {
		return stay{}, errors.InvalidInput("invalid room_category_id")
	}
	in, err := helpers.ParseDate(checkIn)
	if err != nil {
		return stay{}, err
	}
	out, err := helpers.ParseDate(checkOut)
	if err != nil {
		return stay{}, err
	}
	if err := helpers.ValidateStay(in, out); err != nil {
		return stay{}, err
	}
	return stay{categoryID: id, checkIn: in, checkOut: out}, nil
}

func parseExclude(s string) (uuid.NullUUID, error) {
	if s == "" {
		return uuid.NullUUID{}, nil
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.NullUUID{}, errors.InvalidInput("invalid exclude_booking_id")
	}
	return uuid.NullUUID{UUID: id, Valid: true}, nil
}

func (u *usecase) availableUnits(ctx context.Context, category catalog.RoomCategory, checkIn, checkOut time.Time, exclude uuid.NullUUID) (int, error) {
	bookings, err := u.repo.FindHoldingBookings(ctx, category.ID, checkIn, checkOut)
	if err != nil {
		return 0, err
	}
	blocks, err := u.catalogRepo.FindBlockedDates(ctx, category.ID, checkIn, checkOut)
	if err != nil {
		return 0, err
	}

	return availability.AvailableUnits(availability.Input{
		TotalRooms:       category.TotalRooms,
		CheckIn:          checkIn,
		CheckOut:         checkOut,
		Bookings:         bookings,
		Blocks:           blocks,
		ExcludeBookingID: exclude,
	})
}

// ComputeAvailableUnits reads without locking; the create path re-checks
// under the category lock.
func (u *usecase) ComputeAvailableUnits(ctx context.Context, payload *request.Availability) (response.Availability, error) {
	s, err := parseStay(payload.RoomCategoryID, payload.CheckIn, payload.CheckOut)
	if err != nil {
		return response.Availability{}, err
	}
	exclude, err := parseExclude(payload.ExcludeBookingID)
	if err != nil {
		return response.Availability{}, err
	}

	category, err := u.catalogRepo.FindRoomCategoryByID(ctx, s.categoryID)
	if err != nil {
		return response.Availability{}, err
	}

	units, err := u.availableUnits(ctx, category, s.checkIn, s.checkOut, exclude)
	if err != nil {
		u.log.Error(ctx, "error compute available units", err)
		return response.Availability{}, err
	}

	return response.Availability{
		RoomCategoryID: category.ID.String(),
		CheckIn:        s.checkIn.Format(helpers.DateLayout),
		CheckOut:       s.checkOut.Format(helpers.DateLayout),
		AvailableUnits: units,
	}, nil
}

func (u *usecase) ListAvailableRooms(ctx context.Context, payload *request.Availability) ([]response.AvailableRoom, error) {
	s, err := parseStay(payload.RoomCategoryID, payload.CheckIn, payload.CheckOut)
	if err != nil {
		return nil, err
	}
	exclude, err := parseExclude(payload.ExcludeBookingID)
	if err != nil {
		return nil, err
	}

	rooms, err := u.catalogRepo.FindRoomsByCategory(ctx, s.categoryID)
	if err != nil {
		return nil, err
	}
	blocks, err := u.catalogRepo.FindBlockedDates(ctx, s.categoryID, s.checkIn, s.checkOut)
	if err != nil {
		return nil, err
	}

	free := availability.FreeRooms(rooms, blocks, s.checkIn, s.checkOut, exclude)
	resp := make([]response.AvailableRoom, 0, len(free))
	for _, r := range free {
		resp = append(resp, response.AvailableRoom{ID: r.ID.String(), RoomNumber: r.RoomNumber, Floor: r.Floor})
	}
	return resp, nil
}

func mealPlanCode(s string) (catalog.MealPlanCode, error) {
	if s == "" {
		return catalog.MealPlanRoomOnly, nil
	}
	code, err := catalog.ParseMealPlanCode(s)
	if err != nil {
		return "", errors.InvalidInput(err.Error())
	}
	return code, nil
}

func (u *usecase) mealPlan(ctx context.Context, code catalog.MealPlanCode) (catalog.MealPlan, error) {
	plan, err := u.catalogRepo.FindMealPlanByCode(ctx, code)
	if errors.IsKind(err, errors.KindNotFound) && code == catalog.MealPlanRoomOnly {
		return catalog.MealPlan{Code: catalog.MealPlanRoomOnly, Name: "Room only", IsActive: true}, nil
	}
	if errors.IsKind(err, errors.KindNotFound) {
		return catalog.MealPlan{}, errors.InvalidInput(fmt.Sprintf("meal plan %s is not offered", code))
	}
	if err != nil {
		return catalog.MealPlan{}, err
	}
	if !plan.IsActive {
		return catalog.MealPlan{}, errors.InvalidInput(fmt.Sprintf("meal plan %s is not offered", code))
	}
	return plan, nil
}

// rules loads the seasons covering checkIn and the active tax configs.
func (u *usecase) rules(ctx context.Context, checkIn time.Time) (pricing.Rules, error) {
	seasons, err := u.catalogRepo.FindSeasonsCovering(ctx, checkIn)
	if err != nil {
		return pricing.Rules{}, err
	}
	taxes, err := u.catalogRepo.FindActiveTaxConfigs(ctx)
	if err != nil {
		return pricing.Rules{}, err
	}
	return pricing.Rules{Seasons: seasons, TaxConfigs: taxes}, nil
}

type occupancy struct {
	adults   int
	children int
	rooms    int
}

func validateOccupancy(category catalog.RoomCategory, occ occupancy) error {
	if occ.adults < 1 {
		return errors.InvalidInput("at least one adult is required")
	}
	if occ.children < 0 {
		return errors.InvalidInput("num_children must not be negative")
	}
	if occ.rooms < 1 {
		return errors.InvalidInput("num_rooms must be at least 1")
	}
	if maxAdults := category.MaxAdults * occ.rooms; occ.adults > maxAdults {
		return errors.OccupancyExceeded("adults", maxAdults, occ.adults)
	}
	if maxChildren := category.MaxChildren * occ.rooms; occ.children > maxChildren {
		return errors.OccupancyExceeded("children", maxChildren, occ.children)
	}
	return nil
}

func (u *usecase) quote(ctx context.Context, category catalog.RoomCategory, s stay, occ occupancy, code catalog.MealPlanCode) (pricing.Breakdown, error) {
	plan, err := u.mealPlan(ctx, code)
	if err != nil {
		return pricing.Breakdown{}, err
	}
	rules, err := u.rules(ctx, s.checkIn)
	if err != nil {
		return pricing.Breakdown{}, err
	}

	return pricing.Quote(pricing.Request{
		Category:    category,
		CheckIn:     s.checkIn,
		CheckOut:    s.checkOut,
		NumAdults:   occ.adults,
		NumChildren: occ.children,
		NumRooms:    occ.rooms,
		MealPlan:    plan,
	}, rules)
}

func roomsOrDefault(n int) int {
	if n == 0 {
		return 1
	}
	return n
}

func (u *usecase) QuoteStay(ctx context.Context, payload *request.Quote) (response.Quote, error) {
	s, err := parseStay(payload.RoomCategoryID, payload.CheckIn, payload.CheckOut)
	if err != nil {
		return response.Quote{}, err
	}
	code, err := mealPlanCode(payload.MealPlan)
	if err != nil {
		return response.Quote{}, err
	}

	category, err := u.catalogRepo.FindRoomCategoryByID(ctx, s.categoryID)
	if err != nil {
		return response.Quote{}, err
	}

	occ := occupancy{adults: payload.NumAdults, children: payload.NumChildren, rooms: roomsOrDefault(payload.NumRooms)}
	if err := validateOccupancy(category, occ); err != nil {
		return response.Quote{}, err
	}

	b, err := u.quote(ctx, category, s, occ, code)
	if err != nil {
		return response.Quote{}, err
	}

	return response.Quote{
		RoomCategoryID:   category.ID.String(),
		CheckIn:          s.checkIn.Format(helpers.DateLayout),
		CheckOut:         s.checkOut.Format(helpers.DateLayout),
		NumRooms:         occ.rooms,
		Nights:           b.Nights,
		SeasonMultiplier: b.SeasonMultiplier,
		RoomTotal:        b.RoomTotal.Round(2),
		ExtraAdults:      b.ExtraAdults,
		ExtraChildren:    b.ExtraChildren,
		ExtraGuestTotal:  b.ExtraGuestTotal.Round(2),
		MealPlan:         string(code),
		MealPlanTotal:    b.MealPlanTotal.Round(2),
		Subtotal:         b.Subtotal.Round(2),
		TaxRate:          b.TaxRate,
		Taxes:            b.Taxes,
		GrandTotal:       b.GrandTotal.Round(2),
		Currency:         u.cfg.Currency,
	}, nil
}

func (u *usecase) newReference(ctx context.Context) (string, error) {
	for i := 0; i < maxReferenceAttempts; i++ {
		code := shortuuid.NewWithEncoder(referenceEncoder{})
		ref := fmt.Sprintf("%s-%s", u.cfg.ReferencePrefix, code[:referenceLength])

		exists, err := u.repo.ExistsBookingReference(ctx, ref)
		if err != nil {
			return "", err
		}
		if !exists {
			return ref, nil
		}
		u.log.Warn(ctx, "booking reference collision", zap.String("booking_reference", ref))
	}
	return "", errors.InternalServerError("error generate unique booking reference")
}

func categoryLockName(id uuid.UUID) string {
	return fmt.Sprintf("room_category:%s", id)
}

// CreateBooking checks availability, prices the stay, persists the booking
// and places the hold as one serializable unit under the category lock.
// Enquiries are accepted even when the category is full.
func (u *usecase) CreateBooking(ctx context.Context, payload *request.CreateBooking) (entity.Booking, error) {
	s, err := parseStay(payload.RoomCategoryID, payload.CheckIn, payload.CheckOut)
	if err != nil {
		return entity.Booking{}, err
	}
	code, err := mealPlanCode(payload.MealPlan)
	if err != nil {
		return entity.Booking{}, err
	}
	if strings.TrimSpace(payload.GuestName) == "" || strings.TrimSpace(payload.GuestEmail) == "" {
		return entity.Booking{}, errors.InvalidInput("guest_name and guest_email are required")
	}
	var userID uuid.NullUUID
	if payload.UserID != "" {
		id, err := uuid.Parse(payload.UserID)
		if err != nil {
			return entity.Booking{}, errors.InvalidInput("invalid user_id")
		}
		userID = uuid.NullUUID{UUID: id, Valid: true}
	}
	occ := occupancy{adults: payload.NumAdults, children: payload.NumChildren, rooms: roomsOrDefault(payload.NumRooms)}

	unlock, err := u.locker.Acquire(ctx, categoryLockName(s.categoryID))
	if err != nil {
		return entity.Booking{}, err
	}
	defer func() {
		if err := unlock(context.Background()); err != nil {
			u.log.Warn(ctx, "error release category lock", err)
		}
	}()

	var created entity.Booking
	err = u.repo.WithTx(ctx, func(txCtx context.Context) error {
		category, err := u.repo.LockRoomCategory(txCtx, s.categoryID)
		if err != nil {
			return err
		}
		if !category.IsActive {
			return errors.InvalidInput("room category is not bookable")
		}
		if err := validateOccupancy(category, occ); err != nil {
			return err
		}

		available, err := u.availableUnits(txCtx, category, s.checkIn, s.checkOut, uuid.NullUUID{})
		if err != nil {
			return err
		}
		if available < occ.rooms && !payload.IsEnquiryOnly {
			return errors.NoAvailability(fmt.Sprintf(
				"only %d of %d requested rooms are available for these dates, please choose different dates or contact us",
				available, occ.rooms))
		}

		breakdown, err := u.quote(txCtx, category, s, occ, code)
		if err != nil {
			return err
		}

		ref, err := u.newReference(txCtx)
		if err != nil {
			return err
		}

		now := u.clock.Now()
		booking, err := u.repo.InsertBooking(txCtx, entity.Booking{
			BookingReference: ref,
			UserID:           userID,
			GuestName:        strings.TrimSpace(payload.GuestName),
			GuestEmail:       strings.TrimSpace(payload.GuestEmail),
			GuestPhone:       payload.GuestPhone,
			GuestCountry:     payload.GuestCountry,
			CheckInDate:      s.checkIn,
			CheckOutDate:     s.checkOut,
			NumAdults:        occ.adults,
			NumChildren:      occ.children,
			NumRooms:         occ.rooms,
			RoomCategoryID:   category.ID,
			MealPlan:         code,
			Status:           lifecycle.InitialStatus(payload.IsEnquiryOnly),
			IsEnquiryOnly:    payload.IsEnquiryOnly,
			PricingSnapshot:  breakdown.Snapshot(u.cfg.Currency),
			PaymentStatus:    entity.PaymentUnpaid,
			SpecialRequests:  payload.SpecialRequests,
			CreatedAt:        now,
			UpdatedAt:        now,
		})
		if err != nil {
			return err
		}

		if lifecycle.EffectOf(booking.Status) == lifecycle.EffectHold {
			if err := u.holdInventory(txCtx, booking); err != nil {
				return err
			}
		}

		created = booking
		return nil
	})
	if err != nil {
		u.log.Error(ctx, "error create booking", err)
		return entity.Booking{}, err
	}

	u.log.Info(ctx, "booking created",
		zap.String("booking_id", created.ID.String()),
		zap.String("booking_reference", created.BookingReference),
		zap.String("status", string(created.Status)))

	u.publishEvent(ctx, EventBookingCreated, created, "")
	if created.Status == entity.StatusBookingConfirmed {
		u.scheduleNoShow(ctx, created)
	}
	return created, nil
}

// holdInventory assigns free rooms to the booking and blocks each night.
// A booking that already holds rows is left as is.
func (u *usecase) holdInventory(ctx context.Context, b entity.Booking) error {
	held, err := u.repo.CountBlockedDatesByBooking(ctx, b.ID)
	if err != nil {
		return err
	}
	if held > 0 {
		return nil
	}

	rooms, err := u.catalogRepo.FindRoomsByCategory(ctx, b.RoomCategoryID)
	if err != nil {
		return err
	}
	blocks, err := u.catalogRepo.FindBlockedDates(ctx, b.RoomCategoryID, b.CheckInDate, b.CheckOutDate)
	if err != nil {
		return err
	}

	free := availability.FreeRooms(rooms, blocks, b.CheckInDate, b.CheckOutDate, uuid.NullUUID{UUID: b.ID, Valid: true})
	assign := b.NumRooms
	if len(free) < assign {
		// the booking status still counts against capacity
		u.log.Warn(ctx, "not enough free rooms to assign, holding by status",
			zap.String("booking_id", b.ID.String()), zap.Int("free_rooms", len(free)), zap.Int("num_rooms", b.NumRooms))
		assign = len(free)
	}

	for _, room := range free[:assign] {
		if err := u.BlockDatesForBooking(ctx, b.ID, b.CheckInDate, b.CheckOutDate, room.ID); err != nil {
			return err
		}
	}
	return nil
}

// BlockDatesForBooking writes one booking block for roomID on every night of
// [checkIn, checkOut).
func (u *usecase) BlockDatesForBooking(ctx context.Context, bookingID uuid.UUID, checkIn, checkOut time.Time, roomID uuid.UUID) error {
	if err := helpers.ValidateStay(checkIn, checkOut); err != nil {
		return err
	}

	nights := helpers.EachNight(checkIn, checkOut)
	blocks := make([]catalog.BlockedDate, 0, len(nights))
	for _, night := range nights {
		blocks = append(blocks, catalog.BlockedDate{
			RoomID:      roomID,
			BlockedDate: night,
			Reason:      catalog.BlockReasonBooking,
			BookingID:   uuid.NullUUID{UUID: bookingID, Valid: true},
		})
	}
	return u.catalogRepo.InsertBlockedDates(ctx, blocks)
}

func (u *usecase) releaseInventory(ctx context.Context, b entity.Booking) error {
	n, err := u.repo.DeleteBlockedDatesByBooking(ctx, b.ID)
	if err != nil {
		return err
	}
	u.log.Info(ctx, "booking inventory released", zap.String("booking_id", b.ID.String()), zap.Int64("blocked_dates", n))
	return nil
}

func (u *usecase) Transition(ctx context.Context, id uuid.UUID, payload *request.UpdateStatus) (entity.Booking, error) {
	target, err := entity.ParseStatus(payload.Status)
	if err != nil {
		return entity.Booking{}, errors.InvalidInput(err.Error())
	}
	return u.transition(ctx, id, target)
}

func (u *usecase) transition(ctx context.Context, id uuid.UUID, target entity.Status) (entity.Booking, error) {
	current, err := u.repo.FindBookingByID(ctx, id)
	if err != nil {
		return entity.Booking{}, err
	}
	if lifecycle.IsTerminal(current.Status) {
		return entity.Booking{}, errors.IllegalTransition(string(current.Status), string(target))
	}

	// confirmations compete with creates for the same inventory
	if lifecycle.EffectOf(target) == lifecycle.EffectHold {
		unlock, err := u.locker.Acquire(ctx, categoryLockName(current.RoomCategoryID))
		if err != nil {
			return entity.Booking{}, err
		}
		defer func() {
			if err := unlock(context.Background()); err != nil {
				u.log.Warn(ctx, "error release category lock", err)
			}
		}()
	}

	var (
		updated  entity.Booking
		previous entity.Status
		effect   lifecycle.Effect
	)
	err = u.repo.WithTx(ctx, func(txCtx context.Context) error {
		b, err := u.repo.FindBookingByIDForUpdate(txCtx, id)
		if err != nil {
			return err
		}
		previous = b.Status

		next, eff, err := lifecycle.Apply(b, target, u.clock.Now())
		if err != nil {
			return err
		}

		switch eff {
		case lifecycle.EffectHold:
			category, err := u.repo.LockRoomCategory(txCtx, b.RoomCategoryID)
			if err != nil {
				return err
			}
			exclude := uuid.NullUUID{UUID: b.ID, Valid: true}
			available, err := u.availableUnits(txCtx, category, b.CheckInDate, b.CheckOutDate, exclude)
			if err != nil {
				return err
			}
			if available < b.NumRooms {
				return errors.NoAvailability("the requested rooms are no longer available for these dates")
			}
			if err := u.holdInventory(txCtx, next); err != nil {
				return err
			}
		case lifecycle.EffectRelease:
			if err := u.releaseInventory(txCtx, next); err != nil {
				return err
			}
		}

		if err := u.repo.UpdateBookingStatus(txCtx, next); err != nil {
			return err
		}
		updated, effect = next, eff
		return nil
	})
	if err != nil {
		u.log.Error(ctx, "error transition booking", err, zap.String("booking_id", id.String()), zap.String("target", string(target)))
		return entity.Booking{}, err
	}

	u.log.Info(ctx, "booking status changed",
		zap.String("booking_id", id.String()),
		zap.String("from", string(previous)),
		zap.String("to", string(updated.Status)))

	u.publishEvent(ctx, EventBookingStatusChanged, updated, previous)
	switch effect {
	case lifecycle.EffectHold:
		u.scheduleNoShow(ctx, updated)
	case lifecycle.EffectRelease:
		u.cancelNoShow(ctx, updated)
	}
	return updated, nil
}

// MarkNoShow is the delayed check fired after check-in. Anything other than
// a still-confirmed booking is left alone.
func (u *usecase) MarkNoShow(ctx context.Context, bookingID uuid.UUID) error {
	b, err := u.repo.FindBookingByID(ctx, bookingID)
	if errors.IsKind(err, errors.KindNotFound) {
		u.log.Warn(ctx, "no-show check for unknown booking", zap.String("booking_id", bookingID.String()))
		return nil
	}
	if err != nil {
		return err
	}
	if b.Status != entity.StatusBookingConfirmed {
		return nil
	}

	_, err = u.transition(ctx, bookingID, entity.StatusNoShow)
	if errors.IsKind(err, errors.KindIllegalTransition) {
		return nil
	}
	return err
}

// UpdateInternalNotes replaces the staff notes. Status and pricing are untouched.
func (u *usecase) UpdateInternalNotes(ctx context.Context, id uuid.UUID, payload *request.UpdateNotes) (entity.Booking, error) {
	if err := u.repo.UpdateInternalNotes(ctx, id, payload.InternalNotes); err != nil {
		return entity.Booking{}, err
	}
	return u.repo.FindBookingByID(ctx, id)
}

func (u *usecase) GetBooking(ctx context.Context, id uuid.UUID) (entity.Booking, error) {
	return u.repo.FindBookingByID(ctx, id)
}

func (u *usecase) GetBookingByReference(ctx context.Context, reference string) (entity.Booking, error) {
	return u.repo.FindBookingByReference(ctx, strings.ToUpper(strings.TrimSpace(reference)))
}

func (u *usecase) ListBookings(ctx context.Context, payload *request.ListBookings) (response.BookingList, error) {
	filter := entity.BookingFilter{}
	if payload.Status != "" {
		st, err := entity.ParseStatus(payload.Status)
		if err != nil {
			return response.BookingList{}, errors.InvalidInput(err.Error())
		}
		filter.Status = st
	}
	if payload.RoomCategoryID != "" {
		id, err := uuid.Parse(payload.RoomCategoryID)
		if err != nil {
			return response.BookingList{}, errors.InvalidInput("invalid room_category_id")
		}
		filter.RoomCategoryID = uuid.NullUUID{UUID: id, Valid: true}
	}
	if payload.From != "" {
		from, err := helpers.ParseDate(payload.From)
		if err != nil {
			return response.BookingList{}, err
		}
		filter.From = from
	}
	if payload.To != "" {
		to, err := helpers.ParseDate(payload.To)
		if err != nil {
			return response.BookingList{}, err
		}
		filter.To = to
	}

	page, size := payload.Page, payload.PageSize
	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = defaultPageSize
	}
	filter.Limit = size
	filter.Offset = (page - 1) * size

	bookings, err := u.repo.ListBookings(ctx, filter)
	if err != nil {
		return response.BookingList{}, err
	}

	items := make([]response.Booking, 0, len(bookings))
	for _, b := range bookings {
		items = append(items, response.FromEntity(b))
	}
	return response.BookingList{Items: items, Page: page, PageSize: size}, nil
}

// RequestPayment opens a gateway payment order for the frozen grand total.
func (u *usecase) RequestPayment(ctx context.Context, bookingID uuid.UUID) (response.PaymentOrder, error) {
	if u.gateway == nil {
		return response.PaymentOrder{}, errors.ServiceUnavailable("payments are not configured")
	}

	b, err := u.repo.FindBookingByID(ctx, bookingID)
	if err != nil {
		return response.PaymentOrder{}, err
	}
	if b.IsEnquiryOnly {
		return response.PaymentOrder{}, errors.InvalidInput("enquiries cannot be paid")
	}
	if b.Status != entity.StatusBookingConfirmed && b.Status != entity.StatusCheckedIn {
		return response.PaymentOrder{}, errors.Conflict(fmt.Sprintf("booking in status %s cannot be paid", b.Status))
	}
	if b.PaymentStatus == entity.PaymentPaid || b.PaymentStatus == entity.PaymentRefunded {
		return response.PaymentOrder{}, errors.Conflict("booking is already paid")
	}

	intent, err := u.gateway.CreatePaymentOrder(ctx, payment.Order{
		BookingID:        b.ID.String(),
		BookingReference: b.BookingReference,
		Amount:           b.GrandTotal,
		Currency:         strings.ToLower(b.Currency),
	})
	if err != nil {
		u.log.Error(ctx, "error create payment order", err, zap.String("booking_id", b.ID.String()))
		return response.PaymentOrder{}, err
	}

	ref := sql.NullString{String: intent.Reference, Valid: true}
	if err := u.repo.UpdatePayment(ctx, b.ID, entity.PaymentPending, ref); err != nil {
		return response.PaymentOrder{}, err
	}

	return response.PaymentOrder{
		BookingID:        b.ID.String(),
		PaymentReference: intent.Reference,
		ClientSecret:     intent.ClientSecret,
		Amount:           b.GrandTotal,
		Currency:         b.Currency,
	}, nil
}

// HandlePaymentWebhook applies a verified gateway callback to the booking's
// payment status. Pricing is never touched.
func (u *usecase) HandlePaymentWebhook(ctx context.Context, payload []byte, signature string) error {
	if u.gateway == nil {
		return errors.ServiceUnavailable("payments are not configured")
	}

	evt, err := u.gateway.VerifyEvent(payload, signature)
	if err != nil {
		return err
	}
	if evt.Type == "" {
		return nil
	}

	b, err := u.repo.FindBookingByPaymentReference(ctx, evt.PaymentReference)
	if errors.IsKind(err, errors.KindNotFound) && evt.BookingID != "" {
		id, perr := uuid.Parse(evt.BookingID)
		if perr != nil {
			return errors.BadRequest("invalid booking id in payment metadata")
		}
		b, err = u.repo.FindBookingByID(ctx, id)
	}
	if err != nil {
		return err
	}

	status := entity.PaymentPaid
	if evt.Type == payment.EventPaymentFailed {
		if b.PaymentStatus == entity.PaymentPaid {
			return nil
		}
		status = entity.PaymentFailed
	}

	ref := sql.NullString{String: evt.PaymentReference, Valid: true}
	if err := u.repo.UpdatePayment(ctx, b.ID, status, ref); err != nil {
		return err
	}
	b.PaymentStatus = status

	u.log.Info(ctx, "booking payment updated", zap.String("booking_id", b.ID.String()), zap.String("payment_status", string(status)))
	u.publishEvent(ctx, EventBookingPaymentUpdated, b, "")
	return nil
}

func (u *usecase) publishEvent(ctx context.Context, eventType string, b entity.Booking, previous entity.Status) {
	if u.publisher == nil {
		return
	}

	payload, err := json.Marshal(request.BookingEvent{
		Type:             eventType,
		BookingID:        b.ID.String(),
		BookingReference: b.BookingReference,
		Status:           string(b.Status),
		PreviousStatus:   string(previous),
		GuestName:        b.GuestName,
		GuestEmail:       b.GuestEmail,
		CheckIn:          b.CheckInDate.Format(helpers.DateLayout),
		CheckOut:         b.CheckOutDate.Format(helpers.DateLayout),
		GrandTotal:       b.GrandTotal.StringFixed(2),
		Currency:         b.Currency,
		OccurredAt:       u.clock.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		u.log.Error(ctx, "error marshal booking event", err)
		return
	}

	if err := u.publisher.Publish(TopicBookingEvents, message.NewMessage(watermill.NewUUID(), payload)); err != nil {
		u.log.Error(ctx, "error publish booking event", err, zap.String("type", eventType))
	}
}

func (u *usecase) scheduleNoShow(ctx context.Context, b entity.Booking) {
	if u.tasks == nil || !u.schedCfg.EnableNoShow {
		return
	}
	at := b.CheckInDate.Add(u.schedCfg.NoShowGrace)
	if err := u.tasks.ScheduleNoShow(ctx, b.ID, at); err != nil {
		u.log.Error(ctx, "error schedule no-show check", err, zap.String("booking_id", b.ID.String()))
	}
}

func (u *usecase) cancelNoShow(ctx context.Context, b entity.Booking) {
	if u.tasks == nil || !u.schedCfg.EnableNoShow {
		return
	}
	if err := u.tasks.CancelNoShow(ctx, b.ID); err != nil {
		u.log.Warn(ctx, "error cancel no-show check", err, zap.String("booking_id", b.ID.String()))
	}
}

func (u *usecase) NotifyGuest(ctx context.Context, event *request.BookingEvent) error {
	if u.notifier == nil {
		u.log.Debug(ctx, "notifier disabled, skipping guest email", zap.String("type", event.Type))
		return nil
	}

	msg, ok := guestMessage(event)
	if !ok {
		return nil
	}
	return u.notifier.Send(ctx, msg)
}

func guestMessage(evt *request.BookingEvent) (notification.Message, bool) {
	var subject, body string
	switch {
	case evt.Type == EventBookingCreated && evt.Status == string(entity.StatusNewEnquiry):
		subject = fmt.Sprintf("We received your enquiry %s", evt.BookingReference)
		body = fmt.Sprintf("Dear %s,\n\nThank you for your enquiry for %s to %s. Our team will get back to you with a quote shortly.\n\nReference: %s\n",
			evt.GuestName, evt.CheckIn, evt.CheckOut, evt.BookingReference)
	case evt.Type == EventBookingCreated, evt.Type == EventBookingStatusChanged && evt.Status == string(entity.StatusBookingConfirmed):
		subject = fmt.Sprintf("Your booking %s is confirmed", evt.BookingReference)
		body = fmt.Sprintf("Dear %s,\n\nYour stay from %s to %s is confirmed.\nTotal: %s %s\n\nReference: %s\n",
			evt.GuestName, evt.CheckIn, evt.CheckOut, evt.GrandTotal, evt.Currency, evt.BookingReference)
	case evt.Type == EventBookingStatusChanged && evt.Status == string(entity.StatusCancelled):
		subject = fmt.Sprintf("Your booking %s is cancelled", evt.BookingReference)
		body = fmt.Sprintf("Dear %s,\n\nYour booking for %s to %s has been cancelled.\n\nReference: %s\n",
			evt.GuestName, evt.CheckIn, evt.CheckOut, evt.BookingReference)
	case evt.Type == EventBookingPaymentUpdated && evt.Status != "":
		subject = fmt.Sprintf("Payment update for booking %s", evt.BookingReference)
		body = fmt.Sprintf("Dear %s,\n\nWe have updated the payment of your booking %s.\n",
			evt.GuestName, evt.BookingReference)
	default:
		return notification.Message{}, false
	}
	return notification.Message{To: evt.GuestEmail, Subject: subject, Body: body}, true
}
