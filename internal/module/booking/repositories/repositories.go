package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"reservation-service/internal/module/booking/models/entity"
	catalog "reservation-service/internal/module/catalog/models/entity"
	"reservation-service/internal/pkg/database"
	"reservation-service/internal/pkg/errors"
	"reservation-service/internal/pkg/log"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

type repositories struct {
	db         *sqlx.DB
	log        log.Logger
	maxRetries uint64
}

type Repositories interface {
	// tx
	WithTx(ctx context.Context, fn func(ctx context.Context) error) error
	// db
	LockRoomCategory(ctx context.Context, id uuid.UUID) (catalog.RoomCategory, error)
	FindHoldingBookings(ctx context.Context, categoryID uuid.UUID, checkIn, checkOut time.Time) ([]entity.Booking, error)
	InsertBooking(ctx context.Context, booking entity.Booking) (entity.Booking, error)
	ExistsBookingReference(ctx context.Context, reference string) (bool, error)
	FindBookingByID(ctx context.Context, id uuid.UUID) (entity.Booking, error)
	FindBookingByIDForUpdate(ctx context.Context, id uuid.UUID) (entity.Booking, error)
	FindBookingByReference(ctx context.Context, reference string) (entity.Booking, error)
	FindBookingByPaymentReference(ctx context.Context, paymentReference string) (entity.Booking, error)
	UpdateBookingStatus(ctx context.Context, booking entity.Booking) error
	UpdateInternalNotes(ctx context.Context, id uuid.UUID, notes string) error
	UpdatePayment(ctx context.Context, id uuid.UUID, status entity.PaymentStatus, paymentReference sql.NullString) error
	ListBookings(ctx context.Context, filter entity.BookingFilter) ([]entity.Booking, error)
	CountBlockedDatesByBooking(ctx context.Context, bookingID uuid.UUID) (int, error)
	DeleteBlockedDatesByBooking(ctx context.Context, bookingID uuid.UUID) (int64, error)
}

func New(db *sqlx.DB, log log.Logger, maxRetries uint64) Repositories {
	return &repositories{
		db:         db,
		log:        log,
		maxRetries: maxRetries,
	}
}

// WithTx implements Repositories. fn runs in a serializable transaction and
// is re-run from scratch on serialization failure or deadlock.
func (r *repositories) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if database.TxFromContext(ctx) != nil {
		return fn(ctx)
	}

	attempt := 0
	return database.RetryOnSerializationFailure(ctx, r.maxRetries, func() error {
		attempt++
		if attempt > 1 {
			r.log.Warn(ctx, fmt.Sprintf("retrying serializable transaction, attempt %d", attempt))
		}
		return database.WithTx(ctx, r.db, &sql.TxOptions{Isolation: sql.LevelSerializable}, fn)
	})
}

// LockRoomCategory implements Repositories. Concurrent creates for the same
// category queue on this row lock until the holder commits.
func (r *repositories) LockRoomCategory(ctx context.Context, id uuid.UUID) (catalog.RoomCategory, error) {
	query := `SELECT * FROM room_categories WHERE id = $1 FOR UPDATE`
	var category catalog.RoomCategory
	err := sqlx.GetContext(ctx, database.Ext(ctx, r.db), &category, query, id)
	if err == sql.ErrNoRows {
		return catalog.RoomCategory{}, errors.NotFound("room category not found")
	}
	if err != nil {
		return catalog.RoomCategory{}, errors.Wrap(err, "error lock room category")
	}
	return category, nil
}

func holdingStatuses() pq.StringArray {
	return pq.StringArray{
		string(entity.StatusBookingConfirmed),
		string(entity.StatusCheckedIn),
		string(entity.StatusCheckedOut),
	}
}

// FindHoldingBookings implements Repositories. Returns inventory-holding
// bookings of the category whose stay overlaps [checkIn, checkOut).
func (r *repositories) FindHoldingBookings(ctx context.Context, categoryID uuid.UUID, checkIn, checkOut time.Time) ([]entity.Booking, error) {
	query := `
		SELECT * FROM bookings
		WHERE room_category_id = $1
			AND check_in_date < $3
			AND check_out_date > $2
			AND status = ANY($4)`
	bookings := []entity.Booking{}
	err := sqlx.SelectContext(ctx, database.Ext(ctx, r.db), &bookings, query, categoryID, checkIn, checkOut, holdingStatuses())
	if err != nil {
		return nil, errors.Wrap(err, "error find holding bookings")
	}
	return bookings, nil
}

// InsertBooking implements Repositories.
func (r *repositories) InsertBooking(ctx context.Context, b entity.Booking) (entity.Booking, error) {
	query := `
		INSERT INTO bookings (
			booking_reference, user_id, guest_name, guest_email, guest_phone, guest_country,
			check_in_date, check_out_date, num_adults, num_children, num_rooms, room_category_id,
			meal_plan, status, is_enquiry_only, nights, season_multiplier, base_price, extras_total,
			meal_plan_total, discount_amount, subtotal, tax_rate, taxes, grand_total, currency,
			payment_status, special_requests, internal_notes
		) VALUES (
			:booking_reference, :user_id, :guest_name, :guest_email, :guest_phone, :guest_country,
			:check_in_date, :check_out_date, :num_adults, :num_children, :num_rooms, :room_category_id,
			:meal_plan, :status, :is_enquiry_only, :nights, :season_multiplier, :base_price, :extras_total,
			:meal_plan_total, :discount_amount, :subtotal, :tax_rate, :taxes, :grand_total, :currency,
			:payment_status, :special_requests, :internal_notes
		) RETURNING id, created_at, updated_at`

	rows, err := sqlx.NamedQueryContext(ctx, database.Ext(ctx, r.db), query, b)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return entity.Booking{}, errors.Conflict("booking reference already exists")
		}
		return entity.Booking{}, errors.Wrap(err, "error insert booking")
	}
	defer rows.Close()

	if rows.Next() {
		if err := rows.Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return entity.Booking{}, errors.Wrap(err, "error scan inserted booking")
		}
	}
	if err := rows.Err(); err != nil {
		return entity.Booking{}, errors.Wrap(err, "error insert booking")
	}
	return b, nil
}

// ExistsBookingReference implements Repositories.
func (r *repositories) ExistsBookingReference(ctx context.Context, reference string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM bookings WHERE booking_reference = $1)`
	var exists bool
	if err := sqlx.GetContext(ctx, database.Ext(ctx, r.db), &exists, query, reference); err != nil {
		return false, errors.Wrap(err, "error check booking reference")
	}
	return exists, nil
}

func (r *repositories) findOne(ctx context.Context, query, what string, args ...interface{}) (entity.Booking, error) {
	var booking entity.Booking
	err := sqlx.GetContext(ctx, database.Ext(ctx, r.db), &booking, query, args...)
	if err == sql.ErrNoRows {
		return entity.Booking{}, errors.NotFound("booking not found")
	}
	if err != nil {
		return entity.Booking{}, errors.Wrap(err, "error find booking by "+what)
	}
	return booking, nil
}

// FindBookingByID implements Repositories.
func (r *repositories) FindBookingByID(ctx context.Context, id uuid.UUID) (entity.Booking, error) {
	return r.findOne(ctx, `SELECT * FROM bookings WHERE id = $1`, "id", id)
}

// FindBookingByIDForUpdate implements Repositories.
func (r *repositories) FindBookingByIDForUpdate(ctx context.Context, id uuid.UUID) (entity.Booking, error) {
	return r.findOne(ctx, `SELECT * FROM bookings WHERE id = $1 FOR UPDATE`, "id", id)
}

// FindBookingByReference implements Repositories.
func (r *repositories) FindBookingByReference(ctx context.Context, reference string) (entity.Booking, error) {
	return r.findOne(ctx, `SELECT * FROM bookings WHERE booking_reference = $1`, "reference", reference)
}

// FindBookingByPaymentReference implements Repositories.
func (r *repositories) FindBookingByPaymentReference(ctx context.Context, paymentReference string) (entity.Booking, error) {
	return r.findOne(ctx, `SELECT * FROM bookings WHERE payment_reference = $1`, "payment reference", paymentReference)
}

// UpdateBookingStatus implements Repositories. Only status and updated_at
// change; pricing columns are never written after insert.
func (r *repositories) UpdateBookingStatus(ctx context.Context, b entity.Booking) error {
	query := `UPDATE bookings SET status = $2, updated_at = $3 WHERE id = $1`
	res, err := database.Ext(ctx, r.db).ExecContext(ctx, query, b.ID, b.Status, b.UpdatedAt)
	if err != nil {
		return errors.Wrap(err, "error update booking status")
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return errors.NotFound("booking not found")
	}
	return nil
}

// UpdateInternalNotes implements Repositories.
func (r *repositories) UpdateInternalNotes(ctx context.Context, id uuid.UUID, notes string) error {
	query := `UPDATE bookings SET internal_notes = $2, updated_at = NOW() WHERE id = $1`
	res, err := database.Ext(ctx, r.db).ExecContext(ctx, query, id, notes)
	if err != nil {
		return errors.Wrap(err, "error update booking internal notes")
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return errors.NotFound("booking not found")
	}
	return nil
}

// UpdatePayment implements Repositories.
func (r *repositories) UpdatePayment(ctx context.Context, id uuid.UUID, status entity.PaymentStatus, paymentReference sql.NullString) error {
	query := `
		UPDATE bookings
		SET payment_status = $2, payment_reference = COALESCE($3, payment_reference), updated_at = NOW()
		WHERE id = $1`
	res, err := database.Ext(ctx, r.db).ExecContext(ctx, query, id, status, paymentReference)
	if err != nil {
		return errors.Wrap(err, "error update booking payment")
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return errors.NotFound("booking not found")
	}
	return nil
}

// ListBookings implements Repositories.
func (r *repositories) ListBookings(ctx context.Context, filter entity.BookingFilter) ([]entity.Booking, error) {
	var (
		conds []string
		args  []interface{}
	)
	add := func(cond string, arg interface{}) {
		args = append(args, arg)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}

	if filter.Status != "" {
		add("status = $%d", filter.Status)
	}
	if filter.RoomCategoryID.Valid {
		add("room_category_id = $%d", filter.RoomCategoryID.UUID)
	}
	if !filter.From.IsZero() {
		add("check_out_date > $%d", filter.From)
	}
	if !filter.To.IsZero() {
		add("check_in_date < $%d", filter.To)
	}

	query := `SELECT * FROM bookings`
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	args = append(args, filter.Limit, filter.Offset)
	query += fmt.Sprintf(" ORDER BY check_in_date, created_at LIMIT $%d OFFSET $%d", len(args)-1, len(args))

	bookings := []entity.Booking{}
	if err := sqlx.SelectContext(ctx, database.Ext(ctx, r.db), &bookings, query, args...); err != nil {
		return nil, errors.Wrap(err, "error list bookings")
	}
	return bookings, nil
}

// CountBlockedDatesByBooking implements Repositories.
func (r *repositories) CountBlockedDatesByBooking(ctx context.Context, bookingID uuid.UUID) (int, error) {
	query := `SELECT COUNT(*) FROM blocked_dates WHERE booking_id = $1`
	var count int
	if err := sqlx.GetContext(ctx, database.Ext(ctx, r.db), &count, query, bookingID); err != nil {
		return 0, errors.Wrap(err, "error count blocked dates by booking")
	}
	return count, nil
}

// DeleteBlockedDatesByBooking implements Repositories.
func (r *repositories) DeleteBlockedDatesByBooking(ctx context.Context, bookingID uuid.UUID) (int64, error) {
	query := `DELETE FROM blocked_dates WHERE booking_id = $1`
	res, err := database.Ext(ctx, r.db).ExecContext(ctx, query, bookingID)
	if err != nil {
		return 0, errors.Wrap(err, "error delete blocked dates by booking")
	}
	n, _ := res.RowsAffected()
	return n, nil
}
