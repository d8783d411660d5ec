package repositories

import (
	"context"
	"database/sql"
	stderrors "errors"
	"fmt"
	"time"

	"reservation-service/internal/module/catalog/models/entity"
	"reservation-service/internal/pkg/database"
	"reservation-service/internal/pkg/errors"
	"reservation-service/internal/pkg/log"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
)

const roomCategoryCacheKey = "room_category:%s"

type repositories struct {
	db          *sqlx.DB
	log         log.Logger
	redisClient *redis.Client
	cacheTTL    time.Duration
}

type Repositories interface {
	// room categories
	FindRoomCategoryByID(ctx context.Context, id uuid.UUID) (entity.RoomCategory, error)
	ListRoomCategories(ctx context.Context, activeOnly bool) ([]entity.RoomCategory, error)
	InsertRoomCategory(ctx context.Context, category entity.RoomCategory) (entity.RoomCategory, error)
	UpdateRoomCategory(ctx context.Context, category entity.RoomCategory) (entity.RoomCategory, error)
	// rooms
	FindRoomsByCategory(ctx context.Context, categoryID uuid.UUID) ([]entity.Room, error)
	InsertRoom(ctx context.Context, room entity.Room) (entity.Room, error)
	UpdateRoomHousekeeping(ctx context.Context, roomID uuid.UUID, status entity.HousekeepingStatus) error
	// pricing rules
	FindSeasonsCovering(ctx context.Context, day time.Time) ([]entity.Season, error)
	ListSeasons(ctx context.Context) ([]entity.Season, error)
	InsertSeason(ctx context.Context, season entity.Season) (entity.Season, error)
	FindMealPlanByCode(ctx context.Context, code entity.MealPlanCode) (entity.MealPlan, error)
	ListMealPlans(ctx context.Context, activeOnly bool) ([]entity.MealPlan, error)
	UpsertMealPlan(ctx context.Context, plan entity.MealPlan) (entity.MealPlan, error)
	FindActiveTaxConfigs(ctx context.Context) ([]entity.TaxConfig, error)
	InsertTaxConfig(ctx context.Context, tax entity.TaxConfig) (entity.TaxConfig, error)
	ActivateTaxConfig(ctx context.Context, id uuid.UUID) error
	// blocked dates
	FindBlockedDates(ctx context.Context, categoryID uuid.UUID, from, to time.Time) ([]entity.BlockedDate, error)
	InsertBlockedDates(ctx context.Context, blocks []entity.BlockedDate) error
	DeleteBlockedDate(ctx context.Context, id uuid.UUID) error
}

func New(db *sqlx.DB, log log.Logger, redisClient *redis.Client, cacheTTL time.Duration) Repositories {
	return &repositories{
		db:          db,
		log:         log,
		redisClient: redisClient,
		cacheTTL:    cacheTTL,
	}
}

// FindRoomCategoryByID implements Repositories. Reads outside a transaction
// are served from the Redis cache when available.
func (r *repositories) FindRoomCategoryByID(ctx context.Context, id uuid.UUID) (entity.RoomCategory, error) {
	useCache := r.redisClient != nil && database.TxFromContext(ctx) == nil
	key := fmt.Sprintf(roomCategoryCacheKey, id)

	if useCache {
		data, err := r.redisClient.Get(ctx, key).Bytes()
		if err == nil {
			var cached entity.RoomCategory
			if err := json.Unmarshal(data, &cached); err == nil {
				return cached, nil
			}
		} else if !stderrors.Is(err, redis.Nil) {
			r.log.Warn(ctx, "error get room category cache", err)
		}
	}

	query := `SELECT * FROM room_categories WHERE id = $1`
	var category entity.RoomCategory
	err := sqlx.GetContext(ctx, database.Ext(ctx, r.db), &category, query, id)
	if err == sql.ErrNoRows {
		return entity.RoomCategory{}, errors.NotFound("room category not found")
	}
	if err != nil {
		return entity.RoomCategory{}, errors.Wrap(err, "error find room category by id")
	}

	if useCache {
		if data, err := json.Marshal(category); err == nil {
			if err := r.redisClient.Set(ctx, key, data, r.cacheTTL).Err(); err != nil {
				r.log.Warn(ctx, "error set room category cache", err)
			}
		}
	}
	return category, nil
}

// ListRoomCategories implements Repositories.
func (r *repositories) ListRoomCategories(ctx context.Context, activeOnly bool) ([]entity.RoomCategory, error) {
	query := `SELECT * FROM room_categories WHERE ($1 = FALSE OR is_active) ORDER BY name`
	categories := []entity.RoomCategory{}
	if err := sqlx.SelectContext(ctx, database.Ext(ctx, r.db), &categories, query, activeOnly); err != nil {
		return nil, errors.Wrap(err, "error list room categories")
	}
	return categories, nil
}

// InsertRoomCategory implements Repositories.
func (r *repositories) InsertRoomCategory(ctx context.Context, c entity.RoomCategory) (entity.RoomCategory, error) {
	query := `
		INSERT INTO room_categories (name, slug, description, base_price_per_night, base_occupancy, max_adults,
			max_children, extra_adult_price, extra_child_price, total_rooms, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING *`
	var created entity.RoomCategory
	err := sqlx.GetContext(ctx, database.Ext(ctx, r.db), &created, query,
		c.Name, c.Slug, c.Description, c.BasePricePerNight, c.BaseOccupancy, c.MaxAdults,
		c.MaxChildren, c.ExtraAdultPrice, c.ExtraChildPrice, c.TotalRooms, c.IsActive)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return entity.RoomCategory{}, errors.Conflict("room category slug already exists")
		}
		return entity.RoomCategory{}, errors.Wrap(err, "error insert room category")
	}
	return created, nil
}

// UpdateRoomCategory implements Repositories.
func (r *repositories) UpdateRoomCategory(ctx context.Context, c entity.RoomCategory) (entity.RoomCategory, error) {
	query := `
		UPDATE room_categories
		SET name = $2, slug = $3, description = $4, base_price_per_night = $5, base_occupancy = $6,
			max_adults = $7, max_children = $8, extra_adult_price = $9, extra_child_price = $10,
			total_rooms = $11, is_active = $12, updated_at = NOW()
		WHERE id = $1
		RETURNING *`
	var updated entity.RoomCategory
	err := sqlx.GetContext(ctx, database.Ext(ctx, r.db), &updated, query,
		c.ID, c.Name, c.Slug, c.Description, c.BasePricePerNight, c.BaseOccupancy,
		c.MaxAdults, c.MaxChildren, c.ExtraAdultPrice, c.ExtraChildPrice, c.TotalRooms, c.IsActive)
	if err == sql.ErrNoRows {
		return entity.RoomCategory{}, errors.NotFound("room category not found")
	}
	if err != nil {
		if database.IsUniqueViolation(err) {
			return entity.RoomCategory{}, errors.Conflict("room category slug already exists")
		}
		return entity.RoomCategory{}, errors.Wrap(err, "error update room category")
	}

	r.invalidateRoomCategory(ctx, c.ID)
	return updated, nil
}

func (r *repositories) invalidateRoomCategory(ctx context.Context, id uuid.UUID) {
	if r.redisClient == nil {
		return
	}
	if err := r.redisClient.Del(ctx, fmt.Sprintf(roomCategoryCacheKey, id)).Err(); err != nil {
		r.log.Warn(ctx, "error invalidate room category cache", err)
	}
}

// FindRoomsByCategory implements Repositories.
func (r *repositories) FindRoomsByCategory(ctx context.Context, categoryID uuid.UUID) ([]entity.Room, error) {
	query := `SELECT * FROM rooms WHERE room_category_id = $1 ORDER BY room_number`
	rooms := []entity.Room{}
	if err := sqlx.SelectContext(ctx, database.Ext(ctx, r.db), &rooms, query, categoryID); err != nil {
		return nil, errors.Wrap(err, "error find rooms by category")
	}
	return rooms, nil
}

// InsertRoom implements Repositories.
func (r *repositories) InsertRoom(ctx context.Context, room entity.Room) (entity.Room, error) {
	query := `
		INSERT INTO rooms (room_category_id, room_number, floor, housekeeping_status, is_active)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING *`
	var created entity.Room
	err := sqlx.GetContext(ctx, database.Ext(ctx, r.db), &created, query,
		room.RoomCategoryID, room.RoomNumber, room.Floor, room.HousekeepingStatus, room.IsActive)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return entity.Room{}, errors.Conflict("room number already exists")
		}
		return entity.Room{}, errors.Wrap(err, "error insert room")
	}
	return created, nil
}

// UpdateRoomHousekeeping implements Repositories.
func (r *repositories) UpdateRoomHousekeeping(ctx context.Context, roomID uuid.UUID, status entity.HousekeepingStatus) error {
	query := `UPDATE rooms SET housekeeping_status = $2, updated_at = NOW() WHERE id = $1`
	res, err := database.Ext(ctx, r.db).ExecContext(ctx, query, roomID, status)
	if err != nil {
		return errors.Wrap(err, "error update room housekeeping status")
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return errors.NotFound("room not found")
	}
	return nil
}

// FindSeasonsCovering implements Repositories.
func (r *repositories) FindSeasonsCovering(ctx context.Context, day time.Time) ([]entity.Season, error) {
	query := `SELECT * FROM seasons WHERE is_active AND start_date <= $1 AND end_date >= $1`
	seasons := []entity.Season{}
	if err := sqlx.SelectContext(ctx, database.Ext(ctx, r.db), &seasons, query, day); err != nil {
		return nil, errors.Wrap(err, "error find seasons covering date")
	}
	return seasons, nil
}

// ListSeasons implements Repositories.
func (r *repositories) ListSeasons(ctx context.Context) ([]entity.Season, error) {
	query := `SELECT * FROM seasons ORDER BY start_date, created_at`
	seasons := []entity.Season{}
	if err := sqlx.SelectContext(ctx, database.Ext(ctx, r.db), &seasons, query); err != nil {
		return nil, errors.Wrap(err, "error list seasons")
	}
	return seasons, nil
}

// InsertSeason implements Repositories.
func (r *repositories) InsertSeason(ctx context.Context, s entity.Season) (entity.Season, error) {
	query := `
		INSERT INTO seasons (name, season_type, start_date, end_date, price_multiplier, is_active)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING *`
	var created entity.Season
	err := sqlx.GetContext(ctx, database.Ext(ctx, r.db), &created, query,
		s.Name, s.SeasonType, s.StartDate, s.EndDate, s.PriceMultiplier, s.IsActive)
	if err != nil {
		return entity.Season{}, errors.Wrap(err, "error insert season")
	}
	return created, nil
}

// FindMealPlanByCode implements Repositories.
func (r *repositories) FindMealPlanByCode(ctx context.Context, code entity.MealPlanCode) (entity.MealPlan, error) {
	query := `SELECT * FROM meal_plans WHERE code = $1`
	var plan entity.MealPlan
	err := sqlx.GetContext(ctx, database.Ext(ctx, r.db), &plan, query, code)
	if err == sql.ErrNoRows {
		return entity.MealPlan{}, errors.NotFound("meal plan not found")
	}
	if err != nil {
		return entity.MealPlan{}, errors.Wrap(err, "error find meal plan by code")
	}
	return plan, nil
}

// ListMealPlans implements Repositories.
func (r *repositories) ListMealPlans(ctx context.Context, activeOnly bool) ([]entity.MealPlan, error) {
	query := `SELECT * FROM meal_plans WHERE ($1 = FALSE OR is_active) ORDER BY adult_price, code`
	plans := []entity.MealPlan{}
	if err := sqlx.SelectContext(ctx, database.Ext(ctx, r.db), &plans, query, activeOnly); err != nil {
		return nil, errors.Wrap(err, "error list meal plans")
	}
	return plans, nil
}

// UpsertMealPlan implements Repositories.
func (r *repositories) UpsertMealPlan(ctx context.Context, m entity.MealPlan) (entity.MealPlan, error) {
	query := `
		INSERT INTO meal_plans (code, name, adult_price, child_price, is_active)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (code) DO UPDATE
		SET name = EXCLUDED.name, adult_price = EXCLUDED.adult_price,
			child_price = EXCLUDED.child_price, is_active = EXCLUDED.is_active
		RETURNING *`
	var saved entity.MealPlan
	err := sqlx.GetContext(ctx, database.Ext(ctx, r.db), &saved, query,
		m.Code, m.Name, m.AdultPrice, m.ChildPrice, m.IsActive)
	if err != nil {
		return entity.MealPlan{}, errors.Wrap(err, "error upsert meal plan")
	}
	return saved, nil
}

// FindActiveTaxConfigs implements Repositories.
func (r *repositories) FindActiveTaxConfigs(ctx context.Context) ([]entity.TaxConfig, error) {
	query := `SELECT * FROM tax_configs WHERE is_active ORDER BY created_at DESC`
	configs := []entity.TaxConfig{}
	if err := sqlx.SelectContext(ctx, database.Ext(ctx, r.db), &configs, query); err != nil {
		return nil, errors.Wrap(err, "error find active tax configs")
	}
	return configs, nil
}

// InsertTaxConfig implements Repositories.
func (r *repositories) InsertTaxConfig(ctx context.Context, t entity.TaxConfig) (entity.TaxConfig, error) {
	query := `
		INSERT INTO tax_configs (name, percentage, is_active)
		VALUES ($1, $2, FALSE)
		RETURNING *`
	var created entity.TaxConfig
	if err := sqlx.GetContext(ctx, database.Ext(ctx, r.db), &created, query, t.Name, t.Percentage); err != nil {
		return entity.TaxConfig{}, errors.Wrap(err, "error insert tax config")
	}
	return created, nil
}

// ActivateTaxConfig implements Repositories. The other configs are
// deactivated in the same transaction so one stays active.
func (r *repositories) ActivateTaxConfig(ctx context.Context, id uuid.UUID) error {
	return database.WithTx(ctx, r.db, nil, func(txCtx context.Context) error {
		ext := database.Ext(txCtx, r.db)
		res, err := ext.ExecContext(txCtx, `UPDATE tax_configs SET is_active = TRUE WHERE id = $1`, id)
		if err != nil {
			return errors.Wrap(err, "error activate tax config")
		}
		if n, _ := res.RowsAffected(); n == 0 {
			return errors.NotFound("tax config not found")
		}
		if _, err := ext.ExecContext(txCtx, `UPDATE tax_configs SET is_active = FALSE WHERE id <> $1`, id); err != nil {
			return errors.Wrap(err, "error deactivate tax configs")
		}
		return nil
	})
}

// FindBlockedDates implements Repositories. Returns blocks on the category's
// rooms for dates in [from, to).
func (r *repositories) FindBlockedDates(ctx context.Context, categoryID uuid.UUID, from, to time.Time) ([]entity.BlockedDate, error) {
	query := `
		SELECT bd.* FROM blocked_dates bd
		JOIN rooms rm ON rm.id = bd.room_id
		WHERE rm.room_category_id = $1 AND bd.blocked_date >= $2 AND bd.blocked_date < $3
		ORDER BY bd.blocked_date`
	blocks := []entity.BlockedDate{}
	if err := sqlx.SelectContext(ctx, database.Ext(ctx, r.db), &blocks, query, categoryID, from, to); err != nil {
		return nil, errors.Wrap(err, "error find blocked dates")
	}
	return blocks, nil
}

// InsertBlockedDates implements Repositories.
func (r *repositories) InsertBlockedDates(ctx context.Context, blocks []entity.BlockedDate) error {
	if len(blocks) == 0 {
		return nil
	}
	query := `
		INSERT INTO blocked_dates (room_id, blocked_date, reason, booking_id, notes)
		VALUES (:room_id, :blocked_date, :reason, :booking_id, :notes)`
	if _, err := sqlx.NamedExecContext(ctx, database.Ext(ctx, r.db), query, blocks); err != nil {
		if database.IsUniqueViolation(err) {
			return errors.Conflict("room is already blocked on one of the dates")
		}
		return errors.Wrap(err, "error insert blocked dates")
	}
	return nil
}

// DeleteBlockedDate implements Repositories. Booking holds are released
// through the booking lifecycle only.
func (r *repositories) DeleteBlockedDate(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM blocked_dates WHERE id = $1 AND booking_id IS NULL`
	res, err := database.Ext(ctx, r.db).ExecContext(ctx, query, id)
	if err != nil {
		return errors.Wrap(err, "error delete blocked date")
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return errors.NotFound("manual blocked date not found")
	}
	return nil
}
