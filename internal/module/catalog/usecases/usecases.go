package usecases

import (
	"context"

	"reservation-service/internal/module/catalog/models/entity"
	"reservation-service/internal/module/catalog/models/request"
	"reservation-service/internal/module/catalog/repositories"
	"reservation-service/internal/pkg/errors"
	"reservation-service/internal/pkg/helpers"
	"reservation-service/internal/pkg/log"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type usecase struct {
	repo repositories.Repositories
	log  log.Logger
}

type Usecase interface {
	// room categories
	CreateRoomCategory(ctx context.Context, payload *request.RoomCategory) (entity.RoomCategory, error)
	UpdateRoomCategory(ctx context.Context, id uuid.UUID, payload *request.RoomCategory) (entity.RoomCategory, error)
	GetRoomCategory(ctx context.Context, id uuid.UUID) (entity.RoomCategory, error)
	ListRoomCategories(ctx context.Context, activeOnly bool) ([]entity.RoomCategory, error)
	// rooms
	AddRoom(ctx context.Context, categoryID uuid.UUID, payload *request.Room) (entity.Room, error)
	ListRooms(ctx context.Context, categoryID uuid.UUID) ([]entity.Room, error)
	UpdateHousekeepingStatus(ctx context.Context, roomID uuid.UUID, payload *request.HousekeepingStatus) error
	// pricing rules
	CreateSeason(ctx context.Context, payload *request.Season) (entity.Season, error)
	ListSeasons(ctx context.Context) ([]entity.Season, error)
	SaveMealPlan(ctx context.Context, payload *request.MealPlan) (entity.MealPlan, error)
	ListMealPlans(ctx context.Context, activeOnly bool) ([]entity.MealPlan, error)
	CreateTaxConfig(ctx context.Context, payload *request.TaxConfig) (entity.TaxConfig, error)
	ActivateTaxConfig(ctx context.Context, id uuid.UUID) error
	// manual blocks
	BlockDates(ctx context.Context, payload *request.BlockedDates) ([]entity.BlockedDate, error)
	UnblockDate(ctx context.Context, id uuid.UUID) error
}

func New(repo repositories.Repositories, log log.Logger) Usecase {
	return &usecase{
		repo: repo,
		log:  log,
	}
}

func boolOr(v *bool, def bool) bool {
	if v == nil {
		return def
	}
	return *v
}

func categoryFromRequest(payload *request.RoomCategory) entity.RoomCategory {
	s := payload.Slug
	if s == "" {
		s = payload.Name
	}
	return entity.RoomCategory{
		Name:              payload.Name,
		Slug:              slug.Make(s),
		Description:       payload.Description,
		BasePricePerNight: payload.BasePricePerNight,
		BaseOccupancy:     payload.BaseOccupancy,
		MaxAdults:         payload.MaxAdults,
		MaxChildren:       payload.MaxChildren,
		ExtraAdultPrice:   payload.ExtraAdultPrice,
		ExtraChildPrice:   payload.ExtraChildPrice,
		TotalRooms:        payload.TotalRooms,
		IsActive:          boolOr(payload.IsActive, true),
	}
}

func (u *usecase) CreateRoomCategory(ctx context.Context, payload *request.RoomCategory) (entity.RoomCategory, error) {
	category := categoryFromRequest(payload)
	if err := category.Validate(); err != nil {
		return entity.RoomCategory{}, errors.InvalidInput(err.Error())
	}

	created, err := u.repo.InsertRoomCategory(ctx, category)
	if err != nil {
		u.log.Error(ctx, "error insert room category", err)
		return entity.RoomCategory{}, err
	}

	u.log.Info(ctx, "room category created", zap.String("room_category_id", created.ID.String()), zap.String("slug", created.Slug))
	return created, nil
}

func (u *usecase) UpdateRoomCategory(ctx context.Context, id uuid.UUID, payload *request.RoomCategory) (entity.RoomCategory, error) {
	category := categoryFromRequest(payload)
	category.ID = id
	if err := category.Validate(); err != nil {
		return entity.RoomCategory{}, errors.InvalidInput(err.Error())
	}

	updated, err := u.repo.UpdateRoomCategory(ctx, category)
	if err != nil {
		u.log.Error(ctx, "error update room category", err)
		return entity.RoomCategory{}, err
	}
	return updated, nil
}

func (u *usecase) GetRoomCategory(ctx context.Context, id uuid.UUID) (entity.RoomCategory, error) {
	return u.repo.FindRoomCategoryByID(ctx, id)
}

func (u *usecase) ListRoomCategories(ctx context.Context, activeOnly bool) ([]entity.RoomCategory, error) {
	return u.repo.ListRoomCategories(ctx, activeOnly)
}

func (u *usecase) AddRoom(ctx context.Context, categoryID uuid.UUID, payload *request.Room) (entity.Room, error) {
	if _, err := u.repo.FindRoomCategoryByID(ctx, categoryID); err != nil {
		return entity.Room{}, err
	}

	room, err := u.repo.InsertRoom(ctx, entity.Room{
		RoomCategoryID:     categoryID,
		RoomNumber:         payload.RoomNumber,
		Floor:              payload.Floor,
		HousekeepingStatus: entity.HousekeepingAvailable,
		IsActive:           boolOr(payload.IsActive, true),
	})
	if err != nil {
		u.log.Error(ctx, "error insert room", err)
		return entity.Room{}, err
	}
	return room, nil
}

func (u *usecase) ListRooms(ctx context.Context, categoryID uuid.UUID) ([]entity.Room, error) {
	return u.repo.FindRoomsByCategory(ctx, categoryID)
}

// UpdateHousekeepingStatus is informational; availability never reads it.
func (u *usecase) UpdateHousekeepingStatus(ctx context.Context, roomID uuid.UUID, payload *request.HousekeepingStatus) error {
	status, err := entity.ParseHousekeepingStatus(payload.Status)
	if err != nil {
		return errors.InvalidInput(err.Error())
	}
	return u.repo.UpdateRoomHousekeeping(ctx, roomID, status)
}

func (u *usecase) CreateSeason(ctx context.Context, payload *request.Season) (entity.Season, error) {
	seasonType, err := entity.ParseSeasonType(payload.SeasonType)
	if err != nil {
		return entity.Season{}, errors.InvalidInput(err.Error())
	}
	start, err := helpers.ParseDate(payload.StartDate)
	if err != nil {
		return entity.Season{}, err
	}
	end, err := helpers.ParseDate(payload.EndDate)
	if err != nil {
		return entity.Season{}, err
	}

	season := entity.Season{
		Name:            payload.Name,
		SeasonType:      seasonType,
		StartDate:       start,
		EndDate:         end,
		PriceMultiplier: payload.PriceMultiplier,
		IsActive:        boolOr(payload.IsActive, true),
	}
	if err := season.Validate(); err != nil {
		return entity.Season{}, errors.InvalidInput(err.Error())
	}

	created, err := u.repo.InsertSeason(ctx, season)
	if err != nil {
		u.log.Error(ctx, "error insert season", err)
		return entity.Season{}, err
	}
	return created, nil
}

func (u *usecase) ListSeasons(ctx context.Context) ([]entity.Season, error) {
	return u.repo.ListSeasons(ctx)
}

func (u *usecase) SaveMealPlan(ctx context.Context, payload *request.MealPlan) (entity.MealPlan, error) {
	code, err := entity.ParseMealPlanCode(payload.Code)
	if err != nil {
		return entity.MealPlan{}, errors.InvalidInput(err.Error())
	}
	if payload.AdultPrice.IsNegative() || payload.ChildPrice.IsNegative() {
		return entity.MealPlan{}, errors.InvalidInput("meal plan prices must not be negative")
	}

	return u.repo.UpsertMealPlan(ctx, entity.MealPlan{
		Code:       code,
		Name:       payload.Name,
		AdultPrice: payload.AdultPrice,
		ChildPrice: payload.ChildPrice,
		IsActive:   boolOr(payload.IsActive, true),
	})
}

func (u *usecase) ListMealPlans(ctx context.Context, activeOnly bool) ([]entity.MealPlan, error) {
	return u.repo.ListMealPlans(ctx, activeOnly)
}

func (u *usecase) CreateTaxConfig(ctx context.Context, payload *request.TaxConfig) (entity.TaxConfig, error) {
	if payload.Percentage.IsNegative() || payload.Percentage.GreaterThan(decimal.NewFromInt(100)) {
		return entity.TaxConfig{}, errors.InvalidInput("percentage must be between 0 and 100")
	}
	return u.repo.InsertTaxConfig(ctx, entity.TaxConfig{
		Name:       payload.Name,
		Percentage: payload.Percentage,
	})
}

func (u *usecase) ActivateTaxConfig(ctx context.Context, id uuid.UUID) error {
	if err := u.repo.ActivateTaxConfig(ctx, id); err != nil {
		u.log.Error(ctx, "error activate tax config", err)
		return err
	}
	u.log.Info(ctx, "tax config activated", zap.String("tax_config_id", id.String()))
	return nil
}

func (u *usecase) BlockDates(ctx context.Context, payload *request.BlockedDates) ([]entity.BlockedDate, error) {
	roomID, err := uuid.Parse(payload.RoomID)
	if err != nil {
		return nil, errors.InvalidInput("invalid room_id")
	}
	reason, err := entity.ParseBlockReason(payload.Reason)
	if err != nil || reason == entity.BlockReasonBooking {
		return nil, errors.InvalidInput("reason must be maintenance or manual_hold")
	}
	from, err := helpers.ParseDate(payload.From)
	if err != nil {
		return nil, err
	}
	to, err := helpers.ParseDate(payload.To)
	if err != nil {
		return nil, err
	}
	if err := helpers.ValidateStay(from, to); err != nil {
		return nil, err
	}

	var blocks []entity.BlockedDate
	for _, night := range helpers.EachNight(from, to) {
		blocks = append(blocks, entity.BlockedDate{
			RoomID:      roomID,
			BlockedDate: night,
			Reason:      reason,
			Notes:       payload.Notes,
		})
	}

	if err := u.repo.InsertBlockedDates(ctx, blocks); err != nil {
		u.log.Error(ctx, "error insert blocked dates", err)
		return nil, err
	}
	return blocks, nil
}

func (u *usecase) UnblockDate(ctx context.Context, id uuid.UUID) error {
	return u.repo.DeleteBlockedDate(ctx, id)
}
