package handler

import (
	"fmt"

	"reservation-service/internal/module/catalog/models/request"
	"reservation-service/internal/module/catalog/usecases"
	"reservation-service/internal/pkg/errors"
	"reservation-service/internal/pkg/helpers"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
)

type CatalogHandler struct {
	Log       *otelzap.Logger
	Validator *validator.Validate
	Usecase   usecases.Usecase
}

func (h *CatalogHandler) parse(ctx *fiber.Ctx, req interface{}) error {
	if err := ctx.BodyParser(req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error parse request: %v", err))
		return errors.BadRequest("error parse request")
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error validate request: %v", err))
		return errors.BadRequest(err.Error())
	}
	return nil
}

func (h *CatalogHandler) CreateRoomCategory(ctx *fiber.Ctx) error {
	var req request.RoomCategory
	if err := h.parse(ctx, &req); err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}

	resp, err := h.Usecase.CreateRoomCategory(ctx.UserContext(), &req)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error create room category: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespCreated(ctx, h.Log, resp, "success create room category")
}

func (h *CatalogHandler) UpdateRoomCategory(ctx *fiber.Ctx) error {
	id, err := helpers.ParseUUID(ctx.Params("id"), "room category id")
	if err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}

	var req request.RoomCategory
	if err := h.parse(ctx, &req); err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}

	resp, err := h.Usecase.UpdateRoomCategory(ctx.UserContext(), id, &req)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error update room category: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success update room category")
}

func (h *CatalogHandler) GetRoomCategory(ctx *fiber.Ctx) error {
	id, err := helpers.ParseUUID(ctx.Params("id"), "room category id")
	if err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}

	resp, err := h.Usecase.GetRoomCategory(ctx.UserContext(), id)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error get room category: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success get room category")
}

// ListActiveRoomCategories serves the guest-facing catalog.
func (h *CatalogHandler) ListActiveRoomCategories(ctx *fiber.Ctx) error {
	resp, err := h.Usecase.ListRoomCategories(ctx.UserContext(), true)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error list room categories: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success list room categories")
}

func (h *CatalogHandler) ListRoomCategories(ctx *fiber.Ctx) error {
	resp, err := h.Usecase.ListRoomCategories(ctx.UserContext(), false)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error list room categories: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success list room categories")
}

func (h *CatalogHandler) AddRoom(ctx *fiber.Ctx) error {
	categoryID, err := helpers.ParseUUID(ctx.Params("id"), "room category id")
	if err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}

	var req request.Room
	if err := h.parse(ctx, &req); err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}

	resp, err := h.Usecase.AddRoom(ctx.UserContext(), categoryID, &req)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error add room: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespCreated(ctx, h.Log, resp, "success add room")
}

func (h *CatalogHandler) ListRooms(ctx *fiber.Ctx) error {
	categoryID, err := helpers.ParseUUID(ctx.Params("id"), "room category id")
	if err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}

	resp, err := h.Usecase.ListRooms(ctx.UserContext(), categoryID)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error list rooms: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success list rooms")
}

func (h *CatalogHandler) UpdateHousekeepingStatus(ctx *fiber.Ctx) error {
	roomID, err := helpers.ParseUUID(ctx.Params("id"), "room id")
	if err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}

	var req request.HousekeepingStatus
	if err := h.parse(ctx, &req); err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}

	if err := h.Usecase.UpdateHousekeepingStatus(ctx.UserContext(), roomID, &req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error update housekeeping status: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, nil, "success update housekeeping status")
}

func (h *CatalogHandler) CreateSeason(ctx *fiber.Ctx) error {
	var req request.Season
	if err := h.parse(ctx, &req); err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}

	resp, err := h.Usecase.CreateSeason(ctx.UserContext(), &req)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error create season: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespCreated(ctx, h.Log, resp, "success create season")
}

func (h *CatalogHandler) ListSeasons(ctx *fiber.Ctx) error {
	resp, err := h.Usecase.ListSeasons(ctx.UserContext())
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error list seasons: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success list seasons")
}

func (h *CatalogHandler) SaveMealPlan(ctx *fiber.Ctx) error {
	var req request.MealPlan
	if err := h.parse(ctx, &req); err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}

	resp, err := h.Usecase.SaveMealPlan(ctx.UserContext(), &req)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error save meal plan: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success save meal plan")
}

func (h *CatalogHandler) ListActiveMealPlans(ctx *fiber.Ctx) error {
	resp, err := h.Usecase.ListMealPlans(ctx.UserContext(), true)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error list meal plans: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success list meal plans")
}

func (h *CatalogHandler) ListMealPlans(ctx *fiber.Ctx) error {
	resp, err := h.Usecase.ListMealPlans(ctx.UserContext(), false)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error list meal plans: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success list meal plans")
}

func (h *CatalogHandler) CreateTaxConfig(ctx *fiber.Ctx) error {
	var req request.TaxConfig
	if err := h.parse(ctx, &req); err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}

	resp, err := h.Usecase.CreateTaxConfig(ctx.UserContext(), &req)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error create tax config: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespCreated(ctx, h.Log, resp, "success create tax config")
}

func (h *CatalogHandler) ActivateTaxConfig(ctx *fiber.Ctx) error {
	id, err := helpers.ParseUUID(ctx.Params("id"), "tax config id")
	if err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}

	if err := h.Usecase.ActivateTaxConfig(ctx.UserContext(), id); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error activate tax config: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, nil, "success activate tax config")
}

func (h *CatalogHandler) BlockDates(ctx *fiber.Ctx) error {
	var req request.BlockedDates
	if err := h.parse(ctx, &req); err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}

	resp, err := h.Usecase.BlockDates(ctx.UserContext(), &req)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error block dates: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespCreated(ctx, h.Log, resp, "success block dates")
}

func (h *CatalogHandler) UnblockDate(ctx *fiber.Ctx) error {
	id, err := helpers.ParseUUID(ctx.Params("id"), "blocked date id")
	if err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}

	if err := h.Usecase.UnblockDate(ctx.UserContext(), id); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error unblock date: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, nil, "success unblock date")
}
