package router_test

import (
	"net/http/httptest"
	"testing"

	booking "reservation-service/internal/module/booking/handler"
	bookingmocks "reservation-service/internal/module/booking/mocks"
	catalog "reservation-service/internal/module/catalog/handler"
	catalogmocks "reservation-service/internal/module/catalog/mocks"
	"reservation-service/internal/module/catalog/models/entity"
	log_internal "reservation-service/internal/pkg/log"
	"reservation-service/internal/pkg/middleware"
	router "reservation-service/internal/route"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setup() (*fiber.App, *catalogmocks.Usecase) {
	logger := log_internal.Setup()
	catalogUsecase := &catalogmocks.Usecase{}

	app := router.Initialize(fiber.New(),
		&booking.BookingHandler{Log: logger, Validator: validator.New(), Usecase: &bookingmocks.Usecase{}},
		&catalog.CatalogHandler{Log: logger, Validator: validator.New(), Usecase: catalogUsecase},
		&middleware.Middleware{Log: logger},
	)
	return app, catalogUsecase
}

func TestHealth(t *testing.T) {
	app, _ := setup()

	resp, err := app.Test(httptest.NewRequest("GET", "/health", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestPublicCatalogRoute(t *testing.T) {
	app, catalogUsecase := setup()
	catalogUsecase.On("ListRoomCategories", mock.Anything, true).Return([]entity.RoomCategory{}, nil).Once()

	resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/room-categories", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	catalogUsecase.AssertExpectations(t)
}

func TestUnknownRoute(t *testing.T) {
	app, _ := setup()

	resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/tickets", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
