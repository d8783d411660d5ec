package router

import (
	booking "reservation-service/internal/module/booking/handler"
	catalog "reservation-service/internal/module/catalog/handler"
	"reservation-service/internal/pkg/middleware"

	"github.com/gofiber/fiber/v2"
)

func Initialize(app *fiber.App, handlerBooking *booking.BookingHandler, handlerCatalog *catalog.CatalogHandler, m *middleware.Middleware) *fiber.App {
	app.Use(m.RequestLogger)

	// health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).SendString("OK")
	})

	Api := app.Group("/api")

	// public routes
	v1 := Api.Group("/v1")
	v1.Get("/availability", handlerBooking.Availability)
	v1.Get("/availability/rooms", handlerBooking.AvailableRooms)
	v1.Post("/quote", handlerBooking.Quote)
	v1.Post("/bookings", handlerBooking.CreateBooking)
	v1.Get("/bookings/:reference", handlerBooking.GetBookingByReference)
	v1.Post("/bookings/:id/payment", handlerBooking.RequestPayment)
	v1.Post("/webhooks/payment", handlerBooking.PaymentWebhook)
	v1.Get("/room-categories", handlerCatalog.ListActiveRoomCategories)
	v1.Get("/meal-plans", handlerCatalog.ListActiveMealPlans)

	// admin routes, expected behind the staff gateway
	admin := Api.Group("/admin")
	admin.Get("/bookings", handlerBooking.ListBookings)
	admin.Get("/bookings/:id", handlerBooking.GetBooking)
	admin.Patch("/bookings/:id/status", handlerBooking.UpdateStatus)
	admin.Patch("/bookings/:id/notes", handlerBooking.UpdateNotes)

	admin.Post("/room-categories", handlerCatalog.CreateRoomCategory)
	admin.Get("/room-categories", handlerCatalog.ListRoomCategories)
	admin.Get("/room-categories/:id", handlerCatalog.GetRoomCategory)
	admin.Put("/room-categories/:id", handlerCatalog.UpdateRoomCategory)
	admin.Post("/room-categories/:id/rooms", handlerCatalog.AddRoom)
	admin.Get("/room-categories/:id/rooms", handlerCatalog.ListRooms)
	admin.Patch("/rooms/:id/housekeeping", handlerCatalog.UpdateHousekeepingStatus)

	admin.Post("/seasons", handlerCatalog.CreateSeason)
	admin.Get("/seasons", handlerCatalog.ListSeasons)
	admin.Put("/meal-plans", handlerCatalog.SaveMealPlan)
	admin.Get("/meal-plans", handlerCatalog.ListMealPlans)
	admin.Post("/tax-configs", handlerCatalog.CreateTaxConfig)
	admin.Post("/tax-configs/:id/activate", handlerCatalog.ActivateTaxConfig)

	admin.Post("/blocked-dates", handlerCatalog.BlockDates)
	admin.Delete("/blocked-dates/:id", handlerCatalog.UnblockDate)

	app.Use(m.NotFound)

	return app
}
