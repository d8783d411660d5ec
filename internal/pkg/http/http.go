package http

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.elastic.co/apm/module/apmfiber"
)

const shutdownTimeout = 10 * time.Second

func SetupHttpEngine() *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:     "reservation-service",
		JSONEncoder: json.Marshal,
		JSONDecoder: json.Unmarshal,
	})

	app.Use(recover.New())
	app.Use(apmfiber.Middleware())

	return app
}

// StartHttpServer blocks until SIGINT or SIGTERM, then drains in-flight requests.
func StartHttpServer(app *fiber.App, port string) {
	go func() {
		if err := app.Listen(fmt.Sprintf(":%s", port)); err != nil {
			log.Fatalf("failed to start http server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	if err := app.ShutdownWithTimeout(shutdownTimeout); err != nil {
		log.Printf("error shutdown http server: %v", err)
	}
}
