package main

import (
	"context"
	"log"

	"reservation-service/config"
	bookingHandler "reservation-service/internal/module/booking/handler"
	bookingRepo "reservation-service/internal/module/booking/repositories"
	bookingUsecase "reservation-service/internal/module/booking/usecases"
	catalogHandler "reservation-service/internal/module/catalog/handler"
	catalogRepo "reservation-service/internal/module/catalog/repositories"
	catalogUsecase "reservation-service/internal/module/catalog/usecases"
	"reservation-service/internal/pkg/clock"
	"reservation-service/internal/pkg/database"
	"reservation-service/internal/pkg/http"
	"reservation-service/internal/pkg/httpclient"
	"reservation-service/internal/pkg/lock"
	log_internal "reservation-service/internal/pkg/log"
	"reservation-service/internal/pkg/messagestream"
	"reservation-service/internal/pkg/middleware"
	"reservation-service/internal/pkg/notification"
	"reservation-service/internal/pkg/payment"
	"reservation-service/internal/pkg/redis"
	"reservation-service/internal/pkg/scheduler"
	router "reservation-service/internal/route"
	"reservation-service/migrations"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/hibiken/asynq"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
)

type service struct {
	app            *fiber.App
	messageRouters []*message.Router
	scheduler      *scheduler.Scheduler
	taskHandlers   []func(ctx context.Context, t *asynq.Task) error
}

func main() {
	cfg := config.InitConfig()

	svc := initService(cfg)

	for _, router := range svc.messageRouters {
		ctx := context.Background()
		go func(router *message.Router) {
			err := router.Run(ctx)
			if err != nil {
				log.Fatal(err)
			}
		}(router)
	}

	// start delayed task server and its monitoring ui
	go svc.scheduler.StartHandler(&cfg.Redis, cfg.Scheduler.Concurrency, []string{scheduler.TypeMarkNoShow}, svc.taskHandlers)
	go svc.scheduler.StartMonitoring(&cfg.Redis, cfg.HttpServer.MonitoringPort)

	// start http server
	http.StartHttpServer(svc.app, cfg.HttpServer.Port)
}

func initService(cfg *config.Config) *service {
	// init logger
	logZap := log_internal.SetupLogger()
	log_internal.Init(logZap)
	logger := log_internal.GetLogger()
	otelLogger := otelzap.L()

	ctx := context.Background()

	// init database
	db := database.GetConnection(&cfg.Database)
	if cfg.Database.RunMigrations {
		if err := migrations.Apply(ctx, db); err != nil {
			log.Fatalf("failed to apply migrations: %v", err)
		}
	}
	// init redis
	redisClient := redis.SetupClient(&cfg.Redis)

	// init payment gateway behind the circuit breaker
	var gateway payment.Gateway
	if cfg.Payment.StripeSecretKey != "" {
		cb := httpclient.InitCircuitBreaker(&cfg.HttpClient, cfg.HttpClient.Type)
		gateway = payment.NewStripeGateway(&cfg.Payment, cb, cfg.HttpClient.Timeout)
	} else {
		logger.Warn(ctx, "STRIPE_SECRET_KEY is empty, payments are disabled")
	}

	// init delayed tasks
	sch := &scheduler.Scheduler{Log: logger}
	tasks := scheduler.NewTaskClient(sch.InitClient(&cfg.Redis), sch.InitInspector(&cfg.Redis))

	// init message stream
	amqp := messagestream.NewAmpq(&cfg.MessageStream)

	// Init Subscriber
	subscriber, err := amqp.NewSubscriber()
	if err != nil {
		log.Fatalf("failed to create subscriber: %v", err)
	}

	// Init Publisher
	publisher, err := amqp.NewPublisher()
	if err != nil {
		log.Fatalf("failed to create publisher: %v", err)
	}

	catalogRepository := catalogRepo.New(db, logger, redisClient, cfg.Redis.CacheTTL)
	bookingRepository := bookingRepo.New(db, logger, cfg.Booking.MaxTxRetries)

	catalogUc := catalogUsecase.New(catalogRepository, logger)
	bookingUc := bookingUsecase.New(bookingRepository, catalogRepository, logger, publisher, bookingUsecase.Options{
		Locker:    lock.NewRedis(redisClient, cfg.Booking.CategoryLockTTL),
		Payment:   gateway,
		Tasks:     tasks,
		Notifier:  notification.NewMailer(&cfg.Mail, logger),
		Clock:     clock.NewSystem(),
		Booking:   cfg.Booking,
		Scheduler: cfg.Scheduler,
	})

	validator := validator.New()
	bookingH := bookingHandler.BookingHandler{
		Log:       otelLogger,
		Validator: validator,
		Usecase:   bookingUc,
	}
	catalogH := catalogHandler.CatalogHandler{
		Log:       otelLogger,
		Validator: validator,
		Usecase:   catalogUc,
	}
	middleware := middleware.Middleware{
		Log: otelLogger,
	}

	var messageRouters []*message.Router

	notifyGuestRouter, err := messagestream.NewRouter(publisher, bookingUsecase.TopicBookingEventsPoisoned, "notify_guest_handler", bookingUsecase.TopicBookingEvents, subscriber, bookingH.ConsumeBookingEvents)
	if err != nil {
		log.Fatalf("failed to create notify_guest router: %v", err)
	}

	messageRouters = append(messageRouters, notifyGuestRouter)

	serverHttp := http.SetupHttpEngine()

	r := router.Initialize(serverHttp, &bookingH, &catalogH, &middleware)

	return &service{
		app:            r,
		messageRouters: messageRouters,
		scheduler:      sch,
		taskHandlers:   []func(ctx context.Context, t *asynq.Task) error{bookingH.MarkNoShow},
	}
}
