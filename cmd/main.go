package main

import (
	"context"
	"log"

	"wedding-marketplace/config"
	bookinghandler "wedding-marketplace/internal/module/booking/handler"
	bookingrepositories "wedding-marketplace/internal/module/booking/repositories"
	bookingusecases "wedding-marketplace/internal/module/booking/usecases"
	notificationhandler "wedding-marketplace/internal/module/notification/handler"
	notificationrepositories "wedding-marketplace/internal/module/notification/repositories"
	notificationusecases "wedding-marketplace/internal/module/notification/usecases"
	"wedding-marketplace/internal/module/payment/gateway"
	paymenthandler "wedding-marketplace/internal/module/payment/handler"
	paymentrepositories "wedding-marketplace/internal/module/payment/repositories"
	paymentusecases "wedding-marketplace/internal/module/payment/usecases"
	"wedding-marketplace/internal/pkg/database"
	"wedding-marketplace/internal/pkg/http"
	"wedding-marketplace/internal/pkg/httpclient"
	"wedding-marketplace/internal/pkg/lock"
	log_internal "wedding-marketplace/internal/pkg/log"
	"wedding-marketplace/internal/pkg/messagestream"
	"wedding-marketplace/internal/pkg/middleware"
	"wedding-marketplace/internal/pkg/redis"
	"wedding-marketplace/internal/pkg/scheduler"
	router "wedding-marketplace/internal/route"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/hibiken/asynq"
)

func main() {
	cfg := config.InitConfig()

	app, messageRouters, sched := initService(cfg)

	for _, msgRouter := range messageRouters {
		ctx := context.Background()
		go func(r *message.Router) {
			if err := r.Run(ctx); err != nil {
				log.Fatal(err)
			}
		}(msgRouter)
	}

	go sched.start()

	// start http server
	http.StartHttpServer(app, cfg.HttpServer.Port)
}

// schedulerRuntime bundles the asynq worker and its monitoring UI so main can
// run them alongside the http server.
type schedulerRuntime struct {
	scheduler *scheduler.Scheduler
	cfg       *config.RedisConfig
	taskTypes []string
	handlers  []func(ctx context.Context, t *asynq.Task) error
}

func (s *schedulerRuntime) start() {
	go s.scheduler.StartMonitoring(s.cfg)
	s.scheduler.StartHandler(s.cfg, s.taskTypes, s.handlers)
}

func initService(cfg *config.Config) (*fiber.App, []*message.Router, *schedulerRuntime) {

	// init infrastructure
	db := database.GetConnection(&cfg.Database)
	redisClient := redis.SetupClient(&cfg.Redis)
	logger := log_internal.Setup()
	cb := httpclient.InitCircuitBreaker(&cfg.HttpClient, cfg.HttpClient.Type)
	httpClient := httpclient.InitHttpClient(&cfg.HttpClient, cb)

	ctx := context.Background()

	// init message stream
	amqp := messagestream.NewAmpq(&cfg.MessageStream)

	subscriber, err := amqp.NewSubscriber()
	if err != nil {
		logger.Ctx(ctx).Fatal("failed to create subscriber")
	}

	publisher, err := amqp.NewPublisher()
	if err != nil {
		logger.Ctx(ctx).Fatal("failed to create publisher")
	}

	// init task scheduler
	sched := &scheduler.Scheduler{Log: logger}
	asynqClient := sched.InitClient(&cfg.Redis)
	asynqInspector := sched.InitInspector(&cfg.Redis)

	locker := lock.NewRedsyncLocker(redisClient)
	gatewayClient := gateway.NewClient(httpClient, &cfg.Gateway, logger)

	// booking module
	bookingRepo := bookingrepositories.New(db, logger, redisClient, asynqClient, asynqInspector)
	bookingUsecase := bookingusecases.New(bookingRepo, logger, publisher, locker)

	// payment module
	paymentRepo := paymentrepositories.New(db, logger, redisClient)
	paymentUsecase := paymentusecases.New(paymentRepo, bookingUsecase, gatewayClient, logger)

	// notification module
	notificationRepo := notificationrepositories.New(logger, httpClient, &cfg.NotificationService)
	notificationUsecase := notificationusecases.New(notificationRepo, logger)

	validate := validator.New()

	bookingHandler := bookinghandler.BookingHandler{
		Log:       logger,
		Validator: validate,
		Usecase:   bookingUsecase,
	}
	paymentHandler := paymenthandler.PaymentHandler{
		Log:       logger,
		Validator: validate,
		Usecase:   paymentUsecase,
	}
	notificationHandler := notificationhandler.NotificationHandler{
		Log:       logger,
		Validator: validate,
		Usecase:   notificationUsecase,
		Publish:   publisher,
	}

	m := middleware.Middleware{
		Log:        logger,
		HttpClient: httpClient,
		CfgAuth:    &cfg.AuthService,
	}

	var messageRouters []*message.Router

	notificationRouter, err := messagestream.NewRouter(publisher, "poisoned_queue", "booking_notification_handler", bookingusecases.NotificationTopic, subscriber, notificationHandler.ConsumeBookingNotification)
	if err != nil {
		logger.Ctx(ctx).Fatal("failed to create booking notification router")
	}

	messageRouters = append(messageRouters, notificationRouter)

	schedRuntime := &schedulerRuntime{
		scheduler: sched,
		cfg:       &cfg.Redis,
		taskTypes: []string{scheduler.TypePaymentReminder},
		handlers: []func(ctx context.Context, t *asynq.Task) error{
			bookingHandler.SendPaymentReminder,
		},
	}

	serverHttp := http.SetupHttpEngine()
	r := router.Initialize(serverHttp, &bookingHandler, &paymentHandler, &m)

	return r, messageRouters, schedRuntime
}
