package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bookwise/config"
	"bookwise/cron"
	"bookwise/database"
	apptRepoPkg "bookwise/database/repository/appointment"
	businessRepoPkg "bookwise/database/repository/business"
	customerRepoPkg "bookwise/database/repository/customer"
	leadRepoPkg "bookwise/database/repository/lead"
	reviewRepoPkg "bookwise/database/repository/review"
	serviceRepoPkg "bookwise/database/repository/service"
	staffRepoPkg "bookwise/database/repository/staff"
	subscriptionRepoPkg "bookwise/database/repository/subscription"
	"bookwise/handlers"
	"bookwise/routes"
	"bookwise/services/appointment"
	"bookwise/services/availability"
	"bookwise/services/billing"
	"bookwise/services/business"
	"bookwise/services/catalog"
	"bookwise/services/customer"
	"bookwise/services/insight"
	"bookwise/services/intelligence"
	"bookwise/services/lead"
	"bookwise/services/notification"
	"bookwise/services/review"
	"bookwise/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitChatCache()
	stripe.Key = config.AppConfig.StripeKey

	sender := buildSender()

	// Repositories.
	businessRepo := businessRepoPkg.NewMongoBusinessRepo()
	serviceRepo := serviceRepoPkg.NewMongoServiceRepo()
	staffRepo := staffRepoPkg.NewMongoStaffRepo()
	apptRepo := apptRepoPkg.NewMongoAppointmentRepo()
	customerRepo := customerRepoPkg.NewMongoCustomerRepo()
	leadRepo := leadRepoPkg.NewMongoLeadRepo()
	reviewRepo := reviewRepoPkg.NewMongoReviewRepo()
	subscriptionRepo := subscriptionRepoPkg.NewMongoSubscriptionRepo()

	// Job queue client shared by everything that enqueues.
	asynqClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})
	defer asynqClient.Close()

	// Services.
	businessSvc := &business.DefaultBusinessService{Repo: businessRepo}
	catalogSvc := &catalog.DefaultCatalogService{Services: serviceRepo, Staff: staffRepo}
	customerSvc := &customer.DefaultCustomerService{Repo: customerRepo}
	leadSvc := &lead.DefaultLeadService{Repo: leadRepo, Businesses: businessRepo, Sender: sender}
	availabilitySvc := &availability.DefaultAvailabilityService{
		Businesses:   businessRepo,
		Services:     serviceRepo,
		Staff:        staffRepo,
		Appointments: apptRepo,
	}
	appointmentSvc := &appointment.DefaultAppointmentService{
		Repo:       apptRepo,
		Customers:  customerRepo,
		Services:   serviceRepo,
		Staff:      staffRepo,
		Businesses: businessRepo,
		Jobs:       asynqClient,
	}
	insightSvc := &insight.DefaultInsightService{Customers: customerRepo, Appointments: apptRepo}
	billingSvc := &billing.DefaultBillingService{
		Repo:          subscriptionRepo,
		WebhookSecret: config.AppConfig.StripeWebhookSecret,
		PortalReturn:  config.AppConfig.StripePortalReturn,
	}

	gemini, err := intelligence.NewGeminiClient(context.Background(), config.AppConfig.GeminiAPIKey)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize gemini client: %v", err)
	}
	defer gemini.Close()

	reviewSvc := &review.DefaultReviewService{Repo: reviewRepo, Generator: gemini}
	ctxStore := intelligence.NewRedisContextStore(utils.GetChatCacheClient(), 30*time.Minute)
	assistantSvc := &intelligence.DefaultAssistantService{
		Gemini:       gemini,
		CtxStore:     ctxStore,
		Availability: availabilitySvc,
		Appointments: appointmentSvc,
		Customers:    customerSvc,
		Services:     serviceRepo,
	}

	// Background worker for reminders, churn snapshots and review digests.
	cron.InitWorker(cron.WorkerDeps{
		Sender:       sender,
		Insights:     insightSvc,
		Reviews:      reviewSvc,
		Appointments: apptRepo,
	})

	utils.StartHealthMonitor(
		[]*redis.Client{utils.GetCacheClient(), utils.GetChatCacheClient()},
		database.MongoClient,
	)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(gin.Logger())

	handlerBundle := &handlers.HandlerBundle{
		BusinessRepo:    businessRepo,
		BusinessSvc:     businessSvc,
		CatalogSvc:      catalogSvc,
		CustomerSvc:     customerSvc,
		LeadSvc:         leadSvc,
		AppointmentSvc:  appointmentSvc,
		AvailabilitySvc: availabilitySvc,
		AssistantSvc:    assistantSvc,
		BillingSvc:      billingSvc,
		ReviewSvc:       reviewSvc,
		InsightSvc:      insightSvc,
		Jobs:            asynqClient,
	}
	routes.RegisterRoutes(router, handlerBundle)

	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}

// buildSender resolves the configured notification channel to a concrete
// sender. Console is both the default and the fallback for channels SMTP
// cannot deliver.
func buildSender() notification.Sender {
	logger := utils.GetLogger()
	console := notification.NewConsoleSender(logger)

	switch config.AppConfig.NotificationChannel {
	case "smtp":
		return notification.NewSMTPSender(
			config.AppConfig.SMTPHost,
			config.AppConfig.SMTPPort,
			config.AppConfig.SMTPUser,
			config.AppConfig.SMTPPassword,
			config.AppConfig.SMTPFrom,
			console,
		)
	case "push":
		sender, err := notification.NewPushSender(context.Background(), config.AppConfig.FirebaseCredFile)
		if err != nil {
			logger.Sugar().Fatalf("main: failed to initialize push sender: %v", err)
		}
		return sender
	default:
		return console
	}
}
