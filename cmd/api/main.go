package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"careerconnect/internal/app"
	"careerconnect/internal/blob"
	"careerconnect/internal/config"
	"careerconnect/internal/database"
	apphttp "careerconnect/internal/http"
	"careerconnect/internal/http/handlers"
	"careerconnect/internal/http/metrics"
	httpmw "careerconnect/internal/http/middleware"
	"careerconnect/internal/http/response"
	"careerconnect/internal/notify"
	"careerconnect/internal/observability"
	"careerconnect/internal/repository/postgres"
	"careerconnect/internal/security"
)

func main() {
	cfg := config.Load()
	logger := observability.NewLogger()
	db := database.NewPostgres(database.PostgresConfig{
		DSN:             cfg.PostgresDSN,
		MaxOpenConns:    cfg.DBMaxOpenConns,
		MaxIdleConns:    cfg.DBMaxIdleConns,
		ConnMaxIdle:     cfg.DBConnMaxIdle,
		ConnMaxLifetime: cfg.DBConnMaxLife,
	})
	defer db.Close()

	migrateCtx, cancelMigrate := context.WithTimeout(context.Background(), 30*time.Second)
	if err := database.Migrate(migrateCtx, db); err != nil {
		cancelMigrate()
		log.Fatal(err)
	}
	cancelMigrate()

	userRepo := postgres.NewUserRepository(db)
	companyRepo := postgres.NewCompanyRepository(db)
	jobRepo := postgres.NewJobRepository(db)
	applicationRepo := postgres.NewApplicationRepository(db)
	questionRepo := postgres.NewQuestionRepository(db)
	notificationRepo := postgres.NewNotificationRepository(db)
	eventRepo := postgres.NewEventRepository(db)

	var blobs blob.Store
	var uploadsDir string
	if cfg.GCSBucket != "" {
		gcs, err := blob.NewGCS(context.Background(), cfg.GCSBucket)
		if err != nil {
			log.Fatal(err)
		}
		defer gcs.Close()
		blobs = gcs
	} else {
		disk, err := blob.NewDisk(cfg.UploadDir)
		if err != nil {
			log.Fatal(err)
		}
		blobs = disk
		uploadsDir = disk.Root()
	}

	jwtProvider := security.NewJWTProvider(cfg.JWTSecret, cfg.TokenTTL)
	mailer := notify.NewLogMailer(logger)

	authService := app.NewAuthService(userRepo, companyRepo, jwtProvider)
	jobService := app.NewJobService(jobRepo)
	applicationService := app.NewApplicationService(applicationRepo, jobRepo, userRepo, blobs, notificationRepo, mailer, logger)
	forumService := app.NewForumService(questionRepo)
	notificationService := app.NewNotificationService(notificationRepo)
	eventService := app.NewEventService(eventRepo)
	adminService := app.NewAdminService(userRepo, companyRepo, jwtProvider, cfg.AdminEmail, cfg.AdminPassword)

	var limiter httpmw.Limiter
	if cfg.RedisAddr != "" {
		limiter = httpmw.NewRedisLimiter(redis.NewClient(&redis.Options{Addr: cfg.RedisAddr}))
	} else {
		limiter = httpmw.NewRateLimiter()
	}

	authHandler := handlers.NewAuthHandler(authService, blobs, limiter, cfg.MaxUploadBytes)
	jobHandler := handlers.NewJobHandler(jobService)
	applicationHandler := handlers.NewApplicationHandler(applicationService, limiter, cfg.MaxUploadBytes)
	forumHandler := handlers.NewForumHandler(forumService, limiter)
	notificationHandler := handlers.NewNotificationHandler(notificationService)
	eventHandler := handlers.NewEventHandler(eventService)
	adminHandler := handlers.NewAdminHandler(adminService, limiter)
	middleware := httpmw.NewAuthMiddleware(jwtProvider)

	collector := metrics.NewCollector()
	response.SetErrorCollector(collector)

	router := apphttp.NewRouter(apphttp.RouterDependencies{
		AuthHandler:         authHandler,
		JobHandler:          jobHandler,
		ApplicationHandler:  applicationHandler,
		ForumHandler:        forumHandler,
		NotificationHandler: notificationHandler,
		EventHandler:        eventHandler,
		AdminHandler:        adminHandler,
		MetricsHandler:      handlers.NewMetricsHandler(collector),
		AuthMiddleware:      middleware,
		Metrics:             collector,
		RequestTimeout:      cfg.RequestTimeout,
		MaxUploadBytes:      cfg.MaxUploadBytes,
		UploadsDir:          uploadsDir,
	})
	server := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("API started on :" + cfg.HTTPPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Fatal(err)
	}
}
