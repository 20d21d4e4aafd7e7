package main

import (
	"context"
	"medibook-service/internal/app/config"
	"medibook-service/internal/app/delivery/http/controllers"
	"medibook-service/internal/app/delivery/http/middlewares"
	"medibook-service/internal/app/delivery/http/routers"
	"medibook-service/internal/app/drivers/database"
	"medibook-service/internal/app/drivers/logger"
	"medibook-service/internal/app/drivers/storage"
	"medibook-service/internal/app/services/core/appointments"
	"medibook-service/internal/app/services/core/auth"
	"medibook-service/internal/app/services/core/practitioners"
	"medibook-service/internal/app/services/core/profiles"
	"medibook-service/internal/app/services/core/reviews"
	"medibook-service/internal/app/services/core/users"
	"medibook-service/internal/app/services/shared/ratelimiter"
	"medibook-service/internal/app/services/shared/redis"
	"medibook-service/internal/app/services/shared/sessions"
	sharedstorage "medibook-service/internal/app/services/shared/storage"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewLogger(internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)
	defer zapLogger.Sync()

	mongoDB := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	minioClient := storage.NewMinio(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrapingTheApp(config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoDB,
		Redis:          redisClient,
		Minio:          minioClient,
		Logger:         log,
		ZapLogger:      zapLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	})

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap config.Bootstrap) {
	dbName := bootstrap.DriverConfig.MongoDB.DbName

	// Shared
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)
	sessionService := sessions.NewSessionService(redisRepository, bootstrap.InternalConfig.JWT.ExpTimeInHour)
	minioStorage := sharedstorage.NewMinioStorage(bootstrap.Minio, bootstrap.DriverConfig.Minio.BucketName)
	resourceLimiter := ratelimiter.NewResourceLimiter(redisRepository, bootstrap.ZapLogger)

	// Middlewares
	middlewares := middlewares.NewMiddlewares(bootstrap.ZapLogger, redisRepository, bootstrap.InternalConfig)

	// Repositories
	userMongoRepository := users.NewUserMongoRepository(bootstrap.MongoDB, dbName)
	profileMongoRepository := profiles.NewProfileMongoRepository(bootstrap.MongoDB, dbName)
	practitionerMongoRepository := practitioners.NewPractitionerMongoRepository(bootstrap.MongoDB, dbName)
	appointmentMongoRepository := appointments.NewAppointmentMongoRepository(bootstrap.MongoDB, dbName)
	reviewMongoRepository := reviews.NewReviewMongoRepository(bootstrap.MongoDB, dbName)

	// Auth
	authUsecase := auth.NewAuthUsecase(
		bootstrap.ZapLogger,
		userMongoRepository,
		profileMongoRepository,
		practitionerMongoRepository,
		sessionService,
		minioStorage,
		bootstrap.InternalConfig,
	)
	authController := controllers.NewAuthController(bootstrap.ZapLogger, authUsecase)

	// Profile
	profileUsecase := profiles.NewProfileUsecase(bootstrap.ZapLogger, profileMongoRepository, sessionService)
	profileController := controllers.NewProfileController(bootstrap.ZapLogger, profileUsecase)

	// Review
	reviewUsecase := reviews.NewReviewUsecase(
		bootstrap.ZapLogger,
		reviewMongoRepository,
		practitionerMongoRepository,
		profileMongoRepository,
		sessionService,
	)
	reviewController := controllers.NewReviewController(bootstrap.ZapLogger, reviewUsecase)

	// Practitioner
	practitionerUsecase := practitioners.NewPractitionerUsecase(
		bootstrap.ZapLogger,
		practitionerMongoRepository,
		profileMongoRepository,
		reviewUsecase,
	)
	practitionerController := controllers.NewPractitionerController(bootstrap.ZapLogger, practitionerUsecase, reviewUsecase)

	// Appointment
	appointmentUsecase := appointments.NewAppointmentUsecase(
		bootstrap.ZapLogger,
		appointmentMongoRepository,
		practitionerMongoRepository,
		profileMongoRepository,
		sessionService,
		resourceLimiter,
		bootstrap.InternalConfig,
	)
	appointmentController := controllers.NewAppointmentController(bootstrap.ZapLogger, appointmentUsecase)

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		middlewares,
		authController,
		profileController,
		practitionerController,
		appointmentController,
		reviewController,
	)
}
