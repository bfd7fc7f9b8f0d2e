package main

import (
	"context"
	"medrecord-service/internal/app/config"
	"medrecord-service/internal/app/delivery/http/middlewares"
	"medrecord-service/internal/app/delivery/http/routers"
	"medrecord-service/internal/app/drivers/database"
	"medrecord-service/internal/app/drivers/logger"
	"medrecord-service/internal/app/drivers/messaging"
	"medrecord-service/internal/app/drivers/storage"
	"medrecord-service/internal/app/services/core/auth"
	"medrecord-service/internal/app/services/core/bmi"
	"medrecord-service/internal/app/services/core/imaging"
	"medrecord-service/internal/app/services/core/patients"
	"medrecord-service/internal/app/services/shared/auditqueue"
	"medrecord-service/internal/app/services/shared/ratelimiter"
	sharedRedis "medrecord-service/internal/app/services/shared/redis"
	sharedStorage "medrecord-service/internal/app/services/shared/storage"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewLogrusLogger(driverConfig, internalConfig)
	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)
	defer zapLogger.Sync()

	mongoDB := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	amqpConnection := messaging.NewRabbitMQConnection(driverConfig)
	minioClient := storage.NewMinioClient(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrapingTheApp(config.Bootstrap{
		Router:          chiRouter,
		MongoDB:         mongoDB,
		Redis:           redisClient,
		AMQP:            amqpConnection,
		Minio:           minioClient,
		Logger:          zapLogger,
		LifecycleLogger: log,
		DriverConfig:    driverConfig,
		InternalConfig:  internalConfig,
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

	logrus.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	err := server.Shutdown(shutdownCtx)
	if err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap config.Bootstrap) {
	// Redis
	redisRepository := sharedRedis.NewRedisRepository(bootstrap.Redis)

	// Rate limiter
	resourceLimiter := ratelimiter.NewResourceLimiter(redisRepository, bootstrap.Logger)

	// Audit queue
	auditService, err := auditqueue.NewService(bootstrap.AMQP, bootstrap.Logger)
	if err != nil {
		logrus.Fatalf("Failed to initialize audit queue: %v", err)
	}

	// Object storage
	scanStorage := sharedStorage.NewMinioStorage(bootstrap.Minio, bootstrap.DriverConfig.Minio.BucketName)

	// Auth
	credentialRepository := auth.NewCredentialInMemoryRepository(bootstrap.InternalConfig)
	authUsecase := auth.NewAuthUsecase(credentialRepository, bootstrap.InternalConfig)
	authController := auth.NewAuthController(authUsecase, bootstrap.Logger)

	// Patient
	patientMongoRepository := patients.NewPatientMongoRepository(
		bootstrap.MongoDB,
		bootstrap.DriverConfig.MongoDB.DbName,
	)
	patientUsecase := patients.NewPatientUsecase(patientMongoRepository, auditService, bootstrap.Logger)
	patientController := patients.NewPatientController(patientUsecase, bootstrap.Logger)

	// Imaging
	classifier := imaging.NewExecClassifier(bootstrap.InternalConfig.Classifier)
	imagingUsecase := imaging.NewImagingUsecase(classifier, scanStorage, bootstrap.Logger)
	imagingController := imaging.NewImagingController(imagingUsecase, bootstrap.Logger)

	// BMI
	bmiClient := bmi.NewRapidAPIClient(bootstrap.InternalConfig.BMI)
	bmiUsecase := bmi.NewBMIUsecase(bmiClient)
	bmiController := bmi.NewBMIController(bmiUsecase, bootstrap.Logger)

	// Middlewares
	middlewares := middlewares.NewMiddlewares(bootstrap.Logger, authUsecase, resourceLimiter, bootstrap.InternalConfig)

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		bootstrap.LifecycleLogger,
		middlewares,
		authController,
		patientController,
		imagingController,
		bmiController,
	)
}
