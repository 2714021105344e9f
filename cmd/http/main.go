package main

import (
	"context"
	"mediconnect-service/internal/app/config"
	"mediconnect-service/internal/app/delivery/http/controllers"
	"mediconnect-service/internal/app/delivery/http/middlewares"
	"mediconnect-service/internal/app/delivery/http/routers"
	"mediconnect-service/internal/app/drivers/database"
	"mediconnect-service/internal/app/drivers/logger"
	"mediconnect-service/internal/app/drivers/messaging"
	"mediconnect-service/internal/app/drivers/storage"
	"mediconnect-service/internal/app/services/core/appointments"
	"mediconnect-service/internal/app/services/core/auth"
	"mediconnect-service/internal/app/services/core/doctors"
	"mediconnect-service/internal/app/services/core/feedback"
	"mediconnect-service/internal/app/services/core/healthtips"
	"mediconnect-service/internal/app/services/core/medicalrecords"
	"mediconnect-service/internal/app/services/core/notifications"
	"mediconnect-service/internal/app/services/core/prescriptions"
	"mediconnect-service/internal/app/services/core/schedules"
	"mediconnect-service/internal/app/services/core/slots"
	"mediconnect-service/internal/app/services/core/users"
	"mediconnect-service/internal/app/services/shared/notificationqueue"
	redisrepo "mediconnect-service/internal/app/services/shared/redis"
	"mediconnect-service/internal/app/services/shared/session"
	miniostorage "mediconnect-service/internal/app/services/shared/storage"
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

	bootLog := logger.NewLogrusLogger(internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		bootLog.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)
	mongoClient := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	rabbitConn := messaging.NewRabbitMQ(driverConfig)
	minioClient := storage.NewMinio(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrap := &config.Bootstrap{
		Router:         chiRouter,
		MongoClient:    mongoClient,
		MongoDB:        mongoClient.Database(driverConfig.MongoDB.DbName),
		Redis:          redisClient,
		RabbitMQ:       rabbitConn,
		Minio:          minioClient,
		Logger:         zapLogger,
		InternalConfig: internalConfig,
		DriverConfig:   driverConfig,
	}

	bootstrapTheApp(bootstrap)

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			bootLog.Fatalf("Server failed to start: %v", err)
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

	if err := server.Shutdown(shutdownCtx); err != nil {
		bootLog.Fatalf("Server forced to shutdown: %v", err)
	}

	if err := bootstrap.Shutdown(shutdownCtx); err != nil {
		bootLog.Printf("Error closing application resources: %v", err)
	}

	bootLog.Println("Server exiting")
}

func bootstrapTheApp(bootstrap *config.Bootstrap) {
	dbName := bootstrap.DriverConfig.MongoDB.DbName

	// Shared services
	redisRepository := redisrepo.NewRedisRepository(bootstrap.Redis)
	sessionService := session.NewSessionService(redisRepository, bootstrap.InternalConfig)
	minioStorage := miniostorage.NewMinioStorage(bootstrap.Minio, bootstrap.DriverConfig.Minio.BucketName)

	notificationQueue, err := notificationqueue.NewService(
		bootstrap.RabbitMQ,
		bootstrap.Logger,
		bootstrap.InternalConfig.App.NotificationQueue,
		bootstrap.InternalConfig.App.NotificationDLQ,
		10,
	)
	if err != nil {
		logrus.Fatalf("Failed to initialize notification queue: %v", err)
	}

	// Middlewares
	mw := middlewares.NewMiddlewares(bootstrap.Logger, sessionService, bootstrap.InternalConfig)

	// Repositories
	userMongoRepository := users.NewUserMongoRepository(bootstrap.MongoClient, dbName)
	doctorMongoRepository := doctors.NewDoctorMongoRepository(bootstrap.MongoClient, dbName)
	scheduleMongoRepository := schedules.NewScheduleMongoRepository(bootstrap.MongoClient, dbName)
	slotMongoRepository := slots.NewSlotMongoRepository(bootstrap.MongoClient, dbName)
	appointmentMongoRepository := appointments.NewAppointmentMongoRepository(bootstrap.MongoClient, dbName)
	prescriptionMongoRepository := prescriptions.NewPrescriptionMongoRepository(bootstrap.MongoClient, dbName)
	medicalRecordMongoRepository := medicalrecords.NewMedicalRecordMongoRepository(bootstrap.MongoClient, dbName)
	notificationMongoRepository := notifications.NewNotificationMongoRepository(bootstrap.MongoClient, dbName)
	feedbackMongoRepository := feedback.NewFeedbackMongoRepository(bootstrap.MongoClient, dbName)
	healthTipMongoRepository := healthtips.NewHealthTipMongoRepository(bootstrap.MongoClient, dbName)

	// Usecases
	authUsecase := auth.NewAuthUsecase(userMongoRepository, sessionService, bootstrap.InternalConfig, bootstrap.Logger)
	doctorUsecase := doctors.NewDoctorUsecase(doctorMongoRepository, bootstrap.Logger)
	slotUsecase := slots.NewSlotUsecase(slotMongoRepository, scheduleMongoRepository, doctorMongoRepository, redisRepository, bootstrap.InternalConfig, bootstrap.Logger)
	appointmentUsecase := appointments.NewAppointmentUsecase(appointmentMongoRepository, slotMongoRepository, slotUsecase, doctorMongoRepository, redisRepository, notificationQueue, bootstrap.InternalConfig, bootstrap.Logger)
	prescriptionUsecase := prescriptions.NewPrescriptionUsecase(prescriptionMongoRepository, doctorMongoRepository, notificationQueue, bootstrap.Logger)
	medicalRecordUsecase := medicalrecords.NewMedicalRecordUsecase(medicalRecordMongoRepository, minioStorage, bootstrap.Logger)
	notificationUsecase := notifications.NewNotificationUsecase(notificationMongoRepository, bootstrap.Logger)
	feedbackUsecase := feedback.NewFeedbackUsecase(feedbackMongoRepository, bootstrap.Logger)
	healthTipUsecase := healthtips.NewHealthTipUsecase(healthTipMongoRepository, bootstrap.Logger)

	// Notification worker draining the queue into mongo.
	worker := notifications.NewWorker(bootstrap.Logger, notificationQueue, notificationMongoRepository, redisRepository)
	bootstrap.WorkerStop = worker.Start(context.Background())

	// Controllers
	authController := controllers.NewAuthController(bootstrap.Logger, authUsecase)
	doctorController := controllers.NewDoctorController(bootstrap.Logger, doctorUsecase)
	appointmentController := controllers.NewAppointmentController(bootstrap.Logger, appointmentUsecase, slotUsecase)
	notificationController := controllers.NewNotificationController(bootstrap.Logger, notificationUsecase)
	prescriptionController := controllers.NewPrescriptionController(bootstrap.Logger, prescriptionUsecase)
	medicalRecordController := controllers.NewMedicalRecordController(bootstrap.Logger, medicalRecordUsecase, bootstrap.InternalConfig.App.MedicalRecordMaxSizeInMB)
	feedbackController := controllers.NewFeedbackController(bootstrap.Logger, feedbackUsecase)
	healthTipController := controllers.NewHealthTipController(bootstrap.Logger, healthTipUsecase)

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		mw,
		authController,
		doctorController,
		appointmentController,
		notificationController,
		prescriptionController,
		medicalRecordController,
		feedbackController,
		healthTipController,
	)
}
