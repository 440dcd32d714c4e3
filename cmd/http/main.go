package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"policlinico-service/internal/app/config"
	"policlinico-service/internal/app/delivery/http/middlewares"
	"policlinico-service/internal/app/delivery/http/routers"
	"policlinico-service/internal/app/drivers/database"
	"policlinico-service/internal/app/drivers/logger"
	"policlinico-service/internal/app/drivers/messaging"
	driverStorage "policlinico-service/internal/app/drivers/storage"
	"policlinico-service/internal/app/services/core/appointments"
	"policlinico-service/internal/app/services/core/auth"
	"policlinico-service/internal/app/services/core/doctors"
	"policlinico-service/internal/app/services/core/exports"
	"policlinico-service/internal/app/services/core/histories"
	"policlinico-service/internal/app/services/core/invoices"
	"policlinico-service/internal/app/services/core/patients"
	"policlinico-service/internal/app/services/core/records"
	"policlinico-service/internal/app/services/core/specialties"
	"policlinico-service/internal/app/services/shared/mailer"
	sharedRedis "policlinico-service/internal/app/services/shared/redis"
	sharedStorage "policlinico-service/internal/app/services/shared/storage"
	"policlinico-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
	"github.com/minio/minio-go/v7"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatalf("Error loading timezone %s: %v", internalConfig.App.Timezone, err)
	}
	time.Local = location

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)

	redisClient := database.NewRedisClient(driverConfig)

	var mongoClient *mongo.Client
	if internalConfig.App.SnapshotBackend == constvars.SnapshotBackendMongo {
		mongoClient = database.NewMongoDB(driverConfig)
	}

	rabbitMQConnection := messaging.NewRabbitMQ(driverConfig)
	minioClient := driverStorage.NewMinio(driverConfig)

	chiRouter := chi.NewRouter()

	bootstrap := &config.Bootstrap{
		Router:         chiRouter,
		Redis:          redisClient,
		MongoClient:    mongoClient,
		RabbitMQ:       rabbitMQConnection,
		Logger:         zapLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}

	if err := bootstrapTheApp(bootstrap, minioClient); err != nil {
		log.Fatalf("Failed to bootstrap the application: %v", err)
	}

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		zapLogger.Info("server listening", zap.String("address", internalConfig.App.Port))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	<-c

	log.Println("Waiting for pending requests already received by the server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	if err := bootstrap.Shutdown(shutdownCtx); err != nil {
		log.Printf("Error while closing application resources: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapTheApp(bootstrap *config.Bootstrap, minioClient *minio.Client) error {
	// Shared repositories
	redisRepository := sharedRedis.NewRedisRepository(bootstrap.Redis)
	archiveStorage := sharedStorage.NewMinioStorage(minioClient)

	mailerService, err := mailer.NewMailerService(bootstrap.RabbitMQ, bootstrap.InternalConfig.App.RabbitMQMailerQueue)
	if err != nil {
		return err
	}

	// Credentials double as the known-emails ledger consulted by the store.
	credentialRepository := auth.NewCredentialRepository(redisRepository)

	var snapshotRepository records.SnapshotRepository
	if bootstrap.InternalConfig.App.SnapshotBackend == constvars.SnapshotBackendMongo {
		snapshotRepository = records.NewMongoSnapshotRepository(
			bootstrap.MongoClient,
			bootstrap.DriverConfig.MongoDB.DbName,
			bootstrap.Logger,
		)
	} else {
		snapshotRepository = records.NewRedisSnapshotRepository(redisRepository, bootstrap.Logger)
	}

	loadCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	recordStore, err := records.NewRecordStore(loadCtx, snapshotRepository, credentialRepository, bootstrap.Logger)
	if err != nil {
		return err
	}

	// Middlewares
	httpMiddlewares := middlewares.NewMiddlewares(redisRepository, bootstrap.InternalConfig, bootstrap.Logger)

	// Auth
	authUsecase := auth.NewAuthUsecase(recordStore, credentialRepository, redisRepository, mailerService, bootstrap.InternalConfig, bootstrap.Logger)
	authController := auth.NewAuthController(bootstrap.Logger, authUsecase)

	// Patients
	patientUsecase := patients.NewPatientUsecase(recordStore, bootstrap.Logger)
	patientController := patients.NewPatientController(bootstrap.Logger, patientUsecase)

	// Appointments
	appointmentUsecase := appointments.NewAppointmentUsecase(recordStore, bootstrap.Logger)
	appointmentController := appointments.NewAppointmentController(bootstrap.Logger, appointmentUsecase)

	// Doctors
	doctorUsecase := doctors.NewDoctorUsecase(recordStore, bootstrap.Logger)
	doctorController := doctors.NewDoctorController(bootstrap.Logger, doctorUsecase)

	// Specialties
	specialtyUsecase := specialties.NewSpecialtyUsecase(recordStore, bootstrap.Logger)
	specialtyController := specialties.NewSpecialtyController(bootstrap.Logger, specialtyUsecase)

	// Invoices
	invoiceUsecase := invoices.NewInvoiceUsecase(recordStore, bootstrap.Logger)
	invoiceController := invoices.NewInvoiceController(bootstrap.Logger, invoiceUsecase)

	// Clinical histories
	historyUsecase := histories.NewHistoryUsecase(recordStore, bootstrap.Logger)
	historyController := histories.NewHistoryController(bootstrap.Logger, historyUsecase)

	// Exports
	exportUsecase := exports.NewExportUsecase(recordStore, archiveStorage, bootstrap.DriverConfig.Minio.BucketName, bootstrap.Logger)
	exportController := exports.NewExportController(bootstrap.Logger, exportUsecase)

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		httpMiddlewares,
		authController,
		patientController,
		appointmentController,
		doctorController,
		specialtyController,
		invoiceController,
		historyController,
		exportController,
	)
	return nil
}
