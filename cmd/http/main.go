package main

import (
	"context"
	"hospital-web-service/internal/app/config"
	"hospital-web-service/internal/app/contracts"
	"hospital-web-service/internal/app/delivery/http/controllers"
	"hospital-web-service/internal/app/delivery/http/middlewares"
	"hospital-web-service/internal/app/delivery/http/routers"
	"hospital-web-service/internal/app/delivery/http/views"
	"hospital-web-service/internal/app/drivers/database"
	"hospital-web-service/internal/app/drivers/logger"
	"hospital-web-service/internal/app/drivers/messaging"
	"hospital-web-service/internal/app/drivers/storage"
	"hospital-web-service/internal/app/services/core/appointments"
	"hospital-web-service/internal/app/services/core/departments"
	"hospital-web-service/internal/app/services/core/doctors"
	backendAppointments "hospital-web-service/internal/app/services/hospital_backend/appointments"
	backendDepartments "hospital-web-service/internal/app/services/hospital_backend/departments"
	backendDoctors "hospital-web-service/internal/app/services/hospital_backend/doctors"
	"hospital-web-service/internal/app/services/hospital_backend/transport"
	"hospital-web-service/internal/app/services/shared/audit"
	"hospital-web-service/internal/app/services/shared/eventqueue"
	"hospital-web-service/internal/app/services/shared/redis"
	sharedStorage "hospital-web-service/internal/app/services/shared/storage"
	"hospital-web-service/internal/app/services/shared/viewstate"
	"hospital-web-service/internal/pkg/constvars"
	"hospital-web-service/web"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewZapLogger(driverConfig, internalConfig)
	accessLog := logger.NewLogrusLogger(internalConfig)

	time.Local = internalConfig.App.Location()

	bootstrap := &config.Bootstrap{
		Router:         chi.NewRouter(),
		Logger:         log,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}

	if internalConfig.Session.Store == constvars.SessionStoreRedis {
		bootstrap.Redis = database.NewRedisClient(driverConfig)
	}
	if internalConfig.MongoDB.Enabled {
		bootstrap.MongoDB = database.NewMongoDB(driverConfig, internalConfig)
	}
	if internalConfig.RabbitMQ.Enabled {
		bootstrap.RabbitMQ = messaging.NewRabbitMQ(driverConfig, internalConfig)
	}
	if internalConfig.Minio.Enabled {
		bootstrap.Minio = storage.NewMinio(driverConfig, internalConfig)
	}

	closePublisher := bootstrapingTheApp(bootstrap, accessLog)

	server := &http.Server{
		Addr:    ":" + internalConfig.App.Port,
		Handler: bootstrap.Router,
	}

	go func() {
		log.Info("Server starting", zap.String("address", server.Addr))
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	logrus.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	err := server.Shutdown(shutdownCtx)
	if err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}

	closePublisher()

	err = bootstrap.Shutdown(shutdownCtx)
	if err != nil {
		logrus.Printf("Failed to close drivers: %v", err)
	}

	logrus.Println("Server exiting")
}

// bootstrapingTheApp wires every component onto the router. The returned
// func releases the event publisher channel.
func bootstrapingTheApp(bootstrap *config.Bootstrap, accessLog *logrus.Logger) func() {
	log := bootstrap.Logger
	internalConfig := bootstrap.InternalConfig

	// Views
	renderer, err := views.NewRenderer(web.Templates, log)
	if err != nil {
		log.Fatal("Failed to parse templates", zap.Error(err))
	}

	// View state
	viewStateTTL := time.Duration(internalConfig.Session.ViewStateTTLInMinutes) * time.Minute
	var redisRepository contracts.RedisRepository
	var viewStateRepository contracts.ViewStateRepository
	if bootstrap.Redis != nil {
		redisRepository = redis.NewRedisRepository(bootstrap.Redis)
		viewStateRepository = viewstate.NewRedisViewStateRepository(redisRepository, viewStateTTL, log)
	} else {
		viewStateRepository = viewstate.NewMemoryViewStateRepository(viewStateTTL)
	}

	// Audit
	auditRepository := audit.NewAuditLogRepository(log)
	if bootstrap.MongoDB != nil {
		auditRepository = audit.NewAuditMongoRepository(bootstrap.MongoDB, internalConfig.MongoDB.AuditCollection)
	}

	// Appointment events
	eventPublisher := eventqueue.NewLogPublisher(log)
	closePublisher := func() {}
	if bootstrap.RabbitMQ != nil {
		publisher, err := eventqueue.NewPublisher(bootstrap.RabbitMQ, internalConfig.RabbitMQ.AppointmentQueue, log)
		if err != nil {
			log.Fatal("Failed to open appointment event channel", zap.Error(err))
		}
		eventPublisher = publisher
		closePublisher = func() {
			if err := publisher.Close(); err != nil {
				log.Warn("Failed to close appointment event channel", zap.Error(err))
			}
		}
	}

	// Roster export
	var objectStorage contracts.Storage
	if bootstrap.Minio != nil {
		objectStorage = sharedStorage.NewMinioStorage(bootstrap.Minio)
	}
	exportService := sharedStorage.NewExportService(
		objectStorage,
		internalConfig.Minio.BucketName,
		time.Duration(internalConfig.Minio.MinioPreSignedUrlObjectExpiryTimeInHours)*time.Hour,
		log,
	)

	// Hospital backend
	backendTransport := transport.NewTransport(internalConfig.Backend, log)
	departmentClient := backendDepartments.NewDepartmentBackendClient(backendTransport, log)
	doctorClient := backendDoctors.NewDoctorBackendClient(backendTransport, log)
	appointmentClient := backendAppointments.NewAppointmentBackendClient(backendTransport, log)

	// Usecases
	departmentUsecase := departments.NewDepartmentUsecase(departmentClient, viewStateRepository, auditRepository, log)
	doctorUsecase := doctors.NewDoctorUsecase(doctorClient, departmentClient, viewStateRepository, auditRepository, exportService, log)
	appointmentUsecase := appointments.NewAppointmentUsecase(doctorClient, appointmentClient, viewStateRepository, auditRepository, eventPublisher, internalConfig, log)

	// Middlewares
	middlewares := middlewares.NewMiddlewares(log, middlewares.NewSessionStore(internalConfig.Session), renderer, internalConfig)

	routers.SetupRoutes(bootstrap.Router, internalConfig, log, accessLog, middlewares, routers.Controllers{
		Home:        controllers.NewHomeController(log, renderer),
		Health:      controllers.NewHealthController(log, internalConfig, viewStateRepository, redisRepository),
		Department:  controllers.NewDepartmentController(log, departmentUsecase, renderer),
		Doctor:      controllers.NewDoctorController(log, doctorUsecase, renderer),
		Appointment: controllers.NewAppointmentController(log, appointmentUsecase, renderer),
	})

	log.Info("Application bootstrapped",
		zap.String("session_store", viewStateRepository.Name()),
		zap.Bool("audit_mongodb", bootstrap.MongoDB != nil),
		zap.Bool("events_rabbitmq", bootstrap.RabbitMQ != nil),
		zap.Bool("export_minio", exportService.Enabled()),
	)

	return closePublisher
}
