package routers

import (
	"hospital-web-service/internal/app/config"
	"hospital-web-service/internal/app/delivery/http/controllers"
	"hospital-web-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"go.uber.org/zap"
)

type Controllers struct {
	Home        *controllers.HomeController
	Health      *controllers.HealthController
	Department  *controllers.DepartmentController
	Doctor      *controllers.DoctorController
	Appointment *controllers.AppointmentController
}

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
	accessLog *logrus.Logger,
	middlewares *middlewares.Middlewares,
	controllers Controllers,
) {
	corsOptions := cors.Options{
		AllowedOrigins:   internalConfig.App.CORSAllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}

	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging(logger))
	if accessLog != nil {
		router.Use(middlewares.RequestLogger(internalConfig.App, accessLog))
	}
	router.Use(middlewares.ErrorHandler)
	router.Use(cors.Handler(corsOptions))
	router.Use(middlewares.RateLimit())
	router.Use(middlewares.BodyLimit)
	router.Use(middlewares.RequestTimeout)

	router.Get("/health", controllers.Health.Health)
	router.Handle("/metrics", promhttp.Handler())

	router.Group(func(r chi.Router) {
		r.Use(middlewares.Session)

		r.Get("/", controllers.Home.Home)

		r.Route("/departments", func(r chi.Router) {
			attachDepartmentRoutes(r, controllers.Department)
		})

		r.Route("/doctors", func(r chi.Router) {
			attachDoctorRoutes(r, controllers.Doctor)
		})

		r.Route("/appointments", func(r chi.Router) {
			attachAppointmentRoutes(r, controllers.Appointment)
		})
	})

	router.NotFound(controllers.Home.NotFound)
}
