package routers

import (
	"fmt"
	"time"

	"policlinico-service/internal/app/config"
	"policlinico-service/internal/app/delivery/http/middlewares"
	"policlinico-service/internal/app/services/core/appointments"
	"policlinico-service/internal/app/services/core/auth"
	"policlinico-service/internal/app/services/core/doctors"
	"policlinico-service/internal/app/services/core/exports"
	"policlinico-service/internal/app/services/core/histories"
	"policlinico-service/internal/app/services/core/invoices"
	"policlinico-service/internal/app/services/core/patients"
	"policlinico-service/internal/app/services/core/specialties"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	authController *auth.AuthController,
	patientController *patients.PatientController,
	appointmentController *appointments.AppointmentController,
	doctorController *doctors.DoctorController,
	specialtyController *specialties.SpecialtyController,
	invoiceController *invoices.InvoiceController,
	historyController *histories.HistoryController,
	exportController *exports.ExportController,
) {

	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"Content-Disposition", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	rateLimiter := httprate.LimitByIP(
		internalConfig.App.MaxRequests,
		time.Duration(internalConfig.App.MaxTimeRequestsPerSeconds)*time.Second,
	)
	router.Use(rateLimiter)

	bodyLimit := int64(internalConfig.App.RequestBodyLimitInMegabyte) << 20
	router.Use(chiMiddleware.RequestSize(bodyLimit))

	router.Use(middlewares.RequestLogger)

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)
	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.Version)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Route("/auth", func(r chi.Router) {
				attachAuthRoutes(r, middlewares, authController)
			})

			r.Route("/session", func(r chi.Router) {
				attachSessionRoutes(r, middlewares, authController)
			})

			r.Route("/patients", func(r chi.Router) {
				attachPatientRoutes(r, middlewares, patientController, historyController)
			})

			r.Route("/appointments", func(r chi.Router) {
				attachAppointmentRoutes(r, middlewares, appointmentController)
			})

			r.Route("/doctors", func(r chi.Router) {
				attachDoctorRoutes(r, middlewares, doctorController)
			})

			r.Route("/specialties", func(r chi.Router) {
				attachSpecialtyRoutes(r, middlewares, specialtyController)
			})

			r.Route("/invoices", func(r chi.Router) {
				attachInvoiceRoutes(r, middlewares, invoiceController)
			})

			r.Route("/histories", func(r chi.Router) {
				attachHistoryRoutes(r, middlewares, historyController)
			})

			r.Route("/exports", func(r chi.Router) {
				attachExportRoutes(r, middlewares, exportController)
			})
		})
	})
}
