package routers

import (
	"policlinico-service/internal/app/delivery/http/middlewares"
	"policlinico-service/internal/app/services/core/appointments"
	"policlinico-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachAppointmentRoutes(router chi.Router, middlewares *middlewares.Middlewares, appointmentController *appointments.AppointmentController) {
	router.Use(middlewares.Authenticate)
	router.Use(middlewares.RequireCapability(constvars.CapabilityAppointments))

	router.Get("/", appointmentController.FindAll)
	router.Post("/", appointmentController.Create)
	router.Get("/{appointmentID}", appointmentController.FindByID)
	router.Put("/{appointmentID}", appointmentController.Update)
	router.Patch("/{appointmentID}/status", appointmentController.ChangeStatus)
	router.Delete("/{appointmentID}", appointmentController.Delete)
}
