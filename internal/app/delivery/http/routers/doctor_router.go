package routers

import (
	"policlinico-service/internal/app/delivery/http/middlewares"
	"policlinico-service/internal/app/services/core/doctors"
	"policlinico-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachDoctorRoutes(router chi.Router, middlewares *middlewares.Middlewares, doctorController *doctors.DoctorController) {
	router.Use(middlewares.Authenticate)
	router.Use(middlewares.RequireCapability(constvars.CapabilityDoctors))

	router.Get("/", doctorController.FindAll)
	router.Post("/", doctorController.Create)
	router.Get("/{doctorID}", doctorController.FindByID)
	router.Put("/{doctorID}", doctorController.Update)
	router.Delete("/{doctorID}", doctorController.Delete)
}
