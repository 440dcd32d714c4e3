package routers

import (
	"policlinico-service/internal/app/delivery/http/middlewares"
	"policlinico-service/internal/app/services/core/specialties"
	"policlinico-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachSpecialtyRoutes(router chi.Router, middlewares *middlewares.Middlewares, specialtyController *specialties.SpecialtyController) {
	router.Use(middlewares.Authenticate)
	router.Use(middlewares.RequireCapability(constvars.CapabilitySpecialties))

	router.Get("/", specialtyController.FindAll)
	router.Post("/", specialtyController.Create)
	router.Get("/{specialtyID}", specialtyController.FindByID)
	router.Put("/{specialtyID}", specialtyController.Update)
	router.Delete("/{specialtyID}", specialtyController.Delete)
}
