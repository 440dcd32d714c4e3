package routers

import (
	"policlinico-service/internal/app/delivery/http/middlewares"
	"policlinico-service/internal/app/services/core/histories"
	"policlinico-service/internal/app/services/core/patients"
	"policlinico-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachPatientRoutes(
	router chi.Router,
	middlewares *middlewares.Middlewares,
	patientController *patients.PatientController,
	historyController *histories.HistoryController,
) {
	router.Group(func(r chi.Router) {
		r.Use(middlewares.Authenticate)
		r.Use(middlewares.RequireCapability(constvars.CapabilityPatients))

		r.Get("/", patientController.FindAll)
		r.Post("/", patientController.Create)
		r.Get("/{patientID}", patientController.FindByID)
		r.Put("/{patientID}", patientController.Update)
		r.Delete("/{patientID}", patientController.Delete)
	})

	router.Group(func(r chi.Router) {
		r.Use(middlewares.Authenticate)
		r.Use(middlewares.RequireCapability(constvars.CapabilityHistories))

		r.Get("/{patientID}/histories", historyController.FindByPatient)
	})
}
