package routers

import (
	"policlinico-service/internal/app/delivery/http/middlewares"
	"policlinico-service/internal/app/services/core/histories"
	"policlinico-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachHistoryRoutes(router chi.Router, middlewares *middlewares.Middlewares, historyController *histories.HistoryController) {
	router.Use(middlewares.Authenticate)
	router.Use(middlewares.RequireCapability(constvars.CapabilityHistories))

	router.Get("/", historyController.FindAll)
	router.Post("/", historyController.Create)
	router.Get("/{historyID}", historyController.FindByID)
	router.Delete("/{historyID}", historyController.Delete)
}
