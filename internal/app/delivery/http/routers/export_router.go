package routers

import (
	"policlinico-service/internal/app/delivery/http/middlewares"
	"policlinico-service/internal/app/services/core/exports"
	"policlinico-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachExportRoutes(router chi.Router, middlewares *middlewares.Middlewares, exportController *exports.ExportController) {
	router.Use(middlewares.Authenticate)
	router.Use(middlewares.RequireCapability(constvars.CapabilityExports))

	router.Get("/", exportController.Download)
}
