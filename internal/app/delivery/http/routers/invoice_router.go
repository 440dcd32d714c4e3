package routers

import (
	"policlinico-service/internal/app/delivery/http/middlewares"
	"policlinico-service/internal/app/services/core/invoices"
	"policlinico-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachInvoiceRoutes(router chi.Router, middlewares *middlewares.Middlewares, invoiceController *invoices.InvoiceController) {
	router.Use(middlewares.Authenticate)
	router.Use(middlewares.RequireCapability(constvars.CapabilityInvoices))

	router.Get("/", invoiceController.FindAll)
	router.Post("/", invoiceController.Create)
	router.Get("/{invoiceID}", invoiceController.FindByID)
	router.Put("/{invoiceID}", invoiceController.Update)
	router.Delete("/{invoiceID}", invoiceController.Delete)
}
