package invoices

import (
	"context"

	"policlinico-service/internal/app/models"
	"policlinico-service/internal/pkg/dto/requests"
)

type InvoiceUsecase interface {
	Create(ctx context.Context, request *requests.CreateInvoice) (*models.Invoice, error)
	Update(ctx context.Context, invoiceID string, request *requests.UpdateInvoice) (*models.Invoice, error)
	Delete(ctx context.Context, invoiceID string) error
	FindAll(ctx context.Context) ([]models.Invoice, error)
	FindByID(ctx context.Context, invoiceID string) (*models.Invoice, error)
}
