package invoices

import (
	"context"
	"time"

	"policlinico-service/internal/app/models"
	"policlinico-service/internal/app/services/core/records"
	"policlinico-service/internal/pkg/constvars"
	"policlinico-service/internal/pkg/dto/requests"
	"policlinico-service/internal/pkg/exceptions"
	"policlinico-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type invoiceUsecase struct {
	Store *records.RecordStore
	Log   *zap.Logger
}

func NewInvoiceUsecase(store *records.RecordStore, logger *zap.Logger) InvoiceUsecase {
	return &invoiceUsecase{
		Store: store,
		Log:   logger,
	}
}

// buildInvoice resolves the patient by cedula and normalizes the cost. The
// invoice carries the patient name denormalized so exports never need a join.
func (uc *invoiceUsecase) buildInvoice(request *requests.CreateInvoice) (*models.Invoice, error) {
	cost, ok := utils.ParseDecimal(request.Cost)
	if !ok || cost <= 0 || cost > constvars.InvoiceCostMax {
		return nil, exceptions.WrapWithoutError(constvars.StatusBadRequest, "cost must be a number greater than 0", constvars.ErrDevInvalidInput)
	}

	// Dates share the YYYY-MM-DD layout, so ordering is plain string compare.
	if request.IssuedAt > time.Now().Format(constvars.TimeLayoutDate) {
		return nil, exceptions.WrapWithoutError(constvars.StatusBadRequest, "the issue date must not be in the future", constvars.ErrDevInvalidInput)
	}

	patient, found := uc.Store.FindPatientByCedula(request.Cedula)
	if !found {
		return nil, exceptions.ErrPatientNotRegistered()
	}

	return &models.Invoice{
		PatientName:   patient.FullName,
		Cedula:        patient.Cedula,
		Doctor:        request.Doctor,
		Service:       request.Service,
		Description:   request.Description,
		Cost:          cost,
		PaymentMethod: request.PaymentMethod,
		IssuedAt:      request.IssuedAt,
	}, nil
}

func (uc *invoiceUsecase) Create(ctx context.Context, request *requests.CreateInvoice) (*models.Invoice, error) {
	utils.SanitizeCreateInvoiceRequest(request)
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	invoice, err := uc.buildInvoice(request)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	invoice.ID = utils.GenerateRecordID()
	invoice.Number = utils.GenerateInvoiceNumber(now)
	invoice.RegisteredAt = now.Format(constvars.TimeLayoutRegistered)

	if err := uc.Store.CreateInvoice(ctx, *invoice); err != nil {
		return nil, err
	}

	uc.Log.Info("invoice generated",
		zap.String("invoice_id", invoice.ID),
		zap.String("invoice_number", invoice.Number),
		zap.Float64("cost", invoice.Cost),
	)
	return invoice, nil
}

func (uc *invoiceUsecase) Update(ctx context.Context, invoiceID string, request *requests.UpdateInvoice) (*models.Invoice, error) {
	utils.SanitizeCreateInvoiceRequest(&request.CreateInvoice)
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	invoice, err := uc.buildInvoice(&request.CreateInvoice)
	if err != nil {
		return nil, err
	}

	if err := uc.Store.UpdateInvoice(ctx, invoiceID, *invoice); err != nil {
		return nil, err
	}
	updated, err := uc.Store.GetInvoice(invoiceID)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (uc *invoiceUsecase) Delete(ctx context.Context, invoiceID string) error {
	return uc.Store.DeleteInvoice(ctx, invoiceID)
}

func (uc *invoiceUsecase) FindAll(ctx context.Context) ([]models.Invoice, error) {
	return uc.Store.ListInvoices(), nil
}

func (uc *invoiceUsecase) FindByID(ctx context.Context, invoiceID string) (*models.Invoice, error) {
	invoice, err := uc.Store.GetInvoice(invoiceID)
	if err != nil {
		return nil, err
	}
	return &invoice, nil
}
