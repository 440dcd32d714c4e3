package invoices

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"policlinico-service/internal/app/models"
	"policlinico-service/internal/app/services/core/records"
	"policlinico-service/internal/pkg/constvars"
	"policlinico-service/internal/pkg/dto/requests"
	"policlinico-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestUsecase(t *testing.T) (InvoiceUsecase, *records.RecordStore) {
	t.Helper()
	store, err := records.NewRecordStore(context.Background(), records.NewMemorySnapshotRepository(), nil, zap.NewNop())
	require.NoError(t, err)
	return NewInvoiceUsecase(store, zap.NewNop()), store
}

func registerPatient(t *testing.T, store *records.RecordStore) models.Patient {
	t.Helper()
	patient := models.Patient{
		ID:       "p-1",
		FullName: "Juan Pérez",
		Cedula:   "1710034065",
	}
	require.NoError(t, store.CreatePatient(context.Background(), patient))
	return patient
}

func validRequest() *requests.CreateInvoice {
	return &requests.CreateInvoice{
		Cedula:        "1710034065",
		Service:       "Consulta general",
		Cost:          "25,50",
		PaymentMethod: "Efectivo",
		IssuedAt:      time.Now().Format(constvars.TimeLayoutDate),
	}
}

func TestInvoiceCreate(t *testing.T) {
	uc, store := newTestUsecase(t)
	patient := registerPatient(t, store)

	created, err := uc.Create(context.Background(), validRequest())
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.True(t, strings.HasPrefix(created.Number, constvars.InvoiceNumberPrefix))
	assert.Equal(t, patient.FullName, created.PatientName)
	assert.Equal(t, 25.5, created.Cost)
	assert.NotEmpty(t, created.RegisteredAt)
}

func TestInvoiceCreateInvalidCost(t *testing.T) {
	uc, store := newTestUsecase(t)
	registerPatient(t, store)

	for _, cost := range []string{"0", "-10", "abc", "1000001"} {
		t.Run(cost, func(t *testing.T) {
			request := validRequest()
			request.Cost = cost

			_, err := uc.Create(context.Background(), request)
			require.Error(t, err)

			var customErr *exceptions.CustomError
			require.True(t, errors.As(err, &customErr))
			assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
		})
	}
}

func TestInvoiceCreateFutureIssueDate(t *testing.T) {
	uc, store := newTestUsecase(t)
	registerPatient(t, store)

	request := validRequest()
	request.IssuedAt = time.Now().AddDate(0, 0, 2).Format(constvars.TimeLayoutDate)

	_, err := uc.Create(context.Background(), request)
	require.Error(t, err)

	var customErr *exceptions.CustomError
	require.True(t, errors.As(err, &customErr))
	assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
}

func TestInvoiceCreateUnregisteredPatient(t *testing.T) {
	uc, _ := newTestUsecase(t)

	_, err := uc.Create(context.Background(), validRequest())
	require.Error(t, err)

	var customErr *exceptions.CustomError
	require.True(t, errors.As(err, &customErr))
	assert.Equal(t, constvars.ErrClientPatientNotRegistered, customErr.ClientMessage)
}

func TestInvoiceUpdatePreservesNumber(t *testing.T) {
	uc, store := newTestUsecase(t)
	registerPatient(t, store)
	ctx := context.Background()

	created, err := uc.Create(ctx, validRequest())
	require.NoError(t, err)

	edit := &requests.UpdateInvoice{CreateInvoice: *validRequest()}
	edit.Service = "Radiografía"
	updated, err := uc.Update(ctx, created.ID, edit)
	require.NoError(t, err)

	assert.Equal(t, "Radiografía", updated.Service)
	assert.Equal(t, created.Number, updated.Number)
	assert.Equal(t, created.RegisteredAt, updated.RegisteredAt)
}
