package histories

import (
	"context"
	"errors"
	"testing"

	"policlinico-service/internal/app/models"
	"policlinico-service/internal/app/services/core/records"
	"policlinico-service/internal/pkg/constvars"
	"policlinico-service/internal/pkg/dto/requests"
	"policlinico-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestUsecase(t *testing.T) (HistoryUsecase, *records.RecordStore) {
	t.Helper()
	store, err := records.NewRecordStore(context.Background(), records.NewMemorySnapshotRepository(), nil, zap.NewNop())
	require.NoError(t, err)
	return NewHistoryUsecase(store, zap.NewNop()), store
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

func validRequest() *requests.CreateClinicalHistory {
	return &requests.CreateClinicalHistory{
		PatientID: "p-1",
		Reason:    "Control de rutina",
		Weight:    "72,5",
		Height:    "1.75",
	}
}

func TestHistoryCreate(t *testing.T) {
	uc, store := newTestUsecase(t)
	registerPatient(t, store)

	created, err := uc.Create(context.Background(), validRequest())
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "Juan Pérez (1710034065)", created.PatientName)
	assert.Equal(t, "23.7", created.BMI)
	assert.NotEmpty(t, created.RegisteredAt)
}

func TestHistoryCreateUnknownPatient(t *testing.T) {
	uc, _ := newTestUsecase(t)

	_, err := uc.Create(context.Background(), validRequest())
	require.Error(t, err)

	var customErr *exceptions.CustomError
	require.True(t, errors.As(err, &customErr))
	assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
}

func TestHistoryCreateVitalsOutOfRange(t *testing.T) {
	uc, store := newTestUsecase(t)
	registerPatient(t, store)

	cases := []struct {
		name   string
		mutate func(*requests.CreateClinicalHistory)
	}{
		{"temperature too high", func(r *requests.CreateClinicalHistory) { r.Temperature = "50" }},
		{"saturation above 100", func(r *requests.CreateClinicalHistory) { r.OxygenSaturation = "110" }},
		{"heart rate too low", func(r *requests.CreateClinicalHistory) { r.HeartRate = "5" }},
		{"respiratory rate too high", func(r *requests.CreateClinicalHistory) { r.RespiratoryRate = "90" }},
		{"weight implausible", func(r *requests.CreateClinicalHistory) { r.Weight = "600" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			request := validRequest()
			tc.mutate(request)

			_, err := uc.Create(context.Background(), request)
			require.Error(t, err)

			var customErr *exceptions.CustomError
			require.True(t, errors.As(err, &customErr))
			assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
		})
	}
}

func TestHistoryCreateWithoutMeasurements(t *testing.T) {
	uc, store := newTestUsecase(t)
	registerPatient(t, store)

	request := validRequest()
	request.Weight = ""
	request.Height = ""

	created, err := uc.Create(context.Background(), request)
	require.NoError(t, err)
	assert.Empty(t, created.BMI)
}

func TestHistoryFindByPatient(t *testing.T) {
	uc, store := newTestUsecase(t)
	registerPatient(t, store)
	ctx := context.Background()

	_, err := uc.Create(ctx, validRequest())
	require.NoError(t, err)
	_, err = uc.Create(ctx, validRequest())
	require.NoError(t, err)

	histories, err := uc.FindByPatient(ctx, "p-1")
	require.NoError(t, err)
	assert.Len(t, histories, 2)

	_, err = uc.FindByPatient(ctx, "missing")
	assert.Error(t, err)
}
