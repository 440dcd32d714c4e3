package appointments

import (
	"context"
	"errors"
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

func newTestUsecase(t *testing.T) (AppointmentUsecase, *records.RecordStore) {
	t.Helper()
	store, err := records.NewRecordStore(context.Background(), records.NewMemorySnapshotRepository(), nil, zap.NewNop())
	require.NoError(t, err)
	return NewAppointmentUsecase(store, zap.NewNop()), store
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

func validRequest() *requests.CreateAppointment {
	return &requests.CreateAppointment{
		Cedula:    "1710034065",
		Specialty: "Cardiología",
		Doctor:    "Dr. Carlos Vera",
		DateTime:  time.Now().AddDate(0, 1, 0).Format(constvars.TimeLayoutDateTime),
		Office:    "101",
	}
}

func TestAppointmentCreate(t *testing.T) {
	uc, store := newTestUsecase(t)
	patient := registerPatient(t, store)
	ctx := context.Background()

	created, err := uc.Create(ctx, validRequest())
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.Equal(t, models.AppointmentPending, created.Status)
	assert.Equal(t, patient.ID, created.PatientID)
	assert.Equal(t, patient.FullName, created.PatientName)
	assert.NotEmpty(t, created.RegisteredAt)
}

func TestAppointmentCreateUnregisteredPatient(t *testing.T) {
	uc, _ := newTestUsecase(t)

	request := validRequest()
	request.Cedula = "0926687856"

	_, err := uc.Create(context.Background(), request)
	require.Error(t, err)

	var customErr *exceptions.CustomError
	require.True(t, errors.As(err, &customErr))
	assert.Equal(t, constvars.ErrClientPatientNotRegistered, customErr.ClientMessage)
}

func TestAppointmentCreatePastDateTime(t *testing.T) {
	uc, store := newTestUsecase(t)
	registerPatient(t, store)

	request := validRequest()
	request.DateTime = time.Now().Add(-24 * time.Hour).Format(constvars.TimeLayoutDateTime)

	_, err := uc.Create(context.Background(), request)
	require.Error(t, err)

	var customErr *exceptions.CustomError
	require.True(t, errors.As(err, &customErr))
	assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
}

func TestAppointmentCreateBeyondHorizon(t *testing.T) {
	uc, store := newTestUsecase(t)
	registerPatient(t, store)

	request := validRequest()
	request.DateTime = time.Now().AddDate(0, 7, 0).Format(constvars.TimeLayoutDateTime)

	_, err := uc.Create(context.Background(), request)
	require.Error(t, err)

	var customErr *exceptions.CustomError
	require.True(t, errors.As(err, &customErr))
	assert.Equal(t, constvars.ErrClientAppointmentTooFarInFuture, customErr.ClientMessage)
}

func TestAppointmentCreateDoctorConflict(t *testing.T) {
	uc, store := newTestUsecase(t)
	registerPatient(t, store)
	ctx := context.Background()

	_, err := uc.Create(ctx, validRequest())
	require.NoError(t, err)

	_, err = uc.Create(ctx, validRequest())
	require.Error(t, err)

	var customErr *exceptions.CustomError
	require.True(t, errors.As(err, &customErr))
	assert.Equal(t, constvars.StatusConflict, customErr.StatusCode)
}

func TestAppointmentChangeStatus(t *testing.T) {
	uc, store := newTestUsecase(t)
	registerPatient(t, store)
	ctx := context.Background()

	created, err := uc.Create(ctx, validRequest())
	require.NoError(t, err)

	t.Run("valid transition", func(t *testing.T) {
		updated, err := uc.ChangeStatus(ctx, created.ID, &requests.ChangeAppointmentStatus{Status: "Confirmada"})
		require.NoError(t, err)
		assert.Equal(t, models.AppointmentConfirmed, updated.Status)
	})

	t.Run("illegal transition is rejected", func(t *testing.T) {
		_, err := uc.ChangeStatus(ctx, created.ID, &requests.ChangeAppointmentStatus{Status: "Pendiente"})
		assert.Error(t, err)
	})

	t.Run("unknown status fails validation", func(t *testing.T) {
		_, err := uc.ChangeStatus(ctx, created.ID, &requests.ChangeAppointmentStatus{Status: "Archivada"})
		assert.Error(t, err)
	})
}

func TestAppointmentUpdateKeepsStatus(t *testing.T) {
	uc, store := newTestUsecase(t)
	registerPatient(t, store)
	ctx := context.Background()

	created, err := uc.Create(ctx, validRequest())
	require.NoError(t, err)
	_, err = uc.ChangeStatus(ctx, created.ID, &requests.ChangeAppointmentStatus{Status: "Confirmada"})
	require.NoError(t, err)

	edit := &requests.UpdateAppointment{CreateAppointment: *validRequest()}
	edit.Office = "204"
	updated, err := uc.Update(ctx, created.ID, edit)
	require.NoError(t, err)

	assert.Equal(t, "204", updated.Office)
	assert.Equal(t, models.AppointmentConfirmed, updated.Status)
}
