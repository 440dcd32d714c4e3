package appointments

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

type appointmentUsecase struct {
	Store *records.RecordStore
	Log   *zap.Logger
}

func NewAppointmentUsecase(store *records.RecordStore, logger *zap.Logger) AppointmentUsecase {
	return &appointmentUsecase{
		Store: store,
		Log:   logger,
	}
}

// buildAppointment resolves the patient by cedula and checks the scheduling
// window. The struct tags already rejected past date-times.
func (uc *appointmentUsecase) buildAppointment(request *requests.CreateAppointment) (*models.Appointment, error) {
	if !utils.WithinAppointmentHorizon(request.DateTime) {
		return nil, exceptions.WrapWithoutError(constvars.StatusBadRequest, constvars.ErrClientAppointmentTooFarInFuture, constvars.ErrDevInvalidInput)
	}

	patient, found := uc.Store.FindPatientByCedula(request.Cedula)
	if !found {
		return nil, exceptions.ErrPatientNotRegistered()
	}

	return &models.Appointment{
		PatientID:   patient.ID,
		PatientName: patient.FullName,
		Cedula:      patient.Cedula,
		Specialty:   request.Specialty,
		Doctor:      request.Doctor,
		DateTime:    request.DateTime,
		Office:      request.Office,
		Notes:       request.Notes,
	}, nil
}

func (uc *appointmentUsecase) Create(ctx context.Context, request *requests.CreateAppointment) (*models.Appointment, error) {
	utils.SanitizeCreateAppointmentRequest(request)
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	appointment, err := uc.buildAppointment(request)
	if err != nil {
		return nil, err
	}
	appointment.ID = utils.GenerateRecordID()
	appointment.Status = models.AppointmentPending
	appointment.RegisteredAt = time.Now().Format(constvars.TimeLayoutRegistered)

	if err := uc.Store.CreateAppointment(ctx, *appointment); err != nil {
		return nil, err
	}

	uc.Log.Info("appointment registered",
		zap.String("appointment_id", appointment.ID),
		zap.String("medico", appointment.Doctor),
		zap.String("fecha", appointment.DateTime),
	)
	return appointment, nil
}

func (uc *appointmentUsecase) Update(ctx context.Context, appointmentID string, request *requests.UpdateAppointment) (*models.Appointment, error) {
	utils.SanitizeCreateAppointmentRequest(&request.CreateAppointment)
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	appointment, err := uc.buildAppointment(&request.CreateAppointment)
	if err != nil {
		return nil, err
	}

	if err := uc.Store.UpdateAppointment(ctx, appointmentID, *appointment); err != nil {
		return nil, err
	}
	updated, err := uc.Store.GetAppointment(appointmentID)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (uc *appointmentUsecase) ChangeStatus(ctx context.Context, appointmentID string, request *requests.ChangeAppointmentStatus) (*models.Appointment, error) {
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	next := models.AppointmentStatus(request.Status)
	if err := uc.Store.UpdateAppointmentStatus(ctx, appointmentID, next); err != nil {
		return nil, err
	}

	updated, err := uc.Store.GetAppointment(appointmentID)
	if err != nil {
		return nil, err
	}
	uc.Log.Info("appointment status changed",
		zap.String("appointment_id", appointmentID),
		zap.String("estado", request.Status),
	)
	return &updated, nil
}

func (uc *appointmentUsecase) Delete(ctx context.Context, appointmentID string) error {
	return uc.Store.DeleteAppointment(ctx, appointmentID)
}

func (uc *appointmentUsecase) FindAll(ctx context.Context) ([]models.Appointment, error) {
	return uc.Store.ListAppointments(), nil
}

func (uc *appointmentUsecase) FindByID(ctx context.Context, appointmentID string) (*models.Appointment, error) {
	appointment, err := uc.Store.GetAppointment(appointmentID)
	if err != nil {
		return nil, err
	}
	return &appointment, nil
}
