package histories

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"policlinico-service/internal/app/models"
	"policlinico-service/internal/app/services/core/records"
	"policlinico-service/internal/pkg/constvars"
	"policlinico-service/internal/pkg/dto/requests"
	"policlinico-service/internal/pkg/exceptions"
	"policlinico-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type historyUsecase struct {
	Store *records.RecordStore
	Log   *zap.Logger
}

func NewHistoryUsecase(store *records.RecordStore, logger *zap.Logger) HistoryUsecase {
	return &historyUsecase{
		Store: store,
		Log:   logger,
	}
}

// checkVitals validates only the vital signs that were actually filled in.
// The stored record keeps the submitted strings untouched.
func checkVitals(request *requests.CreateClinicalHistory) error {
	checks := []struct {
		value    string
		min, max float64
		message  string
	}{
		{request.Temperature, constvars.TemperatureMinC, constvars.TemperatureMaxC, "temperature must be between 30 and 45 °C"},
		{request.OxygenSaturation, constvars.OxygenSaturationMin, constvars.OxygenSaturationMax, "oxygen saturation must be between 0 and 100 %"},
		{request.HeartRate, constvars.HeartRateMin, constvars.HeartRateMax, "heart rate must be between 10 and 250 bpm"},
		{request.RespiratoryRate, constvars.RespiratoryRateMin, constvars.RespiratoryRateMax, "respiratory rate must be between 5 and 60 rpm"},
	}
	for _, c := range checks {
		if c.value == "" {
			continue
		}
		if !utils.ValidateNumberInRange(c.value, c.min, c.max) {
			return exceptions.WrapWithoutError(constvars.StatusBadRequest, c.message, constvars.ErrDevInvalidInput)
		}
	}
	if request.Weight != "" && !utils.ValidateNumberInRange(request.Weight, constvars.WeightMinKg, constvars.WeightMaxKg) {
		return exceptions.WrapWithoutError(constvars.StatusBadRequest, "weight must be between 2 and 500 kg", constvars.ErrDevInvalidInput)
	}
	if request.Height != "" && !utils.ValidateNumberInRange(request.Height, constvars.HeightMinM, constvars.HeightMaxM) {
		return exceptions.WrapWithoutError(constvars.StatusBadRequest, "height must be between 0.3 and 2.5 m", constvars.ErrDevInvalidInput)
	}
	if request.NextAppointment != "" && !utils.ValidateNotPastDateTime(request.NextAppointment) {
		return exceptions.WrapWithoutError(constvars.StatusBadRequest, "the next appointment date must not be in the past", constvars.ErrDevInvalidInput)
	}
	return nil
}

// derivedBMI recomputes the body mass index when both measurements parse.
// Rendered with one decimal, matching what the consultation form shows.
func derivedBMI(weightValue, heightValue string) string {
	weight, okW := utils.ParseDecimal(weightValue)
	height, okH := utils.ParseDecimal(heightValue)
	if !okW || !okH || height <= 0 {
		return ""
	}
	bmi := utils.CalculateBMI(weight, height)
	return strconv.FormatFloat(bmi, 'f', 1, 64)
}

func (uc *historyUsecase) Create(ctx context.Context, request *requests.CreateClinicalHistory) (*models.ClinicalHistory, error) {
	utils.SanitizeCreateClinicalHistoryRequest(request)
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}
	if err := checkVitals(request); err != nil {
		return nil, err
	}

	patient, err := uc.Store.GetPatient(request.PatientID)
	if err != nil {
		return nil, err
	}

	history := &models.ClinicalHistory{
		ID:                 utils.GenerateRecordID(),
		PatientID:          patient.ID,
		PatientName:        fmt.Sprintf("%s (%s)", patient.FullName, patient.Cedula),
		LastVisit:          request.LastVisit,
		Doctor:             request.Doctor,
		Specialty:          request.Specialty,
		Reason:             request.Reason,
		MedicalHistory:     request.MedicalHistory,
		PersonalHistory:    request.PersonalHistory,
		FamilyHistory:      request.FamilyHistory,
		Habits:             request.Habits,
		Weight:             request.Weight,
		Height:             request.Height,
		BloodPressure:      request.BloodPressure,
		HeartRate:          request.HeartRate,
		RespiratoryRate:    request.RespiratoryRate,
		Temperature:        request.Temperature,
		OxygenSaturation:   request.OxygenSaturation,
		BMI:                derivedBMI(request.Weight, request.Height),
		PhysicalExam:       request.PhysicalExam,
		PrimaryDiagnosis:   request.PrimaryDiagnosis,
		SecondaryDiagnosis: request.SecondaryDiagnosis,
		Treatment:          request.Treatment,
		Recommendations:    request.Recommendations,
		RequestedTests:     request.RequestedTests,
		NextAppointment:    request.NextAppointment,
		AdditionalNotes:    request.AdditionalNotes,
		RegisteredAt:       time.Now().Format(constvars.TimeLayoutRegistered),
	}

	if err := uc.Store.CreateHistory(ctx, *history); err != nil {
		return nil, err
	}

	uc.Log.Info("clinical history registered",
		zap.String("history_id", history.ID),
		zap.String("patient_id", history.PatientID),
	)
	return history, nil
}

func (uc *historyUsecase) Delete(ctx context.Context, historyID string) error {
	return uc.Store.DeleteHistory(ctx, historyID)
}

func (uc *historyUsecase) FindAll(ctx context.Context) ([]models.ClinicalHistory, error) {
	return uc.Store.ListHistories(), nil
}

func (uc *historyUsecase) FindByID(ctx context.Context, historyID string) (*models.ClinicalHistory, error) {
	history, err := uc.Store.GetHistory(historyID)
	if err != nil {
		return nil, err
	}
	return &history, nil
}

func (uc *historyUsecase) FindByPatient(ctx context.Context, patientID string) ([]models.ClinicalHistory, error) {
	if _, err := uc.Store.GetPatient(patientID); err != nil {
		return nil, err
	}
	return uc.Store.ListHistoriesByPatient(patientID), nil
}
