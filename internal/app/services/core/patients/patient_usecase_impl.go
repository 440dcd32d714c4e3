package patients

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

type patientUsecase struct {
	Store *records.RecordStore
	Log   *zap.Logger
}

func NewPatientUsecase(store *records.RecordStore, logger *zap.Logger) PatientUsecase {
	return &patientUsecase{
		Store: store,
		Log:   logger,
	}
}

// buildPatient runs the domain checks the struct tags cannot express and
// derives the computed fields.
func (uc *patientUsecase) buildPatient(ctx context.Context, request *requests.CreatePatient, exclude *records.Exclusion) (*models.Patient, error) {
	weight, ok := utils.ParseDecimal(request.Weight)
	if !ok || weight < constvars.WeightMinKg || weight > constvars.WeightMaxKg {
		return nil, exceptions.WrapWithoutError(constvars.StatusBadRequest, "weight must be between 2 and 500 kg", constvars.ErrDevInvalidInput)
	}
	height, ok := utils.ParseDecimal(request.Height)
	if !ok || height < constvars.HeightMinM || height > constvars.HeightMaxM {
		return nil, exceptions.WrapWithoutError(constvars.StatusBadRequest, "height must be between 0.3 and 2.5 m", constvars.ErrDevInvalidInput)
	}

	if request.Email != "" {
		inUse, err := uc.Store.IsEmailInUse(ctx, request.Email, exclude)
		if err != nil {
			return nil, err
		}
		if inUse {
			return nil, exceptions.ErrEmailAlreadyExists()
		}
	}

	age, ok := utils.AgeFromBirthDate(request.BirthDate)
	if !ok {
		return nil, exceptions.WrapWithoutError(constvars.StatusBadRequest, "birth date is malformed", constvars.ErrDevInvalidInput)
	}

	bmi := utils.CalculateBMI(weight, height)
	return &models.Patient{
		FullName:      request.Name,
		Cedula:        request.Cedula,
		BirthDate:     request.BirthDate,
		Age:           age,
		Sex:           request.Sex,
		MaritalStatus: request.MaritalStatus,
		BloodType:     request.BloodType,
		Nationality:   request.Nationality,
		Occupation:    request.Occupation,
		Address:       request.Address,
		City:          request.City,
		Province:      request.Province,
		Phone:         request.Phone,
		Email:         request.Email,
		Weight:        weight,
		Height:        height,
		BMI:           bmi,
		BMIClass:      utils.ClassifyBMI(bmi),
		Allergies:     request.Allergies,
		Conditions:    request.Diseases,
		Treatments:    request.Treatments,
		Notes:         request.Observations,
	}, nil
}

func (uc *patientUsecase) Create(ctx context.Context, request *requests.CreatePatient) (*models.Patient, error) {
	utils.SanitizeCreatePatientRequest(request)
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	patient, err := uc.buildPatient(ctx, request, nil)
	if err != nil {
		return nil, err
	}
	patient.ID = utils.GenerateRecordID()
	patient.RegisteredAt = time.Now().Format(constvars.TimeLayoutRegistered)

	if err := uc.Store.CreatePatient(ctx, *patient); err != nil {
		return nil, err
	}

	uc.Log.Info("patient registered",
		zap.String("patient_id", patient.ID),
		zap.String("cedula", patient.Cedula),
	)
	return patient, nil
}

func (uc *patientUsecase) Update(ctx context.Context, patientID string, request *requests.UpdatePatient) (*models.Patient, error) {
	utils.SanitizeCreatePatientRequest(&request.CreatePatient)
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	exclude := &records.Exclusion{Collection: constvars.CollectionPatients, ID: patientID}
	patient, err := uc.buildPatient(ctx, &request.CreatePatient, exclude)
	if err != nil {
		return nil, err
	}

	if err := uc.Store.UpdatePatient(ctx, patientID, *patient); err != nil {
		return nil, err
	}
	updated, err := uc.Store.GetPatient(patientID)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (uc *patientUsecase) Delete(ctx context.Context, patientID string) error {
	return uc.Store.DeletePatient(ctx, patientID)
}

func (uc *patientUsecase) FindAll(ctx context.Context, query string) ([]models.Patient, error) {
	return uc.Store.SearchPatients(query), nil
}

func (uc *patientUsecase) FindByID(ctx context.Context, patientID string) (*models.Patient, error) {
	patient, err := uc.Store.GetPatient(patientID)
	if err != nil {
		return nil, err
	}
	return &patient, nil
}
