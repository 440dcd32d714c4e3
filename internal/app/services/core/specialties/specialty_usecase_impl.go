package specialties

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

type specialtyUsecase struct {
	Store *records.RecordStore
	Log   *zap.Logger
}

func NewSpecialtyUsecase(store *records.RecordStore, logger *zap.Logger) SpecialtyUsecase {
	return &specialtyUsecase{
		Store: store,
		Log:   logger,
	}
}

func buildSpecialty(request *requests.CreateSpecialty) (*models.Specialty, error) {
	if request.Lead != "" && !utils.ValidateName(request.Lead) {
		return nil, exceptions.WrapWithoutError(constvars.StatusBadRequest, "lead doctor name is invalid", constvars.ErrDevInvalidInput)
	}
	return &models.Specialty{
		Name:        request.Name,
		Description: request.Description,
		Area:        request.Area,
		Schedule:    request.Schedule,
		Lead:        request.Lead,
	}, nil
}

func (uc *specialtyUsecase) Create(ctx context.Context, request *requests.CreateSpecialty) (*models.Specialty, error) {
	utils.SanitizeCreateSpecialtyRequest(request)
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	specialty, err := buildSpecialty(request)
	if err != nil {
		return nil, err
	}
	specialty.ID = utils.GenerateRecordID()
	specialty.RegisteredAt = time.Now().Format(constvars.TimeLayoutRegistered)

	if err := uc.Store.CreateSpecialty(ctx, *specialty); err != nil {
		return nil, err
	}

	uc.Log.Info("specialty registered", zap.String("specialty_id", specialty.ID))
	return specialty, nil
}

func (uc *specialtyUsecase) Update(ctx context.Context, specialtyID string, request *requests.UpdateSpecialty) (*models.Specialty, error) {
	utils.SanitizeCreateSpecialtyRequest(&request.CreateSpecialty)
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	specialty, err := buildSpecialty(&request.CreateSpecialty)
	if err != nil {
		return nil, err
	}

	if err := uc.Store.UpdateSpecialty(ctx, specialtyID, *specialty); err != nil {
		return nil, err
	}
	updated, err := uc.Store.GetSpecialty(specialtyID)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (uc *specialtyUsecase) Delete(ctx context.Context, specialtyID string) error {
	return uc.Store.DeleteSpecialty(ctx, specialtyID)
}

func (uc *specialtyUsecase) FindAll(ctx context.Context) ([]models.Specialty, error) {
	return uc.Store.ListSpecialties(), nil
}

func (uc *specialtyUsecase) FindByID(ctx context.Context, specialtyID string) (*models.Specialty, error) {
	specialty, err := uc.Store.GetSpecialty(specialtyID)
	if err != nil {
		return nil, err
	}
	return &specialty, nil
}
