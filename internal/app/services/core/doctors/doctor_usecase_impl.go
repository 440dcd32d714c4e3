package doctors

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

type doctorUsecase struct {
	Store *records.RecordStore
	Log   *zap.Logger
}

func NewDoctorUsecase(store *records.RecordStore, logger *zap.Logger) DoctorUsecase {
	return &doctorUsecase{
		Store: store,
		Log:   logger,
	}
}

func mapSchedule(schedule *requests.Schedule) models.WeeklySchedule {
	if schedule == nil {
		return models.WeeklySchedule{}
	}
	out := models.WeeklySchedule{
		Recurring:  make([]models.DaySchedule, 0, len(schedule.Recurring)),
		Exceptions: append([]string{}, schedule.Exceptions...),
	}
	for _, day := range schedule.Recurring {
		ranges := make([]models.TimeRange, 0, len(day.Ranges))
		for _, r := range day.Ranges {
			ranges = append(ranges, models.TimeRange{From: r.From, To: r.To})
		}
		out.Recurring = append(out.Recurring, models.DaySchedule{
			Days:   append([]string{}, day.Days...),
			Ranges: ranges,
		})
	}
	return out
}

// validateSchedule requires at least one day with an attention range; each
// day's ranges must be well formed and non overlapping.
func validateSchedule(schedule *requests.Schedule) error {
	if schedule == nil || len(schedule.Recurring) == 0 {
		return exceptions.ErrInvalidSchedule()
	}
	for _, day := range schedule.Recurring {
		pairs := make([][2]string, 0, len(day.Ranges))
		for _, r := range day.Ranges {
			pairs = append(pairs, [2]string{r.From, r.To})
		}
		if !utils.ValidateWeeklyRanges(pairs) {
			return exceptions.ErrInvalidSchedule()
		}
	}
	return nil
}

func (uc *doctorUsecase) buildDoctor(ctx context.Context, request *requests.CreateDoctor, exclude *records.Exclusion) (*models.Doctor, error) {
	if err := validateSchedule(request.Schedule); err != nil {
		return nil, err
	}

	inUse, err := uc.Store.IsEmailInUse(ctx, request.Email, exclude)
	if err != nil {
		return nil, err
	}
	if inUse {
		return nil, exceptions.ErrEmailAlreadyExists()
	}

	return &models.Doctor{
		Name:      request.Name,
		Specialty: request.Specialty,
		Phone:     request.Phone,
		Email:     request.Email,
		Schedule:  mapSchedule(request.Schedule),
	}, nil
}

func (uc *doctorUsecase) Create(ctx context.Context, request *requests.CreateDoctor) (*models.Doctor, error) {
	utils.SanitizeCreateDoctorRequest(request)
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	doctor, err := uc.buildDoctor(ctx, request, nil)
	if err != nil {
		return nil, err
	}
	doctor.ID = utils.GenerateRecordID()
	doctor.RegisteredAt = time.Now().Format(constvars.TimeLayoutRegistered)

	if err := uc.Store.CreateDoctor(ctx, *doctor); err != nil {
		return nil, err
	}

	uc.Log.Info("doctor registered",
		zap.String("doctor_id", doctor.ID),
		zap.String("especialidad", doctor.Specialty),
	)
	return doctor, nil
}

func (uc *doctorUsecase) Update(ctx context.Context, doctorID string, request *requests.UpdateDoctor) (*models.Doctor, error) {
	utils.SanitizeCreateDoctorRequest(&request.CreateDoctor)
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	exclude := &records.Exclusion{Collection: constvars.CollectionDoctors, ID: doctorID}
	doctor, err := uc.buildDoctor(ctx, &request.CreateDoctor, exclude)
	if err != nil {
		return nil, err
	}

	if err := uc.Store.UpdateDoctor(ctx, doctorID, *doctor); err != nil {
		return nil, err
	}
	updated, err := uc.Store.GetDoctor(doctorID)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (uc *doctorUsecase) Delete(ctx context.Context, doctorID string) error {
	return uc.Store.DeleteDoctor(ctx, doctorID)
}

func (uc *doctorUsecase) FindAll(ctx context.Context) ([]models.Doctor, error) {
	return uc.Store.ListDoctors(), nil
}

func (uc *doctorUsecase) FindByID(ctx context.Context, doctorID string) (*models.Doctor, error) {
	doctor, err := uc.Store.GetDoctor(doctorID)
	if err != nil {
		return nil, err
	}
	return &doctor, nil
}
