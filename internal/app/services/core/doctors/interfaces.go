package doctors

import (
	"context"

	"policlinico-service/internal/app/models"
	"policlinico-service/internal/pkg/dto/requests"
)

type DoctorUsecase interface {
	Create(ctx context.Context, request *requests.CreateDoctor) (*models.Doctor, error)
	Update(ctx context.Context, doctorID string, request *requests.UpdateDoctor) (*models.Doctor, error)
	Delete(ctx context.Context, doctorID string) error
	FindAll(ctx context.Context) ([]models.Doctor, error)
	FindByID(ctx context.Context, doctorID string) (*models.Doctor, error)
}
