package specialties

import (
	"context"

	"policlinico-service/internal/app/models"
	"policlinico-service/internal/pkg/dto/requests"
)

type SpecialtyUsecase interface {
	Create(ctx context.Context, request *requests.CreateSpecialty) (*models.Specialty, error)
	Update(ctx context.Context, specialtyID string, request *requests.UpdateSpecialty) (*models.Specialty, error)
	Delete(ctx context.Context, specialtyID string) error
	FindAll(ctx context.Context) ([]models.Specialty, error)
	FindByID(ctx context.Context, specialtyID string) (*models.Specialty, error)
}
