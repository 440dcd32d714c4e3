package patients

import (
	"context"

	"policlinico-service/internal/app/models"
	"policlinico-service/internal/pkg/dto/requests"
)

type PatientUsecase interface {
	Create(ctx context.Context, request *requests.CreatePatient) (*models.Patient, error)
	Update(ctx context.Context, patientID string, request *requests.UpdatePatient) (*models.Patient, error)
	Delete(ctx context.Context, patientID string) error
	FindAll(ctx context.Context, query string) ([]models.Patient, error)
	FindByID(ctx context.Context, patientID string) (*models.Patient, error)
}
