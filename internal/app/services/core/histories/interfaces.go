package histories

import (
	"context"

	"policlinico-service/internal/app/models"
	"policlinico-service/internal/pkg/dto/requests"
)

// Clinical histories are append-only: they can be created, listed and
// removed, never edited after the fact.
type HistoryUsecase interface {
	Create(ctx context.Context, request *requests.CreateClinicalHistory) (*models.ClinicalHistory, error)
	Delete(ctx context.Context, historyID string) error
	FindAll(ctx context.Context) ([]models.ClinicalHistory, error)
	FindByID(ctx context.Context, historyID string) (*models.ClinicalHistory, error)
	FindByPatient(ctx context.Context, patientID string) ([]models.ClinicalHistory, error)
}
