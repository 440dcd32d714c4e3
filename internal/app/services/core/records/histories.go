package records

import (
	"context"

	"policlinico-service/internal/app/models"
	"policlinico-service/internal/pkg/constvars"
	"policlinico-service/internal/pkg/exceptions"
)

func (s *RecordStore) ListHistories() []models.ClinicalHistory {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.ClinicalHistory, len(s.db.Histories))
	copy(out, s.db.Histories)
	return out
}

func (s *RecordStore) ListHistoriesByPatient(patientID string) []models.ClinicalHistory {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []models.ClinicalHistory{}
	for _, h := range s.db.Histories {
		if h.PatientID == patientID {
			out = append(out, h)
		}
	}
	return out
}

func (s *RecordStore) GetHistory(id string) (models.ClinicalHistory, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, h := range s.db.Histories {
		if h.ID == id {
			return h, nil
		}
	}
	return models.ClinicalHistory{}, exceptions.ErrRecordNotFound(constvars.CollectionHistories)
}

func (s *RecordStore) CreateHistory(ctx context.Context, history models.ClinicalHistory) error {
	return s.mutate(ctx, func(db *models.Database) error {
		db.Histories = append(db.Histories, history)
		return nil
	})
}

func (s *RecordStore) DeleteHistory(ctx context.Context, id string) error {
	return s.mutate(ctx, func(db *models.Database) error {
		for i := range db.Histories {
			if db.Histories[i].ID == id {
				db.Histories = append(db.Histories[:i], db.Histories[i+1:]...)
				return nil
			}
		}
		return exceptions.ErrRecordNotFound(constvars.CollectionHistories)
	})
}
