package records

import (
	"context"
	"strings"

	"policlinico-service/internal/app/models"
	"policlinico-service/internal/pkg/constvars"
	"policlinico-service/internal/pkg/exceptions"
)

func (s *RecordStore) ListSpecialties() []models.Specialty {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Specialty, len(s.db.Specialties))
	copy(out, s.db.Specialties)
	return out
}

func (s *RecordStore) GetSpecialty(id string) (models.Specialty, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, e := range s.db.Specialties {
		if e.ID == id {
			return e, nil
		}
	}
	return models.Specialty{}, exceptions.ErrRecordNotFound(constvars.CollectionSpecialties)
}

func specialtyNameTaken(specialties []models.Specialty, name, excludeID string) bool {
	normalized := strings.ToLower(strings.TrimSpace(name))
	for _, e := range specialties {
		if strings.ToLower(strings.TrimSpace(e.Name)) == normalized && e.ID != excludeID {
			return true
		}
	}
	return false
}

func (s *RecordStore) CreateSpecialty(ctx context.Context, specialty models.Specialty) error {
	return s.mutate(ctx, func(db *models.Database) error {
		if specialtyNameTaken(db.Specialties, specialty.Name, "") {
			return exceptions.ErrSpecialtyAlreadyExists()
		}
		db.Specialties = append(db.Specialties, specialty)
		return nil
	})
}

func (s *RecordStore) UpdateSpecialty(ctx context.Context, id string, specialty models.Specialty) error {
	return s.mutate(ctx, func(db *models.Database) error {
		if specialtyNameTaken(db.Specialties, specialty.Name, id) {
			return exceptions.ErrSpecialtyAlreadyExists()
		}
		for i := range db.Specialties {
			if db.Specialties[i].ID == id {
				specialty.ID = id
				specialty.RegisteredAt = db.Specialties[i].RegisteredAt
				db.Specialties[i] = specialty
				return nil
			}
		}
		return exceptions.ErrRecordNotFound(constvars.CollectionSpecialties)
	})
}

func (s *RecordStore) DeleteSpecialty(ctx context.Context, id string) error {
	return s.mutate(ctx, func(db *models.Database) error {
		for i := range db.Specialties {
			if db.Specialties[i].ID == id {
				db.Specialties = append(db.Specialties[:i], db.Specialties[i+1:]...)
				return nil
			}
		}
		return exceptions.ErrRecordNotFound(constvars.CollectionSpecialties)
	})
}
