package records

import (
	"context"
	"strings"

	"policlinico-service/internal/app/models"
	"policlinico-service/internal/pkg/constvars"
	"policlinico-service/internal/pkg/exceptions"
)

func (s *RecordStore) ListPatients() []models.Patient {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Patient, len(s.db.Patients))
	copy(out, s.db.Patients)
	return out
}

func (s *RecordStore) GetPatient(id string) (models.Patient, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.db.Patients {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Patient{}, exceptions.ErrRecordNotFound(constvars.CollectionPatients)
}

func (s *RecordStore) FindPatientByCedula(cedula string) (models.Patient, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.db.Patients {
		if p.Cedula == cedula {
			return p, true
		}
	}
	return models.Patient{}, false
}

func cedulaTaken(patients []models.Patient, cedula, excludeID string) bool {
	for _, p := range patients {
		if p.Cedula == cedula && p.ID != excludeID {
			return true
		}
	}
	return false
}

// emailTaken rechecks email uniqueness across patients and doctors under
// the mutation lock; the usecase pre-check alone leaves a window between
// its read lock and the write lock.
func emailTaken(db *models.Database, email, excludeCollection, excludeID string) bool {
	normalized := strings.ToLower(strings.TrimSpace(email))
	if normalized == "" {
		return false
	}
	for _, p := range db.Patients {
		if excludeCollection == constvars.CollectionPatients && p.ID == excludeID {
			continue
		}
		if strings.ToLower(strings.TrimSpace(p.Email)) == normalized {
			return true
		}
	}
	for _, m := range db.Doctors {
		if excludeCollection == constvars.CollectionDoctors && m.ID == excludeID {
			continue
		}
		if strings.ToLower(strings.TrimSpace(m.Email)) == normalized {
			return true
		}
	}
	return false
}

func (s *RecordStore) CreatePatient(ctx context.Context, patient models.Patient) error {
	return s.mutate(ctx, func(db *models.Database) error {
		if cedulaTaken(db.Patients, patient.Cedula, "") {
			return exceptions.ErrCedulaAlreadyExists()
		}
		if emailTaken(db, patient.Email, constvars.CollectionPatients, "") {
			return exceptions.ErrEmailAlreadyExists()
		}
		db.Patients = append(db.Patients, patient)
		return nil
	})
}

func (s *RecordStore) UpdatePatient(ctx context.Context, id string, patient models.Patient) error {
	return s.mutate(ctx, func(db *models.Database) error {
		if cedulaTaken(db.Patients, patient.Cedula, id) {
			return exceptions.ErrCedulaAlreadyExists()
		}
		if emailTaken(db, patient.Email, constvars.CollectionPatients, id) {
			return exceptions.ErrEmailAlreadyExists()
		}
		for i := range db.Patients {
			if db.Patients[i].ID == id {
				patient.ID = id
				patient.RegisteredAt = db.Patients[i].RegisteredAt
				db.Patients[i] = patient
				return nil
			}
		}
		return exceptions.ErrRecordNotFound(constvars.CollectionPatients)
	})
}

func (s *RecordStore) DeletePatient(ctx context.Context, id string) error {
	return s.mutate(ctx, func(db *models.Database) error {
		for i := range db.Patients {
			if db.Patients[i].ID == id {
				db.Patients = append(db.Patients[:i], db.Patients[i+1:]...)
				return nil
			}
		}
		return exceptions.ErrRecordNotFound(constvars.CollectionPatients)
	})
}

// SearchPatients filters by name or cedula substring, case-insensitively.
func (s *RecordStore) SearchPatients(query string) []models.Patient {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return s.ListPatients()
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []models.Patient{}
	for _, p := range s.db.Patients {
		if strings.Contains(strings.ToLower(p.FullName), q) || strings.Contains(p.Cedula, q) {
			out = append(out, p)
		}
	}
	return out
}
