package records

import (
	"context"

	"policlinico-service/internal/app/models"
	"policlinico-service/internal/pkg/constvars"
	"policlinico-service/internal/pkg/exceptions"
)

func (s *RecordStore) ListDoctors() []models.Doctor {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Doctor, len(s.db.Doctors))
	copy(out, s.db.Doctors)
	for i := range out {
		out[i] = cloneDoctor(out[i])
	}
	return out
}

func cloneDoctor(d models.Doctor) models.Doctor {
	clone := d
	clone.Schedule = models.WeeklySchedule{
		Recurring:  make([]models.DaySchedule, len(d.Schedule.Recurring)),
		Exceptions: append([]string{}, d.Schedule.Exceptions...),
	}
	for i, day := range d.Schedule.Recurring {
		clone.Schedule.Recurring[i] = models.DaySchedule{
			Days:   append([]string{}, day.Days...),
			Ranges: append([]models.TimeRange{}, day.Ranges...),
		}
	}
	return clone
}

func (s *RecordStore) GetDoctor(id string) (models.Doctor, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, m := range s.db.Doctors {
		if m.ID == id {
			return cloneDoctor(m), nil
		}
	}
	return models.Doctor{}, exceptions.ErrRecordNotFound(constvars.CollectionDoctors)
}

func (s *RecordStore) CreateDoctor(ctx context.Context, doctor models.Doctor) error {
	return s.mutate(ctx, func(db *models.Database) error {
		if emailTaken(db, doctor.Email, constvars.CollectionDoctors, "") {
			return exceptions.ErrEmailAlreadyExists()
		}
		db.Doctors = append(db.Doctors, doctor)
		return nil
	})
}

func (s *RecordStore) UpdateDoctor(ctx context.Context, id string, doctor models.Doctor) error {
	return s.mutate(ctx, func(db *models.Database) error {
		if emailTaken(db, doctor.Email, constvars.CollectionDoctors, id) {
			return exceptions.ErrEmailAlreadyExists()
		}
		for i := range db.Doctors {
			if db.Doctors[i].ID == id {
				doctor.ID = id
				doctor.RegisteredAt = db.Doctors[i].RegisteredAt
				db.Doctors[i] = doctor
				return nil
			}
		}
		return exceptions.ErrRecordNotFound(constvars.CollectionDoctors)
	})
}

func (s *RecordStore) DeleteDoctor(ctx context.Context, id string) error {
	return s.mutate(ctx, func(db *models.Database) error {
		for i := range db.Doctors {
			if db.Doctors[i].ID == id {
				db.Doctors = append(db.Doctors[:i], db.Doctors[i+1:]...)
				return nil
			}
		}
		return exceptions.ErrRecordNotFound(constvars.CollectionDoctors)
	})
}
