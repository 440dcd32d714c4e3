package records

import (
	"context"

	"policlinico-service/internal/app/models"
	"policlinico-service/internal/pkg/constvars"
	"policlinico-service/internal/pkg/exceptions"
)

func (s *RecordStore) ListAppointments() []models.Appointment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Appointment, len(s.db.Appointments))
	copy(out, s.db.Appointments)
	return out
}

func (s *RecordStore) GetAppointment(id string) (models.Appointment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.db.Appointments {
		if c.ID == id {
			return c, nil
		}
	}
	return models.Appointment{}, exceptions.ErrRecordNotFound(constvars.CollectionAppointments)
}

// doctorBusy reports an exact doctor + date/time collision. The match is on
// the raw datetime string; two slots one minute apart never collide.
func doctorBusy(appointments []models.Appointment, doctor, dateTime, excludeID string) bool {
	for _, c := range appointments {
		if c.ID == excludeID || c.Status == models.AppointmentCancelled {
			continue
		}
		if c.Doctor == doctor && c.DateTime == dateTime {
			return true
		}
	}
	return false
}

func (s *RecordStore) CreateAppointment(ctx context.Context, appointment models.Appointment) error {
	return s.mutate(ctx, func(db *models.Database) error {
		if doctorBusy(db.Appointments, appointment.Doctor, appointment.DateTime, "") {
			return exceptions.ErrAppointmentConflict()
		}
		db.Appointments = append(db.Appointments, appointment)
		return nil
	})
}

func (s *RecordStore) UpdateAppointment(ctx context.Context, id string, appointment models.Appointment) error {
	return s.mutate(ctx, func(db *models.Database) error {
		if doctorBusy(db.Appointments, appointment.Doctor, appointment.DateTime, id) {
			return exceptions.ErrAppointmentConflict()
		}
		for i := range db.Appointments {
			if db.Appointments[i].ID == id {
				appointment.ID = id
				appointment.Status = db.Appointments[i].Status
				appointment.RegisteredAt = db.Appointments[i].RegisteredAt
				db.Appointments[i] = appointment
				return nil
			}
		}
		return exceptions.ErrRecordNotFound(constvars.CollectionAppointments)
	})
}

// UpdateAppointmentStatus enforces the transition graph; the status never
// changes through plain updates.
func (s *RecordStore) UpdateAppointmentStatus(ctx context.Context, id string, next models.AppointmentStatus) error {
	return s.mutate(ctx, func(db *models.Database) error {
		for i := range db.Appointments {
			if db.Appointments[i].ID != id {
				continue
			}
			current := db.Appointments[i].Status
			if !current.CanTransitionTo(next) {
				return exceptions.ErrInvalidStatusTransition(string(current), string(next))
			}
			db.Appointments[i].Status = next
			return nil
		}
		return exceptions.ErrRecordNotFound(constvars.CollectionAppointments)
	})
}

func (s *RecordStore) DeleteAppointment(ctx context.Context, id string) error {
	return s.mutate(ctx, func(db *models.Database) error {
		for i := range db.Appointments {
			if db.Appointments[i].ID == id {
				db.Appointments = append(db.Appointments[:i], db.Appointments[i+1:]...)
				return nil
			}
		}
		return exceptions.ErrRecordNotFound(constvars.CollectionAppointments)
	})
}
