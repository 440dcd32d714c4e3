package appointments

import (
	"context"

	"policlinico-service/internal/app/models"
	"policlinico-service/internal/pkg/dto/requests"
)

type AppointmentUsecase interface {
	Create(ctx context.Context, request *requests.CreateAppointment) (*models.Appointment, error)
	Update(ctx context.Context, appointmentID string, request *requests.UpdateAppointment) (*models.Appointment, error)
	ChangeStatus(ctx context.Context, appointmentID string, request *requests.ChangeAppointmentStatus) (*models.Appointment, error)
	Delete(ctx context.Context, appointmentID string) error
	FindAll(ctx context.Context) ([]models.Appointment, error)
	FindByID(ctx context.Context, appointmentID string) (*models.Appointment, error)
}
