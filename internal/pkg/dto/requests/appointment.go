package requests

type CreateAppointment struct {
	Cedula    string `json:"cedula" validate:"required,cedula"`
	Specialty string `json:"especialidad" validate:"required,min=2,max=100"`
	Doctor    string `json:"medico" validate:"required,min=2,max=100"`
	DateTime  string `json:"fecha" validate:"required,not_past_datetime"`
	Office    string `json:"consultorio" validate:"omitempty,max=50"`
	Notes     string `json:"notas" validate:"omitempty,max=500"`
}

type UpdateAppointment struct {
	CreateAppointment
}

type ChangeAppointmentStatus struct {
	Status string `json:"estado" validate:"required,oneof=Pendiente Confirmada Atendida Cancelada"`
}
