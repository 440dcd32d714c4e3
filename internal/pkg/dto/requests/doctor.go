package requests

type ScheduleRange struct {
	From string `json:"desde" validate:"required"`
	To   string `json:"hasta" validate:"required"`
}

type ScheduleDay struct {
	Days   []string        `json:"dias" validate:"required,min=1,dive,oneof=lun mar mie jue vie sab dom"`
	Ranges []ScheduleRange `json:"franjas" validate:"required,min=1,dive"`
}

type Schedule struct {
	Recurring  []ScheduleDay `json:"recurrente" validate:"omitempty,dive"`
	Exceptions []string      `json:"excepciones" validate:"omitempty,dive,datetime=2006-01-02"`
}

type CreateDoctor struct {
	Name      string    `json:"nombre" validate:"required,doctor_name,min=2,max=100"`
	Specialty string    `json:"especialidad" validate:"required,min=2,max=100"`
	Phone     string    `json:"telefono" validate:"required,phone_ec"`
	Email     string    `json:"correo" validate:"required,email"`
	Schedule  *Schedule `json:"horario" validate:"omitempty"`
}

type UpdateDoctor struct {
	CreateDoctor
}
