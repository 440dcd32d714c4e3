package requests

type CreateSpecialty struct {
	Name        string `json:"especialidad" validate:"required,min=2,max=100"`
	Description string `json:"descripcion" validate:"omitempty,max=500"`
	Area        string `json:"area" validate:"omitempty,max=100"`
	Schedule    string `json:"horario" validate:"omitempty,max=100"`
	Lead        string `json:"responsable" validate:"omitempty,max=100"`
}

type UpdateSpecialty struct {
	CreateSpecialty
}
