package requests

type CreatePatient struct {
	Name          string `json:"nombres" validate:"required,person_name,min=2,max=100"`
	Cedula        string `json:"cedula" validate:"required,cedula"`
	BirthDate     string `json:"fechaNacimiento" validate:"required,past_date"`
	Sex           string `json:"sexo" validate:"required,oneof=Masculino Femenino"`
	MaritalStatus string `json:"estadoCivil" validate:"omitempty,oneof=Soltero(a) Casado(a) Divorciado(a) Viudo(a)"`
	BloodType     string `json:"tipoSangre" validate:"omitempty,oneof=O+ O- A+ A- B+ B- AB+ AB-"`
	Nationality   string `json:"nacionalidad" validate:"omitempty,max=50"`
	Occupation    string `json:"ocupacion" validate:"omitempty,max=50"`
	Address       string `json:"direccion" validate:"omitempty,max=200"`
	City          string `json:"ciudad" validate:"omitempty,max=50"`
	Province      string `json:"provincia" validate:"omitempty,max=50"`
	Phone         string `json:"telefono" validate:"required,phone_ec"`
	Email         string `json:"email" validate:"omitempty,email"`
	Weight        string `json:"peso" validate:"required"`
	Height        string `json:"estatura" validate:"required"`
	Allergies     string `json:"alergias" validate:"omitempty,max=500"`
	Diseases      string `json:"enfermedades" validate:"omitempty,max=500"`
	Treatments    string `json:"tratamientos" validate:"omitempty,max=500"`
	Observations  string `json:"observaciones" validate:"omitempty,max=500"`
}

type UpdatePatient struct {
	CreatePatient
}
