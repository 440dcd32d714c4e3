package models

// Patient keeps the persisted field names of the original snapshot layout;
// the snapshot is an external interface and must stay readable by it.
type Patient struct {
	ID            string  `json:"id" bson:"id"`
	FullName      string  `json:"nombres" bson:"nombres"`
	Cedula        string  `json:"cedula" bson:"cedula"`
	BirthDate     string  `json:"fechaNacimiento" bson:"fechaNacimiento"`
	Age           int     `json:"edad" bson:"edad"`
	Sex           string  `json:"sexo" bson:"sexo"`
	MaritalStatus string  `json:"estadoCivil" bson:"estadoCivil"`
	BloodType     string  `json:"tipoSangre" bson:"tipoSangre"`
	Nationality   string  `json:"nacionalidad" bson:"nacionalidad"`
	Occupation    string  `json:"ocupacion" bson:"ocupacion"`
	Address       string  `json:"direccion" bson:"direccion"`
	City          string  `json:"ciudad" bson:"ciudad"`
	Province      string  `json:"provincia" bson:"provincia"`
	Phone         string  `json:"telefono" bson:"telefono"`
	Email         string  `json:"email" bson:"email"`
	Weight        float64 `json:"peso" bson:"peso"`
	Height        float64 `json:"estatura" bson:"estatura"`
	BMI           float64 `json:"imc" bson:"imc"`
	BMIClass      string  `json:"imcCategoria" bson:"imcCategoria"`
	Allergies     string  `json:"alergias" bson:"alergias"`
	Conditions    string  `json:"enfermedades" bson:"enfermedades"`
	Treatments    string  `json:"tratamientos" bson:"tratamientos"`
	Notes         string  `json:"observaciones" bson:"observaciones"`
	RegisteredAt  string  `json:"fechaRegistro" bson:"fechaRegistro"`
}
