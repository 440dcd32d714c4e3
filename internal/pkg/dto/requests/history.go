package requests

type CreateClinicalHistory struct {
	PatientID          string `json:"pacienteId" validate:"required"`
	LastVisit          string `json:"ultimaFechaConsulta" validate:"omitempty"`
	Doctor             string `json:"medico" validate:"omitempty,max=100"`
	Specialty          string `json:"especialidad" validate:"omitempty,max=100"`
	Reason             string `json:"motivoConsulta" validate:"required,min=2,max=500"`
	MedicalHistory     string `json:"antecedentesMedicos" validate:"omitempty,max=1000"`
	PersonalHistory    string `json:"antecedentesPersonales" validate:"omitempty,max=1000"`
	FamilyHistory      string `json:"antecedentesFamiliares" validate:"omitempty,max=1000"`
	Habits             string `json:"habitos" validate:"omitempty,max=1000"`
	Weight             string `json:"peso" validate:"omitempty"`
	Height             string `json:"estatura" validate:"omitempty"`
	BloodPressure      string `json:"presionArterial" validate:"omitempty,max=20"`
	HeartRate          string `json:"frecuenciaCardiaca" validate:"omitempty"`
	RespiratoryRate    string `json:"frecuenciaRespiratoria" validate:"omitempty"`
	Temperature        string `json:"temperatura" validate:"omitempty"`
	OxygenSaturation   string `json:"saturacionOxigeno" validate:"omitempty"`
	PhysicalExam       string `json:"observacionesFisicas" validate:"omitempty,max=1000"`
	PrimaryDiagnosis   string `json:"diagnosticoPrincipal" validate:"omitempty,max=500"`
	SecondaryDiagnosis string `json:"diagnosticoSecundario" validate:"omitempty,max=500"`
	Treatment          string `json:"tratamiento" validate:"omitempty,max=1000"`
	Recommendations    string `json:"recomendaciones" validate:"omitempty,max=1000"`
	RequestedTests     string `json:"examenesSolicitados" validate:"omitempty,max=1000"`
	NextAppointment    string `json:"proximaCita" validate:"omitempty"`
	AdditionalNotes    string `json:"observacionesAdicionales" validate:"omitempty,max=1000"`
}
