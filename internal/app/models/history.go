package models

// ClinicalHistory keeps the vital signs as the free-form strings the forms
// submit; range checks happen at validation time, before the record exists.
type ClinicalHistory struct {
	ID                 string `json:"id" bson:"id"`
	PatientID          string `json:"pacienteId" bson:"pacienteId"`
	PatientName        string `json:"pacienteNombres" bson:"pacienteNombres"`
	LastVisit          string `json:"ultimaFechaConsulta" bson:"ultimaFechaConsulta"`
	Doctor             string `json:"medico" bson:"medico"`
	Specialty          string `json:"especialidad" bson:"especialidad"`
	Reason             string `json:"motivoConsulta" bson:"motivoConsulta"`
	MedicalHistory     string `json:"antecedentesMedicos" bson:"antecedentesMedicos"`
	PersonalHistory    string `json:"antecedentesPersonales" bson:"antecedentesPersonales"`
	FamilyHistory      string `json:"antecedentesFamiliares" bson:"antecedentesFamiliares"`
	Habits             string `json:"habitos" bson:"habitos"`
	Weight             string `json:"peso" bson:"peso"`
	Height             string `json:"estatura" bson:"estatura"`
	BloodPressure      string `json:"presionArterial" bson:"presionArterial"`
	HeartRate          string `json:"frecuenciaCardiaca" bson:"frecuenciaCardiaca"`
	RespiratoryRate    string `json:"frecuenciaRespiratoria" bson:"frecuenciaRespiratoria"`
	Temperature        string `json:"temperatura" bson:"temperatura"`
	OxygenSaturation   string `json:"saturacionOxigeno" bson:"saturacionOxigeno"`
	BMI                string `json:"imc" bson:"imc"`
	PhysicalExam       string `json:"observacionesFisicas" bson:"observacionesFisicas"`
	PrimaryDiagnosis   string `json:"diagnosticoPrincipal" bson:"diagnosticoPrincipal"`
	SecondaryDiagnosis string `json:"diagnosticoSecundario" bson:"diagnosticoSecundario"`
	Treatment          string `json:"tratamiento" bson:"tratamiento"`
	Recommendations    string `json:"recomendaciones" bson:"recomendaciones"`
	RequestedTests     string `json:"examenesSolicitados" bson:"examenesSolicitados"`
	NextAppointment    string `json:"proximaCita" bson:"proximaCita"`
	AdditionalNotes    string `json:"observacionesAdicionales" bson:"observacionesAdicionales"`
	RegisteredAt       string `json:"fechaRegistro" bson:"fechaRegistro"`
}
