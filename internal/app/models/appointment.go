package models

type AppointmentStatus string

const (
	AppointmentPending   AppointmentStatus = "Pendiente"
	AppointmentConfirmed AppointmentStatus = "Confirmada"
	AppointmentAttended  AppointmentStatus = "Atendida"
	AppointmentCancelled AppointmentStatus = "Cancelada"
)

// appointmentTransitions is the only place that knows the legal status
// graph. Atendida and Cancelada are terminal.
var appointmentTransitions = map[AppointmentStatus][]AppointmentStatus{
	AppointmentPending:   {AppointmentConfirmed, AppointmentCancelled},
	AppointmentConfirmed: {AppointmentAttended, AppointmentCancelled},
	AppointmentAttended:  {},
	AppointmentCancelled: {},
}

func (s AppointmentStatus) IsValid() bool {
	_, ok := appointmentTransitions[s]
	return ok
}

func (s AppointmentStatus) CanTransitionTo(next AppointmentStatus) bool {
	for _, allowed := range appointmentTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Appointment denormalizes the patient's display fields at creation time, so
// deleting the patient later leaves the snapshot readable.
type Appointment struct {
	ID           string            `json:"id" bson:"id"`
	PatientID    string            `json:"pacienteId" bson:"pacienteId"`
	PatientName  string            `json:"paciente" bson:"paciente"`
	Cedula       string            `json:"cedula" bson:"cedula"`
	Specialty    string            `json:"especialidad" bson:"especialidad"`
	Doctor       string            `json:"medico" bson:"medico"`
	DateTime     string            `json:"fecha" bson:"fecha"`
	Office       string            `json:"consultorio" bson:"consultorio"`
	Status       AppointmentStatus `json:"estado" bson:"estado"`
	Notes        string            `json:"observaciones" bson:"observaciones"`
	RegisteredAt string            `json:"fechaRegistro" bson:"fechaRegistro"`
}
