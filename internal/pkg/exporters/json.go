package exporters

import (
	"policlinico-service/internal/app/models"
	"policlinico-service/internal/pkg/constvars"
	"policlinico-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
)

// The export document regroups and renames fields; these shapes are the
// external contract, distinct from the snapshot layout in models.

type measurement struct {
	Value float64 `json:"valor"`
	Unit  string  `json:"unidad"`
}

type money struct {
	Value    float64 `json:"valor"`
	Currency string  `json:"moneda"`
}

type patientPersonalData struct {
	Name          string `json:"nombres"`
	Cedula        string `json:"cedula"`
	BirthDate     string `json:"fecha_nacimiento"`
	Age           int    `json:"edad"`
	Sex           string `json:"sexo"`
	MaritalStatus string `json:"estado_civil"`
	BloodType     string `json:"tipo_sangre"`
	Nationality   string `json:"nacionalidad"`
}

type patientContact struct {
	Address  string `json:"direccion"`
	City     string `json:"ciudad"`
	Province string `json:"provincia"`
	Phone    string `json:"telefono"`
	Email    string `json:"email"`
}

type patientMedicalData struct {
	Weight     measurement `json:"peso"`
	Height     measurement `json:"estatura"`
	BMI        float64     `json:"imc"`
	BMIClass   string      `json:"imc_categoria"`
	Allergies  string      `json:"alergias"`
	Conditions string      `json:"enfermedades_cronicas"`
	Treatments string      `json:"tratamientos_actuales"`
}

type patientExport struct {
	ID           string              `json:"id"`
	Personal     patientPersonalData `json:"datos_personales"`
	Contact      patientContact      `json:"contacto"`
	Medical      patientMedicalData  `json:"datos_medicos"`
	RegisteredAt string              `json:"fecha_registro"`
}

type appointmentPatientRef struct {
	Cedula string `json:"cedula"`
	Name   string `json:"nombre"`
}

type appointmentExport struct {
	ID           string                `json:"id"`
	Patient      appointmentPatientRef `json:"paciente"`
	Specialty    string                `json:"especialidad"`
	Doctor       string                `json:"medico"`
	DateTime     string                `json:"fecha_hora"`
	Office       string                `json:"consultorio"`
	Status       string                `json:"estado"`
	Notes        string                `json:"observaciones"`
	RegisteredAt string                `json:"fecha_registro"`
}

type doctorExport struct {
	ID           string                `json:"id"`
	Name         string                `json:"nombre"`
	Specialty    string                `json:"especialidad"`
	Phone        string                `json:"telefono"`
	Email        string                `json:"correo"`
	Schedule     models.WeeklySchedule `json:"horario"`
	RegisteredAt string                `json:"fecha_registro"`
}

type specialtyExport struct {
	ID          string `json:"id"`
	Name        string `json:"nombre"`
	Description string `json:"descripcion"`
	Area        string `json:"area"`
	Schedule    string `json:"horario_atencion"`
	Lead        string `json:"medico_responsable"`
}

type invoicePatientRef struct {
	Name   string `json:"nombre"`
	Cedula string `json:"cedula"`
}

type invoiceExport struct {
	ID            string            `json:"id"`
	Number        string            `json:"numero_factura"`
	Patient       invoicePatientRef `json:"paciente"`
	Doctor        string            `json:"medico"`
	Service       string            `json:"servicio"`
	Description   string            `json:"descripcion"`
	Cost          money             `json:"costo"`
	PaymentMethod string            `json:"metodo_pago"`
	IssuedAt      string            `json:"fecha_emision"`
	RegisteredAt  string            `json:"fecha_registro"`
}

type historyVitals struct {
	BloodPressure    string `json:"presion_arterial"`
	HeartRate        string `json:"frecuencia_cardiaca"`
	RespiratoryRate  string `json:"frecuencia_respiratoria"`
	Temperature      string `json:"temperatura"`
	OxygenSaturation string `json:"saturacion_oxigeno"`
	Weight           string `json:"peso"`
	Height           string `json:"estatura"`
	BMI              string `json:"imc"`
}

type historyExport struct {
	ID                 string        `json:"id"`
	PatientID          string        `json:"paciente_id"`
	PatientName        string        `json:"paciente_nombre"`
	Doctor             string        `json:"medico"`
	Specialty          string        `json:"especialidad"`
	Reason             string        `json:"motivo_consulta"`
	Vitals             historyVitals `json:"signos_vitales"`
	PrimaryDiagnosis   string        `json:"diagnostico_principal"`
	SecondaryDiagnosis string        `json:"diagnostico_secundario"`
	Treatment          string        `json:"tratamiento"`
	Recommendations    string        `json:"recomendaciones"`
	RequestedTests     string        `json:"examenes_solicitados"`
	NextAppointment    string        `json:"proxima_cita"`
	RegisteredAt       string        `json:"fecha_registro"`
}

type databaseExport struct {
	Patients     []patientExport     `json:"pacientes"`
	Appointments []appointmentExport `json:"citas"`
	Doctors      []doctorExport      `json:"medicos"`
	Specialties  []specialtyExport   `json:"especialidades"`
	Invoices     []invoiceExport     `json:"facturas"`
	Histories    []historyExport     `json:"historias"`
}

func mapPatients(patients []models.Patient) []patientExport {
	out := make([]patientExport, 0, len(patients))
	for _, p := range patients {
		out = append(out, patientExport{
			ID: p.Cedula,
			Personal: patientPersonalData{
				Name:          p.FullName,
				Cedula:        p.Cedula,
				BirthDate:     p.BirthDate,
				Age:           p.Age,
				Sex:           p.Sex,
				MaritalStatus: p.MaritalStatus,
				BloodType:     p.BloodType,
				Nationality:   defaultString(p.Nationality, "No especificado"),
			},
			Contact: patientContact{
				Address:  p.Address,
				City:     p.City,
				Province: p.Province,
				Phone:    p.Phone,
				Email:    p.Email,
			},
			Medical: patientMedicalData{
				Weight:     measurement{Value: p.Weight, Unit: "kg"},
				Height:     measurement{Value: p.Height, Unit: "m"},
				BMI:        p.BMI,
				BMIClass:   p.BMIClass,
				Allergies:  p.Allergies,
				Conditions: p.Conditions,
				Treatments: p.Treatments,
			},
			RegisteredAt: p.RegisteredAt,
		})
	}
	return out
}

func mapAppointments(appointments []models.Appointment) []appointmentExport {
	out := make([]appointmentExport, 0, len(appointments))
	for _, c := range appointments {
		out = append(out, appointmentExport{
			ID:           c.ID,
			Patient:      appointmentPatientRef{Cedula: c.Cedula, Name: c.PatientName},
			Specialty:    c.Specialty,
			Doctor:       c.Doctor,
			DateTime:     c.DateTime,
			Office:       c.Office,
			Status:       string(c.Status),
			Notes:        c.Notes,
			RegisteredAt: c.RegisteredAt,
		})
	}
	return out
}

func mapDoctors(doctors []models.Doctor) []doctorExport {
	out := make([]doctorExport, 0, len(doctors))
	for _, m := range doctors {
		out = append(out, doctorExport{
			ID:           m.ID,
			Name:         m.Name,
			Specialty:    m.Specialty,
			Phone:        m.Phone,
			Email:        m.Email,
			Schedule:     m.Schedule,
			RegisteredAt: m.RegisteredAt,
		})
	}
	return out
}

func mapSpecialties(specialties []models.Specialty) []specialtyExport {
	out := make([]specialtyExport, 0, len(specialties))
	for _, e := range specialties {
		out = append(out, specialtyExport{
			ID:          e.ID,
			Name:        e.Name,
			Description: e.Description,
			Area:        e.Area,
			Schedule:    e.Schedule,
			Lead:        e.Lead,
		})
	}
	return out
}

func mapInvoices(invoices []models.Invoice) []invoiceExport {
	out := make([]invoiceExport, 0, len(invoices))
	for _, f := range invoices {
		out = append(out, invoiceExport{
			ID:            defaultString(f.Number, f.ID),
			Number:        f.Number,
			Patient:       invoicePatientRef{Name: f.PatientName, Cedula: f.Cedula},
			Doctor:        f.Doctor,
			Service:       f.Service,
			Description:   f.Description,
			Cost:          money{Value: f.Cost, Currency: "USD"},
			PaymentMethod: f.PaymentMethod,
			IssuedAt:      f.IssuedAt,
			RegisteredAt:  f.RegisteredAt,
		})
	}
	return out
}

func mapHistories(histories []models.ClinicalHistory) []historyExport {
	out := make([]historyExport, 0, len(histories))
	for _, h := range histories {
		out = append(out, historyExport{
			ID:          h.ID,
			PatientID:   h.PatientID,
			PatientName: h.PatientName,
			Doctor:      h.Doctor,
			Specialty:   h.Specialty,
			Reason:      h.Reason,
			Vitals: historyVitals{
				BloodPressure:    h.BloodPressure,
				HeartRate:        h.HeartRate,
				RespiratoryRate:  h.RespiratoryRate,
				Temperature:      h.Temperature,
				OxygenSaturation: h.OxygenSaturation,
				Weight:           h.Weight,
				Height:           h.Height,
				BMI:              h.BMI,
			},
			PrimaryDiagnosis:   h.PrimaryDiagnosis,
			SecondaryDiagnosis: h.SecondaryDiagnosis,
			Treatment:          h.Treatment,
			Recommendations:    h.Recommendations,
			RequestedTests:     h.RequestedTests,
			NextAppointment:    h.NextAppointment,
			RegisteredAt:       h.RegisteredAt,
		})
	}
	return out
}

// EncodeDatabaseJSON renders the whole store under the sistema_medico key
// with two-space indentation.
func EncodeDatabaseJSON(db *models.Database) (string, error) {
	document := map[string]databaseExport{
		constvars.ExportRootTag: {
			Patients:     mapPatients(db.Patients),
			Appointments: mapAppointments(db.Appointments),
			Doctors:      mapDoctors(db.Doctors),
			Specialties:  mapSpecialties(db.Specialties),
			Invoices:     mapInvoices(db.Invoices),
			Histories:    mapHistories(db.Histories),
		},
	}
	raw, err := json.MarshalIndent(document, "", "  ")
	if err != nil {
		return "", exceptions.ErrCannotMarshalJSON(err)
	}
	return string(raw), nil
}

// EncodeCollectionJSON renders a single collection keyed by its name.
func EncodeCollectionJSON(db *models.Database, collection string) (string, error) {
	var document interface{}
	switch collection {
	case constvars.CollectionPatients:
		document = map[string][]patientExport{collection: mapPatients(db.Patients)}
	case constvars.CollectionAppointments:
		document = map[string][]appointmentExport{collection: mapAppointments(db.Appointments)}
	case constvars.CollectionDoctors:
		document = map[string][]doctorExport{collection: mapDoctors(db.Doctors)}
	case constvars.CollectionSpecialties:
		document = map[string][]specialtyExport{collection: mapSpecialties(db.Specialties)}
	case constvars.CollectionInvoices:
		document = map[string][]invoiceExport{collection: mapInvoices(db.Invoices)}
	case constvars.CollectionHistories:
		document = map[string][]historyExport{collection: mapHistories(db.Histories)}
	default:
		return "", exceptions.ErrUnknownExportCollection(collection)
	}
	raw, err := json.MarshalIndent(document, "", "  ")
	if err != nil {
		return "", exceptions.ErrCannotMarshalJSON(err)
	}
	return string(raw), nil
}
