package exporters

import (
	"fmt"
	"strconv"
	"strings"

	"policlinico-service/internal/app/models"
	"policlinico-service/internal/pkg/constvars"
	"policlinico-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
)

const xmlHeader = "<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n"

// Every text node and attribute goes through the full five-entity escape.
var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	"\"", "&quot;",
	"'", "&apos;",
)

func escapeXML(s string) string {
	return xmlEscaper.Replace(s)
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// formatSchedule flattens the weekly structure into a single text node, the
// shape consumers of the document already parse.
func formatSchedule(schedule models.WeeklySchedule) string {
	if len(schedule.Recurring) == 0 && len(schedule.Exceptions) == 0 {
		return "No especificado"
	}
	raw, err := json.Marshal(schedule)
	if err != nil {
		return "No especificado"
	}
	return string(raw)
}

func writeElement(b *strings.Builder, indent, tag, value string) {
	b.WriteString(indent)
	b.WriteString("<")
	b.WriteString(tag)
	b.WriteString(">")
	b.WriteString(escapeXML(value))
	b.WriteString("</")
	b.WriteString(tag)
	b.WriteString(">\n")
}

func writePatientsXML(b *strings.Builder, patients []models.Patient) {
	b.WriteString("  <pacientes>\n")
	for _, p := range patients {
		fmt.Fprintf(b, "    <paciente id=\"%s\">\n", escapeXML(p.Cedula))
		b.WriteString("      <datos_personales>\n")
		writeElement(b, "        ", "nombres", p.FullName)
		writeElement(b, "        ", "cedula", p.Cedula)
		writeElement(b, "        ", "fecha_nacimiento", p.BirthDate)
		writeElement(b, "        ", "edad", strconv.Itoa(p.Age))
		writeElement(b, "        ", "sexo", p.Sex)
		writeElement(b, "        ", "estado_civil", p.MaritalStatus)
		writeElement(b, "        ", "tipo_sangre", p.BloodType)
		writeElement(b, "        ", "nacionalidad", defaultString(p.Nationality, "No especificado"))
		b.WriteString("      </datos_personales>\n")
		b.WriteString("      <contacto>\n")
		writeElement(b, "        ", "direccion", p.Address)
		writeElement(b, "        ", "ciudad", p.City)
		writeElement(b, "        ", "provincia", p.Province)
		writeElement(b, "        ", "telefono", p.Phone)
		writeElement(b, "        ", "email", p.Email)
		b.WriteString("      </contacto>\n")
		b.WriteString("      <datos_medicos>\n")
		fmt.Fprintf(b, "        <peso unidad=\"kg\">%s</peso>\n", formatFloat(p.Weight))
		fmt.Fprintf(b, "        <estatura unidad=\"m\">%s</estatura>\n", formatFloat(p.Height))
		writeElement(b, "        ", "imc", formatFloat(p.BMI))
		writeElement(b, "        ", "imc_categoria", p.BMIClass)
		writeElement(b, "        ", "alergias", p.Allergies)
		writeElement(b, "        ", "enfermedades_cronicas", p.Conditions)
		writeElement(b, "        ", "tratamientos_actuales", p.Treatments)
		b.WriteString("      </datos_medicos>\n")
		writeElement(b, "      ", "fecha_registro", p.RegisteredAt)
		b.WriteString("    </paciente>\n")
	}
	b.WriteString("  </pacientes>\n")
}

func writeAppointmentsXML(b *strings.Builder, appointments []models.Appointment) {
	b.WriteString("  <citas>\n")
	for _, c := range appointments {
		fmt.Fprintf(b, "    <cita id=\"%s\">\n", escapeXML(c.ID))
		writeElement(b, "      ", "paciente_cedula", c.Cedula)
		writeElement(b, "      ", "paciente_nombre", c.PatientName)
		writeElement(b, "      ", "especialidad", c.Specialty)
		writeElement(b, "      ", "medico", c.Doctor)
		writeElement(b, "      ", "fecha_hora", c.DateTime)
		writeElement(b, "      ", "consultorio", c.Office)
		writeElement(b, "      ", "estado", string(c.Status))
		writeElement(b, "      ", "observaciones", c.Notes)
		writeElement(b, "      ", "fecha_registro", c.RegisteredAt)
		b.WriteString("    </cita>\n")
	}
	b.WriteString("  </citas>\n")
}

func writeDoctorsXML(b *strings.Builder, doctors []models.Doctor) {
	b.WriteString("  <medicos>\n")
	for _, m := range doctors {
		fmt.Fprintf(b, "    <medico id=\"%s\">\n", escapeXML(m.ID))
		writeElement(b, "      ", "nombre", m.Name)
		writeElement(b, "      ", "especialidad", m.Specialty)
		writeElement(b, "      ", "telefono", m.Phone)
		writeElement(b, "      ", "correo", m.Email)
		writeElement(b, "      ", "horario", formatSchedule(m.Schedule))
		writeElement(b, "      ", "fecha_registro", m.RegisteredAt)
		b.WriteString("    </medico>\n")
	}
	b.WriteString("  </medicos>\n")
}

func writeSpecialtiesXML(b *strings.Builder, specialties []models.Specialty) {
	b.WriteString("  <especialidades>\n")
	for _, e := range specialties {
		fmt.Fprintf(b, "    <especialidad id=\"%s\">\n", escapeXML(e.ID))
		writeElement(b, "      ", "nombre", e.Name)
		writeElement(b, "      ", "descripcion", e.Description)
		writeElement(b, "      ", "area", e.Area)
		writeElement(b, "      ", "horario_atencion", e.Schedule)
		writeElement(b, "      ", "medico_responsable", e.Lead)
		b.WriteString("    </especialidad>\n")
	}
	b.WriteString("  </especialidades>\n")
}

func writeInvoicesXML(b *strings.Builder, invoices []models.Invoice) {
	b.WriteString("  <facturas>\n")
	for _, f := range invoices {
		fmt.Fprintf(b, "    <factura id=\"%s\">\n", escapeXML(defaultString(f.Number, f.ID)))
		writeElement(b, "      ", "numero_factura", f.Number)
		b.WriteString("      <paciente>\n")
		writeElement(b, "        ", "nombre", f.PatientName)
		writeElement(b, "        ", "cedula", f.Cedula)
		b.WriteString("      </paciente>\n")
		writeElement(b, "      ", "medico", f.Doctor)
		writeElement(b, "      ", "servicio", f.Service)
		writeElement(b, "      ", "descripcion", f.Description)
		fmt.Fprintf(b, "      <costo moneda=\"USD\">%s</costo>\n", formatFloat(f.Cost))
		writeElement(b, "      ", "metodo_pago", f.PaymentMethod)
		writeElement(b, "      ", "fecha_emision", f.IssuedAt)
		writeElement(b, "      ", "fecha_registro", f.RegisteredAt)
		b.WriteString("    </factura>\n")
	}
	b.WriteString("  </facturas>\n")
}

func writeHistoriesXML(b *strings.Builder, histories []models.ClinicalHistory) {
	b.WriteString("  <historias>\n")
	for _, h := range histories {
		fmt.Fprintf(b, "    <historia id=\"%s\">\n", escapeXML(h.ID))
		writeElement(b, "      ", "paciente_id", h.PatientID)
		writeElement(b, "      ", "paciente_nombre", h.PatientName)
		writeElement(b, "      ", "medico", h.Doctor)
		writeElement(b, "      ", "especialidad", h.Specialty)
		writeElement(b, "      ", "motivo_consulta", h.Reason)
		b.WriteString("      <signos_vitales>\n")
		writeElement(b, "        ", "presion_arterial", h.BloodPressure)
		writeElement(b, "        ", "frecuencia_cardiaca", h.HeartRate)
		writeElement(b, "        ", "frecuencia_respiratoria", h.RespiratoryRate)
		writeElement(b, "        ", "temperatura", h.Temperature)
		writeElement(b, "        ", "saturacion_oxigeno", h.OxygenSaturation)
		writeElement(b, "        ", "peso", h.Weight)
		writeElement(b, "        ", "estatura", h.Height)
		writeElement(b, "        ", "imc", h.BMI)
		b.WriteString("      </signos_vitales>\n")
		writeElement(b, "      ", "diagnostico_principal", h.PrimaryDiagnosis)
		writeElement(b, "      ", "diagnostico_secundario", h.SecondaryDiagnosis)
		writeElement(b, "      ", "tratamiento", h.Treatment)
		writeElement(b, "      ", "recomendaciones", h.Recommendations)
		writeElement(b, "      ", "examenes_solicitados", h.RequestedTests)
		writeElement(b, "      ", "proxima_cita", h.NextAppointment)
		writeElement(b, "      ", "fecha_registro", h.RegisteredAt)
		b.WriteString("    </historia>\n")
	}
	b.WriteString("  </historias>\n")
}

// EncodeDatabaseXML renders the whole store under the sistema_medico root.
// Empty collections are omitted, keeping the document shape of earlier
// exports.
func EncodeDatabaseXML(db *models.Database) string {
	var b strings.Builder
	b.WriteString(xmlHeader)
	b.WriteString("<" + constvars.ExportRootTag + ">\n")
	if len(db.Patients) > 0 {
		writePatientsXML(&b, db.Patients)
	}
	if len(db.Appointments) > 0 {
		writeAppointmentsXML(&b, db.Appointments)
	}
	if len(db.Doctors) > 0 {
		writeDoctorsXML(&b, db.Doctors)
	}
	if len(db.Specialties) > 0 {
		writeSpecialtiesXML(&b, db.Specialties)
	}
	if len(db.Invoices) > 0 {
		writeInvoicesXML(&b, db.Invoices)
	}
	if len(db.Histories) > 0 {
		writeHistoriesXML(&b, db.Histories)
	}
	b.WriteString("</" + constvars.ExportRootTag + ">")
	return b.String()
}

// EncodeCollectionXML renders one collection, with the collection tag as
// document root.
func EncodeCollectionXML(db *models.Database, collection string) (string, error) {
	var b strings.Builder
	b.WriteString(xmlHeader)
	switch collection {
	case constvars.CollectionPatients:
		writePatientsXML(&b, db.Patients)
	case constvars.CollectionAppointments:
		writeAppointmentsXML(&b, db.Appointments)
	case constvars.CollectionDoctors:
		writeDoctorsXML(&b, db.Doctors)
	case constvars.CollectionSpecialties:
		writeSpecialtiesXML(&b, db.Specialties)
	case constvars.CollectionInvoices:
		writeInvoicesXML(&b, db.Invoices)
	case constvars.CollectionHistories:
		writeHistoriesXML(&b, db.Histories)
	default:
		return "", exceptions.ErrUnknownExportCollection(collection)
	}
	// collection writers indent for the full document; as a root the two
	// leading spaces are dropped
	doc := xmlHeader + dedentTwo(strings.TrimPrefix(b.String(), xmlHeader))
	return strings.TrimSuffix(doc, "\n"), nil
}

func dedentTwo(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimPrefix(line, "  ")
	}
	return strings.Join(lines, "\n")
}

func defaultString(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}
