package exporters

import (
	"strings"
	"testing"

	"policlinico-service/internal/app/models"

	"github.com/stretchr/testify/assert"
)

func testDatabase() *models.Database {
	db := models.NewDatabase()
	db.Patients = append(db.Patients, models.Patient{
		ID:            "p-1",
		FullName:      "Juan Pérez",
		Cedula:        "1710034065",
		BirthDate:     "1990-05-20",
		Age:           36,
		Sex:           "Masculino",
		MaritalStatus: "Soltero",
		BloodType:     "O+",
		Address:       "Av. Flavio Reyes",
		City:          "Manta",
		Province:      "Manabí",
		Phone:         "0991234567",
		Email:         "juan@live.uleam.edu.ec",
		Weight:        72.5,
		Height:        1.75,
		BMI:           23.67,
		BMIClass:      "Normal",
		RegisteredAt:  "2026-08-01 10:00:00",
	})
	db.Invoices = append(db.Invoices, models.Invoice{
		ID:            "f-1",
		Number:        "FACT-20260801100000-ABC123",
		PatientName:   "Juan Pérez",
		Cedula:        "1710034065",
		Doctor:        "Dr. Carlos Vera",
		Service:       "Consulta general",
		Cost:          25,
		PaymentMethod: "Efectivo",
		IssuedAt:      "2026-08-01",
		RegisteredAt:  "2026-08-01 10:05:00",
	})
	return db
}

func TestEncodeDatabaseXML(t *testing.T) {
	doc := EncodeDatabaseXML(testDatabase())

	t.Run("encoding twice yields identical output", func(t *testing.T) {
		assert.Equal(t, doc, EncodeDatabaseXML(testDatabase()))
	})

	t.Run("document shape", func(t *testing.T) {
		assert.True(t, strings.HasPrefix(doc, "<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n"))
		assert.True(t, strings.HasSuffix(doc, "</sistema_medico>"))
		assert.Contains(t, doc, "<sistema_medico>")
	})

	t.Run("patients grouped into sections", func(t *testing.T) {
		assert.Contains(t, doc, "<paciente id=\"1710034065\">")
		assert.Contains(t, doc, "<datos_personales>")
		assert.Contains(t, doc, "<contacto>")
		assert.Contains(t, doc, "<datos_medicos>")
		assert.Contains(t, doc, "<peso unidad=\"kg\">72.5</peso>")
		assert.Contains(t, doc, "<estatura unidad=\"m\">1.75</estatura>")
	})

	t.Run("empty nationality falls back", func(t *testing.T) {
		assert.Contains(t, doc, "<nacionalidad>No especificado</nacionalidad>")
	})

	t.Run("invoice nests the patient and carries the currency", func(t *testing.T) {
		assert.Contains(t, doc, "<factura id=\"FACT-20260801100000-ABC123\">")
		assert.Contains(t, doc, "<costo moneda=\"USD\">25</costo>")
		assert.Contains(t, doc, "<paciente>\n        <nombre>Juan Pérez</nombre>\n        <cedula>1710034065</cedula>\n      </paciente>")
	})

	t.Run("empty collections are omitted", func(t *testing.T) {
		assert.NotContains(t, doc, "<citas>")
		assert.NotContains(t, doc, "<medicos>")
		assert.NotContains(t, doc, "<especialidades>")
		assert.NotContains(t, doc, "<historias>")
	})
}

func TestEncodeDatabaseXMLEscaping(t *testing.T) {
	db := models.NewDatabase()
	db.Specialties = append(db.Specialties, models.Specialty{
		ID:          "e-1",
		Name:        "Cirugía & Trauma",
		Description: `dice "ver <nota>" y 'firma'`,
	})

	doc := EncodeDatabaseXML(db)

	assert.Contains(t, doc, "<nombre>Cirugía &amp; Trauma</nombre>")
	assert.Contains(t, doc, "<descripcion>dice &quot;ver &lt;nota&gt;&quot; y &apos;firma&apos;</descripcion>")
	assert.NotContains(t, doc, "Cirugía & Trauma</nombre>")
}

func TestEncodeCollectionXML(t *testing.T) {
	db := testDatabase()

	t.Run("single collection becomes the root", func(t *testing.T) {
		doc, err := EncodeCollectionXML(db, "pacientes")
		assert.NoError(t, err)
		assert.True(t, strings.HasPrefix(doc, "<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n<pacientes>"))
		assert.True(t, strings.HasSuffix(doc, "</pacientes>"))
		assert.Contains(t, doc, "\n  <paciente id=\"1710034065\">")
	})

	t.Run("empty collection still renders its root", func(t *testing.T) {
		doc, err := EncodeCollectionXML(db, "citas")
		assert.NoError(t, err)
		assert.Contains(t, doc, "<citas>")
		assert.Contains(t, doc, "</citas>")
	})

	t.Run("unknown collection is rejected", func(t *testing.T) {
		_, err := EncodeCollectionXML(db, "usuarios")
		assert.Error(t, err)
	})
}

func TestFormatSchedule(t *testing.T) {
	assert.Equal(t, "No especificado", formatSchedule(models.WeeklySchedule{}))

	schedule := models.WeeklySchedule{
		Recurring: []models.DaySchedule{{
			Days:   []string{"lun", "mie"},
			Ranges: []models.TimeRange{{From: "08:00", To: "12:00"}},
		}},
	}
	out := formatSchedule(schedule)
	assert.Contains(t, out, "\"lun\"")
	assert.Contains(t, out, "\"08:00\"")
}
