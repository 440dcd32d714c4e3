package utils

import (
	"testing"

	"policlinico-service/internal/pkg/dto/requests"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeCreatePatientRequest(t *testing.T) {
	input := &requests.CreatePatient{
		Name:   "  Juan   Carlos   Pérez ",
		Cedula: " 1710034065 ",
		Email:  " Juan.Perez@Live.ULEAM.edu.ec ",
		Weight: " 72,5 ",
		Height: " 1.75 ",
	}
	SanitizeCreatePatientRequest(input)

	assert.Equal(t, "Juan Carlos Pérez", input.Name)
	assert.Equal(t, "1710034065", input.Cedula)
	assert.Equal(t, "juan.perez@live.uleam.edu.ec", input.Email)
	assert.Equal(t, "72,5", input.Weight)
	assert.Equal(t, "1.75", input.Height)
}

func TestSanitizeCreateDoctorRequest(t *testing.T) {
	t.Run("adds the honorific", func(t *testing.T) {
		input := &requests.CreateDoctor{Name: "  Carlos   Vera ", Email: " CVera@MED.uleam.edu.ec "}
		SanitizeCreateDoctorRequest(input)
		assert.Equal(t, "Dr. Carlos Vera", input.Name)
		assert.Equal(t, "cvera@med.uleam.edu.ec", input.Email)
	})

	t.Run("keeps an existing honorific", func(t *testing.T) {
		input := &requests.CreateDoctor{Name: "Dra. Eva Paz"}
		SanitizeCreateDoctorRequest(input)
		assert.Equal(t, "Dra. Eva Paz", input.Name)
	})
}

func TestSanitizeLoginRequest(t *testing.T) {
	input := &requests.Login{Role: " Admin ", Email: " Juan@ADM.uleam.edu.ec "}
	SanitizeLoginRequest(input)
	assert.Equal(t, "admin", input.Role)
	assert.Equal(t, "juan@adm.uleam.edu.ec", input.Email)
}

func TestSanitizeCreateClinicalHistoryRequest(t *testing.T) {
	input := &requests.CreateClinicalHistory{
		PatientID: " p-1 ",
		Doctor:    "  Dr.  Vera ",
		Reason:    " Control ",
		Weight:    " 70 ",
	}
	SanitizeCreateClinicalHistoryRequest(input)
	assert.Equal(t, "p-1", input.PatientID)
	assert.Equal(t, "Dr. Vera", input.Doctor)
	assert.Equal(t, "Control", input.Reason)
	assert.Equal(t, "70", input.Weight)
}
