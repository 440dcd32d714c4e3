package utils

import (
	"policlinico-service/internal/pkg/dto/requests"
	"strings"
)

func collapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func SanitizeCreatePatientRequest(input *requests.CreatePatient) {
	input.Name = collapseSpaces(input.Name)
	input.Cedula = strings.TrimSpace(input.Cedula)
	input.BirthDate = strings.TrimSpace(input.BirthDate)
	input.Phone = strings.TrimSpace(input.Phone)
	input.Email = strings.TrimSpace(strings.ToLower(input.Email))
	input.Weight = strings.TrimSpace(input.Weight)
	input.Height = strings.TrimSpace(input.Height)
	input.Address = strings.TrimSpace(input.Address)
	input.City = strings.TrimSpace(input.City)
	input.Province = strings.TrimSpace(input.Province)
}

func SanitizeCreateAppointmentRequest(input *requests.CreateAppointment) {
	input.Cedula = strings.TrimSpace(input.Cedula)
	input.Specialty = collapseSpaces(input.Specialty)
	input.Doctor = collapseSpaces(input.Doctor)
	input.DateTime = strings.TrimSpace(input.DateTime)
	input.Office = strings.TrimSpace(input.Office)
}

func SanitizeCreateDoctorRequest(input *requests.CreateDoctor) {
	input.Name = NormalizeDoctorName(collapseSpaces(input.Name))
	input.Specialty = collapseSpaces(input.Specialty)
	input.Phone = strings.TrimSpace(input.Phone)
	input.Email = strings.TrimSpace(strings.ToLower(input.Email))
}

func SanitizeCreateSpecialtyRequest(input *requests.CreateSpecialty) {
	input.Name = collapseSpaces(input.Name)
	input.Description = strings.TrimSpace(input.Description)
	input.Area = strings.TrimSpace(input.Area)
	input.Schedule = strings.TrimSpace(input.Schedule)
	input.Lead = collapseSpaces(input.Lead)
}

func SanitizeCreateInvoiceRequest(input *requests.CreateInvoice) {
	input.Cedula = strings.TrimSpace(input.Cedula)
	input.Doctor = collapseSpaces(input.Doctor)
	input.Service = collapseSpaces(input.Service)
	input.Cost = strings.TrimSpace(input.Cost)
	input.IssuedAt = strings.TrimSpace(input.IssuedAt)
}

func SanitizeCreateClinicalHistoryRequest(input *requests.CreateClinicalHistory) {
	input.PatientID = strings.TrimSpace(input.PatientID)
	input.Doctor = collapseSpaces(input.Doctor)
	input.Specialty = collapseSpaces(input.Specialty)
	input.Reason = strings.TrimSpace(input.Reason)
	input.Weight = strings.TrimSpace(input.Weight)
	input.Height = strings.TrimSpace(input.Height)
	input.BloodPressure = strings.TrimSpace(input.BloodPressure)
	input.HeartRate = strings.TrimSpace(input.HeartRate)
	input.RespiratoryRate = strings.TrimSpace(input.RespiratoryRate)
	input.Temperature = strings.TrimSpace(input.Temperature)
	input.OxygenSaturation = strings.TrimSpace(input.OxygenSaturation)
	input.NextAppointment = strings.TrimSpace(input.NextAppointment)
}

func SanitizeLoginRequest(input *requests.Login) {
	input.Role = strings.TrimSpace(strings.ToLower(input.Role))
	input.Email = strings.TrimSpace(strings.ToLower(input.Email))
}

func SanitizeRegisterUserRequest(input *requests.RegisterUser) {
	input.Role = strings.TrimSpace(strings.ToLower(input.Role))
	input.Email = strings.TrimSpace(strings.ToLower(input.Email))
}

func SanitizeForgotPasswordRequest(input *requests.ForgotPassword) {
	input.Email = strings.TrimSpace(strings.ToLower(input.Email))
}
