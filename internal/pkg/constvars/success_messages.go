package constvars

const (
	LoginSuccessMessage          = "Successfully logged in"
	RegisterSuccessMessage       = "Successfully registered user"
	LogoutSuccessMessage         = "Successfully logged out"
	ForgotPasswordSuccessMessage = "If the email is registered, a recovery link has been sent"
	ResetPasswordSuccessMessage  = "Successfully reset password"

	CreatePatientSuccessMessage     = "Successfully registered patient"
	UpdatePatientSuccessMessage     = "Successfully updated patient"
	DeletePatientSuccessMessage     = "Successfully deleted patient"
	GetPatientSuccessMessage        = "Successfully fetched patient"
	ListPatientsSuccessMessage      = "Successfully fetched patients"
	CreateAppointmentSuccessMessage = "Successfully registered appointment"
	UpdateAppointmentSuccessMessage = "Successfully updated appointment"
	DeleteAppointmentSuccessMessage = "Successfully deleted appointment"
	ListAppointmentsSuccessMessage  = "Successfully fetched appointments"
	CreateDoctorSuccessMessage      = "Successfully registered doctor"
	UpdateDoctorSuccessMessage      = "Successfully updated doctor"
	DeleteDoctorSuccessMessage      = "Successfully deleted doctor"
	ListDoctorsSuccessMessage       = "Successfully fetched doctors"
	CreateSpecialtySuccessMessage   = "Successfully registered specialty"
	UpdateSpecialtySuccessMessage   = "Successfully updated specialty"
	DeleteSpecialtySuccessMessage   = "Successfully deleted specialty"
	ListSpecialtiesSuccessMessage   = "Successfully fetched specialties"
	CreateInvoiceSuccessMessage     = "Successfully generated invoice"
	UpdateInvoiceSuccessMessage     = "Successfully updated invoice"
	DeleteInvoiceSuccessMessage     = "Successfully deleted invoice"
	ListInvoicesSuccessMessage      = "Successfully fetched invoices"
	CreateHistorySuccessMessage     = "Successfully registered clinical history"
	UpdateHistorySuccessMessage     = "Successfully updated clinical history"
	DeleteHistorySuccessMessage     = "Successfully deleted clinical history"
	ListHistoriesSuccessMessage     = "Successfully fetched clinical histories"
	ExportSuccessMessage            = "Successfully exported data"
	CapabilitiesSuccessMessage      = "Successfully fetched capabilities"
)
