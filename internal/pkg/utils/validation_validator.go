package utils

import (
	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("cedula", validateCedulaField)
	validate.RegisterValidation("phone_ec", validatePhoneField)
	validate.RegisterValidation("password", validatePasswordField)
	validate.RegisterValidation("person_name", validatePersonNameField)
	validate.RegisterValidation("doctor_name", validateDoctorNameField)
	validate.RegisterValidation("past_date", validatePastDateField)
	validate.RegisterValidation("not_past_datetime", validateNotPastDateTimeField)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validateCedulaField(fl validator.FieldLevel) bool {
	return ValidateCedula(fl.Field().String())
}

func validatePhoneField(fl validator.FieldLevel) bool {
	return ValidatePhone(fl.Field().String())
}

func validatePasswordField(fl validator.FieldLevel) bool {
	return EvaluatePassword(fl.Field().String()).Valid
}

func validatePersonNameField(fl validator.FieldLevel) bool {
	return ValidateName(fl.Field().String())
}

func validateDoctorNameField(fl validator.FieldLevel) bool {
	return ValidateDoctorName(fl.Field().String())
}

func validatePastDateField(fl validator.FieldLevel) bool {
	return ValidateBirthDate(fl.Field().String())
}

func validateNotPastDateTimeField(fl validator.FieldLevel) bool {
	return ValidateNotPastDateTime(fl.Field().String())
}
