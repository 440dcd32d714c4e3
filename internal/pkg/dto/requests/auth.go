package requests

type Login struct {
	Role     string `json:"rol" validate:"required,oneof=admin medico enfermera"`
	Email    string `json:"usuario" validate:"required,email"`
	Password string `json:"contrasena" validate:"required,min=8"`
}

type RegisterUser struct {
	Role           string `json:"rol" validate:"required,oneof=admin medico enfermera"`
	Email          string `json:"usuario" validate:"required,email"`
	Password       string `json:"contrasena" validate:"required,password"`
	RetypePassword string `json:"confirmarContrasena" validate:"required"`
}

type ForgotPassword struct {
	Email string `json:"usuario" validate:"required,email"`
}

type ResetPassword struct {
	Token                   string `json:"token" validate:"required"`
	NewPassword             string `json:"nuevaContrasena" validate:"required,password"`
	NewPasswordConfirmation string `json:"confirmarContrasena" validate:"required"`
}
