package requests

// Export parameters arrive as query values; the controller maps them here
// before validation.
type Export struct {
	Format     string `json:"formato" validate:"required,oneof=xml json"`
	Collection string `json:"coleccion" validate:"required,oneof=todo pacientes citas medicos especialidades facturas historias"`
	From       string `json:"desde" validate:"omitempty,datetime=2006-01-02"`
	To         string `json:"hasta" validate:"omitempty,datetime=2006-01-02"`
	Cedula     string `json:"cedula" validate:"omitempty,cedula"`
	Archive    bool   `json:"archivar"`
}
