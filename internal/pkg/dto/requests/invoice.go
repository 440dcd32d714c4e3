package requests

type CreateInvoice struct {
	Cedula        string `json:"cedula" validate:"required,cedula"`
	Doctor        string `json:"medico" validate:"omitempty,max=100"`
	Service       string `json:"servicio" validate:"required,min=2,max=100"`
	Description   string `json:"descripcion" validate:"omitempty,max=500"`
	Cost          string `json:"costo" validate:"required"`
	PaymentMethod string `json:"metodoPago" validate:"required,oneof=Efectivo Tarjeta"`
	IssuedAt      string `json:"fecha" validate:"required,datetime=2006-01-02"`
}

type UpdateInvoice struct {
	CreateInvoice
}
