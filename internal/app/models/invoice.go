package models

type Invoice struct {
	ID            string  `json:"id" bson:"id"`
	Number        string  `json:"numeroFactura" bson:"numeroFactura"`
	PatientName   string  `json:"paciente" bson:"paciente"`
	Cedula        string  `json:"cedula" bson:"cedula"`
	Doctor        string  `json:"medico" bson:"medico"`
	Service       string  `json:"servicio" bson:"servicio"`
	Description   string  `json:"descripcion" bson:"descripcion"`
	Cost          float64 `json:"costo" bson:"costo"`
	PaymentMethod string  `json:"metodoPago" bson:"metodoPago"`
	IssuedAt      string  `json:"fecha" bson:"fecha"`
	RegisteredAt  string  `json:"fechaRegistro" bson:"fechaRegistro"`
}
