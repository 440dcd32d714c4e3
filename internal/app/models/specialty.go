package models

type Specialty struct {
	ID           string `json:"id" bson:"id"`
	Name         string `json:"especialidad" bson:"especialidad"`
	Description  string `json:"descripcion" bson:"descripcion"`
	Area         string `json:"area" bson:"area"`
	Schedule     string `json:"horario" bson:"horario"`
	Lead         string `json:"responsable" bson:"responsable"`
	RegisteredAt string `json:"fechaRegistro" bson:"fechaRegistro"`
}
