package models

// TimeRange is a single "HH:MM"-"HH:MM" attention slot within a day.
type TimeRange struct {
	From string `json:"desde" bson:"desde"`
	To   string `json:"hasta" bson:"hasta"`
}

// DaySchedule groups the slots of one or more week days (lun..dom).
type DaySchedule struct {
	Days   []string    `json:"dias" bson:"dias"`
	Ranges []TimeRange `json:"franjas" bson:"franjas"`
}

// WeeklySchedule is the recurring attention structure. Exceptions are kept
// for snapshot compatibility even though nothing populates them yet.
type WeeklySchedule struct {
	Recurring  []DaySchedule `json:"recurrente" bson:"recurrente"`
	Exceptions []string      `json:"excepciones" bson:"excepciones"`
}

type Doctor struct {
	ID           string         `json:"id" bson:"id"`
	Name         string         `json:"nombre" bson:"nombre"`
	Specialty    string         `json:"especialidad" bson:"especialidad"`
	Phone        string         `json:"telefono" bson:"telefono"`
	Email        string         `json:"correo" bson:"correo"`
	Schedule     WeeklySchedule `json:"horario" bson:"horario"`
	RegisteredAt string         `json:"fechaRegistro" bson:"fechaRegistro"`
}
