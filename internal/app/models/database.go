package models

// Database is the single root object holding every collection. It is
// serialized and persisted as one unit; insertion order is display order.
type Database struct {
	Patients     []Patient         `json:"pacientes" bson:"pacientes"`
	Appointments []Appointment     `json:"citas" bson:"citas"`
	Doctors      []Doctor          `json:"medicos" bson:"medicos"`
	Specialties  []Specialty       `json:"especialidades" bson:"especialidades"`
	Invoices     []Invoice         `json:"facturas" bson:"facturas"`
	Histories    []ClinicalHistory `json:"historias" bson:"historias"`
}

func NewDatabase() *Database {
	return &Database{
		Patients:     []Patient{},
		Appointments: []Appointment{},
		Doctors:      []Doctor{},
		Specialties:  []Specialty{},
		Invoices:     []Invoice{},
		Histories:    []ClinicalHistory{},
	}
}

// Clone returns a deep copy so exports and rollback snapshots never share
// backing arrays with the live store.
func (db *Database) Clone() *Database {
	clone := &Database{
		Patients:     make([]Patient, len(db.Patients)),
		Appointments: make([]Appointment, len(db.Appointments)),
		Doctors:      make([]Doctor, len(db.Doctors)),
		Specialties:  make([]Specialty, len(db.Specialties)),
		Invoices:     make([]Invoice, len(db.Invoices)),
		Histories:    make([]ClinicalHistory, len(db.Histories)),
	}
	copy(clone.Patients, db.Patients)
	copy(clone.Appointments, db.Appointments)
	copy(clone.Doctors, db.Doctors)
	copy(clone.Specialties, db.Specialties)
	copy(clone.Invoices, db.Invoices)
	copy(clone.Histories, db.Histories)
	for i := range clone.Doctors {
		clone.Doctors[i].Schedule = db.Doctors[i].Schedule.clone()
	}
	return clone
}

func (ws WeeklySchedule) clone() WeeklySchedule {
	out := WeeklySchedule{
		Recurring:  make([]DaySchedule, len(ws.Recurring)),
		Exceptions: append([]string{}, ws.Exceptions...),
	}
	for i, day := range ws.Recurring {
		out.Recurring[i] = DaySchedule{
			Days:   append([]string{}, day.Days...),
			Ranges: append([]TimeRange{}, day.Ranges...),
		}
	}
	return out
}
