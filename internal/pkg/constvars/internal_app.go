package constvars

// Storage keys. The whole record store is serialized under a single key;
// credentials and the known-emails ledger live under their own keys so a
// password reset never has to touch the snapshot.
const (
	StorageKeySnapshot    = "policlinico_datos"
	StorageKeyCredentials = "credencialesUsuarios"
	StorageKeyKnownEmails = "knownEmails"
	StorageKeySessionFmt  = "sesionUsuario:%s"
)

const (
	MongoCollectionSnapshots = "snapshots"
	MongoSnapshotDocumentID  = "policlinico"

	SnapshotBackendRedis = "redis"
	SnapshotBackendMongo = "mongo"
)

// Roles accepted at login. The institutional mail domain is bound to the
// role, see utils.ValidateEmailForRole.
const (
	RoleAdmin  = "admin"
	RoleDoctor = "medico"
	RoleNurse  = "enfermera"

	RoleDomainAdmin  = "adm.uleam.edu.ec"
	RoleDomainDoctor = "med.uleam.edu.ec"
	RoleDomainNurse  = "enf.uleam.edu.ec"
)

// Capabilities consulted by both the route guard and /session/capabilities.
const (
	CapabilityPatients     = "pacientes"
	CapabilityAppointments = "citas"
	CapabilityDoctors      = "medicos"
	CapabilitySpecialties  = "especialidades"
	CapabilityInvoices     = "facturas"
	CapabilityHistories    = "historias"
	CapabilityExports      = "exportaciones"
)

// Collection names as they appear in the persisted snapshot and in export
// documents.
const (
	CollectionPatients     = "pacientes"
	CollectionAppointments = "citas"
	CollectionDoctors      = "medicos"
	CollectionSpecialties  = "especialidades"
	CollectionInvoices     = "facturas"
	CollectionHistories    = "historias"
)

const (
	ExportRootTag       = "sistema_medico"
	ExportFormatXML     = "xml"
	ExportFormatJSON    = "json"
	ExportCollectionAll = "todo"
	ExportFilePrefix    = "sistema_medico"
	InvoiceNumberPrefix = "FACT-"
)

// Layouts used on the wire. Registration stamps keep the original
// "YYYY-MM-DD HH:MM:SS" shape, appointment date-times are the HTML
// datetime-local shape.
const (
	TimeLayoutRegistered = "2006-01-02 15:04:05"
	TimeLayoutDateTime   = "2006-01-02T15:04"
	TimeLayoutDate       = "2006-01-02"
	TimeLayoutClock      = "15:04"
)

const (
	AppointmentHorizonMonths = 6
	PastDateToleranceSeconds = 60

	PatientAgeMax = 130

	WeightMinKg = 2
	WeightMaxKg = 500
	HeightMinM  = 0.3
	HeightMaxM  = 2.5

	TemperatureMinC      = 30
	TemperatureMaxC      = 45
	OxygenSaturationMin  = 0
	OxygenSaturationMax  = 100
	HeartRateMin         = 10
	HeartRateMax         = 250
	RespiratoryRateMin   = 5
	RespiratoryRateMax   = 60
	InvoiceCostMax       = 100000
	PasswordMinimumScore = 4
)

var BloodTypes = []string{"", "A+", "A-", "B+", "B-", "AB+", "AB-", "O+", "O-"}

var WeekDays = []string{"lun", "mar", "mie", "jue", "vie", "sab", "dom"}

const (
	ContextSessionData = contextKey("sessionData")
	ContextSessionID   = contextKey("sessionID")
	ContextRequestID   = contextKey("requestID")
)

type contextKey string
