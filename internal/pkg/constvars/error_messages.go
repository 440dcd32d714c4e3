package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required":          "is required",
	"email":             "must be a valid email",
	"min":               "must be at least %s characters long",
	"max":               "maximum at %s characters long",
	"len":               "must be %s characters long",
	"oneof":             "must be one of [%s]",
	"gt":                "must be greater than %s",
	"gte":               "must be greater than or equal to %s",
	"lt":                "must be less than %s",
	"lte":               "must be less than or equal to %s",
	"eqfield":           "must match %s",
	"numeric":           "must be a number",
	"cedula":            "must be a valid 10 digit national ID",
	"phone_ec":          "must be a 10 digit cell phone starting with 09",
	"password":          "must be at least 8 characters long and include lowercase, uppercase, a digit and a special character",
	"person_name":       "must contain only letters, spaces, apostrophes and hyphens",
	"not_past_datetime": "must not be in the past",
	"past_date":         "must be a past date",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":     true,
	"max":     true,
	"len":     true,
	"oneof":   true,
	"gt":      true,
	"gte":     true,
	"lt":      true,
	"lte":     true,
	"eqfield": true,
}

const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientNotAuthorized                 = "you are not authorized to do this action"
	ErrClientNotLoggedIn                   = "you are not logged in, please log in"
	ErrClientInvalidUsernameOrPassword     = "invalid email or password"
	ErrClientCannotSaveData                = "could not save the data, please try again"
	ErrClientResourceNotFound              = "the requested record does not exist"

	ErrClientCedulaAlreadyExists        = "this national ID is already registered"
	ErrClientEmailAlreadyExists         = "this email is already registered"
	ErrClientSpecialtyAlreadyExists     = "this specialty is already registered"
	ErrClientAppointmentConflict        = "the doctor already has an appointment at that exact date and time"
	ErrClientPatientNotRegistered       = "this national ID is not registered, register the patient first"
	ErrClientInvalidStatusTransition    = "the appointment cannot change to that status"
	ErrClientInvalidSchedule            = "the weekly schedule must have at least one valid, non overlapping time range"
	ErrClientAppointmentTooFarInFuture  = "appointments cannot be scheduled more than 6 months ahead"
	ErrClientInstitutionalEmailRequired = "only institutional emails are allowed (@uleam.edu.ec or @live.uleam.edu.ec)"
	ErrClientRoleEmailMismatch          = "the email domain does not match the selected role"
	ErrClientResetTokenExpired          = "the reset password link has expired, request a new one"
	ErrClientPasswordsDoNotMatch        = "passwords do not match"
	ErrClientWeakPassword               = "the password does not meet the minimum strength requirements"
)

const (
	ErrDevValidationFailed        = "validation failed"
	ErrDevCannotParseJSON         = "cannot parse JSON body"
	ErrDevCannotMarshalJSON       = "cannot marshal data to JSON"
	ErrDevInvalidInput            = "invalid input"
	ErrDevSnapshotPersistFailed   = "failed to persist store snapshot"
	ErrDevSnapshotLoadFailed      = "failed to load store snapshot"
	ErrDevSnapshotDecodeFailed    = "stored snapshot is malformed, falling back to empty collections"
	ErrDevRecordNotFound          = "record not found in collection"
	ErrDevServerDeadlineExceeded  = "server took too long to respond"
	ErrDevAuthTokenMissing        = "authorization token is missing"
	ErrDevAuthTokenInvalid        = "authorization token is invalid or expired"
	ErrDevAuthInvalidSession      = "session not found or expired"
	ErrDevAuthSigningMethod       = "unexpected JWT signing method"
	ErrDevAuthGenerateToken       = "failed to generate JWT"
	ErrDevInvalidCredentials      = "credentials do not match"
	ErrDevFailedToHashPassword    = "failed to hash password"
	ErrDevRedisSet                = "failed to set value to redis"
	ErrDevRedisGet                = "failed to get value from redis"
	ErrDevRedisDelete             = "failed to delete value from redis"
	ErrDevMongoDBUpsertDocument   = "failed to upsert document to mongoDB"
	ErrDevMongoDBFindDocument     = "failed to find document in mongoDB"
	ErrDevMinioCreateObjectFmt    = "failed to create object in bucket: %s"
	ErrDevMailerPublish           = "failed to publish message to mailer queue"
	ErrDevUnknownExportFormat     = "unknown export format"
	ErrDevUnknownExportCollection = "unknown export collection"
)

const ResponseUnknown = "unknown"
