package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required":          "is required",
	"email":             "must be a valid email",
	"min":               "must be at least %s characters long",
	"max":               "maximum at %s characters long",
	"oneof":             "must be one of [%s]",
	"gte":               "must be greater than or equal to %s",
	"lte":               "must be less than or equal to %s",
	"uuid":              "must be a valid UUID",
	"password":          "must be at least 8 characters long, contain at least one special character, and one uppercase letter",
	"user_type":         "must be either 'practitioner' or 'patient'",
	"consultation_type": "must be either 'Virtual' or 'In-Person'",
	"booking_date":      "must be a date formatted as YYYY-MM-DD",
	"booking_time":      "must be a time formatted as HH:MM",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"oneof": true,
	"gte":   true,
	"lte":   true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientNotAuthorized                 = "you can't access this feature"
	ErrClientNotLoggedIn                   = "your session ended, please login again"
	ErrClientInvalidEmailOrPassword        = "invalid email or password"
	ErrClientEmailAlreadyExists            = "email already used"
	ErrClientPasswordsDoNotMatch           = "passwords do not match"
	ErrClientPractitionerNotFound          = "the practitioner you're looking for doesn't exist or has been removed"
	ErrClientAppointmentNotFound           = "the appointment could not be found"
	ErrClientInvalidStatusTransition       = "the appointment can no longer be moved to that status"
	ErrClientUnsupportedConsultationType   = "the practitioner does not offer that consultation type"
	ErrClientInvalidImageFormat            = "the image you uploaded does not meet the specified standards"
	ErrClientProfileNotFound               = "profile not found"
	ErrClientRoleNotAllowed                = "your account type can't perform this action"
	ErrClientTooManyBookings               = "too many booking attempts, please try again shortly"
)

// Error messages for developers
const (
	ErrDevInvalidInput             = "invalid input"
	ErrDevValidationFailed         = "validation failed for one or more fields"
	ErrDevCannotParseJSON          = "cannot parse JSON into struct or other data types"
	ErrDevCannotMarshalJSON        = "cannot convert struct or other data types to JSON"
	ErrDevCannotParseDate          = "cannot parse the requested date or time"
	ErrDevCannotParseMultipartForm = "cannot parse multipart form body"
	ErrDevServerDeadlineExceeded   = "server deadline exceeded on processing request"
	ErrDevURLParamIDValidation     = "failed validating URL parameter %s"

	ErrDevInvalidCredentials        = "credentials given by user is invalid"
	ErrDevEmailAlreadyExists        = "user with the given email already exists"
	ErrDevPasswordsDoNotMatch       = "password and retype-password do not match"
	ErrDevFailedToHashPassword      = "failed hashing the given password"
	ErrDevAuthTokenMissing          = "authorization token is missing from the request"
	ErrDevAuthTokenInvalid          = "authorization token is invalid"
	ErrDevAuthTokenInvalidOrExpired = "authorization token is invalid or already expired"
	ErrDevAuthSigningMethod         = "unexpected JWT signing method"
	ErrDevAuthGenerateToken         = "failed generating JWT token"
	ErrDevAuthInvalidSession        = "session is missing or no longer stored"
	ErrDevRedisStoreSession         = "failed storing session data to redis"

	ErrDevUserNotExists           = "user with given identifier does not exist"
	ErrDevProfileNotExists        = "profile with given identifier does not exist"
	ErrDevPractitionerNotExists   = "practitioner with given identifier does not exist"
	ErrDevAppointmentNotExists    = "appointment with given identifier does not exist"
	ErrDevInvalidStatusTransition = "requested appointment status transition is not allowed"
	ErrDevRoleNotAllowed          = "session role is not allowed to perform this operation"
	ErrDevBookingQuotaExceeded    = "booking quota for the current window is exhausted"
	ErrDevConsultationTypeMissing = "requested consultation type is not in the practitioner's supported set"

	ErrDevDBFailedToFindDocument     = "database failed to find document"
	ErrDevDBFailedToInsertDocument   = "database failed to insert document"
	ErrDevDBFailedToUpdateDocument   = "database failed to update document"
	ErrDevDBFailedToDeleteDocument   = "database failed to delete document"
	ErrDevDBFailedToIterateDocuments = "database failed to iterate over documents"
	ErrDevDBStringNotObjectID        = "given string cannot be converted to mongo ObjectID"

	ErrDevRedisSet     = "redis failed to set key"
	ErrDevRedisGet     = "redis failed to get key %s"
	ErrDevRedisDelete  = "redis failed to delete key"
	ErrDevRedisIncr    = "redis failed to increment key"
	ErrDevStoragePut   = "storage failed to put object into bucket %s"
	ErrDevStorageTrash = "storage failed to remove object from bucket %s"
)
