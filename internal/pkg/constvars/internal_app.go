package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY   ContextKey = "requestID"
	CONTEXT_SESSION_DATA_KEY ContextKey = "sessionData"
	CONTEXT_SESSION_ID_KEY   ContextKey = "sessionID"
)

const (
	MongoCollectionUsers         = "users"
	MongoCollectionProfiles      = "profiles"
	MongoCollectionPractitioners = "practitioners"
	MongoCollectionAppointments  = "appointments"
	MongoCollectionReviews       = "reviews"
)

const (
	RolePatient      = "patient"
	RolePractitioner = "practitioner"
)

const (
	ConsultationTypeVirtual  = "Virtual"
	ConsultationTypeInPerson = "In-Person"
)

const (
	AppointmentStatusPending   = "pending"
	AppointmentStatusConfirmed = "confirmed"
	AppointmentStatusCompleted = "completed"
	AppointmentStatusCancelled = "cancelled"
)

// AppointmentDurationMinutes is fixed for every booking.
const AppointmentDurationMinutes = 60

const (
	BookingDateLayout = "2006-01-02"
	BookingTimeLayout = "15:04"
)

// Specialties is the fixed suggestion list offered at sign-up and in search
// filters. Specialty itself is stored as free text.
var Specialties = []string{
	"General Practice",
	"Cardiology",
	"Dermatology",
	"Endocrinology",
	"Gastroenterology",
	"Neurology",
	"Oncology",
	"Pediatrics",
	"Psychiatry",
	"Radiology",
}

const (
	// VerificationImageKeyFormat is practitioner_{userID}_{type}_{timestamp}.
	VerificationImageKeyFormat = "practitioner_%s_%s_%d"

	VerificationImageTypeProfile = "profile"
	VerificationImageTypeID      = "id"
)

const (
	AppPaginationUrlFormat = "%s?page=%d&page_size=%d"
)
