package constvars

const (
	LoggingRequestIDKey      = "request_id"
	LoggingMethodKey         = "method"
	LoggingEndpointKey       = "endpoint"
	LoggingRemoteAddrKey     = "remote_addr"
	LoggingUserAgentKey      = "user_agent"
	LoggingQueryKey          = "query"
	LoggingStatusCodeKey     = "status_code"
	LoggingDurationKey       = "duration"
	LoggingSuccessKey        = "success"
	LoggingSessionDataKey    = "session_data"
	LoggingUserIDKey         = "user_id"
	LoggingProfileIDKey      = "profile_id"
	LoggingPatientIDKey      = "patient_id"
	LoggingPractitionerIDKey = "practitioner_id"
	LoggingAppointmentIDKey  = "appointment_id"
	LoggingAppointmentCount  = "appointment_count"
	LoggingResponseCountKey  = "response_count"
	LoggingStatusKey         = "status"
	LoggingFiltersKey        = "filters"
	LoggingObjectKeyKey      = "object_key"
)
