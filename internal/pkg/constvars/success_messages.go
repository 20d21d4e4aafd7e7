package constvars

const (
	// Generic messages
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"
	ResponseError   = "error"

	// Auth messages
	RegisterSuccess = "account created successfully"
	LoginSuccess    = "successfully login"
	LogoutSuccess   = "successfully logout"
	SessionSuccess  = "session resolved successfully"

	// Profile messages
	ProfileGetSuccess    = "get profile successfully"
	ProfileUpdateSuccess = "profile updated successfully"

	// Practitioner messages
	PractitionerListSuccess = "practitioners retrieved successfully"
	PractitionerGetSuccess  = "practitioner retrieved successfully"
	SpecialtyListSuccess    = "specialties retrieved successfully"

	// Appointment messages
	AppointmentBookedSuccess       = "appointment booked successfully"
	AppointmentListSuccess         = "appointments retrieved successfully"
	AppointmentStatusUpdateSuccess = "appointment status updated successfully"

	// Review messages
	ReviewCreatedSuccess = "review created successfully"
	ReviewListSuccess    = "reviews retrieved successfully"
)
