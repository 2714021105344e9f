package constvars

const (
	LoggingRequestIDKey      = "request_id"
	LoggingSessionDataKey    = "session_data"
	LoggingQueryParamsKey    = "query_params"
	LoggingResponseKey       = "response"
	LoggingRequestKey        = "request"
	LoggingResponseLengthKey = "response_length"
	LoggingMethodKey         = "method"
	LoggingEndpointKey       = "endpoint"
	LoggingRemoteAddrKey     = "remote_addr"
	LoggingUserAgentKey      = "user_agent"
	LoggingQueryKey          = "query"
	LoggingStatusCodeKey     = "status_code"
	LoggingDurationKey       = "duration"
	LoggingSuccessKey        = "success"
	LoggingDoctorIDKey       = "doctor_id"
	LoggingPatientIDKey      = "patient_id"
	LoggingUserIDKey         = "user_id"
	LoggingAppointmentIDKey  = "appointment_id"
	LoggingSlotIDKey         = "slot_id"
	LoggingRecordIDKey       = "record_id"
	LoggingNotificationIDKey = "notification_id"
	LoggingDateKey           = "date"
)
