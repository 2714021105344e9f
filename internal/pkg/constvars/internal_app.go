package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_SESSION_DATA_KEY         ContextKey = "session_data"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
)

const (
	REQUEST_ID_PREFIX = "MDCN_SVC_"
)

const (
	MediConnectRolePatient = "patient"
	MediConnectRoleDoctor  = "doctor"
	MediConnectRoleAdmin   = "admin"
)

const (
	MongoCollectionUsers          = "users"
	MongoCollectionDoctors        = "doctors"
	MongoCollectionSchedules      = "doctor_schedules"
	MongoCollectionTimeSlots      = "time_slots"
	MongoCollectionAppointments   = "appointments"
	MongoCollectionPrescriptions  = "prescriptions"
	MongoCollectionMedicalRecords = "medical_records"
	MongoCollectionNotifications  = "notifications"
	MongoCollectionFeedback       = "feedback"
	MongoCollectionHealthTips     = "health_tips"
)

const (
	RedisSlotCacheKeyFormat   = "slots:%s:%s"
	RedisSessionKeyFormat     = "session:%s"
	RedisBookingLockKeyFormat = "booking_lock:%s:%s:%s"
)

const (
	AppointmentStatusScheduled = "scheduled"
	AppointmentStatusCompleted = "completed"
	AppointmentStatusCancelled = "cancelled"
)

const (
	NotificationTypeAppointmentBooked    = "appointment_booked"
	NotificationTypeAppointmentCancelled = "appointment_cancelled"
	NotificationTypePrescriptionIssued   = "prescription_issued"
	NotificationTypeHealthAlert          = "health_alert"
)

// Fallback consultation hours for doctors without an explicit schedule
// document: weekdays only.
const (
	DefaultScheduleStartTime   = "08:00"
	DefaultScheduleEndTime     = "17:00"
	DefaultSlotDurationMinutes = 30
)

const (
	DateLayoutYYYYMMDD = "2006-01-02"
	TimeLayoutHHMM     = "15:04"
)

const (
	AppPaginationUrlFormat = "%s?page=%d&page_size=%d"
)
