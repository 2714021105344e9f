package constvars

const (
	// Generic messages
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"
	ResponseError   = "error"

	// Auth messages
	RegisterSuccess = "user registered successfully"
	LoginSuccess    = "successfully login"
	LogoutSuccess   = "successfully logout"

	// Doctor messages
	GetDoctorsSuccess = "get doctors successfully"
	GetDoctorSuccess  = "get doctor successfully"

	// Appointment messages
	GetAppointmentsSuccess   = "get appointments successfully"
	GetAvailableSlotsSuccess = "get available time slots successfully"
	BookAppointmentSuccess   = "appointment booked successfully"
	CancelAppointmentSuccess = "appointment cancelled successfully"

	// Notification messages
	GetNotificationsSuccess    = "get notifications successfully"
	NotificationReadSuccess    = "notification marked as read"
	NotificationsAllReadSucess = "all notifications marked as read"

	// Prescription messages
	GetPrescriptionsSuccess   = "get prescriptions successfully"
	CreatePrescriptionSuccess = "prescription created successfully"

	// Medical record messages
	GetMedicalRecordsSuccess     = "get medical records successfully"
	CreateMedicalRecordSuccess   = "medical record created successfully"
	DownloadMedicalRecordSuccess = "get medical record download link successfully"

	// Feedback messages
	GetFeedbackSuccess    = "get feedback successfully"
	SubmitFeedbackSuccess = "feedback submitted successfully"

	// Health tip messages
	GetHealthTipsSuccess = "get health tips successfully"
)
