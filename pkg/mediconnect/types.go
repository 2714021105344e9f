package mediconnect

// Wire types mirror the server's JSON payloads field for field.

type Doctor struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Specialization  string  `json:"specialization"`
	ConsultationFee float64 `json:"consultationFee"`
	YearsExperience int     `json:"yearsExperience"`
	Available       bool    `json:"available"`
}

type Appointment struct {
	ID              string `json:"id"`
	DoctorID        string `json:"doctorId"`
	DoctorName      string `json:"doctorName,omitempty"`
	PatientID       string `json:"patientId"`
	PatientName     string `json:"patientName,omitempty"`
	AppointmentDate string `json:"appointmentDate"`
	AppointmentTime string `json:"appointmentTime"`
	Status          string `json:"status"`
	Notes           string `json:"notes,omitempty"`
}

type TimeSlot struct {
	ID        string `json:"id"`
	DoctorID  string `json:"doctorId"`
	SlotDate  string `json:"slotDate"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

type Notification struct {
	ID        string `json:"id"`
	Type      string `json:"type"`
	Message   string `json:"message"`
	Read      bool   `json:"read"`
	CreatedAt string `json:"createdAt"`
}

type HealthTip struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Content  string `json:"content"`
	Category string `json:"category"`
}

type LoginResult struct {
	Token string `json:"token"`
	Role  string `json:"role"`
}

type RegisterRequest struct {
	Email          string `json:"email"`
	Username       string `json:"username"`
	Password       string `json:"password"`
	RetypePassword string `json:"retypePassword"`
	FullName       string `json:"fullName"`
	Role           string `json:"role,omitempty"`
}

type BookAppointmentRequest struct {
	DoctorID        string `json:"doctorId"`
	AppointmentDate string `json:"appointmentDate"`
	AppointmentTime string `json:"appointmentTime"`
	Notes           string `json:"notes,omitempty"`
}

// InitialData is everything the booking UI needs before first paint.
type InitialData struct {
	Doctors  []Doctor
	Upcoming []Appointment
	History  []Appointment
}
