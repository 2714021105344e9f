package responses

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

type AvailableTimeSlot struct {
	ID        string `json:"id"`
	DoctorID  string `json:"doctorId"`
	SlotDate  string `json:"slotDate"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}
