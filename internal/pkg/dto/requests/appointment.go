package requests

// BookAppointment mirrors the booking form payload: date as YYYY-MM-DD,
// time as HH:MM (24h).
type BookAppointment struct {
	DoctorID        string `json:"doctorId" validate:"required"`
	AppointmentDate string `json:"appointmentDate" validate:"required"`
	AppointmentTime string `json:"appointmentTime" validate:"required"`
	Notes           string `json:"notes" validate:"max=500"`
}

type AvailableSlots struct {
	DoctorID string
	Date     string
}
