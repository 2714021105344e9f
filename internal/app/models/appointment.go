package models

type Appointment struct {
	ID              string `bson:"_id,omitempty"`
	PatientID       string `bson:"patientId"`
	DoctorID        string `bson:"doctorId"`
	TimeSlotID      string `bson:"timeSlotId"`
	AppointmentDate string `bson:"appointmentDate"`
	AppointmentTime string `bson:"appointmentTime"`
	Status          string `bson:"status"`
	Notes           string `bson:"notes,omitempty"`
	TimeModel       `bson:",inline"`
}
