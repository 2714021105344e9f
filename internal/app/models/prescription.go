package models

type Prescription struct {
	ID           string `bson:"_id,omitempty"`
	PatientID    string `bson:"patientId"`
	DoctorID     string `bson:"doctorId"`
	Medication   string `bson:"medication"`
	Dosage       string `bson:"dosage"`
	Frequency    string `bson:"frequency"`
	DurationDays int    `bson:"durationDays"`
	Instructions string `bson:"instructions,omitempty"`
	TimeModel    `bson:",inline"`
}
