package responses

type Prescription struct {
	ID           string `json:"id"`
	PatientID    string `json:"patientId"`
	DoctorID     string `json:"doctorId"`
	DoctorName   string `json:"doctorName,omitempty"`
	Medication   string `json:"medication"`
	Dosage       string `json:"dosage"`
	Frequency    string `json:"frequency"`
	DurationDays int    `json:"durationDays"`
	Instructions string `json:"instructions,omitempty"`
	IssuedAt     string `json:"issuedAt"`
}
