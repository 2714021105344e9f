package requests

type CreatePrescription struct {
	PatientID    string `json:"patientId" validate:"required"`
	Medication   string `json:"medication" validate:"required"`
	Dosage       string `json:"dosage" validate:"required"`
	Frequency    string `json:"frequency" validate:"required"`
	DurationDays int    `json:"durationDays" validate:"gt=0"`
	Instructions string `json:"instructions" validate:"max=500"`
}
