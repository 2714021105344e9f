package requests

// CreateMedicalRecord carries the multipart form fields; the attachment
// itself is taken from the form file part.
type CreateMedicalRecord struct {
	PatientID   string `json:"patientId" validate:"required"`
	RecordType  string `json:"recordType" validate:"required"`
	Description string `json:"description" validate:"required,max=1000"`
}
