package responses

type MedicalRecord struct {
	ID          string `json:"id"`
	PatientID   string `json:"patientId"`
	DoctorID    string `json:"doctorId,omitempty"`
	RecordType  string `json:"recordType"`
	Description string `json:"description"`
	FileName    string `json:"fileName,omitempty"`
	CreatedAt   string `json:"createdAt"`
}

type MedicalRecordDownload struct {
	URL string `json:"url"`
}
