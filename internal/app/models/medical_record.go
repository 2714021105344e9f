package models

// MedicalRecord metadata lives in mongo, the attachment itself in object
// storage under ObjectName.
type MedicalRecord struct {
	ID          string `bson:"_id,omitempty"`
	PatientID   string `bson:"patientId"`
	DoctorID    string `bson:"doctorId"`
	RecordType  string `bson:"recordType"`
	Description string `bson:"description,omitempty"`
	ObjectName  string `bson:"objectName,omitempty"`
	ContentType string `bson:"contentType,omitempty"`
	TimeModel   `bson:",inline"`
}
