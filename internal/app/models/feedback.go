package models

type Feedback struct {
	ID        string `bson:"_id,omitempty"`
	PatientID string `bson:"patientId"`
	Rating    int    `bson:"rating"`
	Subject   string `bson:"subject"`
	Message   string `bson:"message"`
	TimeModel `bson:",inline"`
}

type HealthTip struct {
	ID        string `bson:"_id,omitempty"`
	Title     string `bson:"title"`
	Content   string `bson:"content"`
	Category  string `bson:"category,omitempty"`
	TimeModel `bson:",inline"`
}
