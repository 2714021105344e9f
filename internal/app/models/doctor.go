package models

type Doctor struct {
	ID              string  `bson:"_id,omitempty"`
	Name            string  `bson:"name"`
	Email           string  `bson:"email"`
	Specialization  string  `bson:"specialization"`
	ConsultationFee float64 `bson:"consultationFee"`
	YearsExperience int     `bson:"yearsExperience"`
	Available       bool    `bson:"available"`
	TimeModel       `bson:",inline"`
}
