package responses

type Doctor struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Specialization  string  `json:"specialization"`
	ConsultationFee float64 `json:"consultationFee"`
	YearsExperience int     `json:"yearsExperience"`
	Available       bool    `json:"available"`
}
