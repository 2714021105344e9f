package requests

type SubmitFeedback struct {
	Rating  int    `json:"rating" validate:"required,gte=1,lte=5"`
	Subject string `json:"subject" validate:"required,max=120"`
	Message string `json:"message" validate:"required,max=1000"`
}
