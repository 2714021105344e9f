package responses

type Feedback struct {
	ID        string `json:"id"`
	UserID    string `json:"userId"`
	Rating    int    `json:"rating"`
	Subject   string `json:"subject"`
	Message   string `json:"message"`
	CreatedAt string `json:"createdAt"`
}
