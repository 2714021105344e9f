package responses

type RegisterUser struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
}

type LoginUser struct {
	Token string `json:"token"`
	Role  string `json:"role"`
}
