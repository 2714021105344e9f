package requests

type RegisterUser struct {
	Email          string `json:"email" validate:"required,email"`
	Username       string `json:"username" validate:"required,alphanum,min=4,max=20"`
	Password       string `json:"password" validate:"password"`
	RetypePassword string `json:"retypePassword"`
	FullName       string `json:"fullName" validate:"required"`
	Role           string `json:"role" validate:"omitempty,oneof=patient doctor admin"`
}

type LoginUser struct {
	Username string `json:"username" validate:"required,alphanum,min=4"`
	Password string `json:"password" validate:"required,min=8"`
}
