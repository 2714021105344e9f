package models

// Session is what we keep in redis for the lifetime of a login, keyed by
// the session ID embedded in the JWT.
type Session struct {
	SessionID string `json:"session_id"`
	UserID    string `json:"user_id"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	DoctorID  string `json:"doctor_id,omitempty"`
}
