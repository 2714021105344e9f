package models

type User struct {
	ID        string `bson:"_id,omitempty"`
	Email     string `bson:"email"`
	Username  string `bson:"username"`
	Password  string `bson:"password"`
	FullName  string `bson:"fullName"`
	Role      string `bson:"role"`
	DoctorID  string `bson:"doctorId,omitempty"`
	TimeModel `bson:",inline"`
}
