package models

import "time"

// DoctorSchedule is the weekly recurring availability for one doctor:
// one document per (doctor, weekday).
type DoctorSchedule struct {
	ID                  string       `bson:"_id,omitempty"`
	DoctorID            string       `bson:"doctorId"`
	DayOfWeek           time.Weekday `bson:"dayOfWeek"`
	StartTime           string       `bson:"startTime"`
	EndTime             string       `bson:"endTime"`
	SlotDurationMinutes int          `bson:"slotDurationMinutes"`
	Available           bool         `bson:"available"`
	TimeModel           `bson:",inline"`
}

type TimeSlot struct {
	ID        string `bson:"_id,omitempty"`
	DoctorID  string `bson:"doctorId"`
	SlotDate  string `bson:"slotDate"`
	StartTime string `bson:"startTime"`
	EndTime   string `bson:"endTime"`
	IsBooked  bool   `bson:"isBooked"`
	TimeModel `bson:",inline"`
}
