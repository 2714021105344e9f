// Command bookingdemo drives the booking wizard end to end against a
// simulated slot source and booking backend, printing each transition.
// Useful for eyeballing the wizard's behaviour without a running API.
package main

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"

	"mediconnect-service/pkg/bookingflow"
	"mediconnect-service/pkg/calendar"
	"mediconnect-service/pkg/mediconnect"
)

var demoDoctors = []mediconnect.Doctor{
	{ID: "1", Name: "Dr. Amira Hassan", Specialization: "Cardiology", ConsultationFee: 150, YearsExperience: 12, Available: true},
	{ID: "2", Name: "Dr. James Okafor", Specialization: "Dermatology", ConsultationFee: 110, YearsExperience: 8, Available: true},
	{ID: "3", Name: "Dr. Lena Petrova", Specialization: "Pediatrics", ConsultationFee: 95, YearsExperience: 15, Available: true},
}

// simSlots fabricates a day of half-hour slots with a random subset
// already booked.
func simSlots(rng *rand.Rand, doctorID string, date time.Time) []mediconnect.TimeSlot {
	var slots []mediconnect.TimeSlot
	day := date.Format("2006-01-02")
	for hour := 8; hour < 17; hour++ {
		for _, minute := range []int{0, 30} {
			if rng.Intn(4) == 0 {
				continue
			}
			start := fmt.Sprintf("%02d:%02d", hour, minute)
			endMinute := minute + 30
			endHour := hour
			if endMinute == 60 {
				endMinute = 0
				endHour++
			}
			slots = append(slots, mediconnect.TimeSlot{
				ID:        fmt.Sprintf("slot-%s-%s", doctorID, start),
				DoctorID:  doctorID,
				SlotDate:  day,
				StartTime: start,
				EndTime:   fmt.Sprintf("%02d:%02d", endHour, endMinute),
			})
		}
	}
	return slots
}

// simBooker accepts most bookings and rejects the rest as conflicts.
type simBooker struct {
	rng *rand.Rand
}

func (b *simBooker) BookAppointment(_ context.Context, request *mediconnect.BookAppointmentRequest) (*mediconnect.Appointment, error) {
	if b.rng.Intn(5) == 0 {
		return nil, &mediconnect.APIError{StatusCode: 409, Message: "time slot is already booked"}
	}
	return &mediconnect.Appointment{
		ID:              fmt.Sprintf("appt-%04d", b.rng.Intn(10000)),
		DoctorID:        request.DoctorID,
		AppointmentDate: request.AppointmentDate,
		AppointmentTime: request.AppointmentTime,
		Status:          "scheduled",
		Notes:           request.Notes,
	}, nil
}

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	store := mediconnect.NewMemoryStore()
	if err := store.Save("demo-token", "patient"); err != nil {
		log.Fatalf("seeding session: %v", err)
	}

	flow := bookingflow.New(store)
	now := time.Now()

	grid := calendar.MonthGrid(now.Year(), int(now.Month())-1, nil, now)
	bookable := 0
	for _, day := range grid {
		if day.IsAvailable {
			bookable++
		}
	}
	log.Infof("calendar for %s: %d cells, %d bookable days", now.Format("January 2006"), len(grid), bookable)

	doctor := demoDoctors[rng.Intn(len(demoDoctors))]
	flow.SelectDoctor(doctor)
	log.Infof("selected doctor %s (%s), step=%s", doctor.Name, doctor.Specialization, flow.Step())

	date := calendar.Midnight(now.AddDate(0, 0, 1+rng.Intn(calendar.WindowDays)))
	request, err := flow.SelectDate(date)
	if err != nil {
		log.Fatalf("selecting date: %v", err)
	}
	log.Infof("selected date %s, step=%s", date.Format("2006-01-02"), flow.Step())

	// A response for a superseded request must be dropped on the floor.
	stale := bookingflow.SlotRequest{Seq: request.Seq - 1, DoctorID: doctor.ID, Date: date}
	if flow.DeliverSlots(stale, simSlots(rng, doctor.ID, date), nil) {
		log.Fatal("stale slot response was accepted")
	}
	log.Info("stale slot response discarded")

	if !flow.DeliverSlots(request, simSlots(rng, doctor.ID, date), nil) {
		log.Fatal("current slot response was discarded")
	}
	log.Infof("received %d slots", len(flow.Slots()))

	var picked *mediconnect.TimeSlot
	for _, slot := range flow.Slots() {
		if flow.SlotSelectable(slot) {
			s := slot
			picked = &s
			break
		}
	}
	if picked == nil {
		log.Fatal("no selectable slot for the chosen day")
	}
	if err := flow.SelectTimeSlot(*picked); err != nil {
		log.Fatalf("selecting slot: %v", err)
	}
	log.Infof("selected slot %s, step=%s, canConfirm=%v", picked.StartTime, flow.Step(), flow.CanConfirm())

	appointment, err := flow.Confirm(context.Background(), &simBooker{rng: rng}, "demo booking")
	if err != nil {
		log.Warnf("booking failed: %v (message shown: %q)", err, flow.Message())
		return
	}
	log.Infof("booked appointment %s on %s at %s, wizard reset to step=%s, historyDirty=%v",
		appointment.ID, appointment.AppointmentDate, appointment.AppointmentTime, flow.Step(), flow.HistoryDirty())
}
