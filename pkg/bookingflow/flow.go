// Package bookingflow models the appointment booking wizard as an
// explicit state machine: pick a doctor, pick a date, pick a time,
// confirm. Downstream selections are cleared whenever an upstream one
// changes, and slot responses that no longer match the current
// selection are discarded instead of rendering stale data.
package bookingflow

import (
	"context"
	"errors"
	"fmt"
	"time"

	"mediconnect-service/pkg/calendar"
	"mediconnect-service/pkg/mediconnect"
)

// Step is the wizard's current position.
type Step int

const (
	StepChoosingDoctor Step = iota
	StepChoosingDate
	StepChoosingTime
	StepConfirming
)

func (s Step) String() string {
	switch s {
	case StepChoosingDoctor:
		return "choosing_doctor"
	case StepChoosingDate:
		return "choosing_date"
	case StepChoosingTime:
		return "choosing_time"
	case StepConfirming:
		return "confirming"
	default:
		return fmt.Sprintf("step(%d)", int(s))
	}
}

// PleaseLogIn is shown when a booking request comes back 401.
const PleaseLogIn = "please log in"

// RetryableError is shown for any other booking failure.
const RetryableError = "something went wrong, please try again"

// SlotRequest identifies one slot fetch. Seq increases with every
// date selection so late responses for superseded selections can be
// recognized and dropped.
type SlotRequest struct {
	Seq      uint64
	DoctorID string
	Date     time.Time
}

// Booker submits a confirmed booking. *mediconnect.Client satisfies it.
type Booker interface {
	BookAppointment(ctx context.Context, request *mediconnect.BookAppointmentRequest) (*mediconnect.Appointment, error)
}

// TokenSource reports whether a session token is present. A
// mediconnect.SessionStore satisfies it.
type TokenSource interface {
	Token() string
}

// Flow is the wizard state. Not safe for concurrent use; drive it from
// a single goroutine the way a UI event loop would.
type Flow struct {
	step         Step
	doctor       *mediconnect.Doctor
	date         *time.Time
	slot         *mediconnect.TimeSlot
	slots        []mediconnect.TimeSlot
	seq          uint64
	message      string
	tokens       TokenSource
	now          func() time.Time
	submits      int
	historyDirty bool
}

// New builds a wizard at the doctor-selection step.
func New(tokens TokenSource) *Flow {
	return &Flow{
		step:   StepChoosingDoctor,
		tokens: tokens,
		now:    time.Now,
	}
}

// WithClock overrides the wizard's clock. Intended for tests.
func (f *Flow) WithClock(now func() time.Time) *Flow {
	f.now = now
	return f
}

func (f *Flow) Step() Step                    { return f.step }
func (f *Flow) Doctor() *mediconnect.Doctor   { return f.doctor }
func (f *Flow) Date() *time.Time              { return f.date }
func (f *Flow) Slot() *mediconnect.TimeSlot   { return f.slot }
func (f *Flow) Slots() []mediconnect.TimeSlot { return f.slots }
func (f *Flow) Message() string               { return f.message }
func (f *Flow) SubmittedCount() int           { return f.submits }

// HistoryDirty reports whether a booking succeeded since the last
// AcknowledgeHistory, signalling the history view to refetch.
func (f *Flow) HistoryDirty() bool { return f.historyDirty }

// AcknowledgeHistory clears the refetch signal.
func (f *Flow) AcknowledgeHistory() { f.historyDirty = false }

// SelectDoctor chooses a doctor and clears any previously selected
// date and slot, which belong to the old doctor.
func (f *Flow) SelectDoctor(doctor mediconnect.Doctor) {
	f.doctor = &doctor
	f.date = nil
	f.slot = nil
	f.slots = nil
	f.message = ""
	f.step = StepChoosingDate
}

// SelectDate chooses a date and clears the slot selection. It returns
// the SlotRequest the caller should fetch; delivering the result back
// through DeliverSlots keeps out-of-order responses from landing.
// Dates outside the availability window are rejected.
func (f *Flow) SelectDate(date time.Time) (SlotRequest, error) {
	if f.doctor == nil {
		return SlotRequest{}, errors.New("bookingflow: no doctor selected")
	}
	if !calendar.InWindow(date, f.now()) {
		return SlotRequest{}, errors.New("bookingflow: date outside availability window")
	}

	day := calendar.Midnight(date)
	f.date = &day
	f.slot = nil
	f.slots = nil
	f.message = ""
	f.seq++
	f.step = StepChoosingTime
	return SlotRequest{Seq: f.seq, DoctorID: f.doctor.ID, Date: day}, nil
}

// DeliverSlots hands a slot fetch result back to the wizard. Responses
// whose request no longer matches the current selection are discarded
// and the method reports false. A failed fetch leaves the wizard in
// place with a retryable message; it is never retried automatically.
func (f *Flow) DeliverSlots(request SlotRequest, slots []mediconnect.TimeSlot, err error) bool {
	if request.Seq != f.seq {
		return false
	}
	if f.doctor == nil || f.date == nil {
		return false
	}
	if request.DoctorID != f.doctor.ID || !calendar.SameDay(request.Date, *f.date) {
		return false
	}

	if err != nil {
		f.slots = nil
		f.message = RetryableError
		return true
	}
	f.slots = slots
	f.message = ""
	return true
}

// SlotSelectable reports whether a slot can be picked: it must not be
// booked already and must not have started in the past. Past-ness is
// the slot's start time on the selected date compared to now.
func (f *Flow) SlotSelectable(slot mediconnect.TimeSlot) bool {
	if f.date == nil {
		return false
	}
	start, err := time.ParseInLocation("15:04", slot.StartTime, f.date.Location())
	if err != nil {
		return false
	}
	startAt := time.Date(
		f.date.Year(), f.date.Month(), f.date.Day(),
		start.Hour(), start.Minute(), 0, 0, f.date.Location(),
	)
	return startAt.After(f.now())
}

// SelectTimeSlot chooses a slot and moves to confirmation.
func (f *Flow) SelectTimeSlot(slot mediconnect.TimeSlot) error {
	if f.date == nil {
		return errors.New("bookingflow: no date selected")
	}
	if !f.SlotSelectable(slot) {
		return errors.New("bookingflow: slot is unavailable")
	}
	f.slot = &slot
	f.message = ""
	f.step = StepConfirming
	return nil
}

// Back moves one step toward doctor selection. Upstream selections are
// kept so the user can step forward again without re-entering them.
func (f *Flow) Back() {
	switch f.step {
	case StepConfirming:
		f.step = StepChoosingTime
	case StepChoosingTime:
		f.step = StepChoosingDate
	case StepChoosingDate:
		f.step = StepChoosingDoctor
	}
}

// CanConfirm reports whether the confirm action is enabled: a full
// doctor/date/slot selection plus a present session token.
func (f *Flow) CanConfirm() bool {
	return f.step == StepConfirming &&
		f.doctor != nil && f.date != nil && f.slot != nil &&
		f.tokens.Token() != ""
}

// Confirm submits the booking. On success the wizard resets to the
// doctor step and flags the history view for a refetch. A 401 leaves
// the selection in memory but shows the log-in message, since the
// session store has already been cleared. Any other failure keeps the
// wizard on the confirmation step with a retryable message.
func (f *Flow) Confirm(ctx context.Context, booker Booker, notes string) (*mediconnect.Appointment, error) {
	if !f.CanConfirm() {
		f.message = RetryableError
		return nil, errors.New("bookingflow: confirmation requires a complete selection and a session")
	}

	request := &mediconnect.BookAppointmentRequest{
		DoctorID:        f.doctor.ID,
		AppointmentDate: f.date.Format("2006-01-02"),
		AppointmentTime: f.slot.StartTime,
		Notes:           notes,
	}
	appointment, err := booker.BookAppointment(ctx, request)
	if err != nil {
		if errors.Is(err, mediconnect.ErrUnauthorized) {
			f.message = PleaseLogIn
		} else {
			f.message = RetryableError
		}
		return nil, err
	}

	f.submits++
	f.historyDirty = true
	f.Reset()
	return appointment, nil
}

// Reset discards every selection and returns to the doctor step.
func (f *Flow) Reset() {
	f.doctor = nil
	f.date = nil
	f.slot = nil
	f.slots = nil
	f.message = ""
	f.step = StepChoosingDoctor
}
