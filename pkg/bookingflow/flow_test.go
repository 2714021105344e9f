package bookingflow

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mediconnect-service/pkg/mediconnect"
)

type stubTokens struct {
	token string
}

func (s *stubTokens) Token() string { return s.token }

type stubBooker struct {
	err    error
	called int
	last   *mediconnect.BookAppointmentRequest
}

func (b *stubBooker) BookAppointment(_ context.Context, request *mediconnect.BookAppointmentRequest) (*mediconnect.Appointment, error) {
	b.called++
	b.last = request
	if b.err != nil {
		return nil, b.err
	}
	return &mediconnect.Appointment{
		ID:              "appt-1",
		DoctorID:        request.DoctorID,
		AppointmentDate: request.AppointmentDate,
		AppointmentTime: request.AppointmentTime,
		Status:          "scheduled",
	}, nil
}

var testNow = time.Date(2025, time.June, 10, 9, 0, 0, 0, time.UTC)

func newTestFlow(tokens *stubTokens) *Flow {
	return New(tokens).WithClock(func() time.Time { return testNow })
}

func testDoctor() mediconnect.Doctor {
	return mediconnect.Doctor{ID: "7", Name: "Dr. Amira Hassan", Specialization: "Cardiology"}
}

func testSlot(start string) mediconnect.TimeSlot {
	return mediconnect.TimeSlot{ID: "slot-" + start, DoctorID: "7", SlotDate: "2025-06-12", StartTime: start}
}

func selectThrough(t *testing.T, flow *Flow) SlotRequest {
	t.Helper()
	flow.SelectDoctor(testDoctor())
	request, err := flow.SelectDate(time.Date(2025, time.June, 12, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err, "date inside the window should be selectable")
	return request
}

func TestSelectionResets(t *testing.T) {
	t.Run("Selecting A Doctor Clears Date And Slot", func(t *testing.T) {
		flow := newTestFlow(&stubTokens{token: "tok"})
		request := selectThrough(t, flow)
		require.True(t, flow.DeliverSlots(request, []mediconnect.TimeSlot{testSlot("10:00")}, nil))
		require.NoError(t, flow.SelectTimeSlot(testSlot("10:00")))

		flow.SelectDoctor(mediconnect.Doctor{ID: "8", Name: "Dr. James Okafor"})

		assert.Equal(t, StepChoosingDate, flow.Step(), "wizard should move to date selection")
		assert.Nil(t, flow.Date(), "date should be cleared")
		assert.Nil(t, flow.Slot(), "slot should be cleared")
		assert.Empty(t, flow.Slots(), "fetched slots should be cleared")
	})

	t.Run("Selecting A Date Clears The Slot", func(t *testing.T) {
		flow := newTestFlow(&stubTokens{token: "tok"})
		request := selectThrough(t, flow)
		require.True(t, flow.DeliverSlots(request, []mediconnect.TimeSlot{testSlot("10:00")}, nil))
		require.NoError(t, flow.SelectTimeSlot(testSlot("10:00")))

		_, err := flow.SelectDate(time.Date(2025, time.June, 13, 0, 0, 0, 0, time.UTC))
		require.NoError(t, err)

		assert.Nil(t, flow.Slot(), "slot belongs to the old date and should be cleared")
		assert.Equal(t, StepChoosingTime, flow.Step(), "wizard should be back at time selection")
	})

	t.Run("Date Outside Window Is Rejected", func(t *testing.T) {
		flow := newTestFlow(&stubTokens{token: "tok"})
		flow.SelectDoctor(testDoctor())

		_, err := flow.SelectDate(time.Date(2025, time.June, 18, 0, 0, 0, 0, time.UTC))
		assert.Error(t, err, "today+8 is not bookable")

		_, err = flow.SelectDate(time.Date(2025, time.June, 9, 0, 0, 0, 0, time.UTC))
		assert.Error(t, err, "yesterday is not bookable")
	})

	t.Run("Back Keeps Upstream Selections", func(t *testing.T) {
		flow := newTestFlow(&stubTokens{token: "tok"})
		request := selectThrough(t, flow)
		require.True(t, flow.DeliverSlots(request, []mediconnect.TimeSlot{testSlot("10:00")}, nil))
		require.NoError(t, flow.SelectTimeSlot(testSlot("10:00")))

		flow.Back()
		assert.Equal(t, StepChoosingTime, flow.Step(), "back from confirming lands on time selection")
		assert.NotNil(t, flow.Date(), "date selection should survive back navigation")

		flow.Back()
		assert.Equal(t, StepChoosingDate, flow.Step(), "back from time lands on date selection")
		assert.NotNil(t, flow.Doctor(), "doctor selection should survive back navigation")
	})
}

func TestDeliverSlots(t *testing.T) {
	t.Run("Stale Sequence Is Discarded", func(t *testing.T) {
		flow := newTestFlow(&stubTokens{token: "tok"})
		first := selectThrough(t, flow)
		second, err := flow.SelectDate(time.Date(2025, time.June, 13, 0, 0, 0, 0, time.UTC))
		require.NoError(t, err)

		accepted := flow.DeliverSlots(first, []mediconnect.TimeSlot{testSlot("10:00")}, nil)
		assert.False(t, accepted, "response for the superseded date should be dropped")
		assert.Empty(t, flow.Slots(), "stale slots should not be rendered")

		accepted = flow.DeliverSlots(second, []mediconnect.TimeSlot{testSlot("11:00")}, nil)
		assert.True(t, accepted, "response for the current selection should land")
		assert.Len(t, flow.Slots(), 1)
	})

	t.Run("Response For A Different Doctor Is Discarded", func(t *testing.T) {
		flow := newTestFlow(&stubTokens{token: "tok"})
		request := selectThrough(t, flow)

		mismatched := request
		mismatched.DoctorID = "999"
		assert.False(t, flow.DeliverSlots(mismatched, []mediconnect.TimeSlot{testSlot("10:00")}, nil),
			"response keyed to another doctor should be dropped")
	})

	t.Run("Fetch Failure Shows Retryable Message Without Retrying", func(t *testing.T) {
		flow := newTestFlow(&stubTokens{token: "tok"})
		request := selectThrough(t, flow)

		accepted := flow.DeliverSlots(request, nil, errors.New("boom"))
		assert.True(t, accepted, "a failure for the current request is still delivered")
		assert.Equal(t, RetryableError, flow.Message(), "user should see the generic retryable message")
		assert.Equal(t, StepChoosingTime, flow.Step(), "wizard stays in place; the user reselects the date to retry")
	})
}

func TestSlotSelectable(t *testing.T) {
	flow := newTestFlow(&stubTokens{token: "tok"})
	flow.SelectDoctor(testDoctor())

	t.Run("Past Slot On Today Is Disabled", func(t *testing.T) {
		_, err := flow.SelectDate(testNow)
		require.NoError(t, err)

		assert.False(t, flow.SlotSelectable(testSlot("08:30")), "a slot before now on today's date is in the past")
		assert.True(t, flow.SlotSelectable(testSlot("09:30")), "a slot after now on today's date is selectable")
	})

	t.Run("All Slots On A Future Date Are Selectable", func(t *testing.T) {
		_, err := flow.SelectDate(testNow.AddDate(0, 0, 2))
		require.NoError(t, err)

		assert.True(t, flow.SlotSelectable(testSlot("08:00")), "morning slots two days out are not past")
	})
}

func TestConfirm(t *testing.T) {
	t.Run("Confirm Requires Complete Selection And Token", func(t *testing.T) {
		tokens := &stubTokens{token: ""}
		flow := newTestFlow(tokens)
		request := selectThrough(t, flow)
		require.True(t, flow.DeliverSlots(request, []mediconnect.TimeSlot{testSlot("10:00")}, nil))
		require.NoError(t, flow.SelectTimeSlot(testSlot("10:00")))

		assert.False(t, flow.CanConfirm(), "no session token means confirm is disabled")

		tokens.token = "tok"
		assert.True(t, flow.CanConfirm(), "full selection plus token enables confirm")
	})

	t.Run("Success Resets The Wizard And Flags History", func(t *testing.T) {
		flow := newTestFlow(&stubTokens{token: "tok"})
		request := selectThrough(t, flow)
		require.True(t, flow.DeliverSlots(request, []mediconnect.TimeSlot{testSlot("10:00")}, nil))
		require.NoError(t, flow.SelectTimeSlot(testSlot("10:00")))

		booker := &stubBooker{}
		appointment, err := flow.Confirm(context.Background(), booker, "knee pain")

		require.NoError(t, err)
		assert.Equal(t, "7", appointment.DoctorID)
		assert.Equal(t, "2025-06-12", booker.last.AppointmentDate, "booking payload carries the zero-padded date")
		assert.Equal(t, "10:00", booker.last.AppointmentTime)
		assert.Equal(t, StepChoosingDoctor, flow.Step(), "wizard resets after a successful booking")
		assert.Nil(t, flow.Doctor(), "selections are discarded on reset")
		assert.True(t, flow.HistoryDirty(), "history view should refetch")

		flow.AcknowledgeHistory()
		assert.False(t, flow.HistoryDirty())
	})

	t.Run("Unauthorized Shows Log In Message But Keeps Selection", func(t *testing.T) {
		flow := newTestFlow(&stubTokens{token: "tok"})
		request := selectThrough(t, flow)
		require.True(t, flow.DeliverSlots(request, []mediconnect.TimeSlot{testSlot("10:00")}, nil))
		require.NoError(t, flow.SelectTimeSlot(testSlot("10:00")))

		booker := &stubBooker{err: mediconnect.ErrUnauthorized}
		_, err := flow.Confirm(context.Background(), booker, "")

		assert.ErrorIs(t, err, mediconnect.ErrUnauthorized)
		assert.Equal(t, PleaseLogIn, flow.Message(), "user is told to log in")
		assert.Equal(t, StepConfirming, flow.Step(), "wizard stays on confirmation")
		assert.NotNil(t, flow.Doctor(), "doctor selection is retained")
		assert.NotNil(t, flow.Date(), "date selection is retained")
		assert.NotNil(t, flow.Slot(), "slot selection is retained")
	})

	t.Run("Other Failures Stay Retryable", func(t *testing.T) {
		flow := newTestFlow(&stubTokens{token: "tok"})
		request := selectThrough(t, flow)
		require.True(t, flow.DeliverSlots(request, []mediconnect.TimeSlot{testSlot("10:00")}, nil))
		require.NoError(t, flow.SelectTimeSlot(testSlot("10:00")))

		booker := &stubBooker{err: &mediconnect.APIError{StatusCode: 409, Message: "time slot is already booked"}}
		_, err := flow.Confirm(context.Background(), booker, "")

		assert.Error(t, err)
		assert.Equal(t, RetryableError, flow.Message())
		assert.Equal(t, StepConfirming, flow.Step(), "wizard stays in place for a retry")

		booker.err = nil
		_, err = flow.Confirm(context.Background(), booker, "")
		assert.NoError(t, err, "retrying the same confirmation should work")
		assert.Equal(t, 2, booker.called)
	})
}
