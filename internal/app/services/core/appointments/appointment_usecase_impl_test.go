package appointments

import (
	"context"
	"fmt"
	"mediconnect-service/internal/app/config"
	"mediconnect-service/internal/app/contracts"
	"mediconnect-service/internal/app/models"
	"mediconnect-service/internal/pkg/constvars"
	"mediconnect-service/internal/pkg/dto/requests"
	"mediconnect-service/internal/pkg/dto/responses"
	"mediconnect-service/internal/pkg/exceptions"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeSlotRepository struct {
	byStart map[string]*models.TimeSlot
}

func slotLookupKey(doctorID, date, startTime string) string {
	return doctorID + "|" + date + "|" + startTime
}

func (r *fakeSlotRepository) FindByDoctorIDAndDate(_ context.Context, _, _ string) ([]models.TimeSlot, error) {
	return nil, nil
}

func (r *fakeSlotRepository) FindByID(_ context.Context, slotID string) (*models.TimeSlot, error) {
	for _, slot := range r.byStart {
		if slot.ID == slotID {
			return slot, nil
		}
	}
	return nil, nil
}

func (r *fakeSlotRepository) FindByDoctorDateAndStartTime(_ context.Context, doctorID, date, startTime string) (*models.TimeSlot, error) {
	slot, ok := r.byStart[slotLookupKey(doctorID, date, startTime)]
	if !ok {
		return nil, nil
	}
	copied := *slot
	return &copied, nil
}

func (r *fakeSlotRepository) CreateSlots(_ context.Context, _ []models.TimeSlot) error {
	return nil
}

func (r *fakeSlotRepository) MarkBooked(_ context.Context, slotID string) (bool, error) {
	for _, slot := range r.byStart {
		if slot.ID == slotID {
			if slot.IsBooked {
				return false, nil
			}
			slot.IsBooked = true
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeSlotRepository) MarkFree(_ context.Context, slotID string) error {
	for _, slot := range r.byStart {
		if slot.ID == slotID {
			slot.IsBooked = false
		}
	}
	return nil
}

type fakeSlotUsecase struct{}

func (u *fakeSlotUsecase) GetAvailableSlots(_ context.Context, _, _ string) ([]responses.AvailableTimeSlot, error) {
	return nil, nil
}

type fakeDoctorRepository struct {
	doctors map[string]*models.Doctor
}

func (r *fakeDoctorRepository) FindAll(_ context.Context, _ string, _, _ int) ([]models.Doctor, int64, error) {
	return nil, 0, nil
}

func (r *fakeDoctorRepository) FindByID(_ context.Context, doctorID string) (*models.Doctor, error) {
	return r.doctors[doctorID], nil
}

func (r *fakeDoctorRepository) CreateDoctor(_ context.Context, _ *models.Doctor) (string, error) {
	return "", nil
}

func (r *fakeDoctorRepository) UpdateDoctor(_ context.Context, _ *models.Doctor) error {
	return nil
}

type fakeRedisRepository struct {
	locks   map[string]bool
	deleted []string
}

func newFakeRedisRepository() *fakeRedisRepository {
	return &fakeRedisRepository{locks: map[string]bool{}}
}

func (r *fakeRedisRepository) Delete(_ context.Context, key string) error {
	r.deleted = append(r.deleted, key)
	delete(r.locks, key)
	return nil
}

func (r *fakeRedisRepository) Set(_ context.Context, _ string, _ interface{}, _ time.Duration) error {
	return nil
}

func (r *fakeRedisRepository) Get(_ context.Context, _ string) (string, error) {
	return "", nil
}

func (r *fakeRedisRepository) Increment(_ context.Context, _ string) error {
	return nil
}

func (r *fakeRedisRepository) TrySetNX(_ context.Context, key string, _ interface{}, _ time.Duration) (bool, error) {
	if r.locks[key] {
		return false, nil
	}
	r.locks[key] = true
	return true, nil
}

type fakeAppointmentRepository struct {
	appointments map[string]*models.Appointment
	nextID       int
	insertErr    error
}

func newFakeAppointmentRepository() *fakeAppointmentRepository {
	return &fakeAppointmentRepository{appointments: map[string]*models.Appointment{}, nextID: 1}
}

func (r *fakeAppointmentRepository) CreateAppointment(_ context.Context, appointmentModel *models.Appointment) (string, error) {
	if r.insertErr != nil {
		return "", r.insertErr
	}
	id := fmt.Sprintf("appt-%d", r.nextID)
	r.nextID++
	stored := *appointmentModel
	stored.ID = id
	r.appointments[id] = &stored
	return id, nil
}

func (r *fakeAppointmentRepository) FindByID(_ context.Context, appointmentID string) (*models.Appointment, error) {
	appointment, ok := r.appointments[appointmentID]
	if !ok {
		return nil, nil
	}
	copied := *appointment
	return &copied, nil
}

func (r *fakeAppointmentRepository) FindUpcomingByPatientID(_ context.Context, _, _ string) ([]models.Appointment, error) {
	return nil, nil
}

func (r *fakeAppointmentRepository) FindHistoryByPatientID(_ context.Context, _, _ string) ([]models.Appointment, error) {
	return nil, nil
}

func (r *fakeAppointmentRepository) FindUpcomingByDoctorID(_ context.Context, _, _ string) ([]models.Appointment, error) {
	return nil, nil
}

func (r *fakeAppointmentRepository) UpdateAppointment(_ context.Context, appointmentModel *models.Appointment) error {
	r.appointments[appointmentModel.ID] = appointmentModel
	return nil
}

type fakePublisher struct {
	events []*contracts.NotificationEvent
}

func (p *fakePublisher) Publish(_ context.Context, event *contracts.NotificationEvent) error {
	p.events = append(p.events, event)
	return nil
}

type bookingFixture struct {
	usecase         *appointmentUsecase
	slotRepo        *fakeSlotRepository
	appointmentRepo *fakeAppointmentRepository
	redisRepo       *fakeRedisRepository
	publisher       *fakePublisher
	date            string
	session         *models.Session
}

func newBookingFixture() *bookingFixture {
	date := time.Now().AddDate(0, 0, 1).Format(constvars.DateLayoutYYYYMMDD)
	slotRepo := &fakeSlotRepository{byStart: map[string]*models.TimeSlot{
		slotLookupKey("doc-1", date, "10:00"): {
			ID: "slot-1", DoctorID: "doc-1", SlotDate: date, StartTime: "10:00", EndTime: "10:30",
		},
	}}
	appointmentRepo := newFakeAppointmentRepository()
	redisRepo := newFakeRedisRepository()
	publisher := &fakePublisher{}

	usecase := &appointmentUsecase{
		AppointmentRepository: appointmentRepo,
		SlotRepository:        slotRepo,
		SlotUsecase:           &fakeSlotUsecase{},
		DoctorRepository: &fakeDoctorRepository{doctors: map[string]*models.Doctor{
			"doc-1": {ID: "doc-1", Name: "Dr. Amira Hassan", Available: true},
		}},
		RedisRepository:       redisRepo,
		NotificationPublisher: publisher,
		InternalConfig:        &config.InternalConfig{App: config.App{SlotCacheTTLInSeconds: 30}},
		Log:                   zap.NewNop(),
	}

	return &bookingFixture{
		usecase:         usecase,
		slotRepo:        slotRepo,
		appointmentRepo: appointmentRepo,
		redisRepo:       redisRepo,
		publisher:       publisher,
		date:            date,
		session:         &models.Session{SessionID: "sess-1", UserID: "patient-1", Role: constvars.MediConnectRolePatient},
	}
}

func (f *bookingFixture) bookRequest() *requests.BookAppointment {
	return &requests.BookAppointment{
		DoctorID:        "doc-1",
		AppointmentDate: f.date,
		AppointmentTime: "10:00",
		Notes:           "knee pain",
	}
}

func TestBookAppointment(t *testing.T) {
	t.Run("Successful Booking", func(t *testing.T) {
		f := newBookingFixture()

		appointment, err := f.usecase.BookAppointment(context.Background(), f.session, f.bookRequest())

		require.NoError(t, err)
		assert.Equal(t, constvars.AppointmentStatusScheduled, appointment.Status)
		assert.Equal(t, "Dr. Amira Hassan", appointment.DoctorName)
		assert.Equal(t, "patient-1", appointment.PatientID)

		slot, _ := f.slotRepo.FindByID(context.Background(), "slot-1")
		assert.True(t, slot.IsBooked, "the slot should be flipped to booked")

		require.Len(t, f.publisher.events, 1, "booking should publish one notification event")
		assert.Equal(t, constvars.NotificationTypeAppointmentBooked, f.publisher.events[0].Type)
		assert.Equal(t, "patient-1", f.publisher.events[0].UserID)

		cacheKey := fmt.Sprintf(constvars.RedisSlotCacheKeyFormat, "doc-1", f.date)
		assert.Contains(t, f.redisRepo.deleted, cacheKey, "slot cache should be invalidated")

		lockKey := fmt.Sprintf(constvars.RedisBookingLockKeyFormat, "doc-1", f.date, "10:00")
		assert.Contains(t, f.redisRepo.deleted, lockKey, "booking lock should be released")
	})

	t.Run("Already Booked Slot Returns Conflict", func(t *testing.T) {
		f := newBookingFixture()
		_, err := f.usecase.BookAppointment(context.Background(), f.session, f.bookRequest())
		require.NoError(t, err)

		_, err = f.usecase.BookAppointment(context.Background(), f.session, f.bookRequest())

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusConflict, customErr.StatusCode, "double booking should return 409")
		assert.Len(t, f.publisher.events, 1, "the failed booking should not publish")
	})

	t.Run("Held Booking Lock Returns Conflict", func(t *testing.T) {
		f := newBookingFixture()
		lockKey := fmt.Sprintf(constvars.RedisBookingLockKeyFormat, "doc-1", f.date, "10:00")
		f.redisRepo.locks[lockKey] = true

		_, err := f.usecase.BookAppointment(context.Background(), f.session, f.bookRequest())

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusConflict, customErr.StatusCode, "a concurrent booking in flight should return 409")
	})

	t.Run("Missing Slot Returns Not Found", func(t *testing.T) {
		f := newBookingFixture()
		request := f.bookRequest()
		request.AppointmentTime = "23:30"

		_, err := f.usecase.BookAppointment(context.Background(), f.session, request)

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
	})

	t.Run("Unknown Doctor Returns Not Found", func(t *testing.T) {
		f := newBookingFixture()
		request := f.bookRequest()
		request.DoctorID = "doc-404"

		_, err := f.usecase.BookAppointment(context.Background(), f.session, request)

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
	})

	t.Run("Date Outside Window Is Rejected", func(t *testing.T) {
		f := newBookingFixture()
		request := f.bookRequest()
		request.AppointmentDate = time.Now().AddDate(0, 0, 9).Format(constvars.DateLayoutYYYYMMDD)

		_, err := f.usecase.BookAppointment(context.Background(), f.session, request)

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
	})

	t.Run("Insert Failure Frees The Slot Again", func(t *testing.T) {
		f := newBookingFixture()
		f.appointmentRepo.insertErr = exceptions.ErrMongoDBInsertDocument(nil)

		_, err := f.usecase.BookAppointment(context.Background(), f.session, f.bookRequest())

		assert.Error(t, err)
		slot, _ := f.slotRepo.FindByID(context.Background(), "slot-1")
		assert.False(t, slot.IsBooked, "the slot flip should be rolled back")
	})
}

func TestCancelAppointment(t *testing.T) {
	book := func(t *testing.T, f *bookingFixture) string {
		t.Helper()
		appointment, err := f.usecase.BookAppointment(context.Background(), f.session, f.bookRequest())
		require.NoError(t, err)
		return appointment.ID
	}

	t.Run("Owner Cancels A Scheduled Appointment", func(t *testing.T) {
		f := newBookingFixture()
		appointmentID := book(t, f)

		err := f.usecase.CancelAppointment(context.Background(), f.session, appointmentID)

		require.NoError(t, err)
		stored, _ := f.appointmentRepo.FindByID(context.Background(), appointmentID)
		assert.Equal(t, constvars.AppointmentStatusCancelled, stored.Status)

		slot, _ := f.slotRepo.FindByID(context.Background(), "slot-1")
		assert.False(t, slot.IsBooked, "cancelling should free the slot")

		require.Len(t, f.publisher.events, 2, "booking and cancellation should each publish")
		assert.Equal(t, constvars.NotificationTypeAppointmentCancelled, f.publisher.events[1].Type)
	})

	t.Run("Non Owner Cannot Cancel", func(t *testing.T) {
		f := newBookingFixture()
		appointmentID := book(t, f)

		stranger := &models.Session{SessionID: "sess-2", UserID: "patient-2", Role: constvars.MediConnectRolePatient}
		err := f.usecase.CancelAppointment(context.Background(), stranger, appointmentID)

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode, "foreign appointments should look like they do not exist")
	})

	t.Run("Cancelled Appointment Cannot Be Cancelled Again", func(t *testing.T) {
		f := newBookingFixture()
		appointmentID := book(t, f)
		require.NoError(t, f.usecase.CancelAppointment(context.Background(), f.session, appointmentID))

		err := f.usecase.CancelAppointment(context.Background(), f.session, appointmentID)

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
	})

	t.Run("Unknown Appointment Returns Not Found", func(t *testing.T) {
		f := newBookingFixture()

		err := f.usecase.CancelAppointment(context.Background(), f.session, "appt-404")

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
	})
}
