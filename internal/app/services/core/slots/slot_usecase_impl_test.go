package slots

import (
	"context"
	"fmt"
	"mediconnect-service/internal/app/config"
	"mediconnect-service/internal/app/models"
	"mediconnect-service/internal/pkg/constvars"
	"mediconnect-service/internal/pkg/exceptions"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeSlotRepository struct {
	slots     map[string][]models.TimeSlot
	nextID    int
	findCalls int
}

func newFakeSlotRepository() *fakeSlotRepository {
	return &fakeSlotRepository{slots: map[string][]models.TimeSlot{}, nextID: 1}
}

func slotKey(doctorID, date string) string {
	return doctorID + "|" + date
}

func (r *fakeSlotRepository) FindByDoctorIDAndDate(_ context.Context, doctorID, date string) ([]models.TimeSlot, error) {
	r.findCalls++
	return r.slots[slotKey(doctorID, date)], nil
}

func (r *fakeSlotRepository) FindByID(_ context.Context, slotID string) (*models.TimeSlot, error) {
	for _, daySlots := range r.slots {
		for _, slot := range daySlots {
			if slot.ID == slotID {
				s := slot
				return &s, nil
			}
		}
	}
	return nil, nil
}

func (r *fakeSlotRepository) FindByDoctorDateAndStartTime(_ context.Context, doctorID, date, startTime string) (*models.TimeSlot, error) {
	for _, slot := range r.slots[slotKey(doctorID, date)] {
		if slot.StartTime == startTime {
			s := slot
			return &s, nil
		}
	}
	return nil, nil
}

func (r *fakeSlotRepository) CreateSlots(_ context.Context, slotModels []models.TimeSlot) error {
	for i := range slotModels {
		slotModels[i].ID = fmt.Sprintf("slot-%d", r.nextID)
		r.nextID++
		key := slotKey(slotModels[i].DoctorID, slotModels[i].SlotDate)
		r.slots[key] = append(r.slots[key], slotModels[i])
	}
	return nil
}

func (r *fakeSlotRepository) MarkBooked(_ context.Context, slotID string) (bool, error) {
	for key, daySlots := range r.slots {
		for i, slot := range daySlots {
			if slot.ID == slotID {
				if slot.IsBooked {
					return false, nil
				}
				r.slots[key][i].IsBooked = true
				return true, nil
			}
		}
	}
	return false, nil
}

func (r *fakeSlotRepository) MarkFree(_ context.Context, slotID string) error {
	for key, daySlots := range r.slots {
		for i, slot := range daySlots {
			if slot.ID == slotID {
				r.slots[key][i].IsBooked = false
			}
		}
	}
	return nil
}

type fakeScheduleRepository struct {
	byDay map[time.Weekday]*models.DoctorSchedule
}

func (r *fakeScheduleRepository) FindByDoctorID(_ context.Context, _ string) ([]models.DoctorSchedule, error) {
	return nil, nil
}

func (r *fakeScheduleRepository) FindByDoctorIDAndDay(_ context.Context, _ string, day time.Weekday) (*models.DoctorSchedule, error) {
	if r.byDay == nil {
		return nil, nil
	}
	return r.byDay[day], nil
}

func (r *fakeScheduleRepository) CreateSchedule(_ context.Context, _ *models.DoctorSchedule) (string, error) {
	return "", nil
}

func (r *fakeScheduleRepository) UpdateSchedule(_ context.Context, _ *models.DoctorSchedule) error {
	return nil
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
	values map[string]string
	locks  map[string]bool
}

func newFakeRedisRepository() *fakeRedisRepository {
	return &fakeRedisRepository{values: map[string]string{}, locks: map[string]bool{}}
}

func (r *fakeRedisRepository) Delete(_ context.Context, key string) error {
	delete(r.values, key)
	delete(r.locks, key)
	return nil
}

func (r *fakeRedisRepository) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	r.values[key] = string(raw)
	return nil
}

func (r *fakeRedisRepository) Get(_ context.Context, key string) (string, error) {
	return r.values[key], nil
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

func testInternalConfig() *config.InternalConfig {
	return &config.InternalConfig{App: config.App{SlotCacheTTLInSeconds: 30}}
}

// nextWindowDay returns the first date inside the booking window whose
// weekday satisfies want.
func nextWindowDay(want func(time.Weekday) bool) time.Time {
	day := time.Now()
	for i := 0; i <= 7; i++ {
		if want(day.Weekday()) {
			return day
		}
		day = day.AddDate(0, 0, 1)
	}
	return day
}

func isWeekday(d time.Weekday) bool {
	return d != time.Saturday && d != time.Sunday
}

func newTestSlotUsecase(slotRepo *fakeSlotRepository, scheduleRepo *fakeScheduleRepository, doctorRepo *fakeDoctorRepository, redisRepo *fakeRedisRepository) *slotUsecase {
	return &slotUsecase{
		SlotRepository:     slotRepo,
		ScheduleRepository: scheduleRepo,
		DoctorRepository:   doctorRepo,
		RedisRepository:    redisRepo,
		InternalConfig:     testInternalConfig(),
		Log:                zap.NewNop(),
	}
}

func TestGetAvailableSlots(t *testing.T) {
	doctorRepo := &fakeDoctorRepository{doctors: map[string]*models.Doctor{
		"doc-1": {ID: "doc-1", Name: "Dr. Amira Hassan", Available: true},
	}}

	t.Run("Materializes Default Weekday Schedule", func(t *testing.T) {
		slotRepo := newFakeSlotRepository()
		uc := newTestSlotUsecase(slotRepo, &fakeScheduleRepository{}, doctorRepo, newFakeRedisRepository())

		date := nextWindowDay(isWeekday).Format(constvars.DateLayoutYYYYMMDD)
		slots, err := uc.GetAvailableSlots(context.Background(), "doc-1", date)

		require.NoError(t, err)
		require.Len(t, slots, 18, "08:00-17:00 with 30-minute slots should yield 18 slots")
		assert.Equal(t, "08:00", slots[0].StartTime, "first slot starts at opening time")
		assert.Equal(t, "08:30", slots[0].EndTime)
		assert.Equal(t, "16:30", slots[len(slots)-1].StartTime, "last slot ends exactly at closing time")
		assert.Equal(t, "17:00", slots[len(slots)-1].EndTime)
		for _, slot := range slots {
			assert.NotEmpty(t, slot.ID, "materialized slots should carry their generated ids")
		}
	})

	t.Run("Weekend Without Schedule Yields No Slots", func(t *testing.T) {
		slotRepo := newFakeSlotRepository()
		uc := newTestSlotUsecase(slotRepo, &fakeScheduleRepository{}, doctorRepo, newFakeRedisRepository())

		date := nextWindowDay(func(d time.Weekday) bool { return d == time.Saturday }).Format(constvars.DateLayoutYYYYMMDD)
		slots, err := uc.GetAvailableSlots(context.Background(), "doc-1", date)

		require.NoError(t, err)
		assert.Empty(t, slots, "no default consultation hours on weekends")
	})

	t.Run("Explicit Schedule Is Respected", func(t *testing.T) {
		day := nextWindowDay(isWeekday)
		scheduleRepo := &fakeScheduleRepository{byDay: map[time.Weekday]*models.DoctorSchedule{
			day.Weekday(): {
				DoctorID:            "doc-1",
				DayOfWeek:           day.Weekday(),
				StartTime:           "09:00",
				EndTime:             "12:00",
				SlotDurationMinutes: 60,
				Available:           true,
			},
		}}
		uc := newTestSlotUsecase(newFakeSlotRepository(), scheduleRepo, doctorRepo, newFakeRedisRepository())

		slots, err := uc.GetAvailableSlots(context.Background(), "doc-1", day.Format(constvars.DateLayoutYYYYMMDD))

		require.NoError(t, err)
		require.Len(t, slots, 3, "09:00-12:00 hourly should yield 3 slots")
		assert.Equal(t, "09:00", slots[0].StartTime)
		assert.Equal(t, "11:00", slots[2].StartTime)
	})

	t.Run("Unavailable Schedule Yields No Slots", func(t *testing.T) {
		day := nextWindowDay(isWeekday)
		scheduleRepo := &fakeScheduleRepository{byDay: map[time.Weekday]*models.DoctorSchedule{
			day.Weekday(): {DoctorID: "doc-1", DayOfWeek: day.Weekday(), Available: false},
		}}
		uc := newTestSlotUsecase(newFakeSlotRepository(), scheduleRepo, doctorRepo, newFakeRedisRepository())

		slots, err := uc.GetAvailableSlots(context.Background(), "doc-1", day.Format(constvars.DateLayoutYYYYMMDD))

		require.NoError(t, err)
		assert.Empty(t, slots, "a day marked unavailable should produce no slots")
	})

	t.Run("Booked Slots Are Excluded", func(t *testing.T) {
		day := nextWindowDay(isWeekday)
		date := day.Format(constvars.DateLayoutYYYYMMDD)
		slotRepo := newFakeSlotRepository()
		require.NoError(t, slotRepo.CreateSlots(context.Background(), []models.TimeSlot{
			{DoctorID: "doc-1", SlotDate: date, StartTime: "09:00", EndTime: "09:30"},
			{DoctorID: "doc-1", SlotDate: date, StartTime: "09:30", EndTime: "10:00", IsBooked: true},
			{DoctorID: "doc-1", SlotDate: date, StartTime: "10:00", EndTime: "10:30"},
		}))
		uc := newTestSlotUsecase(slotRepo, &fakeScheduleRepository{}, doctorRepo, newFakeRedisRepository())

		slots, err := uc.GetAvailableSlots(context.Background(), "doc-1", date)

		require.NoError(t, err)
		require.Len(t, slots, 2, "the booked slot should be filtered out")
		assert.Equal(t, "09:00", slots[0].StartTime)
		assert.Equal(t, "10:00", slots[1].StartTime)
	})

	t.Run("Cache Hit Skips The Repository", func(t *testing.T) {
		day := nextWindowDay(isWeekday)
		date := day.Format(constvars.DateLayoutYYYYMMDD)
		slotRepo := newFakeSlotRepository()
		redisRepo := newFakeRedisRepository()
		uc := newTestSlotUsecase(slotRepo, &fakeScheduleRepository{}, doctorRepo, redisRepo)

		_, err := uc.GetAvailableSlots(context.Background(), "doc-1", date)
		require.NoError(t, err)
		callsAfterFirst := slotRepo.findCalls

		slots, err := uc.GetAvailableSlots(context.Background(), "doc-1", date)
		require.NoError(t, err)

		assert.Len(t, slots, 18)
		assert.Equal(t, callsAfterFirst, slotRepo.findCalls, "second call should be served from the cache")
	})

	t.Run("Date Outside Window Is Rejected", func(t *testing.T) {
		uc := newTestSlotUsecase(newFakeSlotRepository(), &fakeScheduleRepository{}, doctorRepo, newFakeRedisRepository())

		past := time.Now().AddDate(0, 0, -1).Format(constvars.DateLayoutYYYYMMDD)
		_, err := uc.GetAvailableSlots(context.Background(), "doc-1", past)
		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode, "yesterday should be rejected")

		far := time.Now().AddDate(0, 0, 8).Format(constvars.DateLayoutYYYYMMDD)
		_, err = uc.GetAvailableSlots(context.Background(), "doc-1", far)
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode, "today+8 should be rejected")
	})

	t.Run("Unknown Doctor Is Rejected", func(t *testing.T) {
		uc := newTestSlotUsecase(newFakeSlotRepository(), &fakeScheduleRepository{}, doctorRepo, newFakeRedisRepository())

		date := nextWindowDay(isWeekday).Format(constvars.DateLayoutYYYYMMDD)
		_, err := uc.GetAvailableSlots(context.Background(), "doc-404", date)

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
	})

	t.Run("Malformed Date Is Rejected", func(t *testing.T) {
		uc := newTestSlotUsecase(newFakeSlotRepository(), &fakeScheduleRepository{}, doctorRepo, newFakeRedisRepository())

		_, err := uc.GetAvailableSlots(context.Background(), "doc-1", "12-06-2025")
		assert.Error(t, err, "non-ISO dates should be rejected")
	})
}
