package slots

import (
	"context"
	"fmt"
	"mediconnect-service/internal/app/config"
	"mediconnect-service/internal/app/contracts"
	"mediconnect-service/internal/app/models"
	"mediconnect-service/internal/pkg/constvars"
	"mediconnect-service/internal/pkg/dto/responses"
	"mediconnect-service/internal/pkg/exceptions"
	"mediconnect-service/internal/pkg/utils"
	"mediconnect-service/pkg/calendar"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type slotUsecase struct {
	SlotRepository     contracts.SlotRepository
	ScheduleRepository contracts.ScheduleRepository
	DoctorRepository   contracts.DoctorRepository
	RedisRepository    contracts.RedisRepository
	InternalConfig     *config.InternalConfig
	Log                *zap.Logger
}

var (
	slotUsecaseInstance contracts.SlotUsecase
	onceSlotUsecase     sync.Once
)

func NewSlotUsecase(
	slotRepository contracts.SlotRepository,
	scheduleRepository contracts.ScheduleRepository,
	doctorRepository contracts.DoctorRepository,
	redisRepository contracts.RedisRepository,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.SlotUsecase {
	onceSlotUsecase.Do(func() {
		slotUsecaseInstance = &slotUsecase{
			SlotRepository:     slotRepository,
			ScheduleRepository: scheduleRepository,
			DoctorRepository:   doctorRepository,
			RedisRepository:    redisRepository,
			InternalConfig:     internalConfig,
			Log:                logger,
		}
	})
	return slotUsecaseInstance
}

// GetAvailableSlots returns the free slots for one doctor on one day.
// Slots are materialized lazily from the doctor's weekly schedule the
// first time a day is asked for.
func (uc *slotUsecase) GetAvailableSlots(ctx context.Context, doctorID, date string) ([]responses.AvailableTimeSlot, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("slotUsecase.GetAvailableSlots called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, doctorID),
		zap.String(constvars.LoggingDateKey, date),
	)

	day, err := utils.ParseDate(date)
	if err != nil {
		return nil, exceptions.ErrCannotParseDate(err)
	}

	if !calendar.InWindow(day, time.Now()) {
		return nil, exceptions.ErrDateOutsideWindow(nil)
	}

	doctorModel, err := uc.DoctorRepository.FindByID(ctx, doctorID)
	if err != nil {
		return nil, err
	}
	if doctorModel == nil {
		return nil, exceptions.ErrDoctorNotExist(nil)
	}

	cacheKey := fmt.Sprintf(constvars.RedisSlotCacheKeyFormat, doctorID, date)
	cached, err := uc.RedisRepository.Get(ctx, cacheKey)
	if err == nil && cached != "" {
		var cachedSlots []responses.AvailableTimeSlot
		if err := json.Unmarshal([]byte(cached), &cachedSlots); err == nil {
			uc.Log.Info("slotUsecase.GetAvailableSlots cache hit",
				zap.String(constvars.LoggingRequestIDKey, requestID),
			)
			return cachedSlots, nil
		}
	}

	slotModels, err := uc.SlotRepository.FindByDoctorIDAndDate(ctx, doctorID, date)
	if err != nil {
		return nil, err
	}

	if len(slotModels) == 0 {
		slotModels, err = uc.materializeDay(ctx, doctorID, calendar.Midnight(day), date)
		if err != nil {
			return nil, err
		}
	}

	available := make([]responses.AvailableTimeSlot, 0, len(slotModels))
	for _, slotModel := range slotModels {
		if slotModel.IsBooked {
			continue
		}
		available = append(available, responses.AvailableTimeSlot{
			ID:        slotModel.ID,
			DoctorID:  slotModel.DoctorID,
			SlotDate:  slotModel.SlotDate,
			StartTime: slotModel.StartTime,
			EndTime:   slotModel.EndTime,
		})
	}

	ttl := time.Duration(uc.InternalConfig.App.SlotCacheTTLInSeconds) * time.Second
	if err := uc.RedisRepository.Set(ctx, cacheKey, available, ttl); err != nil {
		uc.Log.Warn("slotUsecase.GetAvailableSlots failed caching slots",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}

	uc.Log.Info("slotUsecase.GetAvailableSlots succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int("slot_count", len(available)),
	)
	return available, nil
}

// materializeDay expands the doctor's schedule for the requested weekday
// into concrete slot documents. Days the doctor does not work yield no
// slots and no documents.
func (uc *slotUsecase) materializeDay(ctx context.Context, doctorID string, day time.Time, date string) ([]models.TimeSlot, error) {
	schedule, err := uc.ScheduleRepository.FindByDoctorIDAndDay(ctx, doctorID, day.Weekday())
	if err != nil {
		return nil, err
	}

	if schedule == nil {
		if day.Weekday() == time.Saturday || day.Weekday() == time.Sunday {
			return nil, nil
		}
		schedule = &models.DoctorSchedule{
			DoctorID:            doctorID,
			DayOfWeek:           day.Weekday(),
			StartTime:           constvars.DefaultScheduleStartTime,
			EndTime:             constvars.DefaultScheduleEndTime,
			SlotDurationMinutes: constvars.DefaultSlotDurationMinutes,
			Available:           true,
		}
	}
	if !schedule.Available {
		return nil, nil
	}

	start, err := utils.CombineDateAndClock(day, schedule.StartTime, day.Location())
	if err != nil {
		return nil, exceptions.ErrCannotParseDate(err)
	}
	end, err := utils.CombineDateAndClock(day, schedule.EndTime, day.Location())
	if err != nil {
		return nil, exceptions.ErrCannotParseDate(err)
	}

	duration := time.Duration(schedule.SlotDurationMinutes) * time.Minute
	if duration <= 0 {
		duration = time.Duration(constvars.DefaultSlotDurationMinutes) * time.Minute
	}

	now := time.Now()
	var slotModels []models.TimeSlot
	for cursor := start; !cursor.Add(duration).After(end); cursor = cursor.Add(duration) {
		slotModels = append(slotModels, models.TimeSlot{
			DoctorID:  doctorID,
			SlotDate:  date,
			StartTime: cursor.Format(constvars.TimeLayoutHHMM),
			EndTime:   cursor.Add(duration).Format(constvars.TimeLayoutHHMM),
			IsBooked:  false,
			TimeModel: models.TimeModel{CreatedAt: now, UpdatedAt: now},
		})
	}
	if len(slotModels) == 0 {
		return nil, nil
	}

	if err := uc.SlotRepository.CreateSlots(ctx, slotModels); err != nil {
		return nil, err
	}

	// Re-read so the returned slots carry their generated IDs.
	return uc.SlotRepository.FindByDoctorIDAndDate(ctx, doctorID, date)
}
