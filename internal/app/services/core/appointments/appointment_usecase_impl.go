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
	"mediconnect-service/internal/pkg/utils"
	"mediconnect-service/pkg/calendar"
	"sync"
	"time"

	"go.uber.org/zap"
)

type appointmentUsecase struct {
	AppointmentRepository contracts.AppointmentRepository
	SlotRepository        contracts.SlotRepository
	SlotUsecase           contracts.SlotUsecase
	DoctorRepository      contracts.DoctorRepository
	RedisRepository       contracts.RedisRepository
	NotificationPublisher contracts.NotificationPublisher
	InternalConfig        *config.InternalConfig
	Log                   *zap.Logger
}

var (
	appointmentUsecaseInstance contracts.AppointmentUsecase
	onceAppointmentUsecase     sync.Once
)

func NewAppointmentUsecase(
	appointmentRepository contracts.AppointmentRepository,
	slotRepository contracts.SlotRepository,
	slotUsecase contracts.SlotUsecase,
	doctorRepository contracts.DoctorRepository,
	redisRepository contracts.RedisRepository,
	notificationPublisher contracts.NotificationPublisher,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.AppointmentUsecase {
	onceAppointmentUsecase.Do(func() {
		appointmentUsecaseInstance = &appointmentUsecase{
			AppointmentRepository: appointmentRepository,
			SlotRepository:        slotRepository,
			SlotUsecase:           slotUsecase,
			DoctorRepository:      doctorRepository,
			RedisRepository:       redisRepository,
			NotificationPublisher: notificationPublisher,
			InternalConfig:        internalConfig,
			Log:                   logger,
		}
	})
	return appointmentUsecaseInstance
}

func (uc *appointmentUsecase) BookAppointment(ctx context.Context, session *models.Session, request *requests.BookAppointment) (*responses.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.BookAppointment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, request.DoctorID),
		zap.String(constvars.LoggingDateKey, request.AppointmentDate),
	)

	day, err := utils.ParseDate(request.AppointmentDate)
	if err != nil {
		return nil, exceptions.ErrCannotParseDate(err)
	}
	if _, err := utils.ParseClock(request.AppointmentTime); err != nil {
		return nil, exceptions.ErrCannotParseDate(err)
	}

	if !calendar.InWindow(day, time.Now()) {
		return nil, exceptions.ErrDateOutsideWindow(nil)
	}

	doctorModel, err := uc.DoctorRepository.FindByID(ctx, request.DoctorID)
	if err != nil {
		return nil, err
	}
	if doctorModel == nil {
		return nil, exceptions.ErrDoctorNotExist(nil)
	}

	// Short redis lock so two requests racing for the same slot serialize
	// before the conditional update.
	lockKey := fmt.Sprintf(constvars.RedisBookingLockKeyFormat, request.DoctorID, request.AppointmentDate, request.AppointmentTime)
	acquired, err := uc.RedisRepository.TrySetNX(ctx, lockKey, requestID, 10*time.Second)
	if err != nil {
		return nil, err
	}
	if !acquired {
		return nil, exceptions.ErrSlotAlreadyBooked(nil)
	}
	defer func() {
		if err := uc.RedisRepository.Delete(ctx, lockKey); err != nil {
			uc.Log.Warn("appointmentUsecase.BookAppointment failed releasing booking lock",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
		}
	}()

	// Ensures the day's slots exist before we look one up.
	if _, err := uc.SlotUsecase.GetAvailableSlots(ctx, request.DoctorID, request.AppointmentDate); err != nil {
		return nil, err
	}

	slotModel, err := uc.SlotRepository.FindByDoctorDateAndStartTime(ctx, request.DoctorID, request.AppointmentDate, request.AppointmentTime)
	if err != nil {
		return nil, err
	}
	if slotModel == nil {
		return nil, exceptions.ErrSlotNotExist(nil)
	}
	if slotModel.IsBooked {
		return nil, exceptions.ErrSlotAlreadyBooked(nil)
	}

	booked, err := uc.SlotRepository.MarkBooked(ctx, slotModel.ID)
	if err != nil {
		return nil, err
	}
	if !booked {
		return nil, exceptions.ErrSlotAlreadyBooked(nil)
	}

	now := time.Now()
	appointmentModel := &models.Appointment{
		PatientID:       session.UserID,
		DoctorID:        request.DoctorID,
		TimeSlotID:      slotModel.ID,
		AppointmentDate: request.AppointmentDate,
		AppointmentTime: request.AppointmentTime,
		Status:          constvars.AppointmentStatusScheduled,
		Notes:           request.Notes,
		TimeModel:       models.TimeModel{CreatedAt: now, UpdatedAt: now},
	}

	appointmentID, err := uc.AppointmentRepository.CreateAppointment(ctx, appointmentModel)
	if err != nil {
		// Booking failed after the slot flip, release the slot again.
		if freeErr := uc.SlotRepository.MarkFree(ctx, slotModel.ID); freeErr != nil {
			uc.Log.Error("appointmentUsecase.BookAppointment failed releasing slot after insert error",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingSlotIDKey, slotModel.ID),
				zap.Error(freeErr),
			)
		}
		return nil, err
	}

	uc.invalidateSlotCache(ctx, request.DoctorID, request.AppointmentDate, requestID)
	uc.publishEvent(ctx, session.UserID, constvars.NotificationTypeAppointmentBooked,
		fmt.Sprintf("Appointment with %s booked for %s at %s", doctorModel.Name, request.AppointmentDate, request.AppointmentTime), requestID)

	uc.Log.Info("appointmentUsecase.BookAppointment succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
	)

	return &responses.Appointment{
		ID:              appointmentID,
		DoctorID:        request.DoctorID,
		DoctorName:      doctorModel.Name,
		PatientID:       session.UserID,
		AppointmentDate: request.AppointmentDate,
		AppointmentTime: request.AppointmentTime,
		Status:          constvars.AppointmentStatusScheduled,
		Notes:           request.Notes,
	}, nil
}

func (uc *appointmentUsecase) GetUpcomingAppointments(ctx context.Context, session *models.Session) ([]responses.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.GetUpcomingAppointments called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, session.UserID),
	)

	today := utils.TruncateToMidnight(time.Now()).Format(constvars.DateLayoutYYYYMMDD)

	var appointmentModels []models.Appointment
	var err error
	if session.Role == constvars.MediConnectRoleDoctor && session.DoctorID != "" {
		appointmentModels, err = uc.AppointmentRepository.FindUpcomingByDoctorID(ctx, session.DoctorID, today)
	} else {
		appointmentModels, err = uc.AppointmentRepository.FindUpcomingByPatientID(ctx, session.UserID, today)
	}
	if err != nil {
		uc.Log.Error("appointmentUsecase.GetUpcomingAppointments error finding appointments",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	return uc.buildAppointmentResponses(ctx, appointmentModels), nil
}

func (uc *appointmentUsecase) GetAppointmentHistory(ctx context.Context, session *models.Session) ([]responses.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.GetAppointmentHistory called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, session.UserID),
	)

	today := utils.TruncateToMidnight(time.Now()).Format(constvars.DateLayoutYYYYMMDD)
	appointmentModels, err := uc.AppointmentRepository.FindHistoryByPatientID(ctx, session.UserID, today)
	if err != nil {
		uc.Log.Error("appointmentUsecase.GetAppointmentHistory error finding appointments",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	return uc.buildAppointmentResponses(ctx, appointmentModels), nil
}

func (uc *appointmentUsecase) CancelAppointment(ctx context.Context, session *models.Session, appointmentID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.CancelAppointment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
	)

	appointmentModel, err := uc.AppointmentRepository.FindByID(ctx, appointmentID)
	if err != nil {
		return err
	}
	if appointmentModel == nil || appointmentModel.PatientID != session.UserID {
		return exceptions.ErrAppointmentNotExist(nil)
	}
	if appointmentModel.Status != constvars.AppointmentStatusScheduled {
		return exceptions.ErrAppointmentNotCancellable(nil)
	}

	appointmentModel.Status = constvars.AppointmentStatusCancelled
	appointmentModel.UpdatedAt = time.Now()
	if err := uc.AppointmentRepository.UpdateAppointment(ctx, appointmentModel); err != nil {
		return err
	}

	if appointmentModel.TimeSlotID != "" {
		if err := uc.SlotRepository.MarkFree(ctx, appointmentModel.TimeSlotID); err != nil {
			uc.Log.Error("appointmentUsecase.CancelAppointment failed freeing slot",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingSlotIDKey, appointmentModel.TimeSlotID),
				zap.Error(err),
			)
		}
	}

	uc.invalidateSlotCache(ctx, appointmentModel.DoctorID, appointmentModel.AppointmentDate, requestID)
	uc.publishEvent(ctx, session.UserID, constvars.NotificationTypeAppointmentCancelled,
		fmt.Sprintf("Appointment on %s at %s was cancelled", appointmentModel.AppointmentDate, appointmentModel.AppointmentTime), requestID)

	uc.Log.Info("appointmentUsecase.CancelAppointment succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
	)
	return nil
}

func (uc *appointmentUsecase) buildAppointmentResponses(ctx context.Context, appointmentModels []models.Appointment) []responses.Appointment {
	doctorNames := make(map[string]string)
	appointments := make([]responses.Appointment, 0, len(appointmentModels))
	for _, appointmentModel := range appointmentModels {
		name, ok := doctorNames[appointmentModel.DoctorID]
		if !ok {
			if doctorModel, err := uc.DoctorRepository.FindByID(ctx, appointmentModel.DoctorID); err == nil && doctorModel != nil {
				name = doctorModel.Name
			}
			doctorNames[appointmentModel.DoctorID] = name
		}
		appointments = append(appointments, responses.Appointment{
			ID:              appointmentModel.ID,
			DoctorID:        appointmentModel.DoctorID,
			DoctorName:      name,
			PatientID:       appointmentModel.PatientID,
			AppointmentDate: appointmentModel.AppointmentDate,
			AppointmentTime: appointmentModel.AppointmentTime,
			Status:          appointmentModel.Status,
			Notes:           appointmentModel.Notes,
		})
	}
	return appointments
}

func (uc *appointmentUsecase) invalidateSlotCache(ctx context.Context, doctorID, date, requestID string) {
	cacheKey := fmt.Sprintf(constvars.RedisSlotCacheKeyFormat, doctorID, date)
	if err := uc.RedisRepository.Delete(ctx, cacheKey); err != nil {
		uc.Log.Warn("appointmentUsecase failed invalidating slot cache",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}
}

func (uc *appointmentUsecase) publishEvent(ctx context.Context, userID, eventType, message, requestID string) {
	event := &contracts.NotificationEvent{
		UserID:  userID,
		Type:    eventType,
		Message: message,
	}
	if err := uc.NotificationPublisher.Publish(ctx, event); err != nil {
		uc.Log.Error("appointmentUsecase failed publishing notification event",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}
}
