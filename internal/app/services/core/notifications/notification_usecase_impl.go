package notifications

import (
	"context"
	"mediconnect-service/internal/app/contracts"
	"mediconnect-service/internal/app/models"
	"mediconnect-service/internal/pkg/constvars"
	"mediconnect-service/internal/pkg/dto/responses"
	"mediconnect-service/internal/pkg/exceptions"
	"sync"
	"time"

	"go.uber.org/zap"
)

type notificationUsecase struct {
	NotificationRepository contracts.NotificationRepository
	Log                    *zap.Logger
}

var (
	notificationUsecaseInstance contracts.NotificationUsecase
	onceNotificationUsecase     sync.Once
)

func NewNotificationUsecase(notificationRepository contracts.NotificationRepository, logger *zap.Logger) contracts.NotificationUsecase {
	onceNotificationUsecase.Do(func() {
		notificationUsecaseInstance = &notificationUsecase{
			NotificationRepository: notificationRepository,
			Log:                    logger,
		}
	})
	return notificationUsecaseInstance
}

func (uc *notificationUsecase) GetNotificationsByUser(ctx context.Context, session *models.Session) ([]responses.Notification, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("notificationUsecase.GetNotificationsByUser called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, session.UserID),
	)

	notificationModels, err := uc.NotificationRepository.FindByUserID(ctx, session.UserID)
	if err != nil {
		uc.Log.Error("notificationUsecase.GetNotificationsByUser error finding notifications",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	notifications := make([]responses.Notification, 0, len(notificationModels))
	for _, notificationModel := range notificationModels {
		notifications = append(notifications, responses.Notification{
			ID:        notificationModel.ID,
			Type:      notificationModel.Type,
			Message:   notificationModel.Message,
			Read:      notificationModel.Read,
			CreatedAt: notificationModel.CreatedAt.Format(time.RFC3339),
		})
	}
	return notifications, nil
}

func (uc *notificationUsecase) MarkNotificationRead(ctx context.Context, session *models.Session, notificationID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("notificationUsecase.MarkNotificationRead called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingNotificationIDKey, notificationID),
	)

	notificationModel, err := uc.NotificationRepository.FindByID(ctx, notificationID)
	if err != nil {
		return err
	}
	if notificationModel == nil || notificationModel.UserID != session.UserID {
		return exceptions.ErrNotificationNotExist(nil)
	}

	notificationModel.Read = true
	notificationModel.UpdatedAt = time.Now()
	return uc.NotificationRepository.UpdateNotification(ctx, notificationModel)
}

func (uc *notificationUsecase) MarkAllNotificationsRead(ctx context.Context, session *models.Session) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("notificationUsecase.MarkAllNotificationsRead called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, session.UserID),
	)

	return uc.NotificationRepository.MarkAllReadByUserID(ctx, session.UserID)
}
