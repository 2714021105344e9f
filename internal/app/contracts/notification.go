package contracts

import (
	"context"
	"mediconnect-service/internal/app/models"
	"mediconnect-service/internal/pkg/dto/responses"
)

type NotificationUsecase interface {
	GetNotificationsByUser(ctx context.Context, session *models.Session) ([]responses.Notification, error)
	MarkNotificationRead(ctx context.Context, session *models.Session, notificationID string) error
	MarkAllNotificationsRead(ctx context.Context, session *models.Session) error
}

type NotificationRepository interface {
	CreateNotification(ctx context.Context, notificationModel *models.Notification) (notificationID string, err error)
	FindByID(ctx context.Context, notificationID string) (*models.Notification, error)
	FindByUserID(ctx context.Context, userID string) ([]models.Notification, error)
	UpdateNotification(ctx context.Context, notificationModel *models.Notification) error
	MarkAllReadByUserID(ctx context.Context, userID string) error
}
