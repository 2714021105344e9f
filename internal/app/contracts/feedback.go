package contracts

import (
	"context"
	"mediconnect-service/internal/app/models"
	"mediconnect-service/internal/pkg/dto/requests"
	"mediconnect-service/internal/pkg/dto/responses"
)

type FeedbackUsecase interface {
	SubmitFeedback(ctx context.Context, session *models.Session, request *requests.SubmitFeedback) (*responses.Feedback, error)
	GetAllFeedback(ctx context.Context) ([]responses.Feedback, error)
}

type FeedbackRepository interface {
	CreateFeedback(ctx context.Context, feedbackModel *models.Feedback) (feedbackID string, err error)
	FindAll(ctx context.Context) ([]models.Feedback, error)
}
