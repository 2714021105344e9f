package feedback

import (
	"context"
	"mediconnect-service/internal/app/contracts"
	"mediconnect-service/internal/app/models"
	"mediconnect-service/internal/pkg/constvars"
	"mediconnect-service/internal/pkg/dto/requests"
	"mediconnect-service/internal/pkg/dto/responses"
	"sync"
	"time"

	"go.uber.org/zap"
)

type feedbackUsecase struct {
	FeedbackRepository contracts.FeedbackRepository
	Log                *zap.Logger
}

var (
	feedbackUsecaseInstance contracts.FeedbackUsecase
	onceFeedbackUsecase     sync.Once
)

func NewFeedbackUsecase(feedbackRepository contracts.FeedbackRepository, logger *zap.Logger) contracts.FeedbackUsecase {
	onceFeedbackUsecase.Do(func() {
		feedbackUsecaseInstance = &feedbackUsecase{
			FeedbackRepository: feedbackRepository,
			Log:                logger,
		}
	})
	return feedbackUsecaseInstance
}

func (uc *feedbackUsecase) SubmitFeedback(ctx context.Context, session *models.Session, request *requests.SubmitFeedback) (*responses.Feedback, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("feedbackUsecase.SubmitFeedback called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, session.UserID),
	)

	now := time.Now()
	feedbackModel := &models.Feedback{
		PatientID: session.UserID,
		Rating:    request.Rating,
		Subject:   request.Subject,
		Message:   request.Message,
		TimeModel: models.TimeModel{CreatedAt: now, UpdatedAt: now},
	}

	feedbackID, err := uc.FeedbackRepository.CreateFeedback(ctx, feedbackModel)
	if err != nil {
		uc.Log.Error("feedbackUsecase.SubmitFeedback error inserting feedback",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	return &responses.Feedback{
		ID:        feedbackID,
		UserID:    session.UserID,
		Rating:    request.Rating,
		Subject:   request.Subject,
		Message:   request.Message,
		CreatedAt: now.Format(time.RFC3339),
	}, nil
}

func (uc *feedbackUsecase) GetAllFeedback(ctx context.Context) ([]responses.Feedback, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("feedbackUsecase.GetAllFeedback called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	feedbackModels, err := uc.FeedbackRepository.FindAll(ctx)
	if err != nil {
		uc.Log.Error("feedbackUsecase.GetAllFeedback error finding feedback",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	feedbackList := make([]responses.Feedback, 0, len(feedbackModels))
	for _, feedbackModel := range feedbackModels {
		feedbackList = append(feedbackList, responses.Feedback{
			ID:        feedbackModel.ID,
			UserID:    feedbackModel.PatientID,
			Rating:    feedbackModel.Rating,
			Subject:   feedbackModel.Subject,
			Message:   feedbackModel.Message,
			CreatedAt: feedbackModel.CreatedAt.Format(time.RFC3339),
		})
	}
	return feedbackList, nil
}
