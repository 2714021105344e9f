package healthtips

import (
	"context"
	"mediconnect-service/internal/app/contracts"
	"mediconnect-service/internal/pkg/constvars"
	"mediconnect-service/internal/pkg/dto/responses"
	"sync"

	"go.uber.org/zap"
)

type healthTipUsecase struct {
	HealthTipRepository contracts.HealthTipRepository
	Log                 *zap.Logger
}

var (
	healthTipUsecaseInstance contracts.HealthTipUsecase
	onceHealthTipUsecase     sync.Once
)

func NewHealthTipUsecase(healthTipRepository contracts.HealthTipRepository, logger *zap.Logger) contracts.HealthTipUsecase {
	onceHealthTipUsecase.Do(func() {
		healthTipUsecaseInstance = &healthTipUsecase{
			HealthTipRepository: healthTipRepository,
			Log:                 logger,
		}
	})
	return healthTipUsecaseInstance
}

func (uc *healthTipUsecase) GetHealthTips(ctx context.Context, category string) ([]responses.HealthTip, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("healthTipUsecase.GetHealthTips called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	tipModels, err := uc.HealthTipRepository.FindAll(ctx, category)
	if err != nil {
		uc.Log.Error("healthTipUsecase.GetHealthTips error finding tips",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	tips := make([]responses.HealthTip, 0, len(tipModels))
	for _, tipModel := range tipModels {
		tips = append(tips, responses.HealthTip{
			ID:       tipModel.ID,
			Title:    tipModel.Title,
			Content:  tipModel.Content,
			Category: tipModel.Category,
		})
	}
	return tips, nil
}
