package contracts

import (
	"context"
	"mediconnect-service/internal/app/models"
	"mediconnect-service/internal/pkg/dto/responses"
)

type HealthTipUsecase interface {
	GetHealthTips(ctx context.Context, category string) ([]responses.HealthTip, error)
}

type HealthTipRepository interface {
	FindAll(ctx context.Context, category string) ([]models.HealthTip, error)
	CreateHealthTip(ctx context.Context, tipModel *models.HealthTip) (tipID string, err error)
}
