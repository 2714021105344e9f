package contracts

import (
	"context"
	"mediconnect-service/internal/app/models"
	"time"
)

type SessionService interface {
	CreateSession(ctx context.Context, session *models.Session, exp time.Duration) (token string, err error)
	ParseSessionData(ctx context.Context, token string) (*models.Session, error)
	DestroySession(ctx context.Context, token string) error
}
