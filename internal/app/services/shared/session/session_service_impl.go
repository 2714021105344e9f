package session

import (
	"context"
	"fmt"
	"mediconnect-service/internal/app/config"
	"mediconnect-service/internal/app/contracts"
	"mediconnect-service/internal/app/models"
	"mediconnect-service/internal/pkg/constvars"
	"mediconnect-service/internal/pkg/exceptions"
	"mediconnect-service/internal/pkg/utils"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
)

type sessionService struct {
	redisRepository contracts.RedisRepository
	internalConfig  *config.InternalConfig
}

func NewSessionService(redisRepository contracts.RedisRepository, internalConfig *config.InternalConfig) contracts.SessionService {
	return &sessionService{
		redisRepository: redisRepository,
		internalConfig:  internalConfig,
	}
}

func (s *sessionService) CreateSession(ctx context.Context, session *models.Session, exp time.Duration) (string, error) {
	session.SessionID = uuid.NewString()

	key := fmt.Sprintf(constvars.RedisSessionKeyFormat, session.SessionID)
	err := s.redisRepository.Set(ctx, key, session, exp)
	if err != nil {
		return "", err
	}

	token, err := utils.GenerateSessionJWT(session.SessionID, s.internalConfig.JWT.Secret, s.internalConfig.JWT.ExpTimeInHour)
	if err != nil {
		return "", err
	}
	return token, nil
}

func (s *sessionService) ParseSessionData(ctx context.Context, token string) (*models.Session, error) {
	sessionID, err := utils.ParseJWT(token, s.internalConfig.JWT.Secret)
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf(constvars.RedisSessionKeyFormat, sessionID)
	data, err := s.redisRepository.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	if data == "" {
		return nil, exceptions.ErrInvalidSession(nil)
	}

	session := new(models.Session)
	if err := json.Unmarshal([]byte(data), session); err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}
	return session, nil
}

func (s *sessionService) DestroySession(ctx context.Context, token string) error {
	sessionID, err := utils.ParseJWT(token, s.internalConfig.JWT.Secret)
	if err != nil {
		return err
	}
	key := fmt.Sprintf(constvars.RedisSessionKeyFormat, sessionID)
	return s.redisRepository.Delete(ctx, key)
}
