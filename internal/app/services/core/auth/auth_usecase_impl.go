package auth

import (
	"context"
	"mediconnect-service/internal/app/config"
	"mediconnect-service/internal/app/contracts"
	"mediconnect-service/internal/app/models"
	"mediconnect-service/internal/pkg/constvars"
	"mediconnect-service/internal/pkg/dto/requests"
	"mediconnect-service/internal/pkg/dto/responses"
	"mediconnect-service/internal/pkg/exceptions"
	"mediconnect-service/internal/pkg/utils"
	"sync"
	"time"

	"go.uber.org/zap"
)

type authUsecase struct {
	UserRepository contracts.UserRepository
	SessionService contracts.SessionService
	InternalConfig *config.InternalConfig
	Log            *zap.Logger
}

var (
	authUsecaseInstance contracts.AuthUsecase
	onceAuthUsecase     sync.Once
)

func NewAuthUsecase(
	userRepository contracts.UserRepository,
	sessionService contracts.SessionService,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.AuthUsecase {
	onceAuthUsecase.Do(func() {
		authUsecaseInstance = &authUsecase{
			UserRepository: userRepository,
			SessionService: sessionService,
			InternalConfig: internalConfig,
			Log:            logger,
		}
	})

	return authUsecaseInstance
}

func (uc *authUsecase) RegisterUser(ctx context.Context, request *requests.RegisterUser) (*responses.RegisterUser, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.RegisterUser called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if request.Password != request.RetypePassword {
		return nil, exceptions.ErrPasswordDoNotMatch(nil)
	}

	existing, err := uc.UserRepository.FindByEmailOrUsername(ctx, request.Email, request.Username)
	if err != nil {
		uc.Log.Error("authUsecase.RegisterUser error finding existing user",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if existing != nil {
		if existing.Email == request.Email {
			return nil, exceptions.ErrEmailAlreadyExist(nil)
		}
		return nil, exceptions.ErrUsernameAlreadyExist(nil)
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, exceptions.ErrHashPassword(err)
	}

	role := request.Role
	if role == "" {
		role = constvars.MediConnectRolePatient
	}

	now := time.Now()
	userModel := &models.User{
		Email:    request.Email,
		Username: request.Username,
		Password: hashedPassword,
		FullName: request.FullName,
		Role:     role,
		TimeModel: models.TimeModel{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	userID, err := uc.UserRepository.CreateUser(ctx, userModel)
	if err != nil {
		uc.Log.Error("authUsecase.RegisterUser error creating user",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("authUsecase.RegisterUser succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, userID),
	)
	return &responses.RegisterUser{UserID: userID, Role: role}, nil
}

func (uc *authUsecase) LoginUser(ctx context.Context, request *requests.LoginUser) (*responses.LoginUser, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.LoginUser called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	user, err := uc.UserRepository.FindByUsername(ctx, request.Username)
	if err != nil {
		uc.Log.Error("authUsecase.LoginUser error finding user",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if user == nil || !utils.CheckPasswordHash(request.Password, user.Password) {
		return nil, exceptions.ErrInvalidUsernameOrPassword(nil)
	}

	session := &models.Session{
		UserID:   user.ID,
		Email:    user.Email,
		Role:     user.Role,
		DoctorID: user.DoctorID,
	}
	exp := time.Duration(uc.InternalConfig.JWT.ExpTimeInHour) * time.Hour
	token, err := uc.SessionService.CreateSession(ctx, session, exp)
	if err != nil {
		uc.Log.Error("authUsecase.LoginUser error creating session",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("authUsecase.LoginUser succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, user.ID),
	)
	return &responses.LoginUser{Token: token, Role: user.Role}, nil
}

func (uc *authUsecase) LogoutUser(ctx context.Context, token string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.LogoutUser called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	err := uc.SessionService.DestroySession(ctx, token)
	if err != nil {
		uc.Log.Error("authUsecase.LogoutUser error destroying session",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}

	uc.Log.Info("authUsecase.LogoutUser succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return nil
}
