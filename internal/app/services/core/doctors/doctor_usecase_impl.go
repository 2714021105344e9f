package doctors

import (
	"context"
	"mediconnect-service/internal/app/contracts"
	"mediconnect-service/internal/app/models"
	"mediconnect-service/internal/pkg/constvars"
	"mediconnect-service/internal/pkg/dto/requests"
	"mediconnect-service/internal/pkg/dto/responses"
	"mediconnect-service/internal/pkg/exceptions"
	"sync"

	"go.uber.org/zap"
)

type doctorUsecase struct {
	DoctorRepository contracts.DoctorRepository
	Log              *zap.Logger
}

var (
	doctorUsecaseInstance contracts.DoctorUsecase
	onceDoctorUsecase     sync.Once
)

func NewDoctorUsecase(doctorRepository contracts.DoctorRepository, logger *zap.Logger) contracts.DoctorUsecase {
	onceDoctorUsecase.Do(func() {
		doctorUsecaseInstance = &doctorUsecase{
			DoctorRepository: doctorRepository,
			Log:              logger,
		}
	})
	return doctorUsecaseInstance
}

func (uc *doctorUsecase) GetAllDoctors(ctx context.Context, query *requests.QueryParams) ([]responses.Doctor, int64, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("doctorUsecase.GetAllDoctors called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	doctorModels, total, err := uc.DoctorRepository.FindAll(ctx, query.Specialization, query.Page, query.PageSize)
	if err != nil {
		uc.Log.Error("doctorUsecase.GetAllDoctors error finding doctors",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, 0, err
	}

	doctors := make([]responses.Doctor, 0, len(doctorModels))
	for _, doctorModel := range doctorModels {
		doctors = append(doctors, buildDoctorResponse(&doctorModel))
	}

	uc.Log.Info("doctorUsecase.GetAllDoctors succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int("doctor_count", len(doctors)),
	)
	return doctors, total, nil
}

func (uc *doctorUsecase) GetDoctorByID(ctx context.Context, doctorID string) (*responses.Doctor, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("doctorUsecase.GetDoctorByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, doctorID),
	)

	doctorModel, err := uc.DoctorRepository.FindByID(ctx, doctorID)
	if err != nil {
		uc.Log.Error("doctorUsecase.GetDoctorByID error finding doctor",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if doctorModel == nil {
		return nil, exceptions.ErrDoctorNotExist(nil)
	}

	response := buildDoctorResponse(doctorModel)
	return &response, nil
}

func buildDoctorResponse(doctorModel *models.Doctor) responses.Doctor {
	return responses.Doctor{
		ID:              doctorModel.ID,
		Name:            doctorModel.Name,
		Specialization:  doctorModel.Specialization,
		ConsultationFee: doctorModel.ConsultationFee,
		YearsExperience: doctorModel.YearsExperience,
		Available:       doctorModel.Available,
	}
}
