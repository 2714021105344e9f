package prescriptions

import (
	"context"
	"fmt"
	"mediconnect-service/internal/app/contracts"
	"mediconnect-service/internal/app/models"
	"mediconnect-service/internal/pkg/constvars"
	"mediconnect-service/internal/pkg/dto/requests"
	"mediconnect-service/internal/pkg/dto/responses"
	"mediconnect-service/internal/pkg/exceptions"
	"sync"
	"time"

	"go.uber.org/zap"
)

type prescriptionUsecase struct {
	PrescriptionRepository contracts.PrescriptionRepository
	DoctorRepository       contracts.DoctorRepository
	NotificationPublisher  contracts.NotificationPublisher
	Log                    *zap.Logger
}

var (
	prescriptionUsecaseInstance contracts.PrescriptionUsecase
	oncePrescriptionUsecase     sync.Once
)

func NewPrescriptionUsecase(
	prescriptionRepository contracts.PrescriptionRepository,
	doctorRepository contracts.DoctorRepository,
	notificationPublisher contracts.NotificationPublisher,
	logger *zap.Logger,
) contracts.PrescriptionUsecase {
	oncePrescriptionUsecase.Do(func() {
		prescriptionUsecaseInstance = &prescriptionUsecase{
			PrescriptionRepository: prescriptionRepository,
			DoctorRepository:       doctorRepository,
			NotificationPublisher:  notificationPublisher,
			Log:                    logger,
		}
	})
	return prescriptionUsecaseInstance
}

func (uc *prescriptionUsecase) CreatePrescription(ctx context.Context, session *models.Session, request *requests.CreatePrescription) (*responses.Prescription, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("prescriptionUsecase.CreatePrescription called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, request.PatientID),
	)

	if session.Role != constvars.MediConnectRoleDoctor {
		return nil, exceptions.ErrRoleNotAllowed(nil)
	}

	now := time.Now()
	prescriptionModel := &models.Prescription{
		PatientID:    request.PatientID,
		DoctorID:     session.DoctorID,
		Medication:   request.Medication,
		Dosage:       request.Dosage,
		Frequency:    request.Frequency,
		DurationDays: request.DurationDays,
		Instructions: request.Instructions,
		TimeModel:    models.TimeModel{CreatedAt: now, UpdatedAt: now},
	}

	prescriptionID, err := uc.PrescriptionRepository.CreatePrescription(ctx, prescriptionModel)
	if err != nil {
		uc.Log.Error("prescriptionUsecase.CreatePrescription error inserting prescription",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	event := &contracts.NotificationEvent{
		UserID:  request.PatientID,
		Type:    constvars.NotificationTypePrescriptionIssued,
		Message: fmt.Sprintf("A prescription for %s was issued to you", request.Medication),
	}
	if err := uc.NotificationPublisher.Publish(ctx, event); err != nil {
		uc.Log.Error("prescriptionUsecase.CreatePrescription failed publishing notification event",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}

	uc.Log.Info("prescriptionUsecase.CreatePrescription succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return &responses.Prescription{
		ID:           prescriptionID,
		PatientID:    request.PatientID,
		DoctorID:     session.DoctorID,
		Medication:   request.Medication,
		Dosage:       request.Dosage,
		Frequency:    request.Frequency,
		DurationDays: request.DurationDays,
		Instructions: request.Instructions,
		IssuedAt:     now.Format(time.RFC3339),
	}, nil
}

func (uc *prescriptionUsecase) GetPrescriptionsByPatient(ctx context.Context, session *models.Session) ([]responses.Prescription, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("prescriptionUsecase.GetPrescriptionsByPatient called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, session.UserID),
	)

	prescriptionModels, err := uc.PrescriptionRepository.FindByPatientID(ctx, session.UserID)
	if err != nil {
		uc.Log.Error("prescriptionUsecase.GetPrescriptionsByPatient error finding prescriptions",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	doctorNames := make(map[string]string)
	prescriptions := make([]responses.Prescription, 0, len(prescriptionModels))
	for _, prescriptionModel := range prescriptionModels {
		name, ok := doctorNames[prescriptionModel.DoctorID]
		if !ok {
			if doctorModel, err := uc.DoctorRepository.FindByID(ctx, prescriptionModel.DoctorID); err == nil && doctorModel != nil {
				name = doctorModel.Name
			}
			doctorNames[prescriptionModel.DoctorID] = name
		}
		prescriptions = append(prescriptions, responses.Prescription{
			ID:           prescriptionModel.ID,
			PatientID:    prescriptionModel.PatientID,
			DoctorID:     prescriptionModel.DoctorID,
			DoctorName:   name,
			Medication:   prescriptionModel.Medication,
			Dosage:       prescriptionModel.Dosage,
			Frequency:    prescriptionModel.Frequency,
			DurationDays: prescriptionModel.DurationDays,
			Instructions: prescriptionModel.Instructions,
			IssuedAt:     prescriptionModel.CreatedAt.Format(time.RFC3339),
		})
	}
	return prescriptions, nil
}
