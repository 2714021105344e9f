package medicalrecords

import (
	"context"
	"fmt"
	"io"
	"mediconnect-service/internal/app/contracts"
	"mediconnect-service/internal/app/models"
	"mediconnect-service/internal/pkg/constvars"
	"mediconnect-service/internal/pkg/dto/requests"
	"mediconnect-service/internal/pkg/dto/responses"
	"mediconnect-service/internal/pkg/exceptions"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const downloadURLExpiry = 15 * time.Minute

type medicalRecordUsecase struct {
	MedicalRecordRepository contracts.MedicalRecordRepository
	MinioStorage            contracts.Storage
	Log                     *zap.Logger
}

var (
	medicalRecordUsecaseInstance contracts.MedicalRecordUsecase
	onceMedicalRecordUsecase     sync.Once
)

func NewMedicalRecordUsecase(
	medicalRecordRepository contracts.MedicalRecordRepository,
	minioStorage contracts.Storage,
	logger *zap.Logger,
) contracts.MedicalRecordUsecase {
	onceMedicalRecordUsecase.Do(func() {
		medicalRecordUsecaseInstance = &medicalRecordUsecase{
			MedicalRecordRepository: medicalRecordRepository,
			MinioStorage:            minioStorage,
			Log:                     logger,
		}
	})
	return medicalRecordUsecaseInstance
}

func (uc *medicalRecordUsecase) CreateMedicalRecord(ctx context.Context, session *models.Session, request *requests.CreateMedicalRecord, file io.Reader, size int64, fileName, contentType string) (*responses.MedicalRecord, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("medicalRecordUsecase.CreateMedicalRecord called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, request.PatientID),
	)

	if session.Role != constvars.MediConnectRoleDoctor && session.Role != constvars.MediConnectRoleAdmin {
		return nil, exceptions.ErrRoleNotAllowed(nil)
	}

	var objectName string
	if file != nil && size > 0 {
		objectName = fmt.Sprintf("records/%s/%s%s", request.PatientID, uuid.NewString(), filepath.Ext(fileName))
		if _, err := uc.MinioStorage.UploadFile(ctx, file, size, objectName, contentType); err != nil {
			uc.Log.Error("medicalRecordUsecase.CreateMedicalRecord error uploading attachment",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return nil, err
		}
	}

	now := time.Now()
	recordModel := &models.MedicalRecord{
		PatientID:   request.PatientID,
		DoctorID:    session.DoctorID,
		RecordType:  request.RecordType,
		Description: request.Description,
		ObjectName:  objectName,
		ContentType: contentType,
		TimeModel:   models.TimeModel{CreatedAt: now, UpdatedAt: now},
	}

	recordID, err := uc.MedicalRecordRepository.CreateMedicalRecord(ctx, recordModel)
	if err != nil {
		uc.Log.Error("medicalRecordUsecase.CreateMedicalRecord error inserting record",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("medicalRecordUsecase.CreateMedicalRecord succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRecordIDKey, recordID),
	)
	return &responses.MedicalRecord{
		ID:          recordID,
		PatientID:   request.PatientID,
		DoctorID:    session.DoctorID,
		RecordType:  request.RecordType,
		Description: request.Description,
		FileName:    fileName,
		CreatedAt:   now.Format(time.RFC3339),
	}, nil
}

func (uc *medicalRecordUsecase) GetMedicalRecordsByPatient(ctx context.Context, session *models.Session) ([]responses.MedicalRecord, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("medicalRecordUsecase.GetMedicalRecordsByPatient called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, session.UserID),
	)

	recordModels, err := uc.MedicalRecordRepository.FindByPatientID(ctx, session.UserID)
	if err != nil {
		uc.Log.Error("medicalRecordUsecase.GetMedicalRecordsByPatient error finding records",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	records := make([]responses.MedicalRecord, 0, len(recordModels))
	for _, recordModel := range recordModels {
		records = append(records, responses.MedicalRecord{
			ID:          recordModel.ID,
			PatientID:   recordModel.PatientID,
			DoctorID:    recordModel.DoctorID,
			RecordType:  recordModel.RecordType,
			Description: recordModel.Description,
			FileName:    filepath.Base(recordModel.ObjectName),
			CreatedAt:   recordModel.CreatedAt.Format(time.RFC3339),
		})
	}
	return records, nil
}

func (uc *medicalRecordUsecase) GetMedicalRecordDownloadURL(ctx context.Context, session *models.Session, recordID string) (*responses.MedicalRecordDownload, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("medicalRecordUsecase.GetMedicalRecordDownloadURL called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRecordIDKey, recordID),
	)

	recordModel, err := uc.MedicalRecordRepository.FindByID(ctx, recordID)
	if err != nil {
		return nil, err
	}
	if recordModel == nil || recordModel.ObjectName == "" {
		return nil, exceptions.ErrRecordNotExist(nil)
	}
	if session.Role == constvars.MediConnectRolePatient && recordModel.PatientID != session.UserID {
		return nil, exceptions.ErrRecordNotExist(nil)
	}

	url, err := uc.MinioStorage.GetObjectUrlWithExpiryTime(ctx, recordModel.ObjectName, downloadURLExpiry)
	if err != nil {
		uc.Log.Error("medicalRecordUsecase.GetMedicalRecordDownloadURL error presigning object",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	return &responses.MedicalRecordDownload{URL: url}, nil
}
