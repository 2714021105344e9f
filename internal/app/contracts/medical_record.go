package contracts

import (
	"context"
	"io"
	"mediconnect-service/internal/app/models"
	"mediconnect-service/internal/pkg/dto/requests"
	"mediconnect-service/internal/pkg/dto/responses"
)

type MedicalRecordUsecase interface {
	CreateMedicalRecord(ctx context.Context, session *models.Session, request *requests.CreateMedicalRecord, file io.Reader, size int64, fileName, contentType string) (*responses.MedicalRecord, error)
	GetMedicalRecordsByPatient(ctx context.Context, session *models.Session) ([]responses.MedicalRecord, error)
	GetMedicalRecordDownloadURL(ctx context.Context, session *models.Session, recordID string) (*responses.MedicalRecordDownload, error)
}

type MedicalRecordRepository interface {
	CreateMedicalRecord(ctx context.Context, recordModel *models.MedicalRecord) (recordID string, err error)
	FindByID(ctx context.Context, recordID string) (*models.MedicalRecord, error)
	FindByPatientID(ctx context.Context, patientID string) ([]models.MedicalRecord, error)
}
