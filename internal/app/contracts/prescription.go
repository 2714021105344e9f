package contracts

import (
	"context"
	"mediconnect-service/internal/app/models"
	"mediconnect-service/internal/pkg/dto/requests"
	"mediconnect-service/internal/pkg/dto/responses"
)

type PrescriptionUsecase interface {
	CreatePrescription(ctx context.Context, session *models.Session, request *requests.CreatePrescription) (*responses.Prescription, error)
	GetPrescriptionsByPatient(ctx context.Context, session *models.Session) ([]responses.Prescription, error)
}

type PrescriptionRepository interface {
	CreatePrescription(ctx context.Context, prescriptionModel *models.Prescription) (prescriptionID string, err error)
	FindByPatientID(ctx context.Context, patientID string) ([]models.Prescription, error)
}
