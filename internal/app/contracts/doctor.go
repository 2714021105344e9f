package contracts

import (
	"context"
	"mediconnect-service/internal/app/models"
	"mediconnect-service/internal/pkg/dto/requests"
	"mediconnect-service/internal/pkg/dto/responses"
)

type DoctorUsecase interface {
	GetAllDoctors(ctx context.Context, query *requests.QueryParams) ([]responses.Doctor, int64, error)
	GetDoctorByID(ctx context.Context, doctorID string) (*responses.Doctor, error)
}

type DoctorRepository interface {
	FindAll(ctx context.Context, specialization string, page, pageSize int) ([]models.Doctor, int64, error)
	FindByID(ctx context.Context, doctorID string) (*models.Doctor, error)
	CreateDoctor(ctx context.Context, doctorModel *models.Doctor) (doctorID string, err error)
	UpdateDoctor(ctx context.Context, doctorModel *models.Doctor) error
}
