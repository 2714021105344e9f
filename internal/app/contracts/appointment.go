package contracts

import (
	"context"
	"mediconnect-service/internal/app/models"
	"mediconnect-service/internal/pkg/dto/requests"
	"mediconnect-service/internal/pkg/dto/responses"
)

type AppointmentUsecase interface {
	BookAppointment(ctx context.Context, session *models.Session, request *requests.BookAppointment) (*responses.Appointment, error)
	GetUpcomingAppointments(ctx context.Context, session *models.Session) ([]responses.Appointment, error)
	GetAppointmentHistory(ctx context.Context, session *models.Session) ([]responses.Appointment, error)
	CancelAppointment(ctx context.Context, session *models.Session, appointmentID string) error
}

type AppointmentRepository interface {
	CreateAppointment(ctx context.Context, appointmentModel *models.Appointment) (appointmentID string, err error)
	FindByID(ctx context.Context, appointmentID string) (*models.Appointment, error)
	FindUpcomingByPatientID(ctx context.Context, patientID, fromDate string) ([]models.Appointment, error)
	FindHistoryByPatientID(ctx context.Context, patientID, untilDate string) ([]models.Appointment, error)
	FindUpcomingByDoctorID(ctx context.Context, doctorID, fromDate string) ([]models.Appointment, error)
	UpdateAppointment(ctx context.Context, appointmentModel *models.Appointment) error
}
