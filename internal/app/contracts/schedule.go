package contracts

import (
	"context"
	"mediconnect-service/internal/app/models"
	"time"
)

type ScheduleRepository interface {
	FindByDoctorID(ctx context.Context, doctorID string) ([]models.DoctorSchedule, error)
	FindByDoctorIDAndDay(ctx context.Context, doctorID string, day time.Weekday) (*models.DoctorSchedule, error)
	CreateSchedule(ctx context.Context, scheduleModel *models.DoctorSchedule) (scheduleID string, err error)
	UpdateSchedule(ctx context.Context, scheduleModel *models.DoctorSchedule) error
}
