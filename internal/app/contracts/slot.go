package contracts

import (
	"context"
	"mediconnect-service/internal/app/models"
	"mediconnect-service/internal/pkg/dto/responses"
)

type SlotUsecase interface {
	GetAvailableSlots(ctx context.Context, doctorID, date string) ([]responses.AvailableTimeSlot, error)
}

type SlotRepository interface {
	FindByDoctorIDAndDate(ctx context.Context, doctorID, date string) ([]models.TimeSlot, error)
	FindByID(ctx context.Context, slotID string) (*models.TimeSlot, error)
	FindByDoctorDateAndStartTime(ctx context.Context, doctorID, date, startTime string) (*models.TimeSlot, error)
	CreateSlots(ctx context.Context, slotModels []models.TimeSlot) error
	// MarkBooked flips isBooked only when the slot is currently free and
	// reports whether the flip happened.
	MarkBooked(ctx context.Context, slotID string) (bool, error)
	MarkFree(ctx context.Context, slotID string) error
}
