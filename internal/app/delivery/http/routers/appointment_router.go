package routers

import (
	"mediconnect-service/internal/app/delivery/http/controllers"
	"mediconnect-service/internal/app/delivery/http/middlewares"
	"mediconnect-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachAppointmentRoutes(router chi.Router, mw *middlewares.Middlewares, appointmentController *controllers.AppointmentController) {
	router.Use(mw.Authenticate)
	router.Get("/upcoming", appointmentController.GetUpcomingAppointments)
	router.Get("/history", appointmentController.GetAppointmentHistory)
	router.Get("/available-slots/{doctorId}", appointmentController.GetAvailableSlots)
	router.With(mw.RequireRole(constvars.MediConnectRolePatient)).Post("/book", appointmentController.BookAppointment)
	router.With(mw.RequireRole(constvars.MediConnectRolePatient)).Put("/{appointmentId}/cancel", appointmentController.CancelAppointment)
}
