package routers

import (
	"mediconnect-service/internal/app/delivery/http/controllers"
	"mediconnect-service/internal/app/delivery/http/middlewares"
	"mediconnect-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachPrescriptionRoutes(router chi.Router, mw *middlewares.Middlewares, prescriptionController *controllers.PrescriptionController) {
	router.Use(mw.Authenticate)
	router.Get("/", prescriptionController.GetPrescriptions)
	router.With(mw.RequireRole(constvars.MediConnectRoleDoctor)).Post("/", prescriptionController.CreatePrescription)
}
