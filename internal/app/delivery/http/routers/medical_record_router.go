package routers

import (
	"mediconnect-service/internal/app/delivery/http/controllers"
	"mediconnect-service/internal/app/delivery/http/middlewares"
	"mediconnect-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachMedicalRecordRoutes(router chi.Router, mw *middlewares.Middlewares, medicalRecordController *controllers.MedicalRecordController) {
	router.Use(mw.Authenticate)
	router.Get("/", medicalRecordController.GetMedicalRecords)
	router.Get("/{recordId}/download", medicalRecordController.GetMedicalRecordDownloadURL)
	router.With(mw.RequireRole(constvars.MediConnectRoleDoctor, constvars.MediConnectRoleAdmin)).Post("/", medicalRecordController.CreateMedicalRecord)
}
