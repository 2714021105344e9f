package routers

import (
	"mediconnect-service/internal/app/config"
	"mediconnect-service/internal/app/delivery/http/controllers"
	"mediconnect-service/internal/app/delivery/http/middlewares"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	mw *middlewares.Middlewares,
	authController *controllers.AuthController,
	doctorController *controllers.DoctorController,
	appointmentController *controllers.AppointmentController,
	notificationController *controllers.NotificationController,
	prescriptionController *controllers.PrescriptionController,
	medicalRecordController *controllers.MedicalRecordController,
	feedbackController *controllers.FeedbackController,
	healthTipController *controllers.HealthTipController,
) {
	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	// Rate limiting middleware using httprate
	rateLimiter := httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second)
	router.Use(rateLimiter)

	router.Use(mw.RequestIDMiddleware)
	router.Use(mw.Logging(mw.Log))
	router.Use(mw.ErrorHandler)

	// Stricter limiter on credential endpoints.
	authLimiter := middlewares.NewRateLimiter(internalConfig.App.AuthRequestsPerMinute, time.Minute, 5*time.Minute)

	router.Route(internalConfig.App.EndpointPrefix, func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			attachAuthRoutes(r, mw, authLimiter, authController)
		})

		r.Route("/doctors", func(r chi.Router) {
			attachDoctorRoutes(r, mw, doctorController)
		})

		r.Route("/appointments", func(r chi.Router) {
			attachAppointmentRoutes(r, mw, appointmentController)
		})

		r.Route("/notifications", func(r chi.Router) {
			attachNotificationRoutes(r, mw, notificationController)
		})

		r.Route("/prescriptions", func(r chi.Router) {
			attachPrescriptionRoutes(r, mw, prescriptionController)
		})

		r.Route("/medical-records", func(r chi.Router) {
			attachMedicalRecordRoutes(r, mw, medicalRecordController)
		})

		r.Route("/feedback", func(r chi.Router) {
			attachFeedbackRoutes(r, mw, feedbackController)
		})

		r.Route("/health-tips", func(r chi.Router) {
			attachHealthTipRoutes(r, healthTipController)
		})
	})
}
