package routers

import (
	"mediconnect-service/internal/app/delivery/http/controllers"
	"mediconnect-service/internal/app/delivery/http/middlewares"
	"mediconnect-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachFeedbackRoutes(router chi.Router, mw *middlewares.Middlewares, feedbackController *controllers.FeedbackController) {
	router.Use(mw.Authenticate)
	router.Post("/", feedbackController.SubmitFeedback)
	router.With(mw.RequireRole(constvars.MediConnectRoleAdmin)).Get("/", feedbackController.GetAllFeedback)
}
