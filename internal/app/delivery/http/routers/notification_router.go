package routers

import (
	"mediconnect-service/internal/app/delivery/http/controllers"
	"mediconnect-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachNotificationRoutes(router chi.Router, mw *middlewares.Middlewares, notificationController *controllers.NotificationController) {
	router.Use(mw.Authenticate)
	router.Get("/", notificationController.GetNotifications)
	router.Put("/read-all", notificationController.MarkAllNotificationsRead)
	router.Put("/{notificationId}/read", notificationController.MarkNotificationRead)
}
