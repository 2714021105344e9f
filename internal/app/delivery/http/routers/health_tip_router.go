package routers

import (
	"mediconnect-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

// Health tips are public content, no session required.
func attachHealthTipRoutes(router chi.Router, healthTipController *controllers.HealthTipController) {
	router.Get("/", healthTipController.GetHealthTips)
}
