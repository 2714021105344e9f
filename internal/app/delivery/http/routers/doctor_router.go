package routers

import (
	"mediconnect-service/internal/app/delivery/http/controllers"
	"mediconnect-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachDoctorRoutes(router chi.Router, mw *middlewares.Middlewares, doctorController *controllers.DoctorController) {
	router.Use(mw.Authenticate)
	router.Get("/", doctorController.GetAllDoctors)
	router.Get("/{doctorId}", doctorController.GetDoctorByID)
}
