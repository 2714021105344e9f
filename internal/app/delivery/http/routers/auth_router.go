package routers

import (
	"mediconnect-service/internal/app/delivery/http/controllers"
	"mediconnect-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachAuthRoutes(router chi.Router, mw *middlewares.Middlewares, authLimiter *middlewares.RateLimiter, authController *controllers.AuthController) {
	router.With(authLimiter.Limit).Post("/register", authController.Register)
	router.With(authLimiter.Limit).Post("/login", authController.Login)
	router.With(mw.Authenticate).Post("/logout", authController.Logout)
}
