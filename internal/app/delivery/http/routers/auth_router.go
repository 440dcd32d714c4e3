package routers

import (
	"policlinico-service/internal/app/delivery/http/middlewares"
	"policlinico-service/internal/app/services/core/auth"

	"github.com/go-chi/chi/v5"
)

func attachAuthRoutes(router chi.Router, middlewares *middlewares.Middlewares, authController *auth.AuthController) {
	router.Post("/login", authController.Login)
	router.Post("/register", authController.Register)
	router.Post("/forgot-password", authController.ForgotPassword)
	router.Post("/reset-password", authController.ResetPassword)
	router.With(middlewares.Authenticate).Post("/logout", authController.Logout)
}

func attachSessionRoutes(router chi.Router, middlewares *middlewares.Middlewares, authController *auth.AuthController) {
	router.With(middlewares.Authenticate).Get("/capabilities", authController.Capabilities)
}
