package routers

import (
	"medrecord-service/internal/app/delivery/http/middlewares"
	"medrecord-service/internal/app/services/core/auth"

	"github.com/go-chi/chi/v5"
)

func attachAuthRoutes(router chi.Router, middlewares *middlewares.Middlewares, authController *auth.AuthController) {
	router.With(middlewares.LimitTokenIssuance).Post("/token", authController.Token)
	router.With(middlewares.Authenticate).Get("/private-data", authController.PrivateData)
}
