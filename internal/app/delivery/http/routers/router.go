package routers

import (
	"medrecord-service/internal/app/config"
	"medrecord-service/internal/app/delivery/http/middlewares"
	"medrecord-service/internal/app/services/core/auth"
	"medrecord-service/internal/app/services/core/bmi"
	"medrecord-service/internal/app/services/core/imaging"
	"medrecord-service/internal/app/services/core/patients"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/sirupsen/logrus"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	lifecycleLog *logrus.Logger,
	middlewares *middlewares.Middlewares,
	authController *auth.AuthController,
	patientController *patients.PatientController,
	imagingController *imaging.ImagingController,
	bmiController *bmi.BMIController,
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

	router.Use(middlewares.RequestID)
	router.Use(middlewares.RequestLogger(lifecycleLog))

	// Paths intentionally carry no version prefix; clients depend on them as-is.
	attachAuthRoutes(router, middlewares, authController)

	router.Route("/patient", func(r chi.Router) {
		attachPatientRoutes(r, middlewares, patientController)
	})

	attachImagingRoutes(router, imagingController)
	attachBMIRoutes(router, bmiController)
}
