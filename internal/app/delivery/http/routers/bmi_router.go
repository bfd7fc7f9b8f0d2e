package routers

import (
	"medrecord-service/internal/app/services/core/bmi"

	"github.com/go-chi/chi/v5"
)

func attachBMIRoutes(router chi.Router, bmiController *bmi.BMIController) {
	router.Post("/calculate_bmi", bmiController.CalculateBMI)
}
