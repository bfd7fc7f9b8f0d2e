package routers

import (
	"medrecord-service/internal/app/delivery/http/middlewares"
	"medrecord-service/internal/app/services/core/patients"

	"github.com/go-chi/chi/v5"
)

func attachPatientRoutes(router chi.Router, middlewares *middlewares.Middlewares, patientController *patients.PatientController) {
	router.With(middlewares.Authenticate).Post("/", patientController.AddPatient)
	router.With(middlewares.Authenticate).Get("/", patientController.GetPatients)
	router.With(middlewares.Authenticate).Get("/{patientID}", patientController.GetPatient)
	router.With(middlewares.Authenticate).Put("/{patientID}", patientController.UpdatePatient)
	router.With(middlewares.Authenticate).Delete("/{patientID}", patientController.DeletePatient)
}
