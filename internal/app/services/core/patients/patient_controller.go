package patients

import (
	"context"
	"fmt"
	"medrecord-service/internal/pkg/constvars"
	"medrecord-service/internal/pkg/dto/requests"
	"medrecord-service/internal/pkg/exceptions"
	"medrecord-service/internal/pkg/utils"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type PatientController struct {
	PatientUsecase PatientUsecase
	Log            *zap.Logger
}

func NewPatientController(patientUsecase PatientUsecase, log *zap.Logger) *PatientController {
	return &PatientController{
		PatientUsecase: patientUsecase,
		Log:            log,
	}
}

func (ctrl *PatientController) AddPatient(w http.ResponseWriter, r *http.Request) {
	// Bind body to request
	request := new(requests.CreatePatient)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	// Validate request
	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	patient, err := ctrl.PatientUsecase.CreatePatient(ctx, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildEnvelopeResponse(w, patient, constvars.PatientAddedSuccessMessage)
}

func (ctrl *PatientController) GetPatients(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	patients, err := ctrl.PatientUsecase.ListPatients(ctx)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	if len(patients) > 0 {
		utils.BuildEnvelopeResponse(w, patients, constvars.PatientsRetrievedMessage)
		return
	}
	utils.BuildEnvelopeResponse(w, patients, constvars.PatientEmptyListMessage)
}

func (ctrl *PatientController) GetPatient(w http.ResponseWriter, r *http.Request) {
	patientID := chi.URLParam(r, "patientID")

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	patient, err := ctrl.PatientUsecase.GetPatient(ctx, patientID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	if patient == nil {
		utils.BuildEnvelopeError(w, constvars.EnvelopeErrorOccurredWithDot, constvars.StatusNotFound, constvars.PatientNotExistMessage)
		return
	}

	utils.BuildEnvelopeResponse(w, patient, constvars.PatientRetrievedMessage)
}

func (ctrl *PatientController) UpdatePatient(w http.ResponseWriter, r *http.Request) {
	patientID := chi.URLParam(r, "patientID")

	request := new(requests.UpdatePatient)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	patient, err := ctrl.PatientUsecase.UpdatePatient(ctx, patientID, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	if patient == nil {
		// Empty payloads and unknown identities share one error envelope.
		utils.BuildEnvelopeError(w, constvars.EnvelopeErrorOccurred, constvars.StatusNotFound, constvars.PatientUpdateErrorMessage)
		return
	}

	confirmation := fmt.Sprintf(constvars.PatientUpdateConfirmFormat, patientID)
	utils.BuildEnvelopeResponse(w, confirmation, constvars.PatientUpdatedMessage)
}

func (ctrl *PatientController) DeletePatient(w http.ResponseWriter, r *http.Request) {
	patientID := chi.URLParam(r, "patientID")

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	deleted, err := ctrl.PatientUsecase.DeletePatient(ctx, patientID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	if !deleted {
		utils.BuildEnvelopeError(w, constvars.EnvelopeErrorOccurred, constvars.StatusNotFound, fmt.Sprintf(constvars.PatientDeleteNotExistFormat, patientID))
		return
	}

	confirmation := fmt.Sprintf(constvars.PatientDeleteConfirmFormat, patientID)
	utils.BuildEnvelopeResponse(w, confirmation, constvars.PatientDeletedMessage)
}
