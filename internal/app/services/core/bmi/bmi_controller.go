package bmi

import (
	"context"
	"medrecord-service/internal/pkg/constvars"
	"medrecord-service/internal/pkg/dto/requests"
	"medrecord-service/internal/pkg/exceptions"
	"medrecord-service/internal/pkg/utils"
	"net/http"
	"time"

	"go.uber.org/zap"
)

type BMIController struct {
	BMIUsecase BMIUsecase
	Log        *zap.Logger
}

func NewBMIController(bmiUsecase BMIUsecase, log *zap.Logger) *BMIController {
	return &BMIController{
		BMIUsecase: bmiUsecase,
		Log:        log,
	}
}

func (ctrl *BMIController) CalculateBMI(w http.ResponseWriter, r *http.Request) {
	err := r.ParseForm()
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseForm(err))
		return
	}

	request := &requests.CalculateBMI{
		Weight: r.PostFormValue("weight"),
		Height: r.PostFormValue("height"),
	}

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 20*time.Second)
	defer cancel()

	body, err := ctrl.BMIUsecase.CalculateBMI(ctx, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildRawJSONResponse(w, constvars.StatusOK, body)
}
