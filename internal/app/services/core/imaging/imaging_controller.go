package imaging

import (
	"context"
	"medrecord-service/internal/pkg/constvars"
	"medrecord-service/internal/pkg/exceptions"
	"medrecord-service/internal/pkg/utils"
	"net/http"
	"time"

	"go.uber.org/zap"
)

type ImagingController struct {
	ImagingUsecase ImagingUsecase
	Log            *zap.Logger
}

func NewImagingController(imagingUsecase ImagingUsecase, log *zap.Logger) *ImagingController {
	return &ImagingController{
		ImagingUsecase: imagingUsecase,
		Log:            log,
	}
}

func (ctrl *ImagingController) ProcessImage(w http.ResponseWriter, r *http.Request) {
	file, header, err := r.FormFile("file")
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseMultipartForm(err))
		return
	}
	defer file.Close()

	ctx, cancel := context.WithTimeout(r.Context(), 60*time.Second)
	defer cancel()

	classification, err := ctrl.ImagingUsecase.ClassifyImage(ctx, file, header.Filename, header.Header.Get(constvars.HeaderContentType), header.Size)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildJSONResponse(w, constvars.StatusOK, classification)
}
