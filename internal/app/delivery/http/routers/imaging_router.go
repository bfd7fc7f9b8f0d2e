package routers

import (
	"medrecord-service/internal/app/services/core/imaging"

	"github.com/go-chi/chi/v5"
)

func attachImagingRoutes(router chi.Router, imagingController *imaging.ImagingController) {
	router.Post("/process_image", imagingController.ProcessImage)
}
