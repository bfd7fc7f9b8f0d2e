package imaging

import (
	"context"
	"io"
	"medrecord-service/internal/pkg/dto/responses"
)

type ImagingUsecase interface {
	ClassifyImage(ctx context.Context, file io.Reader, filename, contentType string, size int64) (*responses.Classification, error)
}

// Classifier runs the pretrained model artifact over a flattened, normalized
// grayscale tensor and returns one probability per category.
type Classifier interface {
	Predict(ctx context.Context, input []float64) ([]float64, error)
}
