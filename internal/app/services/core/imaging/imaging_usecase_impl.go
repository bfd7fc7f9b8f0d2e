package imaging

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"io"
	"medrecord-service/internal/app/services/shared/storage"
	"medrecord-service/internal/pkg/constvars"
	"medrecord-service/internal/pkg/dto/responses"
	"medrecord-service/internal/pkg/exceptions"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/image/draw"
)

// classifierLabels is index-aligned with the model's output vector.
var classifierLabels = []string{
	constvars.ClassifierLabelGlioma,
	constvars.ClassifierLabelMeningioma,
	constvars.ClassifierLabelNoTumor,
	constvars.ClassifierLabelPituatary,
}

type imagingUsecase struct {
	Classifier Classifier
	Storage    storage.Storage
	Log        *zap.Logger
}

func NewImagingUsecase(classifier Classifier, objectStorage storage.Storage, log *zap.Logger) ImagingUsecase {
	return &imagingUsecase{
		Classifier: classifier,
		Storage:    objectStorage,
		Log:        log,
	}
}

func (uc *imagingUsecase) ClassifyImage(ctx context.Context, file io.Reader, filename, contentType string, size int64) (*responses.Classification, error) {
	data, err := io.ReadAll(file)
	if err != nil {
		return nil, exceptions.ErrClassifierDecodeImage(err)
	}

	uc.archiveScan(ctx, data, filename, contentType, size)

	input, err := prepareImage(data)
	if err != nil {
		return nil, err
	}

	probabilities, err := uc.Classifier.Predict(ctx, input)
	if err != nil {
		return nil, err
	}
	if len(probabilities) != len(classifierLabels) {
		return nil, exceptions.ErrClassifierBadPrediction(fmt.Errorf("expected %d probabilities, got %d", len(classifierLabels), len(probabilities)))
	}

	label := classifierLabels[argmax(probabilities)]
	return &responses.Classification{
		Label: fmt.Sprintf(constvars.ClassifierResultFormat, label),
	}, nil
}

// archiveScan keeps a copy of the uploaded scan in object storage. Archival is
// best effort and must never fail the classification request.
func (uc *imagingUsecase) archiveScan(ctx context.Context, data []byte, filename, contentType string, size int64) {
	objectName := fmt.Sprintf("%s_%s", uuid.NewString(), filename)
	if _, err := uc.Storage.UploadFile(ctx, bytes.NewReader(data), objectName, contentType, size); err != nil {
		uc.Log.Warn("failed to archive uploaded scan",
			zap.String("object_name", objectName),
			zap.Error(err),
		)
	}
}

// prepareImage decodes the upload, resizes it to the model's square input
// resolution and flattens it to grayscale intensities normalized into [0, 1].
func prepareImage(data []byte) ([]float64, error) {
	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, exceptions.ErrClassifierDecodeImage(err)
	}

	side := constvars.ClassifierImageSize
	gray := image.NewGray(image.Rect(0, 0, side, side))
	draw.ApproxBiLinear.Scale(gray, gray.Bounds(), src, src.Bounds(), draw.Src, nil)

	input := make([]float64, side*side)
	for i, pixel := range gray.Pix {
		input[i] = float64(pixel) / 255.0
	}
	return input, nil
}

func argmax(values []float64) int {
	best := 0
	for i, value := range values {
		if value > values[best] {
			best = i
		}
	}
	return best
}
