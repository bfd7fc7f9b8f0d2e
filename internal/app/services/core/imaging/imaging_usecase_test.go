package imaging

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"io"
	"medrecord-service/internal/pkg/constvars"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockClassifier struct {
	mock.Mock
}

func (m *MockClassifier) Predict(ctx context.Context, input []float64) ([]float64, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]float64), args.Error(1)
}

type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) UploadFile(ctx context.Context, file io.Reader, objectName, contentType string, size int64) (string, error) {
	args := m.Called(ctx, file, objectName, contentType, size)
	return args.String(0), args.Error(1)
}

func encodeTestPNG(t *testing.T, width, height int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: 120, A: 255})
		}
	}
	var buf bytes.Buffer
	assert.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestPrepareImageNormalizesAndResizes(t *testing.T) {
	data := encodeTestPNG(t, 200, 150)

	input, err := prepareImage(data)
	assert.NoError(t, err)
	assert.Len(t, input, constvars.ClassifierImageSize*constvars.ClassifierImageSize)

	for _, value := range input {
		assert.GreaterOrEqual(t, value, 0.0)
		assert.LessOrEqual(t, value, 1.0)
	}
}

func TestPrepareImageRejectsGarbage(t *testing.T) {
	_, err := prepareImage([]byte("definitely not an image"))
	assert.Error(t, err)
}

func TestClassifyImagePicksHighestProbability(t *testing.T) {
	classifier := new(MockClassifier)
	objectStorage := new(MockStorage)
	uc := NewImagingUsecase(classifier, objectStorage, zap.NewNop())

	data := encodeTestPNG(t, 64, 64)

	objectStorage.On("UploadFile", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return("object-name", nil)
	classifier.On("Predict", mock.Anything, mock.Anything).Return([]float64{0.1, 0.7, 0.15, 0.05}, nil)

	classification, err := uc.ClassifyImage(context.Background(), bytes.NewReader(data), "scan.png", "image/png", int64(len(data)))
	assert.NoError(t, err)
	assert.Equal(t, "This image represents  ------>>> Meningioma", classification.Label)
}

func TestClassifyImageStorageFailureIsNonFatal(t *testing.T) {
	classifier := new(MockClassifier)
	objectStorage := new(MockStorage)
	uc := NewImagingUsecase(classifier, objectStorage, zap.NewNop())

	data := encodeTestPNG(t, 64, 64)

	objectStorage.On("UploadFile", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return("", assert.AnError)
	classifier.On("Predict", mock.Anything, mock.Anything).Return([]float64{0.9, 0.05, 0.03, 0.02}, nil)

	classification, err := uc.ClassifyImage(context.Background(), bytes.NewReader(data), "scan.png", "image/png", int64(len(data)))
	assert.NoError(t, err)
	assert.Equal(t, "This image represents  ------>>> Glioma", classification.Label)
}

func TestClassifyImageRejectsShortPredictionVector(t *testing.T) {
	classifier := new(MockClassifier)
	objectStorage := new(MockStorage)
	uc := NewImagingUsecase(classifier, objectStorage, zap.NewNop())

	data := encodeTestPNG(t, 64, 64)

	objectStorage.On("UploadFile", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return("object-name", nil)
	classifier.On("Predict", mock.Anything, mock.Anything).Return([]float64{0.5, 0.5}, nil)

	_, err := uc.ClassifyImage(context.Background(), bytes.NewReader(data), "scan.png", "image/png", int64(len(data)))
	assert.Error(t, err)
}

func TestArgmax(t *testing.T) {
	assert.Equal(t, 0, argmax([]float64{0.9, 0.05, 0.03, 0.02}))
	assert.Equal(t, 3, argmax([]float64{0.1, 0.2, 0.3, 0.4}))
}
