package bmi

import (
	"context"
	"medrecord-service/internal/pkg/dto/requests"
)

type BMIUsecase interface {
	CalculateBMI(ctx context.Context, request *requests.CalculateBMI) ([]byte, error)
}

// BMIClient fetches a BMI calculation from the upstream API and returns its
// response body verbatim.
type BMIClient interface {
	Calculate(ctx context.Context, weight, height string) ([]byte, error)
}
