package bmi

import (
	"context"
	"medrecord-service/internal/pkg/dto/requests"
)

type bmiUsecase struct {
	BMIClient BMIClient
}

func NewBMIUsecase(bmiClient BMIClient) BMIUsecase {
	return &bmiUsecase{BMIClient: bmiClient}
}

// CalculateBMI proxies the calculation upstream and hands back the raw JSON
// body unmodified.
func (uc *bmiUsecase) CalculateBMI(ctx context.Context, request *requests.CalculateBMI) ([]byte, error) {
	return uc.BMIClient.Calculate(ctx, request.Weight, request.Height)
}
