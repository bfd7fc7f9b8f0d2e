package requests

type CalculateBMI struct {
	Weight string `json:"weight" validate:"required"`
	Height string `json:"height" validate:"required"`
}
