package responses

type Classification struct {
	Label string `json:"label"`
}
