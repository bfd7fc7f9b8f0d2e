package requests

type Token struct {
	Username string   `json:"username" validate:"required"`
	Password string   `json:"password" validate:"required"`
	Scopes   []string `json:"scopes"`
}
