package responses

type Token struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type UserInfo struct {
	Username string `json:"username"`
}

type PrivateData struct {
	Message string   `json:"message"`
	User    UserInfo `json:"user"`
}
