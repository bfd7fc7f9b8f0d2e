package models

// User is a credential record held by the in-memory credential repository.
type User struct {
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
}
