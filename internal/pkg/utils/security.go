package utils

import (
	"medrecord-service/internal/pkg/constvars"
	"medrecord-service/internal/pkg/exceptions"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
)

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// GenerateAccessToken signs an HS256 token carrying the subject and granted scopes.
func GenerateAccessToken(username string, scopes []string, secret string, expiry time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":    username,
		"scopes": scopes,
		"exp":    time.Now().Add(expiry).Unix(),
	})

	tokenString, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", exceptions.ErrTokenGenerate(err)
	}

	return tokenString, nil
}

// ParseAccessToken validates signature and expiry, returning the subject and scopes.
func ParseAccessToken(tokenString, secret string) (string, []string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, exceptions.WrapWithoutError(constvars.StatusUnauthorized, constvars.ErrClientNotLoggedIn, constvars.ErrDevAuthSigningMethod)
		}
		return []byte(secret), nil
	})
	if err != nil {
		return "", nil, exceptions.ErrTokenInvalidOrExpired(err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", nil, exceptions.ErrTokenInvalidOrExpired(nil)
	}

	subject, ok := claims["sub"].(string)
	if !ok || subject == "" {
		return "", nil, exceptions.ErrTokenInvalidOrExpired(nil)
	}

	var scopes []string
	if rawScopes, ok := claims["scopes"].([]interface{}); ok {
		for _, raw := range rawScopes {
			if scope, ok := raw.(string); ok {
				scopes = append(scopes, scope)
			}
		}
	}

	return subject, scopes, nil
}
