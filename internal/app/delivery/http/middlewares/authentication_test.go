package middlewares

import (
	"medrecord-service/internal/app/config"
	"medrecord-service/internal/app/models"
	"medrecord-service/internal/app/services/core/auth"
	"medrecord-service/internal/pkg/constvars"
	"medrecord-service/internal/pkg/utils"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func newTestMiddlewares(t *testing.T) (*Middlewares, *config.InternalConfig) {
	t.Helper()
	internalConfig := &config.InternalConfig{
		JWT: config.JWT{
			Secret:          "your-secret-key",
			ExpTimeInMinute: 30,
		},
		Auth: config.Auth{
			Username: "testuser",
			Password: "testpassword",
		},
	}
	credentialRepository := auth.NewCredentialInMemoryRepository(internalConfig)
	authUsecase := auth.NewAuthUsecase(credentialRepository, internalConfig)
	return NewMiddlewares(zap.NewNop(), authUsecase, nil, internalConfig), internalConfig
}

func TestAuthenticateRejectsMissingToken(t *testing.T) {
	middlewares, _ := newTestMiddlewares(t)

	handler := middlewares.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not be reached without a token")
	}))

	req := httptest.NewRequest(http.MethodGet, "/patient/", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestAuthenticateRejectsGarbageToken(t *testing.T) {
	middlewares, _ := newTestMiddlewares(t)

	handler := middlewares.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not be reached with an invalid token")
	}))

	req := httptest.NewRequest(http.MethodGet, "/patient/", nil)
	req.Header.Set(constvars.HeaderAuthorization, "Bearer not-a-token")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestAuthenticateSetsCurrentUser(t *testing.T) {
	middlewares, internalConfig := newTestMiddlewares(t)

	token, err := utils.GenerateAccessToken("testuser", nil, internalConfig.JWT.Secret, 30*time.Minute)
	assert.NoError(t, err)

	reached := false
	handler := middlewares.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reached = true
		user, ok := r.Context().Value(constvars.CONTEXT_CURRENT_USER_KEY).(*models.User)
		assert.True(t, ok)
		assert.Equal(t, "testuser", user.Username)
	}))

	req := httptest.NewRequest(http.MethodGet, "/patient/", nil)
	req.Header.Set(constvars.HeaderAuthorization, constvars.AuthSchemeBearer+token)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.True(t, reached)
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestRequestIDIsEchoedAndPrefixed(t *testing.T) {
	middlewares, _ := newTestMiddlewares(t)

	handler := middlewares.RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
		assert.True(t, ok)
		assert.Contains(t, requestID, constvars.REQUEST_ID_PREFIX)
	}))

	req := httptest.NewRequest(http.MethodGet, "/patient/", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Contains(t, rr.Header().Get(constvars.HeaderXRequestID), constvars.REQUEST_ID_PREFIX)
}
