package middlewares

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestRequestLoggerRecordsRequestAndPassesThrough(t *testing.T) {
	middlewares, _ := newTestMiddlewares(t)

	var buf bytes.Buffer
	lifecycleLog := logrus.New()
	lifecycleLog.SetOutput(&buf)

	reached := false
	handler := middlewares.RequestLogger(lifecycleLog)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reached = true
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/patient/", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.True(t, reached)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, buf.String(), "GET")
	assert.Contains(t, buf.String(), "/patient/")
}
