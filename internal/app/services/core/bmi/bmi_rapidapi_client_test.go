package bmi

import (
	"context"
	"medrecord-service/internal/app/config"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestClient(upstreamURL string) BMIClient {
	return NewRapidAPIClient(config.BMI{
		BaseURL:           upstreamURL,
		APIKey:            "test-key",
		APIHost:           "test-host",
		RequestsPerSecond: 100,
	})
}

func TestCalculateForwardsParamsAndReturnsRawBody(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "80", r.URL.Query().Get("weight"))
		assert.Equal(t, "1.8", r.URL.Query().Get("height"))
		assert.Equal(t, "test-key", r.Header.Get("X-RapidAPI-Key"))
		assert.Equal(t, "test-host", r.Header.Get("X-RapidAPI-Host"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"bmi":24.69,"weight":"80","height":"1.8"}`))
	}))
	defer upstream.Close()

	client := newTestClient(upstream.URL)

	body, err := client.Calculate(context.Background(), "80", "1.8")
	assert.NoError(t, err)
	assert.JSONEq(t, `{"bmi":24.69,"weight":"80","height":"1.8"}`, string(body))
}

func TestCalculateSurfacesUpstreamFailure(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer upstream.Close()

	client := newTestClient(upstream.URL)

	_, err := client.Calculate(context.Background(), "80", "1.8")
	assert.Error(t, err)
}

func TestCalculateSurfacesNetworkFailure(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	upstream.Close()

	client := newTestClient(upstream.URL)

	_, err := client.Calculate(context.Background(), "80", "1.8")
	assert.Error(t, err)
}
