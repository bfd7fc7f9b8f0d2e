package bmi

import (
	"context"
	"fmt"
	"io"
	"medrecord-service/internal/app/config"
	"medrecord-service/internal/pkg/constvars"
	"medrecord-service/internal/pkg/exceptions"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"
)

// RapidAPIClient calls the hosted BMI calculator. A client-side limiter keeps
// the service inside the upstream plan's request quota.
type RapidAPIClient struct {
	BaseURL    string
	APIKey     string
	APIHost    string
	HTTPClient *http.Client
	Limiter    *rate.Limiter
}

func NewRapidAPIClient(bmiConfig config.BMI) BMIClient {
	return &RapidAPIClient{
		BaseURL:    bmiConfig.BaseURL,
		APIKey:     bmiConfig.APIKey,
		APIHost:    bmiConfig.APIHost,
		HTTPClient: &http.Client{Timeout: 15 * time.Second},
		Limiter:    rate.NewLimiter(rate.Limit(bmiConfig.RequestsPerSecond), 1),
	}
}

func (c *RapidAPIClient) Calculate(ctx context.Context, weight, height string) ([]byte, error) {
	if err := c.Limiter.Wait(ctx); err != nil {
		return nil, exceptions.ErrBMIUpstream(err)
	}

	query := url.Values{}
	query.Set("weight", weight)
	query.Set("height", height)

	request, err := http.NewRequestWithContext(ctx, constvars.MethodGet, fmt.Sprintf("%s?%s", c.BaseURL, query.Encode()), nil)
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	request.Header.Set(constvars.HeaderRapidAPIKey, c.APIKey)
	request.Header.Set(constvars.HeaderRapidAPIHost, c.APIHost)

	response, err := c.HTTPClient.Do(request)
	if err != nil {
		return nil, exceptions.ErrBMIUpstream(err)
	}
	defer response.Body.Close()

	body, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, exceptions.ErrBMIUpstream(err)
	}
	if response.StatusCode >= constvars.StatusBadRequest {
		return nil, exceptions.ErrBMIUpstream(fmt.Errorf("upstream returned status %d", response.StatusCode))
	}
	return body, nil
}
