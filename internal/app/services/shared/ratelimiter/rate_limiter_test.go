package ratelimiter

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakeRedisRepository struct {
	counts map[string]int64
}

func newFakeRedisRepository() *fakeRedisRepository {
	return &fakeRedisRepository{counts: make(map[string]int64)}
}

func (f *fakeRedisRepository) IncrementWithTTL(ctx context.Context, key string, ttl time.Duration) (int64, error) {
	f.counts[key]++
	return f.counts[key], nil
}

func TestApplyResourceLimiterAllowsWithinQuota(t *testing.T) {
	limiter := NewResourceLimiter(newFakeRedisRepository(), zap.NewNop())

	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	input := &ApplyResourceLimiterInput{
		ResourceName:      "203.0.113.10",
		LimiterGroupName:  "token-issuance",
		WindowDurationSec: 60,
		MaxQuota:          3,
		NowUTC:            now,
	}

	for i := 0; i < 3; i++ {
		output, err := limiter.ApplyResourceLimiter(context.Background(), input)
		assert.NoError(t, err)
		assert.True(t, output.Allowed)
	}

	output, err := limiter.ApplyResourceLimiter(context.Background(), input)
	assert.NoError(t, err)
	assert.False(t, output.Allowed)
	assert.Greater(t, output.RetryAfterSecs, 0)
}

func TestApplyResourceLimiterResetsOnNewWindow(t *testing.T) {
	repo := newFakeRedisRepository()
	limiter := NewResourceLimiter(repo, zap.NewNop())

	now := time.Date(2026, 8, 1, 12, 0, 30, 0, time.UTC)
	input := &ApplyResourceLimiterInput{
		ResourceName:      "203.0.113.10",
		LimiterGroupName:  "token-issuance",
		WindowDurationSec: 60,
		MaxQuota:          1,
		NowUTC:            now,
	}

	output, err := limiter.ApplyResourceLimiter(context.Background(), input)
	assert.NoError(t, err)
	assert.True(t, output.Allowed)

	output, err = limiter.ApplyResourceLimiter(context.Background(), input)
	assert.NoError(t, err)
	assert.False(t, output.Allowed)

	input.NowUTC = now.Add(time.Minute)
	output, err = limiter.ApplyResourceLimiter(context.Background(), input)
	assert.NoError(t, err)
	assert.True(t, output.Allowed)
}

func TestApplyResourceLimiterZeroQuotaAllowsAll(t *testing.T) {
	limiter := NewResourceLimiter(newFakeRedisRepository(), zap.NewNop())

	output, err := limiter.ApplyResourceLimiter(context.Background(), &ApplyResourceLimiterInput{
		ResourceName:     "203.0.113.10",
		LimiterGroupName: "token-issuance",
		MaxQuota:         0,
	})
	assert.NoError(t, err)
	assert.True(t, output.Allowed)
}
