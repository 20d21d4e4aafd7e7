package ratelimiter

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockRedisRepository struct {
	mock.Mock
}

func (m *MockRedisRepository) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	args := m.Called(ctx, key, value, exp)
	return args.Error(0)
}

func (m *MockRedisRepository) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockRedisRepository) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockRedisRepository) IncrementWithTTL(ctx context.Context, key string, ttl time.Duration) (int, error) {
	args := m.Called(ctx, key, ttl)
	return args.Int(0), args.Error(1)
}

func limiterInput(count int) *ApplyResourceLimiterInput {
	return &ApplyResourceLimiterInput{
		ResourceName:      "patient-1",
		LimiterGroupName:  "booking",
		WindowDurationSec: 60,
		MaxQuota:          count,
		NowUTC:            time.Date(2025, 3, 10, 12, 0, 30, 0, time.UTC),
	}
}

func TestApplyResourceLimiter_AllowsWithinQuota(t *testing.T) {
	redisRepository := new(MockRedisRepository)
	redisRepository.On("IncrementWithTTL", mock.Anything, mock.Anything, mock.Anything).Return(3, nil)

	limiter := NewResourceLimiter(redisRepository, zap.NewNop())
	out, err := limiter.ApplyResourceLimiter(context.Background(), limiterInput(5))

	assert.NoError(t, err)
	assert.True(t, out.Allowed)
}

func TestApplyResourceLimiter_BlocksOverQuota(t *testing.T) {
	redisRepository := new(MockRedisRepository)
	redisRepository.On("IncrementWithTTL", mock.Anything, mock.Anything, mock.Anything).Return(6, nil)

	limiter := NewResourceLimiter(redisRepository, zap.NewNop())
	out, err := limiter.ApplyResourceLimiter(context.Background(), limiterInput(5))

	assert.NoError(t, err)
	assert.False(t, out.Allowed)
	assert.Greater(t, out.RetryAfterSecs, 0)
	assert.LessOrEqual(t, out.RetryAfterSecs, 61)
}

func TestApplyResourceLimiter_ZeroQuotaDisablesLimiting(t *testing.T) {
	redisRepository := new(MockRedisRepository)

	limiter := NewResourceLimiter(redisRepository, zap.NewNop())
	out, err := limiter.ApplyResourceLimiter(context.Background(), &ApplyResourceLimiterInput{
		ResourceName:     "patient-1",
		LimiterGroupName: "booking",
		MaxQuota:         0,
	})

	assert.NoError(t, err)
	assert.True(t, out.Allowed)
	redisRepository.AssertNotCalled(t, "IncrementWithTTL", mock.Anything, mock.Anything, mock.Anything)
}

func TestApplyResourceLimiter_RedisFailureBlocks(t *testing.T) {
	redisRepository := new(MockRedisRepository)
	redisRepository.On("IncrementWithTTL", mock.Anything, mock.Anything, mock.Anything).Return(0, errors.New("connection refused"))

	limiter := NewResourceLimiter(redisRepository, zap.NewNop())
	out, err := limiter.ApplyResourceLimiter(context.Background(), limiterInput(5))

	assert.Error(t, err)
	assert.False(t, out.Allowed)
}
