// Package otp provides the concrete implementations of the auth.OTPVerifier
// capability: a Redis-backed code store for production and an accept-all
// verifier for environments without an SMS channel.
package otp

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/sunileswar-collab/BusinessCheck/internal/auth"
	"github.com/sunileswar-collab/BusinessCheck/internal/logger"
)

const codeDigits = 6

// RedisStore keeps one-time codes in Redis with a TTL. Every verification
// attempt consumes the stored code, so one issued code allows one guess.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	TTL      time.Duration
}

// NewRedisStore connects to Redis and pings it so a misconfigured address
// fails at startup, not on the first verification call.
func NewRedisStore(ctx context.Context, cfg RedisConfig) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", cfg.Addr, err)
	}

	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}

	return &RedisStore{client: client, ttl: ttl}, nil
}

func otpKey(mobileNo string) string {
	return "otp:" + mobileNo
}

// Request generates a fresh code, stores it under the mobile number and
// returns it for delivery. A previous unexpired code is overwritten.
func (s *RedisStore) Request(ctx context.Context, mobileNo string) (string, error) {
	code, err := auth.RandomOTP(codeDigits)
	if err != nil {
		return "", err
	}

	if err := s.client.Set(ctx, otpKey(mobileNo), code, s.ttl).Err(); err != nil {
		return "", fmt.Errorf("failed to store otp: %w", err)
	}

	// Delivery over an SMS gateway hangs off this log line for now.
	logger.CtxInfo(ctx, "otp issued", "mobile_no", mobileNo, "ttl", s.ttl.String())
	return code, nil
}

// Verify consumes the stored code atomically whether or not it matches, so
// a wrong guess cannot be retried against the same code. A missing, expired
// or mismatched code verifies as false.
func (s *RedisStore) Verify(ctx context.Context, mobileNo, code string) (bool, error) {
	stored, err := s.client.GetDel(ctx, otpKey(mobileNo)).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read otp: %w", err)
	}
	if stored != code {
		return false, nil
	}
	return true, nil
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}

var _ auth.OTPVerifier = (*RedisStore)(nil)
