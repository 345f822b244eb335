package auth

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

const (
	DefaultTTL       = 24 * 7 * time.Hour
	sessionKeyPrefix = "gymplan-session||"
)

var (
	ErrInvalidToken   = errors.New("invalid token")
	ErrSessionExpired = errors.New("session expired")
)

// TokenChecker resolves API tokens to user ids. Sessions are written by the
// login flow as "<userID>:<createdAtUnix>" under a prefixed key.
type TokenChecker struct {
	ttl         time.Duration
	redisClient *redis.Client
}

func NewTokenChecker(ttl time.Duration, redisClient *redis.Client) *TokenChecker {
	return &TokenChecker{
		ttl:         ttl,
		redisClient: redisClient,
	}
}

func (c *TokenChecker) UserID(ctx context.Context, token string) (int, error) {
	if token == "" {
		return 0, ErrInvalidToken
	}

	cmd := c.redisClient.Get(ctx, sessionKeyPrefix+token)
	if err := cmd.Err(); err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, ErrInvalidToken
		}
		return 0, fmt.Errorf("get session: %w", err)
	}

	userID, createdAt, err := parseSessionValue(cmd.Val())
	if err != nil {
		return 0, err
	}

	if time.Since(createdAt) > c.ttl {
		return 0, ErrSessionExpired
	}

	return userID, nil
}

// Issue stores a new session for userID and returns its token.
func (c *TokenChecker) Issue(ctx context.Context, userID int, createdAt time.Time) (string, error) {
	if userID <= 0 {
		return "", fmt.Errorf("issue token: invalid user id %d", userID)
	}

	token := uuid.NewString()
	value := fmt.Sprintf("%d:%d", userID, createdAt.Unix())
	if err := c.redisClient.Set(ctx, sessionKeyPrefix+token, value, c.ttl).Err(); err != nil {
		return "", fmt.Errorf("set session: %w", err)
	}

	return token, nil
}

func (c *TokenChecker) Revoke(ctx context.Context, token string) error {
	deleted, err := c.redisClient.Del(ctx, sessionKeyPrefix+token).Result()
	if err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	if deleted == 0 {
		return ErrInvalidToken
	}
	return nil
}

func parseSessionValue(val string) (int, time.Time, error) {
	userIDStr, createdAtStr, found := strings.Cut(val, ":")
	if !found {
		return 0, time.Time{}, ErrInvalidToken
	}

	userID, err := strconv.Atoi(userIDStr)
	if err != nil || userID <= 0 {
		return 0, time.Time{}, ErrInvalidToken
	}

	createdAtUnix, err := strconv.ParseInt(createdAtStr, 10, 64)
	if err != nil {
		return 0, time.Time{}, ErrInvalidToken
	}

	return userID, time.Unix(createdAtUnix, 0), nil
}
