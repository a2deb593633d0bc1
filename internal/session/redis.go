package session

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/yungbote/recordstore-backend/internal/platform/logger"
)

type redisStore struct {
	log *logger.Logger
	rdb *goredis.Client
	ttl time.Duration
}

// NewRedisStore connects to the redis instance at addr and keeps session
// values alive for ttl past their last write.
func NewRedisStore(log *logger.Logger, addr string, ttl time.Duration) (Store, error) {
	if log == nil {
		return nil, errors.New("logger required")
	}
	addr = strings.TrimSpace(addr)
	if addr == "" {
		return nil, errors.New("missing redis address")
	}

	rdb := goredis.NewClient(&goredis.Options{
		Addr:        addr,
		DialTimeout: 5 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return &redisStore{
		log: log.With("service", "RedisSessionStore"),
		rdb: rdb,
		ttl: ttl,
	}, nil
}

func guestUserKey(token string) string {
	return "session:" + token + ":guest_user"
}

func (s *redisStore) GetGuestUser(ctx context.Context, token string) ([]byte, error) {
	raw, err := s.rdb.Get(ctx, guestUserKey(token)).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return raw, nil
}

func (s *redisStore) SetGuestUser(ctx context.Context, token string, raw []byte) error {
	return s.rdb.Set(ctx, guestUserKey(token), raw, s.ttl).Err()
}
