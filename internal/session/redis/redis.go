package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goserg/bizness/internal/session"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const defaultTimeout = 5 * time.Second

type Config struct {
	Addr    string
	DB      int
	Timeout time.Duration
}

// Backend keeps session slots as plain redis strings without expiry.
type Backend struct {
	client *redis.Client
	log    *logrus.Entry
}

var _ session.Backend = (*Backend)(nil)

// Connect dials redis and checks it answers a ping within the timeout.
func Connect(ctx context.Context, l *logrus.Logger, cfg Config) (*Backend, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	client := redis.NewClient(&redis.Options{
		Addr: cfg.Addr,
		DB:   cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	log := l.WithFields(map[string]interface{}{
		"from": "session-redis",
	})
	log.WithField("addr", cfg.Addr).Info("session storage connected")
	return &Backend{client: client, log: log}, nil
}

func (b *Backend) Get(ctx context.Context, key string) ([]byte, error) {
	value, err := b.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, session.ErrNotFound
		}
		return nil, err
	}
	return value, nil
}

func (b *Backend) Set(ctx context.Context, key string, value []byte) error {
	return b.client.Set(ctx, key, value, 0).Err()
}

func (b *Backend) Delete(ctx context.Context, key string) error {
	return b.client.Del(ctx, key).Err()
}

func (b *Backend) Close() error {
	return b.client.Close()
}
