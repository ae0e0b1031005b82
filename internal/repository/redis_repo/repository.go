package redis_repo

import (
	"context"
	"errors"
	"lucky_spinner/internal/config"
	"lucky_spinner/internal/repository"
	"time"

	"github.com/redis/go-redis/v9"
)

type repo struct {
	rdb redis.UniversalClient
}

// NewRedisClient создаёт клиента и проверяет соединение
func NewRedisClient(ctx context.Context, cfg config.RedisConfig) (redis.UniversalClient, error) {
	rdb := redis.NewUniversalClient(&redis.UniversalOptions{
		Addrs:        []string{cfg.Addr()},
		Password:     cfg.Password(),
		DB:           cfg.DB(),
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
		MaxRetries:   3,
	})

	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, err
	}
	return rdb, nil
}

func NewStateRepository(rdb redis.UniversalClient) repository.StateRepository {
	return &repo{rdb: rdb}
}

func (r *repo) Load(ctx context.Context, key string) ([]byte, error) {
	value, err := r.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}
	return value, nil
}

func (r *repo) Save(ctx context.Context, key string, value []byte) error {
	return r.rdb.Set(ctx, key, value, 0).Err()
}

// SaveMany - MULTI/EXEC, ключи пишутся вместе
func (r *repo) SaveMany(ctx context.Context, values map[string][]byte) error {
	_, err := r.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for key, value := range values {
			pipe.Set(ctx, key, value, 0)
		}
		return nil
	})
	return err
}

func (r *repo) Close() error {
	return r.rdb.Close()
}
