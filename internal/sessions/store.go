package sessions

import (
	"context"
	"errors"
	"time"

	"tallerix/internal/common"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "branch_session:"

// Store maps opaque session tokens to the branch a user is working in. The
// token travels in a cookie; the branch RIF never does.
type Store interface {
	Create(ctx context.Context, branchRIF string) (string, error)
	Get(ctx context.Context, token string) (string, error)
	Destroy(ctx context.Context, token string) error
}

type redisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(addr, password string, db int, ttl time.Duration) Store {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	return &redisStore{client: client, ttl: ttl}
}

func (s *redisStore) Create(ctx context.Context, branchRIF string) (string, error) {
	if err := common.ValidateBranchRIF(branchRIF); err != nil {
		return "", err
	}
	token := uuid.New().String()
	if err := s.client.Set(ctx, keyPrefix+token, branchRIF, s.ttl).Err(); err != nil {
		return "", err
	}
	return token, nil
}

func (s *redisStore) Get(ctx context.Context, token string) (string, error) {
	rif, err := s.client.Get(ctx, keyPrefix+token).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", common.ErrNotFound
		}
		return "", err
	}
	return rif, nil
}

func (s *redisStore) Destroy(ctx context.Context, token string) error {
	return s.client.Del(ctx, keyPrefix+token).Err()
}
