// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Alexey Shabalin

package store

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/ashabalin/themeboard/internal/config"
	"github.com/ashabalin/themeboard/internal/logger"
	"github.com/ashabalin/themeboard/models"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const sessionKeyPrefix = "session:"

// sessionRepository is the Redis-backed implementation of
// [SessionRepository].
//
// Each session is a single key "session:<token>" holding the bound user ID,
// with a TTL equal to the session lifetime. Passive expiry therefore needs
// no sweeper: Redis removes the key itself, and Get reconstructs ExpiredBy
// from the remaining TTL.
type sessionRepository struct {
	rdb      *redis.Client
	lifetime time.Duration
	logger   *logger.Logger
}

// NewConnectRedis opens and pings the Redis connection used for sessions.
func NewConnectRedis(ctx context.Context, cfg config.Redis, log *logger.Logger) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.Database,
	})

	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Err(err).Str("func", "NewConnectRedis").Msg("error connecting redis (ping)")
		return nil, fmt.Errorf("error connecting redis: %w", err)
	}
	log.Info().Str("func", "NewConnectRedis").Msg("connected to redis successfully")

	return rdb, nil
}

// NewSessionRepository constructs a [SessionRepository] issuing sessions with
// the given lifetime.
func NewSessionRepository(rdb *redis.Client, lifetime time.Duration, logger *logger.Logger) SessionRepository {
	logger.Debug().Dur("lifetime", lifetime).Msg("creating session repository")
	return &sessionRepository{
		rdb:      rdb,
		lifetime: lifetime,
		logger:   logger,
	}
}

func (r *sessionRepository) Create(ctx context.Context, userID int64) (models.Session, error) {
	log := logger.FromContext(ctx)

	session := models.Session{
		Token:     uuid.NewString(),
		UserID:    userID,
		ExpiredBy: time.Now().Add(r.lifetime),
	}

	err := r.rdb.Set(ctx, sessionKeyPrefix+session.Token, strconv.FormatInt(userID, 10), r.lifetime).Err()
	if err != nil {
		log.Err(err).Str("func", "*sessionRepository.Create").Msg("error: storing session failed")
		return models.Session{}, fmt.Errorf("error storing session: %w", err)
	}

	return session, nil
}

func (r *sessionRepository) Get(ctx context.Context, token string) (models.Session, error) {
	log := logger.FromContext(ctx)

	key := sessionKeyPrefix + token

	value, err := r.rdb.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return models.Session{}, ErrSessionNotFound
		}

		log.Err(err).Str("func", "*sessionRepository.Get").Msg("error: reading session failed")
		return models.Session{}, fmt.Errorf("error reading session: %w", err)
	}

	userID, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		log.Err(err).Str("func", "*sessionRepository.Get").Msg("error: corrupt session value")
		return models.Session{}, fmt.Errorf("error parsing session value: %w", err)
	}

	// remaining TTL recovers the expiry instant; a key with no TTL is
	// treated as expired rather than immortal
	ttl, err := r.rdb.TTL(ctx, key).Result()
	if err != nil || ttl <= 0 {
		return models.Session{}, ErrSessionNotFound
	}

	return models.Session{
		Token:     token,
		UserID:    userID,
		ExpiredBy: time.Now().Add(ttl),
	}, nil
}

func (r *sessionRepository) Delete(ctx context.Context, token string) error {
	log := logger.FromContext(ctx)

	deleted, err := r.rdb.Del(ctx, sessionKeyPrefix+token).Result()
	if err != nil {
		log.Err(err).Str("func", "*sessionRepository.Delete").Msg("error: deleting session failed")
		return fmt.Errorf("error deleting session: %w", err)
	}
	if deleted == 0 {
		return ErrSessionNotFound
	}

	return nil
}
