// Package cache provides the Redis-backed implementation of the room cache.
package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"comfortstay/config"
	"comfortstay/internal/domain/entity"
	"comfortstay/internal/domain/lifecycle"
	"comfortstay/internal/domain/service"
	"comfortstay/internal/errors"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

const (
	availableRoomsKey = "comfortstay:rooms:available"

	defaultCacheTTL = 5 * time.Minute
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// roomCache implements service.RoomCache on top of Redis.
type roomCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

// New creates the Redis client and wires it into the fx lifecycle.
func New(params Params) (service.RoomCache, error) {
	if params.Config.Redis == nil {
		return nil, errors.New("redis config must be provided")
	}

	client := redis.NewClient(&redis.Options{
		Addr:     params.Config.Redis.Addr,
		Password: params.Config.Redis.Password,
		DB:       params.Config.Redis.DB,
	})

	ttl := params.Config.Redis.CacheTTL
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx).Err(); err != nil {
				return errors.Wrap(err, "failed to ping Redis")
			}

			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return &roomCache{
		client: client,
		ttl:    ttl,
		logger: params.Logger,
	}, nil
}

// GetAvailableRooms returns the cached listing, or (nil, nil) on a miss.
func (c *roomCache) GetAvailableRooms(ctx context.Context) ([]*entity.Room, error) {
	payload, err := c.client.Get(ctx, availableRoomsKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to read available rooms from cache")
	}

	var rooms []*entity.Room
	if err := json.Unmarshal(payload, &rooms); err != nil {
		// A corrupt cache entry behaves like a miss; the next Set overwrites it.
		c.logger.LogAttrs(ctx, slog.LevelWarn, "dropping corrupt room cache entry",
			slog.String("error", err.Error()),
		)

		return nil, nil
	}

	return rooms, nil
}

// SetAvailableRooms stores the listing with the configured TTL.
func (c *roomCache) SetAvailableRooms(ctx context.Context, rooms []*entity.Room) error {
	payload, err := json.Marshal(rooms)
	if err != nil {
		return errors.Wrap(err, "failed to marshal rooms for cache")
	}

	if err := c.client.Set(ctx, availableRoomsKey, payload, c.ttl).Err(); err != nil {
		return errors.Wrap(err, "failed to write available rooms to cache")
	}

	return nil
}

// Invalidate drops the cached listing after any occupancy change.
func (c *roomCache) Invalidate(ctx context.Context) error {
	if err := c.client.Del(ctx, availableRoomsKey).Err(); err != nil {
		return errors.Wrap(err, "failed to invalidate room cache")
	}

	return nil
}
