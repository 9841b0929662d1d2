package redis

import (
	"context"
	"errors"
	"time"

	"github.com/JMURv/trust-bridge/internal/cache"
	"github.com/JMURv/trust-bridge/internal/config"
	"github.com/go-redis/redis/v8"
	"github.com/goccy/go-json"
	"github.com/opentracing/opentracing-go"
	"go.uber.org/zap"
)

var incrScript = redis.NewScript(`
local n = redis.call("INCR", KEYS[1])
if n == 1 then
	redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
return n
`)

type Redis struct {
	cli *redis.Client
}

func New(conf config.RedisConfig) *Redis {
	cli := redis.NewClient(
		&redis.Options{
			Addr:     conf.Addr,
			Password: conf.Pass,
			DB:       conf.DB,
		},
	)

	if _, err := cli.Ping(context.Background()).Result(); err != nil {
		zap.L().Fatal("Failed to connect to Redis", zap.Error(err))
	}

	return &Redis{cli: cli}
}

func (r *Redis) Close() error {
	return r.cli.Close()
}

func (r *Redis) Ping(ctx context.Context) error {
	return r.cli.Ping(ctx).Err()
}

func (r *Redis) GetToStruct(ctx context.Context, key string, dest any) error {
	const op = "cache.GetToStruct.redis"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	val, err := r.cli.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return cache.ErrNotFoundInCache
	} else if err != nil {
		zap.L().Debug("failed to get from cache", zap.String("op", op), zap.String("key", key), zap.Error(err))
		return err
	}

	return json.Unmarshal(val, dest)
}

func (r *Redis) Set(ctx context.Context, t time.Duration, key string, val any) {
	const op = "cache.Set.redis"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	if err := r.cli.Set(ctx, key, val, t).Err(); err != nil {
		zap.L().Debug("failed to set to cache", zap.String("op", op), zap.String("key", key), zap.Error(err))
	}
}

func (r *Redis) Delete(ctx context.Context, key string) {
	const op = "cache.Delete.redis"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	if err := r.cli.Del(ctx, key).Err(); err != nil {
		zap.L().Debug("failed to delete from cache", zap.String("op", op), zap.String("key", key), zap.Error(err))
	}
}

// Incr increments key and sets its ttl when the key is new, giving a fixed window counter.
func (r *Redis) Incr(ctx context.Context, t time.Duration, key string) (int64, error) {
	const op = "cache.Incr.redis"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	n, err := incrScript.Run(ctx, r.cli, []string{key}, t.Milliseconds()).Int64()
	if err != nil {
		span.SetTag(config.ErrorSpanTag, true)
		zap.L().Debug("failed to increment counter", zap.String("op", op), zap.String("key", key), zap.Error(err))
		return 0, err
	}

	return n, nil
}

// SetNX sets key for t only when it does not exist yet and reports whether it was set.
func (r *Redis) SetNX(ctx context.Context, t time.Duration, key string) (bool, error) {
	const op = "cache.SetNX.redis"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	ok, err := r.cli.SetNX(ctx, key, 1, t).Result()
	if err != nil {
		span.SetTag(config.ErrorSpanTag, true)
		zap.L().Debug("failed to set key", zap.String("op", op), zap.String("key", key), zap.Error(err))
		return false, err
	}

	return ok, nil
}

func (r *Redis) InvalidateKeysByPattern(ctx context.Context, pattern string) {
	const op = "cache.InvalidateKeysByPattern.redis"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	var cursor uint64
	for {
		keys, next, err := r.cli.Scan(ctx, cursor, pattern, 100).Result()
		if err != nil {
			zap.L().Debug("failed to scan keys", zap.String("op", op), zap.String("pattern", pattern), zap.Error(err))
			return
		}

		if len(keys) > 0 {
			if err = r.cli.Del(ctx, keys...).Err(); err != nil {
				zap.L().Debug("failed to delete keys", zap.String("op", op), zap.Error(err))
			}
		}

		cursor = next
		if cursor == 0 {
			return
		}
	}
}
