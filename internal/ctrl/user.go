package ctrl

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/JMURv/trust-bridge/internal/config"
	"github.com/JMURv/trust-bridge/internal/dto"
	md "github.com/JMURv/trust-bridge/internal/models"
	"github.com/JMURv/trust-bridge/internal/repo"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/opentracing/opentracing-go"
	"go.uber.org/zap"
)

type userCtrl interface {
	GetUserByID(ctx context.Context, userID uuid.UUID) (*md.User, error)
	DeleteUser(ctx context.Context, userID uuid.UUID) error
	ConsumeRequest(ctx context.Context, u *md.User, d *dto.DeviceRequest) (*dto.UsageResponse, error)
	CheckRateLimit(ctx context.Context, u *md.User, d *dto.DeviceRequest) error
}

type userRepo interface {
	GetUserByID(ctx context.Context, userID uuid.UUID) (*md.User, error)
	GetUserByEmail(ctx context.Context, email string) (*md.User, error)
	GetUserByPhone(ctx context.Context, phone string) (*md.User, error)
	CreateUser(ctx context.Context, u *md.User) (uuid.UUID, error)
	DeleteUser(ctx context.Context, userID uuid.UUID) error
	IncrementDailyRequests(ctx context.Context, userID uuid.UUID, day time.Time) (int, error)
}

const (
	userCacheKey  = "user:%v"
	rateLimitKey  = "ratelimit:ext:%v:%d"
	rateLimitKeys = "ratelimit:ext:%v:*"
	rateLimitSpan = time.Hour
)

func (c *Controller) GetUserByID(ctx context.Context, userID uuid.UUID) (*md.User, error) {
	const op = "users.GetUserByID.ctrl"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	res := &md.User{}
	key := fmt.Sprintf(userCacheKey, userID)
	if err := c.cache.GetToStruct(ctx, key, res); err == nil {
		return res, nil
	}

	res, err := c.repo.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrNotFound
		}
		span.SetTag(config.ErrorSpanTag, true)
		return nil, err
	}

	bytes, err := json.Marshal(res)
	if err == nil {
		c.cache.Set(ctx, config.UserCacheTime, key, bytes)
	}
	return res, nil
}

// DeleteUser soft-deletes the account and tears down everything that could keep it reachable.
func (c *Controller) DeleteUser(ctx context.Context, userID uuid.UUID) error {
	const op = "users.DeleteUser.ctrl"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	if err := c.repo.DeleteUser(ctx, userID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrNotFound
		}
		span.SetTag(config.ErrorSpanTag, true)
		return err
	}

	if err := c.repo.EndAllSessions(ctx, userID, c.now()); err != nil {
		return err
	}
	if err := c.repo.RevokeAllTokens(ctx, userID); err != nil {
		return err
	}

	c.cache.Delete(ctx, fmt.Sprintf(userCacheKey, userID))
	c.cache.InvalidateKeysByPattern(ctx, fmt.Sprintf(rateLimitKeys, userID))
	return nil
}

// ConsumeRequest counts one metered extension call against the daily tier quota.
func (c *Controller) ConsumeRequest(
	ctx context.Context,
	u *md.User,
	d *dto.DeviceRequest,
) (*dto.UsageResponse, error) {
	const op = "users.ConsumeRequest.ctrl"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	used, err := c.repo.IncrementDailyRequests(ctx, u.ID, c.now().UTC())
	if err != nil {
		span.SetTag(config.ErrorSpanTag, true)
		return nil, err
	}
	c.cache.Delete(ctx, fmt.Sprintf(userCacheKey, u.ID))

	limit := c.dailyLimit(u.Tier)
	res := &dto.UsageResponse{Used: used, Limit: limit, Remaining: max(limit-used, 0)}
	if used > limit {
		if used == limit+1 {
			c.recordEvent(ctx, &md.SecurityEvent{
				Type:     md.EventDailyLimitExceeded,
				Severity: md.SeverityLow,
				UserID:   &u.ID,
				IP:       d.IP,
				UA:       d.UA,
				Endpoint: d.Endpoint,
				Details:  md.Details{"tier": u.Tier, "limit": limit},
			})
		}
		return res, ErrDailyLimitExceeded
	}
	return res, nil
}

// CheckRateLimit enforces the hourly per-tier limit on extension calls.
// The counter lives in redis; when redis is unreachable the call is let through.
func (c *Controller) CheckRateLimit(ctx context.Context, u *md.User, d *dto.DeviceRequest) error {
	const op = "users.CheckRateLimit.ctrl"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	window := c.now().Unix() / int64(rateLimitSpan/time.Second)
	n, err := c.cache.Incr(ctx, rateLimitSpan, fmt.Sprintf(rateLimitKey, u.ID, window))
	if err != nil {
		zap.L().Warn("rate limit counter unavailable", zap.String("op", op), zap.Error(err))
		return nil
	}

	limit := int64(c.hourlyLimit(u.Tier))
	if n <= limit {
		return nil
	}
	if n == limit+1 {
		c.recordEvent(ctx, &md.SecurityEvent{
			Type:     md.EventRateLimitExceeded,
			Severity: md.SeverityMedium,
			UserID:   &u.ID,
			IP:       d.IP,
			UA:       d.UA,
			Endpoint: d.Endpoint,
			Details:  md.Details{"tier": u.Tier, "limit": limit},
		})
	}
	return ErrRateLimited
}

func (c *Controller) dailyLimit(t md.Tier) int {
	switch t {
	case md.TierPremium:
		return c.conf.Limits.DailyPremium
	case md.TierPro:
		return c.conf.Limits.DailyPro
	default:
		return c.conf.Limits.DailyTrial
	}
}

func (c *Controller) hourlyLimit(t md.Tier) int {
	switch t {
	case md.TierPremium:
		return c.conf.Extension.HourlyLimitPremium
	case md.TierPro:
		return c.conf.Extension.HourlyLimitPro
	default:
		return c.conf.Extension.HourlyLimitTrial
	}
}
