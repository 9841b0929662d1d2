package ctrl

import (
	"context"
	"fmt"
	"time"

	"github.com/JMURv/trust-bridge/internal/config"
	"github.com/JMURv/trust-bridge/internal/dto"
	md "github.com/JMURv/trust-bridge/internal/models"
	metrics "github.com/JMURv/trust-bridge/internal/observability/metrics/prometheus"
	"github.com/google/uuid"
	"github.com/opentracing/opentracing-go"
	"go.uber.org/zap"
)

const (
	alertKey        = "alert:%s:%s"
	preAuthEventKey = "preauth:%s:%s"
)

type securityCtrl interface {
	ListSecurityEvents(ctx context.Context, f dto.SecurityEventFilter) ([]md.SecurityEvent, error)
}

type securityRepo interface {
	CreateSecurityEvent(ctx context.Context, e *md.SecurityEvent) error
	ListSecurityEvents(ctx context.Context, f dto.SecurityEventFilter) ([]md.SecurityEvent, error)
	CountSevereEvents(ctx context.Context, userID uuid.UUID, since time.Time) (int, error)
	CreateRequestLog(ctx context.Context, l *md.ExtensionRequestLog) error
	CountRequestsByIP(ctx context.Context, ip string, since time.Time) (int, error)
	CountRequestsByUserEndpoint(ctx context.Context, userID uuid.UUID, endpoint string, since time.Time) (int, error)
	CountDistinctUsersByIP(ctx context.Context, ip string, since time.Time) (int, error)
	DeleteRequestLogsBefore(ctx context.Context, before time.Time) (int64, error)
}

func (c *Controller) ListSecurityEvents(ctx context.Context, f dto.SecurityEventFilter) ([]md.SecurityEvent, error) {
	const op = "security.ListSecurityEvents.ctrl"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	if f.Limit <= 0 {
		f.Limit = config.DefaultEventsLimit
	}
	if f.Limit > config.MaxEventsLimit {
		f.Limit = config.MaxEventsLimit
	}

	res, err := c.repo.ListSecurityEvents(ctx, f)
	if err != nil {
		span.SetTag(config.ErrorSpanTag, true)
		return nil, err
	}
	return res, nil
}

// recordEvent persists an audit event. A failed write is logged and never
// changes the outcome of the request that produced the event.
func (c *Controller) recordEvent(ctx context.Context, e *md.SecurityEvent) {
	const op = "security.recordEvent.ctrl"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	if e.CreatedAt.IsZero() {
		e.CreatedAt = c.now().UTC()
	}
	if e.Details == nil {
		e.Details = md.Details{}
	}

	metrics.SecurityEvent(string(e.Type), string(e.Severity))
	if err := c.repo.CreateSecurityEvent(ctx, e); err != nil {
		span.SetTag(config.ErrorSpanTag, true)
		zap.L().Error(
			"failed to record security event",
			zap.String("op", op),
			zap.String("type", string(e.Type)),
			zap.Error(err),
		)
	}

	if c.alerts == nil || (e.Severity != md.SeverityHigh && e.Severity != md.SeverityCritical) {
		return
	}

	// one alert per event type and subject per window
	first, err := c.firstInWindow(ctx, c.conf.Abuse.AlertWindow, fmt.Sprintf(alertKey, e.Type, eventSubject(e)))
	if err != nil {
		zap.L().Warn("alert throttle unavailable, alert dropped", zap.String("op", op), zap.Error(err))
		return
	}
	if !first {
		return
	}

	go func(ctx context.Context) {
		if err := c.alerts.SecurityAlert(ctx, e); err != nil {
			zap.L().Warn("failed to send security alert", zap.String("op", op), zap.Error(err))
		}
	}(context.WithoutCancel(ctx))
}

// firstInWindow reports whether key was not seen during the last window.
// A non-positive window disables the throttle.
func (c *Controller) firstInWindow(ctx context.Context, window time.Duration, key string) (bool, error) {
	if window <= 0 {
		return true, nil
	}
	return c.cache.SetNX(ctx, window, key)
}

func eventSubject(e *md.SecurityEvent) string {
	if e.UserID != nil {
		return e.UserID.String()
	}
	return e.IP
}
