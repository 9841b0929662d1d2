package ctrl

import (
	"context"
	"time"

	"github.com/opentracing/opentracing-go"
	"go.uber.org/zap"
)

// Sweep removes request logs past the retention window and expired refresh tokens.
func (c *Controller) Sweep(ctx context.Context) error {
	const op = "retention.Sweep.ctrl"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	now := c.now().UTC()
	logs, err := c.repo.DeleteRequestLogsBefore(ctx, now.Add(-c.conf.Retention.RequestLogs))
	if err != nil {
		return err
	}

	tokens, err := c.repo.DeleteExpiredTokens(ctx, now)
	if err != nil {
		return err
	}

	zap.L().Debug(
		"retention sweep finished",
		zap.String("op", op),
		zap.Int64("request_logs", logs),
		zap.Int64("refresh_tokens", tokens),
	)
	return nil
}

// StartRetention sweeps on every interval tick until ctx is cancelled.
func (c *Controller) StartRetention(ctx context.Context) {
	const op = "retention.StartRetention.ctrl"

	interval := c.conf.Retention.SweepInterval
	if interval <= 0 {
		interval = 10 * time.Minute
	}

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if err := c.Sweep(ctx); err != nil {
					zap.L().Error("retention sweep failed", zap.String("op", op), zap.Error(err))
				}
			}
		}
	}()
}
