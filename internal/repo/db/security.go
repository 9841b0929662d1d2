package db

import (
	"context"
	"time"

	"github.com/JMURv/trust-bridge/internal/config"
	"github.com/JMURv/trust-bridge/internal/dto"
	md "github.com/JMURv/trust-bridge/internal/models"
	"github.com/google/uuid"
	"github.com/opentracing/opentracing-go"
	"go.uber.org/zap"
)

func (r *Repository) CreateSecurityEvent(ctx context.Context, e *md.SecurityEvent) error {
	const op = "security.CreateSecurityEvent.repo"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	_, err := r.conn.ExecContext(
		ctx,
		createSecurityEvent,
		e.Type,
		e.Severity,
		e.UserID,
		e.IP,
		e.UA,
		e.Endpoint,
		e.Details,
		e.CreatedAt,
	)
	if err != nil {
		span.SetTag(config.ErrorSpanTag, true)
		zap.L().Error("failed to create security event", zap.String("op", op), zap.Error(err))
		return err
	}

	return nil
}

func (r *Repository) ListSecurityEvents(ctx context.Context, f dto.SecurityEventFilter) ([]md.SecurityEvent, error) {
	const op = "security.ListSecurityEvents.repo"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	q, args, err := buildSecurityEventsQuery(ctx, f)
	if err != nil {
		return nil, err
	}

	res := make([]md.SecurityEvent, 0)
	if err = r.conn.SelectContext(ctx, &res, q, args...); err != nil {
		span.SetTag(config.ErrorSpanTag, true)
		zap.L().Error("failed to list security events", zap.String("op", op), zap.Error(err))
		return nil, err
	}

	return res, nil
}

func (r *Repository) CountSevereEvents(ctx context.Context, userID uuid.UUID, since time.Time) (int, error) {
	const op = "security.CountSevereEvents.repo"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	return r.count(ctx, op, countSevereEvents, userID, since)
}

func (r *Repository) CreateRequestLog(ctx context.Context, l *md.ExtensionRequestLog) error {
	const op = "security.CreateRequestLog.repo"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	_, err := r.conn.ExecContext(ctx, createRequestLog, l.UserID, l.IP, l.UA, l.Endpoint, l.CreatedAt)
	if err != nil {
		span.SetTag(config.ErrorSpanTag, true)
		zap.L().Error("failed to create request log", zap.String("op", op), zap.Error(err))
		return err
	}

	return nil
}

func (r *Repository) CountRequestsByIP(ctx context.Context, ip string, since time.Time) (int, error) {
	const op = "security.CountRequestsByIP.repo"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	return r.count(ctx, op, countRequestsByIP, ip, since)
}

func (r *Repository) CountRequestsByUserEndpoint(
	ctx context.Context,
	userID uuid.UUID,
	endpoint string,
	since time.Time,
) (int, error) {
	const op = "security.CountRequestsByUserEndpoint.repo"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	return r.count(ctx, op, countRequestsByUserEndpoint, userID, endpoint, since)
}

func (r *Repository) CountDistinctUsersByIP(ctx context.Context, ip string, since time.Time) (int, error) {
	const op = "security.CountDistinctUsersByIP.repo"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	return r.count(ctx, op, countDistinctUsersByIP, ip, since)
}

func (r *Repository) DeleteRequestLogsBefore(ctx context.Context, before time.Time) (int64, error) {
	const op = "security.DeleteRequestLogsBefore.repo"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	res, err := r.conn.ExecContext(ctx, deleteRequestLogsBefore, before)
	if err != nil {
		span.SetTag(config.ErrorSpanTag, true)
		zap.L().Error("failed to delete request logs", zap.String("op", op), zap.Error(err))
		return 0, err
	}

	return res.RowsAffected()
}

func (r *Repository) count(ctx context.Context, op, q string, args ...any) (int, error) {
	var n int
	if err := r.conn.GetContext(ctx, &n, q, args...); err != nil {
		opentracing.SpanFromContext(ctx).SetTag(config.ErrorSpanTag, true)
		zap.L().Error("failed to count", zap.String("op", op), zap.Error(err))
		return 0, err
	}
	return n, nil
}
