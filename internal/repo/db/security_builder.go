package db

import (
	"context"

	"github.com/JMURv/trust-bridge/internal/config"
	"github.com/JMURv/trust-bridge/internal/dto"
	sq "github.com/Masterminds/squirrel"
	"github.com/opentracing/opentracing-go"
	"go.uber.org/zap"
)

func buildSecurityEventsQuery(ctx context.Context, f dto.SecurityEventFilter) (string, []any, error) {
	const op = "security.buildSecurityEventsQuery.repo"

	span, _ := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	query := sq.Select(
		"id",
		"type",
		"severity",
		"user_id",
		"ip",
		"user_agent",
		"endpoint",
		"details",
		"created_at",
	).From("security_events").PlaceholderFormat(sq.Dollar)

	if f.Type != "" {
		query = query.Where(sq.Eq{"type": f.Type})
	}

	if f.Severity != "" {
		query = query.Where(sq.Eq{"severity": f.Severity})
	}

	if f.UserID != nil {
		query = query.Where(sq.Eq{"user_id": *f.UserID})
	}

	if f.Since != nil {
		query = query.Where(sq.Gt{"created_at": *f.Since})
	}

	limit := f.Limit
	if limit <= 0 {
		limit = config.DefaultEventsLimit
	}
	if limit > config.MaxEventsLimit {
		limit = config.MaxEventsLimit
	}

	q, args, err := query.OrderBy("created_at DESC").Limit(uint64(limit)).ToSql()
	if err != nil {
		span.SetTag(config.ErrorSpanTag, true)
		zap.L().Error("failed to build security events query", zap.String("op", op), zap.Error(err))
		return "", nil, err
	}

	return q, args, nil
}
