package db

import (
	"context"
	"time"

	"github.com/JMURv/trust-bridge/internal/config"
	"github.com/google/uuid"
	"github.com/opentracing/opentracing-go"
	"go.uber.org/zap"
)

func (r *Repository) CreateToken(
	ctx context.Context,
	userID uuid.UUID,
	hashedT string,
	sessionID *uuid.UUID,
	expiresAt time.Time,
) error {
	const op = "auth.CreateToken.repo"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	_, err := r.conn.ExecContext(ctx, createToken, userID, hashedT, sessionID, expiresAt)
	if err != nil {
		span.SetTag(config.ErrorSpanTag, true)
		zap.L().Error("failed to create token", zap.String("op", op), zap.Error(err))
		return err
	}

	return nil
}

func (r *Repository) IsTokenValid(ctx context.Context, userID uuid.UUID, hashedT string, now time.Time) (bool, error) {
	const op = "auth.IsTokenValid.repo"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	var exists bool
	if err := r.conn.GetContext(ctx, &exists, isValidToken, userID, hashedT, now); err != nil {
		span.SetTag(config.ErrorSpanTag, true)
		zap.L().Error("failed to check token", zap.String("op", op), zap.Error(err))
		return false, err
	}

	return exists, nil
}

func (r *Repository) RevokeToken(ctx context.Context, userID uuid.UUID, hashedT string) error {
	const op = "auth.RevokeToken.repo"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	if _, err := r.conn.ExecContext(ctx, revokeToken, userID, hashedT); err != nil {
		span.SetTag(config.ErrorSpanTag, true)
		zap.L().Error("failed to revoke token", zap.String("op", op), zap.Error(err))
		return err
	}

	return nil
}

func (r *Repository) RevokeAllTokens(ctx context.Context, userID uuid.UUID) error {
	const op = "auth.RevokeAllTokens.repo"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	if _, err := r.conn.ExecContext(ctx, revokeAllTokens, userID); err != nil {
		span.SetTag(config.ErrorSpanTag, true)
		zap.L().Error("failed to revoke tokens", zap.String("op", op), zap.Error(err))
		return err
	}

	return nil
}

func (r *Repository) DeleteExpiredTokens(ctx context.Context, before time.Time) (int64, error) {
	const op = "auth.DeleteExpiredTokens.repo"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	res, err := r.conn.ExecContext(ctx, deleteExpiredTokens, before)
	if err != nil {
		span.SetTag(config.ErrorSpanTag, true)
		zap.L().Error("failed to delete expired tokens", zap.String("op", op), zap.Error(err))
		return 0, err
	}

	return res.RowsAffected()
}
