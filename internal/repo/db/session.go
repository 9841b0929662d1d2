package db

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/JMURv/trust-bridge/internal/config"
	md "github.com/JMURv/trust-bridge/internal/models"
	"github.com/JMURv/trust-bridge/internal/repo"
	"github.com/google/uuid"
	"github.com/opentracing/opentracing-go"
	"go.uber.org/zap"
)

func (r *Repository) CreateSession(ctx context.Context, s *md.WebSession) (uuid.UUID, error) {
	const op = "sessions.CreateSession.repo"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	var id uuid.UUID
	err := r.conn.QueryRowContext(
		ctx,
		createSession,
		s.UserID,
		s.IP,
		s.UA,
		s.DeviceFingerprint,
		s.CreatedAt,
	).Scan(&id)
	if err != nil {
		span.SetTag(config.ErrorSpanTag, true)
		zap.L().Error("failed to create session", zap.String("op", op), zap.Error(err))
		return uuid.Nil, err
	}

	return id, nil
}

// TouchSession returns repo.ErrNotFound when no active session matched.
func (r *Repository) TouchSession(ctx context.Context, sessionID uuid.UUID, ip string, at time.Time) error {
	const op = "sessions.TouchSession.repo"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	res, err := r.conn.ExecContext(ctx, touchSession, sessionID, at, ip)
	if err != nil {
		span.SetTag(config.ErrorSpanTag, true)
		zap.L().Error("failed to touch session", zap.String("op", op), zap.Error(err))
		return err
	}

	aff, err := res.RowsAffected()
	if err != nil {
		return err
	}

	if aff == 0 {
		return repo.ErrNotFound
	}

	return nil
}

func (r *Repository) GetLiveSession(ctx context.Context, userID uuid.UUID, since time.Time) (*md.WebSession, error) {
	const op = "sessions.GetLiveSession.repo"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	res := &md.WebSession{}
	if err := r.conn.GetContext(ctx, res, getLiveSession, userID, since); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repo.ErrNotFound
		}
		span.SetTag(config.ErrorSpanTag, true)
		zap.L().Error("failed to get live session", zap.String("op", op), zap.Error(err))
		return nil, err
	}

	return res, nil
}

func (r *Repository) EndSession(ctx context.Context, sessionID uuid.UUID, at time.Time) error {
	const op = "sessions.EndSession.repo"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	if _, err := r.conn.ExecContext(ctx, endSession, sessionID, at); err != nil {
		span.SetTag(config.ErrorSpanTag, true)
		zap.L().Error("failed to end session", zap.String("op", op), zap.Error(err))
		return err
	}

	return nil
}

func (r *Repository) EndAllSessions(ctx context.Context, userID uuid.UUID, at time.Time) error {
	const op = "sessions.EndAllSessions.repo"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	if _, err := r.conn.ExecContext(ctx, endAllSessions, userID, at); err != nil {
		span.SetTag(config.ErrorSpanTag, true)
		zap.L().Error("failed to end sessions", zap.String("op", op), zap.Error(err))
		return err
	}

	return nil
}
