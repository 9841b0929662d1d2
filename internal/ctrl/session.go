package ctrl

import (
	"context"
	"errors"
	"time"

	"github.com/JMURv/trust-bridge/internal/config"
	"github.com/JMURv/trust-bridge/internal/dto"
	md "github.com/JMURv/trust-bridge/internal/models"
	"github.com/JMURv/trust-bridge/internal/repo"
	"github.com/google/uuid"
	"github.com/opentracing/opentracing-go"
	"go.uber.org/zap"
)

type sessionCtrl interface {
	CreateSession(ctx context.Context, uid uuid.UUID, d *dto.DeviceRequest, fingerprint string) (uuid.UUID, error)
	TouchSession(ctx context.Context, sessionID uuid.UUID, ip string) error
	HasLiveSession(ctx context.Context, uid uuid.UUID) (*dto.LiveSession, error)
	EndSession(ctx context.Context, sessionID uuid.UUID) error
}

type sessionRepo interface {
	CreateSession(ctx context.Context, s *md.WebSession) (uuid.UUID, error)
	TouchSession(ctx context.Context, sessionID uuid.UUID, ip string, at time.Time) error
	GetLiveSession(ctx context.Context, userID uuid.UUID, since time.Time) (*md.WebSession, error)
	EndSession(ctx context.Context, sessionID uuid.UUID, at time.Time) error
	EndAllSessions(ctx context.Context, userID uuid.UUID, at time.Time) error
}

func (c *Controller) CreateSession(
	ctx context.Context,
	uid uuid.UUID,
	d *dto.DeviceRequest,
	fingerprint string,
) (uuid.UUID, error) {
	const op = "sessions.CreateSession.ctrl"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	now := c.now().UTC()
	s := &md.WebSession{
		UserID:       uid,
		IsActive:     true,
		IP:           d.IP,
		UA:           d.UA,
		CreatedAt:    now,
		LastActivity: now,
	}
	if fingerprint != "" {
		s.DeviceFingerprint = &fingerprint
	}

	id, err := c.repo.CreateSession(ctx, s)
	if err != nil {
		span.SetTag(config.ErrorSpanTag, true)
		return uuid.Nil, err
	}
	return id, nil
}

// TouchSession extends a session's liveness. Unknown or ended sessions are ignored.
func (c *Controller) TouchSession(ctx context.Context, sessionID uuid.UUID, ip string) error {
	const op = "sessions.TouchSession.ctrl"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	err := c.repo.TouchSession(ctx, sessionID, ip, c.now().UTC())
	if errors.Is(err, repo.ErrNotFound) {
		zap.L().Debug("touch on missing session", zap.String("op", op), zap.String("sid", sessionID.String()))
		return nil
	}
	if err != nil {
		span.SetTag(config.ErrorSpanTag, true)
		return err
	}
	return nil
}

func (c *Controller) HasLiveSession(ctx context.Context, uid uuid.UUID) (*dto.LiveSession, error) {
	const op = "sessions.HasLiveSession.ctrl"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	since := c.now().UTC().Add(-c.conf.Extension.SessionWindow)
	s, err := c.repo.GetLiveSession(ctx, uid, since)
	if errors.Is(err, repo.ErrNotFound) {
		return &dto.LiveSession{Active: false}, nil
	}
	if err != nil {
		span.SetTag(config.ErrorSpanTag, true)
		return nil, err
	}

	return &dto.LiveSession{
		Active:       true,
		SessionID:    &s.ID,
		LastActivity: &s.LastActivity,
	}, nil
}

// EndSession is idempotent: the first logout timestamp is kept.
func (c *Controller) EndSession(ctx context.Context, sessionID uuid.UUID) error {
	const op = "sessions.EndSession.ctrl"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	if err := c.repo.EndSession(ctx, sessionID, c.now().UTC()); err != nil && !errors.Is(err, repo.ErrNotFound) {
		span.SetTag(config.ErrorSpanTag, true)
		return err
	}
	return nil
}
