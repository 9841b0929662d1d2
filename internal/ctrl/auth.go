package ctrl

import (
	"context"
	"errors"
	"time"

	"github.com/JMURv/trust-bridge/internal/auth"
	"github.com/JMURv/trust-bridge/internal/auth/jwt"
	"github.com/JMURv/trust-bridge/internal/config"
	"github.com/JMURv/trust-bridge/internal/dto"
	md "github.com/JMURv/trust-bridge/internal/models"
	metrics "github.com/JMURv/trust-bridge/internal/observability/metrics/prometheus"
	"github.com/JMURv/trust-bridge/internal/repo"
	"github.com/google/uuid"
	"github.com/opentracing/opentracing-go"
	"go.uber.org/zap"
)

type authCtrl interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error)
	Authenticate(ctx context.Context, d *dto.DeviceRequest, req *dto.LoginRequest) (*dto.LoginResponse, error)
	Refresh(ctx context.Context, req *dto.RefreshRequest) (*dto.TokenPair, error)
	Logout(ctx context.Context, uid uuid.UUID, sid *uuid.UUID) error
	ValidateExtensionSession(
		ctx context.Context,
		uid uuid.UUID,
		fingerprint string,
		d *dto.DeviceRequest,
	) (*dto.SessionValidateResponse, error)
}

type authRepo interface {
	CreateToken(ctx context.Context, userID uuid.UUID, hashedT string, sessionID *uuid.UUID, expiresAt time.Time) error
	IsTokenValid(ctx context.Context, userID uuid.UUID, hashedT string, now time.Time) (bool, error)
	RevokeToken(ctx context.Context, userID uuid.UUID, hashedT string) error
	RevokeAllTokens(ctx context.Context, userID uuid.UUID) error
	DeleteExpiredTokens(ctx context.Context, before time.Time) (int64, error)
}

func (c *Controller) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error) {
	const op = "auth.Register.ctrl"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	hash, err := c.au.Hash(req.Password)
	if err != nil {
		span.SetTag(config.ErrorSpanTag, true)
		zap.L().Error("failed to hash password", zap.String("op", op), zap.Error(err))
		return nil, err
	}

	trialEnds := c.now().UTC().AddDate(0, 0, c.conf.Auth.TrialDays)
	u := &md.User{
		Name:        req.Name,
		Password:    hash,
		IsActive:    true,
		Tier:        md.TierTrial,
		TrialEndsAt: &trialEnds,
	}
	if req.Email != "" {
		u.Email = &req.Email
	}
	if req.Phone != "" {
		u.Phone = &req.Phone
	}

	id, err := c.repo.CreateUser(ctx, u)
	if err != nil {
		if errors.Is(err, repo.ErrAlreadyExists) {
			return nil, ErrAlreadyExists
		}
		span.SetTag(config.ErrorSpanTag, true)
		return nil, err
	}

	pair, err := c.issuePair(ctx, id, nil)
	if err != nil {
		span.SetTag(config.ErrorSpanTag, true)
		return nil, err
	}

	return &dto.RegisterResponse{ID: id, TokenPair: *pair}, nil
}

// Authenticate checks credentials and opens a web session; the session id is
// embedded in the issued access token.
func (c *Controller) Authenticate(
	ctx context.Context,
	d *dto.DeviceRequest,
	req *dto.LoginRequest,
) (*dto.LoginResponse, error) {
	const op = "auth.Authenticate.ctrl"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	var (
		u   *md.User
		err error
	)
	if req.Email != "" {
		u, err = c.repo.GetUserByEmail(ctx, req.Email)
	} else {
		u, err = c.repo.GetUserByPhone(ctx, req.Phone)
	}
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, auth.ErrInvalidCredentials
		}
		span.SetTag(config.ErrorSpanTag, true)
		return nil, err
	}

	if err = c.au.ComparePasswords([]byte(u.Password), []byte(req.Password)); err != nil {
		return nil, err
	}
	if !u.IsActive || u.IsDeleted {
		return nil, ErrAccountInactive
	}

	sid, err := c.CreateSession(ctx, u.ID, d, req.Fingerprint)
	if err != nil {
		span.SetTag(config.ErrorSpanTag, true)
		return nil, err
	}

	pair, err := c.issuePair(ctx, u.ID, &sid)
	if err != nil {
		span.SetTag(config.ErrorSpanTag, true)
		return nil, err
	}

	zap.L().Info("user logged in", zap.String("op", op), zap.String("uid", u.ID.String()), zap.String("ip", d.IP))
	return &dto.LoginResponse{TokenPair: *pair, SessionID: sid}, nil
}

func (c *Controller) Refresh(ctx context.Context, req *dto.RefreshRequest) (*dto.TokenPair, error) {
	const op = "auth.Refresh.ctrl"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	claims, err := c.au.ParseRefreshClaims(ctx, req.Refresh)
	if err != nil {
		return nil, err
	}

	hashed := auth.HashToken(req.Refresh)
	valid, err := c.repo.IsTokenValid(ctx, claims.UID, hashed, c.now().UTC())
	if err != nil {
		span.SetTag(config.ErrorSpanTag, true)
		return nil, err
	}
	if !valid {
		return nil, auth.ErrTokenRevoked
	}

	u, err := c.GetUserByID(ctx, claims.UID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrAccountInactive
		}
		return nil, err
	}
	if !u.IsActive || u.IsDeleted {
		return nil, ErrAccountInactive
	}

	if c.conf.Auth.RevokeOnRotate {
		if err = c.repo.RevokeToken(ctx, claims.UID, hashed); err != nil {
			span.SetTag(config.ErrorSpanTag, true)
			return nil, err
		}
	}

	return c.issuePair(ctx, claims.UID, claims.SID)
}

// Logout ends the session named by sid, or every session of the user when sid
// is nil, and revokes all refresh tokens.
func (c *Controller) Logout(ctx context.Context, uid uuid.UUID, sid *uuid.UUID) error {
	const op = "auth.Logout.ctrl"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	var err error
	if sid != nil {
		err = c.EndSession(ctx, *sid)
	} else {
		err = c.repo.EndAllSessions(ctx, uid, c.now().UTC())
	}
	if err != nil {
		span.SetTag(config.ErrorSpanTag, true)
		return err
	}

	if err = c.repo.RevokeAllTokens(ctx, uid); err != nil {
		span.SetTag(config.ErrorSpanTag, true)
		return err
	}
	return nil
}

// ValidateExtensionSession exchanges proof of a live web session for a short
// lived extension-scoped token.
func (c *Controller) ValidateExtensionSession(
	ctx context.Context,
	uid uuid.UUID,
	fingerprint string,
	d *dto.DeviceRequest,
) (*dto.SessionValidateResponse, error) {
	const op = "auth.ValidateExtensionSession.ctrl"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	u, err := c.GetUserByID(ctx, uid)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, &GateError{Code: CodeAccountDeactivated, Message: "Account not found", Err: err}
		}
		return nil, err
	}
	if gerr := c.checkAccount(u); gerr != nil {
		return nil, gerr
	}

	live, gerr := c.requireLiveSession(ctx, uid)
	if gerr != nil {
		metrics.GateRejected(string(gerr.Code))
		return nil, gerr
	}

	v, gerr := c.checkDevice(ctx, uid, fingerprint, d)
	if gerr != nil {
		metrics.GateRejected(string(gerr.Code))
		return nil, gerr
	}

	ttl := c.au.GetExtensionTTL()
	token, err := c.au.NewToken(ctx, uid, ttl, jwt.WithSession(live.SessionID), jwt.WithScope(config.ExtensionScope))
	if err != nil {
		span.SetTag(config.ErrorSpanTag, true)
		return nil, err
	}

	return &dto.SessionValidateResponse{
		Valid:     true,
		Token:     token,
		ExpiresIn: int64(ttl / time.Second),
		SessionID: *live.SessionID,
		Device:    v,
	}, nil
}

func (c *Controller) issuePair(ctx context.Context, uid uuid.UUID, sid *uuid.UUID) (*dto.TokenPair, error) {
	const op = "auth.issuePair.ctrl"

	access, refresh, exp, err := c.au.GenPair(ctx, uid, sid)
	if err != nil {
		zap.L().Error("failed to generate token pair", zap.String("op", op), zap.Error(err))
		return nil, err
	}

	if err = c.repo.CreateToken(ctx, uid, auth.HashToken(refresh), sid, exp); err != nil {
		return nil, err
	}
	return &dto.TokenPair{Access: access, Refresh: refresh}, nil
}
