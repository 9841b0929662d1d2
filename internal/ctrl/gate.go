package ctrl

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/JMURv/trust-bridge/internal/auth/jwt"
	"github.com/JMURv/trust-bridge/internal/config"
	"github.com/JMURv/trust-bridge/internal/dto"
	md "github.com/JMURv/trust-bridge/internal/models"
	metrics "github.com/JMURv/trust-bridge/internal/observability/metrics/prometheus"
	"github.com/google/uuid"
	"github.com/opentracing/opentracing-go"
	"go.uber.org/zap"
)

type gateCtrl interface {
	CheckExtension(ctx context.Context, req *dto.ExtensionRequest) (*dto.ExtensionContext, error)
	ScorePatterns(ctx context.Context, uid uuid.UUID, d *dto.DeviceRequest) ([]dto.RiskPattern, error)
}

// CheckExtension runs the extension trust pipeline. The first failing step
// ends the request with a *GateError.
func (c *Controller) CheckExtension(ctx context.Context, req *dto.ExtensionRequest) (*dto.ExtensionContext, error) {
	const op = "gate.CheckExtension.ctrl"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	meta := &dto.DeviceRequest{IP: req.IP, UA: req.UA, Endpoint: req.Endpoint}

	originID, ok := strings.CutPrefix(req.Origin, config.ExtensionOriginScheme)
	if !ok || originID == "" {
		return nil, c.reject(ctx, op, nil, meta, &GateError{
			Code:    CodeInvalidOrigin,
			Message: "Request must originate from the browser extension",
		})
	}

	extID := req.ExtensionID
	if extID == "" {
		extID = originID
	}
	allowed := c.conf.Extension.AllowedIDs
	if extID != originID || (len(allowed) > 0 && !slices.Contains(allowed, extID)) {
		return nil, c.reject(ctx, op, nil, meta, &GateError{
			Code:    CodeInvalidExtension,
			Message: "Unknown browser extension",
		})
	}

	if req.Token == "" {
		return nil, c.reject(ctx, op, nil, meta, &GateError{
			Code:    CodeUnauthenticated,
			Message: "Missing access token",
		})
	}
	claims, err := c.au.ParseClaims(ctx, req.Token)
	if err != nil {
		msg := "Invalid access token"
		if errors.Is(err, jwt.ErrTokenExpired) {
			msg = "Access token expired"
		}
		return nil, c.reject(ctx, op, nil, meta, &GateError{Code: CodeUnauthenticated, Message: msg, Err: err})
	}
	uid := claims.UID

	u, err := c.GetUserByID(ctx, uid)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, c.reject(ctx, op, &uid, meta, &GateError{
				Code:    CodeAccountDeactivated,
				Message: "Account not found",
				Err:     err,
			})
		}
		return nil, c.reject(ctx, op, &uid, meta, &GateError{Code: CodeInternal, Message: "internal error", Err: err})
	}
	if gerr := c.checkAccount(u); gerr != nil {
		return nil, c.reject(ctx, op, &uid, meta, gerr)
	}

	live, gerr := c.requireLiveSession(ctx, uid)
	if gerr != nil {
		return nil, c.reject(ctx, op, &uid, meta, gerr)
	}

	var device *md.Device
	v, gerr := c.checkDevice(ctx, uid, req.Fingerprint, meta)
	if gerr != nil {
		return nil, c.reject(ctx, op, &uid, meta, gerr)
	}
	if v != nil {
		device = v.Device
	}

	patterns, err := c.ScorePatterns(ctx, uid, meta)
	if err != nil {
		if !c.allowOnStoreError("abuse", err) {
			return nil, c.reject(ctx, op, &uid, meta, &GateError{
				Code:    CodeSecurityViolation,
				Message: "Security verification unavailable",
				Err:     err,
			})
		}
		patterns = nil
	}
	if HasHighRisk(patterns) {
		return nil, c.reject(ctx, op, &uid, meta, &GateError{
			Code:    CodeSecurityViolation,
			Message: "Request blocked due to suspicious activity",
		})
	}

	return &dto.ExtensionContext{
		User:        u,
		Device:      device,
		Session:     live,
		Patterns:    patterns,
		ExtensionID: extID,
	}, nil
}

func (c *Controller) checkAccount(u *md.User) *GateError {
	if !u.IsActive || u.IsDeleted {
		return &GateError{Code: CodeAccountDeactivated, Message: "Account is deactivated", Err: ErrAccountInactive}
	}
	if u.TrialExpired(c.now()) {
		return &GateError{Code: CodeTrialExpired, Message: "Trial period has expired"}
	}
	return nil
}

// requireLiveSession fails closed: without a store answer there is no proof of web login.
func (c *Controller) requireLiveSession(ctx context.Context, uid uuid.UUID) (*dto.LiveSession, *GateError) {
	live, err := c.HasLiveSession(ctx, uid)
	if err != nil {
		return nil, &GateError{Code: CodeInternal, Message: "internal error", Err: err}
	}
	if !live.Active {
		return nil, &GateError{
			Code:        CodeWebAuthRequired,
			Message:     "Please sign in on the website first",
			WebLoginURL: c.conf.Extension.WebLoginURL,
		}
	}
	return live, nil
}

// checkDevice returns a nil validation when no fingerprint was sent or the
// device store failed under the allow policy.
func (c *Controller) checkDevice(
	ctx context.Context,
	uid uuid.UUID,
	fingerprint string,
	meta *dto.DeviceRequest,
) (*dto.DeviceValidation, *GateError) {
	if fingerprint == "" {
		if c.conf.Extension.FingerprintRequired {
			return nil, &GateError{Code: CodeDeviceNotAuthorized, Message: "Device fingerprint required"}
		}
		return nil, nil
	}

	v, err := c.ValidateOrRegister(ctx, uid, fingerprint, meta)
	if err != nil {
		if c.allowOnStoreError("device", err) {
			return nil, nil
		}
		return nil, &GateError{
			Code:    CodeDeviceNotAuthorized,
			Message: "Device verification unavailable",
			Err:     err,
		}
	}
	if !v.Valid {
		return nil, &GateError{Code: CodeDeviceNotAuthorized, Message: v.Reason}
	}
	return v, nil
}

// allowOnStoreError applies the configured policy to a failed device or abuse
// check. The default "allow" keeps extension users working through a database
// outage, and the identity and web session were already proven by that point.
func (c *Controller) allowOnStoreError(check string, err error) bool {
	policy := c.conf.Extension.OnStoreError
	metrics.StoreError(check, string(policy))
	zap.L().Error(
		"gate check failed on store error",
		zap.String("check", check),
		zap.String("policy", string(policy)),
		zap.Error(err),
	)
	return policy != config.StorePolicyDeny
}

func (c *Controller) reject(
	ctx context.Context,
	op string,
	uid *uuid.UUID,
	meta *dto.DeviceRequest,
	gerr *GateError,
) *GateError {
	metrics.GateRejected(string(gerr.Code))
	zap.L().Info(
		"extension request rejected",
		zap.String("op", op),
		zap.String("code", string(gerr.Code)),
		zap.String("ip", meta.IP),
		zap.String("endpoint", meta.Endpoint),
	)

	var typ md.SecurityEventType
	switch gerr.Code {
	case CodeInvalidOrigin:
		typ = md.EventInvalidOrigin
	case CodeInvalidExtension:
		typ = md.EventInvalidExtension
	case CodeWebAuthRequired:
		typ = md.EventWebAuthRequired
	default:
		return gerr
	}

	sev := md.SeverityMedium
	if typ == md.EventWebAuthRequired {
		sev = md.SeverityLow
	} else {
		// unauthenticated rejections are audited once per ip and type per window
		first, err := c.firstInWindow(ctx, c.conf.Abuse.PreAuthWindow, fmt.Sprintf(preAuthEventKey, typ, meta.IP))
		if err != nil {
			zap.L().Warn("pre-auth event throttle unavailable", zap.String("op", op), zap.Error(err))
		} else if !first {
			return gerr
		}
	}
	c.recordEvent(ctx, &md.SecurityEvent{
		Type:     typ,
		Severity: sev,
		UserID:   uid,
		IP:       meta.IP,
		UA:       meta.UA,
		Endpoint: meta.Endpoint,
	})
	return gerr
}
