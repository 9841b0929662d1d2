package jwt

import (
	"context"
	"errors"
	"time"

	"github.com/JMURv/trust-bridge/internal/config"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/opentracing/opentracing-go"
	"go.uber.org/zap"
)

type Port interface {
	GetAccessTTL() time.Duration
	GetExtensionTTL() time.Duration
	GenPair(ctx context.Context, uid uuid.UUID, sid *uuid.UUID) (string, string, time.Time, error)
	NewToken(ctx context.Context, uid uuid.UUID, d time.Duration, opts ...TokenOpt) (string, error)
	NewRefreshToken(ctx context.Context, uid uuid.UUID, sid *uuid.UUID) (string, time.Time, error)
	ParseClaims(ctx context.Context, tokenStr string) (Claims, error)
	ParseRefreshClaims(ctx context.Context, tokenStr string) (Claims, error)
}

type Core struct {
	accessSecret  []byte
	refreshSecret []byte
	issuer        string
	accessTTL     time.Duration
	refreshTTL    time.Duration
	extensionTTL  time.Duration
	now           func() time.Time
}

type Claims struct {
	UID   uuid.UUID  `json:"uid"`
	SID   *uuid.UUID `json:"sid,omitempty"`
	Scope string     `json:"scope,omitempty"`
	Type  string     `json:"typ,omitempty"`
	jwt.RegisteredClaims
}

type TokenOpt func(*Claims)

// WithSession binds the token to a web session.
func WithSession(sid *uuid.UUID) TokenOpt {
	return func(c *Claims) {
		c.SID = sid
	}
}

func WithScope(scope string) TokenOpt {
	return func(c *Claims) {
		c.Scope = scope
	}
}

func New(conf config.Config) *Core {
	return &Core{
		accessSecret:  []byte(conf.Auth.AccessSecret),
		refreshSecret: []byte(conf.Auth.RefreshSecret),
		issuer:        conf.Auth.Issuer,
		accessTTL:     conf.Auth.AccessTTL,
		refreshTTL:    conf.Auth.RefreshTTL,
		extensionTTL:  conf.Auth.ExtensionTTL,
		now:           time.Now,
	}
}

func (c *Core) GetAccessTTL() time.Duration {
	return c.accessTTL
}

func (c *Core) GetExtensionTTL() time.Duration {
	return c.extensionTTL
}

// GenPair returns an access token, a refresh token and the refresh expiry.
func (c *Core) GenPair(ctx context.Context, uid uuid.UUID, sid *uuid.UUID) (string, string, time.Time, error) {
	const op = "auth.GenPair.jwt"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	access, err := c.NewToken(ctx, uid, c.accessTTL, WithSession(sid))
	if err != nil {
		zap.L().Error(
			"Failed to generate token pair",
			zap.String("uid", uid.String()),
			zap.Error(err),
		)

		return "", "", time.Time{}, err
	}

	refresh, exp, err := c.NewRefreshToken(ctx, uid, sid)
	if err != nil {
		zap.L().Error(
			"Failed to generate token pair",
			zap.String("uid", uid.String()),
			zap.Error(err),
		)

		return "", "", time.Time{}, err
	}

	return access, refresh, exp, nil
}

func (c *Core) NewToken(ctx context.Context, uid uuid.UUID, d time.Duration, opts ...TokenOpt) (string, error) {
	const op = "auth.NewToken.jwt"
	span, _ := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	if d <= 0 {
		d = c.accessTTL
	}

	claims := c.claims(uid, d)
	for _, opt := range opts {
		opt(claims)
	}

	return c.sign(claims, c.accessSecret)
}

func (c *Core) NewRefreshToken(ctx context.Context, uid uuid.UUID, sid *uuid.UUID) (string, time.Time, error) {
	const op = "auth.NewRefreshToken.jwt"
	span, _ := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	claims := c.claims(uid, c.refreshTTL)
	claims.SID = sid
	claims.Type = config.RefreshTokenType
	// jti keeps two refresh tokens issued within the same second distinct
	claims.ID = uuid.NewString()

	signed, err := c.sign(claims, c.refreshSecret)
	if err != nil {
		return "", time.Time{}, err
	}

	return signed, claims.ExpiresAt.Time, nil
}

func (c *Core) ParseClaims(ctx context.Context, tokenStr string) (Claims, error) {
	const op = "auth.ParseClaims.jwt"
	span, _ := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	return c.parse(op, tokenStr, c.accessSecret)
}

func (c *Core) ParseRefreshClaims(ctx context.Context, tokenStr string) (Claims, error) {
	const op = "auth.ParseRefreshClaims.jwt"
	span, _ := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	claims, err := c.parse(op, tokenStr, c.refreshSecret)
	if err != nil {
		return claims, err
	}

	if claims.Type != config.RefreshTokenType {
		zap.L().Debug(
			"Token is not a refresh token",
			zap.String("op", op),
			zap.String("typ", claims.Type),
		)
		return claims, ErrWrongTokenType
	}

	return claims, nil
}

func (c *Core) claims(uid uuid.UUID, d time.Duration) *Claims {
	now := c.now()
	return &Claims{
		UID: uid,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(d)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    c.issuer,
		},
	}
}

func (c *Core) sign(claims *Claims, secret []byte) (string, error) {
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	if err != nil {
		zap.L().Error(
			ErrWhileCreatingToken.Error(),
			zap.Error(err),
		)

		return "", ErrWhileCreatingToken
	}

	return signed, nil
}

func (c *Core) parse(op, tokenStr string, secret []byte) (Claims, error) {
	claims := Claims{}
	token, err := jwt.ParseWithClaims(
		tokenStr, &claims, func(token *jwt.Token) (any, error) {
			if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
				return nil, ErrUnexpectedSignMethod
			}

			return secret, nil
		},
		jwt.WithTimeFunc(c.now),
		jwt.WithIssuer(c.issuer),
	)
	if err != nil {
		zap.L().Debug(
			"Failed to parse claims",
			zap.String("op", op),
			zap.Error(err),
		)

		if errors.Is(err, jwt.ErrTokenExpired) {
			return claims, ErrTokenExpired
		}
		return claims, ErrInvalidToken
	}

	if !token.Valid || claims.UID == uuid.Nil {
		return claims, ErrInvalidToken
	}

	return claims, nil
}
