package middleware

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/JMURv/trust-bridge/internal/auth"
	"github.com/JMURv/trust-bridge/internal/config"
	"github.com/JMURv/trust-bridge/internal/ctrl"
	"github.com/JMURv/trust-bridge/internal/dto"
	"github.com/JMURv/trust-bridge/internal/hdl"
	"github.com/JMURv/trust-bridge/internal/hdl/http/utils"
	md "github.com/JMURv/trust-bridge/internal/models"
	metrics "github.com/JMURv/trust-bridge/internal/observability/metrics/prometheus"
	"github.com/opentracing/opentracing-go"
	"go.uber.org/zap"
)

type gate interface {
	CheckExtension(ctx context.Context, req *dto.ExtensionRequest) (*dto.ExtensionContext, error)
}

type limiter interface {
	CheckRateLimit(ctx context.Context, u *md.User, d *dto.DeviceRequest) error
}

// Auth verifies the bearer access token and stores uid and sid in the context.
func Auth(au auth.Core) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				token := utils.BearerToken(r)
				if token == "" {
					utils.ErrResponse(w, http.StatusUnauthorized, hdl.ErrMissingToken)
					return
				}

				claims, err := au.ParseClaims(r.Context(), token)
				if err != nil {
					utils.ErrResponse(w, http.StatusUnauthorized, err)
					return
				}

				ctx := context.WithValue(r.Context(), config.UidKey, claims.UID)
				if claims.SID != nil {
					ctx = context.WithValue(ctx, config.SidKey, *claims.SID)
				}
				next.ServeHTTP(w, r.WithContext(ctx))
			},
		)
	}
}

// Device stores the client ip and user agent in the context.
func Device(next http.Handler) http.Handler {
	return http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			ctx := context.WithValue(r.Context(), config.IpKey, clientIP(r))
			ctx = context.WithValue(ctx, config.UaKey, r.UserAgent())
			next.ServeHTTP(w, r.WithContext(ctx))
		},
	)
}

// Extension admits only requests that pass the extension gate and stores the
// resulting *dto.ExtensionContext under config.ExtCtxKey.
func Extension(g gate) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				ext, err := g.CheckExtension(
					r.Context(), &dto.ExtensionRequest{
						Origin:      r.Header.Get("Origin"),
						ExtensionID: r.Header.Get(config.HeaderExtensionID),
						Token:       utils.BearerToken(r),
						Fingerprint: r.Header.Get(config.HeaderFingerprint),
						IP:          clientIP(r),
						UA:          r.UserAgent(),
						Endpoint:    r.URL.Path,
					},
				)
				if err != nil {
					utils.GateErrResponse(w, err)
					return
				}

				ctx := context.WithValue(r.Context(), config.ExtCtxKey, ext)
				ctx = context.WithValue(ctx, config.UidKey, ext.User.ID)
				next.ServeHTTP(w, r.WithContext(ctx))
			},
		)
	}
}

// RateLimit applies the hourly per-tier limit. It must run after Extension.
func RateLimit(l limiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				ext, ok := r.Context().Value(config.ExtCtxKey).(*dto.ExtensionContext)
				if !ok {
					zap.L().Error("rate limit without extension context", zap.String("path", r.URL.Path))
					utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrInternal)
					return
				}

				err := l.CheckRateLimit(
					r.Context(), ext.User, &dto.DeviceRequest{
						IP:       clientIP(r),
						UA:       r.UserAgent(),
						Endpoint: r.URL.Path,
					},
				)
				if err != nil {
					if errors.Is(err, ctrl.ErrRateLimited) {
						utils.CodeErrResponse(w, http.StatusTooManyRequests, utils.CodeRateLimitExceeded, err)
						return
					}
					utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrInternal)
					return
				}
				next.ServeHTTP(w, r)
			},
		)
	}
}

// AdminKey guards administrator routes. An empty configured key disables them.
func AdminKey(key string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				got := r.Header.Get(config.HeaderAdminKey)
				if key == "" || subtle.ConstantTimeCompare([]byte(got), []byte(key)) != 1 {
					utils.ErrResponse(w, http.StatusForbidden, hdl.ErrInvalidAdminKey)
					return
				}
				next.ServeHTTP(w, r)
			},
		)
	}
}

type LoggingResponseWriter struct {
	http.ResponseWriter
	statusCode int
}

func NewLoggingResponseWriter(w http.ResponseWriter) *LoggingResponseWriter {
	return &LoggingResponseWriter{w, http.StatusOK}
}

func (lrw *LoggingResponseWriter) WriteHeader(code int) {
	lrw.statusCode = code
	lrw.ResponseWriter.WriteHeader(code)
}

func Prometheus(next http.Handler) http.Handler {
	return http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			s := time.Now()
			op := fmt.Sprintf("%s %s", r.Method, r.URL.Path)

			lrw := NewLoggingResponseWriter(w)
			next.ServeHTTP(lrw, r)
			metrics.ObserveRequest(time.Since(s), lrw.statusCode, op)
		},
	)
}

func Logger(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				start := time.Now()
				lrw := NewLoggingResponseWriter(w)
				logger.Debug(
					"-->",
					zap.String("method", r.Method),
					zap.String("path", r.URL.Path),
					zap.String("remote", r.RemoteAddr),
				)

				next.ServeHTTP(lrw, r)

				logger.Info(
					"<--",
					zap.String("method", r.Method),
					zap.String("path", r.URL.Path),
					zap.Int("status", lrw.statusCode),
					zap.Duration("duration", time.Since(start)),
					zap.String("remote", r.RemoteAddr),
				)
			},
		)
	}
}

func OT(next http.Handler) http.Handler {
	return http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			span, ctx := opentracing.StartSpanFromContext(r.Context(), fmt.Sprintf("%s %s", r.Method, r.URL.Path))
			defer span.Finish()

			next.ServeHTTP(w, r.WithContext(ctx))
		},
	)
}

// clientIP relies on chi's RealIP having rewritten RemoteAddr.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
