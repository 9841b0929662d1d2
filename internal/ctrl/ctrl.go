package ctrl

import (
	"context"
	"io"
	"time"

	"github.com/JMURv/trust-bridge/internal/auth"
	"github.com/JMURv/trust-bridge/internal/config"
	md "github.com/JMURv/trust-bridge/internal/models"
)

//go:generate mockgen -destination=../../tests/mocks/mock_ctrl.go -package=mocks . AppRepo,CacheService,Alerter,AppCtrl

type AppRepo interface {
	userRepo
	authRepo
	sessionRepo
	deviceRepo
	securityRepo
}

type AppCtrl interface {
	userCtrl
	authCtrl
	sessionCtrl
	deviceCtrl
	securityCtrl
	gateCtrl
}

type CacheService interface {
	io.Closer
	GetToStruct(ctx context.Context, key string, dest any) error
	Set(ctx context.Context, t time.Duration, key string, val any)
	Delete(ctx context.Context, key string)
	Incr(ctx context.Context, t time.Duration, key string) (int64, error)
	SetNX(ctx context.Context, t time.Duration, key string) (bool, error)
	InvalidateKeysByPattern(ctx context.Context, pattern string)
}

// Alerter is notified about high and critical security events.
type Alerter interface {
	SecurityAlert(ctx context.Context, e *md.SecurityEvent) error
}

type Controller struct {
	au     auth.Core
	repo   AppRepo
	cache  CacheService
	alerts Alerter
	conf   config.Config
	now    func() time.Time
}

func New(au auth.Core, repo AppRepo, cache CacheService, alerts Alerter, conf config.Config) *Controller {
	return &Controller{
		au:     au,
		repo:   repo,
		cache:  cache,
		alerts: alerts,
		conf:   conf,
		now:    time.Now,
	}
}
