package ctrl

import (
	"fmt"
	"testing"
	"time"

	"github.com/JMURv/trust-bridge/internal/cache"
	"github.com/JMURv/trust-bridge/internal/config"
	md "github.com/JMURv/trust-bridge/internal/models"
	"github.com/JMURv/trust-bridge/tests/mocks"
	"github.com/google/uuid"
	"go.uber.org/mock/gomock"
)

var testNow = time.Date(2026, time.October, 15, 12, 0, 0, 0, time.UTC)

const (
	testExtID = "abcdefghijklmnopabcdefghijklmnop"
	testUA    = "Mozilla/5.0 (X11; Linux x86_64) Chrome/129.0"
	testIP    = "203.0.113.7"
)

type testDeps struct {
	auth  *mocks.MockCore
	repo  *mocks.MockAppRepo
	cache *mocks.MockCacheService
}

func testConfig() config.Config {
	conf := config.Config{ServiceName: "trust-bridge"}
	conf.Auth = config.AuthConfig{
		AccessTTL:    24 * time.Hour,
		RefreshTTL:   7 * 24 * time.Hour,
		ExtensionTTL: time.Hour,
		TrialDays:    7,
	}
	conf.Extension = config.ExtensionConfig{
		AutoRegisterDevices: true,
		MaxDevices:          5,
		OnStoreError:        config.StorePolicyAllow,
		WebLoginURL:         "https://app.example.com/login",
		SessionWindow:       24 * time.Hour,
		HourlyLimitTrial:    50,
		HourlyLimitPro:      200,
		HourlyLimitPremium:  500,
	}
	conf.Limits = config.LimitsConfig{DailyTrial: 20, DailyPro: 200, DailyPremium: 1000}
	conf.Abuse = config.AbuseConfig{
		Window:             time.Hour,
		IPThreshold:        200,
		EndpointThreshold:  50,
		UsersPerIP:         10,
		MinUALength:        10,
		ViolationThreshold: 5,
		AlertWindow:        time.Hour,
		PreAuthWindow:      time.Minute,
	}
	conf.Retention = config.RetentionConfig{RequestLogs: 2 * time.Hour, SweepInterval: 10 * time.Minute}
	return conf
}

func newTestController(t *testing.T, conf config.Config) (*Controller, testDeps) {
	t.Helper()
	mock := gomock.NewController(t)

	deps := testDeps{
		auth:  mocks.NewMockCore(mock),
		repo:  mocks.NewMockAppRepo(mock),
		cache: mocks.NewMockCacheService(mock),
	}

	c := New(deps.auth, deps.repo, deps.cache, nil, conf)
	c.now = func() time.Time { return testNow }
	return c, deps
}

func activeUser() *md.User {
	trialEnds := testNow.Add(72 * time.Hour)
	return &md.User{
		ID:          uuid.New(),
		Name:        "Test User",
		IsActive:    true,
		Tier:        md.TierTrial,
		TrialEndsAt: &trialEnds,
	}
}

// expectUserLookup wires a cache miss followed by a repository hit.
func (d testDeps) expectUserLookup(u *md.User) {
	d.cache.EXPECT().GetToStruct(gomock.Any(), fmt.Sprintf(userCacheKey, u.ID), gomock.Any()).
		Return(cache.ErrNotFoundInCache)
	d.repo.EXPECT().GetUserByID(gomock.Any(), u.ID).Return(u, nil)
	d.cache.EXPECT().Set(gomock.Any(), config.UserCacheTime, fmt.Sprintf(userCacheKey, u.ID), gomock.Any())
}

func (d testDeps) expectLiveSession(uid uuid.UUID) uuid.UUID {
	sid := uuid.New()
	d.repo.EXPECT().GetLiveSession(gomock.Any(), uid, testNow.Add(-24*time.Hour)).
		Return(&md.WebSession{ID: sid, UserID: uid, IsActive: true, LastActivity: testNow.Add(-time.Minute)}, nil)
	return sid
}

// counts are requests by ip, by user on endpoint, distinct users on ip, severe events.
func (d testDeps) expectAbuseCounts(uid uuid.UUID, byIP, byEndpoint, users, severe int) {
	d.repo.EXPECT().CreateRequestLog(gomock.Any(), gomock.Any()).Return(nil)
	d.repo.EXPECT().CountRequestsByIP(gomock.Any(), gomock.Any(), gomock.Any()).Return(byIP, nil)
	d.repo.EXPECT().CountRequestsByUserEndpoint(gomock.Any(), uid, gomock.Any(), gomock.Any()).Return(byEndpoint, nil)
	d.repo.EXPECT().CountDistinctUsersByIP(gomock.Any(), gomock.Any(), gomock.Any()).Return(users, nil)
	d.repo.EXPECT().CountSevereEvents(gomock.Any(), uid, gomock.Any()).Return(severe, nil)
}

type eventMatcher struct {
	typ md.SecurityEventType
	sev md.Severity
}

func eventOf(typ md.SecurityEventType, sev md.Severity) gomock.Matcher {
	return eventMatcher{typ: typ, sev: sev}
}

func (m eventMatcher) Matches(x any) bool {
	e, ok := x.(*md.SecurityEvent)
	return ok && e.Type == m.typ && e.Severity == m.sev
}

func (m eventMatcher) String() string {
	return fmt.Sprintf("security event %s with severity %s", m.typ, m.sev)
}
