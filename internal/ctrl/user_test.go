package ctrl

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/JMURv/trust-bridge/internal/dto"
	md "github.com/JMURv/trust-bridge/internal/models"
	"github.com/JMURv/trust-bridge/internal/repo"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestController_GetUserByID(t *testing.T) {
	ctx := context.Background()

	t.Run(
		"CacheHit", func(t *testing.T) {
			c, deps := newTestController(t, testConfig())
			uid := uuid.New()
			deps.cache.EXPECT().GetToStruct(gomock.Any(), fmt.Sprintf(userCacheKey, uid), gomock.Any()).
				DoAndReturn(
					func(_ context.Context, _ string, dest any) error {
						dest.(*md.User).ID = uid
						return nil
					},
				)

			res, err := c.GetUserByID(ctx, uid)
			require.NoError(t, err)
			assert.Equal(t, uid, res.ID)
		},
	)

	t.Run(
		"CacheMiss", func(t *testing.T) {
			c, deps := newTestController(t, testConfig())
			u := activeUser()
			deps.expectUserLookup(u)

			res, err := c.GetUserByID(ctx, u.ID)
			require.NoError(t, err)
			assert.Equal(t, u, res)
		},
	)

	t.Run(
		"NotFound", func(t *testing.T) {
			c, deps := newTestController(t, testConfig())
			uid := uuid.New()
			deps.cache.EXPECT().GetToStruct(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("miss"))
			deps.repo.EXPECT().GetUserByID(gomock.Any(), uid).Return(nil, repo.ErrNotFound)

			_, err := c.GetUserByID(ctx, uid)
			assert.ErrorIs(t, err, ErrNotFound)
		},
	)
}

func TestController_DeleteUser(t *testing.T) {
	ctx := context.Background()
	uid := uuid.New()

	t.Run(
		"Success", func(t *testing.T) {
			c, deps := newTestController(t, testConfig())
			deps.repo.EXPECT().DeleteUser(gomock.Any(), uid).Return(nil)
			deps.repo.EXPECT().EndAllSessions(gomock.Any(), uid, testNow).Return(nil)
			deps.repo.EXPECT().RevokeAllTokens(gomock.Any(), uid).Return(nil)
			deps.cache.EXPECT().Delete(gomock.Any(), fmt.Sprintf(userCacheKey, uid))
			deps.cache.EXPECT().InvalidateKeysByPattern(gomock.Any(), fmt.Sprintf(rateLimitKeys, uid))

			assert.NoError(t, c.DeleteUser(ctx, uid))
		},
	)

	t.Run(
		"NotFound", func(t *testing.T) {
			c, deps := newTestController(t, testConfig())
			deps.repo.EXPECT().DeleteUser(gomock.Any(), uid).Return(repo.ErrNotFound)

			assert.ErrorIs(t, c.DeleteUser(ctx, uid), ErrNotFound)
		},
	)
}

func TestController_ConsumeRequest(t *testing.T) {
	ctx := context.Background()
	d := &dto.DeviceRequest{IP: testIP, UA: testUA, Endpoint: "/api/extension/usage"}

	tests := []struct {
		name    string
		tier    md.Tier
		used    int
		event   bool
		wantErr error
		want    dto.UsageResponse
	}{
		{name: "UnderTrialLimit", tier: md.TierTrial, used: 5, want: dto.UsageResponse{Used: 5, Limit: 20, Remaining: 15}},
		{name: "AtTrialLimit", tier: md.TierTrial, used: 20, want: dto.UsageResponse{Used: 20, Limit: 20, Remaining: 0}},
		{
			name: "FirstOverLimit", tier: md.TierTrial, used: 21, event: true, wantErr: ErrDailyLimitExceeded,
			want: dto.UsageResponse{Used: 21, Limit: 20, Remaining: 0},
		},
		{
			name: "FurtherOverLimit", tier: md.TierTrial, used: 22, wantErr: ErrDailyLimitExceeded,
			want: dto.UsageResponse{Used: 22, Limit: 20, Remaining: 0},
		},
		{name: "Pro", tier: md.TierPro, used: 150, want: dto.UsageResponse{Used: 150, Limit: 200, Remaining: 50}},
		{name: "Premium", tier: md.TierPremium, used: 999, want: dto.UsageResponse{Used: 999, Limit: 1000, Remaining: 1}},
	}

	for _, tt := range tests {
		t.Run(
			tt.name, func(t *testing.T) {
				c, deps := newTestController(t, testConfig())
				u := activeUser()
				u.Tier = tt.tier

				deps.repo.EXPECT().IncrementDailyRequests(gomock.Any(), u.ID, testNow).Return(tt.used, nil)
				deps.cache.EXPECT().Delete(gomock.Any(), fmt.Sprintf(userCacheKey, u.ID))
				if tt.event {
					deps.repo.EXPECT().CreateSecurityEvent(gomock.Any(), eventOf(md.EventDailyLimitExceeded, md.SeverityLow)).
						Return(nil).Times(1)
				}

				res, err := c.ConsumeRequest(ctx, u, d)
				if tt.wantErr != nil {
					assert.ErrorIs(t, err, tt.wantErr)
				} else {
					assert.NoError(t, err)
				}
				require.NotNil(t, res)
				assert.Equal(t, tt.want, *res)
			},
		)
	}
}

func TestController_CheckRateLimit(t *testing.T) {
	ctx := context.Background()
	d := &dto.DeviceRequest{IP: testIP, UA: testUA, Endpoint: "/api/extension/usage"}

	tests := []struct {
		name     string
		tier     md.Tier
		count    int64
		redisErr error
		event    bool
		wantErr  error
	}{
		{name: "Under", tier: md.TierTrial, count: 10},
		{name: "AtLimit", tier: md.TierTrial, count: 50},
		{name: "FirstOver", tier: md.TierTrial, count: 51, event: true, wantErr: ErrRateLimited},
		{name: "FurtherOver", tier: md.TierTrial, count: 60, wantErr: ErrRateLimited},
		{name: "ProHigherLimit", tier: md.TierPro, count: 150},
		{name: "RedisDownFailsOpen", tier: md.TierTrial, redisErr: errors.New("redis down")},
	}

	for _, tt := range tests {
		t.Run(
			tt.name, func(t *testing.T) {
				c, deps := newTestController(t, testConfig())
				u := activeUser()
				u.Tier = tt.tier
				key := fmt.Sprintf(rateLimitKey, u.ID, testNow.Unix()/3600)

				deps.cache.EXPECT().Incr(gomock.Any(), time.Hour, key).Return(tt.count, tt.redisErr)
				if tt.event {
					deps.repo.EXPECT().CreateSecurityEvent(gomock.Any(), eventOf(md.EventRateLimitExceeded, md.SeverityMedium)).
						Return(nil).Times(1)
				}

				err := c.CheckRateLimit(ctx, u, d)
				if tt.wantErr != nil {
					assert.ErrorIs(t, err, tt.wantErr)
					return
				}
				assert.NoError(t, err)
			},
		)
	}
}

func TestController_CheckRateLimit_FixedWindow(t *testing.T) {
	ctx := context.Background()
	d := &dto.DeviceRequest{IP: testIP, UA: testUA, Endpoint: "/api/extension/usage"}
	hourStart := testNow.Truncate(time.Hour)

	c, deps := newTestController(t, testConfig())
	u := activeUser()

	current := fmt.Sprintf(rateLimitKey, u.ID, hourStart.Unix()/3600)
	next := fmt.Sprintf(rateLimitKey, u.ID, hourStart.Add(time.Hour).Unix()/3600)
	require.NotEqual(t, current, next)

	gomock.InOrder(
		deps.cache.EXPECT().Incr(gomock.Any(), time.Hour, current).Return(int64(1), nil),
		deps.cache.EXPECT().Incr(gomock.Any(), time.Hour, current).Return(int64(2), nil),
		deps.cache.EXPECT().Incr(gomock.Any(), time.Hour, next).Return(int64(1), nil),
	)

	for _, at := range []time.Time{hourStart, hourStart.Add(59*time.Minute + 59*time.Second), hourStart.Add(time.Hour)} {
		c.now = func() time.Time { return at }
		assert.NoError(t, c.CheckRateLimit(ctx, u, d))
	}
}
