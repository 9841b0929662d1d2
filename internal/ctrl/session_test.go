package ctrl

import (
	"context"
	"errors"
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

func TestController_CreateSession(t *testing.T) {
	c, deps := newTestController(t, testConfig())
	ctx := context.Background()
	uid, sid := uuid.New(), uuid.New()

	deps.repo.EXPECT().CreateSession(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, s *md.WebSession) (uuid.UUID, error) {
			assert.Equal(t, uid, s.UserID)
			assert.True(t, s.IsActive)
			assert.Equal(t, testIP, s.IP)
			assert.Equal(t, testNow, s.LastActivity)
			require.NotNil(t, s.DeviceFingerprint)
			assert.Equal(t, "fp-1", *s.DeviceFingerprint)
			return sid, nil
		},
	)

	res, err := c.CreateSession(ctx, uid, &dto.DeviceRequest{IP: testIP, UA: testUA}, "fp-1")
	require.NoError(t, err)
	assert.Equal(t, sid, res)
}

func TestController_TouchSession(t *testing.T) {
	ctx := context.Background()
	sid := uuid.New()
	testErr := errors.New("db down")

	tests := []struct {
		name    string
		repoErr error
		wantErr error
	}{
		{name: "Success"},
		{name: "MissingSessionIsNoop", repoErr: repo.ErrNotFound},
		{name: "StoreError", repoErr: testErr, wantErr: testErr},
	}

	for _, tt := range tests {
		t.Run(
			tt.name, func(t *testing.T) {
				c, deps := newTestController(t, testConfig())
				deps.repo.EXPECT().TouchSession(gomock.Any(), sid, testIP, testNow).Return(tt.repoErr)

				err := c.TouchSession(ctx, sid, testIP)
				if tt.wantErr != nil {
					assert.ErrorIs(t, err, tt.wantErr)
					return
				}
				assert.NoError(t, err)
			},
		)
	}
}

func TestController_HasLiveSession(t *testing.T) {
	ctx := context.Background()
	uid := uuid.New()

	t.Run(
		"NoSession", func(t *testing.T) {
			c, deps := newTestController(t, testConfig())
			deps.repo.EXPECT().GetLiveSession(gomock.Any(), uid, testNow.Add(-24*time.Hour)).
				Return(nil, repo.ErrNotFound)

			res, err := c.HasLiveSession(ctx, uid)
			require.NoError(t, err)
			assert.False(t, res.Active)
			assert.Nil(t, res.SessionID)
		},
	)

	t.Run(
		"Live", func(t *testing.T) {
			c, deps := newTestController(t, testConfig())
			sid := deps.expectLiveSession(uid)

			res, err := c.HasLiveSession(ctx, uid)
			require.NoError(t, err)
			assert.True(t, res.Active)
			require.NotNil(t, res.SessionID)
			assert.Equal(t, sid, *res.SessionID)
			require.NotNil(t, res.LastActivity)
		},
	)

	t.Run(
		"StoreError", func(t *testing.T) {
			c, deps := newTestController(t, testConfig())
			deps.repo.EXPECT().GetLiveSession(gomock.Any(), uid, gomock.Any()).Return(nil, errors.New("db down"))

			res, err := c.HasLiveSession(ctx, uid)
			assert.Error(t, err)
			assert.Nil(t, res)
		},
	)
}

func TestController_EndSession_Idempotent(t *testing.T) {
	c, deps := newTestController(t, testConfig())
	ctx := context.Background()
	sid := uuid.New()

	deps.repo.EXPECT().EndSession(gomock.Any(), sid, testNow).Return(nil).Times(2)

	assert.NoError(t, c.EndSession(ctx, sid))
	assert.NoError(t, c.EndSession(ctx, sid))
}
