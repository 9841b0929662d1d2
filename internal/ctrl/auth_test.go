package ctrl

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/JMURv/trust-bridge/internal/auth"
	"github.com/JMURv/trust-bridge/internal/auth/jwt"
	"github.com/JMURv/trust-bridge/internal/dto"
	md "github.com/JMURv/trust-bridge/internal/models"
	"github.com/JMURv/trust-bridge/internal/repo"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestController_Register(t *testing.T) {
	ctx := context.Background()
	req := &dto.RegisterRequest{Name: "Jane", Email: "jane@example.com", Password: "correct-horse"}
	refreshExp := testNow.Add(7 * 24 * time.Hour)

	t.Run(
		"Success", func(t *testing.T) {
			c, deps := newTestController(t, testConfig())
			id := uuid.New()

			deps.auth.EXPECT().Hash(req.Password).Return("hashed", nil)
			deps.repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, u *md.User) (uuid.UUID, error) {
					assert.Equal(t, "hashed", u.Password)
					assert.Equal(t, md.TierTrial, u.Tier)
					assert.True(t, u.IsActive)
					require.NotNil(t, u.Email)
					assert.Nil(t, u.Phone)
					require.NotNil(t, u.TrialEndsAt)
					assert.Equal(t, testNow.AddDate(0, 0, 7), *u.TrialEndsAt)
					return id, nil
				},
			)
			deps.auth.EXPECT().GenPair(gomock.Any(), id, nil).Return("access", "refresh", refreshExp, nil)
			deps.repo.EXPECT().CreateToken(gomock.Any(), id, auth.HashToken("refresh"), nil, refreshExp).Return(nil)

			res, err := c.Register(ctx, req)
			require.NoError(t, err)
			assert.Equal(t, id, res.ID)
			assert.Equal(t, "access", res.Access)
			assert.Equal(t, "refresh", res.Refresh)
		},
	)

	t.Run(
		"Duplicate", func(t *testing.T) {
			c, deps := newTestController(t, testConfig())
			deps.auth.EXPECT().Hash(req.Password).Return("hashed", nil)
			deps.repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(uuid.Nil, repo.ErrAlreadyExists)

			_, err := c.Register(ctx, req)
			assert.ErrorIs(t, err, ErrAlreadyExists)
		},
	)
}

func TestController_Authenticate(t *testing.T) {
	ctx := context.Background()
	d := &dto.DeviceRequest{IP: testIP, UA: testUA}
	req := &dto.LoginRequest{Email: "jane@example.com", Password: "correct-horse"}
	refreshExp := testNow.Add(7 * 24 * time.Hour)

	t.Run(
		"CreatesWebSession", func(t *testing.T) {
			c, deps := newTestController(t, testConfig())
			u := activeUser()
			u.Password = "hashed"
			sid := uuid.New()

			deps.repo.EXPECT().GetUserByEmail(gomock.Any(), req.Email).Return(u, nil)
			deps.auth.EXPECT().ComparePasswords([]byte("hashed"), []byte(req.Password)).Return(nil)
			deps.repo.EXPECT().CreateSession(gomock.Any(), gomock.Any()).Return(sid, nil)
			deps.auth.EXPECT().GenPair(gomock.Any(), u.ID, &sid).Return("access", "refresh", refreshExp, nil)
			deps.repo.EXPECT().CreateToken(gomock.Any(), u.ID, auth.HashToken("refresh"), &sid, refreshExp).Return(nil)

			res, err := c.Authenticate(ctx, d, req)
			require.NoError(t, err)
			assert.Equal(t, sid, res.SessionID)
			assert.Equal(t, "access", res.Access)
		},
	)

	t.Run(
		"UnknownUser", func(t *testing.T) {
			c, deps := newTestController(t, testConfig())
			deps.repo.EXPECT().GetUserByEmail(gomock.Any(), req.Email).Return(nil, repo.ErrNotFound)

			_, err := c.Authenticate(ctx, d, req)
			assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
		},
	)

	t.Run(
		"PhoneLogin", func(t *testing.T) {
			c, deps := newTestController(t, testConfig())
			deps.repo.EXPECT().GetUserByPhone(gomock.Any(), "+15550100").Return(nil, repo.ErrNotFound)

			_, err := c.Authenticate(ctx, d, &dto.LoginRequest{Phone: "+15550100", Password: "x"})
			assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
		},
	)

	t.Run(
		"WrongPassword", func(t *testing.T) {
			c, deps := newTestController(t, testConfig())
			u := activeUser()
			deps.repo.EXPECT().GetUserByEmail(gomock.Any(), req.Email).Return(u, nil)
			deps.auth.EXPECT().ComparePasswords(gomock.Any(), gomock.Any()).Return(auth.ErrInvalidCredentials)

			_, err := c.Authenticate(ctx, d, req)
			assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
		},
	)

	t.Run(
		"Inactive", func(t *testing.T) {
			c, deps := newTestController(t, testConfig())
			u := activeUser()
			u.IsActive = false
			deps.repo.EXPECT().GetUserByEmail(gomock.Any(), req.Email).Return(u, nil)
			deps.auth.EXPECT().ComparePasswords(gomock.Any(), gomock.Any()).Return(nil)

			_, err := c.Authenticate(ctx, d, req)
			assert.ErrorIs(t, err, ErrAccountInactive)
		},
	)
}

func TestController_Refresh(t *testing.T) {
	ctx := context.Background()
	req := &dto.RefreshRequest{Refresh: "old-refresh"}
	refreshExp := testNow.Add(7 * 24 * time.Hour)

	t.Run(
		"RotatesWithoutRevoking", func(t *testing.T) {
			c, deps := newTestController(t, testConfig())
			u := activeUser()
			sid := uuid.New()

			deps.auth.EXPECT().ParseRefreshClaims(gomock.Any(), req.Refresh).Return(jwt.Claims{UID: u.ID, SID: &sid}, nil)
			deps.repo.EXPECT().IsTokenValid(gomock.Any(), u.ID, auth.HashToken(req.Refresh), testNow).Return(true, nil)
			deps.expectUserLookup(u)
			deps.auth.EXPECT().GenPair(gomock.Any(), u.ID, &sid).Return("access", "new-refresh", refreshExp, nil)
			deps.repo.EXPECT().CreateToken(gomock.Any(), u.ID, auth.HashToken("new-refresh"), &sid, refreshExp).Return(nil)

			res, err := c.Refresh(ctx, req)
			require.NoError(t, err)
			assert.Equal(t, "new-refresh", res.Refresh)
		},
	)

	t.Run(
		"RevokeOnRotate", func(t *testing.T) {
			conf := testConfig()
			conf.Auth.RevokeOnRotate = true
			c, deps := newTestController(t, conf)
			u := activeUser()

			deps.auth.EXPECT().ParseRefreshClaims(gomock.Any(), req.Refresh).Return(jwt.Claims{UID: u.ID}, nil)
			deps.repo.EXPECT().IsTokenValid(gomock.Any(), u.ID, auth.HashToken(req.Refresh), testNow).Return(true, nil)
			deps.expectUserLookup(u)
			deps.repo.EXPECT().RevokeToken(gomock.Any(), u.ID, auth.HashToken(req.Refresh)).Return(nil)
			deps.auth.EXPECT().GenPair(gomock.Any(), u.ID, nil).Return("access", "new-refresh", refreshExp, nil)
			deps.repo.EXPECT().CreateToken(gomock.Any(), u.ID, gomock.Any(), nil, refreshExp).Return(nil)

			_, err := c.Refresh(ctx, req)
			require.NoError(t, err)
		},
	)

	t.Run(
		"Revoked", func(t *testing.T) {
			c, deps := newTestController(t, testConfig())
			uid := uuid.New()
			deps.auth.EXPECT().ParseRefreshClaims(gomock.Any(), req.Refresh).Return(jwt.Claims{UID: uid}, nil)
			deps.repo.EXPECT().IsTokenValid(gomock.Any(), uid, gomock.Any(), testNow).Return(false, nil)

			_, err := c.Refresh(ctx, req)
			assert.ErrorIs(t, err, auth.ErrTokenRevoked)
		},
	)

	t.Run(
		"AccessTokenRejected", func(t *testing.T) {
			c, deps := newTestController(t, testConfig())
			deps.auth.EXPECT().ParseRefreshClaims(gomock.Any(), req.Refresh).Return(jwt.Claims{}, jwt.ErrWrongTokenType)

			_, err := c.Refresh(ctx, req)
			assert.ErrorIs(t, err, jwt.ErrWrongTokenType)
		},
	)
}

func TestController_Logout(t *testing.T) {
	ctx := context.Background()
	uid := uuid.New()

	t.Run(
		"EndsNamedSession", func(t *testing.T) {
			c, deps := newTestController(t, testConfig())
			sid := uuid.New()
			deps.repo.EXPECT().EndSession(gomock.Any(), sid, testNow).Return(nil)
			deps.repo.EXPECT().RevokeAllTokens(gomock.Any(), uid).Return(nil)

			assert.NoError(t, c.Logout(ctx, uid, &sid))
		},
	)

	t.Run(
		"EndsAllSessionsWithoutSid", func(t *testing.T) {
			c, deps := newTestController(t, testConfig())
			deps.repo.EXPECT().EndAllSessions(gomock.Any(), uid, testNow).Return(nil)
			deps.repo.EXPECT().RevokeAllTokens(gomock.Any(), uid).Return(nil)

			assert.NoError(t, c.Logout(ctx, uid, nil))
		},
	)

	t.Run(
		"StoreError", func(t *testing.T) {
			c, deps := newTestController(t, testConfig())
			deps.repo.EXPECT().EndAllSessions(gomock.Any(), uid, testNow).Return(errors.New("db down"))

			assert.Error(t, c.Logout(ctx, uid, nil))
		},
	)
}

func TestController_ValidateExtensionSession(t *testing.T) {
	ctx := context.Background()
	d := &dto.DeviceRequest{IP: testIP, UA: testUA, Endpoint: "/api/auth/session/validate"}

	t.Run(
		"IssuesExtensionToken", func(t *testing.T) {
			c, deps := newTestController(t, testConfig())
			u := activeUser()
			dev := &md.Device{ID: uuid.New(), UserID: u.ID, Fingerprint: "F1", Status: md.DeviceActive}

			deps.expectUserLookup(u)
			sid := deps.expectLiveSession(u.ID)
			deps.repo.EXPECT().GetDeviceByFingerprint(gomock.Any(), u.ID, "F1").Return(dev, nil)
			deps.repo.EXPECT().TouchDevice(gomock.Any(), dev.ID, testIP, testUA, testNow).Return(nil)
			deps.auth.EXPECT().GetExtensionTTL().Return(time.Hour)
			deps.auth.EXPECT().NewToken(gomock.Any(), u.ID, time.Hour, gomock.Any(), gomock.Any()).Return("ext-token", nil)

			res, err := c.ValidateExtensionSession(ctx, u.ID, "F1", d)
			require.NoError(t, err)
			assert.True(t, res.Valid)
			assert.Equal(t, "ext-token", res.Token)
			assert.Equal(t, int64(3600), res.ExpiresIn)
			assert.Equal(t, sid, res.SessionID)
			require.NotNil(t, res.Device)
			assert.Equal(t, dev.ID, *res.Device.DeviceID)
		},
	)

	t.Run(
		"NoWebLogin", func(t *testing.T) {
			c, deps := newTestController(t, testConfig())
			u := activeUser()

			deps.expectUserLookup(u)
			deps.repo.EXPECT().GetLiveSession(gomock.Any(), u.ID, gomock.Any()).Return(nil, repo.ErrNotFound)

			_, err := c.ValidateExtensionSession(ctx, u.ID, "F1", d)
			gerr := requireGateCode(t, err, CodeWebAuthRequired)
			assert.NotEmpty(t, gerr.WebLoginURL)
		},
	)

	t.Run(
		"BlockedDevice", func(t *testing.T) {
			c, deps := newTestController(t, testConfig())
			u := activeUser()
			dev := &md.Device{ID: uuid.New(), UserID: u.ID, Fingerprint: "F1", Status: md.DeviceBlocked}

			deps.expectUserLookup(u)
			deps.expectLiveSession(u.ID)
			deps.repo.EXPECT().GetDeviceByFingerprint(gomock.Any(), u.ID, "F1").Return(dev, nil)
			deps.repo.EXPECT().CreateSecurityEvent(gomock.Any(), eventOf(md.EventBlockedDeviceAttempt, md.SeverityMedium)).
				Return(nil)

			_, err := c.ValidateExtensionSession(ctx, u.ID, "F1", d)
			gerr := requireGateCode(t, err, CodeDeviceNotAuthorized)
			assert.Equal(t, ReasonDeviceBlocked, gerr.Message)
		},
	)
}
