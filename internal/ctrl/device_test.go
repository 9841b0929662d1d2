package ctrl

import (
	"context"
	"errors"
	"testing"

	"github.com/JMURv/trust-bridge/internal/dto"
	md "github.com/JMURv/trust-bridge/internal/models"
	"github.com/JMURv/trust-bridge/internal/repo"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestController_ValidateOrRegister(t *testing.T) {
	ctx := context.Background()
	uid := uuid.New()
	meta := &dto.DeviceRequest{IP: testIP, UA: testUA, Endpoint: "/api/extension/me"}
	testErr := errors.New("db down")

	t.Run(
		"FirstSightingRegisters", func(t *testing.T) {
			c, deps := newTestController(t, testConfig())
			id := uuid.New()

			deps.repo.EXPECT().GetDeviceByFingerprint(gomock.Any(), uid, "F1").Return(nil, repo.ErrNotFound)
			deps.repo.EXPECT().CountActiveDevices(gomock.Any(), uid).Return(0, nil)
			deps.repo.EXPECT().CreateDevice(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, d *md.Device) (uuid.UUID, error) {
					assert.Equal(t, md.DeviceActive, d.Status)
					assert.True(t, d.AutoRegistered)
					assert.Equal(t, "desktop", d.DeviceType)
					assert.Equal(t, testNow, d.FirstSeen)
					return id, nil
				},
			).Times(1)
			deps.repo.EXPECT().CreateSecurityEvent(gomock.Any(), eventOf(md.EventDeviceAutoRegistered, md.SeverityLow)).
				Return(nil)

			res, err := c.ValidateOrRegister(ctx, uid, "F1", meta)
			require.NoError(t, err)
			assert.True(t, res.Valid)
			assert.True(t, res.IsNew)
			require.NotNil(t, res.DeviceID)
			assert.Equal(t, id, *res.DeviceID)
			assert.Equal(t, id, res.Device.ID)
		},
	)

	t.Run(
		"KnownDeviceIsTouched", func(t *testing.T) {
			c, deps := newTestController(t, testConfig())
			dev := &md.Device{ID: uuid.New(), UserID: uid, Fingerprint: "F1", Status: md.DeviceActive}

			deps.repo.EXPECT().GetDeviceByFingerprint(gomock.Any(), uid, "F1").Return(dev, nil)
			deps.repo.EXPECT().TouchDevice(gomock.Any(), dev.ID, testIP, testUA, testNow).Return(nil)

			res, err := c.ValidateOrRegister(ctx, uid, "F1", meta)
			require.NoError(t, err)
			assert.True(t, res.Valid)
			assert.False(t, res.IsNew)
			assert.Equal(t, dev.ID, *res.DeviceID)
			assert.Equal(t, testNow, res.Device.LastSeen)
		},
	)

	t.Run(
		"BlockedDevice", func(t *testing.T) {
			c, deps := newTestController(t, testConfig())
			dev := &md.Device{ID: uuid.New(), UserID: uid, Fingerprint: "F1", Status: md.DeviceBlocked}

			deps.repo.EXPECT().GetDeviceByFingerprint(gomock.Any(), uid, "F1").Return(dev, nil)
			deps.repo.EXPECT().CreateSecurityEvent(gomock.Any(), eventOf(md.EventBlockedDeviceAttempt, md.SeverityMedium)).
				Return(nil)

			res, err := c.ValidateOrRegister(ctx, uid, "F1", meta)
			require.NoError(t, err)
			assert.False(t, res.Valid)
			assert.Equal(t, ReasonDeviceBlocked, res.Reason)
		},
	)

	t.Run(
		"SixthDeviceHitsCap", func(t *testing.T) {
			c, deps := newTestController(t, testConfig())

			deps.repo.EXPECT().GetDeviceByFingerprint(gomock.Any(), uid, "F6").Return(nil, repo.ErrNotFound)
			deps.repo.EXPECT().CountActiveDevices(gomock.Any(), uid).Return(5, nil)
			deps.repo.EXPECT().CreateSecurityEvent(gomock.Any(), eventOf(md.EventDeviceLimitExceeded, md.SeverityHigh)).
				Return(nil).Times(1)

			res, err := c.ValidateOrRegister(ctx, uid, "F6", meta)
			require.NoError(t, err)
			assert.False(t, res.Valid)
			assert.Equal(t, ReasonDeviceLimitExceeded, res.Reason)
			assert.Nil(t, res.DeviceID)
		},
	)

	t.Run(
		"AutoRegistrationDisabled", func(t *testing.T) {
			conf := testConfig()
			conf.Extension.AutoRegisterDevices = false
			c, deps := newTestController(t, conf)

			deps.repo.EXPECT().GetDeviceByFingerprint(gomock.Any(), uid, "F2").Return(nil, repo.ErrNotFound)
			deps.repo.EXPECT().CountActiveDevices(gomock.Any(), uid).Return(1, nil)
			deps.repo.EXPECT().CreateSecurityEvent(gomock.Any(), eventOf(md.EventDeviceRegistrationOff, md.SeverityMedium)).
				Return(nil)

			res, err := c.ValidateOrRegister(ctx, uid, "F2", meta)
			require.NoError(t, err)
			assert.False(t, res.Valid)
			assert.Equal(t, ReasonDeviceNotRegistered, res.Reason)
		},
	)

	t.Run(
		"ConcurrentRegistrationReusesDevice", func(t *testing.T) {
			c, deps := newTestController(t, testConfig())
			existing := &md.Device{ID: uuid.New(), UserID: uid, Fingerprint: "F1", Status: md.DeviceActive}

			gomock.InOrder(
				deps.repo.EXPECT().GetDeviceByFingerprint(gomock.Any(), uid, "F1").Return(nil, repo.ErrNotFound),
				deps.repo.EXPECT().CountActiveDevices(gomock.Any(), uid).Return(0, nil),
				deps.repo.EXPECT().CreateDevice(gomock.Any(), gomock.Any()).Return(uuid.Nil, repo.ErrAlreadyExists),
				deps.repo.EXPECT().GetDeviceByFingerprint(gomock.Any(), uid, "F1").Return(existing, nil),
				deps.repo.EXPECT().TouchDevice(gomock.Any(), existing.ID, testIP, testUA, testNow).Return(nil),
			)

			res, err := c.ValidateOrRegister(ctx, uid, "F1", meta)
			require.NoError(t, err)
			assert.True(t, res.Valid)
			assert.False(t, res.IsNew)
			assert.Equal(t, existing.ID, *res.DeviceID)
		},
	)

	t.Run(
		"StoreError", func(t *testing.T) {
			c, deps := newTestController(t, testConfig())
			deps.repo.EXPECT().GetDeviceByFingerprint(gomock.Any(), uid, "F1").Return(nil, testErr)

			res, err := c.ValidateOrRegister(ctx, uid, "F1", meta)
			assert.ErrorIs(t, err, testErr)
			assert.Nil(t, res)
		},
	)

	t.Run(
		"EventWriteFailureKeepsDecision", func(t *testing.T) {
			c, deps := newTestController(t, testConfig())

			deps.repo.EXPECT().GetDeviceByFingerprint(gomock.Any(), uid, "F6").Return(nil, repo.ErrNotFound)
			deps.repo.EXPECT().CountActiveDevices(gomock.Any(), uid).Return(7, nil)
			deps.repo.EXPECT().CreateSecurityEvent(gomock.Any(), gomock.Any()).Return(testErr)

			res, err := c.ValidateOrRegister(ctx, uid, "F6", meta)
			require.NoError(t, err)
			assert.False(t, res.Valid)
		},
	)
}

func TestController_BlockDevice(t *testing.T) {
	ctx := context.Background()
	dev := &md.Device{ID: uuid.New(), UserID: uuid.New(), Fingerprint: "F1", Status: md.DeviceActive}

	t.Run(
		"Success", func(t *testing.T) {
			c, deps := newTestController(t, testConfig())
			deps.repo.EXPECT().GetDevice(gomock.Any(), dev.ID).Return(dev, nil)
			deps.repo.EXPECT().SetDeviceStatus(gomock.Any(), dev.ID, md.DeviceBlocked).Return(nil)
			deps.repo.EXPECT().CreateSecurityEvent(gomock.Any(), eventOf(md.EventDeviceBlocked, md.SeverityMedium)).
				Return(nil)

			assert.NoError(t, c.BlockDevice(ctx, dev.ID))
		},
	)

	t.Run(
		"NotFound", func(t *testing.T) {
			c, deps := newTestController(t, testConfig())
			deps.repo.EXPECT().GetDevice(gomock.Any(), dev.ID).Return(nil, repo.ErrNotFound)

			assert.ErrorIs(t, c.BlockDevice(ctx, dev.ID), ErrNotFound)
		},
	)
}

func TestController_ListDevices(t *testing.T) {
	c, deps := newTestController(t, testConfig())
	uid := uuid.New()
	devices := []md.Device{{ID: uuid.New(), UserID: uid}, {ID: uuid.New(), UserID: uid}}

	deps.repo.EXPECT().ListDevices(gomock.Any(), uid).Return(devices, nil)

	res, err := c.ListDevices(context.Background(), uid)
	require.NoError(t, err)
	assert.Len(t, res, 2)
}
