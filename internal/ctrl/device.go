package ctrl

import (
	"context"
	"errors"
	"time"

	"github.com/JMURv/trust-bridge/internal/auth"
	"github.com/JMURv/trust-bridge/internal/config"
	"github.com/JMURv/trust-bridge/internal/dto"
	md "github.com/JMURv/trust-bridge/internal/models"
	"github.com/JMURv/trust-bridge/internal/repo"
	"github.com/google/uuid"
	"github.com/opentracing/opentracing-go"
)

const (
	ReasonDeviceBlocked       = "Device is blocked"
	ReasonDeviceLimitExceeded = "Device limit exceeded"
	ReasonDeviceNotRegistered = "Device not registered"
)

type deviceCtrl interface {
	ValidateOrRegister(
		ctx context.Context,
		uid uuid.UUID,
		fingerprint string,
		d *dto.DeviceRequest,
	) (*dto.DeviceValidation, error)
	ListDevices(ctx context.Context, uid uuid.UUID) ([]md.Device, error)
	BlockDevice(ctx context.Context, deviceID uuid.UUID) error
}

type deviceRepo interface {
	ListDevices(ctx context.Context, userID uuid.UUID) ([]md.Device, error)
	GetDevice(ctx context.Context, deviceID uuid.UUID) (*md.Device, error)
	GetDeviceByFingerprint(ctx context.Context, userID uuid.UUID, fp string) (*md.Device, error)
	CountActiveDevices(ctx context.Context, userID uuid.UUID) (int, error)
	CreateDevice(ctx context.Context, d *md.Device) (uuid.UUID, error)
	TouchDevice(ctx context.Context, deviceID uuid.UUID, ip, ua string, at time.Time) error
	SetDeviceStatus(ctx context.Context, deviceID uuid.UUID, status md.DeviceStatus) error
}

// ValidateOrRegister decides whether fingerprint may act for uid, registering
// it on first sight while the user is under the device cap.
// Two concurrent first sightings may both pass the cap check; the cap can then
// be exceeded by the number of racing requests.
func (c *Controller) ValidateOrRegister(
	ctx context.Context,
	uid uuid.UUID,
	fingerprint string,
	d *dto.DeviceRequest,
) (*dto.DeviceValidation, error) {
	const op = "devices.ValidateOrRegister.ctrl"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	now := c.now().UTC()
	dev, err := c.repo.GetDeviceByFingerprint(ctx, uid, fingerprint)
	if err == nil {
		return c.knownDevice(ctx, dev, d, now)
	}
	if !errors.Is(err, repo.ErrNotFound) {
		span.SetTag(config.ErrorSpanTag, true)
		return nil, err
	}

	count, err := c.repo.CountActiveDevices(ctx, uid)
	if err != nil {
		span.SetTag(config.ErrorSpanTag, true)
		return nil, err
	}

	if count >= c.conf.Extension.MaxDevices {
		c.recordEvent(ctx, &md.SecurityEvent{
			Type:     md.EventDeviceLimitExceeded,
			Severity: md.SeverityHigh,
			UserID:   &uid,
			IP:       d.IP,
			UA:       d.UA,
			Endpoint: d.Endpoint,
			Details: md.Details{
				"fingerprint": fingerprint,
				"devices":     count,
				"max":         c.conf.Extension.MaxDevices,
			},
		})
		return &dto.DeviceValidation{Valid: false, Reason: ReasonDeviceLimitExceeded}, nil
	}

	if !c.conf.Extension.AutoRegisterDevices {
		c.recordEvent(ctx, &md.SecurityEvent{
			Type:     md.EventDeviceRegistrationOff,
			Severity: md.SeverityMedium,
			UserID:   &uid,
			IP:       d.IP,
			UA:       d.UA,
			Endpoint: d.Endpoint,
			Details:  md.Details{"fingerprint": fingerprint},
		})
		return &dto.DeviceValidation{Valid: false, Reason: ReasonDeviceNotRegistered}, nil
	}

	dev = &md.Device{
		UserID:         uid,
		Fingerprint:    fingerprint,
		Status:         md.DeviceActive,
		DeviceType:     auth.DeviceType(d.UA),
		UA:             d.UA,
		IP:             d.IP,
		AutoRegistered: true,
		FirstSeen:      now,
		LastSeen:       now,
	}
	id, err := c.repo.CreateDevice(ctx, dev)
	if errors.Is(err, repo.ErrAlreadyExists) {
		// A concurrent request registered the same fingerprint first.
		existing, err := c.repo.GetDeviceByFingerprint(ctx, uid, fingerprint)
		if err != nil {
			span.SetTag(config.ErrorSpanTag, true)
			return nil, err
		}
		return c.knownDevice(ctx, existing, d, now)
	}
	if err != nil {
		span.SetTag(config.ErrorSpanTag, true)
		return nil, err
	}
	dev.ID = id

	c.recordEvent(ctx, &md.SecurityEvent{
		Type:     md.EventDeviceAutoRegistered,
		Severity: md.SeverityLow,
		UserID:   &uid,
		IP:       d.IP,
		UA:       d.UA,
		Endpoint: d.Endpoint,
		Details:  md.Details{"deviceId": id.String(), "deviceType": dev.DeviceType},
	})

	return &dto.DeviceValidation{Valid: true, DeviceID: &dev.ID, IsNew: true, Device: dev}, nil
}

func (c *Controller) knownDevice(
	ctx context.Context,
	dev *md.Device,
	d *dto.DeviceRequest,
	now time.Time,
) (*dto.DeviceValidation, error) {
	if dev.Status == md.DeviceBlocked {
		c.recordEvent(ctx, &md.SecurityEvent{
			Type:     md.EventBlockedDeviceAttempt,
			Severity: md.SeverityMedium,
			UserID:   &dev.UserID,
			IP:       d.IP,
			UA:       d.UA,
			Endpoint: d.Endpoint,
			Details:  md.Details{"deviceId": dev.ID.String()},
		})
		return &dto.DeviceValidation{Valid: false, DeviceID: &dev.ID, Reason: ReasonDeviceBlocked}, nil
	}

	if err := c.repo.TouchDevice(ctx, dev.ID, d.IP, d.UA, now); err != nil {
		return nil, err
	}
	dev.LastSeen, dev.IP, dev.UA = now, d.IP, d.UA

	return &dto.DeviceValidation{Valid: true, DeviceID: &dev.ID, Device: dev}, nil
}

func (c *Controller) ListDevices(ctx context.Context, uid uuid.UUID) ([]md.Device, error) {
	const op = "devices.ListDevices.ctrl"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	res, err := c.repo.ListDevices(ctx, uid)
	if err != nil {
		span.SetTag(config.ErrorSpanTag, true)
		return nil, err
	}
	return res, nil
}

func (c *Controller) BlockDevice(ctx context.Context, deviceID uuid.UUID) error {
	const op = "devices.BlockDevice.ctrl"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	dev, err := c.repo.GetDevice(ctx, deviceID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrNotFound
		}
		span.SetTag(config.ErrorSpanTag, true)
		return err
	}

	if err = c.repo.SetDeviceStatus(ctx, deviceID, md.DeviceBlocked); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrNotFound
		}
		span.SetTag(config.ErrorSpanTag, true)
		return err
	}

	c.recordEvent(ctx, &md.SecurityEvent{
		Type:     md.EventDeviceBlocked,
		Severity: md.SeverityMedium,
		UserID:   &dev.UserID,
		IP:       dev.IP,
		UA:       dev.UA,
		Details:  md.Details{"deviceId": deviceID.String(), "fingerprint": dev.Fingerprint},
	})
	return nil
}
