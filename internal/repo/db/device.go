package db

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/JMURv/trust-bridge/internal/config"
	md "github.com/JMURv/trust-bridge/internal/models"
	"github.com/JMURv/trust-bridge/internal/repo"
	"github.com/google/uuid"
	"github.com/opentracing/opentracing-go"
	"go.uber.org/zap"
)

func (r *Repository) ListDevices(ctx context.Context, userID uuid.UUID) ([]md.Device, error) {
	const op = "devices.ListDevices.repo"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	res := make([]md.Device, 0)
	if err := r.conn.SelectContext(ctx, &res, listDevices, userID); err != nil {
		span.SetTag(config.ErrorSpanTag, true)
		zap.L().Error("failed to list devices", zap.String("op", op), zap.Error(err))
		return nil, err
	}

	return res, nil
}

func (r *Repository) GetDevice(ctx context.Context, deviceID uuid.UUID) (*md.Device, error) {
	const op = "devices.GetDevice.repo"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	return r.getDevice(ctx, op, getDeviceByID, deviceID)
}

func (r *Repository) GetDeviceByFingerprint(ctx context.Context, userID uuid.UUID, fp string) (*md.Device, error) {
	const op = "devices.GetDeviceByFingerprint.repo"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	return r.getDevice(ctx, op, getDeviceByFingerprint, userID, fp)
}

func (r *Repository) getDevice(ctx context.Context, op, q string, args ...any) (*md.Device, error) {
	res := &md.Device{}
	if err := r.conn.GetContext(ctx, res, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repo.ErrNotFound
		}
		opentracing.SpanFromContext(ctx).SetTag(config.ErrorSpanTag, true)
		zap.L().Error("failed to get device", zap.String("op", op), zap.Error(err))
		return nil, err
	}
	return res, nil
}

func (r *Repository) CountActiveDevices(ctx context.Context, userID uuid.UUID) (int, error) {
	const op = "devices.CountActiveDevices.repo"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	var count int
	if err := r.conn.GetContext(ctx, &count, countActiveDevices, userID); err != nil {
		span.SetTag(config.ErrorSpanTag, true)
		zap.L().Error("failed to count devices", zap.String("op", op), zap.Error(err))
		return 0, err
	}

	return count, nil
}

func (r *Repository) CreateDevice(ctx context.Context, d *md.Device) (uuid.UUID, error) {
	const op = "devices.CreateDevice.repo"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	var id uuid.UUID
	err := r.conn.QueryRowContext(
		ctx,
		createDevice,
		d.UserID,
		d.Fingerprint,
		d.Status,
		d.DeviceType,
		d.UA,
		d.IP,
		d.AutoRegistered,
		d.FirstSeen,
	).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return uuid.Nil, repo.ErrAlreadyExists
		}
		span.SetTag(config.ErrorSpanTag, true)
		zap.L().Error("failed to create device", zap.String("op", op), zap.Error(err))
		return uuid.Nil, err
	}

	return id, nil
}

func (r *Repository) TouchDevice(ctx context.Context, deviceID uuid.UUID, ip, ua string, at time.Time) error {
	const op = "devices.TouchDevice.repo"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	if _, err := r.conn.ExecContext(ctx, touchDevice, deviceID, at, ip, ua); err != nil {
		span.SetTag(config.ErrorSpanTag, true)
		zap.L().Error("failed to touch device", zap.String("op", op), zap.Error(err))
		return err
	}

	return nil
}

func (r *Repository) SetDeviceStatus(ctx context.Context, deviceID uuid.UUID, status md.DeviceStatus) error {
	const op = "devices.SetDeviceStatus.repo"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	res, err := r.conn.ExecContext(ctx, setDeviceStatus, deviceID, status)
	if err != nil {
		span.SetTag(config.ErrorSpanTag, true)
		zap.L().Error("failed to set device status", zap.String("op", op), zap.Error(err))
		return err
	}

	aff, err := res.RowsAffected()
	if err != nil {
		return err
	}

	if aff == 0 {
		return repo.ErrNotFound
	}

	return nil
}
