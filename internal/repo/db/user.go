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

func (r *Repository) GetUserByID(ctx context.Context, userID uuid.UUID) (*md.User, error) {
	const op = "users.GetUserByID.repo"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	return r.getUser(ctx, op, userGetByIDQ, userID)
}

func (r *Repository) GetUserByEmail(ctx context.Context, email string) (*md.User, error) {
	const op = "users.GetUserByEmail.repo"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	return r.getUser(ctx, op, userGetByEmailQ, email)
}

func (r *Repository) GetUserByPhone(ctx context.Context, phone string) (*md.User, error) {
	const op = "users.GetUserByPhone.repo"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	return r.getUser(ctx, op, userGetByPhoneQ, phone)
}

func (r *Repository) getUser(ctx context.Context, op, q string, arg any) (*md.User, error) {
	res := &md.User{}
	err := r.conn.GetContext(ctx, res, q, arg)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repo.ErrNotFound
		}
		opentracing.SpanFromContext(ctx).SetTag(config.ErrorSpanTag, true)
		zap.L().Error("failed to get user", zap.String("op", op), zap.Error(err))
		return nil, err
	}
	return res, nil
}

func (r *Repository) CreateUser(ctx context.Context, u *md.User) (uuid.UUID, error) {
	const op = "users.CreateUser.repo"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	var id uuid.UUID
	err := r.conn.QueryRowContext(
		ctx,
		userCreateQ,
		u.Name,
		u.Email,
		u.Phone,
		u.Password,
		u.IsActive,
		u.Tier,
		u.TrialEndsAt,
	).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return uuid.Nil, repo.ErrAlreadyExists
		}
		span.SetTag(config.ErrorSpanTag, true)
		zap.L().Error("failed to create user", zap.String("op", op), zap.Error(err))
		return uuid.Nil, err
	}

	return id, nil
}

func (r *Repository) DeleteUser(ctx context.Context, userID uuid.UUID) error {
	const op = "users.DeleteUser.repo"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	res, err := r.conn.ExecContext(ctx, userSoftDeleteQ, userID)
	if err != nil {
		span.SetTag(config.ErrorSpanTag, true)
		zap.L().Error("failed to delete user", zap.String("op", op), zap.Error(err))
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

// IncrementDailyRequests bumps the counter, resetting it when day is past the stored reset date.
func (r *Repository) IncrementDailyRequests(ctx context.Context, userID uuid.UUID, day time.Time) (int, error) {
	const op = "users.IncrementDailyRequests.repo"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	var count int
	err := r.conn.QueryRowContext(ctx, userIncrementRequestsQ, userID, day).Scan(&count)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, repo.ErrNotFound
		}
		span.SetTag(config.ErrorSpanTag, true)
		zap.L().Error("failed to increment requests", zap.String("op", op), zap.Error(err))
		return 0, err
	}

	return count, nil
}
