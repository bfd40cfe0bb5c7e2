package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/SscSPs/finsight/internal/apperrors"
	"github.com/SscSPs/finsight/internal/middleware"
)

// BaseService provides common functionality for all services
type BaseService struct {
	// Location is the timezone month boundaries are computed in. Nil means UTC.
	Location *time.Location
	// Now returns the current time. Nil means time.Now.
	Now func() time.Time
}

// ServiceOption is a functional option applied to the BaseService of any service.
type ServiceOption func(*BaseService)

// WithLocation sets the timezone used for month boundaries and default periods.
func WithLocation(loc *time.Location) ServiceOption {
	return func(s *BaseService) {
		s.Location = loc
	}
}

// WithClock overrides the clock used for default periods and audit timestamps.
func WithClock(now func() time.Time) ServiceOption {
	return func(s *BaseService) {
		s.Now = now
	}
}

func (s *BaseService) apply(options []ServiceOption) {
	for _, option := range options {
		option(s)
	}
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(ctx)
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	args := make([]any, 0, len(keyvals)+1)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	s.GetLogger(ctx).Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}

func (s *BaseService) location() *time.Location {
	if s.Location == nil {
		return time.UTC
	}
	return s.Location
}

// now returns the current time in the service location.
func (s *BaseService) now() time.Time {
	if s.Now == nil {
		return time.Now().In(s.location())
	}
	return s.Now().In(s.location())
}

// storeError passes domain errors from a repository through untouched and
// marks everything else as an upstream failure.
func (s *BaseService) storeError(op string, err error) error {
	if errors.Is(err, apperrors.ErrNotFound) ||
		errors.Is(err, apperrors.ErrDuplicate) ||
		errors.Is(err, apperrors.ErrValidation) {
		return err
	}
	return apperrors.Upstream(op, err)
}

// logStoreError logs err unless it is an expected not-found outcome.
func (s *BaseService) logStoreError(ctx context.Context, err error, msg string, keyvals ...any) {
	if errors.Is(err, apperrors.ErrNotFound) {
		return
	}
	s.LogError(ctx, err, msg, keyvals...)
}
