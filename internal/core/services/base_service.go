package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/SscSPs/compta_maroc/internal/middleware"
	"github.com/SscSPs/compta_maroc/internal/platform/metrics"
)

// BaseService provides common functionality for all services
type BaseService struct {
	Metrics *metrics.Metrics
	Clock   func() time.Time
}

// ServiceOption is a functional option shared by every service constructor
type ServiceOption func(*BaseService)

// WithMetrics records computation and transition counters on m.
func WithMetrics(m *metrics.Metrics) ServiceOption {
	return func(s *BaseService) {
		s.Metrics = m
	}
}

// WithClock replaces time.Now, mostly for tests.
func WithClock(clock func() time.Time) ServiceOption {
	return func(s *BaseService) {
		s.Clock = clock
	}
}

func newBaseService(options ...ServiceOption) BaseService {
	base := BaseService{Clock: time.Now}
	for _, option := range options {
		option(&base)
	}
	return base
}

// Now returns the current time from the configured clock.
func (s *BaseService) Now() time.Time {
	if s.Clock == nil {
		return time.Now()
	}
	return s.Clock()
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	logger := middleware.GetLoggerFromCtx(ctx)
	if logger == nil {
		// Return a default logger if not found in context
		return slog.Default()
	}
	return logger
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+2)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	logger.Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	logger.Debug(msg, keyvals...)
}

// Record counts one engine call and logs it at debug level, or at warn level on error.
func (s *BaseService) Record(ctx context.Context, engine, operation string, err error) {
	s.Metrics.RecordComputation(engine, operation, err)
	if err != nil {
		s.GetLogger(ctx).Warn("Computation rejected",
			slog.String("engine", engine),
			slog.String("operation", operation),
			slog.String("error", err.Error()))
		return
	}
	s.LogDebug(ctx, "Computation completed",
		slog.String("engine", engine),
		slog.String("operation", operation))
}
