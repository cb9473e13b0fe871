// Package app contains application services that orchestrate use cases.
// This is the application layer in Clean Architecture - it coordinates
// domain logic and infrastructure through ports.
package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jsamuelsen/anglecalc/internal/domain"
	"github.com/jsamuelsen/anglecalc/internal/platform/logging"
	"github.com/jsamuelsen/anglecalc/internal/ports"
)

// DefaultAngleCount is the number of angles a session reads when no count is configured.
const DefaultAngleCount = 2

// AngleService reads raw angles from an input port, builds domain angles
// from them and hands them to an output port.
// It depends on port interfaces, not concrete implementations,
// following the Dependency Inversion Principle.
type AngleService struct {
	input  ports.AngleInput
	output ports.AngleOutput
	count  int
	logger *slog.Logger
}

// AngleServiceConfig contains configuration for the angle service.
type AngleServiceConfig struct {
	Input  ports.AngleInput
	Output ports.AngleOutput
	Logger *slog.Logger

	// Count is the number of angles per session. Values below 1 mean DefaultAngleCount.
	Count int
}

// NewAngleService creates a new angle service with the provided dependencies.
// It panics if Input or Output is nil.
func NewAngleService(cfg AngleServiceConfig) *AngleService {
	if cfg.Input == nil {
		panic("app: AngleServiceConfig.Input is required")
	}

	if cfg.Output == nil {
		panic("app: AngleServiceConfig.Output is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	count := cfg.Count
	if count < 1 {
		count = DefaultAngleCount
	}

	return &AngleService{
		input:  cfg.Input,
		output: cfg.Output,
		count:  count,
		logger: logger.With(slog.String("component", "app.AngleService")),
	}
}

// Count returns the number of angles read per session.
func (s *AngleService) Count() int {
	return s.count
}

// ReadAngles reads and constructs the session's angles in order.
// It stops at the first request that cannot be read or is out of range.
func (s *AngleService) ReadAngles(ctx context.Context) ([]domain.Angle, error) {
	logger := s.loggerFrom(ctx)
	angles := make([]domain.Angle, 0, s.count)

	for ordinal := 1; ordinal <= s.count; ordinal++ {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("reading angle %d: %w", ordinal, err)
		}

		angle, err := s.readAngle(ctx, ordinal)
		if err != nil {
			logger.ErrorContext(ctx, "failed to read angle",
				slog.Int("ordinal", ordinal),
				slog.Any("error", err),
			)
			return nil, fmt.Errorf("reading angle %d: %w", ordinal, err)
		}

		logger.DebugContext(ctx, "angle constructed",
			slog.Int("ordinal", ordinal),
			slog.Any("angle", angle),
		)

		angles = append(angles, angle)
	}

	return angles, nil
}

// Run reads the session's angles and writes each of them to the output port.
func (s *AngleService) Run(ctx context.Context) error {
	angles, err := s.ReadAngles(ctx)
	if err != nil {
		return err
	}

	for i, angle := range angles {
		if err := s.output.WriteAngle(ctx, i+1, angle); err != nil {
			return fmt.Errorf("writing angle %d: %w", i+1, err)
		}
	}

	s.loggerFrom(ctx).InfoContext(ctx, "angles printed", slog.Int("count", len(angles)))

	return nil
}

func (s *AngleService) readAngle(ctx context.Context, ordinal int) (domain.Angle, error) {
	req, err := s.input.ReadAngle(ctx, ordinal)
	if err != nil {
		return domain.Angle{}, err
	}

	angle, err := domain.New(req.Value, req.Unit)
	if err != nil {
		return domain.Angle{}, fmt.Errorf("building angle from %v %s: %w", req.Value, req.Unit, err)
	}

	return angle, nil
}

// loggerFrom prefers a request-scoped logger carried in ctx.
func (s *AngleService) loggerFrom(ctx context.Context) *slog.Logger {
	if logger, ok := logging.LoggerFromContext(ctx); ok {
		return logger.With(slog.String("component", "app.AngleService"))
	}

	return s.logger
}
