package calendar

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// CompositeSource implements Source with fallback strategy
// Primary: usually XMLCalendarSource (API)
// Fallback: usually FileSource (local file)
type CompositeSource struct {
	primary  Source
	fallback Source
	logger   *zap.Logger
}

// NewCompositeSource creates a new CompositeSource
func NewCompositeSource(primary, fallback Source, logger *zap.Logger) *CompositeSource {
	return &CompositeSource{
		primary:  primary,
		fallback: fallback,
		logger:   logger,
	}
}

// Patterns asks the primary source and falls back on error.
func (cs *CompositeSource) Patterns(ctx context.Context, from, to time.Time) ([]string, error) {
	patterns, err := cs.primary.Patterns(ctx, from, to)
	if err == nil {
		return patterns, nil
	}

	cs.logger.Warn("Primary holiday source failed, falling back",
		zap.Time("from", from),
		zap.Time("to", to),
		zap.Error(err))

	return cs.fallback.Patterns(ctx, from, to)
}
