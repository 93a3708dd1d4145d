package calendar

import (
	"context"
	"fmt"
	"time"

	"github.com/username/day-counter/internal/config"
	"github.com/username/day-counter/pkg/dateutil"
	"go.uber.org/zap"
)

// Source supplies exclusion patterns (YYYY-MM-DD or *-MM-DD) from
// somewhere other than the command line, typically a holiday calendar.
type Source interface {
	// Patterns returns the patterns relevant to the calendar years of the
	// days in [from, to). Reversed bounds are accepted.
	Patterns(ctx context.Context, from, to time.Time) ([]string, error)
}

// Empty is a Source without any patterns.
type Empty struct{}

func (Empty) Patterns(context.Context, time.Time, time.Time) ([]string, error) {
	return nil, nil
}

// NewSource builds the Source selected by the holidays configuration
func NewSource(cfg config.HolidaysConfig, logger *zap.Logger) (Source, error) {
	switch cfg.GetType() {
	case config.HolidaysNone:
		return Empty{}, nil

	case config.HolidaysFile:
		logger.Debug("Using holiday file", zap.String("file", cfg.File))
		return NewFileSource(cfg.File, logger), nil

	case config.HolidaysXMLCalendar:
		logger.Debug("Using xmlcalendar holidays", zap.String("url", cfg.URL))
		return NewXMLCalendarSource(cfg.URL, cfg.GetTimeout(), logger), nil

	case config.HolidaysComposite:
		logger.Debug("Using xmlcalendar holidays with file fallback",
			zap.String("url", cfg.URL),
			zap.String("file", cfg.File))
		primary := NewXMLCalendarSource(cfg.URL, cfg.GetTimeout(), logger)
		fallback := NewFileSource(cfg.File, logger)
		return NewCompositeSource(primary, fallback, logger), nil

	default:
		return nil, fmt.Errorf("unknown holidays type: %s", cfg.Type)
	}
}

// yearSpan returns the first and last calendar year of the days in
// [from, to). The end date itself is never counted, so a span ending on
// January 1 stays in the previous year. Reversed bounds are swapped.
func yearSpan(from, to time.Time) (int, int) {
	first, last := dateutil.UTCDate(from), dateutil.UTCDate(to)
	if last.After(first) {
		last = last.AddDate(0, 0, -1)
	}
	if first.After(last) {
		first, last = last, first
	}
	return first.Year(), last.Year()
}
