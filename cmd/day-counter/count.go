package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/username/day-counter/internal/calendar"
	"github.com/username/day-counter/internal/daycount"
	"github.com/username/day-counter/internal/request"
	"go.uber.org/zap"
)

func countCmd() *cobra.Command {
	var withHolidays bool

	cmd := &cobra.Command{
		Use:   "count " + request.Usage,
		Short: "Count allowed days in [start_date, end_date)",
		Example: "  day-counter count 2020-01-06 2020-01-13 1,2,3,4,5 2020-01-08,*-01-07\n" +
			"  day-counter count 2023-04-01 2023-04-15",
		Args: cobra.RangeArgs(2, 4),
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := request.Parse(args, request.Defaults{
				Weekdays:   cfg.Counter.Weekdays,
				Exclusions: cfg.Counter.Exclusions,
			})
			if err != nil {
				return err
			}

			counter, err := buildCounter(cmd, req.Weekdays, req.Exclusions, withHolidays, req.Start, req.End)
			if err != nil {
				return err
			}

			difference := counter.Count(req.Start, req.End)
			logger.Debug("Counted allowed days",
				zap.Time("start", req.Start),
				zap.Time("end", req.End),
				zap.Bool("fast_path", counter.FastPath()),
				zap.Int("difference", difference))

			fmt.Fprintf(cmd.OutOrStdout(), "Difference: %d\n", difference)
			return nil
		},
	}

	cmd.Flags().BoolVar(&withHolidays, "holidays", false, "Also exclude days from the configured holiday source")

	return cmd
}

// buildCounter assembles the weekday set and exclusions shared by the
// count and bench commands.
func buildCounter(cmd *cobra.Command, weekdays []int, patterns []string, withHolidays bool, from, to time.Time) (*daycount.Counter, error) {
	req := request.Request{Start: from, End: to, Weekdays: weekdays, Exclusions: patterns}
	allowed, err := req.WeekdaySet()
	if err != nil {
		return nil, err
	}

	exclusions := daycount.NewExclusions(patterns...)

	if withHolidays {
		source, err := calendar.NewSource(cfg.Holidays, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to create holiday source: %w", err)
		}
		holidays, err := source.Patterns(cmd.Context(), from, to)
		if err != nil {
			return nil, fmt.Errorf("failed to load holidays: %w", err)
		}
		for _, p := range holidays {
			exclusions.Add(p)
		}
		logger.Debug("Holidays added to exclusions",
			zap.String("type", cfg.Holidays.GetType()),
			zap.Int("holidays", len(holidays)))
	}

	if malformed := exclusions.Malformed(); len(malformed) > 0 {
		logger.Warn("Exclusions that never match any date",
			zap.Strings("exclusions", malformed))
	}

	logger.Debug("Counter configured",
		zap.String("weekdays", allowed.String()),
		zap.Int("exclusions", exclusions.Len()))

	return daycount.NewCounter(allowed, exclusions), nil
}
