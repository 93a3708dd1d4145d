package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/username/day-counter/internal/request"
	"github.com/username/day-counter/pkg/dateutil"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type span struct {
	start time.Time
	end   time.Time
}

// benchSpans mirrors the historical perf harness: span i starts offset-i
// days before today and lasts i%30 days.
func benchSpans(today time.Time, iterations, offset int) []span {
	spans := make([]span, iterations)
	for i := range spans {
		start := today.AddDate(0, 0, -offset+i)
		spans[i] = span{start: start, end: start.AddDate(0, 0, i%30)}
	}
	return spans
}

// benchRange returns the earliest start and the latest end over all spans.
// Span ends are not monotonic in i.
func benchRange(spans []span) (time.Time, time.Time) {
	first, last := spans[0].start, spans[0].end
	for _, s := range spans[1:] {
		if s.start.Before(first) {
			first = s.start
		}
		if s.end.After(last) {
			last = s.end
		}
	}
	return first, last
}

func benchCmd() *cobra.Command {
	var (
		iterations   int
		offset       int
		weekdays     string
		workers      int
		withHolidays bool
	)

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Time repeated counts over generated date spans",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if iterations <= 0 {
				return fmt.Errorf("%w: --iterations must be positive", request.ErrUsage)
			}
			if workers <= 0 {
				return fmt.Errorf("%w: --workers must be positive", request.ErrUsage)
			}

			days, err := request.ParseWeekdays(weekdays)
			if err != nil {
				return err
			}

			spans := benchSpans(dateutil.Today(), iterations, offset)
			first, last := benchRange(spans)

			counter, err := buildCounter(cmd, days, cfg.Counter.Exclusions, withHolidays, first, last)
			if err != nil {
				return err
			}

			logger.Info("Starting benchmark",
				zap.Int("iterations", iterations),
				zap.Int("workers", workers),
				zap.Bool("fast_path", counter.FastPath()))

			results := make([]int, len(spans))
			began := time.Now()

			g, ctx := errgroup.WithContext(cmd.Context())
			g.SetLimit(workers)
			for i := range spans {
				g.Go(func() error {
					if err := ctx.Err(); err != nil {
						return err
					}
					results[i] = counter.Count(spans[i].start, spans[i].end)
					return nil
				})
			}
			if err := g.Wait(); err != nil {
				return fmt.Errorf("benchmark interrupted: %w", err)
			}

			elapsed := time.Since(began)
			total := 0
			for _, r := range results {
				total += r
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Total execution time for %d iterations: %f seconds\n", iterations, elapsed.Seconds())
			fmt.Fprintf(out, "Sum of counts: %d\n", total)
			return nil
		},
	}

	cmd.Flags().IntVar(&iterations, "iterations", 2000, "Number of spans to count")
	cmd.Flags().IntVar(&offset, "offset", 6000, "Days before today where the first span starts")
	cmd.Flags().StringVar(&weekdays, "weekdays", "1,2,3,4,5", "Allowed weekdays (0 = Sunday)")
	cmd.Flags().IntVar(&workers, "workers", 1, "Concurrent workers")
	cmd.Flags().BoolVar(&withHolidays, "holidays", false, "Also exclude days from the configured holiday source")

	return cmd
}
