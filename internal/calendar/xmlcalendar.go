package calendar

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
)

const (
	defaultHTTPTimeout = 10 * time.Second
	maxYearSpan        = 50
)

// XMLCalendarSource implements Source using xmlcalendar.ru style yearly
// JSON documents. Every day off that falls on Monday to Friday becomes an
// exact date pattern; weekends are left to the weekday set.
type XMLCalendarSource struct {
	httpClient *http.Client
	logger     *zap.Logger
	urlPattern string // contains {year}

	cacheMu sync.RWMutex
	cache   map[int][]string // year → patterns
}

// xmlCalendarYear represents xmlcalendar.ru JSON structure
type xmlCalendarYear struct {
	Year   int                `json:"year"`
	Months []xmlCalendarMonth `json:"months"`
}

type xmlCalendarMonth struct {
	Month int    `json:"month"`
	Days  string `json:"days"` // "1*,2,3+,4,8,9,..." where * = shortened, + = transferred
}

// NewXMLCalendarSource creates a new XMLCalendarSource instance
func NewXMLCalendarSource(urlPattern string, timeout time.Duration, logger *zap.Logger) *XMLCalendarSource {
	if timeout == 0 {
		timeout = defaultHTTPTimeout
	}

	return &XMLCalendarSource{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger:     logger,
		urlPattern: urlPattern,
		cache:      make(map[int][]string),
	}
}

// Patterns returns the holidays of every year between from and to.
func (c *XMLCalendarSource) Patterns(ctx context.Context, from, to time.Time) ([]string, error) {
	first, last := yearSpan(from, to)
	if last-first >= maxYearSpan {
		return nil, fmt.Errorf("refusing to download %d years of holidays", last-first+1)
	}

	var patterns []string
	for year := first; year <= last; year++ {
		yearPatterns, err := c.yearPatterns(ctx, year)
		if err != nil {
			return nil, err
		}
		patterns = append(patterns, yearPatterns...)
	}
	return patterns, nil
}

func (c *XMLCalendarSource) yearPatterns(ctx context.Context, year int) ([]string, error) {
	c.cacheMu.RLock()
	cached, ok := c.cache[year]
	c.cacheMu.RUnlock()
	if ok {
		c.logger.Debug("Using cached holidays", zap.Int("year", year))
		return cached, nil
	}

	yearData, err := c.downloadYear(ctx, year)
	if err != nil {
		return nil, fmt.Errorf("failed to download holidays for %d: %w", year, err)
	}

	patterns := c.parseYear(year, yearData)

	c.cacheMu.Lock()
	c.cache[year] = patterns
	c.cacheMu.Unlock()

	return patterns, nil
}

// downloadYear downloads entire year from xmlcalendar.ru
func (c *XMLCalendarSource) downloadYear(ctx context.Context, year int) (*xmlCalendarYear, error) {
	url := strings.ReplaceAll(c.urlPattern, "{year}", strconv.Itoa(year))

	c.logger.Info("Downloading holiday calendar",
		zap.String("url", url),
		zap.Int("year", year))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch holiday data: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("holiday API returned status %d", resp.StatusCode)
	}

	var yearData xmlCalendarYear
	if err := json.NewDecoder(resp.Body).Decode(&yearData); err != nil {
		return nil, fmt.Errorf("failed to parse holiday JSON: %w", err)
	}

	c.logger.Info("Holiday calendar downloaded",
		zap.Int("year", year),
		zap.Int("months", len(yearData.Months)))

	return &yearData, nil
}

// parseYear parses the compact xmlcalendar format of each month.
// Format: "1*,2,3+,4,8,9,15,16,22,23,29,30"
// * = shortened working day, + = transferred day off, others = days off
func (c *XMLCalendarSource) parseYear(year int, yearData *xmlCalendarYear) []string {
	var patterns []string
	for _, m := range yearData.Months {
		if m.Month < 1 || m.Month > 12 {
			c.logger.Warn("Skipping invalid month", zap.Int("year", year), zap.Int("month", m.Month))
			continue
		}
		month := time.Month(m.Month)
		daysInMonth := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()

		for _, part := range strings.Split(m.Days, ",") {
			part = strings.TrimSpace(part)
			if part == "" || strings.HasSuffix(part, "*") {
				continue
			}
			dayStr := strings.TrimSuffix(part, "+")

			day, err := strconv.Atoi(dayStr)
			if err != nil || day < 1 || day > daysInMonth {
				c.logger.Warn("Failed to parse day number",
					zap.Int("year", year),
					zap.Int("month", m.Month),
					zap.String("part", part))
				continue
			}

			date := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
			if date.Weekday() == time.Saturday || date.Weekday() == time.Sunday {
				continue
			}
			patterns = append(patterns, date.Format("2006-01-02"))
		}
	}
	sort.Strings(patterns)
	return patterns
}

// ClearCache clears the cache
func (c *XMLCalendarSource) ClearCache() {
	c.cacheMu.Lock()
	defer c.cacheMu.Unlock()

	c.cache = make(map[int][]string)
	c.logger.Info("Holiday cache cleared")
}
