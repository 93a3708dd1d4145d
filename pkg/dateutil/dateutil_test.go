package dateutil

import (
	"testing"
	"time"
)

func TestStartOfDay(t *testing.T) {
	input := time.Date(2025, 1, 15, 14, 30, 45, 123456789, time.UTC)
	expected := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)

	result := StartOfDay(input)

	if !result.Equal(expected) {
		t.Errorf("StartOfDay(%v) = %v, want %v", input, result, expected)
	}
}

func TestUTCDate(t *testing.T) {
	plusThree := time.FixedZone("UTC+3", 3*60*60)
	minusFive := time.FixedZone("UTC-5", -5*60*60)

	tests := []struct {
		name     string
		input    time.Time
		expected time.Time
	}{
		{
			name:     "UTC afternoon truncates to midnight",
			input:    time.Date(2020, 1, 6, 15, 4, 5, 0, time.UTC),
			expected: time.Date(2020, 1, 6, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "early morning east of UTC is previous UTC day",
			input:    time.Date(2020, 1, 6, 1, 0, 0, 0, plusThree),
			expected: time.Date(2020, 1, 5, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "late evening west of UTC is next UTC day",
			input:    time.Date(2020, 1, 6, 22, 0, 0, 0, minusFive),
			expected: time.Date(2020, 1, 7, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := UTCDate(tt.input)

			if !result.Equal(tt.expected) || result.Location() != time.UTC {
				t.Errorf("UTCDate(%v) = %v, want %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestFormatDate(t *testing.T) {
	input := time.Date(2020, 1, 7, 23, 59, 0, 0, time.UTC)
	if got := FormatDate(input); got != "2020-01-07" {
		t.Errorf("FormatDate(%v) = %v, want 2020-01-07", input, got)
	}
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr bool
	}{
		{
			"ISO format YYYY-MM-DD",
			"2025-01-15",
			time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
			false,
		},
		{
			"first representable date",
			"0001-01-01",
			time.Date(1, 1, 1, 0, 0, 0, 0, time.UTC),
			false,
		},
		{"Russian format DD.MM.YYYY", "15.01.2025", time.Time{}, true},
		{"time of day", "2025-01-15T10:30:00", time.Time{}, true},
		{"offset would shift the UTC date", "2020-01-07T01:00:00+0300", time.Time{}, true},
		{"unpadded month", "2025-1-15", time.Time{}, true},
		{"Invalid month", "2025-13-01", time.Time{}, true},
		{"Not a date", "tomorrow", time.Time{}, true},
		{"Empty", "", time.Time{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ParseDate(tt.input)

			if (err != nil) != tt.wantErr {
				t.Errorf("ParseDate(%v) error = %v, wantErr %v", tt.input, err, tt.wantErr)
				return
			}

			if !tt.wantErr && (!result.Equal(tt.want) || result.Location() != time.UTC) {
				t.Errorf("ParseDate(%v) = %v, want %v", tt.input, result, tt.want)
			}
		})
	}
}

func TestToday(t *testing.T) {
	today := Today()
	if today.Location() != time.UTC {
		t.Errorf("Today() location = %v, want UTC", today.Location())
	}
	if today.Hour() != 0 || today.Minute() != 0 || today.Second() != 0 || today.Nanosecond() != 0 {
		t.Errorf("Today() = %v, want midnight", today)
	}
}
