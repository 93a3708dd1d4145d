package daycount

import (
	"errors"
	"testing"
	"time"
)

func TestParsePattern(t *testing.T) {
	tests := []struct {
		input   string
		want    Pattern
		wantErr bool
	}{
		{"2020-01-07", Exact(2020, time.January, 7), false},
		{"1999-12-31", Exact(1999, time.December, 31), false},
		{"2024-02-29", Exact(2024, time.February, 29), false},
		{"*-01-07", Yearly(time.January, 7), false},
		{"*-02-29", Yearly(time.February, 29), false},
		{"*-12-31", Yearly(time.December, 31), false},

		{"2023-02-29", Pattern{}, true},
		{"2020-13-01", Pattern{}, true},
		{"2020-00-10", Pattern{}, true},
		{"2020-04-31", Pattern{}, true},
		{"2020-01-00", Pattern{}, true},
		{"*-02-30", Pattern{}, true},
		{"*-1-7", Pattern{}, true},
		{"2020-1-7", Pattern{}, true},
		{"2020/01/07", Pattern{}, true},
		{"+020-01-07", Pattern{}, true},
		{"*-01-07 ", Pattern{}, true},
		{"?-01-07", Pattern{}, true},
		{"", Pattern{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParsePattern(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParsePattern(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, ErrMalformedPattern) {
					t.Errorf("ParsePattern(%q) error = %v, want ErrMalformedPattern", tt.input, err)
				}
				return
			}
			if got != tt.want {
				t.Errorf("ParsePattern(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
			if got.String() != tt.input {
				t.Errorf("ParsePattern(%q).String() = %q", tt.input, got.String())
			}
		})
	}
}

func TestPatternMatches(t *testing.T) {
	jan7 := time.Date(2020, 1, 7, 15, 0, 0, 0, time.UTC)
	jan7NextYear := time.Date(2021, 1, 7, 0, 0, 0, 0, time.UTC)
	jan8 := time.Date(2020, 1, 8, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		pattern Pattern
		date    time.Time
		want    bool
	}{
		{"exact same day", Exact(2020, time.January, 7), jan7, true},
		{"exact other year", Exact(2020, time.January, 7), jan7NextYear, false},
		{"exact other day", Exact(2020, time.January, 7), jan8, false},
		{"yearly same day", Yearly(time.January, 7), jan7, true},
		{"yearly other year", Yearly(time.January, 7), jan7NextYear, true},
		{"yearly other day", Yearly(time.January, 7), jan8, false},
		{"zero pattern", Pattern{}, jan7, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.pattern.Matches(tt.date); got != tt.want {
				t.Errorf("%v.Matches(%v) = %v, want %v", tt.pattern, tt.date, got, tt.want)
			}
		})
	}
}
