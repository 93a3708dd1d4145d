package daycount

import (
	"errors"
	"testing"
	"time"
)

func TestParseWeekday(t *testing.T) {
	for code := 0; code <= 6; code++ {
		got, err := ParseWeekday(code)
		if err != nil {
			t.Fatalf("ParseWeekday(%d) error = %v", code, err)
		}
		if int(got) != code {
			t.Errorf("ParseWeekday(%d) = %v", code, got)
		}
	}
	if got, _ := ParseWeekday(0); got != time.Sunday {
		t.Errorf("ParseWeekday(0) = %v, want Sunday", got)
	}

	for _, code := range []int{-1, 7, 42} {
		if _, err := ParseWeekday(code); !errors.Is(err, ErrInvalidWeekday) {
			t.Errorf("ParseWeekday(%d) error = %v, want ErrInvalidWeekday", code, err)
		}
	}
}

func TestWeekdaySet(t *testing.T) {
	tests := []struct {
		name    string
		set     WeekdaySet
		wantLen int
		full    bool
		str     string
	}{
		{"empty", NewWeekdaySet(), 0, false, ""},
		{"all", AllWeekdays(), 7, true, "Sun,Mon,Tue,Wed,Thu,Fri,Sat"},
		{"weekdays", NewWeekdaySet(time.Friday, time.Monday, time.Tuesday, time.Wednesday, time.Thursday), 5, false, "Mon,Tue,Wed,Thu,Fri"},
		{"duplicates", NewWeekdaySet(time.Sunday, time.Sunday), 1, false, "Sun"},
		{"out of range ignored", NewWeekdaySet(time.Weekday(7), time.Weekday(-1), time.Saturday), 1, false, "Sat"},
		{"built up to full", NewWeekdaySet(0, 1, 2, 3, 4, 5).With(time.Saturday), 7, true, "Sun,Mon,Tue,Wed,Thu,Fri,Sat"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.set.Len(); got != tt.wantLen {
				t.Errorf("Len() = %d, want %d", got, tt.wantLen)
			}
			if got := tt.set.Full(); got != tt.full {
				t.Errorf("Full() = %v, want %v", got, tt.full)
			}
			if got := tt.set.String(); got != tt.str {
				t.Errorf("String() = %q, want %q", got, tt.str)
			}
			if got := len(tt.set.Days()); got != tt.wantLen {
				t.Errorf("len(Days()) = %d, want %d", got, tt.wantLen)
			}
		})
	}
}

func TestWeekdaySetContains(t *testing.T) {
	s := NewWeekdaySet(time.Sunday, time.Wednesday)
	for d := time.Sunday; d <= time.Saturday; d++ {
		want := d == time.Sunday || d == time.Wednesday
		if got := s.Contains(d); got != want {
			t.Errorf("Contains(%v) = %v, want %v", d, got, want)
		}
	}
	if AllWeekdays().Contains(time.Weekday(7)) {
		t.Error("Contains(7) = true, want false")
	}
}
