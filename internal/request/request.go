// Package request turns command line arguments into a validated day count
// request.
package request

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/username/day-counter/internal/daycount"
	"github.com/username/day-counter/pkg/dateutil"
)

// Usage is the positional argument synopsis.
const Usage = "<start_date> <end_date> [allowed_days_of_the_week] [excluded_dates]"

// ErrUsage marks malformed command line input.
var ErrUsage = errors.New("invalid arguments")

// Request is a parsed and validated count request.
type Request struct {
	Start      time.Time
	End        time.Time
	Weekdays   []int    `validate:"required,min=1,dive,min=0,max=6"`
	Exclusions []string `validate:"dive,required"`
}

// Defaults fill in omitted optional arguments.
type Defaults struct {
	Weekdays   []int
	Exclusions []string
}

var validate = validator.New()

// Parse parses `start end [weekdays] [exclusions]`. Dates become midnight
// UTC, weekdays and exclusions are comma separated lists.
func Parse(args []string, defaults Defaults) (*Request, error) {
	if len(args) < 2 || len(args) > 4 {
		return nil, fmt.Errorf("%w: expected %s", ErrUsage, Usage)
	}

	start, err := dateutil.ParseDate(args[0])
	if err != nil {
		return nil, fmt.Errorf("%w: error parsing start_date: %v", ErrUsage, err)
	}
	end, err := dateutil.ParseDate(args[1])
	if err != nil {
		return nil, fmt.Errorf("%w: error parsing end_date: %v", ErrUsage, err)
	}

	req := &Request{
		Start:      start,
		End:        end,
		Weekdays:   defaults.Weekdays,
		Exclusions: defaults.Exclusions,
	}

	if len(args) > 2 {
		req.Weekdays, err = ParseWeekdays(args[2])
		if err != nil {
			return nil, err
		}
	}
	if len(args) > 3 {
		req.Exclusions = ParseExclusions(args[3])
	}

	if err := req.Validate(); err != nil {
		return nil, err
	}
	return req, nil
}

// ParseWeekdays parses a comma separated list of weekday codes such as
// "1,2,3,4,5". Every element must be an integer.
func ParseWeekdays(list string) ([]int, error) {
	parts := strings.Split(list, ",")
	days := make([]int, 0, len(parts))
	for _, part := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("%w: error parsing allowed_days_of_the_week: %q is not a number", ErrUsage, part)
		}
		days = append(days, n)
	}
	return days, nil
}

// ParseExclusions splits a comma separated exclusion list. Empty entries
// are dropped, so "" means no exclusions.
func ParseExclusions(list string) []string {
	var out []string
	for _, part := range strings.Split(list, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// Validate checks the request fields.
func (r *Request) Validate() error {
	if err := validate.Struct(r); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := FormatValidationErrors(verrs)
			return fmt.Errorf("%w: %s", ErrUsage, strings.Join(msgs, "; "))
		}
		return err
	}
	return nil
}

// FormatValidationErrors renders validator errors as readable messages.
func FormatValidationErrors(verrs validator.ValidationErrors) []string {
	msgs := make([]string, 0, len(verrs))
	for _, e := range verrs {
		field := e.Field()
		switch e.Tag() {
		case "required":
			msgs = append(msgs, field+" is required")
		case "min":
			if e.Kind() == reflect.Slice {
				msgs = append(msgs, field+" must have at least "+e.Param()+" element(s)")
			} else {
				msgs = append(msgs, fmt.Sprintf("%s must be between 0 and 6, got %v", field, e.Value()))
			}
		case "max":
			msgs = append(msgs, fmt.Sprintf("%s must be between 0 and 6, got %v", field, e.Value()))
		default:
			msgs = append(msgs, field+" is invalid")
		}
	}
	return msgs
}

// WeekdaySet converts the validated weekday codes.
func (r *Request) WeekdaySet() (daycount.WeekdaySet, error) {
	var set daycount.WeekdaySet
	for _, code := range r.Weekdays {
		d, err := daycount.ParseWeekday(code)
		if err != nil {
			return 0, fmt.Errorf("%w: %v", ErrUsage, err)
		}
		set = set.With(d)
	}
	return set, nil
}
