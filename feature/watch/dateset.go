package watch

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// DateLayout is the only accepted date format (yyyy-MM-dd).
const DateLayout = "2006-01-02"

var (
	// ErrEmptyInput is returned when no dates were given.
	ErrEmptyInput = errors.New("must provide dates in yyyy-MM-dd format")
	// ErrDateParse is returned for a date that is not yyyy-MM-dd.
	ErrDateParse = errors.New("invalid date")
	// ErrMonthMismatch is returned when the dates span more than one calendar month.
	// The monthly endpoint can only be queried for one month at a time.
	ErrMonthMismatch = errors.New("dates must share the same year and month")
)

// DateSet is a validated, ordered list of dates in a single calendar month.
type DateSet struct {
	dates []time.Time
}

// ValidateDates parses the inputs and checks that they all fall in the same month.
// Input order and duplicates are preserved.
func ValidateDates(inputs []string) (DateSet, error) {
	if len(inputs) == 0 {
		return DateSet{}, ErrEmptyInput
	}

	dates := make([]time.Time, 0, len(inputs))
	for _, input := range inputs {
		d, err := time.Parse(DateLayout, strings.TrimSpace(input))
		if err != nil {
			return DateSet{}, fmt.Errorf("%w %q: expected yyyy-MM-dd", ErrDateParse, input)
		}

		if len(dates) > 0 {
			first := dates[0]
			if d.Year() != first.Year() {
				return DateSet{}, fmt.Errorf("%w: years do not match (%s, %s)", ErrMonthMismatch, first.Format(DateLayout), d.Format(DateLayout))
			}
			if d.Month() != first.Month() {
				return DateSet{}, fmt.Errorf("%w: months do not match (%s, %s)", ErrMonthMismatch, first.Format(DateLayout), d.Format(DateLayout))
			}
		}
		dates = append(dates, d)
	}

	return DateSet{dates: dates}, nil
}

// SplitDates splits a line of whitespace-separated dates.
func SplitDates(line string) []string {
	return strings.Fields(line)
}

// IsInputError reports whether err came from date validation.
func IsInputError(err error) bool {
	return errors.Is(err, ErrEmptyInput) || errors.Is(err, ErrDateParse) || errors.Is(err, ErrMonthMismatch)
}

// Len returns the number of dates.
func (s DateSet) Len() int {
	return len(s.dates)
}

// Year returns the shared year.
func (s DateSet) Year() int {
	if len(s.dates) == 0 {
		return 0
	}
	return s.dates[0].Year()
}

// Month returns the shared month.
func (s DateSet) Month() time.Month {
	if len(s.dates) == 0 {
		return 0
	}
	return s.dates[0].Month()
}

// Strings returns the dates formatted as yyyy-MM-dd, in input order.
func (s DateSet) Strings() []string {
	out := make([]string, len(s.dates))
	for i, d := range s.dates {
		out[i] = d.Format(DateLayout)
	}
	return out
}
