package domain

import (
	"fmt"
	"time"

	"github.com/ChSylwia/kantor-walut-zadanie-rekrutacyjne/internal/apperrors"
)

// dateLayout is the wire format used by both NBP and the record store.
const dateLayout = "2006-01-02"

// ExchangeDate is a calendar date on which a rate table was published. It can
// never lie in the future; comparisons are at day granularity.
type ExchangeDate struct {
	t time.Time
}

// NewExchangeDate validates and constructs an ExchangeDate from a timestamp.
func NewExchangeDate(t time.Time) (ExchangeDate, error) {
	today := truncateToDay(time.Now())
	if truncateToDay(t).After(today) {
		return ExchangeDate{}, fmt.Errorf("%w: exchange date cannot be in the future", apperrors.ErrValidation)
	}
	return ExchangeDate{t: t}, nil
}

// ParseExchangeDate parses a YYYY-MM-DD string into an ExchangeDate.
func ParseExchangeDate(value string) (ExchangeDate, error) {
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return ExchangeDate{}, fmt.Errorf("%w: invalid date %q, expected YYYY-MM-DD", apperrors.ErrValidation, value)
	}
	return NewExchangeDate(t)
}

func truncateToDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func (d ExchangeDate) Time() time.Time {
	return d.t
}

func (d ExchangeDate) String() string {
	return d.t.Format(dateLayout)
}

func (d ExchangeDate) Equals(other ExchangeDate) bool {
	return d.String() == other.String()
}

func (d ExchangeDate) IsAfter(other ExchangeDate) bool {
	return truncateToDay(d.t).After(truncateToDay(other.t))
}

func (d ExchangeDate) IsBefore(other ExchangeDate) bool {
	return truncateToDay(d.t).Before(truncateToDay(other.t))
}

func (d ExchangeDate) IsToday() bool {
	return d.String() == time.Now().Format(dateLayout)
}

// AddDays shifts the date by the given number of days (negative for the past).
// Shifting into the future fails validation.
func (d ExchangeDate) AddDays(days int) (ExchangeDate, error) {
	if days == 0 {
		return d, nil
	}
	return NewExchangeDate(d.t.AddDate(0, 0, days))
}

// DayOfWeek returns the full English weekday name.
func (d ExchangeDate) DayOfWeek() string {
	return d.t.Weekday().String()
}

// IsWeekday reports whether the date falls Monday through Friday.
func (d ExchangeDate) IsWeekday() bool {
	wd := d.t.Weekday()
	return wd != time.Saturday && wd != time.Sunday
}

// FourteenDayPeriod returns the trailing window [date-13, date].
func (d ExchangeDate) FourteenDayPeriod() (ExchangeDate, ExchangeDate) {
	start := ExchangeDate{t: d.t.AddDate(0, 0, -13)}
	return start, d
}
