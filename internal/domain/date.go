package domain

import (
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// Date is a calendar date without a time component. It is held internally as
// a UTC midnight instant and serialized as YYYY-MM-DD at the JSON and SQL
// boundaries, where lexical ordering of the textual form matches calendar
// ordering.
type Date struct {
	t time.Time
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, strings.TrimSpace(s))
	if err != nil {
		return Date{}, ValidationError{Field: "date", Msg: "must be YYYY-MM-DD", Err: err}
	}
	return Date{t}, nil
}

// DateOf truncates an instant to its calendar date in UTC.
func DateOf(t time.Time) Date {
	y, m, d := t.UTC().Date()
	return NewDate(y, m, d)
}

func Today() Date {
	return DateOf(time.Now())
}

func (d Date) String() string { return d.t.Format(dateLayout) }

func (d Date) IsZero() bool { return d.t.IsZero() }

func (d Date) Before(o Date) bool { return d.t.Before(o.t) }

func (d Date) After(o Date) bool { return d.t.After(o.t) }

func (d Date) Equal(o Date) bool { return d.t.Equal(o.t) }

func (d Date) AddDays(n int) Date { return Date{d.t.AddDate(0, 0, n)} }

// DaysUntil returns the number of whole days from d to o, negative when o is
// earlier.
func (d Date) DaysUntil(o Date) int {
	return int(o.t.Sub(d.t) / (24 * time.Hour))
}

// StartOfDay and EndOfDay bound the day for timestamp range filters.
func (d Date) StartOfDay() time.Time { return d.t }

func (d Date) EndOfDay() time.Time {
	return d.t.Add(24*time.Hour - time.Second)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

func (d *Date) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Overlaps reports whether the half-open intervals [aStart, aEnd) and
// [bStart, bEnd) share at least one day. Back-to-back ranges, one ending the
// day the other starts, do not overlap.
func Overlaps(aStart, aEnd, bStart, bEnd Date) bool {
	return aStart.Before(bEnd) && aEnd.After(bStart)
}
