package ledger

import (
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// Date is a local calendar day in YYYY-MM-DD form. It keys every Day in the ledger.
type Date string

// DateOf returns the calendar day of t in t's own location.
func DateOf(t time.Time) Date {
	return Date(t.Format(dateLayout))
}

// ParseDate validates a YYYY-MM-DD string.
func ParseDate(value string) (Date, error) {
	t, err := time.ParseInLocation(dateLayout, value, time.Local)
	if err != nil {
		return "", fmt.Errorf("parse date: %w", err)
	}
	return DateOf(t), nil
}

// Time returns local midnight of the day. Invalid dates yield the zero time.
func (d Date) Time() time.Time {
	t, err := time.ParseInLocation(dateLayout, string(d), time.Local)
	if err != nil {
		return time.Time{}
	}
	return t
}

// AddDays shifts the date by n calendar days.
func (d Date) AddDays(n int) Date {
	t := d.Time()
	if t.IsZero() {
		return d
	}
	return DateOf(t.AddDate(0, 0, n))
}

func (d Date) String() string {
	return string(d)
}
