// internal/domain/day.go
package domain

import (
	"fmt"
	"time"
)

// DayLayout is the wire format of a calendar day ("yyyy-MM-dd").
const DayLayout = "2006-01-02"

// DayBucket is a calendar date without a time of day.
// Values are comparable with == and are never mutated after creation.
type DayBucket struct {
	Year  int
	Month time.Month
	Day   int
}

// NewDay normalizes year/month/day the way time.Date does (e.g. Feb 30 -> Mar 1/2).
func NewDay(year int, month time.Month, day int) DayBucket {
	return DayOf(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// DayOf drops the time-of-day component of t, keeping t's calendar date in its own location.
func DayOf(t time.Time) DayBucket {
	y, m, d := t.Date()
	return DayBucket{Year: y, Month: m, Day: d}
}

// ParseDay parses a "yyyy-MM-dd" string.
func ParseDay(s string) (DayBucket, error) {
	t, err := time.Parse(DayLayout, s)
	if err != nil {
		return DayBucket{}, fmt.Errorf("invalid day %q: %w", s, err)
	}
	return DayOf(t), nil
}

// Time returns midnight UTC of the day.
func (d DayBucket) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

func (d DayBucket) AddDays(n int) DayBucket {
	return DayOf(d.Time().AddDate(0, 0, n))
}

func (d DayBucket) Weekday() time.Weekday {
	return d.Time().Weekday()
}

func (d DayBucket) Before(o DayBucket) bool {
	return d.Time().Before(o.Time())
}

func (d DayBucket) After(o DayBucket) bool {
	return d.Time().After(o.Time())
}

// DaysUntil returns the number of days from d to o (negative when o is earlier).
func (d DayBucket) DaysUntil(o DayBucket) int {
	return int(o.Time().Sub(d.Time()).Hours() / 24)
}

func (d DayBucket) IsZero() bool {
	return d == DayBucket{}
}

func (d DayBucket) MonthKey() MonthKey {
	return MonthKey{Year: d.Year, Month: d.Month}
}

func (d DayBucket) String() string {
	return d.Time().Format(DayLayout)
}

// MarshalText lets DayBucket travel as "yyyy-MM-dd" in JSON bodies and query strings.
func (d DayBucket) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *DayBucket) UnmarshalText(b []byte) error {
	parsed, err := ParseDay(string(b))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// MonthKey identifies a calendar month.
type MonthKey struct {
	Year  int        `json:"year"`
	Month time.Month `json:"month"`
}

// AddMonths moves the key by n months, rolling the year as needed.
func (m MonthKey) AddMonths(n int) MonthKey {
	t := time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, n, 0)
	return MonthKey{Year: t.Year(), Month: t.Month()}
}

// FirstDay returns day 1 of the month.
func (m MonthKey) FirstDay() DayBucket {
	return DayBucket{Year: m.Year, Month: m.Month, Day: 1}
}

func (m MonthKey) String() string {
	return fmt.Sprintf("%04d-%02d", m.Year, int(m.Month))
}
